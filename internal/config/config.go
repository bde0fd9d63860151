package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

type Config struct {
	App struct {
		ENV string
	}

	Log struct {
		Level     string
		Format    string
		Component string
		Source    bool
	}

	DB struct {
		Driver     string
		DSN        string
		Host       string
		Port       string
		User       string
		Password   string
		Name       string
		SQLitePath string
	}

	Redis struct {
		Addr     string
		Password string
		DB       int
	}

	GRPC struct {
		Host string
		Port string
	}

	Auth struct {
		JWTSecret string
		Issuer    string
	}

	NATS struct {
		URL string
	}

	// Suggest bounds the two-hop traversal. FollowingFanout x PerFriendFanout
	// is the worst-case number of edges read per request.
	Suggest struct {
		FollowingFanout int
		PerFriendFanout int
		MaxResults      int
		CacheTTL        time.Duration
		FallbackName    string
	}

	Reactions struct {
		// CountRepeats increments reactionsCount on every React call,
		// including re-reactions by the same user.
		CountRepeats bool
	}
}

func New() *Config {
	cfg := &Config{}

	cfg.App.ENV = getEnvDefault("APP_ENV", "development")

	// Logger
	cfg.Log.Level = getEnvDefault("LOG_LEVEL", "info")
	cfg.Log.Format = getEnvDefault("LOG_FORMAT", "text")
	cfg.Log.Component = getEnvDefault("LOG_COMPONENT", "graph_server")
	cfg.Log.Source = isTruthy(os.Getenv("LOG_SOURCE"))

	// Database
	cfg.DB.Driver = strings.ToLower(getEnvDefault("DB_DRIVER", "mysql"))
	cfg.DB.SQLitePath = getEnvDefault("SQLITE_PATH", "manadabook.db")
	cfg.DB.DSN = os.Getenv("MYSQL_DSN")
	if cfg.DB.DSN == "" {
		cfg.DB.Host = getEnvDefault("DB_HOST", "localhost")
		cfg.DB.Port = getEnvDefault("DB_PORT", "3306")
		cfg.DB.User = getEnvDefault("DB_USER", "root")
		cfg.DB.Password = getEnvDefault("DB_PASSWORD", "root")
		cfg.DB.Name = getEnvDefault("DB_NAME", "manadabook")

		cfg.DB.DSN = fmt.Sprintf(
			"%s:%s@tcp(%s:%s)/%s?parseTime=true&charset=utf8mb4&loc=UTC",
			cfg.DB.User, cfg.DB.Password, cfg.DB.Host, cfg.DB.Port, cfg.DB.Name,
		)
	}

	// Redis
	cfg.Redis.Addr = getEnvDefault("REDIS_ADDR", "localhost:6379")
	cfg.Redis.Password = getEnvDefault("REDIS_PASSWORD", "")
	cfg.Redis.DB = getEnvInt("REDIS_DB", 0)

	// gRPC
	cfg.GRPC.Host = getEnvDefault("GRPC_HOST", "127.0.0.1")
	cfg.GRPC.Port = getEnvDefault("GRPC_PORT", "50051")

	// Auth
	cfg.Auth.JWTSecret = os.Getenv("AUTH_JWT_SECRET")
	if cfg.Auth.JWTSecret == "" && cfg.App.ENV == "development" {
		cfg.Auth.JWTSecret = "dev-secret"
	}
	cfg.Auth.Issuer = getEnvDefault("AUTH_JWT_ISSUER", "")

	// NATS
	cfg.NATS.URL = getEnvDefault("NATS_URL", "")

	// Suggestions
	cfg.Suggest.FollowingFanout = getEnvInt("SUGGEST_FOLLOWING_FANOUT", 10)
	cfg.Suggest.PerFriendFanout = getEnvInt("SUGGEST_PER_FRIEND_FANOUT", 5)
	cfg.Suggest.MaxResults = getEnvInt("SUGGEST_MAX_RESULTS", 5)
	cfg.Suggest.CacheTTL = getEnvDuration("SUGGEST_CACHE_TTL", 5*time.Minute)
	cfg.Suggest.FallbackName = getEnvDefault("SUGGEST_FALLBACK_NAME", "Member")

	// Reactions
	cfg.Reactions.CountRepeats = isTruthy(os.Getenv("REACTIONS_COUNT_REPEATS"))

	return cfg
}

func getEnvDefault(k, def string) string {
	if v := strings.TrimSpace(os.Getenv(k)); v != "" {
		return v
	}
	return def
}

func getEnvInt(k string, def int) int {
	if v := strings.TrimSpace(os.Getenv(k)); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}

// getEnvDuration accepts Go durations ("90s") or plain seconds ("90").
func getEnvDuration(k string, def time.Duration) time.Duration {
	v := strings.TrimSpace(os.Getenv(k))
	if v == "" {
		return def
	}
	if d, err := time.ParseDuration(v); err == nil {
		return d
	}
	if n, err := strconv.Atoi(v); err == nil {
		return time.Duration(n) * time.Second
	}
	return def
}

func isTruthy(v string) bool {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "1", "true", "yes", "y", "on":
		return true
	}
	return false
}

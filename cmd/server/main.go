package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/raizel/manadabook/internal/app"
	"github.com/raizel/manadabook/internal/auth"
	"github.com/raizel/manadabook/internal/cache"
	"github.com/raizel/manadabook/internal/config"
	"github.com/raizel/manadabook/internal/db"
	"github.com/raizel/manadabook/internal/events"
	"github.com/raizel/manadabook/internal/logger"
	"github.com/raizel/manadabook/internal/server"
	"github.com/raizel/manadabook/internal/service/graph"
)

func main() {
	cfg := config.New()

	// Init logger (global singleton)
	logger.InitFromConfig(cfg)
	log := logger.L() // slog.Logger pointer

	// Init DB
	database, err := db.NewDB(cfg)
	if err != nil {
		log.Error("failed to init db", "err", err)
		os.Exit(1)
	}

	// Init Redis
	redisCache := cache.NewRedisCache(cfg)
	if err := redisCache.Ping(context.Background()); err != nil {
		log.Error("failed to connect to redis", "err", err)
		os.Exit(1)
	}
	defer redisCache.Close()

	// Events are optional; without NATS_URL they are dropped.
	var publisher events.Publisher = events.Nop{}
	if cfg.NATS.URL != "" {
		nc, err := events.Connect(cfg.NATS.URL)
		if err != nil {
			log.Error("failed to connect to nats", "url", cfg.NATS.URL, "err", err)
			os.Exit(1)
		}
		defer nc.Close()
		publisher = nc
	}

	verifier, err := auth.NewVerifier(cfg.Auth.JWTSecret, cfg.Auth.Issuer)
	if err != nil {
		log.Error("invalid auth config", "err", err)
		os.Exit(1)
	}

	appCtx := app.New(cfg, database, redisCache, publisher, log)

	registrars := []server.Registrar{
		graph.NewRegistrar(appCtx),
	}

	if cfg.App.ENV == "development" {
		if err := db.SeedDemoData(database); err != nil {
			log.Error("failed to seed", "err", err)
		}
	}

	grpcServer, health := server.NewGRPCServer(verifier, log, registrars...)

	go func() {
		stop := make(chan os.Signal, 1)
		signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
		sig := <-stop
		log.Info("shutting down", "signal", sig.String())
		health.Shutdown()
		grpcServer.GracefulStop()
	}()

	addr := cfg.GRPC.Host + ":" + cfg.GRPC.Port
	log.Info("starting gRPC server", "addr", addr)

	if err := server.StartGRPCServer(cfg, grpcServer); err != nil {
		log.Error("failed to start gRPC server", "err", err)
	}
}

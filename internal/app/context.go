package app

import (
	"log/slog"

	"gorm.io/gorm"

	"github.com/raizel/manadabook/internal/cache"
	"github.com/raizel/manadabook/internal/config"
	"github.com/raizel/manadabook/internal/events"
)

// AppContext holds shared dependencies (DB, Redis, Logger, etc.)
type AppContext struct {
	Config     *config.Config
	DB         *gorm.DB
	RedisCache *cache.RedisCache // optional; nil disables caching
	Events     events.Publisher
	Logger     *slog.Logger
}

// New creates a new AppContext. A nil publisher becomes events.Nop.
func New(cfg *config.Config, db *gorm.DB, rdb *cache.RedisCache, pub events.Publisher, logger *slog.Logger) *AppContext {
	if pub == nil {
		pub = events.Nop{}
	}
	return &AppContext{
		Config:     cfg,
		DB:         db,
		RedisCache: rdb,
		Events:     pub,
		Logger:     logger,
	}
}

// Package social is the in-process API over the follow graph, suggestions,
// reactions and notifications. Every operation takes the caller's verified
// user id as an explicit argument.
package social

import (
	"context"
	"log/slog"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/raizel/manadabook/internal/app"
	"github.com/raizel/manadabook/internal/cache"
	"github.com/raizel/manadabook/internal/config"
	"github.com/raizel/manadabook/internal/db"
	svcErr "github.com/raizel/manadabook/internal/errors"
	"github.com/raizel/manadabook/internal/events"
	"github.com/raizel/manadabook/internal/repository"
	"github.com/raizel/manadabook/internal/suggestion"
)

const (
	maxIDLen   = 128
	maxNameLen = 128
	maxEmoji   = 32
)

// UserSummary is the public view of a profile.
type UserSummary struct {
	ID             string `json:"id"`
	DisplayName    string `json:"display_name"`
	FollowersCount int64  `json:"followers_count"`
	FollowingCount int64  `json:"following_count"`
}

// Options tunes the service. See OptionsFromConfig for defaults.
type Options struct {
	Suggest         suggestion.Config
	SuggestCacheTTL time.Duration
	// CountRepeatReactions keeps the legacy counting of every React call.
	CountRepeatReactions bool
}

// OptionsFromConfig maps the environment config onto service options.
func OptionsFromConfig(cfg *config.Config) Options {
	if cfg == nil {
		return Options{Suggest: suggestion.DefaultConfig()}
	}
	return Options{
		Suggest: suggestion.Config{
			FollowingFanout: cfg.Suggest.FollowingFanout,
			PerFriendFanout: cfg.Suggest.PerFriendFanout,
			MaxResults:      cfg.Suggest.MaxResults,
			FallbackName:    cfg.Suggest.FallbackName,
		},
		SuggestCacheTTL:      cfg.Suggest.CacheTTL,
		CountRepeatReactions: cfg.Reactions.CountRepeats,
	}
}

// Service is the in-process social API over the repositories.
type Service struct {
	users         *repository.UserRepository
	follows       *repository.FollowRepository
	blocks        *repository.BlockRepository
	reactions     *repository.ReactionRepository
	notifications *repository.NotificationRepository
	suggestions   *suggestion.Engine

	cache  *cache.RedisCache
	events events.Publisher
	log    *slog.Logger
	opts   Options
}

// NewService wires repositories from appCtx. Options come from appCtx.Config.
func NewService(appCtx *app.AppContext) *Service {
	return NewServiceWithOptions(appCtx, OptionsFromConfig(appCtx.Config))
}

// NewServiceWithOptions is NewService with explicit options.
func NewServiceWithOptions(appCtx *app.AppContext, opts Options) *Service {
	s := &Service{
		users:         repository.NewUserRepository(appCtx.DB),
		follows:       repository.NewFollowRepository(appCtx.DB),
		blocks:        repository.NewBlockRepository(appCtx.DB),
		reactions:     repository.NewReactionRepository(appCtx.DB),
		notifications: repository.NewNotificationRepository(appCtx.DB),
		cache:         appCtx.RedisCache,
		events:        appCtx.Events,
		log:           appCtx.Logger,
		opts:          opts,
	}
	if s.events == nil {
		s.events = events.Nop{}
	}
	s.suggestions = suggestion.NewEngine(graphStore{s}, opts.Suggest)
	return s
}

// RegisterUser creates or renames the caller's profile.
func (s *Service) RegisterUser(ctx context.Context, userID, displayName string) (UserSummary, error) {
	if err := validID("user_id", userID); err != nil {
		return UserSummary{}, err
	}
	displayName = strings.TrimSpace(displayName)
	if utf8.RuneCountInString(displayName) > maxNameLen {
		return UserSummary{}, svcErr.InvalidArgumentf("display_name longer than %d characters", maxNameLen)
	}

	u, err := s.users.Upsert(ctx, userID, displayName)
	if err != nil {
		s.log.Error("RegisterUser failed", "user", userID, "err", err)
		return UserSummary{}, svcErr.Transient(err)
	}
	return summary(*u), nil
}

// GetUser returns one profile with its counters.
func (s *Service) GetUser(ctx context.Context, userID string) (UserSummary, error) {
	if err := validID("user_id", userID); err != nil {
		return UserSummary{}, err
	}
	u, err := s.users.Get(ctx, userID)
	if err != nil {
		return UserSummary{}, svcErr.Transient(err)
	}
	return summary(*u), nil
}

func (s *Service) publish(ctx context.Context, subject string, payload any) {
	if err := s.events.Publish(ctx, subject, payload); err != nil {
		s.log.Warn("event publish failed", "subject", subject, "err", err)
	}
}

func validID(field, id string) error {
	if id == "" {
		return svcErr.InvalidArgumentf("%s is required", field)
	}
	if len(id) > maxIDLen {
		return svcErr.InvalidArgumentf("%s longer than %d bytes", field, maxIDLen)
	}
	return nil
}

func summary(u db.User) UserSummary {
	return UserSummary{
		ID:             u.ID,
		DisplayName:    u.DisplayName,
		FollowersCount: u.FollowersCount,
		FollowingCount: u.FollowingCount,
	}
}

func summaries(users []db.User) []UserSummary {
	out := make([]UserSummary, 0, len(users))
	for _, u := range users {
		out = append(out, summary(u))
	}
	return out
}

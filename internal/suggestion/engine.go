// Package suggestion proposes accounts to follow from a bounded two-hop walk
// of the follow graph.
package suggestion

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/raizel/manadabook/internal/db"
)

// Store is the read side the engine needs.
type Store interface {
	// ExcludedIDs returns the combined block set (blocked-by-me and blocked-me).
	ExcludedIDs(ctx context.Context, userID string) ([]string, error)
	// FollowingIDs returns up to limit followees of userID.
	FollowingIDs(ctx context.Context, userID string, limit int) ([]string, error)
	// FindByIDs resolves users; unknown ids are absent from the map.
	FindByIDs(ctx context.Context, ids []string) (map[string]db.User, error)
}

// Config bounds read amplification: one request issues at most
// 1 + FollowingFanout edge scans and one batched profile lookup.
type Config struct {
	FollowingFanout int
	PerFriendFanout int
	MaxResults      int
	// FallbackName replaces an empty display name.
	FallbackName string
	// Parallelism caps concurrent friends-of-friends scans.
	Parallelism int
}

// DefaultConfig returns the production traversal bounds.
func DefaultConfig() Config {
	return Config{
		FollowingFanout: 10,
		PerFriendFanout: 5,
		MaxResults:      5,
		FallbackName:    "Member",
		Parallelism:     4,
	}
}

// Profile is a suggested account.
type Profile struct {
	ID             string `json:"id"`
	DisplayName    string `json:"display_name"`
	FollowersCount int64  `json:"followers_count"`
	FollowingCount int64  `json:"following_count"`
}

// Engine walks the follow graph through a Store.
type Engine struct {
	store Store
	cfg   Config
}

// NewEngine fills zero fields of cfg from DefaultConfig.
func NewEngine(store Store, cfg Config) *Engine {
	def := DefaultConfig()
	if cfg.FollowingFanout <= 0 {
		cfg.FollowingFanout = def.FollowingFanout
	}
	if cfg.PerFriendFanout <= 0 {
		cfg.PerFriendFanout = def.PerFriendFanout
	}
	if cfg.MaxResults <= 0 {
		cfg.MaxResults = def.MaxResults
	}
	if cfg.FallbackName == "" {
		cfg.FallbackName = def.FallbackName
	}
	if cfg.Parallelism <= 0 {
		cfg.Parallelism = def.Parallelism
	}
	return &Engine{store: store, cfg: cfg}
}

// Suggest returns up to MaxResults profiles that userID might follow, in
// traversal order: followings newest first, then each one's followings.
// Self, current followings and the block set are never returned.
// Any read error aborts the walk; callers treat that as "no suggestions".
func (e *Engine) Suggest(ctx context.Context, userID string) ([]Profile, error) {
	excludedIDs, err := e.store.ExcludedIDs(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("block set: %w", err)
	}

	following, err := e.store.FollowingIDs(ctx, userID, e.cfg.FollowingFanout)
	if err != nil {
		return nil, fmt.Errorf("following of %s: %w", userID, err)
	}
	if len(following) == 0 {
		return []Profile{}, nil
	}

	excluded := make(map[string]struct{}, len(excludedIDs)+len(following)+1)
	excluded[userID] = struct{}{}
	for _, id := range excludedIDs {
		excluded[id] = struct{}{}
	}
	for _, id := range following {
		excluded[id] = struct{}{}
	}

	// one slot per friend keeps the merge in traversal order
	hops := make([][]string, len(following))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(e.cfg.Parallelism)
	for i, friend := range following {
		i, friend := i, friend
		g.Go(func() error {
			ids, err := e.store.FollowingIDs(gctx, friend, e.cfg.PerFriendFanout)
			if err != nil {
				return fmt.Errorf("following of %s: %w", friend, err)
			}
			hops[i] = ids
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	candidates := make([]string, 0, e.cfg.MaxResults)
	seen := make(map[string]struct{})
collect:
	for _, ids := range hops {
		for _, id := range ids {
			if _, skip := excluded[id]; skip {
				continue
			}
			if _, dup := seen[id]; dup {
				continue
			}
			seen[id] = struct{}{}
			candidates = append(candidates, id)
			if len(candidates) == e.cfg.MaxResults {
				break collect
			}
		}
	}
	if len(candidates) == 0 {
		return []Profile{}, nil
	}

	users, err := e.store.FindByIDs(ctx, candidates)
	if err != nil {
		return nil, fmt.Errorf("resolve candidates: %w", err)
	}

	out := make([]Profile, 0, len(candidates))
	for _, id := range candidates {
		u, ok := users[id]
		if !ok {
			continue // unresolvable id, skip it
		}
		name := u.DisplayName
		if name == "" {
			name = e.cfg.FallbackName
		}
		out = append(out, Profile{
			ID:             u.ID,
			DisplayName:    name,
			FollowersCount: u.FollowersCount,
			FollowingCount: u.FollowingCount,
		})
	}
	return out, nil
}

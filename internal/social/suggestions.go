package social

import (
	"context"
	"errors"

	"github.com/raizel/manadabook/internal/cache"
	"github.com/raizel/manadabook/internal/db"
)

// graphStore adapts the repositories to suggestion.Store.
type graphStore struct{ s *Service }

func (g graphStore) ExcludedIDs(ctx context.Context, userID string) ([]string, error) {
	return g.s.blocks.ExcludedIDs(ctx, userID)
}

func (g graphStore) FollowingIDs(ctx context.Context, userID string, limit int) ([]string, error) {
	return g.s.follows.FollowingIDs(ctx, userID, limit)
}

func (g graphStore) FindByIDs(ctx context.Context, ids []string) (map[string]db.User, error) {
	return g.s.users.FindByIDs(ctx, ids)
}

// GetSuggestions returns accounts userID might follow. It never fails: a
// store error yields an empty list.
//
// Cache-first strategy:
//  1. Reads suggestions:<userID> from Redis when caching is enabled.
//  2. A hit is re-filtered against the current block set and follow edges.
//  3. On miss, walks the graph and stores the result with SuggestCacheTTL.
//  4. Follow/Unfollow by userID drops the entry.
func (s *Service) GetSuggestions(ctx context.Context, userID string) []UserSummary {
	if validID("user_id", userID) != nil {
		return []UserSummary{}
	}

	key := ""
	if s.cacheEnabled() {
		key = s.cache.KeyForSuggestions(userID)
		var cached []UserSummary
		err := s.cache.GetJSON(ctx, key, &cached)
		if err == nil {
			fresh, err := s.stillSuggestable(ctx, userID, cached)
			if err != nil {
				s.log.Warn("suggestions unavailable", "user", userID, "err", err)
				return []UserSummary{}
			}
			return fresh
		}
		if !errors.Is(err, cache.ErrMiss) {
			s.log.Warn("suggestion cache read failed", "user", userID, "err", err)
		}
	}

	profiles, err := s.suggestions.Suggest(ctx, userID)
	if err != nil {
		s.log.Warn("suggestions unavailable", "user", userID, "err", err)
		return []UserSummary{}
	}

	out := make([]UserSummary, 0, len(profiles))
	for _, p := range profiles {
		out = append(out, UserSummary(p))
	}

	if key != "" {
		if err := s.cache.SetJSON(ctx, key, out, s.opts.SuggestCacheTTL); err != nil {
			s.log.Warn("suggestion cache write failed", "user", userID, "err", err)
		}
	}
	return out
}

// stillSuggestable drops cached entries that were blocked or followed after
// the entry was written.
func (s *Service) stillSuggestable(ctx context.Context, userID string, cached []UserSummary) ([]UserSummary, error) {
	if len(cached) == 0 {
		return cached, nil
	}

	excludedIDs, err := s.blocks.ExcludedIDs(ctx, userID)
	if err != nil {
		return nil, err
	}
	candidates := make([]string, 0, len(cached))
	for _, u := range cached {
		candidates = append(candidates, u.ID)
	}
	followed, err := s.follows.FollowedAmong(ctx, userID, candidates)
	if err != nil {
		return nil, err
	}

	drop := make(map[string]struct{}, len(excludedIDs)+len(followed)+1)
	drop[userID] = struct{}{}
	for _, id := range excludedIDs {
		drop[id] = struct{}{}
	}
	for _, id := range followed {
		drop[id] = struct{}{}
	}

	out := make([]UserSummary, 0, len(cached))
	for _, u := range cached {
		if _, skip := drop[u.ID]; !skip {
			out = append(out, u)
		}
	}
	return out, nil
}

func (s *Service) cacheEnabled() bool {
	return s.cache != nil && s.opts.SuggestCacheTTL > 0
}

func (s *Service) dropSuggestions(ctx context.Context, userID string) {
	if !s.cacheEnabled() {
		return
	}
	if err := s.cache.Del(ctx, s.cache.KeyForSuggestions(userID)); err != nil {
		s.log.Warn("suggestion cache invalidation failed", "user", userID, "err", err)
	}
}

package social

import (
	"context"
	"time"

	svcErr "github.com/raizel/manadabook/internal/errors"
	"github.com/raizel/manadabook/internal/events"
)

// Follow makes followerID follow followeeID.
//
// The edge and both counters commit together or not at all. Errors:
//   - ErrSelfFollow / ErrAlreadyFollowing (ErrInvalidOperation)
//   - ErrUserNotFound when either user is unknown
//   - ErrTransientStore when the store failed; retry the whole call
func (s *Service) Follow(ctx context.Context, followerID, followeeID string) error {
	s.log.Debug("Follow called", "follower", followerID, "followee", followeeID)

	if err := validPair(followerID, followeeID); err != nil {
		return err
	}
	if followerID == followeeID {
		return svcErr.ErrSelfFollow
	}

	if err := s.follows.Follow(ctx, followerID, followeeID); err != nil {
		s.log.Debug("Follow rejected", "follower", followerID, "followee", followeeID, "err", err)
		return svcErr.Transient(err)
	}

	s.dropSuggestions(ctx, followerID)
	s.publish(ctx, events.SubjectFollowed, events.FollowEvent{
		FollowerID: followerID,
		FolloweeID: followeeID,
		At:         time.Now().UTC(),
	})
	return nil
}

// Unfollow removes the edge and decrements both counters atomically.
// Returns ErrNotFollowing when there is nothing to remove.
func (s *Service) Unfollow(ctx context.Context, followerID, followeeID string) error {
	s.log.Debug("Unfollow called", "follower", followerID, "followee", followeeID)

	if err := validPair(followerID, followeeID); err != nil {
		return err
	}

	if err := s.follows.Unfollow(ctx, followerID, followeeID); err != nil {
		s.log.Debug("Unfollow rejected", "follower", followerID, "followee", followeeID, "err", err)
		return svcErr.Transient(err)
	}

	s.dropSuggestions(ctx, followerID)
	s.publish(ctx, events.SubjectUnfollowed, events.FollowEvent{
		FollowerID: followerID,
		FolloweeID: followeeID,
		At:         time.Now().UTC(),
	})
	return nil
}

// IsFollowing reports whether a follows b.
func (s *Service) IsFollowing(ctx context.Context, a, b string) (bool, error) {
	if err := validPair(a, b); err != nil {
		return false, err
	}
	ok, err := s.follows.IsFollowing(ctx, a, b)
	if err != nil {
		return false, svcErr.Transient(err)
	}
	return ok, nil
}

// GetFollowers returns the first limit followers of userID, newest first.
func (s *Service) GetFollowers(ctx context.Context, userID string, limit int) ([]UserSummary, error) {
	users, _, err := s.ListFollowers(ctx, userID, nil, limit)
	return users, err
}

// GetFollowing returns the first limit accounts userID follows, newest first.
func (s *Service) GetFollowing(ctx context.Context, userID string, limit int) ([]UserSummary, error) {
	users, _, err := s.ListFollowing(ctx, userID, nil, limit)
	return users, err
}

// ListFollowers is GetFollowers with cursor pagination.
func (s *Service) ListFollowers(ctx context.Context, userID string, token *string, limit int) ([]UserSummary, *string, error) {
	if err := validID("user_id", userID); err != nil {
		return nil, nil, err
	}
	users, next, err := s.follows.ListFollowers(ctx, userID, token, limit)
	if err != nil {
		return nil, nil, svcErr.Transient(err)
	}
	return summaries(users), next, nil
}

// ListFollowing is GetFollowing with cursor pagination.
func (s *Service) ListFollowing(ctx context.Context, userID string, token *string, limit int) ([]UserSummary, *string, error) {
	if err := validID("user_id", userID); err != nil {
		return nil, nil, err
	}
	users, next, err := s.follows.ListFollowing(ctx, userID, token, limit)
	if err != nil {
		return nil, nil, svcErr.Transient(err)
	}
	return summaries(users), next, nil
}

func validPair(followerID, followeeID string) error {
	if err := validID("follower_id", followerID); err != nil {
		return err
	}
	return validID("followee_id", followeeID)
}

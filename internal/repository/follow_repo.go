package repository

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/raizel/manadabook/internal/db"
	svcErr "github.com/raizel/manadabook/internal/errors"
	"github.com/raizel/manadabook/internal/utils/pagination"
)

// FollowRepository owns the follows table and the denormalized counters on
// users. Every mutation runs as one transaction.
type FollowRepository struct {
	db    *gorm.DB
	users *UserRepository
}

// NewFollowRepository creates a new repository bound to the given DB connection.
func NewFollowRepository(database *gorm.DB) *FollowRepository {
	return &FollowRepository{db: database, users: NewUserRepository(database)}
}

// Follow creates the edge follower -> followee and bumps both counters.
//
// Behavior:
//   - Both users must exist, otherwise ErrUserNotFound.
//   - The insert is ON CONFLICT DO NOTHING on the (follower_id, followee_id)
//     PK. Zero affected rows means a concurrent or earlier Follow won, and
//     the transaction rolls back with ErrAlreadyFollowing.
//   - Counters move with SQL increments, never read-modify-write.
//
// Example:
//
//	repo.Follow(ctx, "ana", "bento") // ana now follows bento
func (r *FollowRepository) Follow(ctx context.Context, followerID, followeeID string) error {
	if followerID == followeeID {
		return svcErr.ErrSelfFollow
	}

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var found int64
		if err := tx.Model(&db.User{}).
			Where("id IN ?", []string{followerID, followeeID}).
			Count(&found).Error; err != nil {
			return err
		}
		if found != 2 {
			return svcErr.ErrUserNotFound
		}

		edge := db.Follow{FollowerID: followerID, FolloweeID: followeeID}
		res := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&edge)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return svcErr.ErrAlreadyFollowing
		}

		if err := bump(tx, followerID, "following_count", 1); err != nil {
			return err
		}
		return bump(tx, followeeID, "followers_count", 1)
	})
}

// Unfollow deletes the edge and decrements both counters, floored at zero.
// Returns ErrNotFollowing when there is no edge.
func (r *FollowRepository) Unfollow(ctx context.Context, followerID, followeeID string) error {
	if followerID == followeeID {
		return svcErr.ErrNotFollowing
	}

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Where("follower_id = ? AND followee_id = ?", followerID, followeeID).
			Delete(&db.Follow{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return svcErr.ErrNotFollowing
		}

		if err := bump(tx, followerID, "following_count", -1); err != nil {
			return err
		}
		return bump(tx, followeeID, "followers_count", -1)
	})
}

// bump applies delta (+1/-1) to a counter column. Negative deltas never take
// the column below zero.
func bump(tx *gorm.DB, userID, column string, delta int) error {
	expr := gorm.Expr(column+" + ?", delta)
	if delta < 0 {
		expr = gorm.Expr("CASE WHEN "+column+" >= ? THEN "+column+" - ? ELSE 0 END", -delta, -delta)
	}
	return tx.Model(&db.User{}).Where("id = ?", userID).UpdateColumn(column, expr).Error
}

// IsFollowing is a point lookup on the PK.
func (r *FollowRepository) IsFollowing(ctx context.Context, followerID, followeeID string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&db.Follow{}).
		Where("follower_id = ? AND followee_id = ?", followerID, followeeID).
		Count(&count).Error
	return count > 0, err
}

// ListFollowers returns users following userID, newest edge first.
// Supports cursor-based pagination via paginationToken.
func (r *FollowRepository) ListFollowers(
	ctx context.Context,
	userID string,
	paginationToken *string,
	limit int,
) ([]db.User, *string, error) {
	return r.list(ctx, "followee_id", "follower_id", userID, paginationToken, limit)
}

// ListFollowing returns users that userID follows, newest edge first.
func (r *FollowRepository) ListFollowing(
	ctx context.Context,
	userID string,
	paginationToken *string,
	limit int,
) ([]db.User, *string, error) {
	return r.list(ctx, "follower_id", "followee_id", userID, paginationToken, limit)
}

// FollowingIDs returns up to limit followee ids of userID, newest edge first.
func (r *FollowRepository) FollowingIDs(ctx context.Context, userID string, limit int) ([]string, error) {
	var ids []string
	err := r.db.WithContext(ctx).
		Model(&db.Follow{}).
		Where("follower_id = ?", userID).
		Order("created_at DESC, followee_id DESC").
		Limit(limit).
		Pluck("followee_id", &ids).Error
	return ids, err
}

// FollowedAmong returns the subset of ids that followerID currently follows.
func (r *FollowRepository) FollowedAmong(ctx context.Context, followerID string, ids []string) ([]string, error) {
	var followed []string
	if len(ids) == 0 {
		return followed, nil
	}
	err := r.db.WithContext(ctx).
		Model(&db.Follow{}).
		Where("follower_id = ? AND followee_id IN ?", followerID, ids).
		Pluck("followee_id", &followed).Error
	return followed, err
}

// list scans edges where anchorCol = userID and resolves otherCol to users.
func (r *FollowRepository) list(
	ctx context.Context,
	anchorCol, otherCol, userID string,
	paginationToken *string,
	limit int,
) ([]db.User, *string, error) {
	limit = pagination.ClampLimit(limit)

	cursor, err := pagination.Decode(pagination.Deref(paginationToken))
	if err != nil {
		return nil, nil, svcErr.InvalidArgumentf("%v", err)
	}

	query := r.db.WithContext(ctx).
		Model(&db.Follow{}).
		Where(anchorCol+" = ?", userID).
		Order("created_at DESC, " + otherCol + " DESC").
		Limit(limit + 1)

	if !cursor.IsZero() {
		ts := cursor.Time()
		query = query.Where(
			"(created_at < ? OR (created_at = ? AND "+otherCol+" < ?))",
			ts, ts, cursor.Key,
		)
	}

	var edges []db.Follow
	if err := query.Find(&edges).Error; err != nil {
		return nil, nil, err
	}

	var nextToken *string
	if len(edges) > limit {
		last := edges[limit-1]
		token, _ := pagination.Encode(pagination.After(other(last, otherCol), last.CreatedAt))
		nextToken = &token
		edges = edges[:limit]
	}

	ids := make([]string, 0, len(edges))
	for _, e := range edges {
		ids = append(ids, other(e, otherCol))
	}
	users, err := r.users.FindByIDs(ctx, ids)
	if err != nil {
		return nil, nil, err
	}
	return inOrder(ids, users), nextToken, nil
}

func other(e db.Follow, col string) string {
	if col == "follower_id" {
		return e.FollowerID
	}
	return e.FolloweeID
}

package repository

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/raizel/manadabook/internal/db"
	svcErr "github.com/raizel/manadabook/internal/errors"
)

// ReactionInput identifies one reaction event.
type ReactionInput struct {
	OwnerID   string
	ContentID string
	UserID    string
	Emoji     string
}

// ReactionResult reports what the fan-out wrote.
type ReactionResult struct {
	// Inserted is false when an existing reaction was overwritten.
	Inserted bool
	// Counted is true when reactionsCount was incremented.
	Counted bool
	// Notification is nil for self-reactions.
	Notification *db.Notification
}

// ReactionRepository owns contents, reactions and the notifications the
// reaction fan-out emits.
type ReactionRepository struct {
	db  *gorm.DB
	now func() time.Time
}

// NewReactionRepository creates a new repository bound to the given DB connection.
func NewReactionRepository(database *gorm.DB) *ReactionRepository {
	return &ReactionRepository{db: database, now: func() time.Time { return time.Now().UTC().Truncate(time.Millisecond) }}
}

// CreateContent registers a reactable item. Returns ErrContentExists when
// (ownerID, contentID) is taken.
func (r *ReactionRepository) CreateContent(ctx context.Context, ownerID, contentID, kind string) (*db.Content, error) {
	content := db.Content{OwnerID: ownerID, ID: contentID, Kind: kind}
	res := r.db.WithContext(ctx).Clauses(clause.OnConflict{DoNothing: true}).Create(&content)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, svcErr.ErrContentExists
	}
	return &content, nil
}

// GetContent loads one content item. Returns ErrContentNotFound when missing.
func (r *ReactionRepository) GetContent(ctx context.Context, ownerID, contentID string) (*db.Content, error) {
	var content db.Content
	err := r.db.WithContext(ctx).
		Where("owner_id = ? AND id = ?", ownerID, contentID).
		Take(&content).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, svcErr.ErrContentNotFound
	}
	if err != nil {
		return nil, err
	}
	return &content, nil
}

// React upserts the reaction, increments the content counter and notifies
// the owner, all in one transaction.
//
// Behavior:
//   - Content and reacting user must exist.
//   - The reaction row is keyed (owner_id, content_id, user_id). A first
//     reaction inserts; a repeat overwrites emoji and reacted_at.
//   - reactions_count is incremented on insert. With countRepeats it is
//     incremented on every call.
//   - No notification when the reactor owns the content.
func (r *ReactionRepository) React(ctx context.Context, in ReactionInput, countRepeats bool) (*ReactionResult, error) {
	result := &ReactionResult{}
	now := r.now()

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var content db.Content
		err := tx.Where("owner_id = ? AND id = ?", in.OwnerID, in.ContentID).Take(&content).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return svcErr.ErrContentNotFound
		}
		if err != nil {
			return err
		}

		var reactor db.User
		err = tx.Where("id = ?", in.UserID).Take(&reactor).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return svcErr.ErrUserNotFound
		}
		if err != nil {
			return err
		}

		reaction := db.Reaction{
			OwnerID:   in.OwnerID,
			ContentID: in.ContentID,
			UserID:    in.UserID,
			Emoji:     in.Emoji,
			ReactedAt: now,
		}
		res := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&reaction)
		if res.Error != nil {
			return res.Error
		}
		result.Inserted = res.RowsAffected == 1

		if !result.Inserted {
			if err := tx.Model(&db.Reaction{}).
				Where("owner_id = ? AND content_id = ? AND user_id = ?", in.OwnerID, in.ContentID, in.UserID).
				Updates(map[string]any{"emoji": in.Emoji, "reacted_at": now}).Error; err != nil {
				return err
			}
		}

		if result.Inserted || countRepeats {
			if err := tx.Model(&db.Content{}).
				Where("owner_id = ? AND id = ?", in.OwnerID, in.ContentID).
				UpdateColumn("reactions_count", gorm.Expr("reactions_count + ?", 1)).Error; err != nil {
				return err
			}
			result.Counted = true
		}

		if in.UserID == in.OwnerID {
			return nil
		}
		n := db.Notification{
			ID:             uuid.NewString(),
			RecipientID:    in.OwnerID,
			Type:           db.NotificationTypeContentReaction,
			FromUserID:     reactor.ID,
			FromUserName:   reactor.DisplayName,
			ContentOwnerID: in.OwnerID,
			ContentID:      in.ContentID,
			Emoji:          in.Emoji,
			CreatedAt:      now,
		}
		if err := tx.Create(&n).Error; err != nil {
			return err
		}
		result.Notification = &n
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// GetReaction loads the reaction of userID on (ownerID, contentID).
func (r *ReactionRepository) GetReaction(ctx context.Context, ownerID, contentID, userID string) (*db.Reaction, error) {
	var reaction db.Reaction
	err := r.db.WithContext(ctx).
		Where("owner_id = ? AND content_id = ? AND user_id = ?", ownerID, contentID, userID).
		Take(&reaction).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, svcErr.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &reaction, nil
}

// CountReactions counts reaction rows of a content item.
func (r *ReactionRepository) CountReactions(ctx context.Context, ownerID, contentID string) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&db.Reaction{}).
		Where("owner_id = ? AND content_id = ?", ownerID, contentID).
		Count(&count).Error
	return count, err
}

package repository

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/raizel/manadabook/internal/db"
)

// BlockRepository reads the block relations that feed suggestion filtering.
// Blocks are written by the moderation flow; Block/Unblock exist for seeding.
type BlockRepository struct {
	db *gorm.DB
}

// NewBlockRepository creates a new repository bound to the given DB connection.
func NewBlockRepository(database *gorm.DB) *BlockRepository {
	return &BlockRepository{db: database}
}

// Block records blocker -> blocked. Repeated calls are no-ops.
func (r *BlockRepository) Block(ctx context.Context, blockerID, blockedID string) error {
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&db.Block{BlockerID: blockerID, BlockedID: blockedID}).Error
}

// Unblock removes blocker -> blocked if present.
func (r *BlockRepository) Unblock(ctx context.Context, blockerID, blockedID string) error {
	return r.db.WithContext(ctx).
		Where("blocker_id = ? AND blocked_id = ?", blockerID, blockedID).
		Delete(&db.Block{}).Error
}

// ExcludedIDs returns the combined block set of userID: everyone userID
// blocked plus everyone who blocked userID.
func (r *BlockRepository) ExcludedIDs(ctx context.Context, userID string) ([]string, error) {
	var blockedByMe, blockedMe []string

	if err := r.db.WithContext(ctx).
		Model(&db.Block{}).
		Where("blocker_id = ?", userID).
		Pluck("blocked_id", &blockedByMe).Error; err != nil {
		return nil, err
	}
	if err := r.db.WithContext(ctx).
		Model(&db.Block{}).
		Where("blocked_id = ?", userID).
		Pluck("blocker_id", &blockedMe).Error; err != nil {
		return nil, err
	}
	return append(blockedByMe, blockedMe...), nil
}

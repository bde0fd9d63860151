package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/raizel/manadabook/internal/db"
	svcErr "github.com/raizel/manadabook/internal/errors"
	"github.com/raizel/manadabook/internal/utils/pagination"
)

// NotificationRepository serves a recipient's notification inbox.
// Every method is scoped by recipient, so a user can only touch their own rows.
type NotificationRepository struct {
	db *gorm.DB
}

// NewNotificationRepository creates a new repository bound to the given DB connection.
func NewNotificationRepository(database *gorm.DB) *NotificationRepository {
	return &NotificationRepository{db: database}
}

// List returns the recipient's notifications, newest first, with cursor pagination.
func (r *NotificationRepository) List(
	ctx context.Context,
	recipientID string,
	paginationToken *string,
	limit int,
) ([]db.Notification, *string, error) {
	limit = pagination.ClampLimit(limit)

	cursor, err := pagination.Decode(pagination.Deref(paginationToken))
	if err != nil {
		return nil, nil, svcErr.InvalidArgumentf("%v", err)
	}

	query := r.db.WithContext(ctx).
		Where("recipient_id = ?", recipientID).
		Order("created_at DESC, id DESC").
		Limit(limit + 1)

	if !cursor.IsZero() {
		ts := cursor.Time()
		query = query.Where("(created_at < ? OR (created_at = ? AND id < ?))", ts, ts, cursor.Key)
	}

	var items []db.Notification
	if err := query.Find(&items).Error; err != nil {
		return nil, nil, err
	}

	var nextToken *string
	if len(items) > limit {
		last := items[limit-1]
		token, _ := pagination.Encode(pagination.After(last.ID, last.CreatedAt))
		nextToken = &token
		items = items[:limit]
	}
	return items, nextToken, nil
}

// MarkRead flags one notification as read. Marking twice is fine.
// Returns ErrNotificationNotFound if it does not belong to recipientID.
func (r *NotificationRepository) MarkRead(ctx context.Context, recipientID, id string) error {
	res := r.db.WithContext(ctx).
		Model(&db.Notification{}).
		Where("id = ? AND recipient_id = ?", id, recipientID).
		UpdateColumn("is_read", true)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected > 0 {
		return nil
	}

	// MySQL reports 0 rows for unchanged values, so tell "already read" apart
	// from "not yours".
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&db.Notification{}).
		Where("id = ? AND recipient_id = ?", id, recipientID).
		Count(&count).Error; err != nil {
		return err
	}
	if count == 0 {
		return svcErr.ErrNotificationNotFound
	}
	return nil
}

// Delete removes one notification of recipientID.
func (r *NotificationRepository) Delete(ctx context.Context, recipientID, id string) error {
	res := r.db.WithContext(ctx).
		Where("id = ? AND recipient_id = ?", id, recipientID).
		Delete(&db.Notification{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return svcErr.ErrNotificationNotFound
	}
	return nil
}

// CountUnread counts unread notifications of recipientID.
func (r *NotificationRepository) CountUnread(ctx context.Context, recipientID string) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&db.Notification{}).
		Where("recipient_id = ? AND is_read = ?", recipientID, false).
		Count(&count).Error
	return count, err
}

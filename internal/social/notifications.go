package social

import (
	"context"
	"time"

	svcErr "github.com/raizel/manadabook/internal/errors"
)

// Notification is the recipient's view of one inbox entry.
type Notification struct {
	ID             string    `json:"id"`
	Type           string    `json:"type"`
	FromUserID     string    `json:"from_user_id"`
	FromUserName   string    `json:"from_user_name"`
	ContentOwnerID string    `json:"content_owner_id"`
	ContentID      string    `json:"content_id"`
	Emoji          string    `json:"emoji"`
	Read           bool      `json:"read"`
	CreatedAt      time.Time `json:"created_at"`
}

// ListNotifications returns recipientID's inbox, newest first.
func (s *Service) ListNotifications(ctx context.Context, recipientID string, token *string, limit int) ([]Notification, *string, error) {
	if err := validID("recipient_id", recipientID); err != nil {
		return nil, nil, err
	}
	items, next, err := s.notifications.List(ctx, recipientID, token, limit)
	if err != nil {
		return nil, nil, svcErr.Transient(err)
	}

	out := make([]Notification, 0, len(items))
	for _, n := range items {
		out = append(out, Notification{
			ID:             n.ID,
			Type:           n.Type,
			FromUserID:     n.FromUserID,
			FromUserName:   n.FromUserName,
			ContentOwnerID: n.ContentOwnerID,
			ContentID:      n.ContentID,
			Emoji:          n.Emoji,
			Read:           n.Read,
			CreatedAt:      n.CreatedAt,
		})
	}
	return out, next, nil
}

// MarkNotificationRead flags one of recipientID's notifications as read.
func (s *Service) MarkNotificationRead(ctx context.Context, recipientID, notificationID string) error {
	if err := validID("recipient_id", recipientID); err != nil {
		return err
	}
	if err := validID("notification_id", notificationID); err != nil {
		return err
	}
	return svcErr.Transient(s.notifications.MarkRead(ctx, recipientID, notificationID))
}

// DeleteNotification removes one of recipientID's notifications.
func (s *Service) DeleteNotification(ctx context.Context, recipientID, notificationID string) error {
	if err := validID("recipient_id", recipientID); err != nil {
		return err
	}
	if err := validID("notification_id", notificationID); err != nil {
		return err
	}
	return svcErr.Transient(s.notifications.Delete(ctx, recipientID, notificationID))
}

// CountUnread counts recipientID's unread notifications.
func (s *Service) CountUnread(ctx context.Context, recipientID string) (int64, error) {
	if err := validID("recipient_id", recipientID); err != nil {
		return 0, err
	}
	n, err := s.notifications.CountUnread(ctx, recipientID)
	if err != nil {
		return 0, svcErr.Transient(err)
	}
	return n, nil
}

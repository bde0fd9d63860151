package db

import (
	"time"
)

// User is a profile in the directory. ID is the opaque subject issued by
// the authentication provider.
//
// FollowersCount and FollowingCount are denormalized; they are only written
// inside the same transaction as the follows row they account for.
type User struct {
	ID             string    `gorm:"primaryKey;size:128"`
	DisplayName    string    `gorm:"size:128;not null"`
	FollowersCount int64     `gorm:"not null;default:0"`
	FollowingCount int64     `gorm:"not null;default:0"`
	CreatedAt      time.Time `gorm:"autoCreateTime"`
	UpdatedAt      time.Time `gorm:"autoUpdateTime"`
}

// Follow is a directed edge follower -> followee.
//
// Composite PK: (FollowerID, FolloweeID)
//   - At most one row per ordered pair; inserts use ON CONFLICT DO NOTHING
//     so the PK itself rejects duplicates.
//
// Indexes:
//   - idx_follows_follower_created(follower_id, created_at DESC) for "following" scans.
//   - idx_follows_followee_created(followee_id, created_at DESC) for "followers" scans.
//
// A single table with one index per direction replaces the mirrored
// per-user edge documents.
type Follow struct {
	FollowerID string    `gorm:"primaryKey;size:128;index:idx_follows_follower_created,priority:1"`
	FolloweeID string    `gorm:"primaryKey;size:128;index:idx_follows_followee_created,priority:1"`
	CreatedAt  time.Time `gorm:"autoCreateTime;index:idx_follows_follower_created,priority:2,sort:desc;index:idx_follows_followee_created,priority:2,sort:desc"`
}

// Block records that BlockerID blocked BlockedID. Suggestions exclude it
// in both directions.
type Block struct {
	BlockerID string    `gorm:"primaryKey;size:128"`
	BlockedID string    `gorm:"primaryKey;size:128;index:idx_blocks_blocked"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
}

// Content is any reactable item (post, moment, video, listing) owned by a user.
type Content struct {
	OwnerID        string    `gorm:"primaryKey;size:128"`
	ID             string    `gorm:"primaryKey;size:128"`
	Kind           string    `gorm:"size:32;not null"`
	ReactionsCount int64     `gorm:"not null;default:0"`
	CreatedAt      time.Time `gorm:"autoCreateTime"`
}

// TableName keeps the table name stable across gorm pluralization rules.
func (Content) TableName() string { return "contents" }

// Reaction is one user's reaction to one content item.
// Composite PK: (OwnerID, ContentID, UserID); a re-reaction overwrites Emoji.
type Reaction struct {
	OwnerID   string    `gorm:"primaryKey;size:128"`
	ContentID string    `gorm:"primaryKey;size:128"`
	UserID    string    `gorm:"primaryKey;size:128"`
	Emoji     string    `gorm:"size:32;not null"`
	ReactedAt time.Time `gorm:"not null"`
}

// Notification is addressed to RecipientID and created by the reaction fan-out.
type Notification struct {
	ID             string    `gorm:"primaryKey;size:36"`
	RecipientID    string    `gorm:"size:128;not null;index:idx_notifications_recipient_created,priority:1"`
	Type           string    `gorm:"size:32;not null"`
	FromUserID     string    `gorm:"size:128;not null"`
	FromUserName   string    `gorm:"size:128"`
	ContentOwnerID string    `gorm:"size:128"`
	ContentID      string    `gorm:"size:128"`
	Emoji          string    `gorm:"size:32"`
	Read           bool      `gorm:"column:is_read;not null;default:false"`
	CreatedAt      time.Time `gorm:"autoCreateTime;index:idx_notifications_recipient_created,priority:2,sort:desc"`
}

// NotificationTypeContentReaction marks a notification created by React.
const NotificationTypeContentReaction = "content_reaction"

// Models lists every table managed by AutoMigrate.
func Models() []any {
	return []any{&User{}, &Follow{}, &Block{}, &Content{}, &Reaction{}, &Notification{}}
}

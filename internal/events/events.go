package events

import (
	"context"
	"time"
)

// Subjects published after a mutation commits.
const (
	SubjectFollowed   = "social.followed"
	SubjectUnfollowed = "social.unfollowed"
	SubjectReacted    = "social.reacted"
)

// FollowEvent is the payload of social.followed and social.unfollowed.
type FollowEvent struct {
	FollowerID string    `json:"follower_id"`
	FolloweeID string    `json:"followee_id"`
	At         time.Time `json:"at"`
}

// ReactionEvent is the payload of social.reacted.
type ReactionEvent struct {
	ContentOwnerID string    `json:"content_owner_id"`
	ContentID      string    `json:"content_id"`
	UserID         string    `json:"user_id"`
	Emoji          string    `json:"emoji"`
	FirstReaction  bool      `json:"first_reaction"`
	NotificationID string    `json:"notification_id,omitempty"`
	At             time.Time `json:"at"`
}

// Publisher delivers events. Publishing happens after commit and is best
// effort: a failure never undoes the mutation.
type Publisher interface {
	Publish(ctx context.Context, subject string, payload any) error
}

// Nop drops every event. Used when NATS_URL is empty.
type Nop struct{}

func (Nop) Publish(context.Context, string, any) error { return nil }

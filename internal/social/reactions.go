package social

import (
	"context"
	"strings"
	"time"
	"unicode/utf8"

	svcErr "github.com/raizel/manadabook/internal/errors"
	"github.com/raizel/manadabook/internal/events"
	"github.com/raizel/manadabook/internal/repository"
)

// Content kinds that can be reacted to.
var contentKinds = map[string]bool{
	"post":    true,
	"moment":  true,
	"video":   true,
	"listing": true,
}

// PublishContent registers a reactable item owned by ownerID.
func (s *Service) PublishContent(ctx context.Context, ownerID, contentID, kind string) error {
	if err := validID("owner_id", ownerID); err != nil {
		return err
	}
	if err := validID("content_id", contentID); err != nil {
		return err
	}
	kind = strings.ToLower(strings.TrimSpace(kind))
	if !contentKinds[kind] {
		return svcErr.InvalidArgumentf("unknown content kind %q", kind)
	}
	if _, err := s.users.Get(ctx, ownerID); err != nil {
		return svcErr.Transient(err)
	}
	if _, err := s.reactions.CreateContent(ctx, ownerID, contentID, kind); err != nil {
		return svcErr.Transient(err)
	}
	return nil
}

// React records reactingUserID's emoji on (contentOwnerID, contentID).
//
// Behavior:
//   - One reaction per user and content; a repeat overwrites the emoji.
//   - reactionsCount grows only on a first reaction, unless
//     Options.CountRepeatReactions restores per-call counting.
//   - The owner gets a notification unless they reacted themselves.
//   - All writes commit as one transaction.
func (s *Service) React(ctx context.Context, contentOwnerID, contentID, reactingUserID, emoji string) error {
	s.log.Debug("React called", "owner", contentOwnerID, "content", contentID, "user", reactingUserID)

	if err := validID("content_owner_id", contentOwnerID); err != nil {
		return err
	}
	if err := validID("content_id", contentID); err != nil {
		return err
	}
	if err := validID("user_id", reactingUserID); err != nil {
		return err
	}
	if err := validEmoji(emoji); err != nil {
		return err
	}

	res, err := s.reactions.React(ctx, repository.ReactionInput{
		OwnerID:   contentOwnerID,
		ContentID: contentID,
		UserID:    reactingUserID,
		Emoji:     emoji,
	}, s.opts.CountRepeatReactions)
	if err != nil {
		s.log.Debug("React rejected", "owner", contentOwnerID, "content", contentID, "err", err)
		return svcErr.Transient(err)
	}

	evt := events.ReactionEvent{
		ContentOwnerID: contentOwnerID,
		ContentID:      contentID,
		UserID:         reactingUserID,
		Emoji:          emoji,
		FirstReaction:  res.Inserted,
		At:             time.Now().UTC(),
	}
	if res.Notification != nil {
		evt.NotificationID = res.Notification.ID
	}
	s.publish(ctx, events.SubjectReacted, evt)
	return nil
}

// ContentReactions returns the stored counter of a content item.
func (s *Service) ContentReactions(ctx context.Context, ownerID, contentID string) (int64, error) {
	c, err := s.reactions.GetContent(ctx, ownerID, contentID)
	if err != nil {
		return 0, svcErr.Transient(err)
	}
	return c.ReactionsCount, nil
}

func validEmoji(emoji string) error {
	switch {
	case strings.TrimSpace(emoji) == "":
		return svcErr.InvalidArgumentf("emoji is required")
	case !utf8.ValidString(emoji):
		return svcErr.InvalidArgumentf("emoji is not valid UTF-8")
	case len(emoji) > maxEmoji:
		return svcErr.InvalidArgumentf("emoji longer than %d bytes", maxEmoji)
	}
	return nil
}

package social_test

import (
	"context"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/raizel/manadabook/internal/app"
	"github.com/raizel/manadabook/internal/cache"
	"github.com/raizel/manadabook/internal/config"
	"github.com/raizel/manadabook/internal/db"
	svcErr "github.com/raizel/manadabook/internal/errors"
	"github.com/raizel/manadabook/internal/events"
	"github.com/raizel/manadabook/internal/logger"
	"github.com/raizel/manadabook/internal/repository"
	"github.com/raizel/manadabook/internal/social"
)

//
// Test helpers
//

type recordingPublisher struct {
	mu       sync.Mutex
	subjects []string
	payloads []any
}

func (p *recordingPublisher) Publish(_ context.Context, subject string, payload any) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.subjects = append(p.subjects, subject)
	p.payloads = append(p.payloads, payload)
	return nil
}

type fixture struct {
	svc    *social.Service
	db     *gorm.DB
	mr     *miniredis.Miniredis
	events *recordingPublisher
}

// setupService spins up an in-memory SQLite DB and a miniredis and wires
// them into a social.Service. Users a..e are registered with zero counters.
func setupService(t *testing.T, tweak func(cfg *config.Config)) *fixture {
	t.Helper()

	dbase, err := db.OpenMemory(strings.ReplaceAll(t.Name(), "/", "_"))
	require.NoError(t, err)
	sqlDB, err := dbase.DB()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	mr := miniredis.RunT(t)

	cfg := config.New()
	cfg.Redis.Addr = mr.Addr()
	cfg.Suggest.CacheTTL = time.Minute
	cfg.Reactions.CountRepeats = false
	if tweak != nil {
		tweak(cfg)
	}

	pub := &recordingPublisher{}
	appCtx := app.New(cfg, dbase, cache.NewRedisCache(cfg), pub, logger.Discard())
	svc := social.NewService(appCtx)

	ctx := context.Background()
	for _, id := range []string{"a", "b", "c", "d", "e"} {
		_, err := svc.RegisterUser(ctx, id, "Pet "+strings.ToUpper(id))
		require.NoError(t, err)
	}
	return &fixture{svc: svc, db: dbase, mr: mr, events: pub}
}

func (f *fixture) counts(t *testing.T, id string) (following, followers int64) {
	t.Helper()
	u, err := f.svc.GetUser(context.Background(), id)
	require.NoError(t, err)
	return u.FollowingCount, u.FollowersCount
}

func ids(users []social.UserSummary) []string {
	out := make([]string, 0, len(users))
	for _, u := range users {
		out = append(out, u.ID)
	}
	return out
}

//
// Follow graph
//

func TestFollowSelfAlwaysFails(t *testing.T) {
	f := setupService(t, nil)
	for _, id := range []string{"a", "b", "nobody"} {
		assert.ErrorIs(t, f.svc.Follow(context.Background(), id, id), svcErr.ErrInvalidOperation)
	}
}

func TestFollowTwiceKeepsSingleEdge(t *testing.T) {
	ctx := context.Background()
	f := setupService(t, nil)

	require.NoError(t, f.svc.Follow(ctx, "a", "b"))
	assert.ErrorIs(t, f.svc.Follow(ctx, "a", "b"), svcErr.ErrInvalidOperation)

	ok, err := f.svc.IsFollowing(ctx, "a", "b")
	require.NoError(t, err)
	assert.True(t, ok)

	following, _ := f.counts(t, "a")
	assert.Equal(t, int64(1), following)
}

func TestFollowUnfollowScenario(t *testing.T) {
	ctx := context.Background()
	f := setupService(t, nil)

	require.NoError(t, f.svc.Follow(ctx, "a", "b"))

	following, followers := f.counts(t, "a")
	assert.Equal(t, int64(1), following)
	assert.Equal(t, int64(0), followers)
	following, followers = f.counts(t, "b")
	assert.Equal(t, int64(0), following)
	assert.Equal(t, int64(1), followers)
	ok, err := f.svc.IsFollowing(ctx, "a", "b")
	require.NoError(t, err)
	assert.True(t, ok)

	require.NoError(t, f.svc.Unfollow(ctx, "a", "b"))

	following, _ = f.counts(t, "a")
	_, followers = f.counts(t, "b")
	assert.Zero(t, following)
	assert.Zero(t, followers)
	ok, err = f.svc.IsFollowing(ctx, "a", "b")
	require.NoError(t, err)
	assert.False(t, ok)

	assert.ErrorIs(t, f.svc.Unfollow(ctx, "a", "b"), svcErr.ErrInvalidOperation)
	assert.Equal(t, []string{events.SubjectFollowed, events.SubjectUnfollowed}, f.events.subjects)
}

func TestFollowUnknownUser(t *testing.T) {
	f := setupService(t, nil)
	assert.ErrorIs(t, f.svc.Follow(context.Background(), "a", "ghost"), svcErr.ErrNotFound)
	assert.ErrorIs(t, f.svc.Follow(context.Background(), "", "a"), svcErr.ErrInvalidArgument)
}

func TestGetFollowersAndFollowing(t *testing.T) {
	ctx := context.Background()
	f := setupService(t, nil)

	require.NoError(t, f.svc.Follow(ctx, "b", "a"))
	require.NoError(t, f.svc.Follow(ctx, "c", "a"))
	require.NoError(t, f.svc.Follow(ctx, "a", "d"))

	followers, err := f.svc.GetFollowers(ctx, "a", 10)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"b", "c"}, ids(followers))

	following, err := f.svc.GetFollowing(ctx, "a", 10)
	require.NoError(t, err)
	assert.Equal(t, []string{"d"}, ids(following))
	assert.Equal(t, int64(1), following[0].FollowersCount)

	one, err := f.svc.GetFollowers(ctx, "a", 1)
	require.NoError(t, err)
	assert.Len(t, one, 1)
}

func TestStoreFailureIsTransient(t *testing.T) {
	ctx := context.Background()
	f := setupService(t, nil)
	require.NoError(t, f.svc.Follow(ctx, "a", "b"))
	require.NoError(t, f.svc.Follow(ctx, "b", "c"))
	f.mr.FlushAll()

	sqlDB, err := f.db.DB()
	require.NoError(t, err)
	require.NoError(t, sqlDB.Close())

	err = f.svc.Follow(ctx, "a", "c")
	assert.ErrorIs(t, err, svcErr.ErrTransientStore)
	assert.ErrorIs(t, f.svc.React(ctx, "a", "p", "b", "❤️"), svcErr.ErrTransientStore)
	assert.Empty(t, f.svc.GetSuggestions(ctx, "a"), "suggestions fail soft")
}

//
// Suggestions
//

func TestSuggestionsChain(t *testing.T) {
	ctx := context.Background()
	f := setupService(t, nil)

	require.NoError(t, f.svc.Follow(ctx, "a", "b"))
	require.NoError(t, f.svc.Follow(ctx, "b", "c"))
	require.NoError(t, f.svc.Follow(ctx, "c", "d"))

	got := f.svc.GetSuggestions(ctx, "a")
	assert.Equal(t, []string{"c"}, ids(got))
	assert.Equal(t, "Pet C", got[0].DisplayName)
}

func TestSuggestionsExcludeBlocked(t *testing.T) {
	ctx := context.Background()
	f := setupService(t, nil)
	blocks := repository.NewBlockRepository(f.db)

	require.NoError(t, f.svc.Follow(ctx, "a", "b"))
	require.NoError(t, f.svc.Follow(ctx, "b", "a"))
	require.NoError(t, f.svc.Follow(ctx, "b", "c"))
	require.NoError(t, f.svc.Follow(ctx, "b", "d"))
	require.NoError(t, f.svc.Follow(ctx, "b", "e"))
	require.NoError(t, blocks.Block(ctx, "a", "c"))
	require.NoError(t, blocks.Block(ctx, "d", "a"))

	got := f.svc.GetSuggestions(ctx, "a")
	assert.Equal(t, []string{"e"}, ids(got))
}

func TestSuggestionsCachedUntilFollowChanges(t *testing.T) {
	ctx := context.Background()
	f := setupService(t, nil)

	require.NoError(t, f.svc.Follow(ctx, "a", "b"))
	require.NoError(t, f.svc.Follow(ctx, "b", "c"))
	assert.Equal(t, []string{"c"}, ids(f.svc.GetSuggestions(ctx, "a")))
	assert.True(t, f.mr.Exists("suggestions:a"))

	// graph changes behind the service's back are not visible while cached
	require.NoError(t, repository.NewFollowRepository(f.db).Follow(ctx, "b", "d"))
	assert.Equal(t, []string{"c"}, ids(f.svc.GetSuggestions(ctx, "a")))

	// following c drops the entry and c disappears
	require.NoError(t, f.svc.Follow(ctx, "a", "c"))
	assert.False(t, f.mr.Exists("suggestions:a"))
	assert.Equal(t, []string{"d"}, ids(f.svc.GetSuggestions(ctx, "a")))
}

func TestCachedSuggestionsDropNewBlocks(t *testing.T) {
	ctx := context.Background()
	f := setupService(t, nil)

	require.NoError(t, f.svc.Follow(ctx, "a", "b"))
	require.NoError(t, f.svc.Follow(ctx, "b", "c"))
	require.NoError(t, f.svc.Follow(ctx, "b", "d"))
	assert.Equal(t, []string{"d", "c"}, ids(f.svc.GetSuggestions(ctx, "a")))
	require.True(t, f.mr.Exists("suggestions:a"))

	// blocks are written elsewhere and never touch the cache
	require.NoError(t, repository.NewBlockRepository(f.db).Block(ctx, "c", "a"))
	assert.Equal(t, []string{"d"}, ids(f.svc.GetSuggestions(ctx, "a")))

	require.NoError(t, repository.NewBlockRepository(f.db).Block(ctx, "a", "d"))
	assert.Empty(t, f.svc.GetSuggestions(ctx, "a"))
}

func TestCachedSuggestionsDropFollowedUsers(t *testing.T) {
	ctx := context.Background()
	f := setupService(t, nil)

	require.NoError(t, f.svc.Follow(ctx, "a", "b"))
	require.NoError(t, f.svc.Follow(ctx, "b", "c"))
	assert.Equal(t, []string{"c"}, ids(f.svc.GetSuggestions(ctx, "a")))

	// an edge committed after invalidation, e.g. a Follow racing a cache write
	require.NoError(t, repository.NewFollowRepository(f.db).Follow(ctx, "a", "c"))
	require.True(t, f.mr.Exists("suggestions:a"))
	assert.Empty(t, f.svc.GetSuggestions(ctx, "a"))
}

func TestCachedSuggestionsFailSoft(t *testing.T) {
	ctx := context.Background()
	f := setupService(t, nil)

	require.NoError(t, f.svc.Follow(ctx, "a", "b"))
	require.NoError(t, f.svc.Follow(ctx, "b", "c"))
	assert.Equal(t, []string{"c"}, ids(f.svc.GetSuggestions(ctx, "a")))
	require.True(t, f.mr.Exists("suggestions:a"))

	sqlDB, err := f.db.DB()
	require.NoError(t, err)
	require.NoError(t, sqlDB.Close())

	assert.Empty(t, f.svc.GetSuggestions(ctx, "a"))
}

func TestSuggestionsWithoutCache(t *testing.T) {
	ctx := context.Background()
	f := setupService(t, func(cfg *config.Config) { cfg.Suggest.CacheTTL = 0 })

	require.NoError(t, f.svc.Follow(ctx, "a", "b"))
	require.NoError(t, f.svc.Follow(ctx, "b", "c"))
	assert.Equal(t, []string{"c"}, ids(f.svc.GetSuggestions(ctx, "a")))
	assert.False(t, f.mr.Exists("suggestions:a"))
	assert.Empty(t, f.svc.GetSuggestions(ctx, "e"), "cold start")
}

//
// Reactions and notifications
//

func TestReactTwiceCountsOnce(t *testing.T) {
	ctx := context.Background()
	f := setupService(t, nil)
	require.NoError(t, f.svc.PublishContent(ctx, "a", "moment-1", "moment"))

	require.NoError(t, f.svc.React(ctx, "a", "moment-1", "b", "❤️"))
	require.NoError(t, f.svc.React(ctx, "a", "moment-1", "b", "❤️"))

	count, err := f.svc.ContentReactions(ctx, "a", "moment-1")
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)

	rows, err := repository.NewReactionRepository(f.db).CountReactions(ctx, "a", "moment-1")
	require.NoError(t, err)
	assert.Equal(t, int64(1), rows)

	first := f.events.payloads[0].(events.ReactionEvent)
	second := f.events.payloads[1].(events.ReactionEvent)
	assert.True(t, first.FirstReaction)
	assert.False(t, second.FirstReaction)
}

func TestReactLegacyCountRepeats(t *testing.T) {
	ctx := context.Background()
	f := setupService(t, func(cfg *config.Config) { cfg.Reactions.CountRepeats = true })
	require.NoError(t, f.svc.PublishContent(ctx, "a", "moment-1", "moment"))

	require.NoError(t, f.svc.React(ctx, "a", "moment-1", "b", "❤️"))
	require.NoError(t, f.svc.React(ctx, "a", "moment-1", "b", "❤️"))

	count, err := f.svc.ContentReactions(ctx, "a", "moment-1")
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)
}

func TestReactNotifiesOwnerButNotSelf(t *testing.T) {
	ctx := context.Background()
	f := setupService(t, nil)
	require.NoError(t, f.svc.PublishContent(ctx, "a", "post-1", "post"))

	require.NoError(t, f.svc.React(ctx, "a", "post-1", "a", "🐾"))
	items, _, err := f.svc.ListNotifications(ctx, "a", nil, 10)
	require.NoError(t, err)
	assert.Empty(t, items, "no self-notification")

	require.NoError(t, f.svc.React(ctx, "a", "post-1", "b", "🐶"))
	items, _, err = f.svc.ListNotifications(ctx, "a", nil, 10)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "b", items[0].FromUserID)
	assert.Equal(t, "Pet B", items[0].FromUserName)
	assert.Equal(t, "post-1", items[0].ContentID)
	assert.Equal(t, "🐶", items[0].Emoji)
	assert.False(t, items[0].Read)

	unread, err := f.svc.CountUnread(ctx, "a")
	require.NoError(t, err)
	assert.Equal(t, int64(1), unread)

	assert.ErrorIs(t, f.svc.MarkNotificationRead(ctx, "b", items[0].ID), svcErr.ErrNotFound, "only the recipient")
	require.NoError(t, f.svc.MarkNotificationRead(ctx, "a", items[0].ID))
	unread, err = f.svc.CountUnread(ctx, "a")
	require.NoError(t, err)
	assert.Zero(t, unread)

	require.NoError(t, f.svc.DeleteNotification(ctx, "a", items[0].ID))
	assert.ErrorIs(t, f.svc.DeleteNotification(ctx, "a", items[0].ID), svcErr.ErrNotFound)
}

func TestReactValidation(t *testing.T) {
	ctx := context.Background()
	f := setupService(t, nil)
	require.NoError(t, f.svc.PublishContent(ctx, "a", "post-1", "post"))

	assert.ErrorIs(t, f.svc.React(ctx, "a", "post-1", "b", ""), svcErr.ErrInvalidArgument)
	assert.ErrorIs(t, f.svc.React(ctx, "a", "post-1", "b", strings.Repeat("🐶", 20)), svcErr.ErrInvalidArgument)
	assert.ErrorIs(t, f.svc.React(ctx, "a", "missing", "b", "🐶"), svcErr.ErrNotFound)

	assert.ErrorIs(t, f.svc.PublishContent(ctx, "a", "post-1", "post"), svcErr.ErrInvalidOperation)
	assert.ErrorIs(t, f.svc.PublishContent(ctx, "a", "x", "calculator"), svcErr.ErrInvalidArgument)
	assert.ErrorIs(t, f.svc.PublishContent(ctx, "ghost", "x", "post"), svcErr.ErrNotFound)
}

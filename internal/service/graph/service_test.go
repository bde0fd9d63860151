package graph_test

import (
	"context"
	"net"
	"strings"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
	"google.golang.org/grpc/test/bufconn"

	"github.com/raizel/manadabook/internal/app"
	"github.com/raizel/manadabook/internal/auth"
	"github.com/raizel/manadabook/internal/cache"
	"github.com/raizel/manadabook/internal/config"
	"github.com/raizel/manadabook/internal/db"
	"github.com/raizel/manadabook/internal/logger"
	pb "github.com/raizel/manadabook/internal/proto/graph"
	"github.com/raizel/manadabook/internal/server"
	"github.com/raizel/manadabook/internal/service/graph"
)

//
// Test helpers
//

type harness struct {
	client   pb.GraphServiceClient
	conn     *grpc.ClientConn
	verifier *auth.Verifier
}

// setupServer wires the full stack (SQLite, miniredis, auth interceptor,
// GraphService) behind an in-memory bufconn listener.
func setupServer(t *testing.T) *harness {
	t.Helper()

	dbase, err := db.OpenMemory(strings.ReplaceAll(t.Name(), "/", "_"))
	require.NoError(t, err)
	sqlDB, err := dbase.DB()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	mr := miniredis.RunT(t)

	cfg := config.New()
	cfg.Redis.Addr = mr.Addr()

	verifier, err := auth.NewVerifier("test-secret", "manadabook-test")
	require.NoError(t, err)

	appCtx := app.New(cfg, dbase, cache.NewRedisCache(cfg), nil, logger.Discard())
	grpcServer, _ := server.NewGRPCServer(verifier, logger.Discard(), graph.NewRegistrar(appCtx))

	lis := bufconn.Listen(1 << 20)
	go func() { _ = grpcServer.Serve(lis) }()
	t.Cleanup(grpcServer.Stop)

	conn, err := grpc.NewClient("passthrough:///bufnet",
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) {
			return lis.DialContext(ctx)
		}),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })

	return &harness{client: pb.NewGraphServiceClient(conn), conn: conn, verifier: verifier}
}

// as returns a context authenticated as userID.
func (h *harness) as(t *testing.T, userID string) context.Context {
	t.Helper()
	token, err := h.verifier.Issue(userID, time.Hour)
	require.NoError(t, err)
	return metadata.AppendToOutgoingContext(context.Background(), "authorization", "Bearer "+token)
}

func (h *harness) register(t *testing.T, ids ...string) {
	t.Helper()
	for _, id := range ids {
		_, err := h.client.RegisterUser(h.as(t, id), &pb.RegisterUserRequest{DisplayName: "Pet " + strings.ToUpper(id)})
		require.NoError(t, err)
	}
}

func code(err error) codes.Code {
	return status.Code(err)
}

func userIDs(users []*pb.UserSummary) []string {
	out := make([]string, 0, len(users))
	for _, u := range users {
		out = append(out, u.UserId)
	}
	return out
}

//
// Tests
//

// TestMissingTokenIsRejected ensures every GraphService call needs a bearer token.
func TestMissingTokenIsRejected(t *testing.T) {
	h := setupServer(t)

	_, err := h.client.GetUser(context.Background(), &pb.GetUserRequest{UserId: "a"})
	assert.Equal(t, codes.Unauthenticated, code(err))

	bad := metadata.AppendToOutgoingContext(context.Background(), "authorization", "Bearer nope")
	_, err = h.client.Follow(bad, &pb.FollowRequest{FolloweeId: "a"})
	assert.Equal(t, codes.Unauthenticated, code(err))
}

// TestHealthIsPublic checks that the health service bypasses authentication.
func TestHealthIsPublic(t *testing.T) {
	h := setupServer(t)

	resp, err := healthpb.NewHealthClient(h.conn).Check(context.Background(), &healthpb.HealthCheckRequest{
		Service: pb.ServiceName,
	})
	require.NoError(t, err)
	assert.Equal(t, healthpb.HealthCheckResponse_SERVING, resp.Status)
}

// TestFollowOverGRPC walks the follow lifecycle and its status codes.
func TestFollowOverGRPC(t *testing.T) {
	h := setupServer(t)
	h.register(t, "a", "b", "c")

	_, err := h.client.Follow(h.as(t, "a"), &pb.FollowRequest{FolloweeId: "b"})
	require.NoError(t, err)

	_, err = h.client.Follow(h.as(t, "a"), &pb.FollowRequest{FolloweeId: "b"})
	assert.Equal(t, codes.AlreadyExists, code(err))

	_, err = h.client.Follow(h.as(t, "a"), &pb.FollowRequest{FolloweeId: "a"})
	assert.Equal(t, codes.FailedPrecondition, code(err))

	_, err = h.client.Follow(h.as(t, "a"), &pb.FollowRequest{FolloweeId: "ghost"})
	assert.Equal(t, codes.NotFound, code(err))

	got, err := h.client.IsFollowing(h.as(t, "c"), &pb.IsFollowingRequest{FollowerId: "a", FolloweeId: "b"})
	require.NoError(t, err)
	assert.True(t, got.Following)

	b, err := h.client.GetUser(h.as(t, "c"), &pb.GetUserRequest{UserId: "b"})
	require.NoError(t, err)
	assert.Equal(t, int64(1), b.User.FollowersCount)
	assert.Equal(t, "Pet B", b.User.DisplayName)

	followers, err := h.client.ListFollowers(h.as(t, "c"), &pb.ListUsersRequest{UserId: "b"})
	require.NoError(t, err)
	assert.Equal(t, []string{"a"}, userIDs(followers.Users))
	assert.Empty(t, followers.GetNextPaginationToken())

	_, err = h.client.Unfollow(h.as(t, "a"), &pb.FollowRequest{FolloweeId: "b"})
	require.NoError(t, err)

	_, err = h.client.Unfollow(h.as(t, "a"), &pb.FollowRequest{FolloweeId: "b"})
	assert.Equal(t, codes.FailedPrecondition, code(err))

	a, err := h.client.GetUser(h.as(t, "a"), &pb.GetUserRequest{UserId: "a"})
	require.NoError(t, err)
	assert.Zero(t, a.User.FollowingCount)
}

// TestListFollowingPagination pages through three followees one at a time.
func TestListFollowingPagination(t *testing.T) {
	h := setupServer(t)
	h.register(t, "a", "b", "c", "d")

	for _, id := range []string{"b", "c", "d"} {
		_, err := h.client.Follow(h.as(t, "a"), &pb.FollowRequest{FolloweeId: id})
		require.NoError(t, err)
	}

	var seen []string
	var token *string
	for i := 0; i < 5; i++ {
		resp, err := h.client.ListFollowing(h.as(t, "a"), &pb.ListUsersRequest{UserId: "a", PaginationToken: token, Limit: 1})
		require.NoError(t, err)
		seen = append(seen, userIDs(resp.Users)...)
		if resp.NextPaginationToken == nil {
			break
		}
		token = resp.NextPaginationToken
	}
	assert.ElementsMatch(t, []string{"b", "c", "d"}, seen)
	assert.Len(t, seen, 3)
}

// TestSuggestionsOverGRPC covers the a -> b -> c chain yielding c for a.
func TestSuggestionsOverGRPC(t *testing.T) {
	h := setupServer(t)
	h.register(t, "a", "b", "c")

	_, err := h.client.Follow(h.as(t, "a"), &pb.FollowRequest{FolloweeId: "b"})
	require.NoError(t, err)
	_, err = h.client.Follow(h.as(t, "b"), &pb.FollowRequest{FolloweeId: "c"})
	require.NoError(t, err)

	resp, err := h.client.GetSuggestions(h.as(t, "a"), &pb.Empty{})
	require.NoError(t, err)
	assert.Equal(t, []string{"c"}, userIDs(resp.Users))
}

// TestReactionNotificationsOverGRPC covers react -> inbox -> read -> delete.
func TestReactionNotificationsOverGRPC(t *testing.T) {
	h := setupServer(t)
	h.register(t, "owner", "fan")

	_, err := h.client.PublishContent(h.as(t, "owner"), &pb.PublishContentRequest{ContentId: "p1", Kind: "post"})
	require.NoError(t, err)

	_, err = h.client.PublishContent(h.as(t, "owner"), &pb.PublishContentRequest{ContentId: "p1", Kind: "post"})
	assert.Equal(t, codes.AlreadyExists, code(err))

	_, err = h.client.React(h.as(t, "fan"), &pb.ReactRequest{ContentOwnerId: "owner", ContentId: "p1", Emoji: "🐾"})
	require.NoError(t, err)

	_, err = h.client.React(h.as(t, "fan"), &pb.ReactRequest{ContentOwnerId: "owner", ContentId: "missing", Emoji: "🐾"})
	assert.Equal(t, codes.NotFound, code(err))

	_, err = h.client.React(h.as(t, "fan"), &pb.ReactRequest{ContentOwnerId: "owner", ContentId: "p1"})
	assert.Equal(t, codes.InvalidArgument, code(err))

	unread, err := h.client.CountUnread(h.as(t, "owner"), &pb.Empty{})
	require.NoError(t, err)
	assert.Equal(t, uint64(1), unread.Count)

	inbox, err := h.client.ListNotifications(h.as(t, "owner"), &pb.ListNotificationsRequest{})
	require.NoError(t, err)
	require.Len(t, inbox.Notifications, 1)
	n := inbox.Notifications[0]
	assert.Equal(t, "fan", n.FromUserId)
	assert.Equal(t, "Pet FAN", n.FromUserName)
	assert.Equal(t, "🐾", n.Emoji)
	assert.False(t, n.Read)
	assert.NotZero(t, n.UnixTimestamp)

	// someone else's notification is invisible
	_, err = h.client.MarkNotificationRead(h.as(t, "fan"), &pb.NotificationRequest{NotificationId: n.Id})
	assert.Equal(t, codes.NotFound, code(err))

	_, err = h.client.MarkNotificationRead(h.as(t, "owner"), &pb.NotificationRequest{NotificationId: n.Id})
	require.NoError(t, err)

	unread, err = h.client.CountUnread(h.as(t, "owner"), &pb.Empty{})
	require.NoError(t, err)
	assert.Zero(t, unread.Count)

	_, err = h.client.DeleteNotification(h.as(t, "owner"), &pb.NotificationRequest{NotificationId: n.Id})
	require.NoError(t, err)
	_, err = h.client.DeleteNotification(h.as(t, "owner"), &pb.NotificationRequest{NotificationId: n.Id})
	assert.Equal(t, codes.NotFound, code(err))
}

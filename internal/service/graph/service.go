package graph

import (
	"context"

	"github.com/raizel/manadabook/internal/app"
	"github.com/raizel/manadabook/internal/auth"
	svcErr "github.com/raizel/manadabook/internal/errors"
	pb "github.com/raizel/manadabook/internal/proto/graph"
	"github.com/raizel/manadabook/internal/social"
)

// Service implements the Graph gRPC API on top of social.Service.
// The authenticated caller (JWT subject) is the actor of every mutation
// and is passed explicitly into the in-process API.
type Service struct {
	appCtx *app.AppContext
	social *social.Service

	pb.UnimplementedGraphServiceServer
}

// NewGraphService creates a new Graph service with dependencies from AppContext.
func NewGraphService(appCtx *app.AppContext) *Service {
	return &Service{
		appCtx: appCtx,
		social: social.NewService(appCtx),
	}
}

func caller(ctx context.Context) (string, error) {
	id, err := auth.UserIDFromContext(ctx)
	if err != nil {
		return "", svcErr.Unauthenticated("caller identity required")
	}
	return id, nil
}

// RegisterUser creates or renames the caller's own profile.
func (s *Service) RegisterUser(ctx context.Context, req *pb.RegisterUserRequest) (*pb.UserResponse, error) {
	me, err := caller(ctx)
	if err != nil {
		return nil, err
	}
	u, err := s.social.RegisterUser(ctx, me, req.DisplayName)
	if err != nil {
		s.appCtx.Logger.Error("RegisterUser failed", "user", me, "err", err)
		return nil, svcErr.Map(err)
	}
	return &pb.UserResponse{User: toPB(u)}, nil
}

func (s *Service) GetUser(ctx context.Context, req *pb.GetUserRequest) (*pb.UserResponse, error) {
	u, err := s.social.GetUser(ctx, req.UserId)
	if err != nil {
		return nil, svcErr.Map(err)
	}
	return &pb.UserResponse{User: toPB(u)}, nil
}

// Follow makes the caller follow req.FolloweeId.
//
// Status codes:
//   - FailedPrecondition for self-follow
//   - AlreadyExists when the edge is already there
//   - NotFound when either profile is missing
//   - Unavailable when the store failed; the call may be retried
func (s *Service) Follow(ctx context.Context, req *pb.FollowRequest) (*pb.Empty, error) {
	me, err := caller(ctx)
	if err != nil {
		return nil, err
	}
	s.appCtx.Logger.Debug("Follow called", "follower", me, "followee", req.FolloweeId)

	if err := s.social.Follow(ctx, me, req.FolloweeId); err != nil {
		return nil, svcErr.Map(err)
	}
	return &pb.Empty{}, nil
}

// Unfollow removes the caller's edge to req.FolloweeId.
func (s *Service) Unfollow(ctx context.Context, req *pb.FollowRequest) (*pb.Empty, error) {
	me, err := caller(ctx)
	if err != nil {
		return nil, err
	}
	s.appCtx.Logger.Debug("Unfollow called", "follower", me, "followee", req.FolloweeId)

	if err := s.social.Unfollow(ctx, me, req.FolloweeId); err != nil {
		return nil, svcErr.Map(err)
	}
	return &pb.Empty{}, nil
}

func (s *Service) IsFollowing(ctx context.Context, req *pb.IsFollowingRequest) (*pb.IsFollowingResponse, error) {
	ok, err := s.social.IsFollowing(ctx, req.FollowerId, req.FolloweeId)
	if err != nil {
		return nil, svcErr.Map(err)
	}
	return &pb.IsFollowingResponse{Following: ok}, nil
}

// ListFollowers pages through the accounts following req.UserId, newest first.
func (s *Service) ListFollowers(ctx context.Context, req *pb.ListUsersRequest) (*pb.ListUsersResponse, error) {
	s.appCtx.Logger.Debug("ListFollowers called", "user", req.UserId, "token", req.GetPaginationToken())

	users, next, err := s.social.ListFollowers(ctx, req.UserId, req.GetPaginationToken(), int(req.Limit))
	if err != nil {
		return nil, svcErr.Map(err)
	}
	return &pb.ListUsersResponse{Users: toPBList(users), NextPaginationToken: next}, nil
}

// ListFollowing pages through the accounts req.UserId follows, newest first.
func (s *Service) ListFollowing(ctx context.Context, req *pb.ListUsersRequest) (*pb.ListUsersResponse, error) {
	s.appCtx.Logger.Debug("ListFollowing called", "user", req.UserId, "token", req.GetPaginationToken())

	users, next, err := s.social.ListFollowing(ctx, req.UserId, req.GetPaginationToken(), int(req.Limit))
	if err != nil {
		return nil, svcErr.Map(err)
	}
	return &pb.ListUsersResponse{Users: toPBList(users), NextPaginationToken: next}, nil
}

// GetSuggestions returns friends-of-friends for the caller. Store failures
// degrade to an empty list rather than an error status.
func (s *Service) GetSuggestions(ctx context.Context, _ *pb.Empty) (*pb.ListUsersResponse, error) {
	me, err := caller(ctx)
	if err != nil {
		return nil, err
	}
	users := s.social.GetSuggestions(ctx, me)
	s.appCtx.Logger.Debug("GetSuggestions result", "user", me, "count", len(users))
	return &pb.ListUsersResponse{Users: toPBList(users)}, nil
}

func (s *Service) PublishContent(ctx context.Context, req *pb.PublishContentRequest) (*pb.Empty, error) {
	me, err := caller(ctx)
	if err != nil {
		return nil, err
	}
	if err := s.social.PublishContent(ctx, me, req.ContentId, req.Kind); err != nil {
		return nil, svcErr.Map(err)
	}
	return &pb.Empty{}, nil
}

// React records the caller's emoji on a content item and notifies its owner.
func (s *Service) React(ctx context.Context, req *pb.ReactRequest) (*pb.Empty, error) {
	me, err := caller(ctx)
	if err != nil {
		return nil, err
	}
	s.appCtx.Logger.Debug(
		"React called",
		"owner", req.ContentOwnerId,
		"content", req.ContentId,
		"user", me,
	)
	if err := s.social.React(ctx, req.ContentOwnerId, req.ContentId, me, req.Emoji); err != nil {
		return nil, svcErr.Map(err)
	}
	return &pb.Empty{}, nil
}

// ListNotifications pages through the caller's inbox, newest first.
func (s *Service) ListNotifications(ctx context.Context, req *pb.ListNotificationsRequest) (*pb.ListNotificationsResponse, error) {
	me, err := caller(ctx)
	if err != nil {
		return nil, err
	}
	items, next, err := s.social.ListNotifications(ctx, me, req.PaginationToken, int(req.Limit))
	if err != nil {
		return nil, svcErr.Map(err)
	}

	resp := &pb.ListNotificationsResponse{
		Notifications:       make([]*pb.Notification, 0, len(items)),
		NextPaginationToken: next,
	}
	for _, n := range items {
		resp.Notifications = append(resp.Notifications, &pb.Notification{
			Id:             n.ID,
			Type:           n.Type,
			FromUserId:     n.FromUserID,
			FromUserName:   n.FromUserName,
			ContentOwnerId: n.ContentOwnerID,
			ContentId:      n.ContentID,
			Emoji:          n.Emoji,
			Read:           n.Read,
			UnixTimestamp:  uint64(n.CreatedAt.UnixMilli()),
		})
	}
	return resp, nil
}

func (s *Service) MarkNotificationRead(ctx context.Context, req *pb.NotificationRequest) (*pb.Empty, error) {
	me, err := caller(ctx)
	if err != nil {
		return nil, err
	}
	if err := s.social.MarkNotificationRead(ctx, me, req.NotificationId); err != nil {
		return nil, svcErr.Map(err)
	}
	return &pb.Empty{}, nil
}

func (s *Service) DeleteNotification(ctx context.Context, req *pb.NotificationRequest) (*pb.Empty, error) {
	me, err := caller(ctx)
	if err != nil {
		return nil, err
	}
	if err := s.social.DeleteNotification(ctx, me, req.NotificationId); err != nil {
		return nil, svcErr.Map(err)
	}
	return &pb.Empty{}, nil
}

func (s *Service) CountUnread(ctx context.Context, _ *pb.Empty) (*pb.CountUnreadResponse, error) {
	me, err := caller(ctx)
	if err != nil {
		return nil, err
	}
	n, err := s.social.CountUnread(ctx, me)
	if err != nil {
		return nil, svcErr.Map(err)
	}
	return &pb.CountUnreadResponse{Count: uint64(n)}, nil
}

func toPB(u social.UserSummary) *pb.UserSummary {
	return &pb.UserSummary{
		UserId:         u.ID,
		DisplayName:    u.DisplayName,
		FollowersCount: u.FollowersCount,
		FollowingCount: u.FollowingCount,
	}
}

func toPBList(users []social.UserSummary) []*pb.UserSummary {
	out := make([]*pb.UserSummary, 0, len(users))
	for _, u := range users {
		out = append(out, toPB(u))
	}
	return out
}

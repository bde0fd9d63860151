package graph

import (
	"context"

	"google.golang.org/grpc"
)

// GraphServiceClient is the client API for GraphService.
type GraphServiceClient interface {
	RegisterUser(ctx context.Context, in *RegisterUserRequest, opts ...grpc.CallOption) (*UserResponse, error)
	GetUser(ctx context.Context, in *GetUserRequest, opts ...grpc.CallOption) (*UserResponse, error)
	Follow(ctx context.Context, in *FollowRequest, opts ...grpc.CallOption) (*Empty, error)
	Unfollow(ctx context.Context, in *FollowRequest, opts ...grpc.CallOption) (*Empty, error)
	IsFollowing(ctx context.Context, in *IsFollowingRequest, opts ...grpc.CallOption) (*IsFollowingResponse, error)
	ListFollowers(ctx context.Context, in *ListUsersRequest, opts ...grpc.CallOption) (*ListUsersResponse, error)
	ListFollowing(ctx context.Context, in *ListUsersRequest, opts ...grpc.CallOption) (*ListUsersResponse, error)
	GetSuggestions(ctx context.Context, in *Empty, opts ...grpc.CallOption) (*ListUsersResponse, error)
	PublishContent(ctx context.Context, in *PublishContentRequest, opts ...grpc.CallOption) (*Empty, error)
	React(ctx context.Context, in *ReactRequest, opts ...grpc.CallOption) (*Empty, error)
	ListNotifications(ctx context.Context, in *ListNotificationsRequest, opts ...grpc.CallOption) (*ListNotificationsResponse, error)
	MarkNotificationRead(ctx context.Context, in *NotificationRequest, opts ...grpc.CallOption) (*Empty, error)
	DeleteNotification(ctx context.Context, in *NotificationRequest, opts ...grpc.CallOption) (*Empty, error)
	CountUnread(ctx context.Context, in *Empty, opts ...grpc.CallOption) (*CountUnreadResponse, error)
}

type graphServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewGraphServiceClient(cc grpc.ClientConnInterface) GraphServiceClient {
	return &graphServiceClient{cc}
}

func invoke[Resp any](ctx context.Context, cc grpc.ClientConnInterface, method string, in any, opts []grpc.CallOption) (*Resp, error) {
	out := new(Resp)
	opts = append([]grpc.CallOption{grpc.CallContentSubtype(CodecName)}, opts...)
	if err := cc.Invoke(ctx, method, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *graphServiceClient) RegisterUser(ctx context.Context, in *RegisterUserRequest, opts ...grpc.CallOption) (*UserResponse, error) {
	return invoke[UserResponse](ctx, c.cc, GraphService_RegisterUser_FullMethodName, in, opts)
}

func (c *graphServiceClient) GetUser(ctx context.Context, in *GetUserRequest, opts ...grpc.CallOption) (*UserResponse, error) {
	return invoke[UserResponse](ctx, c.cc, GraphService_GetUser_FullMethodName, in, opts)
}

func (c *graphServiceClient) Follow(ctx context.Context, in *FollowRequest, opts ...grpc.CallOption) (*Empty, error) {
	return invoke[Empty](ctx, c.cc, GraphService_Follow_FullMethodName, in, opts)
}

func (c *graphServiceClient) Unfollow(ctx context.Context, in *FollowRequest, opts ...grpc.CallOption) (*Empty, error) {
	return invoke[Empty](ctx, c.cc, GraphService_Unfollow_FullMethodName, in, opts)
}

func (c *graphServiceClient) IsFollowing(ctx context.Context, in *IsFollowingRequest, opts ...grpc.CallOption) (*IsFollowingResponse, error) {
	return invoke[IsFollowingResponse](ctx, c.cc, GraphService_IsFollowing_FullMethodName, in, opts)
}

func (c *graphServiceClient) ListFollowers(ctx context.Context, in *ListUsersRequest, opts ...grpc.CallOption) (*ListUsersResponse, error) {
	return invoke[ListUsersResponse](ctx, c.cc, GraphService_ListFollowers_FullMethodName, in, opts)
}

func (c *graphServiceClient) ListFollowing(ctx context.Context, in *ListUsersRequest, opts ...grpc.CallOption) (*ListUsersResponse, error) {
	return invoke[ListUsersResponse](ctx, c.cc, GraphService_ListFollowing_FullMethodName, in, opts)
}

func (c *graphServiceClient) GetSuggestions(ctx context.Context, in *Empty, opts ...grpc.CallOption) (*ListUsersResponse, error) {
	return invoke[ListUsersResponse](ctx, c.cc, GraphService_GetSuggestions_FullMethodName, in, opts)
}

func (c *graphServiceClient) PublishContent(ctx context.Context, in *PublishContentRequest, opts ...grpc.CallOption) (*Empty, error) {
	return invoke[Empty](ctx, c.cc, GraphService_PublishContent_FullMethodName, in, opts)
}

func (c *graphServiceClient) React(ctx context.Context, in *ReactRequest, opts ...grpc.CallOption) (*Empty, error) {
	return invoke[Empty](ctx, c.cc, GraphService_React_FullMethodName, in, opts)
}

func (c *graphServiceClient) ListNotifications(ctx context.Context, in *ListNotificationsRequest, opts ...grpc.CallOption) (*ListNotificationsResponse, error) {
	return invoke[ListNotificationsResponse](ctx, c.cc, GraphService_ListNotifications_FullMethodName, in, opts)
}

func (c *graphServiceClient) MarkNotificationRead(ctx context.Context, in *NotificationRequest, opts ...grpc.CallOption) (*Empty, error) {
	return invoke[Empty](ctx, c.cc, GraphService_MarkNotificationRead_FullMethodName, in, opts)
}

func (c *graphServiceClient) DeleteNotification(ctx context.Context, in *NotificationRequest, opts ...grpc.CallOption) (*Empty, error) {
	return invoke[Empty](ctx, c.cc, GraphService_DeleteNotification_FullMethodName, in, opts)
}

func (c *graphServiceClient) CountUnread(ctx context.Context, in *Empty, opts ...grpc.CallOption) (*CountUnreadResponse, error) {
	return invoke[CountUnreadResponse](ctx, c.cc, GraphService_CountUnread_FullMethodName, in, opts)
}

package graph

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

const ServiceName = "graph.GraphService"

const (
	GraphService_RegisterUser_FullMethodName         = "/graph.GraphService/RegisterUser"
	GraphService_GetUser_FullMethodName              = "/graph.GraphService/GetUser"
	GraphService_Follow_FullMethodName               = "/graph.GraphService/Follow"
	GraphService_Unfollow_FullMethodName             = "/graph.GraphService/Unfollow"
	GraphService_IsFollowing_FullMethodName          = "/graph.GraphService/IsFollowing"
	GraphService_ListFollowers_FullMethodName        = "/graph.GraphService/ListFollowers"
	GraphService_ListFollowing_FullMethodName        = "/graph.GraphService/ListFollowing"
	GraphService_GetSuggestions_FullMethodName       = "/graph.GraphService/GetSuggestions"
	GraphService_PublishContent_FullMethodName       = "/graph.GraphService/PublishContent"
	GraphService_React_FullMethodName                = "/graph.GraphService/React"
	GraphService_ListNotifications_FullMethodName    = "/graph.GraphService/ListNotifications"
	GraphService_MarkNotificationRead_FullMethodName = "/graph.GraphService/MarkNotificationRead"
	GraphService_DeleteNotification_FullMethodName   = "/graph.GraphService/DeleteNotification"
	GraphService_CountUnread_FullMethodName          = "/graph.GraphService/CountUnread"
)

// GraphServiceServer is the server API for GraphService.
// Mutations act on behalf of the authenticated caller.
type GraphServiceServer interface {
	RegisterUser(context.Context, *RegisterUserRequest) (*UserResponse, error)
	GetUser(context.Context, *GetUserRequest) (*UserResponse, error)
	Follow(context.Context, *FollowRequest) (*Empty, error)
	Unfollow(context.Context, *FollowRequest) (*Empty, error)
	IsFollowing(context.Context, *IsFollowingRequest) (*IsFollowingResponse, error)
	ListFollowers(context.Context, *ListUsersRequest) (*ListUsersResponse, error)
	ListFollowing(context.Context, *ListUsersRequest) (*ListUsersResponse, error)
	GetSuggestions(context.Context, *Empty) (*ListUsersResponse, error)
	PublishContent(context.Context, *PublishContentRequest) (*Empty, error)
	React(context.Context, *ReactRequest) (*Empty, error)
	ListNotifications(context.Context, *ListNotificationsRequest) (*ListNotificationsResponse, error)
	MarkNotificationRead(context.Context, *NotificationRequest) (*Empty, error)
	DeleteNotification(context.Context, *NotificationRequest) (*Empty, error)
	CountUnread(context.Context, *Empty) (*CountUnreadResponse, error)
}

// UnimplementedGraphServiceServer must be embedded to have forward
// compatible implementations.
type UnimplementedGraphServiceServer struct{}

func unimplemented(method string) error {
	return status.Errorf(codes.Unimplemented, "method %s not implemented", method)
}

func (UnimplementedGraphServiceServer) RegisterUser(context.Context, *RegisterUserRequest) (*UserResponse, error) {
	return nil, unimplemented("RegisterUser")
}
func (UnimplementedGraphServiceServer) GetUser(context.Context, *GetUserRequest) (*UserResponse, error) {
	return nil, unimplemented("GetUser")
}
func (UnimplementedGraphServiceServer) Follow(context.Context, *FollowRequest) (*Empty, error) {
	return nil, unimplemented("Follow")
}
func (UnimplementedGraphServiceServer) Unfollow(context.Context, *FollowRequest) (*Empty, error) {
	return nil, unimplemented("Unfollow")
}
func (UnimplementedGraphServiceServer) IsFollowing(context.Context, *IsFollowingRequest) (*IsFollowingResponse, error) {
	return nil, unimplemented("IsFollowing")
}
func (UnimplementedGraphServiceServer) ListFollowers(context.Context, *ListUsersRequest) (*ListUsersResponse, error) {
	return nil, unimplemented("ListFollowers")
}
func (UnimplementedGraphServiceServer) ListFollowing(context.Context, *ListUsersRequest) (*ListUsersResponse, error) {
	return nil, unimplemented("ListFollowing")
}
func (UnimplementedGraphServiceServer) GetSuggestions(context.Context, *Empty) (*ListUsersResponse, error) {
	return nil, unimplemented("GetSuggestions")
}
func (UnimplementedGraphServiceServer) PublishContent(context.Context, *PublishContentRequest) (*Empty, error) {
	return nil, unimplemented("PublishContent")
}
func (UnimplementedGraphServiceServer) React(context.Context, *ReactRequest) (*Empty, error) {
	return nil, unimplemented("React")
}
func (UnimplementedGraphServiceServer) ListNotifications(context.Context, *ListNotificationsRequest) (*ListNotificationsResponse, error) {
	return nil, unimplemented("ListNotifications")
}
func (UnimplementedGraphServiceServer) MarkNotificationRead(context.Context, *NotificationRequest) (*Empty, error) {
	return nil, unimplemented("MarkNotificationRead")
}
func (UnimplementedGraphServiceServer) DeleteNotification(context.Context, *NotificationRequest) (*Empty, error) {
	return nil, unimplemented("DeleteNotification")
}
func (UnimplementedGraphServiceServer) CountUnread(context.Context, *Empty) (*CountUnreadResponse, error) {
	return nil, unimplemented("CountUnread")
}

// RegisterGraphServiceServer attaches srv to s.
func RegisterGraphServiceServer(s grpc.ServiceRegistrar, srv GraphServiceServer) {
	s.RegisterService(&GraphService_ServiceDesc, srv)
}

// unary adapts a typed server method to grpc.MethodHandler.
func unary[Req, Resp any](fullMethod string, call func(GraphServiceServer, context.Context, *Req) (*Resp, error)) func(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	return func(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
		in := new(Req)
		if err := dec(in); err != nil {
			return nil, err
		}
		if interceptor == nil {
			return call(srv.(GraphServiceServer), ctx, in)
		}
		info := &grpc.UnaryServerInfo{Server: srv, FullMethod: fullMethod}
		handler := func(ctx context.Context, req any) (any, error) {
			return call(srv.(GraphServiceServer), ctx, req.(*Req))
		}
		return interceptor(ctx, in, info, handler)
	}
}

// GraphService_ServiceDesc is the grpc.ServiceDesc for GraphService.
var GraphService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*GraphServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "RegisterUser", Handler: unary(GraphService_RegisterUser_FullMethodName, GraphServiceServer.RegisterUser)},
		{MethodName: "GetUser", Handler: unary(GraphService_GetUser_FullMethodName, GraphServiceServer.GetUser)},
		{MethodName: "Follow", Handler: unary(GraphService_Follow_FullMethodName, GraphServiceServer.Follow)},
		{MethodName: "Unfollow", Handler: unary(GraphService_Unfollow_FullMethodName, GraphServiceServer.Unfollow)},
		{MethodName: "IsFollowing", Handler: unary(GraphService_IsFollowing_FullMethodName, GraphServiceServer.IsFollowing)},
		{MethodName: "ListFollowers", Handler: unary(GraphService_ListFollowers_FullMethodName, GraphServiceServer.ListFollowers)},
		{MethodName: "ListFollowing", Handler: unary(GraphService_ListFollowing_FullMethodName, GraphServiceServer.ListFollowing)},
		{MethodName: "GetSuggestions", Handler: unary(GraphService_GetSuggestions_FullMethodName, GraphServiceServer.GetSuggestions)},
		{MethodName: "PublishContent", Handler: unary(GraphService_PublishContent_FullMethodName, GraphServiceServer.PublishContent)},
		{MethodName: "React", Handler: unary(GraphService_React_FullMethodName, GraphServiceServer.React)},
		{MethodName: "ListNotifications", Handler: unary(GraphService_ListNotifications_FullMethodName, GraphServiceServer.ListNotifications)},
		{MethodName: "MarkNotificationRead", Handler: unary(GraphService_MarkNotificationRead_FullMethodName, GraphServiceServer.MarkNotificationRead)},
		{MethodName: "DeleteNotification", Handler: unary(GraphService_DeleteNotification_FullMethodName, GraphServiceServer.DeleteNotification)},
		{MethodName: "CountUnread", Handler: unary(GraphService_CountUnread_FullMethodName, GraphServiceServer.CountUnread)},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "graph/graph.proto", // nominal; no descriptor is registered
}

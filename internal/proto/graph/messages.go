package graph

// UserSummary is a profile with its denormalized counters.
type UserSummary struct {
	UserId         string `json:"user_id"`
	DisplayName    string `json:"display_name"`
	FollowersCount int64  `json:"followers_count"`
	FollowingCount int64  `json:"following_count"`
}

type Notification struct {
	Id             string `json:"id"`
	Type           string `json:"type"`
	FromUserId     string `json:"from_user_id"`
	FromUserName   string `json:"from_user_name"`
	ContentOwnerId string `json:"content_owner_id"`
	ContentId      string `json:"content_id"`
	Emoji          string `json:"emoji"`
	Read           bool   `json:"read"`
	UnixTimestamp  uint64 `json:"unix_timestamp"`
}

type Empty struct{}

type RegisterUserRequest struct {
	DisplayName string `json:"display_name"`
}

type GetUserRequest struct {
	UserId string `json:"user_id"`
}

type UserResponse struct {
	User *UserSummary `json:"user"`
}

type FollowRequest struct {
	FolloweeId string `json:"followee_id"`
}

type IsFollowingRequest struct {
	FollowerId string `json:"follower_id"`
	FolloweeId string `json:"followee_id"`
}

type IsFollowingResponse struct {
	Following bool `json:"following"`
}

type ListUsersRequest struct {
	UserId          string  `json:"user_id"`
	PaginationToken *string `json:"pagination_token,omitempty"`
	Limit           int32   `json:"limit,omitempty"`
}

type ListUsersResponse struct {
	Users               []*UserSummary `json:"users"`
	NextPaginationToken *string        `json:"next_pagination_token,omitempty"`
}

type PublishContentRequest struct {
	ContentId string `json:"content_id"`
	Kind      string `json:"kind"`
}

type ReactRequest struct {
	ContentOwnerId string `json:"content_owner_id"`
	ContentId      string `json:"content_id"`
	Emoji          string `json:"emoji"`
}

type ListNotificationsRequest struct {
	PaginationToken *string `json:"pagination_token,omitempty"`
	Limit           int32   `json:"limit,omitempty"`
}

type ListNotificationsResponse struct {
	Notifications       []*Notification `json:"notifications"`
	NextPaginationToken *string         `json:"next_pagination_token,omitempty"`
}

type NotificationRequest struct {
	NotificationId string `json:"notification_id"`
}

type CountUnreadResponse struct {
	Count uint64 `json:"count"`
}

func (r *ListUsersRequest) GetPaginationToken() *string {
	if r == nil {
		return nil
	}
	return r.PaginationToken
}

func (r *ListUsersResponse) GetNextPaginationToken() string {
	if r == nil || r.NextPaginationToken == nil {
		return ""
	}
	return *r.NextPaginationToken
}

func (r *ListNotificationsResponse) GetNextPaginationToken() string {
	if r == nil || r.NextPaginationToken == nil {
		return ""
	}
	return *r.NextPaginationToken
}

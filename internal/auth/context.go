package auth

import (
	"context"
	"errors"
)

// typedKey avoids collisions with other context values.
type typedKey struct{ name string }

var userIDKey = typedKey{name: "userID"}

// ErrNoIdentity is returned when the context carries no verified caller.
var ErrNoIdentity = errors.New("caller identity not found in context")

// WithUserID stores the verified caller id.
func WithUserID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, userIDKey, id)
}

// UserIDFromContext returns the verified caller id.
func UserIDFromContext(ctx context.Context) (string, error) {
	if id, ok := ctx.Value(userIDKey).(string); ok && id != "" {
		return id, nil
	}
	return "", ErrNoIdentity
}

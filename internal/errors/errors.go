package errors

import (
	"errors"
	"fmt"
)

// Domain error taxonomy. Callers match with errors.Is; concrete errors wrap
// one of these sentinels.
var (
	// ErrInvalidOperation covers self-follow, duplicate follow and unfollow
	// without an edge.
	ErrInvalidOperation = errors.New("invalid operation")

	// ErrTransientStore means the backing store failed; the whole operation
	// may be retried.
	ErrTransientStore = errors.New("transient store failure")

	ErrNotFound        = errors.New("not found")
	ErrInvalidArgument = errors.New("invalid argument")
)

var (
	ErrSelfFollow       = fmt.Errorf("%w: cannot follow yourself", ErrInvalidOperation)
	ErrAlreadyFollowing = fmt.Errorf("%w: already following", ErrInvalidOperation)
	ErrNotFollowing     = fmt.Errorf("%w: not following", ErrInvalidOperation)
	ErrContentExists    = fmt.Errorf("%w: content already exists", ErrInvalidOperation)

	ErrUserNotFound         = fmt.Errorf("%w: user", ErrNotFound)
	ErrContentNotFound      = fmt.Errorf("%w: content", ErrNotFound)
	ErrNotificationNotFound = fmt.Errorf("%w: notification", ErrNotFound)
)

// InvalidArgumentf builds an ErrInvalidArgument with a formatted detail.
func InvalidArgumentf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidArgument, fmt.Sprintf(format, args...))
}

// Transient marks err as a store failure unless it already belongs to the
// domain taxonomy. The original error stays in the chain.
func Transient(err error) error {
	if err == nil || IsDomain(err) {
		return err
	}
	return fmt.Errorf("%w: %w", ErrTransientStore, err)
}

// IsDomain reports whether err carries one of the taxonomy sentinels.
func IsDomain(err error) bool {
	return errors.Is(err, ErrInvalidOperation) ||
		errors.Is(err, ErrNotFound) ||
		errors.Is(err, ErrInvalidArgument) ||
		errors.Is(err, ErrTransientStore)
}

package service

import (
	"context"
	"errors"
)

// ErrAuthUserNotFound is the distinguished condition for "this auth user id
// does not exist upstream". Any other client failure (transport error,
// unexpected status) must NOT map to it: callers treat everything else as
// the auth service being unavailable.
var ErrAuthUserNotFound = errors.New("auth user not found")

// AuthServiceClient verifies accounts against the external auth service.
// Calls are blocking remote calls with no internal retry; retry policy, if
// any, belongs to the caller's infrastructure, not here.
type AuthServiceClient interface {
	// GetUserRole returns the role the auth service has on record for the
	// given external user id. Returns ErrAuthUserNotFound when the account
	// does not exist.
	GetUserRole(ctx context.Context, authUserID int64) (string, error)

	// UserExists reports whether the auth service knows the given user id.
	UserExists(ctx context.Context, authUserID int64) (bool, error)
}

// Package identity carries the authenticated caller through a request context.
package identity

import (
	"context"
	"errors"
)

// ErrUnknownUser is returned by resolvers when a token names a user that no
// longer exists.
var ErrUnknownUser = errors.New("unknown user")

// User is the live caller resolved by the auth gate.
type User struct {
	ID    int64
	Email string
}

type ctxKey struct{}

// WithUser returns a child context carrying u.
func WithUser(ctx context.Context, u User) context.Context {
	return context.WithValue(ctx, ctxKey{}, u)
}

// FromContext returns the caller attached by the auth gate, if any.
func FromContext(ctx context.Context) (User, bool) {
	if ctx == nil {
		return User{}, false
	}
	u, ok := ctx.Value(ctxKey{}).(User)
	if !ok || u.ID <= 0 {
		return User{}, false
	}
	return u, true
}

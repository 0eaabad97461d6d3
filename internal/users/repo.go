package users

import (
	"context"
	"errors"
)

var (
	ErrNotFound   = errors.New("user not found")
	ErrEmailTaken = errors.New("email already registered")
)

// Repo is the credential store.
type Repo interface {
	// Create stores the user and its profile as one unit; either both exist
	// afterwards or neither does. Returns ErrEmailTaken on a duplicate email.
	Create(ctx context.Context, user User, name string) (User, Profile, error)
	GetByEmail(ctx context.Context, email string) (User, error)
	GetByID(ctx context.Context, userID int64) (User, error)
	GetProfile(ctx context.Context, userID int64) (Profile, error)
}

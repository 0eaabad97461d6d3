package users

import (
	"context"
	"sync"
	"time"
)

// MemoryRepo is an in-memory Repo used in dev and tests.
type MemoryRepo struct {
	mu       sync.RWMutex
	nextID   int64
	users    map[int64]User
	byEmail  map[string]int64
	profiles map[int64]Profile
	now      func() time.Time
}

func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{
		users:    make(map[int64]User),
		byEmail:  make(map[string]int64),
		profiles: make(map[int64]Profile),
		now:      time.Now,
	}
}

func (r *MemoryRepo) Create(ctx context.Context, user User, name string) (User, Profile, error) {
	if err := ctx.Err(); err != nil {
		return User{}, Profile{}, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.byEmail[user.Email]; exists {
		return User{}, Profile{}, ErrEmailTaken
	}
	r.nextID++
	now := r.now().UTC()
	user.ID = r.nextID
	user.CreatedAt = now
	user.UpdatedAt = now
	profile := Profile{
		UserID:    user.ID,
		Email:     user.Email,
		Name:      name,
		CreatedAt: now,
		UpdatedAt: now,
	}
	r.users[user.ID] = user
	r.byEmail[user.Email] = user.ID
	r.profiles[user.ID] = profile
	return user, profile, nil
}

func (r *MemoryRepo) GetByEmail(ctx context.Context, email string) (User, error) {
	if err := ctx.Err(); err != nil {
		return User{}, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	id, ok := r.byEmail[email]
	if !ok {
		return User{}, ErrNotFound
	}
	return r.users[id], nil
}

func (r *MemoryRepo) GetByID(ctx context.Context, userID int64) (User, error) {
	if err := ctx.Err(); err != nil {
		return User{}, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	user, ok := r.users[userID]
	if !ok {
		return User{}, ErrNotFound
	}
	return user, nil
}

func (r *MemoryRepo) GetProfile(ctx context.Context, userID int64) (Profile, error) {
	if err := ctx.Err(); err != nil {
		return Profile{}, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	profile, ok := r.profiles[userID]
	if !ok {
		return Profile{}, ErrNotFound
	}
	return profile, nil
}

// Delete removes a user and its profile.
func (r *MemoryRepo) Delete(ctx context.Context, userID int64) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	user, ok := r.users[userID]
	if !ok {
		return ErrNotFound
	}
	delete(r.byEmail, user.Email)
	delete(r.users, userID)
	delete(r.profiles, userID)
	return nil
}

package resumes

import (
	"context"
	"sort"
	"sync"
	"time"
)

// NameFunc returns the profile name of a user.
type NameFunc func(ctx context.Context, userID int64) (string, error)

// MemoryRepo is an in-memory Repo used in dev and tests.
type MemoryRepo struct {
	mu      sync.RWMutex
	nextID  int64
	resumes map[int64]Resume
	names   NameFunc
	now     func() time.Time
}

func NewMemoryRepo(names NameFunc) *MemoryRepo {
	return &MemoryRepo{
		resumes: make(map[int64]Resume),
		names:   names,
		now:     time.Now,
	}
}

func (r *MemoryRepo) Create(ctx context.Context, resume Resume) (Resume, error) {
	if err := ctx.Err(); err != nil {
		return Resume{}, err
	}
	if err := (Filter{UserID: resume.UserID}).validate(); err != nil {
		return Resume{}, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.nextID++
	now := r.now().UTC()
	resume.ID = r.nextID
	if resume.Status == "" {
		resume.Status = StatusSubmitted
	}
	resume.CreatedAt = now
	resume.UpdatedAt = now
	r.resumes[resume.ID] = resume
	return resume, nil
}

func (r *MemoryRepo) List(ctx context.Context, filter Filter, order SortOrder) ([]ListItem, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := filter.validate(); err != nil {
		return nil, err
	}

	name, err := r.ownerName(ctx, filter.UserID)
	if err != nil {
		return nil, err
	}

	r.mu.RLock()
	items := make([]ListItem, 0)
	for _, resume := range r.resumes {
		if filter.matches(resume) {
			items = append(items, ListItem{Resume: resume, Name: name})
		}
	}
	r.mu.RUnlock()

	sort.Slice(items, func(i, j int) bool {
		a, b := items[i], items[j]
		if !a.CreatedAt.Equal(b.CreatedAt) {
			if order == SortAsc {
				return a.CreatedAt.Before(b.CreatedAt)
			}
			return a.CreatedAt.After(b.CreatedAt)
		}
		if order == SortAsc {
			return a.ID < b.ID
		}
		return a.ID > b.ID
	})
	return items, nil
}

func (r *MemoryRepo) Find(ctx context.Context, filter Filter) (Resume, error) {
	if err := ctx.Err(); err != nil {
		return Resume{}, err
	}
	if err := filter.validate(); err != nil {
		return Resume{}, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	resume, ok := r.lookup(filter)
	if !ok {
		return Resume{}, ErrNotFound
	}
	return resume, nil
}

func (r *MemoryRepo) Update(ctx context.Context, filter Filter, patch Patch) (Resume, error) {
	if err := ctx.Err(); err != nil {
		return Resume{}, err
	}
	if err := filter.validate(); err != nil {
		return Resume{}, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	resume, ok := r.lookup(filter)
	if !ok {
		return Resume{}, ErrNotFound
	}
	if patch.Title != nil {
		resume.Title = *patch.Title
	}
	if patch.Content != nil {
		resume.Content = *patch.Content
	}
	resume.UpdatedAt = r.now().UTC()
	r.resumes[resume.ID] = resume
	return resume, nil
}

func (r *MemoryRepo) Delete(ctx context.Context, filter Filter) (Resume, error) {
	if err := ctx.Err(); err != nil {
		return Resume{}, err
	}
	if err := filter.validate(); err != nil {
		return Resume{}, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	resume, ok := r.lookup(filter)
	if !ok {
		return Resume{}, ErrNotFound
	}
	delete(r.resumes, resume.ID)
	return resume, nil
}

// lookup requires a specific id; callers hold the lock.
func (r *MemoryRepo) lookup(filter Filter) (Resume, bool) {
	if filter.ID == 0 {
		return Resume{}, false
	}
	resume, ok := r.resumes[filter.ID]
	if !ok || !filter.matches(resume) {
		return Resume{}, false
	}
	return resume, true
}

func (r *MemoryRepo) ownerName(ctx context.Context, userID int64) (string, error) {
	if r.names == nil {
		return "", nil
	}
	return r.names(ctx, userID)
}

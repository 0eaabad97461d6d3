package resumes

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type steppingClock struct {
	t time.Time
}

func (c *steppingClock) now() time.Time {
	c.t = c.t.Add(time.Second)
	return c.t
}

func newClockedRepo() *MemoryRepo {
	clock := &steppingClock{t: time.Date(2026, time.April, 2, 9, 0, 0, 0, time.UTC)}
	repo := NewMemoryRepo(func(ctx context.Context, userID int64) (string, error) {
		return map[int64]string{1: "김개발", 2: "이개발"}[userID], nil
	})
	repo.now = clock.now
	return repo
}

func TestMemoryRepoRejectsUnscopedFilters(t *testing.T) {
	repo := newClockedRepo()
	ctx := context.Background()

	_, err := repo.Create(ctx, Resume{Title: "t"})
	assert.ErrorIs(t, err, ErrUnscoped)
	_, err = repo.List(ctx, Filter{}, SortDesc)
	assert.ErrorIs(t, err, ErrUnscoped)
	_, err = repo.Find(ctx, Filter{ID: 1})
	assert.ErrorIs(t, err, ErrUnscoped)
	_, err = repo.Update(ctx, Filter{ID: 1}, Patch{})
	assert.ErrorIs(t, err, ErrUnscoped)
	_, err = repo.Delete(ctx, Filter{ID: 1})
	assert.ErrorIs(t, err, ErrUnscoped)
}

func TestMemoryRepoListOrderAndOwnership(t *testing.T) {
	repo := newClockedRepo()
	ctx := context.Background()

	first, err := repo.Create(ctx, Resume{UserID: 1, Title: "first"})
	require.NoError(t, err)
	_, err = repo.Create(ctx, Resume{UserID: 2, Title: "other"})
	require.NoError(t, err)
	second, err := repo.Create(ctx, Resume{UserID: 1, Title: "second"})
	require.NoError(t, err)

	desc, err := repo.List(ctx, Filter{UserID: 1}, SortDesc)
	require.NoError(t, err)
	require.Len(t, desc, 2)
	assert.Equal(t, second.ID, desc[0].ID)
	assert.Equal(t, first.ID, desc[1].ID)
	assert.Equal(t, "김개발", desc[0].Name)
	assert.Equal(t, StatusSubmitted, desc[0].Status)

	asc, err := repo.List(ctx, Filter{UserID: 1}, SortAsc)
	require.NoError(t, err)
	assert.Equal(t, first.ID, asc[0].ID)

	empty, err := repo.List(ctx, Filter{UserID: 3}, SortDesc)
	require.NoError(t, err)
	assert.NotNil(t, empty)
	assert.Empty(t, empty)
}

func TestMemoryRepoListTieBreaksByID(t *testing.T) {
	repo := newClockedRepo()
	fixed := time.Date(2026, time.April, 2, 9, 0, 0, 0, time.UTC)
	repo.now = func() time.Time { return fixed }
	ctx := context.Background()

	a, err := repo.Create(ctx, Resume{UserID: 1, Title: "a"})
	require.NoError(t, err)
	b, err := repo.Create(ctx, Resume{UserID: 1, Title: "b"})
	require.NoError(t, err)

	desc, err := repo.List(ctx, Filter{UserID: 1}, SortDesc)
	require.NoError(t, err)
	assert.Equal(t, []int64{b.ID, a.ID}, []int64{desc[0].ID, desc[1].ID})
}

func TestMemoryRepoUpdateAndDeleteRespectOwner(t *testing.T) {
	repo := newClockedRepo()
	ctx := context.Background()

	created, err := repo.Create(ctx, Resume{UserID: 1, Title: "title", Content: "content"})
	require.NoError(t, err)

	title := "new title"
	_, err = repo.Update(ctx, Filter{UserID: 2, ID: created.ID}, Patch{Title: &title})
	assert.ErrorIs(t, err, ErrNotFound)

	updated, err := repo.Update(ctx, Filter{UserID: 1, ID: created.ID}, Patch{Title: &title})
	require.NoError(t, err)
	assert.Equal(t, "new title", updated.Title)
	assert.Equal(t, "content", updated.Content)
	assert.True(t, updated.UpdatedAt.After(created.UpdatedAt))
	assert.Equal(t, created.CreatedAt, updated.CreatedAt)

	_, err = repo.Delete(ctx, Filter{UserID: 2, ID: created.ID})
	assert.ErrorIs(t, err, ErrNotFound)

	deleted, err := repo.Delete(ctx, Filter{UserID: 1, ID: created.ID})
	require.NoError(t, err)
	assert.Equal(t, created.ID, deleted.ID)

	_, err = repo.Find(ctx, Filter{UserID: 1, ID: created.ID})
	assert.True(t, errors.Is(err, ErrNotFound))
}

func TestMemoryRepoListPropagatesNameErrors(t *testing.T) {
	boom := errors.New("profile store down")
	repo := NewMemoryRepo(func(ctx context.Context, userID int64) (string, error) { return "", boom })

	_, err := repo.List(context.Background(), Filter{UserID: 1}, SortDesc)
	assert.ErrorIs(t, err, boom)
}

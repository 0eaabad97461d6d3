package users

import (
	"context"
	"errors"
	"testing"
)

func TestMemoryRepoCreateAndLookup(t *testing.T) {
	repo := NewMemoryRepo()
	ctx := context.Background()

	user, profile, err := repo.Create(ctx, User{Email: "kim@example.com", PasswordHash: "hash"}, "김개발")
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if user.ID != 1 || profile.UserID != user.ID || profile.Name != "김개발" {
		t.Fatalf("unexpected records %+v %+v", user, profile)
	}

	byEmail, err := repo.GetByEmail(ctx, "kim@example.com")
	if err != nil || byEmail.ID != user.ID {
		t.Fatalf("get by email: %+v %v", byEmail, err)
	}
	byID, err := repo.GetByID(ctx, user.ID)
	if err != nil || byID.Email != "kim@example.com" {
		t.Fatalf("get by id: %+v %v", byID, err)
	}
	got, err := repo.GetProfile(ctx, user.ID)
	if err != nil || got.Email != "kim@example.com" {
		t.Fatalf("get profile: %+v %v", got, err)
	}
}

func TestMemoryRepoDuplicateEmail(t *testing.T) {
	repo := NewMemoryRepo()
	ctx := context.Background()

	if _, _, err := repo.Create(ctx, User{Email: "dup@example.com"}, "a"); err != nil {
		t.Fatalf("create: %v", err)
	}
	if _, _, err := repo.Create(ctx, User{Email: "dup@example.com"}, "b"); !errors.Is(err, ErrEmailTaken) {
		t.Fatalf("expected ErrEmailTaken, got %v", err)
	}
}

func TestMemoryRepoDeleteRemovesProfile(t *testing.T) {
	repo := NewMemoryRepo()
	ctx := context.Background()

	user, _, err := repo.Create(ctx, User{Email: "gone@example.com"}, "a")
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if err := repo.Delete(ctx, user.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := repo.GetByID(ctx, user.ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if _, err := repo.GetProfile(ctx, user.ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if _, err := repo.GetByEmail(ctx, "gone@example.com"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if err := repo.Delete(ctx, user.ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound on second delete, got %v", err)
	}
}

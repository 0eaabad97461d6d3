package users

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/samber/oops"

	"resume-hub/internal/shared/storage/db"
)

// PGRepo implements Repo using Postgres.
type PGRepo struct {
	DB *sql.DB
}

func (r *PGRepo) Create(ctx context.Context, user User, name string) (User, Profile, error) {
	const insertUser = `
INSERT INTO users (email, password_hash, created_at, updated_at)
VALUES ($1, $2, now(), now())
RETURNING id, created_at, updated_at`
	const insertProfile = `
INSERT INTO user_profiles (user_id, email, name, created_at, updated_at)
VALUES ($1, $2, $3, $4, $4)`

	var profile Profile
	err := db.WithTx(ctx, r.DB, func(ctx context.Context, tx db.DBTX) error {
		if err := tx.QueryRowContext(ctx, insertUser, user.Email, user.PasswordHash).
			Scan(&user.ID, &user.CreatedAt, &user.UpdatedAt); err != nil {
			return err
		}
		if _, err := tx.ExecContext(ctx, insertProfile, user.ID, user.Email, name, user.CreatedAt); err != nil {
			return err
		}
		profile = Profile{
			UserID:    user.ID,
			Email:     user.Email,
			Name:      name,
			CreatedAt: user.CreatedAt,
			UpdatedAt: user.CreatedAt,
		}
		return nil
	})
	if err != nil {
		if isUniqueViolation(err) {
			return User{}, Profile{}, ErrEmailTaken
		}
		return User{}, Profile{}, oops.In("users").Code("USER_CREATE_FAILED").Wrapf(err, "create user")
	}
	return user, profile, nil
}

func (r *PGRepo) GetByEmail(ctx context.Context, email string) (User, error) {
	const query = `
SELECT id, email, password_hash, created_at, updated_at
FROM users
WHERE email = $1
LIMIT 1`
	return r.getOne(ctx, query, email)
}

func (r *PGRepo) GetByID(ctx context.Context, userID int64) (User, error) {
	const query = `
SELECT id, email, password_hash, created_at, updated_at
FROM users
WHERE id = $1
LIMIT 1`
	return r.getOne(ctx, query, userID)
}

func (r *PGRepo) getOne(ctx context.Context, query string, arg any) (User, error) {
	var user User
	err := r.DB.QueryRowContext(ctx, query, arg).Scan(
		&user.ID,
		&user.Email,
		&user.PasswordHash,
		&user.CreatedAt,
		&user.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return User{}, ErrNotFound
		}
		return User{}, oops.In("users").Code("USER_LOOKUP_FAILED").Wrapf(err, "load user")
	}
	return user, nil
}

func (r *PGRepo) GetProfile(ctx context.Context, userID int64) (Profile, error) {
	const query = `
SELECT user_id, email, name, created_at, updated_at
FROM user_profiles
WHERE user_id = $1`
	var profile Profile
	err := r.DB.QueryRowContext(ctx, query, userID).Scan(
		&profile.UserID,
		&profile.Email,
		&profile.Name,
		&profile.CreatedAt,
		&profile.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Profile{}, ErrNotFound
		}
		return Profile{}, oops.In("users").Code("PROFILE_LOOKUP_FAILED").Wrapf(err, "load profile")
	}
	return profile, nil
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation
}

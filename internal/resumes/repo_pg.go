package resumes

import (
	"context"
	"database/sql"
	"errors"
	"strconv"
	"strings"

	"github.com/samber/oops"
)

const resumeColumns = "id, user_id, title, content, status, created_at, updated_at"

// PGRepo implements Repo using Postgres.
type PGRepo struct {
	DB *sql.DB
}

func (r *PGRepo) Create(ctx context.Context, resume Resume) (Resume, error) {
	if err := (Filter{UserID: resume.UserID}).validate(); err != nil {
		return Resume{}, err
	}
	if resume.Status == "" {
		resume.Status = StatusSubmitted
	}
	const query = `
INSERT INTO resumes (user_id, title, content, status, created_at, updated_at)
VALUES ($1, $2, $3, $4, now(), now())
RETURNING ` + resumeColumns

	created, err := scanResume(r.DB.QueryRowContext(ctx, query, resume.UserID, resume.Title, resume.Content, resume.Status))
	if err != nil {
		return Resume{}, oops.In("resumes").Code("RESUME_CREATE_FAILED").With("user_id", resume.UserID).Wrapf(err, "create resume")
	}
	return created, nil
}

func (r *PGRepo) List(ctx context.Context, filter Filter, order SortOrder) ([]ListItem, error) {
	if err := filter.validate(); err != nil {
		return nil, err
	}
	where, args := filter.where("r", 1)
	direction := "DESC"
	if order == SortAsc {
		direction = "ASC"
	}
	query := `
SELECT r.id, r.user_id, r.title, r.content, r.status, r.created_at, r.updated_at, p.name
FROM resumes r
JOIN user_profiles p ON p.user_id = r.user_id
WHERE ` + where + `
ORDER BY r.created_at ` + direction + `, r.id ` + direction

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, oops.In("resumes").Code("RESUME_LIST_FAILED").With("user_id", filter.UserID).Wrapf(err, "list resumes")
	}
	defer rows.Close()

	items := make([]ListItem, 0)
	for rows.Next() {
		var item ListItem
		if err := rows.Scan(
			&item.ID,
			&item.UserID,
			&item.Title,
			&item.Content,
			&item.Status,
			&item.CreatedAt,
			&item.UpdatedAt,
			&item.Name,
		); err != nil {
			return nil, oops.In("resumes").Code("RESUME_LIST_FAILED").Wrapf(err, "scan resume")
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, oops.In("resumes").Code("RESUME_LIST_FAILED").Wrapf(err, "iterate resumes")
	}
	return items, nil
}

func (r *PGRepo) Find(ctx context.Context, filter Filter) (Resume, error) {
	if err := filter.validate(); err != nil {
		return Resume{}, err
	}
	where, args := filter.where("", 1)
	query := `SELECT ` + resumeColumns + ` FROM resumes WHERE ` + where
	return r.one(ctx, "find", query, args...)
}

func (r *PGRepo) Update(ctx context.Context, filter Filter, patch Patch) (Resume, error) {
	if err := filter.validate(); err != nil {
		return Resume{}, err
	}
	var (
		sets []string
		args []any
	)
	if patch.Title != nil {
		args = append(args, *patch.Title)
		sets = append(sets, "title = $"+strconv.Itoa(len(args)))
	}
	if patch.Content != nil {
		args = append(args, *patch.Content)
		sets = append(sets, "content = $"+strconv.Itoa(len(args)))
	}
	sets = append(sets, "updated_at = now()")

	where, whereArgs := filter.where("", len(args)+1)
	args = append(args, whereArgs...)
	query := `UPDATE resumes SET ` + strings.Join(sets, ", ") + ` WHERE ` + where + ` RETURNING ` + resumeColumns
	return r.one(ctx, "update", query, args...)
}

func (r *PGRepo) Delete(ctx context.Context, filter Filter) (Resume, error) {
	if err := filter.validate(); err != nil {
		return Resume{}, err
	}
	where, args := filter.where("", 1)
	query := `DELETE FROM resumes WHERE ` + where + ` RETURNING ` + resumeColumns
	return r.one(ctx, "delete", query, args...)
}

func (r *PGRepo) one(ctx context.Context, op, query string, args ...any) (Resume, error) {
	resume, err := scanResume(r.DB.QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Resume{}, ErrNotFound
		}
		return Resume{}, oops.In("resumes").Code("RESUME_QUERY_FAILED").With("op", op).Wrapf(err, "%s resume", op)
	}
	return resume, nil
}

func scanResume(row *sql.Row) (Resume, error) {
	var resume Resume
	err := row.Scan(
		&resume.ID,
		&resume.UserID,
		&resume.Title,
		&resume.Content,
		&resume.Status,
		&resume.CreatedAt,
		&resume.UpdatedAt,
	)
	return resume, err
}

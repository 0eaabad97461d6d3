package resumes

import (
	"context"
	"errors"
	"strconv"
	"strings"
)

var (
	ErrNotFound = errors.New("resume not found")
	// ErrUnscoped rejects a query that does not name an owner.
	ErrUnscoped = errors.New("resume query without owner")
)

// Filter selects resumes. UserID is mandatory; ID zero matches every resume
// of the owner.
type Filter struct {
	UserID int64
	ID     int64
}

func (f Filter) validate() error {
	if f.UserID <= 0 {
		return ErrUnscoped
	}
	return nil
}

func (f Filter) matches(r Resume) bool {
	if r.UserID != f.UserID {
		return false
	}
	return f.ID == 0 || r.ID == f.ID
}

// where renders the filter as a SQL predicate. Placeholders start at $start
// and columns are qualified with prefix when it is not empty.
func (f Filter) where(prefix string, start int) (string, []any) {
	col := func(name string) string {
		if prefix == "" {
			return name
		}
		return prefix + "." + name
	}
	clauses := []string{col("user_id") + " = $" + strconv.Itoa(start)}
	args := []any{f.UserID}
	if f.ID != 0 {
		clauses = append(clauses, col("id")+" = $"+strconv.Itoa(start+1))
		args = append(args, f.ID)
	}
	return strings.Join(clauses, " AND "), args
}

// SortOrder orders lists by creation time.
type SortOrder string

const (
	SortAsc  SortOrder = "asc"
	SortDesc SortOrder = "desc"
)

// ParseSortOrder accepts asc or desc in any case. Anything else is desc.
func ParseSortOrder(raw string) SortOrder {
	if strings.EqualFold(strings.TrimSpace(raw), string(SortAsc)) {
		return SortAsc
	}
	return SortDesc
}

// Patch lists the fields to change. Nil fields are left alone.
type Patch struct {
	Title   *string
	Content *string
}

// Empty reports whether the patch changes nothing.
func (p Patch) Empty() bool {
	return p.Title == nil && p.Content == nil
}

// Repo is the resume store. Every read and write is scoped by a Filter.
type Repo interface {
	Create(ctx context.Context, resume Resume) (Resume, error)
	List(ctx context.Context, filter Filter, order SortOrder) ([]ListItem, error)
	Find(ctx context.Context, filter Filter) (Resume, error)
	Update(ctx context.Context, filter Filter, patch Patch) (Resume, error)
	// Delete removes the matching resume and returns it.
	Delete(ctx context.Context, filter Filter) (Resume, error)
}

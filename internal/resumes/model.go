package resumes

import "time"

// StatusSubmitted is the status every resume starts in.
const StatusSubmitted = "submitted"

// Resume is a document owned by exactly one user.
type Resume struct {
	ID        int64     `json:"id"`
	UserID    int64     `json:"user_id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ListItem is a resume joined with its owner's profile name.
type ListItem struct {
	Resume
	Name string `json:"name"`
}

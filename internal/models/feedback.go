package models

// Feedback is a short note owned by exactly one user.
type Feedback struct {
	ID       int64  `db:"id" json:"id"`
	Title    string `db:"title" json:"title"`
	Content  string `db:"content" json:"content"`
	Username string `db:"username" json:"username"` // owner
}

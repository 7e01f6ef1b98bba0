package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"feedback_app/internal/models"

	"github.com/jmoiron/sqlx"
)

type FeedbackRepository struct {
	db *sqlx.DB
}

func NewFeedbackRepository(db *sqlx.DB) *FeedbackRepository {
	return &FeedbackRepository{db: db}
}

var _ FeedbackRepo = (*FeedbackRepository)(nil)

const (
	insertFeedbackSQL           = `INSERT INTO feedback (title, content, username) VALUES (?, ?, ?) RETURNING id`
	selectFeedbackByIDSQL       = `SELECT id, title, content, username FROM feedback WHERE id = ?`
	updateFeedbackSQL           = `UPDATE feedback SET title = ?, content = ? WHERE id = ?`
	deleteFeedbackSQL           = `DELETE FROM feedback WHERE id = ?`
	selectFeedbackByUsernameSQL = `SELECT id, title, content, username FROM feedback WHERE username = ? ORDER BY id`
)

// Create inserts a feedback row and returns the generated id. An unknown
// owner yields ErrNotFound.
func (r *FeedbackRepository) Create(ctx context.Context, f models.Feedback) (int64, error) {
	var id int64
	err := r.db.QueryRowxContext(ctx, r.db.Rebind(insertFeedbackSQL), f.Title, f.Content, f.Username).Scan(&id)
	if err != nil {
		if isForeignKeyViolation(err) {
			return 0, fmt.Errorf("insert feedback for %q: owner %w", f.Username, ErrNotFound)
		}
		return 0, fmt.Errorf("insert feedback for %q: %w", f.Username, err)
	}
	return id, nil
}

// GetByID returns (nil, nil) when no row has the id.
func (r *FeedbackRepository) GetByID(ctx context.Context, id int64) (*models.Feedback, error) {
	var f models.Feedback
	err := r.db.GetContext(ctx, &f, r.db.Rebind(selectFeedbackByIDSQL), id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("select feedback %d: %w", id, err)
	}
	return &f, nil
}

func (r *FeedbackRepository) Update(ctx context.Context, id int64, title, content string) error {
	res, err := r.db.ExecContext(ctx, r.db.Rebind(updateFeedbackSQL), title, content, id)
	if err != nil {
		return fmt.Errorf("update feedback %d: %w", id, err)
	}
	return expectOneRow(res, "update feedback", id)
}

func (r *FeedbackRepository) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, r.db.Rebind(deleteFeedbackSQL), id)
	if err != nil {
		return fmt.Errorf("delete feedback %d: %w", id, err)
	}
	return expectOneRow(res, "delete feedback", id)
}

// ListByUsername returns the user's feedback in insertion order. Never nil.
func (r *FeedbackRepository) ListByUsername(ctx context.Context, username string) ([]models.Feedback, error) {
	out := make([]models.Feedback, 0, 8)
	if err := r.db.SelectContext(ctx, &out, r.db.Rebind(selectFeedbackByUsernameSQL), username); err != nil {
		return nil, fmt.Errorf("list feedback of %q: %w", username, err)
	}
	return out, nil
}

// expectOneRow maps zero affected rows to ErrNotFound.
func expectOneRow(res sql.Result, op string, id int64) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%s %d: rows affected: %w", op, id, err)
	}
	if n == 0 {
		return fmt.Errorf("%s %d: %w", op, id, ErrNotFound)
	}
	return nil
}

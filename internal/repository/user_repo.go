package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"feedback_app/internal/models"

	"github.com/jmoiron/sqlx"
)

type UserRepository struct {
	db *sqlx.DB
}

func NewUserRepository(db *sqlx.DB) *UserRepository {
	return &UserRepository{db: db}
}

// Ensure implementation of Authorization interface at compile time.
var _ Authorization = (*UserRepository)(nil)

const (
	insertUserSQL = `INSERT INTO users (username, password, email, first_name, last_name) VALUES (?, ?, ?, ?, ?)`

	selectUserByUsernameSQL = `SELECT username, password, email, first_name, last_name FROM users WHERE username = ?`

	deleteFeedbackByUsernameSQL = `DELETE FROM feedback WHERE username = ?`
	deleteUserSQL               = `DELETE FROM users WHERE username = ?`
)

// Create inserts a new user. A taken username yields ErrDuplicate; the
// primary key is the only uniqueness guarantee.
func (r *UserRepository) Create(ctx context.Context, u models.User) error {
	_, err := r.db.ExecContext(ctx, r.db.Rebind(insertUserSQL),
		u.Username, u.PasswordHash, u.Email, u.FirstName, u.LastName)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("insert user %q: %w", u.Username, ErrDuplicate)
		}
		return fmt.Errorf("insert user %q: %w", u.Username, err)
	}
	return nil
}

// GetByUsername fetches a user by username. Returns (nil, nil) if not found.
func (r *UserRepository) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	var u models.User
	err := r.db.GetContext(ctx, &u, r.db.Rebind(selectUserByUsernameSQL), username)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("select user %q: %w", username, err)
	}
	return &u, nil
}

// DeleteWithFeedback removes the user's feedback and then the user in one
// transaction. ErrNotFound if the user does not exist; nothing is removed then.
func (r *UserRepository) DeleteWithFeedback(ctx context.Context, username string) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin delete user %q: %w", username, err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	if _, err := tx.ExecContext(ctx, tx.Rebind(deleteFeedbackByUsernameSQL), username); err != nil {
		return fmt.Errorf("delete feedback of %q: %w", username, err)
	}

	res, err := tx.ExecContext(ctx, tx.Rebind(deleteUserSQL), username)
	if err != nil {
		return fmt.Errorf("delete user %q: %w", username, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected for user %q: %w", username, err)
	}
	if n == 0 {
		return fmt.Errorf("delete user %q: %w", username, ErrNotFound)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit delete user %q: %w", username, err)
	}
	return nil
}

package repository

import (
	"context"

	"feedback_app/internal/models"

	"github.com/jmoiron/sqlx"
)

type Authorization interface {
	Create(ctx context.Context, u models.User) error
	GetByUsername(ctx context.Context, username string) (*models.User, error)
	DeleteWithFeedback(ctx context.Context, username string) error
}

type FeedbackRepo interface {
	Create(ctx context.Context, f models.Feedback) (int64, error)
	GetByID(ctx context.Context, id int64) (*models.Feedback, error)
	Update(ctx context.Context, id int64, title, content string) error
	Delete(ctx context.Context, id int64) error
	ListByUsername(ctx context.Context, username string) ([]models.Feedback, error)
}

type SessionRepo interface {
	Get(ctx context.Context, id string) (*models.Session, error)
	Save(ctx context.Context, s models.Session) error
	Delete(ctx context.Context, id string) error
	DeleteByUsername(ctx context.Context, username string) (int64, error)
	DeleteExpired(ctx context.Context) (int64, error)
}

type Repository struct {
	Auth     Authorization
	Feedback FeedbackRepo
	Sessions SessionRepo
}

// NewRepository builds SQL-backed repositories. Sessions can be swapped for
// another SessionRepo (e.g. Redis) by the caller.
func NewRepository(db *sqlx.DB) *Repository {
	return &Repository{
		Auth:     NewUserRepository(db),
		Feedback: NewFeedbackRepository(db),
		Sessions: NewSessionSQL(db),
	}
}

package service

import (
	"context"
	"time"

	"feedback_app/internal/logger"
	"feedback_app/internal/models"
	"feedback_app/internal/repository"
)

// Authorization covers registration, login and account removal.
type Authorization interface {
	Register(ctx context.Context, p RegisterParams) (*models.User, error)
	Authenticate(ctx context.Context, username, password string) (*models.User, error)
	GetUser(ctx context.Context, username string) (*models.User, error)
	DeleteUser(ctx context.Context, actor, username string) error
}

// Feedback exposes owner-checked CRUD over feedback entries.
type Feedback interface {
	Create(ctx context.Context, actor, username, title, content string) (int64, error)
	Get(ctx context.Context, id int64) (*models.Feedback, error)
	Update(ctx context.Context, actor string, id int64, title, content string) error
	Delete(ctx context.Context, actor string, id int64) error
	ListByUsername(ctx context.Context, username string) ([]models.Feedback, error)
}

// Sessions resolves and persists request sessions.
type Sessions interface {
	Load(ctx context.Context, token string) (*models.Session, error)
	Start(ctx context.Context, sess *models.Session, username string) error
	Save(ctx context.Context, sess *models.Session) (string, error)
	Destroy(ctx context.Context, sess *models.Session) error
	TTL() time.Duration
}

// Sweeper runs the background expiry loop. Stop via context cancellation.
type Sweeper interface {
	Run(ctx context.Context, tick time.Duration)
}

type Service struct {
	Authorization
	Feedback
	Sessions
	Sweeper
}

// NewService wires services over repos. log may be nil.
func NewService(repos *repository.Repository, opts SessionOptions, log *logger.Logger) *Service {
	return &Service{
		Authorization: NewAuthService(repos.Auth, repos.Sessions),
		Feedback:      NewFeedbackService(repos.Feedback),
		Sessions:      NewSessionService(repos.Sessions, opts),
		Sweeper:       NewSessionSweeper(repos.Sessions, log),
	}
}

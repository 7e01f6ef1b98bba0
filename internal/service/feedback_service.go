package service

import (
	"context"
	"fmt"
	"strings"

	"feedback_app/internal/models"
	"feedback_app/internal/repository"
)

type FeedbackService struct {
	repo repository.FeedbackRepo
}

func NewFeedbackService(repo repository.FeedbackRepo) *FeedbackService {
	return &FeedbackService{repo: repo}
}

// Create stores feedback for username; actor must be that user.
func (s *FeedbackService) Create(ctx context.Context, actor, username, title, content string) (int64, error) {
	if err := requireActor(actor, username); err != nil {
		return 0, err
	}
	title, content = strings.TrimSpace(title), strings.TrimSpace(content)
	if title == "" || content == "" {
		return 0, fmt.Errorf("%w: title and content are required", ErrValidation)
	}
	return s.repo.Create(ctx, models.Feedback{Title: title, Content: content, Username: username})
}

func (s *FeedbackService) Get(ctx context.Context, id int64) (*models.Feedback, error) {
	f, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if f == nil {
		return nil, fmt.Errorf("feedback %d: %w", id, ErrNotFound)
	}
	return f, nil
}

// Update overwrites title and content. A missing id is reported before the
// ownership check; the record is untouched unless actor owns it.
func (s *FeedbackService) Update(ctx context.Context, actor string, id int64, title, content string) error {
	f, err := s.Get(ctx, id)
	if err != nil {
		return err
	}
	if err := requireActor(actor, f.Username); err != nil {
		return err
	}
	title, content = strings.TrimSpace(title), strings.TrimSpace(content)
	if title == "" || content == "" {
		return fmt.Errorf("%w: title and content are required", ErrValidation)
	}
	return s.repo.Update(ctx, id, title, content)
}

func (s *FeedbackService) Delete(ctx context.Context, actor string, id int64) error {
	f, err := s.Get(ctx, id)
	if err != nil {
		return err
	}
	if err := requireActor(actor, f.Username); err != nil {
		return err
	}
	return s.repo.Delete(ctx, id)
}

func (s *FeedbackService) ListByUsername(ctx context.Context, username string) ([]models.Feedback, error) {
	return s.repo.ListByUsername(ctx, username)
}

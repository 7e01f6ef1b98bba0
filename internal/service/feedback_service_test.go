package service

import (
	"context"
	"errors"
	"testing"

	"feedback_app/internal/models"
	"feedback_app/internal/repository"
)

// fakeFeedbackRepo is an in-memory repository.FeedbackRepo.
type fakeFeedbackRepo struct {
	rows   map[int64]models.Feedback
	nextID int64
}

func newFakeFeedbackRepo(seed ...models.Feedback) *fakeFeedbackRepo {
	r := &fakeFeedbackRepo{rows: map[int64]models.Feedback{}}
	for _, f := range seed {
		r.rows[f.ID] = f
		if f.ID > r.nextID {
			r.nextID = f.ID
		}
	}
	return r
}

func (r *fakeFeedbackRepo) Create(_ context.Context, f models.Feedback) (int64, error) {
	r.nextID++
	f.ID = r.nextID
	r.rows[f.ID] = f
	return f.ID, nil
}

func (r *fakeFeedbackRepo) GetByID(_ context.Context, id int64) (*models.Feedback, error) {
	f, ok := r.rows[id]
	if !ok {
		return nil, nil
	}
	return &f, nil
}

func (r *fakeFeedbackRepo) Update(_ context.Context, id int64, title, content string) error {
	f, ok := r.rows[id]
	if !ok {
		return repository.ErrNotFound
	}
	f.Title, f.Content = title, content
	r.rows[id] = f
	return nil
}

func (r *fakeFeedbackRepo) Delete(_ context.Context, id int64) error {
	if _, ok := r.rows[id]; !ok {
		return repository.ErrNotFound
	}
	delete(r.rows, id)
	return nil
}

func (r *fakeFeedbackRepo) ListByUsername(_ context.Context, username string) ([]models.Feedback, error) {
	out := []models.Feedback{}
	for _, f := range r.rows {
		if f.Username == username {
			out = append(out, f)
		}
	}
	return out, nil
}

func TestFeedbackService_CreateRequiresOwner(t *testing.T) {
	repo := newFakeFeedbackRepo()
	svc := NewFeedbackService(repo)

	id, err := svc.Create(ctx, "alice", "alice", " T1 ", "C1")
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if got := repo.rows[id]; got.Title != "T1" || got.Username != "alice" {
		t.Fatalf("unexpected row: %+v", got)
	}

	if _, err := svc.Create(ctx, "bob", "alice", "x", "y"); !errors.Is(err, ErrNotOwner) {
		t.Fatalf("expected ErrNotOwner, got %v", err)
	}
	if _, err := svc.Create(ctx, "", "alice", "x", "y"); !errors.Is(err, ErrNotLoggedIn) {
		t.Fatalf("expected ErrNotLoggedIn, got %v", err)
	}
	if _, err := svc.Create(ctx, "alice", "alice", "", "y"); !errors.Is(err, ErrValidation) {
		t.Fatalf("expected ErrValidation, got %v", err)
	}
	if len(repo.rows) != 1 {
		t.Fatalf("denied creates must not insert, rows=%d", len(repo.rows))
	}
}

func TestFeedbackService_OtherUserCannotMutate(t *testing.T) {
	original := models.Feedback{ID: 1, Title: "T", Content: "C", Username: "alice"}

	for _, actor := range []string{"bob", "carol", "ALICE", ""} {
		repo := newFakeFeedbackRepo(original)
		svc := NewFeedbackService(repo)

		if err := svc.Update(ctx, actor, 1, "hacked", "hacked"); !errors.Is(err, ErrAuthorizationDenied) {
			t.Fatalf("update by %q: expected ErrAuthorizationDenied, got %v", actor, err)
		}
		if err := svc.Delete(ctx, actor, 1); !errors.Is(err, ErrAuthorizationDenied) {
			t.Fatalf("delete by %q: expected ErrAuthorizationDenied, got %v", actor, err)
		}
		if got, ok := repo.rows[1]; !ok || got != original {
			t.Fatalf("record changed after denied ops by %q: %+v", actor, got)
		}
	}
}

func TestFeedbackService_OwnerUpdateAndDelete(t *testing.T) {
	repo := newFakeFeedbackRepo(models.Feedback{ID: 1, Title: "T1", Content: "C1", Username: "alice"})
	svc := NewFeedbackService(repo)

	if err := svc.Update(ctx, "alice", 1, "T1", "C2"); err != nil {
		t.Fatalf("Update: %v", err)
	}
	f, err := svc.Get(ctx, 1)
	if err != nil || f.Title != "T1" || f.Content != "C2" {
		t.Fatalf("after update got (%+v, %v)", f, err)
	}

	if err := svc.Delete(ctx, "alice", 1); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, err := svc.Get(ctx, 1); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound after delete, got %v", err)
	}
}

func TestFeedbackService_MissingIDIsNotFoundBeforeGuard(t *testing.T) {
	svc := NewFeedbackService(newFakeFeedbackRepo())

	if err := svc.Update(ctx, "", 42, "t", "c"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("update: expected ErrNotFound, got %v", err)
	}
	if err := svc.Delete(ctx, "bob", 42); !errors.Is(err, ErrNotFound) {
		t.Fatalf("delete: expected ErrNotFound, got %v", err)
	}
}

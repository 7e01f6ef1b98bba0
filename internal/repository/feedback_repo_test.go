package repository

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"

	"feedback_app/internal/models"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgx/v5/pgconn"
)

var feedbackCols = []string{"id", "title", "content", "username"}

func TestFeedbackRepository_Create(t *testing.T) {
	db, mock, cleanup := newMockDB(t)
	defer cleanup()

	mock.ExpectQuery(regexp.QuoteMeta(insertFeedbackSQL)).
		WithArgs("T1", "C1", "alice").
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(5))

	id, err := NewFeedbackRepository(db).Create(context.Background(), models.Feedback{
		Title: "T1", Content: "C1", Username: "alice",
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if id != 5 {
		t.Fatalf("expected id 5, got %d", id)
	}
}

func TestFeedbackRepository_CreateError(t *testing.T) {
	db, mock, cleanup := newMockDB(t)
	defer cleanup()

	mock.ExpectQuery(regexp.QuoteMeta(insertFeedbackSQL)).
		WillReturnError(errors.New("FOREIGN KEY constraint failed"))

	id, err := NewFeedbackRepository(db).Create(context.Background(), models.Feedback{Username: "ghost"})
	if err == nil {
		t.Fatal("expected error, got nil")
	}
	if id != 0 {
		t.Fatalf("expected id=0 on error, got %d", id)
	}
}

func TestFeedbackRepository_CreateUnknownOwnerIsNotFound(t *testing.T) {
	db, mock, cleanup := newMockDB(t)
	defer cleanup()

	mock.ExpectQuery(regexp.QuoteMeta(insertFeedbackSQL)).
		WillReturnError(&pgconn.PgError{Code: pgForeignKeyViolation})

	_, err := NewFeedbackRepository(db).Create(context.Background(), models.Feedback{Username: "ghost"})
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestFeedbackRepository_GetByID(t *testing.T) {
	tests := []struct {
		name    string
		rows    *sqlmock.Rows
		err     error
		want    *models.Feedback
		wantErr bool
	}{
		{
			name: "found",
			rows: sqlmock.NewRows(feedbackCols).AddRow(3, "T", "C", "alice"),
			want: &models.Feedback{ID: 3, Title: "T", Content: "C", Username: "alice"},
		},
		{name: "missing", err: sql.ErrNoRows},
		{name: "query error", err: errors.New("boom"), wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock, cleanup := newMockDB(t)
			defer cleanup()

			exp := mock.ExpectQuery(regexp.QuoteMeta(selectFeedbackByIDSQL)).WithArgs(int64(3))
			if tt.err != nil {
				exp.WillReturnError(tt.err)
			} else {
				exp.WillReturnRows(tt.rows)
			}

			got, err := NewFeedbackRepository(db).GetByID(context.Background(), 3)
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error, got nil")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if tt.want == nil {
				if got != nil {
					t.Fatalf("expected nil, got %+v", got)
				}
				return
			}
			if got == nil || *got != *tt.want {
				t.Fatalf("want %+v, got %+v", tt.want, got)
			}
		})
	}
}

func TestFeedbackRepository_UpdateAndDelete_NotFound(t *testing.T) {
	db, mock, cleanup := newMockDB(t)
	defer cleanup()
	repo := NewFeedbackRepository(db)

	mock.ExpectExec(regexp.QuoteMeta(updateFeedbackSQL)).
		WithArgs("T", "C", int64(9)).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec(regexp.QuoteMeta(deleteFeedbackSQL)).
		WithArgs(int64(9)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	if err := repo.Update(context.Background(), 9, "T", "C"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("update: expected ErrNotFound, got %v", err)
	}
	if err := repo.Delete(context.Background(), 9); !errors.Is(err, ErrNotFound) {
		t.Fatalf("delete: expected ErrNotFound, got %v", err)
	}
}

func TestFeedbackRepository_UpdateAndDelete_Success(t *testing.T) {
	db, mock, cleanup := newMockDB(t)
	defer cleanup()
	repo := NewFeedbackRepository(db)

	mock.ExpectExec(regexp.QuoteMeta(updateFeedbackSQL)).
		WithArgs("T2", "C2", int64(1)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(regexp.QuoteMeta(deleteFeedbackSQL)).
		WithArgs(int64(1)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	if err := repo.Update(context.Background(), 1, "T2", "C2"); err != nil {
		t.Fatalf("update: %v", err)
	}
	if err := repo.Delete(context.Background(), 1); err != nil {
		t.Fatalf("delete: %v", err)
	}
}

func TestFeedbackRepository_ListByUsername(t *testing.T) {
	db, mock, cleanup := newMockDB(t)
	defer cleanup()

	mock.ExpectQuery(regexp.QuoteMeta(selectFeedbackByUsernameSQL)).
		WithArgs("alice").
		WillReturnRows(sqlmock.NewRows(feedbackCols).
			AddRow(1, "a", "b", "alice").
			AddRow(2, "c", "d", "alice"))
	mock.ExpectQuery(regexp.QuoteMeta(selectFeedbackByUsernameSQL)).
		WithArgs("nobody").
		WillReturnRows(sqlmock.NewRows(feedbackCols))

	repo := NewFeedbackRepository(db)
	got, err := repo.ListByUsername(context.Background(), "alice")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(got) != 2 || got[0].ID != 1 || got[1].ID != 2 {
		t.Fatalf("unexpected list: %+v", got)
	}

	empty, err := repo.ListByUsername(context.Background(), "nobody")
	if err != nil {
		t.Fatalf("list empty: %v", err)
	}
	if empty == nil || len(empty) != 0 {
		t.Fatalf("expected empty non-nil slice, got %#v", empty)
	}
}

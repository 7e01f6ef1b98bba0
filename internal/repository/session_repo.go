package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"feedback_app/internal/models"

	"github.com/jmoiron/sqlx"
)

type SessionSQL struct {
	db  *sqlx.DB
	now func() time.Time
}

func NewSessionSQL(db *sqlx.DB) *SessionSQL {
	return &SessionSQL{db: db, now: time.Now}
}

var _ SessionRepo = (*SessionSQL)(nil)

const (
	upsertSessionSQL = `
		INSERT INTO sessions (id, username, flashes, expires_at)
		VALUES (?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			username=excluded.username,
			flashes=excluded.flashes,
			expires_at=excluded.expires_at
	`

	selectSessionSQL = `SELECT id, username, flashes, expires_at FROM sessions WHERE id = ? AND expires_at > ?`

	deleteSessionSQL        = `DELETE FROM sessions WHERE id = ?`
	deleteSessionsByUserSQL = `DELETE FROM sessions WHERE username = ?`
	deleteExpiredSessionSQL = `DELETE FROM sessions WHERE expires_at <= ?`
)

// sessionRow is the stored shape: flashes as JSON, expiry as unix seconds.
type sessionRow struct {
	ID        string `db:"id"`
	Username  string `db:"username"`
	Flashes   string `db:"flashes"`
	ExpiresAt int64  `db:"expires_at"`
}

func marshalFlashes(flashes []string) (string, error) {
	if len(flashes) == 0 {
		return "[]", nil
	}
	b, err := json.Marshal(flashes)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

func unmarshalFlashes(s string) ([]string, error) {
	if s == "" || s == "[]" {
		return nil, nil
	}
	var out []string
	if err := json.Unmarshal([]byte(s), &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Get returns (nil, nil) for unknown or expired sessions.
func (r *SessionSQL) Get(ctx context.Context, id string) (*models.Session, error) {
	var row sessionRow
	err := r.db.GetContext(ctx, &row, r.db.Rebind(selectSessionSQL), id, r.now().Unix())
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("select session: %w", err)
	}

	flashes, err := unmarshalFlashes(row.Flashes)
	if err != nil {
		return nil, fmt.Errorf("decode session flashes: %w", err)
	}
	return &models.Session{
		ID:        row.ID,
		Username:  row.Username,
		Flashes:   flashes,
		ExpiresAt: time.Unix(row.ExpiresAt, 0).UTC(),
	}, nil
}

// Save inserts or replaces the session row.
func (r *SessionSQL) Save(ctx context.Context, s models.Session) error {
	flashes, err := marshalFlashes(s.Flashes)
	if err != nil {
		return fmt.Errorf("encode session flashes: %w", err)
	}
	if _, err := r.db.ExecContext(ctx, r.db.Rebind(upsertSessionSQL),
		s.ID, s.Username, flashes, s.ExpiresAt.Unix()); err != nil {
		return fmt.Errorf("save session: %w", err)
	}
	return nil
}

// Delete is a no-op for unknown ids.
func (r *SessionSQL) Delete(ctx context.Context, id string) error {
	if _, err := r.db.ExecContext(ctx, r.db.Rebind(deleteSessionSQL), id); err != nil {
		return fmt.Errorf("delete session: %w", err)
	}
	return nil
}

// DeleteByUsername removes every session logged in as username.
func (r *SessionSQL) DeleteByUsername(ctx context.Context, username string) (int64, error) {
	res, err := r.db.ExecContext(ctx, r.db.Rebind(deleteSessionsByUserSQL), username)
	if err != nil {
		return 0, fmt.Errorf("delete sessions of %q: %w", username, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("delete sessions of %q: rows affected: %w", username, err)
	}
	return n, nil
}

// DeleteExpired purges sessions past their expiry and reports how many were removed.
func (r *SessionSQL) DeleteExpired(ctx context.Context) (int64, error) {
	res, err := r.db.ExecContext(ctx, r.db.Rebind(deleteExpiredSessionSQL), r.now().Unix())
	if err != nil {
		return 0, fmt.Errorf("delete expired sessions: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("delete expired sessions: rows affected: %w", err)
	}
	return n, nil
}

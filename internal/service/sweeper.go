package service

import (
	"context"
	"time"

	"feedback_app/internal/logger"
	"feedback_app/internal/repository"
)

// SessionSweeper periodically purges expired sessions from the store.
type SessionSweeper struct {
	repo repository.SessionRepo
	log  *logger.Logger
}

// NewSessionSweeper builds a sweeper. log may be nil.
func NewSessionSweeper(repo repository.SessionRepo, log *logger.Logger) *SessionSweeper {
	if log == nil {
		log = logger.Nop()
	}
	return &SessionSweeper{repo: repo, log: log}
}

// Run ticks at the given interval until ctx is canceled.
func (s *SessionSweeper) Run(ctx context.Context, tick time.Duration) {
	t := time.NewTicker(tick)
	defer t.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-t.C:
			s.sweep(ctx)
		}
	}
}

// sweep runs one purge; failures are logged and retried on the next tick.
func (s *SessionSweeper) sweep(ctx context.Context) {
	n, err := s.repo.DeleteExpired(ctx)
	if err != nil {
		if ctx.Err() == nil {
			s.log.Errorw("session_sweep_failed", "err", err)
		}
		return
	}
	if n > 0 {
		s.log.Debugw("session_sweep", "removed", n)
	}
}

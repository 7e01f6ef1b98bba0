package models

import "time"

// Session is the server-side state behind the session cookie.
// An empty Username means the visitor is anonymous.
type Session struct {
	ID        string
	Username  string
	Flashes   []string
	ExpiresAt time.Time
}

// AddFlash queues a one-shot message for the next rendered page.
func (s *Session) AddFlash(msg string) {
	s.Flashes = append(s.Flashes, msg)
}

// PopFlashes returns queued messages and empties the queue.
func (s *Session) PopFlashes() []string {
	out := s.Flashes
	s.Flashes = nil
	return out
}

// IsNew reports whether the session has never been persisted.
func (s *Session) IsNew() bool {
	return s.ID == ""
}

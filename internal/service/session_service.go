package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"feedback_app/internal/models"
	"feedback_app/internal/repository"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const defaultSessionTTL = 24 * time.Hour

var ErrInvalidToken = errors.New("invalid session token")

// SessionOptions configures cookie signing and lifetime.
type SessionOptions struct {
	Secret string
	TTL    time.Duration
}

// SessionService resolves the session cookie token to server-side session
// state. The token is an HS256 JWT whose jti is the session id.
type SessionService struct {
	repo   repository.SessionRepo
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

func NewSessionService(repo repository.SessionRepo, opts SessionOptions) *SessionService {
	ttl := opts.TTL
	if ttl <= 0 {
		ttl = defaultSessionTTL
	}
	return &SessionService{repo: repo, secret: []byte(opts.Secret), ttl: ttl, now: time.Now}
}

func (s *SessionService) TTL() time.Duration { return s.ttl }

// Load returns the session for token, or a fresh anonymous session when the
// token is empty, forged, expired or unknown. Only storage failures are errors.
func (s *SessionService) Load(ctx context.Context, token string) (*models.Session, error) {
	if token == "" {
		return &models.Session{}, nil
	}
	id, err := s.parseToken(token)
	if err != nil {
		return &models.Session{}, nil
	}
	sess, err := s.repo.Get(ctx, id)
	if err != nil {
		return &models.Session{}, fmt.Errorf("load session: %w", err)
	}
	if sess == nil {
		return &models.Session{}, nil
	}
	return sess, nil
}

// Start binds sess to username under a new session id. The previous id is discarded.
func (s *SessionService) Start(ctx context.Context, sess *models.Session, username string) error {
	if !sess.IsNew() {
		if err := s.repo.Delete(ctx, sess.ID); err != nil {
			return err
		}
	}
	sess.ID = ""
	sess.Username = username
	return nil
}

// Save persists sess and returns the signed cookie token. An anonymous
// session with nothing queued is not stored and yields an empty token.
func (s *SessionService) Save(ctx context.Context, sess *models.Session) (string, error) {
	if sess.IsNew() && sess.Username == "" && len(sess.Flashes) == 0 {
		return "", nil
	}
	if sess.IsNew() {
		sess.ID = uuid.NewString()
	}
	sess.ExpiresAt = s.now().Add(s.ttl).UTC().Truncate(time.Second)

	if err := s.repo.Save(ctx, *sess); err != nil {
		return "", err
	}
	return s.issueToken(sess.ID, sess.ExpiresAt)
}

// Destroy removes the stored session and resets sess to anonymous.
func (s *SessionService) Destroy(ctx context.Context, sess *models.Session) error {
	if !sess.IsNew() {
		if err := s.repo.Delete(ctx, sess.ID); err != nil {
			return err
		}
	}
	*sess = models.Session{}
	return nil
}

func (s *SessionService) issueToken(id string, exp time.Time) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, &jwt.RegisteredClaims{
		ID:        id,
		IssuedAt:  jwt.NewNumericDate(s.now()),
		ExpiresAt: jwt.NewNumericDate(exp),
	})
	return token.SignedString(s.secret)
}

func (s *SessionService) parseToken(raw string) (string, error) {
	claims := &jwt.RegisteredClaims{}
	token, err := jwt.ParseWithClaims(raw, claims, func(token *jwt.Token) (interface{}, error) {
		// Ensure HMAC signing is used
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.secret, nil
	}, jwt.WithTimeFunc(s.now))
	if err != nil {
		return "", err
	}
	if !token.Valid || claims.ID == "" {
		return "", ErrInvalidToken
	}
	return claims.ID, nil
}

package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"feedback_app/internal/models"
	"feedback_app/internal/repository"

	"golang.org/x/crypto/bcrypt"
)

// AuthService handles user registration, login and account removal.
type AuthService struct {
	authRepo repository.Authorization
	sessions repository.SessionRepo
}

// NewAuthService builds the service. sessions may be nil, in which case
// deleting a user leaves its sessions to expire on their own.
func NewAuthService(repo repository.Authorization, sessions repository.SessionRepo) *AuthService {
	return &AuthService{authRepo: repo, sessions: sessions}
}

// Register hashes the password and stores a new user.
func (s *AuthService) Register(ctx context.Context, p RegisterParams) (*models.User, error) {
	p = p.normalized()
	if err := p.validate(); err != nil {
		return nil, err
	}
	hash, err := hashPassword(p.Password)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrValidation, err)
	}

	u := models.User{
		Username:     p.Username,
		PasswordHash: hash,
		Email:        p.Email,
		FirstName:    p.FirstName,
		LastName:     p.LastName,
	}
	if err := s.authRepo.Create(ctx, u); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, ErrDuplicateUser
		}
		return nil, err
	}
	return &u, nil
}

// Authenticate returns the user for valid credentials. Unknown users and wrong
// passwords both yield ErrAuthenticationFailed.
func (s *AuthService) Authenticate(ctx context.Context, username, password string) (*models.User, error) {
	u, err := s.authRepo.GetByUsername(ctx, strings.TrimSpace(username))
	if err != nil {
		return nil, err
	}
	if u == nil {
		// keep timing close to the wrong-password path
		_ = verifyPassword(dummyHash, password)
		return nil, ErrAuthenticationFailed
	}
	if err := verifyPassword(u.PasswordHash, password); err != nil {
		return nil, ErrAuthenticationFailed
	}
	return u, nil
}

func (s *AuthService) GetUser(ctx context.Context, username string) (*models.User, error) {
	u, err := s.authRepo.GetByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, fmt.Errorf("user %q: %w", username, ErrNotFound)
	}
	return u, nil
}

// DeleteUser removes username and all of its feedback, then logs out every
// session of that user. Only the user may delete itself.
func (s *AuthService) DeleteUser(ctx context.Context, actor, username string) error {
	if err := requireActor(actor, username); err != nil {
		return err
	}
	if err := s.authRepo.DeleteWithFeedback(ctx, username); err != nil {
		return err
	}
	if s.sessions == nil {
		return nil
	}
	if _, err := s.sessions.DeleteByUsername(ctx, username); err != nil {
		return fmt.Errorf("revoke sessions of %q: %w", username, err)
	}
	return nil
}

// dummyHash is a bcrypt hash of a random string, compared against when the user is unknown.
const dummyHash = "$2a$10$7EqJtq98hPqEX7fNZaFWoOhi5BWX4Z3Ll8n7YnDkTEDUoBHJ1C4mK"

func hashPassword(password string) (string, error) {
	if strings.TrimSpace(password) == "" {
		return "", errors.New("password is empty")
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	return string(hash), nil
}

func verifyPassword(hash, password string) error {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
}

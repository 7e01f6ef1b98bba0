package service

import (
	"errors"
	"fmt"

	"feedback_app/internal/repository"
)

// Domain errors surfaced to handlers.
var (
	ErrValidation           = errors.New("validation failed")
	ErrAuthenticationFailed = errors.New("incorrect username/password")
	ErrAuthorizationDenied  = errors.New("authorization denied")
	ErrDuplicateUser        = errors.New("username already taken")

	// ErrNotFound is shared with the repository layer so errors.Is works across both.
	ErrNotFound = repository.ErrNotFound

	ErrNotLoggedIn = fmt.Errorf("%w: not logged in", ErrAuthorizationDenied)
	ErrNotOwner    = fmt.Errorf("%w: not the owner", ErrAuthorizationDenied)
)

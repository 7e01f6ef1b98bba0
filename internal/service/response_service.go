package service

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

var paramsValidator = validator.New()

// RegisterParams carries a new account. Web forms enforce stricter rules
// before this point; these are the limits every caller must respect.
type RegisterParams struct {
	Username  string `validate:"required,max=20,excludes=/"`
	Password  string `validate:"required"`
	Email     string `validate:"required,email,max=50"`
	FirstName string `validate:"max=30"`
	LastName  string `validate:"max=30"`
}

// normalized trims surrounding whitespace from everything but the password.
func (p RegisterParams) normalized() RegisterParams {
	p.Username = strings.TrimSpace(p.Username)
	p.Email = strings.TrimSpace(p.Email)
	p.FirstName = strings.TrimSpace(p.FirstName)
	p.LastName = strings.TrimSpace(p.LastName)
	return p
}

func (p RegisterParams) validate() error {
	if err := paramsValidator.Struct(p); err != nil {
		// keep validator.ValidationErrors reachable for per-field messages
		return fmt.Errorf("%w: %w", ErrValidation, err)
	}
	return nil
}

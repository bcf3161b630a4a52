// Package validation holds the pure, side-effect-free payload validators that
// guard entity creation. They fail fast: the first failing rule determines the
// reported error.
package validation

import (
	"fmt"
	"unicode"
	"unicode/utf8"

	"github.com/go-playground/validator/v10"

	apperrors "taskhive/internal/errors"
)

const (
	nameMinLen  = 4
	nameMaxLen  = 50
	emailMaxLen = 50
	// Strength policy: minimum length plus one of each character class.
	passwordMinLen = 8
)

var validate = validator.New()

// SignupPayload checks a signup payload. Rules are applied in order
// name, email, password; the first violation is returned.
func SignupPayload(name, email, password string) error {
	if err := Name(name); err != nil {
		return err
	}
	if err := Email(email); err != nil {
		return err
	}
	return Password(password)
}

// Name requires a name of 4 to 50 characters.
func Name(name string) error {
	if name == "" {
		return fmt.Errorf("%w: name is required", apperrors.ErrValidation)
	}
	if n := utf8.RuneCountInString(name); n < nameMinLen || n > nameMaxLen {
		return fmt.Errorf("%w: name must be %d-%d characters", apperrors.ErrValidation, nameMinLen, nameMaxLen)
	}
	return nil
}

// Email requires a syntactically valid email address of at most 50 characters.
func Email(email string) error {
	if email == "" {
		return fmt.Errorf("%w: email is required", apperrors.ErrValidation)
	}
	if len(email) > emailMaxLen {
		return fmt.Errorf("%w: email must be at most %d characters", apperrors.ErrValidation, emailMaxLen)
	}
	if err := validate.Var(email, "email"); err != nil {
		return fmt.Errorf("%w: invalid email", apperrors.ErrValidation)
	}
	return nil
}

// Password enforces the strength policy: at least 8 characters with upper and
// lower case letters, a digit and a symbol.
func Password(password string) error {
	if password == "" {
		return fmt.Errorf("%w: password is required", apperrors.ErrValidation)
	}
	if utf8.RuneCountInString(password) < passwordMinLen {
		return weakPassword()
	}
	var hasUpper, hasLower, hasDigit, hasSymbol bool
	for _, r := range password {
		switch {
		case unicode.IsUpper(r):
			hasUpper = true
		case unicode.IsLower(r):
			hasLower = true
		case unicode.IsDigit(r):
			hasDigit = true
		default:
			hasSymbol = true
		}
	}
	if !hasUpper || !hasLower || !hasDigit || !hasSymbol {
		return weakPassword()
	}
	return nil
}

func weakPassword() error {
	return fmt.Errorf("%w: password too weak, need %d+ characters with upper, lower, digit and symbol", apperrors.ErrValidation, passwordMinLen)
}

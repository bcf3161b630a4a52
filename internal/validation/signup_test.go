package validation

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	apperrors "taskhive/internal/errors"
)

func TestName(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"empty", "", true},
		{"below minimum", "Abc", true},
		{"at minimum", "Abcd", false},
		{"typical", "Alice Doe", false},
		{"at maximum", strings.Repeat("a", 50), false},
		{"above maximum", strings.Repeat("a", 51), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Name(tt.input)
			if tt.wantErr {
				assert.ErrorIs(t, err, apperrors.ErrValidation)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestEmail(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"empty", "", true},
		{"no at sign", "alice.example.com", true},
		{"no domain", "alice@", true},
		{"valid", "alice@example.com", false},
		{"too long", strings.Repeat("a", 45) + "@example.com", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Email(tt.input)
			if tt.wantErr {
				assert.ErrorIs(t, err, apperrors.ErrValidation)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestPassword(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"empty", "", true},
		{"too short", "abc", true},
		{"no upper", "str0ng!pass", true},
		{"no lower", "STR0NG!PASS", true},
		{"no digit", "Strong!Pass", true},
		{"no symbol", "Str0ngPass", true},
		{"strong", "Str0ng!Pass", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Password(tt.input)
			if tt.wantErr {
				assert.ErrorIs(t, err, apperrors.ErrValidation)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestSignupPayload_FailFastOrder(t *testing.T) {
	// Everything invalid: the name rule must win.
	err := SignupPayload("x", "not-an-email", "weak")
	assert.ErrorIs(t, err, apperrors.ErrValidation)
	assert.Contains(t, err.Error(), "name")

	// Valid name, invalid email and password: the email rule must win.
	err = SignupPayload("Alice Doe", "not-an-email", "weak")
	assert.ErrorIs(t, err, apperrors.ErrValidation)
	assert.Contains(t, err.Error(), "email")

	// Only the password invalid.
	err = SignupPayload("Alice Doe", "alice@example.com", "weak")
	assert.ErrorIs(t, err, apperrors.ErrValidation)
	assert.Contains(t, err.Error(), "password")

	// All valid.
	assert.NoError(t, SignupPayload("Alice Doe", "alice@example.com", "Str0ng!Pass"))
}

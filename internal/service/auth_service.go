package service

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"taskhive/internal/auth"
	apperrors "taskhive/internal/errors"
	"taskhive/internal/model"
	"taskhive/internal/repository"
	"taskhive/internal/validation"
)

// AuthService handles signup and login.
type AuthService interface {
	Signup(ctx context.Context, name, email, password string, role model.Role) (*model.User, error)
	Login(ctx context.Context, email, password string) (token string, user *model.User, err error)
}

type authService struct {
	users     repository.UserRepository
	passwords *auth.PasswordService
	tokens    *auth.TokenService
}

// NewAuthService creates a new authentication service.
func NewAuthService(users repository.UserRepository, passwords *auth.PasswordService, tokens *auth.TokenService) AuthService {
	return &authService{
		users:     users,
		passwords: passwords,
		tokens:    tokens,
	}
}

// Signup validates the payload, hashes the password and persists the user.
// The plaintext password never reaches the store.
func (s *authService) Signup(ctx context.Context, name, email, password string, role model.Role) (*model.User, error) {
	if err := validation.SignupPayload(name, email, password); err != nil {
		return nil, err
	}

	// Pre-check for a friendlier error than a raw uniqueness violation. The
	// unique index still backstops concurrent signups with the same email;
	// the loser of that race gets the generic create error below.
	existing, err := s.users.FindByEmail(ctx, email)
	if err == nil && existing != nil {
		return nil, apperrors.ErrEmailTaken
	}
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("check user existence: %w", err)
	}

	hashed, err := s.passwords.Hash(password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	if role == "" {
		role = model.RoleUser
	}

	user := &model.User{
		Name:         name,
		Email:        email,
		PasswordHash: hashed,
		Role:         role,
	}

	if err := s.users.Create(ctx, user); err != nil {
		return nil, fmt.Errorf("create user: %w", err)
	}

	return user, nil
}

// Login authenticates a user and issues a session token. Both an unknown
// email and a wrong password collapse into ErrInvalidCredentials so callers
// cannot enumerate accounts.
func (s *authService) Login(ctx context.Context, email, password string) (string, *model.User, error) {
	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		return "", nil, apperrors.ErrInvalidCredentials
	}

	if !s.passwords.Verify(password, user.PasswordHash) {
		return "", nil, apperrors.ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(user.ID)
	if err != nil {
		return "", nil, fmt.Errorf("issue token: %w", err)
	}

	return token, user, nil
}

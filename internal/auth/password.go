package auth

import (
	"errors"

	"golang.org/x/crypto/bcrypt"
)

// DefaultBcryptCost is the bcrypt work factor used for stored credentials.
const DefaultBcryptCost = 10

// ErrEmptyPassword is returned when hashing an empty plaintext.
var ErrEmptyPassword = errors.New("password must not be empty")

// PasswordService hashes plaintext passwords for storage and verifies
// candidates against stored hashes. The cost is a field so tests can lower it.
type PasswordService struct {
	cost int
}

// NewPasswordService creates a password service with the default cost.
func NewPasswordService() *PasswordService {
	return &PasswordService{cost: DefaultBcryptCost}
}

// Hash applies a salted adaptive hash to plaintext. The output is safe to
// persist; the salt is embedded in the hash.
func (s *PasswordService) Hash(plaintext string) (string, error) {
	if plaintext == "" {
		return "", ErrEmptyPassword
	}
	hashed, err := bcrypt.GenerateFromPassword([]byte(plaintext), s.cost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

// Verify reports whether plaintext matches the stored hash. Comparison is
// constant-time, delegated to bcrypt. A mismatch is not an error.
func (s *PasswordService) Verify(plaintext, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plaintext)) == nil
}

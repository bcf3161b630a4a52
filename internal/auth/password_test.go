package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// bcrypt.MinCost keeps the hashing rounds cheap in tests.
func newTestPasswordService() *PasswordService {
	return &PasswordService{cost: 4}
}

func TestPasswordService_HashAndVerify(t *testing.T) {
	svc := newTestPasswordService()

	hash, err := svc.Hash("Str0ng!Pass")
	assert.NoError(t, err)
	assert.NotEmpty(t, hash)
	assert.NotEqual(t, "Str0ng!Pass", hash)

	assert.True(t, svc.Verify("Str0ng!Pass", hash))
	assert.False(t, svc.Verify("wrong-password", hash))
}

func TestPasswordService_HashEmpty(t *testing.T) {
	svc := newTestPasswordService()

	hash, err := svc.Hash("")
	assert.Empty(t, hash)
	assert.ErrorIs(t, err, ErrEmptyPassword)
}

func TestPasswordService_HashesAreSalted(t *testing.T) {
	svc := newTestPasswordService()

	first, err := svc.Hash("Str0ng!Pass")
	assert.NoError(t, err)
	second, err := svc.Hash("Str0ng!Pass")
	assert.NoError(t, err)

	// Same plaintext, different salts, different hashes.
	assert.NotEqual(t, first, second)
	assert.True(t, svc.Verify("Str0ng!Pass", first))
	assert.True(t, svc.Verify("Str0ng!Pass", second))
}

func TestPasswordService_VerifyGarbageHash(t *testing.T) {
	svc := newTestPasswordService()
	assert.False(t, svc.Verify("anything", "not-a-bcrypt-hash"))
}

package auth

import (
	"strings"
	"testing"

	"bonsai/config"
	domainerrors "bonsai/internal/domain/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func newTestHasher() *bcryptHasher {
	return NewBcryptHasher(&config.Config{Auth: &config.AuthConfig{BcryptCost: bcrypt.MinCost}}).(*bcryptHasher)
}

func TestBcryptHasher_Hash(t *testing.T) {
	hasher := newTestHasher()

	hash, err := hasher.Hash("senha123")
	require.NoError(t, err)
	assert.NotEmpty(t, hash)
	assert.NotEqual(t, "senha123", hash)

	cost, err := bcrypt.Cost([]byte(hash))
	require.NoError(t, err)
	assert.Equal(t, bcrypt.MinCost, cost)
}

func TestBcryptHasher_Verify(t *testing.T) {
	hasher := newTestHasher()

	hash, err := hasher.Hash("senha123")
	require.NoError(t, err)

	ok, err := hasher.Verify("senha123", hash)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = hasher.Verify("senha-errada", hash)
	require.NoError(t, err)
	assert.False(t, ok)

	ok, err = hasher.Verify("", hash)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestBcryptHasher_VerifyMalformedHash(t *testing.T) {
	hasher := newTestHasher()

	ok, err := hasher.Verify("senha123", "not-a-bcrypt-hash")
	assert.Error(t, err)
	assert.False(t, ok)
}

func TestNewBcryptHasher_InvalidCostFallsBack(t *testing.T) {
	hasher := NewBcryptHasher(&config.Config{Auth: &config.AuthConfig{BcryptCost: 99}}).(*bcryptHasher)
	assert.Equal(t, bcrypt.DefaultCost, hasher.cost)

	hasher = NewBcryptHasher(nil).(*bcryptHasher)
	assert.Equal(t, bcrypt.DefaultCost, hasher.cost)
}

func TestBcryptHasher_HashRejectsOver72Bytes(t *testing.T) {
	hasher := newTestHasher()

	// 40 runes, 80 bytes.
	_, err := hasher.Hash(strings.Repeat("é", 40))
	require.Error(t, err)
	assert.Equal(t, domainerrors.KindValidation, domainerrors.KindOf(err))

	hash, err := hasher.Hash(strings.Repeat("é", 36))
	require.NoError(t, err)
	assert.NotEmpty(t, hash)
}

package auth

import (
	"testing"

	"taskhub/config"

	"github.com/stretchr/testify/assert"
)

func newTestHasher() *bcryptHasher {
	// MinCost keeps the test suite fast; production cost comes from config.
	return &bcryptHasher{cost: 4}
}

func TestBcryptHasher_Hash(t *testing.T) {
	hasher := newTestHasher()

	password := "secret1"
	hash, err := hasher.Hash(password)
	assert.NoError(t, err)
	assert.NotEmpty(t, hash)
	assert.NotEqual(t, password, hash)

	// Verify the hash can be checked
	assert.True(t, hasher.Check(password, hash))
}

func TestBcryptHasher_Check(t *testing.T) {
	hasher := newTestHasher()
	password := "secret1"

	hash, err := hasher.Hash(password)
	assert.NoError(t, err)

	// Test correct password
	assert.True(t, hasher.Check(password, hash))

	// Test incorrect password
	assert.False(t, hasher.Check("wrong-password", hash))

	// Test empty password
	assert.False(t, hasher.Check("", hash))

	// Test with invalid hash
	assert.False(t, hasher.Check(password, "invalid_hash"))
}

func TestBcryptHasher_DistinctHashesPerCall(t *testing.T) {
	hasher := newTestHasher()

	first, err := hasher.Hash("secret1")
	assert.NoError(t, err)
	second, err := hasher.Hash("secret1")
	assert.NoError(t, err)

	// Each call salts independently.
	assert.NotEqual(t, first, second)
}

func TestNewBcryptHasher_CostFromConfig(t *testing.T) {
	cfg := &config.Config{Auth: &config.AuthConfig{BcryptCost: 6}}

	hasher, ok := NewBcryptHasher(cfg).(*bcryptHasher)
	assert.True(t, ok)
	assert.Equal(t, 6, hasher.cost)
}

func TestNewBcryptHasher_DefaultCostWhenUnconfigured(t *testing.T) {
	hasher, ok := NewBcryptHasher(&config.Config{}).(*bcryptHasher)
	assert.True(t, ok)
	assert.Equal(t, 10, hasher.cost)
}

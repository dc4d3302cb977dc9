package auth

import (
	"testing"

	"whisper/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBcryptHasher_HashAndCheck(t *testing.T) {
	hasher := NewBcryptHasher(&config.Config{
		Auth: &config.AuthConfig{BcryptCost: 4},
	})

	hash, err := hasher.Hash("password123")
	require.NoError(t, err)
	require.NotEmpty(t, hash)
	assert.NotEqual(t, "password123", hash)

	assert.True(t, hasher.Check("password123", hash))
	assert.False(t, hasher.Check("wrong", hash))
}

func TestBcryptHasher_OutOfRangeCostFallsBack(t *testing.T) {
	hasher := NewBcryptHasher(&config.Config{
		Auth: &config.AuthConfig{BcryptCost: 99},
	})

	hash, err := hasher.Hash("password123")
	require.NoError(t, err)
	assert.True(t, hasher.Check("password123", hash))
}

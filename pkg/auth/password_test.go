package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashPassword(t *testing.T) {
	hash, err := HashPassword("secret123")
	require.NoError(t, err)
	assert.NotEmpty(t, hash)
	assert.NotEqual(t, "secret123", hash)

	// Hashing is salted, so two hashes of the same password differ
	hash2, err := HashPassword("secret123")
	require.NoError(t, err)
	assert.NotEqual(t, hash, hash2)
}

func TestCheckPassword(t *testing.T) {
	hash, err := HashPassword("secret123")
	require.NoError(t, err)

	t.Run("matching password", func(t *testing.T) {
		assert.NoError(t, CheckPassword("secret123", hash))
	})

	t.Run("wrong password", func(t *testing.T) {
		assert.Error(t, CheckPassword("wrong", hash))
	})

	t.Run("empty stored hash never matches", func(t *testing.T) {
		assert.Error(t, CheckPassword("secret123", ""))
	})
}

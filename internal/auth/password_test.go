package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashPassword(t *testing.T) {
	t.Run("hash verifies against original password", func(t *testing.T) {
		hash, err := HashPassword("joepassword")
		require.NoError(t, err)
		assert.NotEqual(t, "joepassword", hash)
		assert.NoError(t, VerifyPassword(hash, "joepassword"))
	})

	t.Run("hash rejects a different password", func(t *testing.T) {
		hash, err := HashPassword("joepassword")
		require.NoError(t, err)
		assert.Error(t, VerifyPassword(hash, "notjoepassword"))
	})

	t.Run("hashing is salted", func(t *testing.T) {
		hash1, err := HashPassword("joepassword")
		require.NoError(t, err)
		hash2, err := HashPassword("joepassword")
		require.NoError(t, err)

		// Two hashes of the same input differ, yet both verify.
		assert.NotEqual(t, hash1, hash2)
		assert.NoError(t, VerifyPassword(hash1, "joepassword"))
		assert.NoError(t, VerifyPassword(hash2, "joepassword"))
	})
}

func TestVerifyPassword(t *testing.T) {
	t.Run("garbage hash never verifies", func(t *testing.T) {
		assert.Error(t, VerifyPassword("not-a-bcrypt-hash", "joepassword"))
	})

	t.Run("empty hash never verifies", func(t *testing.T) {
		assert.Error(t, VerifyPassword("", ""))
	})
}

package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"golang.org/x/crypto/bcrypt"
)

func TestBcryptHasher(t *testing.T) {
	t.Parallel()

	hasher := NewBcryptHasher(bcrypt.MinCost)

	t.Run("hash is not the plaintext and verifies", func(t *testing.T) {
		t.Parallel()
		hashed, err := hasher.Hash("secret")
		require.NoError(t, err)
		assert.NotEqual(t, "secret", hashed)
		assert.NoError(t, hasher.Compare(hashed, "secret"))
	})

	t.Run("compare fails for the wrong password", func(t *testing.T) {
		t.Parallel()
		hashed, err := hasher.Hash("secret")
		require.NoError(t, err)
		assert.Error(t, hasher.Compare(hashed, "wrong"))
	})

	t.Run("hashing the same password twice yields different hashes", func(t *testing.T) {
		t.Parallel()
		first, err := hasher.Hash("secret")
		require.NoError(t, err)
		second, err := hasher.Hash("secret")
		require.NoError(t, err)
		assert.NotEqual(t, first, second, "bcrypt salts each hash")
	})

	t.Run("out-of-range cost falls back to the default", func(t *testing.T) {
		t.Parallel()
		h := NewBcryptHasher(99)
		assert.Equal(t, bcrypt.DefaultCost, h.cost)

		h = NewBcryptHasher(0)
		assert.Equal(t, bcrypt.DefaultCost, h.cost)
	})
}

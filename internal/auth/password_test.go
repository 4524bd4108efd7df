package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBcryptPasswordHasherRoundTrip(t *testing.T) {
	hasher := NewBcryptPasswordHasher(4)

	hash, err := hasher.Hash("secret")
	require.NoError(t, err)
	require.NotEmpty(t, hash)
	assert.NotEqual(t, "secret", hash)

	assert.NoError(t, hasher.Compare(hash, "secret"))
	assert.Error(t, hasher.Compare(hash, "wrong"))
}

func TestBcryptPasswordHasherDefaultCost(t *testing.T) {
	// Zero and negative costs fall back to the bcrypt default.
	hasher := NewBcryptPasswordHasher(0)

	hash, err := hasher.Hash("secret")
	require.NoError(t, err)
	assert.NoError(t, hasher.Compare(hash, "secret"))
}

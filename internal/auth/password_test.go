package auth_test

import (
	"testing"

	"tasko/internal/auth"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBcryptHasher(t *testing.T) {
	hasher := auth.NewBcryptHasher()

	hash, err := hasher.Hash("secreta123")
	require.NoError(t, err)
	assert.NotEqual(t, "secreta123", hash)

	assert.NoError(t, hasher.Compare(hash, "secreta123"))
	assert.Error(t, hasher.Compare(hash, "equivocada"))
}

func TestBcryptHasher_DistinctSalts(t *testing.T) {
	hasher := auth.NewBcryptHasher()

	h1, err := hasher.Hash("secreta123")
	require.NoError(t, err)
	h2, err := hasher.Hash("secreta123")
	require.NoError(t, err)

	assert.NotEqual(t, h1, h2)
}

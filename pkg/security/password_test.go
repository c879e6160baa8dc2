package security

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBcryptHasher_RoundTrip(t *testing.T) {
	hasher := NewBcryptHasher(4)

	hash, err := hasher.Hash("secret123")
	require.NoError(t, err)
	assert.NotEqual(t, "secret123", hash)

	assert.NoError(t, hasher.Compare(hash, "secret123"))
	assert.ErrorIs(t, hasher.Compare(hash, "wrong"), ErrMismatch)
}

func TestBcryptHasher_LegacyPlaintext(t *testing.T) {
	hasher := NewBcryptHasher(4)

	assert.NoError(t, hasher.Compare("plainpass", "plainpass"))
	assert.ErrorIs(t, hasher.Compare("plainpass", "other"), ErrMismatch)
}

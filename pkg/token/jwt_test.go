package token

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIssueAndVerify(t *testing.T) {
	svc := NewService("test-secret", time.Hour)

	tok, err := svc.Issue("pharm1", "Pharmacist")
	require.NoError(t, err)
	require.NotEmpty(t, tok)

	claims, err := svc.Verify(tok)
	require.NoError(t, err)
	assert.Equal(t, "pharm1", claims.Subject)
	assert.Equal(t, "Pharmacist", claims.Role)
}

func TestVerifyExpired(t *testing.T) {
	svc := NewService("test-secret", -time.Minute)

	tok, err := svc.Issue("doc1", "Doctor")
	require.NoError(t, err)

	_, err = svc.Verify(tok)
	assert.Error(t, err)
}

func TestVerifyWrongSecret(t *testing.T) {
	issuer := NewService("secret-a", time.Hour)
	verifier := NewService("secret-b", time.Hour)

	tok, err := issuer.Issue("admin1", "Admin")
	require.NoError(t, err)

	_, err = verifier.Verify(tok)
	assert.Error(t, err)
}

func TestVerifyGarbage(t *testing.T) {
	svc := NewService("test-secret", time.Hour)
	_, err := svc.Verify("not-a-token")
	assert.Error(t, err)
}

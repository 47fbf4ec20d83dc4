package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIssueAndVerify(t *testing.T) {
	authn := NewTokenAuthenticator("test-secret", "skillwave", time.Hour)

	token, err := authn.Issue("64f1b2c3d4e5f6a7b8c9d0e1", "recruiter")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := authn.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, "64f1b2c3d4e5f6a7b8c9d0e1", claims.UserID)
	assert.Equal(t, "recruiter", claims.Role)
	assert.Equal(t, "skillwave", claims.Issuer)
}

func TestVerifyExpiredToken(t *testing.T) {
	authn := NewTokenAuthenticator("test-secret", "skillwave", -time.Minute)

	token, err := authn.Issue("64f1b2c3d4e5f6a7b8c9d0e1", "job-seeker")
	require.NoError(t, err)

	_, err = authn.Verify(token)
	assert.ErrorIs(t, err, ErrTokenExpired)
}

func TestVerifyWrongSecret(t *testing.T) {
	authn := NewTokenAuthenticator("test-secret", "skillwave", time.Hour)
	other := NewTokenAuthenticator("other-secret", "skillwave", time.Hour)

	token, err := authn.Issue("64f1b2c3d4e5f6a7b8c9d0e1", "job-seeker")
	require.NoError(t, err)

	_, err = other.Verify(token)
	assert.ErrorIs(t, err, ErrTokenInvalid)
}

func TestVerifyWrongIssuer(t *testing.T) {
	authn := NewTokenAuthenticator("test-secret", "skillwave", time.Hour)
	other := NewTokenAuthenticator("test-secret", "someone-else", time.Hour)

	token, err := other.Issue("64f1b2c3d4e5f6a7b8c9d0e1", "job-seeker")
	require.NoError(t, err)

	_, err = authn.Verify(token)
	assert.ErrorIs(t, err, ErrTokenInvalid)
}

func TestVerifyGarbage(t *testing.T) {
	authn := NewTokenAuthenticator("test-secret", "skillwave", time.Hour)

	_, err := authn.Verify("not-a-token")
	assert.ErrorIs(t, err, ErrTokenInvalid)
}

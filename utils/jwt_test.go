package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIdentityTokenRoundTrip(t *testing.T) {
	t.Parallel()
	secret := []byte("test-secret")

	token, err := GenerateIdentityToken(secret, "player-1", time.Now())
	require.NoError(t, err)

	claims, err := ParseIdentityToken(secret, token)
	require.NoError(t, err)
	assert.Equal(t, "player-1", claims.UserID)
	assert.Equal(t, identityIssuer, claims.Issuer)
}

func TestIdentityTokenRejected(t *testing.T) {
	t.Parallel()
	secret := []byte("test-secret")

	token, err := GenerateIdentityToken(secret, "player-1", time.Now())
	require.NoError(t, err)
	_, err = ParseIdentityToken([]byte("other-secret"), token)
	assert.Error(t, err)

	expired, err := GenerateIdentityToken(secret, "player-1", time.Now().Add(-2*IdentityTTL))
	require.NoError(t, err)
	_, err = ParseIdentityToken(secret, expired)
	assert.Error(t, err)

	_, err = ParseIdentityToken(secret, "not-a-token")
	assert.Error(t, err)
}

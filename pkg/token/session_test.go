package token

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionTokenRoundTrip(t *testing.T) {
	secret := []byte("secret")
	tok, err := GenerateSessionToken("abc", secret, time.Minute)
	require.NoError(t, err)

	claims, err := VerifyToken(tok, secret)
	require.NoError(t, err)
	assert.Equal(t, "abc", claims.Subject)
}

func TestVerifyTokenRejects(t *testing.T) {
	secret := []byte("secret")

	tok, err := GenerateSessionToken("abc", secret, time.Minute)
	require.NoError(t, err)
	_, err = VerifyToken(tok, []byte("other"))
	assert.ErrorIs(t, err, ErrInvalidToken)

	expired, err := GenerateSessionToken("abc", secret, -time.Minute)
	require.NoError(t, err)
	_, err = VerifyToken(expired, secret)
	assert.ErrorIs(t, err, ErrInvalidToken)

	_, err = VerifyToken("garbage", secret)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

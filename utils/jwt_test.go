package utils

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret"

func TestGenerateTokens_RoundTrip(t *testing.T) {
	tokens, err := GenerateTokens(42, "seller", testSecret, time.Minute, time.Hour)
	require.NoError(t, err)
	require.NotEmpty(t, tokens.AccessToken)
	require.NotEmpty(t, tokens.RefreshToken)

	claims, err := ParseToken(tokens.AccessToken, testSecret, AccessToken)
	require.NoError(t, err)
	assert.Equal(t, uint(42), claims.UserID)
	assert.Equal(t, "seller", claims.Role)

	claims, err = ParseToken(tokens.RefreshToken, testSecret, RefreshToken)
	require.NoError(t, err)
	assert.Equal(t, RefreshToken, claims.Type)
}

func TestParseToken_WrongType(t *testing.T) {
	tok, err := GenerateToken(1, "customer", RefreshToken, testSecret, time.Minute)
	require.NoError(t, err)

	_, err = ParseToken(tok, testSecret, AccessToken)
	assert.ErrorIs(t, err, ErrWrongTokenType)
}

func TestParseToken_WrongSecret(t *testing.T) {
	tok, err := GenerateToken(1, "customer", AccessToken, testSecret, time.Minute)
	require.NoError(t, err)

	_, err = ParseToken(tok, "other", AccessToken)
	assert.ErrorIs(t, err, jwt.ErrTokenSignatureInvalid)
}

func TestParseToken_Expired(t *testing.T) {
	tok, err := GenerateToken(1, "customer", AccessToken, testSecret, -time.Minute)
	require.NoError(t, err)

	_, err = ParseToken(tok, testSecret, AccessToken)
	assert.ErrorIs(t, err, jwt.ErrTokenExpired)
}

func TestParseToken_RejectsOtherAlgorithms(t *testing.T) {
	tok := jwt.NewWithClaims(jwt.SigningMethodHS512, &Claims{UserID: 1, Type: AccessToken})
	s, err := tok.SignedString([]byte(testSecret))
	require.NoError(t, err)

	_, err = ParseToken(s, testSecret, AccessToken)
	assert.Error(t, err)
}

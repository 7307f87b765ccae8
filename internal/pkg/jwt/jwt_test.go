package jwt

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

var testSecret = []byte("test-secret")

func TestTokenRoundTrip(t *testing.T) {
	token, err := GenerateToken("u1", "a@b.com", testSecret, time.Hour)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := ParseToken(token, testSecret)
	require.NoError(t, err)
	require.Equal(t, "u1", claims.UserID)
	require.Equal(t, "a@b.com", claims.Email)
}

func TestParseTokenTamperedSignature(t *testing.T) {
	token, err := GenerateToken("u1", "a@b.com", testSecret, time.Hour)
	require.NoError(t, err)

	parts := strings.Split(token, ".")
	require.Len(t, parts, 3)
	sig := []byte(parts[2])
	if sig[0] == 'A' {
		sig[0] = 'B'
	} else {
		sig[0] = 'A'
	}
	tampered := strings.Join([]string{parts[0], parts[1], string(sig)}, ".")

	_, err = ParseToken(tampered, testSecret)
	require.Error(t, err)
}

func TestParseTokenWrongSecret(t *testing.T) {
	token, err := GenerateToken("u1", "a@b.com", testSecret, time.Hour)
	require.NoError(t, err)

	_, err = ParseToken(token, []byte("other-secret"))
	require.Error(t, err)
}

func TestParseTokenExpired(t *testing.T) {
	token, err := GenerateToken("u1", "a@b.com", testSecret, -time.Minute)
	require.NoError(t, err)

	_, err = ParseToken(token, testSecret)
	require.Error(t, err)
}

func TestParseTokenMalformed(t *testing.T) {
	_, err := ParseToken("not-a-token", testSecret)
	require.Error(t, err)
}

package services

import (
	"crypto/rand"
	"crypto/rsa"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestAuthService(t *testing.T) (*AuthService, *rsa.PrivateKey) {
	t.Helper()

	key, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(t, err)

	return &AuthService{publicKey: &key.PublicKey, leeway: 10 * time.Second}, key
}

func signSessionToken(t *testing.T, key *rsa.PrivateKey, subject string, expiresIn time.Duration) string {
	t.Helper()

	claims := jwt.RegisteredClaims{
		Subject:   subject,
		IssuedAt:  jwt.NewNumericDate(time.Now()),
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(expiresIn)),
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodRS256, claims).SignedString(key)
	require.NoError(t, err)
	return token
}

func TestVerifyToken(t *testing.T) {
	svc, key := newTestAuthService(t)

	t.Run("valid token resolves subject", func(t *testing.T) {
		token := signSessionToken(t, key, "user_2abc", time.Hour)

		userID, err := svc.VerifyToken(token)
		require.NoError(t, err)
		assert.Equal(t, "user_2abc", userID)
	})

	t.Run("expired token rejected", func(t *testing.T) {
		token := signSessionToken(t, key, "user_2abc", -time.Hour)

		_, err := svc.VerifyToken(token)
		assert.Error(t, err)
	})

	t.Run("token signed by another key rejected", func(t *testing.T) {
		otherKey, err := rsa.GenerateKey(rand.Reader, 2048)
		require.NoError(t, err)

		token := signSessionToken(t, otherKey, "user_2abc", time.Hour)

		_, err = svc.VerifyToken(token)
		assert.Error(t, err)
	})

	t.Run("hmac token rejected", func(t *testing.T) {
		claims := jwt.RegisteredClaims{
			Subject:   "user_2abc",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		}
		token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("secret"))
		require.NoError(t, err)

		_, err = svc.VerifyToken(token)
		assert.Error(t, err)
	})

	t.Run("missing subject rejected", func(t *testing.T) {
		token := signSessionToken(t, key, "", time.Hour)

		_, err := svc.VerifyToken(token)
		assert.Error(t, err)
	})

	t.Run("garbage rejected", func(t *testing.T) {
		_, err := svc.VerifyToken("not-a-jwt")
		assert.Error(t, err)
	})
}

func TestExtractTokenFromHeader(t *testing.T) {
	svc := &AuthService{}

	token, err := svc.ExtractTokenFromHeader("Bearer abc.def.ghi")
	require.NoError(t, err)
	assert.Equal(t, "abc.def.ghi", token)

	_, err = svc.ExtractTokenFromHeader("")
	assert.Error(t, err)

	_, err = svc.ExtractTokenFromHeader("Basic abc")
	assert.Error(t, err)
}

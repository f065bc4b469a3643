package service

import (
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "b8a3c2267dc85f855dea9b46b452bf20"

func TestNewTokenGenerator(t *testing.T) {
	tg := NewTokenGenerator("test-secret-key", 24*time.Hour)

	assert.NotNil(t, tg)
	assert.Equal(t, "test-secret-key", tg.secret)
	assert.Equal(t, 24*time.Hour, tg.AccessTokenExpiry())
}

func TestTokenGenerator_GenerateAccessToken(t *testing.T) {
	tg := NewTokenGenerator(testSecret, time.Hour)

	t.Run("round trip", func(t *testing.T) {
		token, err := tg.GenerateAccessToken(123)
		require.NoError(t, err)
		assert.Len(t, strings.Split(token, "."), 3)

		userID, err := tg.ValidateAccessToken(token)
		require.NoError(t, err)
		assert.Equal(t, 123, userID)
	})

	t.Run("token signed with another secret", func(t *testing.T) {
		other := NewTokenGenerator("another-secret", time.Hour)
		token, err := other.GenerateAccessToken(1)
		require.NoError(t, err)

		_, err = tg.ValidateAccessToken(token)
		assert.Error(t, err)
	})
}

func TestTokenGenerator_ValidateAccessToken(t *testing.T) {
	tg := NewTokenGenerator(testSecret, time.Hour)

	sign := func(t *testing.T, claims jwt.MapClaims) string {
		t.Helper()
		token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
		tokenString, err := token.SignedString([]byte(testSecret))
		require.NoError(t, err)
		return tokenString
	}

	tests := []struct {
		name          string
		token         func(t *testing.T) string
		errorContains string
	}{
		{
			name:  "empty string token",
			token: func(t *testing.T) string { return "" },
		},
		{
			name:  "invalid token format",
			token: func(t *testing.T) string { return "invalid-token" },
		},
		{
			name: "expired token",
			token: func(t *testing.T) string {
				return sign(t, jwt.MapClaims{
					"user_id": 1,
					"exp":     time.Now().Add(-time.Hour).Unix(),
					"iat":     time.Now().Add(-2 * time.Hour).Unix(),
					"type":    "access",
				})
			},
		},
		{
			name: "wrong token type",
			token: func(t *testing.T) string {
				return sign(t, jwt.MapClaims{
					"user_id": 1,
					"exp":     time.Now().Add(time.Hour).Unix(),
					"type":    "refresh",
				})
			},
			errorContains: "not an access token",
		},
		{
			name: "token without user_id claim",
			token: func(t *testing.T) string {
				return sign(t, jwt.MapClaims{
					"exp":  time.Now().Add(time.Hour).Unix(),
					"type": "access",
				})
			},
			errorContains: "user_id not found",
		},
		{
			name: "non-HMAC signing method",
			token: func(t *testing.T) string {
				token := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.MapClaims{
					"user_id": 1,
					"exp":     time.Now().Add(time.Hour).Unix(),
					"type":    "access",
				})
				tokenString, err := token.SignedString(jwt.UnsafeAllowNoneSignatureType)
				require.NoError(t, err)
				return tokenString
			},
			errorContains: "unexpected signing method",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tg.ValidateAccessToken(tt.token(t))
			require.Error(t, err)
			if tt.errorContains != "" {
				assert.Contains(t, err.Error(), tt.errorContains)
			}
		})
	}
}

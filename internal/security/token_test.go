package security

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestTokenRoundTrip(t *testing.T) {
	tm := NewTokenManager("test-secret", 15*time.Minute, 24*time.Hour)

	t.Run("AccessToken", func(t *testing.T) {
		token, err := tm.GenerateAccessToken(42, "admin@example.com", "admin")
		assert.NoError(t, err)

		claims, err := tm.ValidateToken(token)
		assert.NoError(t, err)
		assert.Equal(t, int64(42), claims.UserID)
		assert.Equal(t, "admin@example.com", claims.Email)
		assert.Equal(t, "admin", claims.Role)
		assert.Equal(t, TokenTypeAccess, claims.Type)
	})

	t.Run("RefreshToken", func(t *testing.T) {
		token, err := tm.GenerateRefreshToken(42, "admin@example.com")
		assert.NoError(t, err)

		claims, err := tm.ValidateToken(token)
		assert.NoError(t, err)
		assert.Equal(t, TokenTypeRefresh, claims.Type)
		assert.Empty(t, claims.Role)
	})

	t.Run("WrongSecretRejected", func(t *testing.T) {
		other := NewTokenManager("other-secret", 15*time.Minute, 24*time.Hour)
		token, err := tm.GenerateAccessToken(42, "admin@example.com", "admin")
		assert.NoError(t, err)

		_, err = other.ValidateToken(token)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("ExpiredTokenRejected", func(t *testing.T) {
		// TTL floor kicks in for non-positive values, so use the smallest
		// positive duration to get an already-expired token.
		short := NewTokenManager("test-secret", time.Nanosecond, 24*time.Hour)
		token, err := short.GenerateAccessToken(42, "admin@example.com", "admin")
		assert.NoError(t, err)

		time.Sleep(10 * time.Millisecond)
		_, err = short.ValidateToken(token)
		assert.ErrorIs(t, err, ErrExpiredToken)
	})

	t.Run("GarbageRejected", func(t *testing.T) {
		_, err := tm.ValidateToken("not-a-token")
		assert.ErrorIs(t, err, ErrInvalidToken)
	})
}

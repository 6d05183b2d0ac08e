package security

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestTokenManager_AccessTokenRoundTrip(t *testing.T) {
	tm := NewTokenManager("test-secret", time.Hour, 24*time.Hour)

	token, err := tm.GenerateAccessToken("user-1", "user@test.com", "ADMIN", "sess-1")
	assert.NoError(t, err)

	claims, err := tm.ValidateToken(token)
	assert.NoError(t, err)
	assert.Equal(t, "user-1", claims.UserID)
	assert.Equal(t, "user@test.com", claims.Email)
	assert.Equal(t, "ADMIN", claims.Role)
	assert.Equal(t, "sess-1", claims.SessionID)
	assert.Equal(t, TokenTypeAccess, claims.Type)
}

func TestTokenManager_RefreshTokenCarriesSession(t *testing.T) {
	tm := NewTokenManager("test-secret", time.Hour, 24*time.Hour)

	token, err := tm.GenerateRefreshToken("user-1", "user@test.com", "sess-1")
	assert.NoError(t, err)

	claims, err := tm.ValidateToken(token)
	assert.NoError(t, err)
	assert.Equal(t, TokenTypeRefresh, claims.Type)
	assert.Equal(t, "sess-1", claims.SessionID)
	assert.Empty(t, claims.Role, "refresh tokens carry no role")
}

func TestTokenManager_Expired(t *testing.T) {
	tm := NewTokenManager("test-secret", -time.Minute, 24*time.Hour)

	token, err := tm.GenerateAccessToken("user-1", "user@test.com", "OWNER", "sess-1")
	assert.NoError(t, err)

	_, err = tm.ValidateToken(token)
	assert.ErrorIs(t, err, ErrExpiredToken)
}

func TestTokenManager_WrongSecret(t *testing.T) {
	tm := NewTokenManager("test-secret", time.Hour, 24*time.Hour)
	other := NewTokenManager("other-secret", time.Hour, 24*time.Hour)

	token, err := tm.GenerateAccessToken("user-1", "user@test.com", "OWNER", "sess-1")
	assert.NoError(t, err)

	_, err = other.ValidateToken(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestTokenManager_Garbage(t *testing.T) {
	tm := NewTokenManager("test-secret", time.Hour, 24*time.Hour)
	_, err := tm.ValidateToken("not.a.token")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

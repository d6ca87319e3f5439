package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arohealth/healthbot/internal/domain"
)

func testUser() *domain.User {
	return &domain.User{ID: 42, Email: "a@b.c", FullName: "Test User"}
}

func TestTokenRoundTrip(t *testing.T) {
	s := NewTokenService("secret", time.Hour)

	token, err := s.Generate(testUser())
	require.NoError(t, err)

	claims, err := s.Parse(token)
	require.NoError(t, err)
	assert.Equal(t, int64(42), claims.UserID)
	assert.Equal(t, "a@b.c", claims.Email)
	assert.Equal(t, "Test User", claims.FullName)
}

func TestTokenWrongSecretRejected(t *testing.T) {
	token, err := NewTokenService("secret-a", time.Hour).Generate(testUser())
	require.NoError(t, err)

	_, err = NewTokenService("secret-b", time.Hour).Parse(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestTokenExpiredRejected(t *testing.T) {
	s := NewTokenService("secret", -time.Minute)
	token, err := s.Generate(testUser())
	require.NoError(t, err)

	_, err = s.Parse(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestTokenGarbageRejected(t *testing.T) {
	s := NewTokenService("secret", time.Hour)
	_, err := s.Parse("not.a.token")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

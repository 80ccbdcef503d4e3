package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenRoundTrip(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	svc := NewAuthService()

	token, expiresAt, err := svc.GenerateToken("user-1", "blogger")
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.WithinDuration(t, time.Now().Add(tokenLifetime), expiresAt, time.Minute)

	claims, err := svc.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims.UserID)
	assert.Equal(t, "blogger", claims.Role)
}

func TestValidateTokenRejectsGarbage(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	svc := NewAuthService()

	_, err := svc.ValidateToken("not.a.token")
	assert.Error(t, err)
}

func TestValidateTokenRejectsWrongKey(t *testing.T) {
	t.Setenv("JWT_SECRET", "first-secret")
	svc := NewAuthService()
	token, _, err := svc.GenerateToken("user-1", "user")
	require.NoError(t, err)

	t.Setenv("JWT_SECRET", "second-secret")
	_, err = svc.ValidateToken(token)
	assert.Error(t, err)
}

func TestGenerateTokenRequiresSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "")
	svc := NewAuthService()

	_, _, err := svc.GenerateToken("user-1", "user")
	assert.Error(t, err)
}

package security

import (
	"testing"
	"time"

	"libris-backend/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "token-test-secret-key-0123456789abcdef"

func TestTokenManager_RoundTrip(t *testing.T) {
	tm := NewTokenManager(testSecret)

	token, err := tm.Generate(42, domain.RoleStudent, time.Hour)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := tm.Validate(token)
	require.NoError(t, err)
	assert.Equal(t, int32(42), claims.UserID)
	assert.Equal(t, string(domain.RoleStudent), claims.Role)
	assert.Equal(t, "campus-auth", claims.Issuer)
}

func TestTokenManager_RoleClaim(t *testing.T) {
	tm := NewTokenManager(testSecret)

	for _, role := range []domain.Role{domain.RoleAdmin, domain.RoleLibrarian, domain.RoleStudent} {
		token, err := tm.Generate(1, role, time.Hour)
		require.NoError(t, err)

		claims, err := tm.Validate(token)
		require.NoError(t, err)
		assert.Equal(t, string(role), claims.Role)
	}
}

func TestTokenManager_Expired(t *testing.T) {
	tm := NewTokenManager(testSecret)

	token, err := tm.Generate(42, domain.RoleStudent, -time.Minute)
	require.NoError(t, err)

	_, err = tm.Validate(token)
	assert.ErrorIs(t, err, ErrExpiredToken)
}

func TestTokenManager_WrongSecret(t *testing.T) {
	tm := NewTokenManager(testSecret)
	other := NewTokenManager("another-secret-key-0123456789abcdef")

	token, err := other.Generate(42, domain.RoleStudent, time.Hour)
	require.NoError(t, err)

	_, err = tm.Validate(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestTokenManager_Garbage(t *testing.T) {
	tm := NewTokenManager(testSecret)

	for _, input := range []string{"", "not-a-jwt", "a.b.c"} {
		_, err := tm.Validate(input)
		assert.ErrorIs(t, err, ErrInvalidToken, "input %q", input)
	}
}

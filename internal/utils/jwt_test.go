package utils

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func TestJWTRoundTrip(t *testing.T) {
	svc := NewJWTService("test-secret")
	userID := uuid.NewString()

	token, err := svc.GenerateToken(userID, "user")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	got, err := svc.ExtractUserID(token)
	require.NoError(t, err)
	require.Equal(t, userID, got)
}

func TestJWTRoleClaim(t *testing.T) {
	svc := NewJWTService("test-secret")

	token, err := svc.GenerateToken(uuid.NewString(), "admin")
	require.NoError(t, err)

	parsed, err := svc.ValidateToken(token)
	require.NoError(t, err)

	claims, ok := parsed.Claims.(jwt.MapClaims)
	require.True(t, ok)
	require.Equal(t, "admin", claims["role"])
}

func TestJWTExpiredRejected(t *testing.T) {
	svc := NewJWTService("test-secret")

	// Токен с истёкшим сроком, подписанный тем же секретом
	claims := jwt.MapClaims{
		"user_id": uuid.NewString(),
		"role":    "user",
		"exp":     time.Now().Add(-time.Hour).Unix(),
	}
	expired, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
	require.NoError(t, err)

	_, err = svc.ExtractUserID(expired)
	require.Error(t, err)
}

func TestJWTWrongSecretRejected(t *testing.T) {
	svc := NewJWTService("test-secret")
	other := NewJWTService("other-secret")

	token, err := other.GenerateToken(uuid.NewString(), "user")
	require.NoError(t, err)

	_, err = svc.ExtractUserID(token)
	require.Error(t, err)
}

func TestJWTMissingUserIDRejected(t *testing.T) {
	svc := NewJWTService("test-secret")

	claims := jwt.MapClaims{
		"exp": time.Now().Add(time.Hour).Unix(),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
	require.NoError(t, err)

	_, err = svc.ExtractUserID(token)
	require.Error(t, err)
}

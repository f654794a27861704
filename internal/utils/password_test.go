package utils

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPasswordHashAndCheck(t *testing.T) {
	hash, err := HashPassword("secret123")
	require.NoError(t, err)
	require.NotEmpty(t, hash)
	require.NotEqual(t, "secret123", hash)

	require.True(t, CheckPassword("secret123", hash))
	require.False(t, CheckPassword("wrong", hash))
	require.False(t, CheckPassword("secret123", "not-a-hash"))
}

func TestPasswordHashesDiffer(t *testing.T) {
	// bcrypt солит каждый хеш
	h1, err := HashPassword("secret123")
	require.NoError(t, err)
	h2, err := HashPassword("secret123")
	require.NoError(t, err)
	require.NotEqual(t, h1, h2)
}

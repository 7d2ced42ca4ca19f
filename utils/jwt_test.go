package utils

import (
	"testing"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateJWT(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	tok, err := GenerateJWT(42, "sam@example.com")
	require.NoError(t, err)

	parsed, err := jwt.Parse(tok, func(token *jwt.Token) (interface{}, error) {
		return []byte("test-secret"), nil
	})
	require.NoError(t, err)
	require.True(t, parsed.Valid)

	claims := parsed.Claims.(jwt.MapClaims)
	assert.Equal(t, float64(42), claims["userId"])
	assert.Equal(t, "sam@example.com", claims["email"])
	assert.NotZero(t, claims["exp"])
}

package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJWTRoundTrip(t *testing.T) {
	token, err := GenerateJWT(42, "alice", true, "secret")
	require.NoError(t, err)

	claims, err := ParseJWT(token, "secret")
	require.NoError(t, err)
	assert.Equal(t, uint(42), claims.UserID)
	assert.Equal(t, "alice", claims.Username)
	assert.True(t, claims.IsAdmin)
}

func TestJWTWrongSecret(t *testing.T) {
	token, err := GenerateJWT(42, "alice", false, "secret")
	require.NoError(t, err)

	_, err = ParseJWT(token, "other-secret")
	assert.Error(t, err)
}

func TestJWTGarbage(t *testing.T) {
	_, err := ParseJWT("not.a.token", "secret")
	assert.Error(t, err)
}

func TestProviderCacheKey(t *testing.T) {
	a := ProviderCacheKey("search", "includeIngredients=ham")
	b := ProviderCacheKey("search", "includeIngredients=ham")
	c := ProviderCacheKey("search", "includeIngredients=cheese")
	d := ProviderCacheKey("info", "includeIngredients=ham")

	assert.Equal(t, a, b)
	assert.NotEqual(t, a, c)
	assert.NotEqual(t, a, d)
	assert.Contains(t, a, "spoonacular:search:")
}

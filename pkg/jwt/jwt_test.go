package jwt_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	pkgjwt "github.com/jhoicas/foodhub-web/pkg/jwt"
)

const testSecret = "test-secret-key-for-unit-tests"

func TestJWT_InspectLeeClaimsSinSecret(t *testing.T) {
	tok, err := pkgjwt.Generate(testSecret, "u-1", "ADMIN", time.Hour)
	require.NoError(t, err)

	claims, err := pkgjwt.Inspect(tok)
	require.NoError(t, err)
	assert.Equal(t, "u-1", claims.UserID)
	assert.Equal(t, "ADMIN", claims.Role)
}

func TestJWT_ExpiresAt(t *testing.T) {
	tok, err := pkgjwt.Generate(testSecret, "u-1", "USER", 2*time.Hour)
	require.NoError(t, err)

	exp, ok := pkgjwt.ExpiresAt(tok)
	require.True(t, ok)
	assert.WithinDuration(t, time.Now().Add(2*time.Hour), exp, 5*time.Second)
}

func TestJWT_TokenExpiradoSeInspeccionaIgual(t *testing.T) {
	// La expiración la decide el backend; aquí solo se lee.
	tok, err := pkgjwt.Generate(testSecret, "u-1", "USER", -time.Minute)
	require.NoError(t, err)

	_, err = pkgjwt.Inspect(tok)
	assert.NoError(t, err)
}

func TestJWT_TokenOpacoNoTieneExp(t *testing.T) {
	_, ok := pkgjwt.ExpiresAt("opaque-session-token")
	assert.False(t, ok)

	_, err := pkgjwt.Inspect("opaque-session-token")
	assert.Error(t, err)
}

func TestJWT_GenerateSinSecret(t *testing.T) {
	_, err := pkgjwt.Generate("", "u-1", "USER", time.Hour)
	assert.Error(t, err)
}

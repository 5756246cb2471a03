package jwt_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	pkgjwt "github.com/jhoicas/InnovationMap-api/pkg/jwt"
)

var testCfg = pkgjwt.Config{
	Secret:     "test-secret-key-for-unit-tests",
	Issuer:     "innovation-map-test",
	Audience:   "innovation-map-test",
	Expiration: time.Hour,
}

func TestJWT_GenerateAndParse(t *testing.T) {
	tok, exp, err := pkgjwt.Generate(testCfg, "user-1", "ana@example.com", "admin")
	require.NoError(t, err)
	require.NotEmpty(t, tok)
	assert.WithinDuration(t, time.Now().Add(time.Hour), exp, 5*time.Second)

	claims, err := pkgjwt.Parse(testCfg, tok)
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims.UserID)
	assert.Equal(t, "user-1", claims.Subject)
	assert.Equal(t, "ana@example.com", claims.Email)
	assert.Equal(t, "admin", claims.Role)
	assert.NotEmpty(t, claims.ID, "cada token lleva un jti")
}

func TestJWT_TokenExpirado_RetornaError(t *testing.T) {
	cfg := testCfg
	cfg.Expiration = -time.Minute
	tok, _, err := pkgjwt.Generate(cfg, "user-1", "ana@example.com", "user")
	require.NoError(t, err)

	_, err = pkgjwt.Parse(testCfg, tok)
	assert.Error(t, err, "token expirado debe retornar error")
}

func TestJWT_SecretIncorrecto_RetornaError(t *testing.T) {
	tok, _, err := pkgjwt.Generate(testCfg, "user-1", "ana@example.com", "user")
	require.NoError(t, err)

	other := testCfg
	other.Secret = "otro-secret-completamente-distinto"
	_, err = pkgjwt.Parse(other, tok)
	assert.Error(t, err)
}

func TestJWT_EmisorOAudienciaDistintos_RetornaError(t *testing.T) {
	tok, _, err := pkgjwt.Generate(testCfg, "user-1", "ana@example.com", "user")
	require.NoError(t, err)

	otherIss := testCfg
	otherIss.Issuer = "otro-emisor"
	_, err = pkgjwt.Parse(otherIss, tok)
	assert.Error(t, err)

	otherAud := testCfg
	otherAud.Audience = "otra-audiencia"
	_, err = pkgjwt.Parse(otherAud, tok)
	assert.Error(t, err)
}

func TestJWT_SecretVacio(t *testing.T) {
	cfg := testCfg
	cfg.Secret = ""
	_, _, err := pkgjwt.Generate(cfg, "user-1", "ana@example.com", "user")
	assert.Error(t, err)
	_, err = pkgjwt.Parse(cfg, "x.y.z")
	assert.Error(t, err)
}

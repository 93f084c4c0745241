package jwt_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/inventario-admin/pkg/config"
	pkgjwt "github.com/jhoicas/inventario-admin/pkg/jwt"
)

func testConfig() config.JWTConfig {
	return config.JWTConfig{
		AccessSecret:    "access-secret-para-tests",
		RefreshSecret:   "refresh-secret-para-tests",
		AccessExpHours:  24,
		RefreshExpHours: 24 * 7,
		Issuer:          "inventario-admin-test",
	}
}

func TestGeneratePair_YParseAccess(t *testing.T) {
	cfg := testConfig()
	pair, err := pkgjwt.GeneratePair(cfg, "user-1", "ana@example.com", "admin")
	require.NoError(t, err)
	require.NotEmpty(t, pair.AccessToken)
	require.NotEmpty(t, pair.RefreshToken)

	claims, err := pkgjwt.ParseAccess(cfg, pair.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims.UserID)
	assert.Equal(t, "ana@example.com", claims.Email)
	assert.Equal(t, "admin", claims.Role)
}

func TestParseRefresh_TokenDeRefresh(t *testing.T) {
	cfg := testConfig()
	pair, err := pkgjwt.GeneratePair(cfg, "user-1", "ana@example.com", "user")
	require.NoError(t, err)

	claims, err := pkgjwt.ParseRefresh(cfg, pair.RefreshToken)
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims.UserID)
}

// Los secrets son distintos: un access token no debe validar como refresh ni viceversa.
func TestParse_SecretsCruzados(t *testing.T) {
	cfg := testConfig()
	pair, err := pkgjwt.GeneratePair(cfg, "user-1", "ana@example.com", "user")
	require.NoError(t, err)

	_, err = pkgjwt.ParseRefresh(cfg, pair.AccessToken)
	assert.ErrorIs(t, err, pkgjwt.ErrTokenInvalid)

	_, err = pkgjwt.ParseAccess(cfg, pair.RefreshToken)
	assert.ErrorIs(t, err, pkgjwt.ErrTokenInvalid)
}

func TestParseAccess_TokenExpirado(t *testing.T) {
	cfg := testConfig()
	cfg.AccessExpHours = -1 // emitido ya vencido

	tok, err := pkgjwt.GenerateAccess(cfg, "user-1", "ana@example.com", "user")
	require.NoError(t, err)

	_, err = pkgjwt.ParseAccess(testConfig(), tok)
	assert.ErrorIs(t, err, pkgjwt.ErrTokenExpired)
}

func TestParseAccess_Basura(t *testing.T) {
	_, err := pkgjwt.ParseAccess(testConfig(), "no-es-un-jwt")
	assert.ErrorIs(t, err, pkgjwt.ErrTokenInvalid)
}

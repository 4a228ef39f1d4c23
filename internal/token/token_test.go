package token

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const secret = "test-secret"

func TestGenerateParseRoundTrip(t *testing.T) {
	signed, err := Generate(secret, Claims{
		Subject: "dono@barbearia.com",
		Role:    RoleShop,
		ShopID:  42,
		Slug:    "barbearia-do-ze",
	}, DefaultTTL)
	require.NoError(t, err)

	cl, err := Parse(secret, signed)
	require.NoError(t, err)

	assert.Equal(t, "dono@barbearia.com", cl.Subject)
	assert.Equal(t, RoleShop, cl.Role)
	assert.Equal(t, uint(42), cl.ShopID)
	assert.Equal(t, "barbearia-do-ze", cl.Slug)
}

func TestAdminTokenCarriesNoShop(t *testing.T) {
	signed, err := Generate(secret, Claims{
		Subject: "admin@plataforma.com",
		Role:    RoleAdmin,
	}, RememberTTL)
	require.NoError(t, err)

	cl, err := Parse(secret, signed)
	require.NoError(t, err)

	assert.Equal(t, RoleAdmin, cl.Role)
	assert.Zero(t, cl.ShopID)
	assert.Empty(t, cl.Slug)
}

func TestParseRejectsWrongSecret(t *testing.T) {
	signed, err := Generate(secret, Claims{Subject: "a@b.com", Role: RoleShop}, DefaultTTL)
	require.NoError(t, err)

	_, err = Parse("outro-segredo", signed)
	assert.Error(t, err)
}

func TestParseRejectsExpired(t *testing.T) {
	signed, err := Generate(secret, Claims{Subject: "a@b.com", Role: RoleShop}, -time.Minute)
	require.NoError(t, err)

	_, err = Parse(secret, signed)
	assert.Error(t, err)
}

func TestParseRejectsMissingRole(t *testing.T) {
	raw := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": "a@b.com",
		"exp": time.Now().Add(time.Hour).Unix(),
	})
	signed, err := raw.SignedString([]byte(secret))
	require.NoError(t, err)

	_, err = Parse(secret, signed)
	assert.Error(t, err)
}

func TestParseRejectsUnknownRole(t *testing.T) {
	raw := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":  "a@b.com",
		"role": "root",
		"exp":  time.Now().Add(time.Hour).Unix(),
	})
	signed, err := raw.SignedString([]byte(secret))
	require.NoError(t, err)

	_, err = Parse(secret, signed)
	assert.Error(t, err)
}

func TestParseRejectsGarbage(t *testing.T) {
	_, err := Parse(secret, "nem.um.jwt")
	assert.Error(t, err)
}

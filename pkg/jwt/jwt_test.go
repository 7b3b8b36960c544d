package jwt

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	testSecret = "test-secret-key-for-unit-tests"
	testEmail  = "maria@acme.com"
	testIssuer = "smart-asset-test"
)

func TestGenerateAndParse(t *testing.T) {
	tok, err := Generate(testSecret, testEmail, testIssuer)
	require.NoError(t, err)
	require.NotEmpty(t, tok)

	email, err := Parse(testSecret, tok)
	require.NoError(t, err)
	assert.Equal(t, testEmail, email, "el email del token debe sobrevivir el round-trip")
}

func TestGenerate_EntradaVacia(t *testing.T) {
	_, err := Generate("", testEmail, testIssuer)
	assert.Error(t, err, "secret vacío debe fallar")

	_, err = Generate(testSecret, "", testIssuer)
	assert.Error(t, err, "email vacío debe fallar")
}

// La vigencia no es configurable: todo token expira exactamente a la hora.
func TestGenerate_VigenciaFijaDeUnaHora(t *testing.T) {
	tok, err := Generate(testSecret, testEmail, testIssuer)
	require.NoError(t, err)

	var claims Claims
	_, err = jwt.ParseWithClaims(tok, &claims, func(*jwt.Token) (interface{}, error) {
		return []byte(testSecret), nil
	})
	require.NoError(t, err)
	require.NotNil(t, claims.ExpiresAt)
	require.NotNil(t, claims.IssuedAt)
	assert.Equal(t, TokenTTL, claims.ExpiresAt.Sub(claims.IssuedAt.Time))
}

func TestParse_TokenExpirado(t *testing.T) {
	// Vigencia -1 minuto: el token ya nació expirado.
	tok, err := generateWithTTL(testSecret, testEmail, testIssuer, -time.Minute)
	require.NoError(t, err)

	_, err = Parse(testSecret, tok)
	assert.Error(t, err, "token expirado debe retornar error")
}

func TestParse_SecretIncorrecto(t *testing.T) {
	tok, err := Generate(testSecret, testEmail, testIssuer)
	require.NoError(t, err)

	_, err = Parse("otro-secret-completamente-distinto", tok)
	assert.Error(t, err, "secret incorrecto debe invalidar el token")
}

func TestParse_TokenMalformado(t *testing.T) {
	_, err := Parse(testSecret, "token.invalido.aqui")
	assert.Error(t, err)
}

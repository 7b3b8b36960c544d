package main

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// El middleware de Swagger hace panic en el arranque si el archivo no
// existe, así que el contrato va versionado en el repo. Este test fija que
// docs/swagger.json esté presente y sea un documento Swagger 2.0 válido
// con las rutas principales de la API.
func TestSwaggerSpec_ExisteYEsValido(t *testing.T) {
	// El test corre en cmd/api; el binario en la raíz del repo.
	raw, err := os.ReadFile(filepath.Join("..", "..", "docs", "swagger.json"))
	require.NoError(t, err, "docs/swagger.json debe estar versionado: sin él el arranque del servidor hace panic")

	var doc struct {
		Swagger string                     `json:"swagger"`
		Paths   map[string]json.RawMessage `json:"paths"`
	}
	require.NoError(t, json.Unmarshal(raw, &doc))
	assert.Equal(t, "2.0", doc.Swagger)

	for _, ruta := range []string{
		"/jwt",
		"/users/hr",
		"/users/all-employees/{email}",
		"/assets",
		"/request",
		"/request/approved/{id}",
		"/notice",
		"/create-payment-intent",
	} {
		assert.Contains(t, doc.Paths, ruta)
	}
}

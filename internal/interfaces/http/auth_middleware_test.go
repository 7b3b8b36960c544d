package http_test

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/smart-asset/smart-asset-api/internal/domain/entity"
	apphttp "github.com/smart-asset/smart-asset-api/internal/interfaces/http"
	pkgjwt "github.com/smart-asset/smart-asset-api/pkg/jwt"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

const (
	testJWTSecret = "test-secret-key-for-unit-tests"
	testIssuer    = "smart-asset-test"
	testHREmail   = "rrhh@acme.com"
	testEmpEmail  = "empleado@acme.com"
)

// fakeRoleStore resuelve roles desde un mapa mutable: cambiar el mapa entre
// peticiones simula un cambio de rol en la base sin re-autenticación.
type fakeRoleStore struct {
	mu    sync.Mutex
	roles map[string]string
	err   error
}

func (s *fakeRoleStore) GetRole(email string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return "", s.err
	}
	return s.roles[email], nil
}

func (s *fakeRoleStore) set(email, role string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.roles[email] = role
}

// buildTestApp construye una aplicación Fiber mínima con la cadena completa
// del gate: AuthMiddleware + RequireRole + handler dummy que devuelve 200.
func buildTestApp(requiredRole string, store *fakeRoleStore) *fiber.App {
	app := fiber.New()
	app.Get("/protected",
		apphttp.AuthMiddleware(testJWTSecret),
		apphttp.RequireRole(requiredRole, store),
		func(c *fiber.Ctx) error {
			return c.Status(fiber.StatusOK).JSON(fiber.Map{
				"ok":    true,
				"email": apphttp.GetEmail(c),
			})
		},
	)
	return app
}

// tokenFor genera un JWT firmado para el email indicado.
func tokenFor(t *testing.T, email string) string {
	t.Helper()
	tok, err := pkgjwt.Generate(testJWTSecret, email, testIssuer)
	require.NoError(t, err, "debe generarse un token JWT válido")
	return "Bearer " + tok
}

// doRequest lanza una petición GET /protected y devuelve la respuesta.
func doRequest(t *testing.T, app *fiber.App, authHeader string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests RequireRole
// ──────────────────────────────────────────────────────────────────────────────

// Caso 1: el usuario tiene el rol requerido → HTTP 200 y el email en locals.
func TestRequireRole_HRAccedeRutaHR(t *testing.T) {
	store := &fakeRoleStore{roles: map[string]string{testHREmail: entity.RoleHR}}
	app := buildTestApp(entity.RoleHR, store)

	resp := doRequest(t, app, tokenFor(t, testHREmail))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode,
		"HR debe poder acceder a ruta restringida a HR")

	var body map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, true, body["ok"])
	assert.Equal(t, testHREmail, body["email"], "el email autenticado debe llegar al handler")
}

// Caso 2: rol distinto al requerido → 401 con el cuerpo forbidden access
// (el contrato no distingue rol incorrecto de token ausente ante el cliente).
func TestRequireRole_EmpleadoBloqueadoEnRutaHR(t *testing.T) {
	store := &fakeRoleStore{roles: map[string]string{testEmpEmail: entity.RoleEmployee}}
	app := buildTestApp(entity.RoleHR, store)

	resp := doRequest(t, app, tokenFor(t, testEmpEmail))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode,
		"EMPLOYEE no debe poder acceder a ruta restringida a HR")

	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "forbidden access")
}

// Caso 3: email sin registro en el identity store (rol vacío) → 401.
func TestRequireRole_UsuarioInexistente_Retorna401(t *testing.T) {
	store := &fakeRoleStore{roles: map[string]string{}}
	app := buildTestApp(entity.RoleHR, store)

	resp := doRequest(t, app, tokenFor(t, "nadie@acme.com"))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode,
		"email sin registro debe tratarse como rol incorrecto")
}

// Caso 4: la comparación de rol es case-sensitive.
func TestRequireRole_ComparacionCaseSensitive(t *testing.T) {
	store := &fakeRoleStore{roles: map[string]string{testHREmail: "hr"}}
	app := buildTestApp(entity.RoleHR, store)

	resp := doRequest(t, app, tokenFor(t, testHREmail))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode,
		"un rol en minúsculas no debe coincidir con HR")
}

// Caso 5: el rol se consulta fresco por petición — un cambio de rol en el
// store aplica de inmediato con el MISMO token, sin re-autenticación.
func TestRequireRole_CambioDeRolSinReautenticacion(t *testing.T) {
	store := &fakeRoleStore{roles: map[string]string{testEmpEmail: entity.RoleEmployee}}
	app := buildTestApp(entity.RoleHR, store)
	token := tokenFor(t, testEmpEmail)

	resp := doRequest(t, app, token)
	resp.Body.Close()
	require.Equal(t, http.StatusUnauthorized, resp.StatusCode,
		"antes del ascenso el acceso debe estar bloqueado")

	// Ascenso a HR directamente en el store; el token no cambia.
	store.set(testEmpEmail, entity.RoleHR)

	resp = doRequest(t, app, token)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode,
		"tras el cambio de rol el mismo token debe dar acceso")
}

// Caso 6: fallo de infraestructura al consultar el rol → 503, no 401.
func TestRequireRole_FalloDeStore_Retorna503(t *testing.T) {
	store := &fakeRoleStore{roles: map[string]string{}, err: assert.AnError}
	app := buildTestApp(entity.RoleHR, store)

	resp := doRequest(t, app, tokenFor(t, testHREmail))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusServiceUnavailable, resp.StatusCode,
		"un error del store no debe confundirse con acceso denegado")

	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "ROLE_CHECK_FAILED")
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests AuthMiddleware
// ──────────────────────────────────────────────────────────────────────────────

// Sin header Authorization → 401 forbidden access.
func TestAuthMiddleware_SinHeader_Retorna401(t *testing.T) {
	store := &fakeRoleStore{roles: map[string]string{}}
	app := buildTestApp(entity.RoleHR, store)

	resp := doRequest(t, app, "")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "forbidden access")
}

// Header sin esquema Bearer → 401.
func TestAuthMiddleware_EsquemaIncorrecto_Retorna401(t *testing.T) {
	store := &fakeRoleStore{roles: map[string]string{}}
	app := buildTestApp(entity.RoleHR, store)

	resp := doRequest(t, app, "Basic dXNlcjpwYXNz")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

// Token malformado o con firma inválida → 401.
func TestAuthMiddleware_TokenInvalido_Retorna401(t *testing.T) {
	store := &fakeRoleStore{roles: map[string]string{}}
	app := buildTestApp(entity.RoleHR, store)

	resp := doRequest(t, app, "Bearer token.invalido.aqui")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

// Token firmado con otro secreto → 401.
func TestAuthMiddleware_SecretDistinto_Retorna401(t *testing.T) {
	store := &fakeRoleStore{roles: map[string]string{testHREmail: entity.RoleHR}}
	app := buildTestApp(entity.RoleHR, store)

	tok, err := pkgjwt.Generate("otro-secret", testHREmail, testIssuer)
	require.NoError(t, err)

	resp := doRequest(t, app, "Bearer "+tok)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

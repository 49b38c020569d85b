package http_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apphttp "github.com/escritoriopro/backoffice-api/internal/interfaces/http"
	"github.com/escritoriopro/backoffice-api/internal/domain/entity"
	pkgjwt "github.com/escritoriopro/backoffice-api/pkg/jwt"
)

const (
	testJWTSecret = "test-secret-key-for-unit-tests"
	testUserID    = int64(42)
	testIssuer    = "escritorio-pro-test"
	testExpMin    = 60
)

// buildTestApp monta uma aplicação Fiber mínima com AuthMiddleware,
// RequireRole opcional e um handler que devolve o user_id extraído.
func buildTestApp(allowedRoles ...string) *fiber.App {
	app := fiber.New()
	handlers := []fiber.Handler{apphttp.AuthMiddleware(testJWTSecret)}
	if len(allowedRoles) > 0 {
		handlers = append(handlers, apphttp.RequireRole(allowedRoles...))
	}
	handlers = append(handlers, func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusOK).JSON(fiber.Map{
			"user_id": apphttp.GetUserID(c),
			"role":    apphttp.GetRole(c),
		})
	})
	app.Get("/protected", handlers...)
	return app
}

func tokenForRole(t *testing.T, role string) string {
	t.Helper()
	tok, err := pkgjwt.Generate(testJWTSecret, testUserID, role, testIssuer, testExpMin)
	require.NoError(t, err)
	return "Bearer " + tok
}

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

func TestAuthMiddleware_TokenValido(t *testing.T) {
	app := buildTestApp()
	resp := doRequest(t, app, tokenForRole(t, entity.RoleFinanceiro))
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}

func TestAuthMiddleware_SemHeader(t *testing.T) {
	app := buildTestApp()
	resp := doRequest(t, app, "")
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestAuthMiddleware_FormatoInvalido(t *testing.T) {
	app := buildTestApp()
	resp := doRequest(t, app, "Token abc123")
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestAuthMiddleware_TokenAdulterado(t *testing.T) {
	app := buildTestApp()
	tok, err := pkgjwt.Generate("outro-segredo", testUserID, entity.RoleAdmin, testIssuer, testExpMin)
	require.NoError(t, err)
	resp := doRequest(t, app, "Bearer "+tok)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestRequireRole_PapelPermitido(t *testing.T) {
	app := buildTestApp(entity.RoleAdmin)
	resp := doRequest(t, app, tokenForRole(t, entity.RoleAdmin))
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}

func TestRequireRole_PapelNegado(t *testing.T) {
	app := buildTestApp(entity.RoleAdmin)
	resp := doRequest(t, app, tokenForRole(t, entity.RoleAtendimento))
	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)
}

func TestRequireRole_MultiplosPapeis(t *testing.T) {
	app := buildTestApp(entity.RoleAdmin, entity.RoleFinanceiro)
	resp := doRequest(t, app, tokenForRole(t, entity.RoleFinanceiro))
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}

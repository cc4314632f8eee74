package http_test

import (
	"net/http"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Juridico-api/internal/application/auth"
	"github.com/jhoicas/Juridico-api/internal/application/dto"
	apphttp "github.com/jhoicas/Juridico-api/internal/interfaces/http"
	"github.com/jhoicas/Juridico-api/internal/testutil/memstore"
	"github.com/jhoicas/Juridico-api/pkg/session"
)

// buildTestApp aplicación mínima con AuthMiddleware + RequireRole y un handler
// que devuelve 200 con el actor si pasa los middlewares.
func buildTestApp(t *testing.T, allowedRoles ...string) (*fiber.App, testEnv) {
	t.Helper()
	env := newEnv(t)
	uc := auth.NewAuthUseCase(env.db.Store(), session.DevCodec{AllowSentinel: true}, nil)
	app := fiber.New()
	app.Get("/protected",
		apphttp.AuthMiddleware(uc),
		apphttp.RequireRole(allowedRoles...),
		func(c *fiber.Ctx) error {
			return c.JSON(fiber.Map{"actor": apphttp.GetPrincipal(c).Actor()})
		},
	)
	return app, env
}

func call(t *testing.T, app *fiber.App, authz string) (int, dto.ErrorResponse) {
	t.Helper()
	req, err := http.NewRequest(fiber.MethodGet, "/protected", nil)
	require.NoError(t, err)
	if authz != "" {
		req.Header.Set(fiber.HeaderAuthorization, authz)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp.StatusCode, decode[dto.ErrorResponse](t, resp)
}

func TestAuthMiddleware_SinToken(t *testing.T) {
	app, _ := buildTestApp(t)
	status, body := call(t, app, "")
	assert.Equal(t, fiber.StatusUnauthorized, status)
	assert.Equal(t, "MISSING_TOKEN", body.Code)

	status, body = call(t, app, "Bearer   ")
	assert.Equal(t, fiber.StatusUnauthorized, status)
	assert.Equal(t, "MISSING_TOKEN", body.Code)
}

func TestAuthMiddleware_TokenInvalido(t *testing.T) {
	app, _ := buildTestApp(t)
	for _, h := range []string{"Basic abc", "dev-1@1", "Bearer dev-x", "Bearer dev-99@1"} {
		status, body := call(t, app, h)
		assert.Equal(t, fiber.StatusUnauthorized, status, h)
		assert.Equal(t, "INVALID_TOKEN", body.Code, h)
	}
}

func TestAuthMiddleware_EscritorioRevocado(t *testing.T) {
	app, env := buildTestApp(t, "ADMIN")
	a := env.seedOffice(t, "A")
	b := env.seedOffice(t, "B")
	u := env.seedUser(t, "ANA", "ADMIN", "x", a)

	tok, err := session.DevCodec{}.Issue(u.ID, a)
	require.NoError(t, err)
	status, _ := call(t, app, "Bearer "+tok)
	assert.Equal(t, fiber.StatusOK, status)

	tok, err = session.DevCodec{}.Issue(u.ID, b)
	require.NoError(t, err)
	status, body := call(t, app, "Bearer "+tok)
	assert.Equal(t, fiber.StatusForbidden, status)
	assert.Equal(t, "FORBIDDEN", body.Code)
}

func TestRequireRole(t *testing.T) {
	app, env := buildTestApp(t, "ADMIN")
	a := env.seedOffice(t, "A")
	admin := env.seedUser(t, "ADM", "admin", "x", a)
	clerk := env.seedUser(t, "CLERK", "ASSISTENTE", "x", a)
	norole := env.seedUser(t, "NOROLE", "", "x", a)

	tok := func(id int64) string {
		s, err := session.DevCodec{}.Issue(id, a)
		require.NoError(t, err)
		return "Bearer " + s
	}

	status, _ := call(t, app, tok(admin.ID))
	assert.Equal(t, fiber.StatusOK, status, "el rol se compara sin distinguir mayúsculas")

	status, body := call(t, app, tok(clerk.ID))
	assert.Equal(t, fiber.StatusForbidden, status)
	assert.Equal(t, "FORBIDDEN", body.Code)

	status, body = call(t, app, tok(norole.ID))
	assert.Equal(t, fiber.StatusForbidden, status)
	assert.Equal(t, "MISSING_ROLE", body.Code)

	status, _ = call(t, app, devToken)
	assert.Equal(t, fiber.StatusOK, status, "el superusuario de desarrollo pasa siempre")
}

func TestAuthMiddleware_CentinelaDeshabilitado(t *testing.T) {
	uc := auth.NewAuthUseCase(memstore.New().Store(), session.DevCodec{AllowSentinel: false}, nil)
	app := fiber.New()
	app.Get("/protected", apphttp.AuthMiddleware(uc), func(c *fiber.Ctx) error { return c.SendStatus(fiber.StatusOK) })

	status, body := call(t, app, devToken)
	assert.Equal(t, fiber.StatusUnauthorized, status)
	assert.Equal(t, "INVALID_TOKEN", body.Code)
}

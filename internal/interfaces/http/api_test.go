package http_test

import (
	"fmt"
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Juridico-api/internal/application/dto"
	apphttp "github.com/jhoicas/Juridico-api/internal/interfaces/http"
)

func TestLoginYMe(t *testing.T) {
	env := newEnv(t)
	a := env.seedOffice(t, "ESCRITÓRIO A")
	b := env.seedOffice(t, "ESCRITÓRIO B")
	env.seedUser(t, "ANA", "ADMIN", "secret", a)

	tok := env.login(t, "ana", "secret", a)
	resp := env.do(t, fiber.MethodGet, "/api/auth/me", tok, nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	me := decode[dto.MeResponse](t, resp)
	assert.Equal(t, "ANA", me.Username)
	require.NotNil(t, me.Escritorio)
	assert.Equal(t, a, me.Escritorio.ID)

	resp = env.do(t, fiber.MethodPost, "/api/auth/login", "", map[string]any{"username": "ana", "password": "errada", "escritorio_id": a})
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)

	resp = env.do(t, fiber.MethodPost, "/api/auth/login", "", map[string]any{"username": "ana", "password": "secret", "escritorio_id": b})
	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)

	resp = env.do(t, fiber.MethodPost, "/api/auth/login", "", map[string]any{"username": "ana", "password": "secret", "escritorio_id": 999})
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

func TestLogin_CamposObligatorios(t *testing.T) {
	env := newEnv(t)
	resp := env.do(t, fiber.MethodPost, "/api/auth/login", "", map[string]any{})
	require.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	body := decode[dto.ErrorResponse](t, resp)
	assert.Equal(t, "VALIDATION", body.Code)
	assert.Contains(t, body.Fields, "username")
	assert.Contains(t, body.Fields, "password")
	assert.Contains(t, body.Fields, "escritorio_id")
}

func TestMe_Dev(t *testing.T) {
	env := newEnv(t)
	resp := env.do(t, fiber.MethodGet, "/api/auth/me", devToken, nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	me := decode[dto.MeResponse](t, resp)
	assert.Equal(t, "dev", me.Username)
	assert.Equal(t, "DEV", me.Role)
	assert.Nil(t, me.Escritorio)
}

func TestRutasProtegidas(t *testing.T) {
	env := newEnv(t)
	for _, path := range []string{"/api/escritorios", "/api/causas-processos/sum", "/api/auditoria", "/api/auth/me"} {
		resp := env.do(t, fiber.MethodGet, path, "", nil)
		assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode, path)
	}
}

func TestOffice_CRUD(t *testing.T) {
	env := newEnv(t)
	resp := env.do(t, fiber.MethodPost, "/api/escritorios", devToken, map[string]any{"nome": "silva advogados", "email": "contato@silva.com"})
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)
	created := decode[dto.OfficeResponse](t, resp)
	assert.Equal(t, "SILVA ADVOGADOS", created.Nome)

	path := fmt.Sprintf("/api/escritorios/%d", created.ID)
	resp = env.do(t, fiber.MethodPut, path, devToken, map[string]any{"telefone": "11 5555"})
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	resp = env.do(t, fiber.MethodDelete, path, devToken, nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, dto.Deleted, decode[dto.StatusResponse](t, resp))

	resp = env.do(t, fiber.MethodGet, path, devToken, nil)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)

	recs := env.db.AuditRecords()
	require.Len(t, recs, 3)
	for _, r := range recs {
		assert.Equal(t, "dev", r.Quem)
	}
}

func TestOffice_Validacion(t *testing.T) {
	env := newEnv(t)
	resp := env.do(t, fiber.MethodPost, "/api/escritorios", devToken, map[string]any{"email": "no-es-email"})
	require.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	body := decode[dto.ErrorResponse](t, resp)
	assert.Equal(t, "VALIDATION", body.Code)
	assert.Contains(t, body.Fields, "nome")
	assert.Contains(t, body.Fields, "email")
	assert.Empty(t, env.db.AuditRecords())
}

func TestBodyInvalido(t *testing.T) {
	env := newEnv(t)
	req := httptest.NewRequest(fiber.MethodPost, "/api/escritorios", strings.NewReader("{nome:"))
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	req.Header.Set(fiber.HeaderAuthorization, devToken)
	resp, err := env.app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "INVALID_BODY", decode[dto.ErrorResponse](t, resp).Code)
}

func TestIDInvalido(t *testing.T) {
	env := newEnv(t)
	for _, path := range []string{"/api/clientes/abc", "/api/clientes/0", "/api/advogados/-1"} {
		resp := env.do(t, fiber.MethodGet, path, devToken, nil)
		assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode, path)
	}
}

func TestLawyer_Escritorios(t *testing.T) {
	env := newEnv(t)
	a := env.seedOffice(t, "A")
	b := env.seedOffice(t, "B")

	resp := env.do(t, fiber.MethodPost, "/api/advogados", devToken, map[string]any{"nome": "ana", "escritorios_ids": []int64{a, b}})
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)
	l := decode[dto.LawyerResponse](t, resp)
	assert.ElementsMatch(t, []int64{a, b}, l.EscritoriosIDs)

	resp = env.do(t, fiber.MethodPut, fmt.Sprintf("/api/advogados/%d", l.ID), devToken, map[string]any{"escritorios_ids": []int64{b}})
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	resp = env.do(t, fiber.MethodGet, fmt.Sprintf("/api/advogados/%d/escritorios", l.ID), devToken, nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	offices := decode[[]dto.OfficeRef](t, resp)
	require.Len(t, offices, 1)
	assert.Equal(t, b, offices[0].ID)
}

func TestCase_EscopoPorEscritorio(t *testing.T) {
	env := newEnv(t)
	a := env.seedOffice(t, "A")
	b := env.seedOffice(t, "B")
	env.seedUser(t, "ANA", "ADVOGADO", "secret", a)

	resp := env.do(t, fiber.MethodPost, "/api/causas-processos", devToken, map[string]any{"numero": "001", "escritorio_id": a, "valor": "1.000,50"})
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)
	resp = env.do(t, fiber.MethodPost, "/api/causas-processos", devToken, map[string]any{"numero": "002", "escritorio_id": b, "valor": 99.5})
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)
	other := decode[dto.CaseResponse](t, resp)

	resp = env.do(t, fiber.MethodGet, "/api/causas-processos/sum", devToken, nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, "1100.00", decode[dto.CaseSumResponse](t, resp).Total.String())

	tok := env.login(t, "ana", "secret", a)
	resp = env.do(t, fiber.MethodGet, "/api/causas-processos", tok, nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	list := decode[[]dto.CaseResponse](t, resp)
	require.Len(t, list, 1)
	assert.Equal(t, "001", list[0].Numero)

	resp = env.do(t, fiber.MethodGet, "/api/causas-processos/sum", tok, nil)
	assert.Equal(t, "1000.50", decode[dto.CaseSumResponse](t, resp).Total.String())

	resp = env.do(t, fiber.MethodGet, fmt.Sprintf("/api/causas-processos/%d", other.ID), tok, nil)
	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)

	resp = env.do(t, fiber.MethodGet, fmt.Sprintf("/api/causas-processos/%d/pdf", other.ID), tok, nil)
	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)

	resp = env.do(t, fiber.MethodPost, "/api/causas-processos", tok, map[string]any{"numero": "003"})
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)
	own := decode[dto.CaseResponse](t, resp)
	require.NotNil(t, own.EscritorioID)
	assert.Equal(t, a, *own.EscritorioID)
	assert.Equal(t, "ANA", env.db.AuditRecords()[len(env.db.AuditRecords())-1].Quem)
}

func TestCase_PDF(t *testing.T) {
	env := newEnv(t)
	resp := env.do(t, fiber.MethodPost, "/api/causas-processos", devToken, map[string]any{"numero": "0001234-55"})
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)
	c := decode[dto.CaseResponse](t, resp)

	resp = env.do(t, fiber.MethodGet, fmt.Sprintf("/api/causas-processos/%d/pdf", c.ID), devToken, nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/pdf", resp.Header.Get(fiber.HeaderContentType))
	assert.Contains(t, resp.Header.Get(fiber.HeaderContentDisposition), "inline")
	b, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(b), "%PDF"))
}

func TestCase_NumeroDuplicado(t *testing.T) {
	env := newEnv(t)
	body := map[string]any{"numero": "X-1"}
	require.Equal(t, fiber.StatusCreated, env.do(t, fiber.MethodPost, "/api/causas-processos", devToken, body).StatusCode)
	resp := env.do(t, fiber.MethodPost, "/api/causas-processos", devToken, body)
	assert.Equal(t, fiber.StatusConflict, resp.StatusCode)
	assert.Equal(t, "DUPLICATE", decode[dto.ErrorResponse](t, resp).Code)
}

func TestCase_NullDesvinculaCliente(t *testing.T) {
	env := newEnv(t)
	resp := env.do(t, fiber.MethodPost, "/api/clientes", devToken, map[string]any{"nome": "acme"})
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)
	cl := decode[dto.ClientResponse](t, resp)
	resp = env.do(t, fiber.MethodPost, "/api/causas-processos", devToken, map[string]any{"numero": "N-1", "cliente_id": cl.ID})
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)
	c := decode[dto.CaseResponse](t, resp)
	require.NotNil(t, c.ClienteID)

	path := fmt.Sprintf("/api/causas-processos/%d", c.ID)
	resp = env.do(t, fiber.MethodPut, path, devToken, map[string]any{"status": "ativo"})
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.NotNil(t, decode[dto.CaseResponse](t, resp).ClienteID, "clave omitida no toca el vínculo")

	resp = env.do(t, fiber.MethodPut, path, devToken, map[string]any{"cliente_id": nil})
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Nil(t, decode[dto.CaseResponse](t, resp).ClienteID)
}

func TestCatalogos(t *testing.T) {
	env := newEnv(t)
	for _, path := range []string{"/api/especialidades", "/api/perfis", "/api/permissoes"} {
		resp := env.do(t, fiber.MethodPost, path, devToken, map[string]any{"nome": "civil"})
		require.Equal(t, fiber.StatusCreated, resp.StatusCode, path)
		item := decode[dto.CatalogResponse](t, resp)

		resp = env.do(t, fiber.MethodGet, path, devToken, nil)
		require.Equal(t, fiber.StatusOK, resp.StatusCode, path)
		assert.Len(t, decode[[]dto.CatalogResponse](t, resp), 1, path)

		resp = env.do(t, fiber.MethodDelete, fmt.Sprintf("%s/%d", path, item.ID), devToken, nil)
		assert.Equal(t, fiber.StatusOK, resp.StatusCode, path)
	}
}

func TestParametros_Upsert(t *testing.T) {
	env := newEnv(t)
	resp := env.do(t, fiber.MethodPost, "/api/parametros", devToken, map[string]any{"chave": "tema", "valor": "escuro"})
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	first := decode[dto.ParameterResponse](t, resp)

	resp = env.do(t, fiber.MethodPost, "/api/parametros", devToken, map[string]any{"chave": "tema", "valor": "claro"})
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	second := decode[dto.ParameterResponse](t, resp)
	assert.Equal(t, first.ID, second.ID)

	resp = env.do(t, fiber.MethodGet, "/api/parametros", devToken, nil)
	assert.Len(t, decode[[]dto.ParameterResponse](t, resp), 1)
}

func TestAuditoria_Limite(t *testing.T) {
	env := newEnv(t)
	for i := 0; i < 3; i++ {
		env.do(t, fiber.MethodPost, "/api/clientes", devToken, map[string]any{"nome": fmt.Sprintf("cliente %d", i)})
	}
	resp := env.do(t, fiber.MethodGet, "/api/auditoria?limit=2", devToken, nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	recs := decode[[]dto.AuditResponse](t, resp)
	require.Len(t, recs, 2)
	assert.Greater(t, recs[0].ID, recs[1].ID)
	assert.Equal(t, "create", recs[0].Acao)
}

func TestSeeds(t *testing.T) {
	env := newEnv(t)
	resp := env.do(t, fiber.MethodPost, "/api/seeds", devToken, nil)
	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)
	assert.Equal(t, "FEATURE_DISABLED", decode[dto.ErrorResponse](t, resp).Code)

	env = newEnv(t, withSeeds)
	resp = env.do(t, fiber.MethodPost, "/api/seeds", devToken, nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	out := decode[dto.SeedResponse](t, resp)
	assert.Equal(t, "OK", out.Status)
	assert.Equal(t, 3, out.Created["escritorios"])

	// el admin sembrado puede volver a ejecutar; un perfil sin ADMIN no
	offices := decode[[]dto.OfficeResponse](t, env.do(t, fiber.MethodGet, "/api/escritorios", devToken, nil))
	require.NotEmpty(t, offices)
	tok := env.login(t, "admin", "admin", offices[0].ID)
	resp = env.do(t, fiber.MethodPost, "/api/seeds", tok, nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, 0, decode[dto.SeedResponse](t, resp).Created["escritorios"])

	env.seedUser(t, "CLERK", "ASSISTENTE", "x", offices[0].ID)
	tok = env.login(t, "clerk", "x", offices[0].ID)
	resp = env.do(t, fiber.MethodPost, "/api/seeds", tok, nil)
	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)
}

func TestRutaInexistente(t *testing.T) {
	env := newEnv(t)
	resp := env.do(t, fiber.MethodGet, "/nada", "", nil)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "NOT_FOUND", decode[dto.ErrorResponse](t, resp).Code)
}

func TestHealth(t *testing.T) {
	env := newEnv(t)
	resp := env.do(t, fiber.MethodGet, "/health", "", nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, "ok", decode[map[string]any](t, resp)["status"])
}

func TestRequestID(t *testing.T) {
	env := newEnv(t)
	resp := env.do(t, fiber.MethodGet, "/health", "", nil)
	assert.NotEmpty(t, resp.Header.Get(apphttp.HeaderRequestID))

	req := httptest.NewRequest(fiber.MethodGet, "/health", nil)
	req.Header.Set(apphttp.HeaderRequestID, "abc-123")
	resp, err := env.app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, "abc-123", resp.Header.Get(apphttp.HeaderRequestID))
}

func TestMetrics(t *testing.T) {
	env := newEnv(t)
	env.do(t, fiber.MethodGet, "/health", "", nil)
	env.do(t, fiber.MethodGet, "/api/escritorios", devToken, nil)

	resp := env.do(t, fiber.MethodGet, "/metrics", "", nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	b, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	text := string(b)
	assert.Contains(t, text, "juridico_http_requests_total")
	assert.Contains(t, text, `route="/health"`)
	assert.Contains(t, text, `route="/api/escritorios`)
}

func TestCORS_Localhost(t *testing.T) {
	env := newEnv(t)
	req := httptest.NewRequest(fiber.MethodOptions, "/api/escritorios", nil)
	req.Header.Set(fiber.HeaderOrigin, "http://localhost:5173")
	req.Header.Set(fiber.HeaderAccessControlRequestMethod, fiber.MethodGet)
	resp, err := env.app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:5173", resp.Header.Get(fiber.HeaderAccessControlAllowOrigin))

	req = httptest.NewRequest(fiber.MethodOptions, "/api/escritorios", nil)
	req.Header.Set(fiber.HeaderOrigin, "https://evil.example")
	req.Header.Set(fiber.HeaderAccessControlRequestMethod, fiber.MethodGet)
	resp, err = env.app.Test(req, -1)
	require.NoError(t, err)
	assert.Empty(t, resp.Header.Get(fiber.HeaderAccessControlAllowOrigin))
}

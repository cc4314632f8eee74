package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Juridico-api/internal/application/auth"
	"github.com/jhoicas/Juridico-api/internal/application/usecase"
	"github.com/jhoicas/Juridico-api/internal/domain/entity"
	apphttp "github.com/jhoicas/Juridico-api/internal/interfaces/http"
	"github.com/jhoicas/Juridico-api/internal/testutil/memstore"
	"github.com/jhoicas/Juridico-api/pkg/password"
	"github.com/jhoicas/Juridico-api/pkg/session"
)

const devToken = "Bearer " + session.DevSentinel

type fakeSheets struct{}

func (fakeSheets) GenerateCaseSheet(_ context.Context, _ usecase.CaseSheet) ([]byte, error) {
	return []byte("%PDF-1.4 fake"), nil
}

type testEnv struct {
	app *fiber.App
	db  *memstore.DB
	reg *prometheus.Registry
}

type envOption func(*apphttp.RouterDeps)

func withSeeds(d *apphttp.RouterDeps) { d.SeedsEnabled = true }

func newEnv(t *testing.T, opts ...envOption) testEnv {
	t.Helper()
	db := memstore.New()
	d := usecase.Deps{Store: db.Store(), Tx: db}
	reg := prometheus.NewRegistry()
	deps := apphttp.RouterDeps{
		AuthUC:       auth.NewAuthUseCase(db.Store(), session.DevCodec{AllowSentinel: true}, nil),
		OfficeUC:     usecase.NewOfficeUseCase(d),
		LawyerUC:     usecase.NewLawyerUseCase(d),
		ClientUC:     usecase.NewClientUseCase(d),
		CaseUC:       usecase.NewCaseUseCase(d, fakeSheets{}),
		SpecialtyUC:  usecase.NewSpecialtyUseCase(d),
		ProfileUC:    usecase.NewProfileUseCase(d),
		PermissionUC: usecase.NewPermissionUseCase(d),
		UserUC:       usecase.NewUserUseCase(d),
		ParameterUC:  usecase.NewParameterUseCase(d),
		AuditUC:      usecase.NewAuditUseCase(db.Store().Audit()),
		SeedUC:       usecase.NewSeedUseCase(d),
	}
	for _, o := range opts {
		o(&deps)
	}
	app := apphttp.NewApp(apphttp.AppConfig{
		Name:    "juridico-test",
		Metrics: apphttp.NewMetrics(reg, reg),
	}, deps)
	return testEnv{app: app, db: db, reg: reg}
}

// do ejecuta una petición; body nil => sin cuerpo.
func (e testEnv) do(t *testing.T, method, path, token string, body any) *http.Response {
	t.Helper()
	var r io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(t, err)
		r = bytes.NewReader(b)
	}
	req := httptest.NewRequest(method, path, r)
	if body != nil {
		req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	}
	if token != "" {
		req.Header.Set(fiber.HeaderAuthorization, token)
	}
	resp, err := e.app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func decode[T any](t *testing.T, resp *http.Response) T {
	t.Helper()
	defer resp.Body.Close()
	var out T
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return out
}

// seedUser crea un usuario con senha y, si officeID > 0, el vínculo usuario↔escritorio.
func (e testEnv) seedUser(t *testing.T, username, role, senha string, officeIDs ...int64) *entity.User {
	t.Helper()
	ctx := context.Background()
	hash, err := password.Hash(senha)
	require.NoError(t, err)
	u := &entity.User{Username: username, Nome: username, Role: role, Senha: hash}
	require.NoError(t, e.db.Store().Users().Create(ctx, u))
	for _, id := range officeIDs {
		require.NoError(t, e.db.Store().UserOffices().Add(ctx, u.ID, id))
	}
	return u
}

func (e testEnv) seedOffice(t *testing.T, nome string) int64 {
	t.Helper()
	o := &entity.Office{Nome: nome}
	require.NoError(t, e.db.Store().Offices().Create(context.Background(), o))
	return o.ID
}

func (e testEnv) login(t *testing.T, username, senha string, officeID int64) string {
	t.Helper()
	resp := e.do(t, fiber.MethodPost, "/api/auth/login", "", map[string]any{
		"username": username, "password": senha, "escritorio_id": officeID,
	})
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	out := decode[map[string]any](t, resp)
	return "Bearer " + out["access_token"].(string)
}

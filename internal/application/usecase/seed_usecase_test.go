package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Juridico-api/internal/application/auth"
	"github.com/jhoicas/Juridico-api/internal/application/dto"
	"github.com/jhoicas/Juridico-api/internal/application/usecase"
	"github.com/jhoicas/Juridico-api/internal/domain"
	"github.com/jhoicas/Juridico-api/internal/domain/repository"
	"github.com/jhoicas/Juridico-api/internal/testutil/memstore"
	"github.com/jhoicas/Juridico-api/pkg/session"
)

func TestSeed_Idempotente(t *testing.T) {
	db := memstore.New()
	ctx := context.Background()
	uc := usecase.NewSeedUseCase(deps(db))

	first, err := uc.Run(ctx, "dev")
	require.NoError(t, err)
	assert.Equal(t, 16, first.Created["especialidades"])
	assert.Equal(t, 3, first.Created["escritorios"])
	assert.Equal(t, 6, first.Created["advogados"])
	assert.Equal(t, 6, first.Created["advogado_escritorios"])
	assert.Equal(t, 6, first.Created["causas_processos"])
	assert.Equal(t, 1, first.Created["usuarios"])
	assert.Equal(t, 3, first.Created["usuario_escritorios"])
	audits := len(db.AuditRecords())

	second, err := uc.Run(ctx, "dev")
	require.NoError(t, err)
	for k, v := range second.Created {
		assert.Zero(t, v, k)
	}
	assert.Len(t, db.AuditRecords(), audits)

	cases, err := db.Store().Cases().List(ctx, repository.CaseFilter{})
	require.NoError(t, err)
	for _, c := range cases {
		assert.NotNil(t, c.EscritorioID, c.Numero)
		assert.NotNil(t, c.Valor, c.Numero)
	}
}

func TestSeed_AdminPuedeIniciarSesion(t *testing.T) {
	db := memstore.New()
	ctx := context.Background()
	_, err := usecase.NewSeedUseCase(deps(db)).Run(ctx, "dev")
	require.NoError(t, err)

	offices, err := db.Store().Offices().List(ctx)
	require.NoError(t, err)
	require.NotEmpty(t, offices)

	a := auth.NewAuthUseCase(db.Store(), session.DevCodec{}, nil)
	resp, err := a.Login(ctx, dto.LoginRequest{Username: "admin", Password: "admin", EscritorioID: offices[0].ID})
	require.NoError(t, err)
	assert.Equal(t, "ADMIN", resp.User.Username)
}

func TestSeed_ValorInvalidoAborta(t *testing.T) {
	db := memstore.New()
	data := []byte(`{"escritorios":[{"nome":"X"}],"causas":[{"numero":"1","valor":"abc"}]}`)
	_, err := usecase.NewSeedUseCase(deps(db)).WithData(data).Run(context.Background(), "dev")
	require.ErrorIs(t, err, domain.ErrInvalidInput)

	offices, _ := db.Store().Offices().List(context.Background())
	assert.Empty(t, offices, "la carga es atómica")
}

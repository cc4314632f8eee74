package usecase_test

import (
	"context"
	"encoding/json"
	"strings"
	"testing"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Juridico-api/internal/application/dto"
	"github.com/jhoicas/Juridico-api/internal/application/usecase"
	"github.com/jhoicas/Juridico-api/internal/domain"
	"github.com/jhoicas/Juridico-api/internal/domain/entity"
	"github.com/jhoicas/Juridico-api/internal/testutil/memstore"
	"github.com/jhoicas/Juridico-api/pkg/password"
)

func deps(db *memstore.DB) usecase.Deps {
	return usecase.Deps{Store: db.Store(), Tx: db}
}

func strp(s string) *string { return &s }

func idp(id int64) *int64 { return &id }

type diff struct {
	Before map[string]any `json:"before"`
	After  map[string]any `json:"after"`
}

func lastDiff(t *testing.T, db *memstore.DB) (entity.AuditRecord, diff) {
	t.Helper()
	recs := db.AuditRecords()
	require.NotEmpty(t, recs)
	r := recs[len(recs)-1]
	var d diff
	require.NoError(t, json.Unmarshal([]byte(r.Diff), &d))
	return r, d
}

func TestOffice_CicloDeVidaAuditado(t *testing.T) {
	db := memstore.New()
	uc := usecase.NewOfficeUseCase(deps(db))
	ctx := context.Background()

	o, err := uc.Create(ctx, "ANA", dto.CreateOfficeRequest{Nome: " escritório central ", Email: "Contato@Central.com"})
	require.NoError(t, err)
	assert.Equal(t, "ESCRITÓRIO CENTRAL", o.Nome)
	assert.Equal(t, "Contato@Central.com", o.Email, "email se conserva tal cual")

	r, d := lastDiff(t, db)
	assert.Equal(t, entity.ActionCreate, r.Acao)
	assert.Equal(t, "ANA", r.Quem)
	assert.Empty(t, d.Before)
	assert.Equal(t, "ESCRITÓRIO CENTRAL", d.After["nome"])

	_, err = uc.Update(ctx, "ANA", o.ID, dto.UpdateOfficeRequest{Telefone: strp("(11) 5555-0000")})
	require.NoError(t, err)
	r, d = lastDiff(t, db)
	assert.Equal(t, entity.ActionUpdate, r.Acao)
	assert.Equal(t, map[string]any{"telefone": "(11) 5555-0000"}, d.After, "after contiene solo los campos enviados")
	assert.Equal(t, "ESCRITÓRIO CENTRAL", d.Before["nome"])
	assert.Equal(t, "", d.Before["telefone"])

	require.NoError(t, uc.Delete(ctx, "ANA", o.ID))
	r, d = lastDiff(t, db)
	assert.Equal(t, entity.ActionDelete, r.Acao)
	assert.Equal(t, "(11) 5555-0000", d.Before["telefone"])
	assert.Empty(t, d.After)
	assert.Len(t, db.AuditRecords(), 3)

	_, err = uc.GetByID(ctx, o.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.ErrorIs(t, uc.Delete(ctx, "ANA", o.ID), domain.ErrNotFound)
	assert.Len(t, db.AuditRecords(), 3, "un fallo no genera auditoría")
}

func TestOffice_FalloDeAuditoriaRevierte(t *testing.T) {
	db := memstore.New()
	uc := usecase.NewOfficeUseCase(deps(db))
	ctx := context.Background()
	db.FailAudit(assert.AnError)

	_, err := uc.Create(ctx, "ANA", dto.CreateOfficeRequest{Nome: "X"})
	require.Error(t, err)
	list, err := uc.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestOffice_Validacion(t *testing.T) {
	uc := usecase.NewOfficeUseCase(deps(memstore.New()))
	_, err := uc.Create(context.Background(), "ANA", dto.CreateOfficeRequest{Email: "no-es-email"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Contains(t, err.Error(), "nome")
}

func TestLawyer_ConciliaEscritorios(t *testing.T) {
	db := memstore.New()
	ctx := context.Background()
	offices := usecase.NewOfficeUseCase(deps(db))
	var ids []int64
	for _, n := range []string{"A", "B", "C"} {
		o, err := offices.Create(ctx, "dev", dto.CreateOfficeRequest{Nome: n})
		require.NoError(t, err)
		ids = append(ids, o.ID)
	}
	uc := usecase.NewLawyerUseCase(deps(db))

	l, err := uc.Create(ctx, "dev", dto.CreateLawyerRequest{Nome: "ana souza", OAB: "sp 1", EscritoriosIDs: ids})
	require.NoError(t, err)
	assert.Equal(t, ids, l.EscritoriosIDs)
	assert.Len(t, l.Escritorios, 3)

	l, err = uc.Update(ctx, "dev", l.ID, dto.UpdateLawyerRequest{EscritoriosIDs: &[]int64{ids[1], ids[2]}})
	require.NoError(t, err)
	assert.Equal(t, []int64{ids[1], ids[2]}, l.EscritoriosIDs)
	_, d := lastDiff(t, db)
	assert.Len(t, d.Before["escritorios_ids"], 3)
	assert.Len(t, d.After["escritorios_ids"], 2)

	// omitido => sin cambios en vínculos
	l, err = uc.Update(ctx, "dev", l.ID, dto.UpdateLawyerRequest{Nome: strp("ana s.")})
	require.NoError(t, err)
	assert.Equal(t, "ANA S.", l.Nome)
	assert.Equal(t, []int64{ids[1], ids[2]}, l.EscritoriosIDs)
	_, d = lastDiff(t, db)
	assert.NotContains(t, d.After, "escritorios_ids")

	got, err := uc.Offices(ctx, l.ID)
	require.NoError(t, err)
	assert.Len(t, got, 2)

	_, err = uc.Update(ctx, "dev", l.ID, dto.UpdateLawyerRequest{EscritoriosIDs: &[]int64{999}})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Equal(t, []int64{ids[1], ids[2]}, db.LawyerOfficePairs(l.ID), "rollback conserva los vínculos")

	l, err = uc.Update(ctx, "dev", l.ID, dto.UpdateLawyerRequest{EscritoriosIDs: &[]int64{}})
	require.NoError(t, err)
	assert.Empty(t, l.EscritoriosIDs)
}

func TestCase_ValorFechaYAlcance(t *testing.T) {
	db := memstore.New()
	ctx := context.Background()
	offices := usecase.NewOfficeUseCase(deps(db))
	a, _ := offices.Create(ctx, "dev", dto.CreateOfficeRequest{Nome: "A"})
	b, _ := offices.Create(ctx, "dev", dto.CreateOfficeRequest{Nome: "B"})
	uc := usecase.NewCaseUseCase(deps(db), nil)

	valor := dto.Amount("1.234,565")
	c, err := uc.Create(ctx, usecase.Caller{Actor: "dev"}, dto.CreateCaseRequest{
		Numero: "0001", EscritorioID: idp(a.ID), DataDistribuicao: strp("15/03/2024"), Valor: &valor,
	})
	require.NoError(t, err)
	require.NotNil(t, c.Valor)
	assert.Equal(t, "1234.57", c.Valor.String())
	assert.Equal(t, "2024-03-15", *c.DataDistribuicao)

	v2 := dto.Amount("100")
	_, err = uc.Create(ctx, usecase.Caller{Actor: "dev"}, dto.CreateCaseRequest{Numero: "0002", EscritorioID: idp(b.ID), Valor: &v2})
	require.NoError(t, err)

	neg := dto.Amount("-1")
	_, err = uc.Create(ctx, usecase.Caller{Actor: "dev"}, dto.CreateCaseRequest{Numero: "0003", Valor: &neg})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	_, err = uc.Create(ctx, usecase.Caller{Actor: "dev"}, dto.CreateCaseRequest{Numero: "0003", DataDistribuicao: strp("ontem")})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	_, err = uc.Create(ctx, usecase.Caller{Actor: "dev"}, dto.CreateCaseRequest{Numero: "0001"})
	assert.ErrorIs(t, err, domain.ErrDuplicate)

	all, err := uc.Sum(ctx, usecase.Caller{})
	require.NoError(t, err)
	assert.Equal(t, "1334.57", all.Total.String())

	scoped := usecase.Caller{Actor: "ANA", OfficeID: a.ID}
	list, err := uc.List(ctx, scoped)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "0001", list[0].Numero)
	sum, err := uc.Sum(ctx, scoped)
	require.NoError(t, err)
	assert.Equal(t, "1234.57", sum.Total.String())

	other := usecase.Caller{Actor: "BETO", OfficeID: b.ID}
	_, err = uc.GetByID(ctx, other, c.ID)
	assert.ErrorIs(t, err, domain.ErrForbidden)
	assert.ErrorIs(t, uc.Delete(ctx, other, c.ID), domain.ErrForbidden)

	created, err := uc.Create(ctx, scoped, dto.CreateCaseRequest{Numero: "0004"})
	require.NoError(t, err)
	require.NotNil(t, created.EscritorioID)
	assert.Equal(t, a.ID, *created.EscritorioID, "hereda el escritorio de la sesión")

	_, err = uc.Create(ctx, scoped, dto.CreateCaseRequest{Numero: "0005", EscritorioID: idp(b.ID)})
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestCase_UpdateParcial(t *testing.T) {
	db := memstore.New()
	ctx := context.Background()
	uc := usecase.NewCaseUseCase(deps(db), nil)
	c, err := uc.Create(ctx, usecase.Caller{Actor: "dev"}, dto.CreateCaseRequest{Numero: "n1", Status: "ativo"})
	require.NoError(t, err)

	v := dto.Amount("10.5")
	u, err := uc.Update(ctx, usecase.Caller{Actor: "dev"}, c.ID, dto.UpdateCaseRequest{Valor: &v})
	require.NoError(t, err)
	assert.Equal(t, "ATIVO", u.Status)
	assert.Equal(t, "10.50", u.Valor.String())

	_, d := lastDiff(t, db)
	assert.Equal(t, map[string]any{"valor": "10.50"}, d.After)
	assert.Nil(t, d.Before["valor"])

	_, err = uc.Update(ctx, usecase.Caller{Actor: "dev"}, c.ID, dto.UpdateCaseRequest{ClienteID: dto.Some[int64](77)})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

type fakeSheets struct{ got usecase.CaseSheet }

func (f *fakeSheets) GenerateCaseSheet(_ context.Context, s usecase.CaseSheet) ([]byte, error) {
	f.got = s
	return []byte("%PDF-1.3"), nil
}

func TestCase_SheetPDF(t *testing.T) {
	db := memstore.New()
	ctx := context.Background()
	clients := usecase.NewClientUseCase(deps(db))
	cl, err := clients.Create(ctx, "dev", dto.CreateClientRequest{Nome: "acme"})
	require.NoError(t, err)
	sheets := &fakeSheets{}
	uc := usecase.NewCaseUseCase(deps(db), sheets)
	c, err := uc.Create(ctx, usecase.Caller{Actor: "dev"}, dto.CreateCaseRequest{Numero: "p1", ClienteID: idp(cl.ID)})
	require.NoError(t, err)

	pdf, name, err := uc.SheetPDF(ctx, usecase.Caller{}, c.ID)
	require.NoError(t, err)
	assert.Equal(t, "%PDF-1.3", string(pdf))
	assert.Contains(t, name, ".pdf")
	require.NotNil(t, sheets.got.Cliente)
	assert.Equal(t, "ACME", sheets.got.Cliente.Nome)
	assert.Nil(t, sheets.got.Advogado)
}

func TestParameter_Upsert(t *testing.T) {
	db := memstore.New()
	ctx := context.Background()
	uc := usecase.NewParameterUseCase(deps(db))

	p, err := uc.Upsert(ctx, "dev", dto.UpsertParameterRequest{Chave: "taxa", Valor: "1"})
	require.NoError(t, err)
	r, _ := lastDiff(t, db)
	assert.Equal(t, entity.ActionCreate, r.Acao)

	p2, err := uc.Upsert(ctx, "dev", dto.UpsertParameterRequest{Chave: "TAXA", Valor: "2"})
	require.NoError(t, err)
	assert.Equal(t, p.ID, p2.ID)
	assert.Equal(t, "2", p2.Valor)
	r, d := lastDiff(t, db)
	assert.Equal(t, entity.ActionUpdate, r.Acao)
	assert.Equal(t, "1", d.Before["valor"])

	list, err := uc.List(ctx)
	require.NoError(t, err)
	assert.Len(t, list, 1)
}

func TestUser_SenhaHasheadaYFueraDeAuditoria(t *testing.T) {
	db := memstore.New()
	ctx := context.Background()
	uc := usecase.NewUserUseCase(deps(db))

	u, err := uc.Create(ctx, "dev", dto.CreateUserRequest{
		Username: "ana", Nome: "Ana", Senha: "secret", Permissoes: strp(`{"causas":["read"]}`),
	})
	require.NoError(t, err)
	assert.Equal(t, "ANA", u.Username)
	assert.Equal(t, `{"causas":["read"]}`, *u.Permissoes, "permissoes se guarda tal cual")

	stored, err := db.Store().Users().GetByID(ctx, u.ID)
	require.NoError(t, err)
	assert.True(t, password.IsHash(stored.Senha))
	assert.True(t, password.Verify(stored.Senha, "secret"))

	_, err = uc.Update(ctx, "dev", u.ID, dto.UpdateUserRequest{Senha: strp("nova")})
	require.NoError(t, err)
	for _, r := range db.AuditRecords() {
		assert.NotContains(t, r.Diff, "senha")
		assert.NotContains(t, r.Diff, "secret")
		assert.NotContains(t, r.Diff, "nova")
	}

	_, err = uc.Create(ctx, "dev", dto.CreateUserRequest{Username: "ANA", Nome: "Outra"})
	assert.ErrorIs(t, err, domain.ErrDuplicate)

	_, err = uc.Create(ctx, "dev", dto.CreateUserRequest{Username: "x", Nome: "x", Permissoes: strp("{no json")})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestCatalogs(t *testing.T) {
	db := memstore.New()
	ctx := context.Background()
	profiles := usecase.NewProfileUseCase(deps(db))
	perms := usecase.NewPermissionUseCase(deps(db))
	specs := usecase.NewSpecialtyUseCase(deps(db))

	p, err := profiles.Create(ctx, "dev", dto.CatalogRequest{Nome: "operacional"})
	require.NoError(t, err)
	_, err = perms.Create(ctx, "dev", dto.CatalogRequest{Nome: "usuarios_read"})
	require.NoError(t, err)
	_, err = specs.Create(ctx, "dev", dto.CatalogRequest{Nome: "direito civil"})
	require.NoError(t, err)

	pl, _ := profiles.List(ctx)
	ml, _ := perms.List(ctx)
	assert.Len(t, pl, 1)
	assert.Len(t, ml, 1, "perfiles y permisos usan tablas distintas")

	r, _ := lastDiff(t, db)
	assert.Equal(t, entity.EntitySpecialties, r.Entidade)

	require.NoError(t, profiles.Delete(ctx, "dev", p.ID))
	r, _ = lastDiff(t, db)
	assert.Equal(t, entity.EntityProfiles, r.Entidade)
	_, err = profiles.GetByID(ctx, p.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestAudit_ListRecent(t *testing.T) {
	db := memstore.New()
	ctx := context.Background()
	clients := usecase.NewClientUseCase(deps(db))
	for _, n := range []string{"a", "b", "c"} {
		_, err := clients.Create(ctx, "dev", dto.CreateClientRequest{Nome: n})
		require.NoError(t, err)
	}
	uc := usecase.NewAuditUseCase(db.Store().Audit())
	list, err := uc.ListRecent(ctx, 2)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Greater(t, list[0].ID, list[1].ID, "más reciente primero")

	list, err = uc.ListRecent(ctx, 0)
	require.NoError(t, err)
	assert.Len(t, list, 3)
}

func TestUser_NullDesvinculaAdvogado(t *testing.T) {
	db := memstore.New()
	ctx := context.Background()
	lawyers := usecase.NewLawyerUseCase(deps(db))
	l, err := lawyers.Create(ctx, "dev", dto.CreateLawyerRequest{Nome: "ana"})
	require.NoError(t, err)
	uc := usecase.NewUserUseCase(deps(db))
	u, err := uc.Create(ctx, "dev", dto.CreateUserRequest{Username: "ana", Nome: "Ana", AdvogadoID: idp(l.ID)})
	require.NoError(t, err)
	require.NotNil(t, u.AdvogadoID)

	u, err = uc.Update(ctx, "dev", u.ID, dto.UpdateUserRequest{Nome: strp("ana s.")})
	require.NoError(t, err)
	require.NotNil(t, u.AdvogadoID, "clave omitida conserva el vínculo")

	u, err = uc.Update(ctx, "dev", u.ID, dto.UpdateUserRequest{AdvogadoID: dto.Null[int64]()})
	require.NoError(t, err)
	assert.Nil(t, u.AdvogadoID)
	stored, err := db.Store().Users().GetByID(ctx, u.ID)
	require.NoError(t, err)
	assert.Nil(t, stored.AdvogadoID)

	_, d := lastDiff(t, db)
	require.Contains(t, d.After, "advogado_id")
	assert.Nil(t, d.After["advogado_id"])
	assert.EqualValues(t, l.ID, d.Before["advogado_id"])
}

func TestCase_NullLimpiaReferencias(t *testing.T) {
	db := memstore.New()
	ctx := context.Background()
	offices := usecase.NewOfficeUseCase(deps(db))
	a, _ := offices.Create(ctx, "dev", dto.CreateOfficeRequest{Nome: "A"})
	cl, err := usecase.NewClientUseCase(deps(db)).Create(ctx, "dev", dto.CreateClientRequest{Nome: "acme"})
	require.NoError(t, err)
	uc := usecase.NewCaseUseCase(deps(db), nil)
	c, err := uc.Create(ctx, usecase.Caller{Actor: "dev"}, dto.CreateCaseRequest{Numero: "n1", ClienteID: idp(cl.ID), EscritorioID: idp(a.ID)})
	require.NoError(t, err)

	scoped := usecase.Caller{Actor: "ANA", OfficeID: a.ID}
	_, err = uc.Update(ctx, scoped, c.ID, dto.UpdateCaseRequest{EscritorioID: dto.Null[int64]()})
	assert.ErrorIs(t, err, domain.ErrForbidden, "una sesión acotada no puede soltar su escritorio")

	u, err := uc.Update(ctx, usecase.Caller{Actor: "dev"}, c.ID, dto.UpdateCaseRequest{ClienteID: dto.Null[int64]()})
	require.NoError(t, err)
	assert.Nil(t, u.ClienteID)
	require.NotNil(t, u.EscritorioID)
	_, d := lastDiff(t, db)
	assert.Equal(t, map[string]any{"cliente_id": nil}, d.After)
}

func TestUser_SenhaLimiteEnBytes(t *testing.T) {
	db := memstore.New()
	ctx := context.Background()
	uc := usecase.NewUserUseCase(deps(db))

	_, err := uc.Create(ctx, "dev", dto.CreateUserRequest{Username: "ana", Nome: "Ana", Senha: strings.Repeat("é", 60)})
	require.ErrorIs(t, err, domain.ErrInvalidInput)
	var verrs validation.Errors
	require.ErrorAs(t, err, &verrs)
	assert.Contains(t, verrs, "senha")

	u, err := uc.Create(ctx, "dev", dto.CreateUserRequest{Username: "ana", Nome: "Ana", Senha: strings.Repeat("é", 36)})
	require.NoError(t, err, "72 bytes exactos caben en bcrypt")

	_, err = uc.Update(ctx, "dev", u.ID, dto.UpdateUserRequest{Senha: strp(strings.Repeat("ç", 37))})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

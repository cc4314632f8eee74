package auth_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Juridico-api/internal/application/auth"
	"github.com/jhoicas/Juridico-api/internal/application/dto"
	"github.com/jhoicas/Juridico-api/internal/domain"
	"github.com/jhoicas/Juridico-api/internal/domain/entity"
	"github.com/jhoicas/Juridico-api/internal/testutil/memstore"
	"github.com/jhoicas/Juridico-api/pkg/config"
	"github.com/jhoicas/Juridico-api/pkg/password"
	"github.com/jhoicas/Juridico-api/pkg/session"
)

type fixture struct {
	uc      *auth.AuthUseCase
	db      *memstore.DB
	officeA int64 // vinculado al abogado de ANA
	officeB int64 // sin vínculo
	lawyer  int64
	ana     int64
}

func setup(t *testing.T, codec session.Codec) fixture {
	t.Helper()
	ctx := context.Background()
	db := memstore.New()
	s := db.Store()

	a := &entity.Office{Nome: "ESCRITÓRIO A"}
	b := &entity.Office{Nome: "ESCRITÓRIO B"}
	require.NoError(t, s.Offices().Create(ctx, a))
	require.NoError(t, s.Offices().Create(ctx, b))

	l := &entity.Lawyer{Nome: "ANA SOUZA", OAB: "SP123"}
	require.NoError(t, s.Lawyers().Create(ctx, l))
	require.NoError(t, s.LawyerOffices().Add(ctx, l.ID, a.ID))

	hash, err := password.Hash("secret")
	require.NoError(t, err)
	u := &entity.User{Username: "ANA", Nome: "ANA SOUZA", Role: "ADMIN", Senha: hash, AdvogadoID: &l.ID}
	require.NoError(t, s.Users().Create(ctx, u))

	return fixture{
		uc:      auth.NewAuthUseCase(s, codec, nil),
		db:      db,
		officeA: a.ID,
		officeB: b.ID,
		lawyer:  l.ID,
		ana:     u.ID,
	}
}

func TestLogin_ViaAbogado(t *testing.T) {
	f := setup(t, session.DevCodec{})
	resp, err := f.uc.Login(context.Background(), dto.LoginRequest{Username: "ana", Password: "secret", EscritorioID: f.officeA})
	require.NoError(t, err)
	assert.Equal(t, "bearer", resp.TokenType)
	assert.Equal(t, f.ana, resp.User.ID)
	assert.Equal(t, f.officeA, resp.Escritorio.ID)

	p, err := f.uc.Authenticate(context.Background(), resp.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, f.ana, p.UserID)
	assert.Equal(t, f.officeA, p.OfficeID)
	assert.Equal(t, "ANA", p.Actor())
	assert.True(t, p.Scoped())
}

func TestLogin_EscritorioNoAutorizado(t *testing.T) {
	f := setup(t, session.DevCodec{})
	_, err := f.uc.Login(context.Background(), dto.LoginRequest{Username: "ana", Password: "secret", EscritorioID: f.officeB})
	require.ErrorIs(t, err, domain.ErrForbidden)
	assert.Contains(t, err.Error(), "ANA")
	assert.Contains(t, err.Error(), "escritório")
}

func TestLogin_Errores(t *testing.T) {
	f := setup(t, session.DevCodec{})
	ctx := context.Background()

	_, err := f.uc.Login(ctx, dto.LoginRequest{Username: "ana", Password: "wrong", EscritorioID: f.officeA})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)

	_, err = f.uc.Login(ctx, dto.LoginRequest{Username: "nobody", Password: "secret", EscritorioID: f.officeA})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)

	_, err = f.uc.Login(ctx, dto.LoginRequest{Username: "ana", Password: "secret"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = f.uc.Login(ctx, dto.LoginRequest{Password: "secret", EscritorioID: f.officeA})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = f.uc.Login(ctx, dto.LoginRequest{Username: "ana", Password: "secret", EscritorioID: 999})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestLogin_SenhaHeredadaEnTextoPlano(t *testing.T) {
	f := setup(t, session.DevCodec{})
	ctx := context.Background()
	u := &entity.User{Username: "LEGADO", Nome: "LEGADO", Senha: "plain"}
	require.NoError(t, f.db.Store().Users().Create(ctx, u))
	require.NoError(t, f.db.Store().UserOffices().Add(ctx, u.ID, f.officeB))

	_, err := f.uc.Login(ctx, dto.LoginRequest{Username: "legado", Password: "plain", EscritorioID: f.officeB})
	assert.NoError(t, err)
}

func TestAuthorizeOffice_VinculoDirectoIgnoradoConAbogado(t *testing.T) {
	f := setup(t, session.DevCodec{})
	ctx := context.Background()
	// fila directa "suelta": no basta cuando el usuario tiene abogado
	require.NoError(t, f.db.Store().UserOffices().Add(ctx, f.ana, f.officeB))

	ok, err := f.uc.AuthorizeOffice(ctx, f.ana, f.officeB)
	require.NoError(t, err)
	assert.False(t, ok)

	ok, err = f.uc.AuthorizeOffice(ctx, f.ana, f.officeA)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestAuthorizeOffice_SinAbogadoUsaVinculoDirecto(t *testing.T) {
	f := setup(t, session.DevCodec{})
	ctx := context.Background()
	u := &entity.User{Username: "BETO", Nome: "BETO"}
	require.NoError(t, f.db.Store().Users().Create(ctx, u))

	ok, _ := f.uc.AuthorizeOffice(ctx, u.ID, f.officeB)
	assert.False(t, ok)

	require.NoError(t, f.db.Store().UserOffices().Add(ctx, u.ID, f.officeB))
	ok, _ = f.uc.AuthorizeOffice(ctx, u.ID, f.officeB)
	assert.True(t, ok)

	ok, _ = f.uc.AuthorizeOffice(ctx, 9999, f.officeB)
	assert.False(t, ok, "usuario inexistente")
}

func TestAuthenticate(t *testing.T) {
	f := setup(t, session.DevCodec{AllowSentinel: true})
	ctx := context.Background()

	p, err := f.uc.Authenticate(ctx, session.DevSentinel)
	require.NoError(t, err)
	assert.True(t, p.Dev)
	assert.Equal(t, "dev", p.Actor())
	assert.False(t, p.Scoped())

	_, err = f.uc.Authenticate(ctx, "dev-abc")
	assert.ErrorIs(t, err, domain.ErrUnauthorized)

	_, err = f.uc.Authenticate(ctx, "dev-9999@1")
	assert.ErrorIs(t, err, domain.ErrUnauthorized)

	tok, _ := session.DevCodec{}.Issue(f.ana, f.officeB)
	_, err = f.uc.Authenticate(ctx, tok)
	assert.ErrorIs(t, err, domain.ErrForbidden)

	tok, _ = session.DevCodec{}.Issue(f.ana, 0)
	p, err = f.uc.Authenticate(ctx, tok)
	require.NoError(t, err)
	assert.False(t, p.Scoped())
}

func TestMe(t *testing.T) {
	codec := session.JWTCodec{Secret: "s3cr3t", Issuer: "test", ExpMinutes: 10}
	f := setup(t, codec)
	ctx := context.Background()
	tok, err := codec.Issue(f.ana, f.officeA)
	require.NoError(t, err)

	me, err := f.uc.Me(ctx, tok)
	require.NoError(t, err)
	assert.Equal(t, "ANA", me.Username)
	require.NotNil(t, me.Escritorio)
	assert.Equal(t, "ESCRITÓRIO A", me.Escritorio.Nome)
	require.NotNil(t, me.Advogado)
	assert.Equal(t, "SP123", me.Advogado.OAB)

	_, err = f.uc.Me(ctx, "garbage")
	assert.True(t, errors.Is(err, domain.ErrUnauthorized))
}

func TestNewCodec(t *testing.T) {
	_, isDev := auth.NewCodec(config.AuthConfig{TokenMode: config.TokenModeDev}).(session.DevCodec)
	assert.True(t, isDev)
	_, isJWT := auth.NewCodec(config.AuthConfig{TokenMode: config.TokenModeJWT, JWTSecret: "x"}).(session.JWTCodec)
	assert.True(t, isJWT)
}

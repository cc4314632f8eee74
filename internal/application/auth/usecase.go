package auth

import (
	"context"
	"fmt"

	"github.com/jhoicas/Juridico-api/internal/application/dto"
	"github.com/jhoicas/Juridico-api/internal/domain"
	"github.com/jhoicas/Juridico-api/internal/domain/entity"
	"github.com/jhoicas/Juridico-api/internal/domain/repository"
	"github.com/jhoicas/Juridico-api/pkg/config"
	"github.com/jhoicas/Juridico-api/pkg/logger"
	"github.com/jhoicas/Juridico-api/pkg/normalize"
	"github.com/jhoicas/Juridico-api/pkg/password"
	"github.com/jhoicas/Juridico-api/pkg/session"
)

// Datos del superusuario sintético de desarrollo.
const (
	devUsername = "dev"
	devNome     = "DESENVOLVIMENTO"
)

// Principal identidad resuelta de una petición autenticada.
type Principal struct {
	UserID   int64
	Username string
	Role     string
	OfficeID int64  // 0 = sin escritorio
	LawyerID *int64 // abogado vinculado al usuario
	Dev      bool
}

// Actor nombre registrado en auditoría para las mutaciones de este principal.
func (p *Principal) Actor() string { return p.Username }

// Scoped indica si las lecturas deben limitarse al escritorio de la sesión.
func (p *Principal) Scoped() bool { return !p.Dev && p.OfficeID > 0 }

func devPrincipal() *Principal {
	return &Principal{Username: devUsername, Role: entity.RoleDev, Dev: true}
}

// NewCodec elige el formato de credencial según la configuración.
func NewCodec(cfg config.AuthConfig) session.Codec {
	if cfg.TokenMode == config.TokenModeDev {
		return session.DevCodec{AllowSentinel: cfg.DevTokenEnabled}
	}
	return session.JWTCodec{
		Secret:        cfg.JWTSecret,
		Issuer:        cfg.Issuer,
		ExpMinutes:    cfg.ExpMinutes,
		AllowSentinel: cfg.DevTokenEnabled,
	}
}

// AuthUseCase login, resolución de sesión y autorización por escritorio.
type AuthUseCase struct {
	store repository.Store
	codec session.Codec
	log   *logger.Logger
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(store repository.Store, codec session.Codec, log *logger.Logger) *AuthUseCase {
	if log == nil {
		log = logger.Nop()
	}
	return &AuthUseCase{store: store, codec: codec, log: log}
}

// Authenticate decodifica el token, carga el usuario y revalida el acceso al
// escritorio de la sesión. Token inválido o usuario inexistente => ErrUnauthorized;
// escritorio no autorizado => ErrForbidden.
func (uc *AuthUseCase) Authenticate(ctx context.Context, token string) (*Principal, error) {
	id, ok := uc.codec.Decode(token)
	if !ok {
		return nil, domain.Errorf(domain.ErrUnauthorized, "token inválido")
	}
	if id.Dev {
		return devPrincipal(), nil
	}
	user, err := uc.store.Users().GetByID(ctx, id.UserID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.Errorf(domain.ErrUnauthorized, "usuário do token não existe")
	}
	if id.HasOffice() {
		allowed, err := uc.AuthorizeOffice(ctx, user.ID, id.OfficeID)
		if err != nil {
			return nil, err
		}
		if !allowed {
			return nil, forbidden(user.Username, id.OfficeID)
		}
	}
	return &Principal{
		UserID:   user.ID,
		Username: user.Username,
		Role:     user.Role,
		OfficeID: id.OfficeID,
		LawyerID: user.AdvogadoID,
	}, nil
}

// AuthorizeOffice decide si el usuario puede operar en el escritorio. Con un
// abogado vinculado solo cuenta el vínculo abogado↔escritorio; sin abogado,
// el vínculo directo usuario↔escritorio.
func (uc *AuthUseCase) AuthorizeOffice(ctx context.Context, userID, officeID int64) (bool, error) {
	user, err := uc.store.Users().GetByID(ctx, userID)
	if err != nil {
		return false, err
	}
	if user == nil {
		return false, nil
	}
	if user.AdvogadoID != nil {
		return uc.store.LawyerOffices().Exists(ctx, *user.AdvogadoID, officeID)
	}
	return uc.store.UserOffices().Exists(ctx, user.ID, officeID)
}

// Login verifica usuario/senha y el acceso al escritorio, y emite el token de sesión.
func (uc *AuthUseCase) Login(ctx context.Context, in dto.LoginRequest) (*dto.LoginResponse, error) {
	if err := in.Validate(); err != nil {
		return nil, domain.Invalid(err)
	}
	username := normalize.Upper(in.Username)
	user, err := uc.store.Users().GetByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	if user == nil || !password.Verify(user.Senha, in.Password) {
		uc.log.Warn().Str("username", username).Msg("login rechazado: credenciales inválidas")
		return nil, domain.Errorf(domain.ErrUnauthorized, "credenciais inválidas")
	}
	office, err := uc.store.Offices().GetByID(ctx, in.EscritorioID)
	if err != nil {
		return nil, err
	}
	if office == nil {
		return nil, domain.NotFound("escritório")
	}
	allowed, err := uc.AuthorizeOffice(ctx, user.ID, office.ID)
	if err != nil {
		return nil, err
	}
	if !allowed {
		uc.log.Warn().Str("username", user.Username).Int64("escritorio_id", office.ID).Msg("login rechazado: escritorio no autorizado")
		return nil, forbidden(user.Username, office.ID)
	}
	token, err := uc.codec.Issue(user.ID, office.ID)
	if err != nil {
		return nil, fmt.Errorf("auth: emitir token: %w", err)
	}
	return &dto.LoginResponse{
		AccessToken: token,
		TokenType:   "bearer",
		User:        toSessionUser(user),
		Escritorio:  dto.OfficeRef{ID: office.ID, Nome: office.Nome},
	}, nil
}

// Me resuelve el token y devuelve la identidad completa.
func (uc *AuthUseCase) Me(ctx context.Context, token string) (*dto.MeResponse, error) {
	p, err := uc.Authenticate(ctx, token)
	if err != nil {
		return nil, err
	}
	return uc.Describe(ctx, p)
}

// Describe arma la respuesta de /me para un principal ya resuelto.
func (uc *AuthUseCase) Describe(ctx context.Context, p *Principal) (*dto.MeResponse, error) {
	if p.Dev {
		return &dto.MeResponse{SessionUser: dto.SessionUser{
			Username: devUsername,
			Nome:     devNome,
			Role:     entity.RoleDev,
		}}, nil
	}
	user, err := uc.store.Users().GetByID(ctx, p.UserID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.Errorf(domain.ErrUnauthorized, "usuário do token não existe")
	}
	out := &dto.MeResponse{SessionUser: toSessionUser(user)}
	if p.OfficeID > 0 {
		office, err := uc.store.Offices().GetByID(ctx, p.OfficeID)
		if err != nil {
			return nil, err
		}
		if office != nil {
			out.Escritorio = &dto.OfficeRef{ID: office.ID, Nome: office.Nome}
		}
	}
	if user.AdvogadoID != nil {
		lawyer, err := uc.store.Lawyers().GetByID(ctx, *user.AdvogadoID)
		if err != nil {
			return nil, err
		}
		if lawyer != nil {
			out.Advogado = &dto.LawyerRef{ID: lawyer.ID, Nome: lawyer.Nome, OAB: lawyer.OAB}
		}
	}
	return out, nil
}

func forbidden(username string, officeID int64) error {
	return domain.Errorf(domain.ErrForbidden, "usuário %s não tem acesso ao escritório %d", username, officeID)
}

func toSessionUser(u *entity.User) dto.SessionUser {
	return dto.SessionUser{
		ID:         u.ID,
		Username:   u.Username,
		Nome:       u.Nome,
		Email:      u.Email,
		Role:       u.Role,
		Permissoes: u.Permissoes,
	}
}

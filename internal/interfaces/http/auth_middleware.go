package http

import (
	"errors"
	"slices"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Juridico-api/internal/application/auth"
	"github.com/jhoicas/Juridico-api/internal/application/dto"
	"github.com/jhoicas/Juridico-api/internal/application/usecase"
	"github.com/jhoicas/Juridico-api/internal/domain"
	"github.com/jhoicas/Juridico-api/pkg/session"
)

// LocalPrincipal clave de c.Locals con el *auth.Principal resuelto.
const LocalPrincipal = "principal"

// AuthMiddleware valida el Bearer token, revalida el acceso al escritorio de
// la sesión y deja el *auth.Principal en c.Locals.
//
//   - 401 MISSING_TOKEN  sin header o token vacío
//   - 401 INVALID_TOKEN  formato incorrecto, token mal formado o usuario inexistente
//   - 403 FORBIDDEN      el usuario ya no tiene acceso al escritorio del token
func AuthMiddleware(uc *auth.AuthUseCase) fiber.Handler {
	return func(c *fiber.Ctx) error {
		header := c.Get(fiber.HeaderAuthorization)
		if strings.TrimSpace(header) == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_TOKEN", Message: "header Authorization obrigatório"})
		}
		token, ok := session.BearerToken(header)
		if !ok {
			scheme, _, _ := strings.Cut(strings.TrimSpace(header), " ")
			if strings.EqualFold(scheme, "Bearer") {
				return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_TOKEN", Message: "token vazio"})
			}
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_TOKEN", Message: "formato: Bearer <token>"})
		}
		p, err := uc.Authenticate(c.UserContext(), token)
		if err != nil {
			if errors.Is(err, domain.ErrUnauthorized) {
				return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_TOKEN", Message: "token inválido ou expirado"})
			}
			return respondError(c, err)
		}
		c.Locals(LocalPrincipal, p)
		return c.Next()
	}
}

// RequireRole permite el paso solo a los roles indicados. Debe ir después de
// AuthMiddleware. El superusuario de desarrollo pasa siempre.
func RequireRole(roles ...string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		p := GetPrincipal(c)
		if p == nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "sessão não encontrada"})
		}
		if p.Dev {
			return c.Next()
		}
		if p.Role == "" {
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "MISSING_ROLE", Message: "usuário sem perfil"})
		}
		if !slices.ContainsFunc(roles, func(r string) bool { return strings.EqualFold(r, p.Role) }) {
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "perfil sem permissão para esta operação"})
		}
		return c.Next()
	}
}

// GetPrincipal devuelve el principal de la petición (nil antes de AuthMiddleware).
func GetPrincipal(c *fiber.Ctx) *auth.Principal {
	p, _ := c.Locals(LocalPrincipal).(*auth.Principal)
	return p
}

// caller traduce el principal a la vista que necesitan los casos de uso.
func caller(c *fiber.Ctx) usecase.Caller {
	p := GetPrincipal(c)
	if p == nil {
		return usecase.Caller{}
	}
	out := usecase.Caller{Actor: p.Actor()}
	if p.Scoped() {
		out.OfficeID = p.OfficeID
	}
	return out
}

func actor(c *fiber.Ctx) string {
	return caller(c).Actor
}

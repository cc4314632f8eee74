package http

import (
	"errors"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"

	"github.com/jhoicas/Juridico-api/internal/application/dto"
	"github.com/jhoicas/Juridico-api/internal/domain"
)

// errorStatus mapea los errores de dominio a status HTTP y código.
var errorStatus = []struct {
	kind   error
	status int
	code   string
}{
	{domain.ErrNotFound, fiber.StatusNotFound, "NOT_FOUND"},
	{domain.ErrInvalidInput, fiber.StatusBadRequest, "VALIDATION"},
	{domain.ErrUnauthorized, fiber.StatusUnauthorized, "UNAUTHORIZED"},
	{domain.ErrForbidden, fiber.StatusForbidden, "FORBIDDEN"},
	{domain.ErrDuplicate, fiber.StatusConflict, "DUPLICATE"},
}

// respondError escribe err como dto.ErrorResponse. Errores sin clase de
// dominio son 500 y su detalle solo va al log.
func respondError(c *fiber.Ctx, err error) error {
	for _, m := range errorStatus {
		if !errors.Is(err, m.kind) {
			continue
		}
		body := dto.ErrorResponse{Code: m.code, Message: publicMessage(err)}
		var verrs validation.Errors
		if errors.As(err, &verrs) {
			body.Fields = make(map[string]string, len(verrs))
			for field, ferr := range verrs {
				body.Fields[field] = ferr.Error()
			}
		}
		return c.Status(m.status).JSON(body)
	}
	log.Error().Err(err).Str("request_id", GetRequestID(c)).Str("path", c.Path()).Msg("error interno")
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "erro interno"})
}

// publicMessage prefiere el mensaje del *domain.Error más externo, sin el
// prefijo técnico que agregan los repositorios.
func publicMessage(err error) string {
	var de *domain.Error
	if errors.As(err, &de) {
		return de.Msg
	}
	return err.Error()
}

func badBody(c *fiber.Ctx) error {
	return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo da requisição inválido"})
}

// ErrorHandler handler de errores de Fiber: rutas inexistentes, métodos no
// permitidos y errores devueltos sin responder.
func ErrorHandler(c *fiber.Ctx, err error) error {
	var fe *fiber.Error
	if errors.As(err, &fe) {
		code := "HTTP_ERROR"
		switch fe.Code {
		case fiber.StatusNotFound:
			code = "NOT_FOUND"
		case fiber.StatusMethodNotAllowed:
			code = "METHOD_NOT_ALLOWED"
		case fiber.StatusBadRequest:
			code = "BAD_REQUEST"
		}
		return c.Status(fe.Code).JSON(dto.ErrorResponse{Code: code, Message: fe.Message})
	}
	return respondError(c, err)
}

// paramID lee :id como entero positivo.
func paramID(c *fiber.Ctx) (int64, error) {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return 0, domain.Errorf(domain.ErrInvalidInput, "id inválido: %q", c.Params("id"))
	}
	return int64(id), nil
}

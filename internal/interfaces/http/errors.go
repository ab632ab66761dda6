package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Comparador-api/internal/application/dto"
	"github.com/jhoicas/Comparador-api/internal/domain"
	"github.com/jhoicas/Comparador-api/pkg/logger"
)

// writeError traduce los errores de dominio a dto.ErrorResponse.
// Integridad referencial e importación inválida son estados inesperados: se registran antes de responder.
func writeError(c *fiber.Ctx, log *logger.Logger, err error) error {
	var (
		verr *domain.ValidationError
		ferr *domain.ImportFormatError
		ierr *domain.ReferentialIntegrityError
		fe   *fiber.Error
	)
	switch {
	case errors.Is(err, domain.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: err.Error()})
	case errors.As(err, &verr):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: verr.Error()})
	case errors.As(err, &ferr):
		log.Error().Err(err).Str("path", ferr.Path).Str("route", c.Path()).Msg("documento de importación inválido")
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "IMPORT_FORMAT", Message: ferr.Error()})
	case errors.As(err, &ierr):
		log.Error().Err(err).Str("route", c.Path()).Msg("referencia rota en el entity store")
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTEGRITY", Message: "estado inconsistente de los datos"})
	case errors.Is(err, domain.ErrForbidden):
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "acceso denegado al recurso"})
	case errors.As(err, &fe):
		return c.Status(fe.Code).JSON(dto.ErrorResponse{Code: "HTTP", Message: fe.Message})
	}
	log.Error().Err(err).Str("route", c.Path()).Msg("error interno")
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "error interno del servidor"})
}

// ErrorHandler manejador de errores de Fiber para lo que llega sin traducir (rutas inexistentes, panics).
func ErrorHandler(log *logger.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		return writeError(c, log, err)
	}
}

func badBody(c *fiber.Ctx) error {
	return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
}

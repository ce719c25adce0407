package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"

	"github.com/jhoicas/inventario-stock/internal/application/dto"
	"github.com/jhoicas/inventario-stock/internal/domain"
)

// Códigos de error devueltos en dto.ErrorResponse.
const (
	CodeValidation       = "VALIDATION"
	CodeIDExists         = "ID_EXISTS"
	CodeIDNull           = "ID_NULL"
	CodeInvalidReference = "INVALID_REFERENCE"
	CodeInvalidParam     = "INVALID_PARAM"
	CodeInvalidBody      = "INVALID_BODY"
	CodeNotFound         = "NOT_FOUND"
	CodeInternal         = "INTERNAL"
)

// writeError traduce un error de la capa de aplicación a status HTTP y cuerpo de error.
func writeError(c *fiber.Ctx, err error) error {
	var verr *dto.ValidationError
	switch {
	case errors.As(err, &verr):
		return sendError(c, fiber.StatusBadRequest, CodeValidation, verr.Error())
	case errors.Is(err, domain.ErrIDAlreadySet):
		return sendError(c, fiber.StatusBadRequest, CodeIDExists, "un stock nuevo no puede tener id")
	case errors.Is(err, domain.ErrIDRequired):
		return sendError(c, fiber.StatusBadRequest, CodeIDNull, "id requerido")
	case errors.Is(err, domain.ErrInvalidReference):
		return sendError(c, fiber.StatusBadRequest, CodeInvalidReference, "productoId no corresponde a un producto existente")
	case errors.Is(err, domain.ErrInvalidInput):
		return sendError(c, fiber.StatusBadRequest, CodeInvalidParam, err.Error())
	case errors.Is(err, domain.ErrNotFound):
		return sendError(c, fiber.StatusNotFound, CodeNotFound, "recurso no encontrado")
	}

	log.Error().Err(err).
		Str("request_id", GetRequestID(c)).
		Str("method", c.Method()).
		Str("path", c.Path()).
		Msg("error no controlado")
	return sendError(c, fiber.StatusInternalServerError, CodeInternal, "error interno")
}

func sendError(c *fiber.Ctx, status int, code, msg string) error {
	return c.Status(status).JSON(dto.ErrorResponse{Code: code, Message: msg})
}

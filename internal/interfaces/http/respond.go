package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/smart-asset/smart-asset-api/internal/application/dto"
	"github.com/smart-asset/smart-asset-api/internal/domain"
)

// handleError mapea errores de dominio a respuestas HTTP. Los fallos del
// store y cualquier error no clasificado responden 500 genérico sin
// filtrar detalle interno al cliente.
func handleError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, domain.ErrInvalidInput):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "entrada inválida"})
	case errors.Is(err, domain.ErrInvalidRole):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_ROLE", Message: "rol inválido: use HR, EMPLOYEE o ADMIN"})
	case errors.Is(err, domain.ErrNotFound), errors.Is(err, domain.ErrUserNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "recurso no encontrado"})
	case errors.Is(err, domain.ErrDuplicate):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "DUPLICATE", Message: "el recurso ya existe"})
	case errors.Is(err, domain.ErrPendingLimit):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "PENDING_LIMIT", Message: "límite de solicitudes pendientes alcanzado"})
	case errors.Is(err, domain.ErrOutOfStock):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "OUT_OF_STOCK", Message: "el activo no tiene unidades disponibles"})
	case errors.Is(err, domain.ErrNotApproved):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "NOT_APPROVED", Message: "la solicitud no está aprobada"})
	case errors.Is(err, domain.ErrUnauthorized):
		return c.Status(fiber.StatusUnauthorized).JSON(dto.MessageResponse{Message: forbiddenMessage})
	case errors.Is(err, domain.ErrForbidden):
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "acceso denegado"})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "error interno"})
	}
}

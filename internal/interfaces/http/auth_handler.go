package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/smart-asset/smart-asset-api/internal/application/auth"
	"github.com/smart-asset/smart-asset-api/internal/application/dto"
)

// AuthHandler maneja la emisión de tokens (POST /jwt, público).
type AuthHandler struct {
	uc *auth.TokenUseCase
}

// NewAuthHandler construye el handler.
func NewAuthHandler(uc *auth.TokenUseCase) *AuthHandler {
	return &AuthHandler{uc: uc}
}

// IssueToken godoc
// @Summary      Emitir token de acceso
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.IssueTokenRequest  true  "Email del usuario"
// @Success      200   {object}  dto.IssueTokenResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /jwt [post]
func (h *AuthHandler) IssueToken(c *fiber.Ctx) error {
	var in dto.IssueTokenRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.Email == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "email es requerido"})
	}
	out, err := h.uc.IssueToken(in)
	if err != nil {
		return handleError(c, err)
	}
	return c.JSON(out)
}

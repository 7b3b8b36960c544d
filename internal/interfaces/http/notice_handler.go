package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/smart-asset/smart-asset-api/internal/application/dto"
	"github.com/smart-asset/smart-asset-api/internal/application/usecase"
)

// NoticeHandler maneja el aviso por empresa.
type NoticeHandler struct {
	uc *usecase.NoticeUseCase
}

// NewNoticeHandler construye el handler.
func NewNoticeHandler(uc *usecase.NoticeUseCase) *NoticeHandler {
	return &NoticeHandler{uc: uc}
}

// Upsert godoc
// @Summary      Publicar o reemplazar el aviso de la empresa
// @Tags         notice
// @Accept       json
// @Produce      json
// @Param        body  body  dto.UpsertNoticeRequest  true  "Aviso"
// @Success      200   {object}  dto.NoticeResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /notice [patch]
func (h *NoticeHandler) Upsert(c *fiber.Ctx) error {
	var in dto.UpsertNoticeRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.CompanyName == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "company_name es requerido"})
	}
	out, err := h.uc.Upsert(in)
	if err != nil {
		return handleError(c, err)
	}
	return c.JSON(out)
}

// Get godoc
// @Summary      Leer el aviso de la empresa
// @Tags         notice
// @Produce      json
// @Param        company  query  string  true  "Empresa"
// @Success      200      {object}  dto.NoticeResponse
// @Failure      404      {object}  dto.ErrorResponse
// @Router       /notice [get]
func (h *NoticeHandler) Get(c *fiber.Ctx) error {
	company := c.Query("company")
	if company == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_COMPANY", Message: "company es requerido"})
	}
	out, err := h.uc.Get(company)
	if err != nil {
		return handleError(c, err)
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "la empresa no tiene aviso"})
	}
	return c.JSON(out)
}

package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/smart-asset/smart-asset-api/internal/application/billing"
	"github.com/smart-asset/smart-asset-api/internal/application/dto"
	"github.com/smart-asset/smart-asset-api/internal/application/request"
)

// RequestHandler maneja las peticiones HTTP del ciclo de vida de
// solicitudes de activos.
type RequestHandler struct {
	uc         *request.UseCase
	handoverUC *billing.HandoverPDFUseCase
}

// NewRequestHandler construye el handler.
func NewRequestHandler(uc *request.UseCase, handoverUC *billing.HandoverPDFUseCase) *RequestHandler {
	return &RequestHandler{uc: uc, handoverUC: handoverUC}
}

// Submit godoc
// @Summary      Crear solicitud de activo
// @Tags         requests
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.SubmitRequestRequest  true  "Datos de la solicitud"
// @Success      201   {object}  dto.RequestResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /request [post]
func (h *RequestHandler) Submit(c *fiber.Ctx) error {
	var in dto.SubmitRequestRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.AssetID == "" || in.RequestorEmail == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "asset_id y requestor_email son requeridos"})
	}
	out, err := h.uc.Submit(c.Context(), in)
	if err != nil {
		return handleError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// ListByRequestor godoc
// @Summary      Solicitudes de un empleado
// @Tags         requests
// @Produce      json
// @Param        email  query  string  true  "Email del solicitante"
// @Success      200    {object}  dto.RequestListResponse
// @Router       /request [get]
func (h *RequestHandler) ListByRequestor(c *fiber.Ctx) error {
	email := c.Query("email")
	if email == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_EMAIL", Message: "email es requerido"})
	}
	out, err := h.uc.ListByRequestor(email)
	if err != nil {
		return handleError(c, err)
	}
	return c.JSON(out)
}

// SearchByRequestor godoc
// @Summary      Buscar solicitudes por email del solicitante
// @Tags         requests
// @Produce      json
// @Param        email  query  string  true  "Email del solicitante"
// @Success      200    {object}  dto.RequestListResponse
// @Router       /request-search [get]
func (h *RequestHandler) SearchByRequestor(c *fiber.Ctx) error {
	return h.ListByRequestor(c)
}

// SearchByAsset godoc
// @Summary      Buscar solicitudes por nombre de activo
// @Tags         requests
// @Produce      json
// @Param        company  query  string  true  "Empresa"
// @Param        name     query  string  true  "Texto a buscar en el nombre del activo"
// @Success      200      {object}  dto.RequestListResponse
// @Router       /request/search [get]
func (h *RequestHandler) SearchByAsset(c *fiber.Ctx) error {
	company := c.Query("company")
	if company == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_COMPANY", Message: "company es requerido"})
	}
	out, err := h.uc.SearchByAssetName(company, c.Query("name"))
	if err != nil {
		return handleError(c, err)
	}
	return c.JSON(out)
}

// ListPending godoc
// @Summary      Solicitudes pendientes de una empresa
// @Tags         requests
// @Produce      json
// @Param        company  query  string  true  "Empresa"
// @Success      200      {object}  dto.RequestListResponse
// @Router       /request/requested [get]
func (h *RequestHandler) ListPending(c *fiber.Ctx) error {
	company := c.Query("company")
	if company == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_COMPANY", Message: "company es requerido"})
	}
	out, err := h.uc.ListPending(company)
	if err != nil {
		return handleError(c, err)
	}
	return c.JSON(out)
}

// Stats godoc
// @Summary      Desglose porcentual returnable vs non-returnable
// @Tags         requests
// @Produce      json
// @Success      200  {object}  dto.RequestStatsResponse
// @Router       /request-stat [get]
func (h *RequestHandler) Stats(c *fiber.Ctx) error {
	out, err := h.uc.Stats()
	if err != nil {
		return handleError(c, err)
	}
	return c.JSON(out)
}

// Approve godoc
// @Summary      Aprobar solicitud
// @Tags         requests
// @Produce      json
// @Param        id  path  string  true  "ID de la solicitud"
// @Success      200  {object}  dto.RequestResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /request/approved/{id} [patch]
func (h *RequestHandler) Approve(c *fiber.Ctx) error {
	out, err := h.uc.Approve(c.Params("id"))
	if err != nil {
		return handleError(c, err)
	}
	return c.JSON(out)
}

// Reject godoc
// @Summary      Rechazar solicitud (vuelve a pending)
// @Tags         requests
// @Produce      json
// @Param        id  path  string  true  "ID de la solicitud"
// @Success      200  {object}  dto.RequestResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /request/rejected/{id} [patch]
func (h *RequestHandler) Reject(c *fiber.Ctx) error {
	out, err := h.uc.Reject(c.Context(), c.Params("id"))
	if err != nil {
		return handleError(c, err)
	}
	return c.JSON(out)
}

// Return godoc
// @Summary      Marcar solicitud aprobada como devuelta
// @Tags         requests
// @Produce      json
// @Param        id  path  string  true  "ID de la solicitud"
// @Success      200  {object}  dto.RequestResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /request/return/{id} [put]
func (h *RequestHandler) Return(c *fiber.Ctx) error {
	out, err := h.uc.Return(c.Params("id"))
	if err != nil {
		return handleError(c, err)
	}
	return c.JSON(out)
}

// Cancel godoc
// @Summary      Cancelar solicitud (empleado)
// @Tags         requests
// @Produce      json
// @Param        id  path  string  true  "ID de la solicitud"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /request/cancel/{id} [delete]
func (h *RequestHandler) Cancel(c *fiber.Ctx) error {
	if err := h.uc.Cancel(c.Params("id")); err != nil {
		return handleError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// Delete godoc
// @Summary      Eliminar solicitud (baja administrativa)
// @Tags         requests
// @Produce      json
// @Param        id  path  string  true  "ID de la solicitud"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /request/{id} [delete]
func (h *RequestHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Params("id")); err != nil {
		return handleError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// PrintHandover godoc
// @Summary      Acta de entrega (PDF) de una solicitud aprobada
// @Tags         requests
// @Produce      application/pdf
// @Param        id  path  string  true  "ID de la solicitud"
// @Success      200  {file}  binary
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /request/print/{id} [get]
func (h *RequestHandler) PrintHandover(c *fiber.Ctx) error {
	pdfBytes, filename, err := h.handoverUC.DownloadHandoverPDF(c.Context(), c.Params("id"))
	if err != nil {
		return handleError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	return c.Send(pdfBytes)
}

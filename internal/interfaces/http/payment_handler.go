package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/smart-asset/smart-asset-api/internal/application/billing"
	"github.com/smart-asset/smart-asset-api/internal/application/dto"
)

// PaymentHandler expone la creación de PaymentIntents de Stripe.
type PaymentHandler struct {
	uc *billing.PaymentUseCase
}

// NewPaymentHandler construye el handler.
func NewPaymentHandler(uc *billing.PaymentUseCase) *PaymentHandler {
	return &PaymentHandler{uc: uc}
}

// CreatePaymentIntent godoc
// @Summary      Crear un PaymentIntent para la compra de un paquete
// @Tags         payments
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreatePaymentIntentRequest  true  "Precio en USD"
// @Success      200   {object}  dto.CreatePaymentIntentResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /create-payment-intent [post]
func (h *PaymentHandler) CreatePaymentIntent(c *fiber.Ctx) error {
	var in dto.CreatePaymentIntentRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.CreatePaymentIntent(c.UserContext(), in)
	if err != nil {
		return handleError(c, err)
	}
	return c.JSON(out)
}

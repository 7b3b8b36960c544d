package billing

import (
	"context"

	"github.com/shopspring/decimal"
	"github.com/smart-asset/smart-asset-api/internal/application/dto"
	"github.com/smart-asset/smart-asset-api/internal/domain"
)

// paymentCurrency moneda de los paquetes de suscripción.
const paymentCurrency = "usd"

// PaymentUseCase crea el PaymentIntent para la compra de un paquete HR.
// Es un colaborador sin estado: el resultado (transaction_id) lo persiste
// después el cliente vía POST /users/hr.
type PaymentUseCase struct {
	provider PaymentProvider
}

// NewPaymentUseCase construye el caso de uso.
func NewPaymentUseCase(provider PaymentProvider) *PaymentUseCase {
	return &PaymentUseCase{provider: provider}
}

// CreatePaymentIntent valida el precio y pide el intent al procesador.
// Un precio ausente o no positivo es ErrInvalidInput (el handler responde
// 400 explícito, nunca un retorno silencioso).
func (uc *PaymentUseCase) CreatePaymentIntent(ctx context.Context, in dto.CreatePaymentIntentRequest) (*dto.CreatePaymentIntentResponse, error) {
	if !in.Price.GreaterThan(decimal.Zero) {
		return nil, domain.ErrInvalidInput
	}
	amountCents := in.Price.Mul(decimal.NewFromInt(100)).IntPart()
	secret, err := uc.provider.CreateIntent(ctx, amountCents, paymentCurrency)
	if err != nil {
		return nil, err
	}
	return &dto.CreatePaymentIntentResponse{ClientSecret: secret}, nil
}

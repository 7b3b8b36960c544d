// Package stripe adapta el procesador de pagos externo al puerto
// billing.PaymentProvider. Sin reintentos ni idempotency key: un fallo del
// procesador sube tal cual al caso de uso.
package stripe

import (
	"context"
	"fmt"

	"github.com/smart-asset/smart-asset-api/internal/application/billing"
	stripego "github.com/stripe/stripe-go/v82"
	"github.com/stripe/stripe-go/v82/client"
)

var _ billing.PaymentProvider = (*PaymentClient)(nil)

// PaymentClient cliente de PaymentIntents de Stripe.
type PaymentClient struct {
	api *client.API
}

// NewPaymentClient construye el cliente con la API secret key.
func NewPaymentClient(secretKey string) *PaymentClient {
	api := &client.API{}
	api.Init(secretKey, nil)
	return &PaymentClient{api: api}
}

// CreateIntent crea un PaymentIntent de pago único con tarjeta y devuelve
// el client secret para que el frontend lo confirme con Stripe.js.
func (c *PaymentClient) CreateIntent(ctx context.Context, amountCents int64, currency string) (string, error) {
	params := &stripego.PaymentIntentParams{
		Params:             stripego.Params{Context: ctx},
		Amount:             stripego.Int64(amountCents),
		Currency:           stripego.String(currency),
		PaymentMethodTypes: stripego.StringSlice([]string{"card"}),
	}
	intent, err := c.api.PaymentIntents.New(params)
	if err != nil {
		return "", fmt.Errorf("stripe: crear payment intent: %w", err)
	}
	return intent.ClientSecret, nil
}

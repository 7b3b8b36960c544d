package dto

import "github.com/shopspring/decimal"

// CreatePaymentIntentRequest body para POST /create-payment-intent.
// Price en unidades de moneda (USD); el adaptador lo convierte a centavos.
type CreatePaymentIntentRequest struct {
	Price decimal.Decimal `json:"price"`
}

// CreatePaymentIntentResponse client secret del PaymentIntent para que el
// frontend complete el pago con Stripe.js.
type CreatePaymentIntentResponse struct {
	ClientSecret string `json:"client_secret"`
}

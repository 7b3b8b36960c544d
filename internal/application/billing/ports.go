package billing

import (
	"context"
	"time"
)

// PaymentProvider crea intentos de pago en el procesador externo (Stripe).
// El adaptador recibe el monto en centavos; no aplica reintentos ni
// idempotency key.
type PaymentProvider interface {
	CreateIntent(ctx context.Context, amountCents int64, currency string) (clientSecret string, err error)
}

// HandoverData datos para el documento de entrega de un activo aprobado.
type HandoverData struct {
	RequestID      string
	AssetName      string
	AssetType      string
	RequestorName  string
	RequestorEmail string
	CompanyName    string
	RequestDate    time.Time
	ApprovalDate   time.Time
}

// HandoverPDFGenerator renderiza el documento de entrega.
type HandoverPDFGenerator interface {
	GenerateHandoverPDF(ctx context.Context, data HandoverData) ([]byte, error)
}

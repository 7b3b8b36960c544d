package entity

import "time"

// Estados de una solicitud de activo.
//
// Transiciones: pending → approved → returned. El rechazo no es un estado
// terminal: vuelve a pending con ApprovalDate en null, tal como lo hace el
// sistema original.
const (
	RequestPending  = "pending"
	RequestApproved = "approved"
	RequestReturned = "returned"
)

// Requestor snapshot del solicitante embebido en la solicitud. Se copia al
// crear la solicitud; un cambio posterior de perfil no reescribe el histórico.
type Requestor struct {
	Email       string
	Name        string
	CompanyName string
}

// Request solicitud de un activo por parte de un empleado. Crear la
// solicitud descuenta una unidad del activo en la misma transacción; la
// aprobación no vuelve a tocar inventario.
type Request struct {
	ID           string
	AssetID      string
	AssetName    string
	Requestor    Requestor
	Status       string // pending | approved | returned
	Type         string // returnable | non-returnable
	RequestDate  time.Time
	ApprovalDate *time.Time
	Note         string
}

package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Roles válidos para User. Enumeración cerrada: cualquier otro string se
// rechaza en la frontera del identity store con domain.ErrInvalidRole.
const (
	RoleHR       = "HR"
	RoleEmployee = "EMPLOYEE"
	RoleAdmin    = "ADMIN"
)

// ValidRole indica si role pertenece a la enumeración. La comparación del
// RBAC es case-sensitive, igual que aquí.
func ValidRole(role string) bool {
	switch role {
	case RoleHR, RoleEmployee, RoleAdmin:
		return true
	}
	return false
}

// User identidad del sistema. El email es la clave única: exactamente un
// registro por email. Members y PackagesRate solo aplican a registros HR y
// se acumulan con cada compra de paquete (merge aditivo por email).
type User struct {
	ID             string
	Email          string
	Name           string
	Role           string // HR, EMPLOYEE, ADMIN
	CompanyName    string
	CompanyLogo    string
	Verified       bool
	Members        int
	PackagesRate   decimal.Decimal
	TransactionID  string
	ExpirationDate *time.Time
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

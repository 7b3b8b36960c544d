package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// IssueTokenRequest body para POST /jwt. El email identifica al usuario;
// la autenticación primaria ocurre en el proveedor de identidad del cliente.
type IssueTokenRequest struct {
	Email string `json:"email"`
}

// IssueTokenResponse token firmado con vigencia de una hora.
type IssueTokenResponse struct {
	Token string `json:"token"`
}

// UpsertHRRequest body para POST /users/hr. Si el email ya existe, members
// y packages_rate se suman al registro existente y transaction_id /
// expiration_date se sobreescriben.
type UpsertHRRequest struct {
	Email          string          `json:"email"`
	Name           string          `json:"name"`
	CompanyName    string          `json:"company_name"`
	CompanyLogo    string          `json:"company_logo"`
	Members        int             `json:"members"`
	PackagesRate   decimal.Decimal `json:"packages_rate"`
	TransactionID  string          `json:"transaction_id"`
	ExpirationDate *time.Time      `json:"expiration_date"`
}

// RegisterEmployeeRequest body para POST /users/employee.
type RegisterEmployeeRequest struct {
	Email       string `json:"email"`
	Name        string `json:"name"`
	CompanyName string `json:"company_name"`
}

// RegisterEmployeeResponse indica si el registro se insertó o ya existía
// (el alta repetida es un éxito sintético, nunca duplica el registro).
type RegisterEmployeeResponse struct {
	User          *UserResponse `json:"user,omitempty"`
	AlreadyExists bool          `json:"already_exists"`
	Message       string        `json:"message"`
}

// UpdateProfileRequest body para PATCH /users/update (campos opcionales).
type UpdateProfileRequest struct {
	Email       string  `json:"email"`
	Name        *string `json:"name,omitempty"`
	CompanyName *string `json:"company_name,omitempty"`
	CompanyLogo *string `json:"company_logo,omitempty"`
}

// UserResponse salida de un usuario.
type UserResponse struct {
	ID             string          `json:"id"`
	Email          string          `json:"email"`
	Name           string          `json:"name"`
	Role           string          `json:"role"`
	CompanyName    string          `json:"company_name"`
	CompanyLogo    string          `json:"company_logo,omitempty"`
	Verified       bool            `json:"verified"`
	Members        int             `json:"members,omitempty"`
	PackagesRate   decimal.Decimal `json:"packages_rate,omitempty"`
	TransactionID  string          `json:"transaction_id,omitempty"`
	ExpirationDate *time.Time      `json:"expiration_date,omitempty"`
	CreatedAt      time.Time       `json:"created_at"`
	UpdatedAt      time.Time       `json:"updated_at"`
}

// RoleResponse salida de GET /users/role/:email. Role vacío significa que
// el email no existe; no es un error.
type RoleResponse struct {
	Role string `json:"role"`
}

// CompanyResponse nombre y logo de empresa de un registro HR
// (GET /users/company).
type CompanyResponse struct {
	CompanyName string `json:"company_name"`
	CompanyLogo string `json:"company_logo"`
}

package repository

import "github.com/smart-asset/smart-asset-api/internal/domain/entity"

// UserRepository define el puerto de persistencia para User (DIP).
// GetByEmail devuelve (nil, nil) cuando el email no existe: los callers
// deben distinguir "sin usuario" de un error de infraestructura.
type UserRepository interface {
	Create(user *entity.User) error
	GetByID(id string) (*entity.User, error)
	GetByEmail(email string) (*entity.User, error)
	Update(user *entity.User) error
	Delete(id string) error
	// UpsertHRPurchase aplica una compra de paquete HR en UN solo statement
	// atómico: inserta el registro si el email no existe, o acumula
	// members/packages_rate sobre el existente y sobreescribe
	// transaction_id/expiration_date. Dos compras concurrentes del mismo HR
	// no pueden perder incrementos. Devuelve el registro resultante.
	UpsertHRPurchase(user *entity.User) (*entity.User, error)
	// ListHRCompanies devuelve los registros HR (nombre y logo de empresa).
	ListHRCompanies() ([]*entity.User, error)
	// ListEmployeesByCompany lista empleados de una empresa; con
	// onlyUnverified=true filtra los aún no verificados por HR.
	ListEmployeesByCompany(companyName string, onlyUnverified bool) ([]*entity.User, error)
	// DecrementMembers resta uno al contador members del HR de la empresa.
	DecrementMembers(companyName string) error
}

package repository

import "github.com/smart-asset/smart-asset-api/internal/domain/entity"

// RequestStats acumulado de solicitudes por tipo para GET /request-stat.
type RequestStats struct {
	Total         int
	Returnable    int
	NonReturnable int
}

// RequestRepository define el puerto de persistencia para Request.
type RequestRepository interface {
	Create(request *entity.Request) error
	GetByID(id string) (*entity.Request, error)
	Update(request *entity.Request) error
	Delete(id string) error
	// CountPending cuenta TODAS las solicitudes pendientes, sin filtrar por
	// empleado ni empresa. El tope de 5 es global (ver DESIGN.md).
	CountPending() (int, error)
	ListByRequestorEmail(email string) ([]*entity.Request, error)
	// SearchByAssetName filtra por nombre de activo dentro de la empresa.
	SearchByAssetName(companyName, name string) ([]*entity.Request, error)
	// ListPendingByCompany lista las solicitudes pendientes de una empresa.
	ListPendingByCompany(companyName string) ([]*entity.Request, error)
	Stats() (RequestStats, error)
}

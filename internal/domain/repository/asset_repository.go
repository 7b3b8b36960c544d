package repository

import "github.com/smart-asset/smart-asset-api/internal/domain/entity"

// AssetRepository define el puerto de persistencia para Asset.
type AssetRepository interface {
	Create(asset *entity.Asset) error
	GetByID(id string) (*entity.Asset, error)
	Update(asset *entity.Asset) error
	Delete(id string) error
	ListByCompany(companyName string, limit, offset int) ([]*entity.Asset, error)
	// SearchByName filtra por product_name (ILIKE) dentro de la empresa.
	SearchByName(companyName, name string, limit, offset int) ([]*entity.Asset, error)
	// DecrementIfAvailable descuenta una unidad solo si quantity > 0, en un
	// único statement condicional. Devuelve false si no había unidades.
	DecrementIfAvailable(id string) (bool, error)
	// Increment devuelve una unidad al inventario (política restoreOnReject).
	Increment(id string) error
}

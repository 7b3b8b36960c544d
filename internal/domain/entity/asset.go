package entity

import "time"

// Tipos de producto de un Asset. El tipo decide si la solicitud asociada
// es retornable o no retornable.
const (
	AssetReturnable    = "returnable"
	AssetNonReturnable = "non-returnable"
)

// Estados de disponibilidad derivados de la cantidad.
const (
	AssetAvailable  = "Available"
	AssetOutOfStock = "Out of stock"
)

// Asset ítem de inventario de una empresa. CompanyName es la frontera de
// tenencia: toda consulta filtra por empresa, no hay particiones físicas.
// Quantity solo se descuenta vía update condicional (quantity > 0), por lo
// que nunca queda negativa.
type Asset struct {
	ID          string
	ProductName string
	ProductType string // returnable | non-returnable
	Status      string // Available | Out of stock
	Quantity    int
	CompanyName string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// StatusForQuantity devuelve el estado de disponibilidad según la cantidad.
func StatusForQuantity(quantity int) string {
	if quantity > 0 {
		return AssetAvailable
	}
	return AssetOutOfStock
}

package dto

import "time"

// CreateAssetRequest body para POST /assets.
type CreateAssetRequest struct {
	ProductName string `json:"product_name"`
	ProductType string `json:"product_type"` // returnable | non-returnable
	Quantity    int    `json:"quantity"`
	CompanyName string `json:"company_name"`
}

// UpdateAssetRequest body para PATCH /assets/:id (campos opcionales).
type UpdateAssetRequest struct {
	ProductName *string `json:"product_name,omitempty"`
	ProductType *string `json:"product_type,omitempty"`
	Quantity    *int    `json:"quantity,omitempty"`
}

// AssetResponse salida de un activo.
type AssetResponse struct {
	ID          string    `json:"id"`
	ProductName string    `json:"product_name"`
	ProductType string    `json:"product_type"`
	Status      string    `json:"status"`
	Quantity    int       `json:"quantity"`
	CompanyName string    `json:"company_name"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// AssetListResponse listado paginado de activos.
type AssetListResponse struct {
	Items []AssetResponse `json:"items"`
	Count int             `json:"count"`
}

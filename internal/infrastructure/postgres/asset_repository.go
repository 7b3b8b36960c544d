package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/smart-asset/smart-asset-api/internal/domain/entity"
	"github.com/smart-asset/smart-asset-api/internal/domain/repository"
)

var _ repository.AssetRepository = (*AssetRepo)(nil)

const assetColumns = `id, product_name, product_type, status, quantity, company_name, created_at, updated_at`

// AssetRepo implementación de AssetRepository sobre PostgreSQL (usable con
// pool o tx).
type AssetRepo struct {
	q Querier
}

// NewAssetRepository construye el adaptador de activos. Pasar pool o tx (Querier).
func NewAssetRepository(q Querier) *AssetRepo {
	return &AssetRepo{q: q}
}

// Create persiste un nuevo activo.
func (r *AssetRepo) Create(asset *entity.Asset) error {
	query := `
		INSERT INTO assets (id, product_name, product_type, status, quantity, company_name, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(context.Background(), query,
		asset.ID, asset.ProductName, asset.ProductType, asset.Status,
		asset.Quantity, asset.CompanyName, asset.CreatedAt, asset.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert asset: %w", err)
	}
	return nil
}

// GetByID obtiene un activo por ID. (nil, nil) si no existe.
func (r *AssetRepo) GetByID(id string) (*entity.Asset, error) {
	query := `SELECT ` + assetColumns + ` FROM assets WHERE id = $1`
	var a entity.Asset
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&a.ID, &a.ProductName, &a.ProductType, &a.Status, &a.Quantity,
		&a.CompanyName, &a.CreatedAt, &a.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get asset: %w", err)
	}
	return &a, nil
}

// Update actualiza un activo.
func (r *AssetRepo) Update(asset *entity.Asset) error {
	query := `
		UPDATE assets SET product_name = $2, product_type = $3, status = $4,
			quantity = $5, updated_at = $6
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		asset.ID, asset.ProductName, asset.ProductType, asset.Status,
		asset.Quantity, asset.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update asset: %w", err)
	}
	return nil
}

// Delete elimina un activo por ID.
func (r *AssetRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM assets WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete asset: %w", err)
	}
	return nil
}

// ListByCompany lista activos por empresa con paginación.
func (r *AssetRepo) ListByCompany(companyName string, limit, offset int) ([]*entity.Asset, error) {
	query := `
		SELECT ` + assetColumns + ` FROM assets
		WHERE company_name = $1 ORDER BY created_at DESC LIMIT $2 OFFSET $3`
	return r.scanList(query, companyName, limit, offset)
}

// SearchByName filtra por product_name (ILIKE) dentro de la empresa. El
// patrón de búsqueda del sistema original usaba regex sobre el documento;
// ILIKE con comodines cubre el mismo caso de uso (substring, sin
// distinción de mayúsculas).
func (r *AssetRepo) SearchByName(companyName, name string, limit, offset int) ([]*entity.Asset, error) {
	query := `
		SELECT ` + assetColumns + ` FROM assets
		WHERE company_name = $1 AND product_name ILIKE '%' || $2 || '%'
		ORDER BY created_at DESC LIMIT $3 OFFSET $4`
	return r.scanList(query, companyName, name, limit, offset)
}

func (r *AssetRepo) scanList(query string, args ...any) ([]*entity.Asset, error) {
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list assets: %w", err)
	}
	defer rows.Close()
	var list []*entity.Asset
	for rows.Next() {
		var a entity.Asset
		if err := rows.Scan(
			&a.ID, &a.ProductName, &a.ProductType, &a.Status, &a.Quantity,
			&a.CompanyName, &a.CreatedAt, &a.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan asset: %w", err)
		}
		list = append(list, &a)
	}
	return list, rows.Err()
}

// DecrementIfAvailable descuenta una unidad en un único statement
// condicional: solo si quantity > 0. Dos submits concurrentes contra la
// última unidad no pueden pasar ambos; el segundo no matchea el WHERE y
// recibe false.
func (r *AssetRepo) DecrementIfAvailable(id string) (bool, error) {
	query := `
		UPDATE assets
		SET quantity = quantity - 1,
			status = CASE WHEN quantity - 1 > 0 THEN $2 ELSE $3 END,
			updated_at = now()
		WHERE id = $1 AND quantity > 0`
	tag, err := r.q.Exec(context.Background(), query, id, entity.AssetAvailable, entity.AssetOutOfStock)
	if err != nil {
		return false, fmt.Errorf("decrement asset: %w", err)
	}
	return tag.RowsAffected() == 1, nil
}

// Increment devuelve una unidad al inventario (política restoreOnReject).
func (r *AssetRepo) Increment(id string) error {
	query := `
		UPDATE assets
		SET quantity = quantity + 1, status = $2, updated_at = now()
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query, id, entity.AssetAvailable)
	if err != nil {
		return fmt.Errorf("increment asset: %w", err)
	}
	return nil
}

package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/smart-asset/smart-asset-api/internal/domain/entity"
	"github.com/smart-asset/smart-asset-api/internal/domain/repository"
)

var _ repository.RequestRepository = (*RequestRepo)(nil)

const requestColumns = `id, asset_id, asset_name, requestor_email, requestor_name,
		requestor_company, status, type, request_date, approval_date, note`

// RequestRepo implementación de RequestRepository sobre PostgreSQL (usable
// con pool o tx). El snapshot del solicitante vive en columnas propias de
// la fila (requestor_*): el histórico no cambia si el perfil cambia.
type RequestRepo struct {
	q Querier
}

// NewRequestRepository construye el adaptador de solicitudes. Pasar pool o tx (Querier).
func NewRequestRepository(q Querier) *RequestRepo {
	return &RequestRepo{q: q}
}

// Create persiste una nueva solicitud.
func (r *RequestRepo) Create(request *entity.Request) error {
	query := `
		INSERT INTO requests (id, asset_id, asset_name, requestor_email, requestor_name,
			requestor_company, status, type, request_date, approval_date, note)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
	_, err := r.q.Exec(context.Background(), query,
		request.ID, request.AssetID, request.AssetName,
		request.Requestor.Email, request.Requestor.Name, request.Requestor.CompanyName,
		request.Status, request.Type, request.RequestDate, request.ApprovalDate, request.Note,
	)
	if err != nil {
		return fmt.Errorf("insert request: %w", err)
	}
	return nil
}

// GetByID obtiene una solicitud por ID. (nil, nil) si no existe.
func (r *RequestRepo) GetByID(id string) (*entity.Request, error) {
	query := `SELECT ` + requestColumns + ` FROM requests WHERE id = $1`
	var req entity.Request
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&req.ID, &req.AssetID, &req.AssetName,
		&req.Requestor.Email, &req.Requestor.Name, &req.Requestor.CompanyName,
		&req.Status, &req.Type, &req.RequestDate, &req.ApprovalDate, &req.Note,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get request: %w", err)
	}
	return &req, nil
}

// Update actualiza status, approval_date y note de una solicitud.
func (r *RequestRepo) Update(request *entity.Request) error {
	query := `
		UPDATE requests SET status = $2, approval_date = $3, note = $4
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		request.ID, request.Status, request.ApprovalDate, request.Note,
	)
	if err != nil {
		return fmt.Errorf("update request: %w", err)
	}
	return nil
}

// Delete elimina una solicitud por ID.
func (r *RequestRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM requests WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete request: %w", err)
	}
	return nil
}

// CountPending cuenta TODAS las solicitudes pendientes del sistema. El
// tope se evalúa global, sin filtrar por empleado ni empresa (fiel al
// original; ver DESIGN.md).
func (r *RequestRepo) CountPending() (int, error) {
	var count int
	err := r.q.QueryRow(context.Background(),
		`SELECT count(*) FROM requests WHERE status = $1`, entity.RequestPending,
	).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count pending requests: %w", err)
	}
	return count, nil
}

// ListByRequestorEmail lista solicitudes de un empleado.
func (r *RequestRepo) ListByRequestorEmail(email string) ([]*entity.Request, error) {
	query := `
		SELECT ` + requestColumns + ` FROM requests
		WHERE requestor_email = $1 ORDER BY request_date DESC`
	return r.scanList(query, email)
}

// SearchByAssetName filtra por nombre de activo dentro de la empresa.
func (r *RequestRepo) SearchByAssetName(companyName, name string) ([]*entity.Request, error) {
	query := `
		SELECT ` + requestColumns + ` FROM requests
		WHERE requestor_company = $1 AND asset_name ILIKE '%' || $2 || '%'
		ORDER BY request_date DESC`
	return r.scanList(query, companyName, name)
}

// ListPendingByCompany lista las solicitudes pendientes de una empresa.
func (r *RequestRepo) ListPendingByCompany(companyName string) ([]*entity.Request, error) {
	query := `
		SELECT ` + requestColumns + ` FROM requests
		WHERE requestor_company = $1 AND status = $2 ORDER BY request_date DESC`
	return r.scanList(query, companyName, entity.RequestPending)
}

func (r *RequestRepo) scanList(query string, args ...any) ([]*entity.Request, error) {
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list requests: %w", err)
	}
	defer rows.Close()
	var list []*entity.Request
	for rows.Next() {
		var req entity.Request
		if err := rows.Scan(
			&req.ID, &req.AssetID, &req.AssetName,
			&req.Requestor.Email, &req.Requestor.Name, &req.Requestor.CompanyName,
			&req.Status, &req.Type, &req.RequestDate, &req.ApprovalDate, &req.Note,
		); err != nil {
			return nil, fmt.Errorf("scan request: %w", err)
		}
		list = append(list, &req)
	}
	return list, rows.Err()
}

// Stats cuenta solicitudes por tipo en una sola consulta.
func (r *RequestRepo) Stats() (repository.RequestStats, error) {
	var stats repository.RequestStats
	query := `
		SELECT count(*),
			count(*) FILTER (WHERE type = $1),
			count(*) FILTER (WHERE type = $2)
		FROM requests`
	err := r.q.QueryRow(context.Background(), query,
		entity.AssetReturnable, entity.AssetNonReturnable,
	).Scan(&stats.Total, &stats.Returnable, &stats.NonReturnable)
	if err != nil {
		return repository.RequestStats{}, fmt.Errorf("request stats: %w", err)
	}
	return stats, nil
}

package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/smart-asset/smart-asset-api/internal/domain/entity"
	"github.com/smart-asset/smart-asset-api/internal/domain/repository"
)

var _ repository.NoticeRepository = (*NoticeRepo)(nil)

// NoticeRepo implementación de NoticeRepository sobre PostgreSQL.
type NoticeRepo struct {
	q Querier
}

// NewNoticeRepository construye el adaptador de avisos. Pasar pool o tx (Querier).
func NewNoticeRepository(q Querier) *NoticeRepo {
	return &NoticeRepo{q: q}
}

// Upsert inserta o reemplaza el aviso de la empresa (singleton por
// company_name).
func (r *NoticeRepo) Upsert(notice *entity.Notice) error {
	query := `
		INSERT INTO notices (company_name, notice, updated_at)
		VALUES ($1, $2, $3)
		ON CONFLICT (company_name)
		DO UPDATE SET notice = EXCLUDED.notice, updated_at = EXCLUDED.updated_at`
	_, err := r.q.Exec(context.Background(), query,
		notice.CompanyName, notice.Text, notice.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("upsert notice: %w", err)
	}
	return nil
}

// GetByCompany devuelve el aviso de la empresa, o (nil, nil) si no existe.
func (r *NoticeRepo) GetByCompany(companyName string) (*entity.Notice, error) {
	query := `SELECT company_name, notice, updated_at FROM notices WHERE company_name = $1`
	var n entity.Notice
	err := r.q.QueryRow(context.Background(), query, companyName).Scan(
		&n.CompanyName, &n.Text, &n.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get notice: %w", err)
	}
	return &n, nil
}

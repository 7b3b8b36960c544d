package repository

import "github.com/smart-asset/smart-asset-api/internal/domain/entity"

// NoticeRepository define el puerto de persistencia para Notice.
type NoticeRepository interface {
	// Upsert inserta o reemplaza el aviso de la empresa (singleton).
	Upsert(notice *entity.Notice) error
	// GetByCompany devuelve (nil, nil) si la empresa no tiene aviso.
	GetByCompany(companyName string) (*entity.Notice, error)
}

package usecase

import (
	"time"

	"github.com/smart-asset/smart-asset-api/internal/application/dto"
	"github.com/smart-asset/smart-asset-api/internal/domain"
	"github.com/smart-asset/smart-asset-api/internal/domain/entity"
	"github.com/smart-asset/smart-asset-api/internal/domain/repository"
)

// NoticeUseCase aviso singleton por empresa: HR publica, todos leen.
type NoticeUseCase struct {
	repo repository.NoticeRepository
}

// NewNoticeUseCase construye el caso de uso.
func NewNoticeUseCase(repo repository.NoticeRepository) *NoticeUseCase {
	return &NoticeUseCase{repo: repo}
}

// Upsert inserta o reemplaza el aviso de la empresa.
func (uc *NoticeUseCase) Upsert(in dto.UpsertNoticeRequest) (*dto.NoticeResponse, error) {
	if in.CompanyName == "" {
		return nil, domain.ErrInvalidInput
	}
	notice := &entity.Notice{
		CompanyName: in.CompanyName,
		Text:        in.Notice,
		UpdatedAt:   time.Now(),
	}
	if err := uc.repo.Upsert(notice); err != nil {
		return nil, err
	}
	return toNoticeResponse(notice), nil
}

// Get devuelve el aviso de la empresa, o nil si no hay.
func (uc *NoticeUseCase) Get(companyName string) (*dto.NoticeResponse, error) {
	if companyName == "" {
		return nil, domain.ErrInvalidInput
	}
	notice, err := uc.repo.GetByCompany(companyName)
	if err != nil {
		return nil, err
	}
	if notice == nil {
		return nil, nil
	}
	return toNoticeResponse(notice), nil
}

func toNoticeResponse(n *entity.Notice) *dto.NoticeResponse {
	return &dto.NoticeResponse{
		CompanyName: n.CompanyName,
		Notice:      n.Text,
		UpdatedAt:   n.UpdatedAt,
	}
}

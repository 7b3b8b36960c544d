package usecase

import (
	"time"

	"github.com/google/uuid"
	"github.com/smart-asset/smart-asset-api/internal/application/dto"
	"github.com/smart-asset/smart-asset-api/internal/domain"
	"github.com/smart-asset/smart-asset-api/internal/domain/entity"
	"github.com/smart-asset/smart-asset-api/internal/domain/repository"
)

// AssetUseCase CRUD del inventario de activos, con alcance por empresa.
// Los descuentos de cantidad por solicitudes NO pasan por aquí: los hace
// el lifecycle de solicitudes con el update condicional transaccional.
type AssetUseCase struct {
	repo repository.AssetRepository
}

// NewAssetUseCase construye el caso de uso.
func NewAssetUseCase(repo repository.AssetRepository) *AssetUseCase {
	return &AssetUseCase{repo: repo}
}

// Create crea un activo. El status se deriva de la cantidad inicial.
func (uc *AssetUseCase) Create(in dto.CreateAssetRequest) (*dto.AssetResponse, error) {
	if in.ProductName == "" || in.CompanyName == "" {
		return nil, domain.ErrInvalidInput
	}
	if in.ProductType != entity.AssetReturnable && in.ProductType != entity.AssetNonReturnable {
		return nil, domain.ErrInvalidInput
	}
	if in.Quantity < 0 {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	asset := &entity.Asset{
		ID:          uuid.New().String(),
		ProductName: in.ProductName,
		ProductType: in.ProductType,
		Status:      entity.StatusForQuantity(in.Quantity),
		Quantity:    in.Quantity,
		CompanyName: in.CompanyName,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.repo.Create(asset); err != nil {
		return nil, err
	}
	return toAssetResponse(asset), nil
}

// GetByID obtiene un activo por ID.
func (uc *AssetUseCase) GetByID(id string) (*dto.AssetResponse, error) {
	asset, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if asset == nil {
		return nil, nil
	}
	return toAssetResponse(asset), nil
}

// Update actualiza campos del activo; al cambiar la cantidad se recalcula
// el status.
func (uc *AssetUseCase) Update(id string, in dto.UpdateAssetRequest) (*dto.AssetResponse, error) {
	asset, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if asset == nil {
		return nil, nil
	}
	if in.ProductName != nil {
		asset.ProductName = *in.ProductName
	}
	if in.ProductType != nil {
		if *in.ProductType != entity.AssetReturnable && *in.ProductType != entity.AssetNonReturnable {
			return nil, domain.ErrInvalidInput
		}
		asset.ProductType = *in.ProductType
	}
	if in.Quantity != nil {
		if *in.Quantity < 0 {
			return nil, domain.ErrInvalidInput
		}
		asset.Quantity = *in.Quantity
	}
	asset.Status = entity.StatusForQuantity(asset.Quantity)
	asset.UpdatedAt = time.Now()
	if err := uc.repo.Update(asset); err != nil {
		return nil, err
	}
	return toAssetResponse(asset), nil
}

// Delete elimina un activo.
func (uc *AssetUseCase) Delete(id string) error {
	asset, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if asset == nil {
		return domain.ErrNotFound
	}
	return uc.repo.Delete(id)
}

// List lista activos por empresa con paginación.
func (uc *AssetUseCase) List(companyName string, limit, offset int) (*dto.AssetListResponse, error) {
	list, err := uc.repo.ListByCompany(companyName, limit, offset)
	if err != nil {
		return nil, err
	}
	return toAssetListResponse(list), nil
}

// Search filtra activos por nombre de producto dentro de la empresa.
func (uc *AssetUseCase) Search(companyName, name string, limit, offset int) (*dto.AssetListResponse, error) {
	list, err := uc.repo.SearchByName(companyName, name, limit, offset)
	if err != nil {
		return nil, err
	}
	return toAssetListResponse(list), nil
}

func toAssetResponse(a *entity.Asset) *dto.AssetResponse {
	return &dto.AssetResponse{
		ID:          a.ID,
		ProductName: a.ProductName,
		ProductType: a.ProductType,
		Status:      a.Status,
		Quantity:    a.Quantity,
		CompanyName: a.CompanyName,
		CreatedAt:   a.CreatedAt,
		UpdatedAt:   a.UpdatedAt,
	}
}

func toAssetListResponse(list []*entity.Asset) *dto.AssetListResponse {
	items := make([]dto.AssetResponse, 0, len(list))
	for _, a := range list {
		items = append(items, *toAssetResponse(a))
	}
	return &dto.AssetListResponse{Items: items, Count: len(items)}
}

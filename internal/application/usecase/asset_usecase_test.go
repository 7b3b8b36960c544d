package usecase_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/smart-asset/smart-asset-api/internal/application/dto"
	"github.com/smart-asset/smart-asset-api/internal/application/usecase"
	"github.com/smart-asset/smart-asset-api/internal/domain"
	"github.com/smart-asset/smart-asset-api/internal/domain/entity"
)

type memAssetRepo struct {
	assets map[string]*entity.Asset
}

func newMemAssetRepo() *memAssetRepo {
	return &memAssetRepo{assets: make(map[string]*entity.Asset)}
}

func (r *memAssetRepo) Create(a *entity.Asset) error {
	r.assets[a.ID] = a
	return nil
}

func (r *memAssetRepo) GetByID(id string) (*entity.Asset, error) {
	a, ok := r.assets[id]
	if !ok {
		return nil, nil
	}
	copia := *a
	return &copia, nil
}

func (r *memAssetRepo) Update(a *entity.Asset) error {
	r.assets[a.ID] = a
	return nil
}

func (r *memAssetRepo) Delete(id string) error {
	delete(r.assets, id)
	return nil
}

func (r *memAssetRepo) ListByCompany(companyName string, _, _ int) ([]*entity.Asset, error) {
	var out []*entity.Asset
	for _, a := range r.assets {
		if a.CompanyName == companyName {
			out = append(out, a)
		}
	}
	return out, nil
}

func (r *memAssetRepo) SearchByName(string, string, int, int) ([]*entity.Asset, error) {
	return nil, nil
}

func (r *memAssetRepo) DecrementIfAvailable(id string) (bool, error) {
	a, ok := r.assets[id]
	if !ok || a.Quantity <= 0 {
		return false, nil
	}
	a.Quantity--
	return true, nil
}

func (r *memAssetRepo) Increment(id string) error {
	r.assets[id].Quantity++
	return nil
}

func TestAssetCreate_DerivaStatusDeLaCantidad(t *testing.T) {
	uc := usecase.NewAssetUseCase(newMemAssetRepo())

	conStock, err := uc.Create(dto.CreateAssetRequest{
		ProductName: "Monitor",
		ProductType: entity.AssetReturnable,
		Quantity:    4,
		CompanyName: "Acme",
	})
	require.NoError(t, err)
	assert.Equal(t, entity.AssetAvailable, conStock.Status)

	sinStock, err := uc.Create(dto.CreateAssetRequest{
		ProductName: "Teclado",
		ProductType: entity.AssetNonReturnable,
		Quantity:    0,
		CompanyName: "Acme",
	})
	require.NoError(t, err)
	assert.Equal(t, entity.AssetOutOfStock, sinStock.Status, "cantidad cero nace Out of stock")
}

func TestAssetCreate_ValidaTipoYCantidad(t *testing.T) {
	uc := usecase.NewAssetUseCase(newMemAssetRepo())

	_, err := uc.Create(dto.CreateAssetRequest{
		ProductName: "Monitor",
		ProductType: "prestado",
		Quantity:    1,
		CompanyName: "Acme",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "el tipo debe ser returnable o non-returnable")

	_, err = uc.Create(dto.CreateAssetRequest{
		ProductName: "Monitor",
		ProductType: entity.AssetReturnable,
		Quantity:    -1,
		CompanyName: "Acme",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "la cantidad no puede ser negativa")
}

// Al cambiar la cantidad vía PATCH el status se recalcula en ambas
// direcciones.
func TestAssetUpdate_RecalculaStatus(t *testing.T) {
	repo := newMemAssetRepo()
	uc := usecase.NewAssetUseCase(repo)

	created, err := uc.Create(dto.CreateAssetRequest{
		ProductName: "Monitor",
		ProductType: entity.AssetReturnable,
		Quantity:    2,
		CompanyName: "Acme",
	})
	require.NoError(t, err)

	cero := 0
	out, err := uc.Update(created.ID, dto.UpdateAssetRequest{Quantity: &cero})
	require.NoError(t, err)
	assert.Equal(t, entity.AssetOutOfStock, out.Status)

	tres := 3
	out, err = uc.Update(created.ID, dto.UpdateAssetRequest{Quantity: &tres})
	require.NoError(t, err)
	assert.Equal(t, entity.AssetAvailable, out.Status)
}

func TestAssetDelete_NoExiste(t *testing.T) {
	uc := usecase.NewAssetUseCase(newMemAssetRepo())

	err := uc.Delete("nope")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

package request

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/smart-asset/smart-asset-api/internal/application/dto"
	"github.com/smart-asset/smart-asset-api/internal/domain"
	"github.com/smart-asset/smart-asset-api/internal/domain/entity"
	"github.com/smart-asset/smart-asset-api/internal/domain/repository"
)

// maxPendingRequests tope de solicitudes pendientes. El conteo es GLOBAL
// (todas las empresas, todos los empleados), fiel al sistema original; el
// alcance por empleado quedó como pregunta abierta en DESIGN.md.
const maxPendingRequests = 5

// UseCase gestiona el ciclo de vida de solicitudes de activos:
// pending → approved → returned, con rechazo como vuelta a pending.
//
// Submit descuenta la unidad del inventario al CREAR la solicitud (no al
// aprobar), con un update condicional dentro de la misma transacción que
// inserta el registro: bajo N envíos concurrentes contra quantity=1,
// exactamente uno tiene éxito.
type UseCase struct {
	txRunner    TxRunner
	assetRepo   repository.AssetRepository
	requestRepo repository.RequestRepository
	policy      Policy
}

// NewUseCase construye el caso de uso.
func NewUseCase(
	txRunner TxRunner,
	assetRepo repository.AssetRepository,
	requestRepo repository.RequestRepository,
	policy Policy,
) *UseCase {
	return &UseCase{
		txRunner:    txRunner,
		assetRepo:   assetRepo,
		requestRepo: requestRepo,
		policy:      policy,
	}
}

// Submit crea una solicitud. Dentro de una transacción:
//  1. cuenta las pendientes globales; si exceden el tope, rechaza con
//     ErrPendingLimit sin mutar nada;
//  2. descuenta la unidad del activo solo si quantity > 0 (ErrOutOfStock
//     si no hay unidades);
//  3. inserta la solicitud con snapshot del solicitante, status=pending y
//     approval_date en null.
func (uc *UseCase) Submit(ctx context.Context, in dto.SubmitRequestRequest) (*dto.RequestResponse, error) {
	if in.AssetID == "" || in.RequestorEmail == "" {
		return nil, domain.ErrInvalidInput
	}

	var created *entity.Request
	err := uc.txRunner.Run(ctx, func(
		assetRepo repository.AssetRepository,
		requestRepo repository.RequestRepository,
	) error {
		pending, err := requestRepo.CountPending()
		if err != nil {
			return err
		}
		if pending > maxPendingRequests {
			return domain.ErrPendingLimit
		}

		asset, err := assetRepo.GetByID(in.AssetID)
		if err != nil {
			return err
		}
		if asset == nil {
			return domain.ErrNotFound
		}

		ok, err := assetRepo.DecrementIfAvailable(in.AssetID)
		if err != nil {
			return err
		}
		if !ok {
			return domain.ErrOutOfStock
		}

		req := &entity.Request{
			ID:        uuid.New().String(),
			AssetID:   asset.ID,
			AssetName: asset.ProductName,
			Requestor: entity.Requestor{
				Email:       in.RequestorEmail,
				Name:        in.RequestorName,
				CompanyName: in.CompanyName,
			},
			Status:      entity.RequestPending,
			Type:        asset.ProductType,
			RequestDate: time.Now(),
			Note:        in.Note,
		}
		if err := requestRepo.Create(req); err != nil {
			return err
		}
		created = req
		return nil
	})
	if err != nil {
		return nil, err
	}
	return toRequestResponse(created), nil
}

// Approve pasa la solicitud a approved y estampa approval_date. No vuelve
// a verificar inventario: la unidad se descontó al crear la solicitud.
func (uc *UseCase) Approve(id string) (*dto.RequestResponse, error) {
	req, err := uc.requestRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if req == nil {
		return nil, domain.ErrNotFound
	}
	now := time.Now()
	req.Status = entity.RequestApproved
	req.ApprovalDate = &now
	if err := uc.requestRepo.Update(req); err != nil {
		return nil, err
	}
	return toRequestResponse(req), nil
}

// Reject devuelve la solicitud a pending con approval_date en null (el
// rechazo no es un estado terminal). Con RestoreOnReject activo, la unidad
// regresa al inventario en la misma transacción.
func (uc *UseCase) Reject(ctx context.Context, id string) (*dto.RequestResponse, error) {
	var rejected *entity.Request
	err := uc.txRunner.Run(ctx, func(
		assetRepo repository.AssetRepository,
		requestRepo repository.RequestRepository,
	) error {
		req, err := requestRepo.GetByID(id)
		if err != nil {
			return err
		}
		if req == nil {
			return domain.ErrNotFound
		}
		req.Status = entity.RequestPending
		req.ApprovalDate = nil
		if err := requestRepo.Update(req); err != nil {
			return err
		}
		if uc.policy.RestoreOnReject {
			if err := assetRepo.Increment(req.AssetID); err != nil {
				return err
			}
		}
		rejected = req
		return nil
	})
	if err != nil {
		return nil, err
	}
	return toRequestResponse(rejected), nil
}

// Return pasa una solicitud aprobada a returned conservando approval_date.
// No devuelve la unidad al inventario (comportamiento observado; ver
// DESIGN.md).
func (uc *UseCase) Return(id string) (*dto.RequestResponse, error) {
	req, err := uc.requestRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if req == nil {
		return nil, domain.ErrNotFound
	}
	if req.Status != entity.RequestApproved {
		return nil, domain.ErrNotApproved
	}
	req.Status = entity.RequestReturned
	if err := uc.requestRepo.Update(req); err != nil {
		return nil, err
	}
	return toRequestResponse(req), nil
}

// Cancel elimina la solicitud (cancelación por el empleado). No restaura
// inventario.
func (uc *UseCase) Cancel(id string) error {
	return uc.remove(id)
}

// Delete elimina la solicitud (baja administrativa). No restaura
// inventario.
func (uc *UseCase) Delete(id string) error {
	return uc.remove(id)
}

func (uc *UseCase) remove(id string) error {
	req, err := uc.requestRepo.GetByID(id)
	if err != nil {
		return err
	}
	if req == nil {
		return domain.ErrNotFound
	}
	return uc.requestRepo.Delete(id)
}

// GetByID obtiene una solicitud.
func (uc *UseCase) GetByID(id string) (*dto.RequestResponse, error) {
	req, err := uc.requestRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if req == nil {
		return nil, nil
	}
	return toRequestResponse(req), nil
}

// ListByRequestor lista las solicitudes de un empleado por email.
func (uc *UseCase) ListByRequestor(email string) (*dto.RequestListResponse, error) {
	list, err := uc.requestRepo.ListByRequestorEmail(email)
	if err != nil {
		return nil, err
	}
	return toRequestListResponse(list), nil
}

// SearchByAssetName filtra solicitudes por nombre de activo en la empresa.
func (uc *UseCase) SearchByAssetName(companyName, name string) (*dto.RequestListResponse, error) {
	list, err := uc.requestRepo.SearchByAssetName(companyName, name)
	if err != nil {
		return nil, err
	}
	return toRequestListResponse(list), nil
}

// ListPending lista las solicitudes pendientes de una empresa.
func (uc *UseCase) ListPending(companyName string) (*dto.RequestListResponse, error) {
	list, err := uc.requestRepo.ListPendingByCompany(companyName)
	if err != nil {
		return nil, err
	}
	return toRequestListResponse(list), nil
}

// Stats calcula el desglose porcentual returnable vs non-returnable. Con
// cero solicitudes ambos porcentajes son 0: nunca NaN ni división por cero.
func (uc *UseCase) Stats() (*dto.RequestStatsResponse, error) {
	stats, err := uc.requestRepo.Stats()
	if err != nil {
		return nil, err
	}
	out := &dto.RequestStatsResponse{
		Total:                stats.Total,
		ReturnablePercent:    decimal.Zero,
		NonReturnablePercent: decimal.Zero,
	}
	if stats.Total == 0 {
		return out, nil
	}
	total := decimal.NewFromInt(int64(stats.Total))
	hundred := decimal.NewFromInt(100)
	out.ReturnablePercent = decimal.NewFromInt(int64(stats.Returnable)).Mul(hundred).Div(total).Round(2)
	out.NonReturnablePercent = decimal.NewFromInt(int64(stats.NonReturnable)).Mul(hundred).Div(total).Round(2)
	return out, nil
}

func toRequestResponse(r *entity.Request) *dto.RequestResponse {
	return &dto.RequestResponse{
		ID:             r.ID,
		AssetID:        r.AssetID,
		AssetName:      r.AssetName,
		RequestorEmail: r.Requestor.Email,
		RequestorName:  r.Requestor.Name,
		CompanyName:    r.Requestor.CompanyName,
		Status:         r.Status,
		Type:           r.Type,
		RequestDate:    r.RequestDate,
		ApprovalDate:   r.ApprovalDate,
		Note:           r.Note,
	}
}

func toRequestListResponse(list []*entity.Request) *dto.RequestListResponse {
	items := make([]dto.RequestResponse, 0, len(list))
	for _, r := range list {
		items = append(items, *toRequestResponse(r))
	}
	return &dto.RequestListResponse{Items: items, Count: len(items)}
}

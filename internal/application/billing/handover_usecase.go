package billing

import (
	"context"
	"fmt"

	"github.com/smart-asset/smart-asset-api/internal/domain"
	"github.com/smart-asset/smart-asset-api/internal/domain/entity"
	"github.com/smart-asset/smart-asset-api/internal/domain/repository"
)

// HandoverPDFUseCase genera el documento de entrega (PDF) de una solicitud
// aprobada: empresa, solicitante, activo y fecha de aprobación.
type HandoverPDFUseCase struct {
	requestRepo repository.RequestRepository
	assetRepo   repository.AssetRepository
	generator   HandoverPDFGenerator
}

// NewHandoverPDFUseCase construye el caso de uso.
func NewHandoverPDFUseCase(
	requestRepo repository.RequestRepository,
	assetRepo repository.AssetRepository,
	generator HandoverPDFGenerator,
) *HandoverPDFUseCase {
	return &HandoverPDFUseCase{
		requestRepo: requestRepo,
		assetRepo:   assetRepo,
		generator:   generator,
	}
}

// DownloadHandoverPDF genera el PDF de entrega.
//
// Retorna:
//   - (pdfBytes, filename, nil)  si todo sale bien.
//   - domain.ErrNotFound         si la solicitud no existe.
//   - domain.ErrNotApproved      si la solicitud aún no está aprobada.
func (uc *HandoverPDFUseCase) DownloadHandoverPDF(ctx context.Context, requestID string) (pdfBytes []byte, filename string, err error) {
	req, err := uc.requestRepo.GetByID(requestID)
	if err != nil {
		return nil, "", fmt.Errorf("handover: obtener solicitud: %w", err)
	}
	if req == nil {
		return nil, "", domain.ErrNotFound
	}
	if req.Status != entity.RequestApproved || req.ApprovalDate == nil {
		return nil, "", domain.ErrNotApproved
	}

	data := HandoverData{
		RequestID:      req.ID,
		AssetName:      req.AssetName,
		AssetType:      req.Type,
		RequestorName:  req.Requestor.Name,
		RequestorEmail: req.Requestor.Email,
		CompanyName:    req.Requestor.CompanyName,
		RequestDate:    req.RequestDate,
		ApprovalDate:   *req.ApprovalDate,
	}
	// El nombre del activo puede haber cambiado después del snapshot; para
	// el documento de entrega vale el nombre actual si el activo aún existe.
	if asset, err := uc.assetRepo.GetByID(req.AssetID); err == nil && asset != nil {
		data.AssetName = asset.ProductName
		data.AssetType = asset.ProductType
	}

	pdfBytes, err = uc.generator.GenerateHandoverPDF(ctx, data)
	if err != nil {
		return nil, "", fmt.Errorf("handover: generar PDF: %w", err)
	}
	return pdfBytes, fmt.Sprintf("handover-%s.pdf", req.ID), nil
}

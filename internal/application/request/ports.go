package request

import (
	"context"

	"github.com/smart-asset/smart-asset-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando
// repositorios atados a esa tx. Garantiza que el descuento de inventario y
// la inserción de la solicitud sean una sola operación: o ambas quedan, o
// ninguna.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		assetRepo repository.AssetRepository,
		requestRepo repository.RequestRepository,
	) error) error
}

// Policy política configurable del ciclo de vida.
//
// RestoreOnReject: el sistema histórico nunca devolvía la unidad al
// inventario al rechazar (ni al retornar, ni al cancelar). El flag permite
// corregirlo para el caso de rechazo; retorno y cancelación conservan el
// comportamiento observado.
type Policy struct {
	RestoreOnReject bool
}

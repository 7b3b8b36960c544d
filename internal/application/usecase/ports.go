package usecase

import (
	"context"

	"github.com/smart-asset/smart-asset-api/internal/domain/repository"
)

// UserTxRunner ejecuta una función dentro de una transacción de BD con un
// UserRepository atado a esa transacción. Garantiza que borrar un empleado
// y descontar el contador members del HR sea una sola operación atómica.
type UserTxRunner interface {
	RunUsers(ctx context.Context, fn func(userRepo repository.UserRepository) error) error
}

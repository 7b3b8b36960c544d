package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/smart-asset/smart-asset-api/internal/application/request"
	"github.com/smart-asset/smart-asset-api/internal/application/usecase"
	"github.com/smart-asset/smart-asset-api/internal/domain/repository"
)

// Ensure TxRunner implements request.TxRunner and usecase.UserTxRunner.
var _ request.TxRunner = (*TxRunner)(nil)
var _ usecase.UserTxRunner = (*TxRunner)(nil)

// TxRunner ejecuta callbacks dentro de una transacción PostgreSQL.
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner construye el runner con el pool.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// Run inicia una transacción, ejecuta fn con repos de activos y solicitudes
// atados a la tx y hace Commit o Rollback. Es la garantía de que descuento
// de inventario e inserción de solicitud queden como una sola operación.
func (r *TxRunner) Run(ctx context.Context, fn func(
	assetRepo repository.AssetRepository,
	requestRepo repository.RequestRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	assetRepo := NewAssetRepository(tx)
	requestRepo := NewRequestRepository(tx)

	if err := fn(assetRepo, requestRepo); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

// RunUsers inicia una transacción con el repo de usuarios (baja de empleado
// + ajuste del contador members del HR en un solo commit).
func (r *TxRunner) RunUsers(ctx context.Context, fn func(
	userRepo repository.UserRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := fn(NewUserRepository(tx)); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

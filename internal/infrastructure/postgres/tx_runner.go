package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jhoicas/InnovationMap-api/internal/application/usecase"
	"github.com/jhoicas/InnovationMap-api/internal/domain/repository"
)

// Ensure TxRunner implements usecase.ConvocatoriaTxRunner and usecase.CompanyTxRunner.
var (
	_ usecase.ConvocatoriaTxRunner = (*TxRunner)(nil)
	_ usecase.CompanyTxRunner      = (*TxRunner)(nil)
)

// TxRunner ejecuta callbacks dentro de una transacción PostgreSQL.
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner construye el runner con el pool.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// RunConvocatoria ejecuta fn con un repo de convocatorias atado a la tx (lectura con bloqueo + escritura).
func (r *TxRunner) RunConvocatoria(ctx context.Context, fn func(repo repository.ConvocatoriaRepository) error) error {
	return r.run(ctx, func(tx pgx.Tx) error {
		return fn(NewConvocatoriaRepository(tx))
	})
}

// RunCompany ejecuta fn con repos de empresas y convocatorias atados a la misma tx (borrado de empresa).
func (r *TxRunner) RunCompany(ctx context.Context, fn func(
	companyRepo repository.CompanyRepository,
	convocatoriaRepo repository.ConvocatoriaRepository,
) error) error {
	return r.run(ctx, func(tx pgx.Tx) error {
		return fn(NewCompanyRepository(tx), NewConvocatoriaRepository(tx))
	})
}

// run inicia una transacción, ejecuta fn y hace Commit o Rollback.
func (r *TxRunner) run(ctx context.Context, fn func(tx pgx.Tx) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := fn(tx); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

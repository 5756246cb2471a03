package usecase

import (
	"context"

	"github.com/jhoicas/InnovationMap-api/internal/domain/repository"
)

// ConvocatoriaTxRunner ejecuta fn dentro de una transacción con el repositorio atado a la tx.
// Da atomicidad al leer-modificar-escribir de (estado, estado_manual, updated_at).
type ConvocatoriaTxRunner interface {
	RunConvocatoria(ctx context.Context, fn func(repo repository.ConvocatoriaRepository) error) error
}

// CompanyTxRunner ejecuta fn en una transacción con repos de empresas y convocatorias.
type CompanyTxRunner interface {
	RunCompany(ctx context.Context, fn func(
		companyRepo repository.CompanyRepository,
		convocatoriaRepo repository.ConvocatoriaRepository,
	) error) error
}

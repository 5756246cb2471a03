package repository

import (
	"context"

	"github.com/jhoicas/InnovationMap-api/internal/domain/entity"
)

// CompanyRepository define el puerto de persistencia para Company (DIP).
// La implementación vive en infrastructure.
type CompanyRepository interface {
	Create(ctx context.Context, company *entity.Company) error
	GetByID(ctx context.Context, id string) (*entity.Company, error)
	Exists(ctx context.Context, id string) (bool, error)
	Update(ctx context.Context, company *entity.Company) error
	List(ctx context.Context, limit, offset int) ([]*entity.Company, error)
	ListSummaries(ctx context.Context) ([]*entity.CompanySummary, error)
	Delete(ctx context.Context, id string) error
}

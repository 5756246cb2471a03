package repository

import (
	"context"
	"time"

	"github.com/jhoicas/InnovationMap-api/internal/domain/convocatoria"
	"github.com/jhoicas/InnovationMap-api/internal/domain/entity"
)

// ConvocatoriaRepository define el puerto de persistencia para Convocatoria.
// Los listados se ordenan por created_at descendente e incluyen la empresa convocante.
type ConvocatoriaRepository interface {
	Create(ctx context.Context, c *entity.Convocatoria) error
	GetByID(ctx context.Context, id string) (*entity.Convocatoria, error)
	// GetForUpdate obtiene la convocatoria y bloquea la fila (usar dentro de una tx).
	GetForUpdate(ctx context.Context, id string) (*entity.Convocatoria, error)
	Update(ctx context.Context, c *entity.Convocatoria) error
	Delete(ctx context.Context, id string) (bool, error)
	List(ctx context.Context) ([]*entity.Convocatoria, error)
	ListByEstado(ctx context.Context, estado convocatoria.Estado) ([]*entity.Convocatoria, error)
	// ListActiveAt devuelve las convocatorias cuya ventana contiene now (independiente del estado guardado).
	ListActiveAt(ctx context.Context, now time.Time) ([]*entity.Convocatoria, error)
	ListByCompany(ctx context.Context, companyID string) ([]*entity.Convocatoria, error)
	ClearCompany(ctx context.Context, companyID string) (int64, error)
}

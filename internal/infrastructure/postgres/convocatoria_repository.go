package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jhoicas/InnovationMap-api/internal/domain"
	"github.com/jhoicas/InnovationMap-api/internal/domain/convocatoria"
	"github.com/jhoicas/InnovationMap-api/internal/domain/entity"
	"github.com/jhoicas/InnovationMap-api/internal/domain/repository"
)

var _ repository.ConvocatoriaRepository = (*ConvocatoriaRepo)(nil)

// ConvocatoriaRepo implementación de ConvocatoriaRepository sobre PostgreSQL (usable con pool o tx).
type ConvocatoriaRepo struct {
	q Querier
}

// NewConvocatoriaRepository construye el adaptador. Pasar pool o tx (Querier).
func NewConvocatoriaRepository(q Querier) *ConvocatoriaRepo {
	return &ConvocatoriaRepo{q: q}
}

// Los listados traen la empresa convocante vía LEFT JOIN.
const convocatoriaSelect = `
	SELECT c.id, c.titulo, c.descripcion, c.fecha_inicio, c.fecha_fin, c.categoria, c.entidad,
	       c.company_id, c.presupuesto, c.estado, c.estado_manual, c.requisitos, c.created_at, c.updated_at,
	       co.id, co.name, co.sector, co.logo_url, co.description
	  FROM convocatorias c
	  LEFT JOIN companies co ON co.id = c.company_id`

// Create persiste una nueva convocatoria.
func (r *ConvocatoriaRepo) Create(ctx context.Context, c *entity.Convocatoria) error {
	query := `
		INSERT INTO convocatorias (id, titulo, descripcion, fecha_inicio, fecha_fin, categoria, entidad,
		                           company_id, presupuesto, estado, estado_manual, requisitos, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)`
	_, err := r.q.Exec(ctx, query,
		c.ID, c.Titulo, c.Descripcion, c.FechaInicio, c.FechaFin, c.Categoria, c.Entidad,
		c.CompanyID, c.Presupuesto, c.Estado.String(), c.EstadoManual, c.Requisitos, c.CreatedAt, c.UpdatedAt,
	)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrCompanyNotFound
		}
		return fmt.Errorf("insert convocatoria: %w", err)
	}
	return nil
}

// GetByID obtiene una convocatoria por ID.
func (r *ConvocatoriaRepo) GetByID(ctx context.Context, id string) (*entity.Convocatoria, error) {
	return r.getOne(ctx, convocatoriaSelect+` WHERE c.id = $1`, id)
}

// GetForUpdate obtiene la convocatoria y bloquea su fila (SELECT ... FOR UPDATE OF c).
func (r *ConvocatoriaRepo) GetForUpdate(ctx context.Context, id string) (*entity.Convocatoria, error) {
	return r.getOne(ctx, convocatoriaSelect+` WHERE c.id = $1 FOR UPDATE OF c`, id)
}

func (r *ConvocatoriaRepo) getOne(ctx context.Context, query, id string) (*entity.Convocatoria, error) {
	c, err := scanConvocatoria(r.q.QueryRow(ctx, query, id))
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get convocatoria: %w", err)
	}
	return c, nil
}

// Update reescribe la fila completa.
func (r *ConvocatoriaRepo) Update(ctx context.Context, c *entity.Convocatoria) error {
	query := `
		UPDATE convocatorias
		   SET titulo = $2, descripcion = $3, fecha_inicio = $4, fecha_fin = $5, categoria = $6, entidad = $7,
		       company_id = $8, presupuesto = $9, estado = $10, estado_manual = $11, requisitos = $12,
		       updated_at = $13
		 WHERE id = $1`
	cmd, err := r.q.Exec(ctx, query,
		c.ID, c.Titulo, c.Descripcion, c.FechaInicio, c.FechaFin, c.Categoria, c.Entidad,
		c.CompanyID, c.Presupuesto, c.Estado.String(), c.EstadoManual, c.Requisitos, c.UpdatedAt,
	)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrCompanyNotFound
		}
		return fmt.Errorf("update convocatoria: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete elimina una convocatoria; false si no existía.
func (r *ConvocatoriaRepo) Delete(ctx context.Context, id string) (bool, error) {
	cmd, err := r.q.Exec(ctx, `DELETE FROM convocatorias WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("delete convocatoria: %w", err)
	}
	return cmd.RowsAffected() > 0, nil
}

// List devuelve todas las convocatorias, más recientes primero.
func (r *ConvocatoriaRepo) List(ctx context.Context) ([]*entity.Convocatoria, error) {
	return r.list(ctx, convocatoriaSelect+` ORDER BY c.created_at DESC`)
}

// ListByEstado filtra por el estado guardado.
func (r *ConvocatoriaRepo) ListByEstado(ctx context.Context, estado convocatoria.Estado) ([]*entity.Convocatoria, error) {
	return r.list(ctx, convocatoriaSelect+` WHERE c.estado = $1 ORDER BY c.created_at DESC`, estado.String())
}

// ListActiveAt devuelve las convocatorias con fecha_inicio <= now <= fecha_fin.
func (r *ConvocatoriaRepo) ListActiveAt(ctx context.Context, now time.Time) ([]*entity.Convocatoria, error) {
	return r.list(ctx, convocatoriaSelect+`
		WHERE c.fecha_inicio <= $1 AND c.fecha_fin >= $1
		ORDER BY c.fecha_fin ASC`, now.UTC())
}

// ListByCompany lista las convocatorias de una empresa.
func (r *ConvocatoriaRepo) ListByCompany(ctx context.Context, companyID string) ([]*entity.Convocatoria, error) {
	return r.list(ctx, convocatoriaSelect+` WHERE c.company_id = $1 ORDER BY c.created_at DESC`, companyID)
}

// ClearCompany desvincula las convocatorias de una empresa (company_id = NULL) y devuelve cuántas.
func (r *ConvocatoriaRepo) ClearCompany(ctx context.Context, companyID string) (int64, error) {
	cmd, err := r.q.Exec(ctx, `UPDATE convocatorias SET company_id = NULL WHERE company_id = $1`, companyID)
	if err != nil {
		return 0, fmt.Errorf("clear convocatoria company: %w", err)
	}
	return cmd.RowsAffected(), nil
}

func (r *ConvocatoriaRepo) list(ctx context.Context, query string, args ...any) ([]*entity.Convocatoria, error) {
	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list convocatorias: %w", err)
	}
	defer rows.Close()

	list := make([]*entity.Convocatoria, 0)
	for rows.Next() {
		c, err := scanConvocatoria(rows)
		if err != nil {
			return nil, fmt.Errorf("scan convocatoria: %w", err)
		}
		list = append(list, c)
	}
	return list, rows.Err()
}

func scanConvocatoria(row rowScanner) (*entity.Convocatoria, error) {
	var (
		c      entity.Convocatoria
		estado string
		// columnas de la empresa: NULL cuando company_id es NULL
		coID, coName, coSector, coLogo, coDesc *string
	)
	if err := row.Scan(
		&c.ID, &c.Titulo, &c.Descripcion, &c.FechaInicio, &c.FechaFin, &c.Categoria, &c.Entidad,
		&c.CompanyID, &c.Presupuesto, &estado, &c.EstadoManual, &c.Requisitos, &c.CreatedAt, &c.UpdatedAt,
		&coID, &coName, &coSector, &coLogo, &coDesc,
	); err != nil {
		return nil, err
	}
	e, err := convocatoria.ParseEstado(estado)
	if err != nil {
		return nil, fmt.Errorf("convocatoria %s: %w", c.ID, err)
	}
	c.Estado = e
	c.FechaInicio = utc(c.FechaInicio)
	c.FechaFin = utc(c.FechaFin)
	c.CreatedAt = utc(c.CreatedAt)
	c.UpdatedAt = utc(c.UpdatedAt)
	if c.Requisitos == nil {
		c.Requisitos = []string{}
	}
	if coID != nil {
		c.Company = &entity.CompanySummary{
			ID:          *coID,
			Name:        deref(coName),
			Sector:      deref(coSector),
			LogoURL:     deref(coLogo),
			Description: deref(coDesc),
		}
	}
	return &c, nil
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

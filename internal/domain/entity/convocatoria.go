package entity

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/InnovationMap-api/internal/domain/convocatoria"
)

// Convocatoria representa una oportunidad de financiación o colaboración con vigencia
// [FechaInicio, FechaFin]. Estado se calcula al escribir; si EstadoManual es true fue
// fijado por un administrador y no se recalcula hasta que se limpie.
type Convocatoria struct {
	ID           string
	Titulo       string
	Descripcion  string
	FechaInicio  time.Time
	FechaFin     time.Time
	Categoria    string
	Entidad      string
	CompanyID    *string         // referencia débil; se anula al borrar la empresa
	Company      *CompanySummary // solo lectura (join)
	Presupuesto  *decimal.Decimal
	Estado       convocatoria.Estado
	EstadoManual bool
	Requisitos   []string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Window devuelve la ventana de vigencia. Las fechas ya fueron validadas al escribir.
func (c *Convocatoria) Window() convocatoria.Window {
	return convocatoria.Window{Inicio: c.FechaInicio.UTC(), Fin: c.FechaFin.UTC()}
}

// Current devuelve el par (estado, estado_manual) persistido.
func (c *Convocatoria) Current() convocatoria.Current {
	return convocatoria.Current{Estado: c.Estado, Manual: c.EstadoManual}
}

// SetOutcome aplica el resultado del guardián de ciclo de vida.
func (c *Convocatoria) SetOutcome(o convocatoria.Outcome) {
	c.Estado = o.Estado
	c.EstadoManual = o.Manual
}

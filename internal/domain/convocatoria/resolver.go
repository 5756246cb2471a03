package convocatoria

import (
	"time"

	"github.com/jhoicas/InnovationMap-api/internal/domain"
)

// Window es la ventana de vigencia [Inicio, Fin] de una convocatoria, en UTC.
type Window struct {
	Inicio time.Time
	Fin    time.Time
}

// NewWindow normaliza ambos extremos a UTC con precisión de microsegundo (la de TIMESTAMPTZ)
// y valida Inicio < Fin.
func NewWindow(inicio, fin time.Time) (Window, error) {
	inicio = inicio.UTC().Truncate(time.Microsecond)
	fin = fin.UTC().Truncate(time.Microsecond)
	if !inicio.Before(fin) {
		return Window{}, domain.ErrInvalidWindow
	}
	return Window{Inicio: inicio, Fin: fin}, nil
}

// Resolve calcula el estado derivado de fechas. Función pura y total:
// antes de Inicio es pendiente, después de Fin es cerrada, y activa en [Inicio, Fin]
// (ambos extremos inclusivos).
func Resolve(w Window, now time.Time) Estado {
	now = now.UTC()
	switch {
	case now.Before(w.Inicio):
		return EstadoPendiente
	case now.After(w.Fin):
		return EstadoCerrada
	default:
		return EstadoActiva
	}
}

// DiasRestantes devuelve los días completos que faltan para Fin; 0 si ya pasó.
func DiasRestantes(w Window, now time.Time) int {
	now = now.UTC()
	if !w.Fin.After(now) {
		return 0
	}
	return int(w.Fin.Sub(now) / (24 * time.Hour))
}

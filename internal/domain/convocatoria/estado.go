package convocatoria

import (
	"strings"

	"github.com/jhoicas/InnovationMap-api/internal/domain"
)

// Estado es el estado de una convocatoria. Conjunto cerrado, siempre en minúsculas.
type Estado string

const (
	EstadoPendiente Estado = "pendiente"
	EstadoActiva    Estado = "activa"
	EstadoCerrada   Estado = "cerrada"
)

// String implementa fmt.Stringer.
func (e Estado) String() string { return string(e) }

// Valid informa si e pertenece al conjunto de estados.
func (e Estado) Valid() bool {
	switch e {
	case EstadoPendiente, EstadoActiva, EstadoCerrada:
		return true
	}
	return false
}

// ParseEstado normaliza (trim + minúsculas) y valida un estado recibido en la frontera.
// Vacío o fuera del conjunto devuelve domain.ErrInvalidStatus.
func ParseEstado(s string) (Estado, error) {
	e := Estado(strings.ToLower(strings.TrimSpace(s)))
	if !e.Valid() {
		return "", domain.ErrInvalidStatus
	}
	return e, nil
}

// ParseOptionalEstado es como ParseEstado pero trata nil o "" como ausencia (nil, nil).
func ParseOptionalEstado(s *string) (*Estado, error) {
	if s == nil || strings.TrimSpace(*s) == "" {
		return nil, nil
	}
	e, err := ParseEstado(*s)
	if err != nil {
		return nil, err
	}
	return &e, nil
}

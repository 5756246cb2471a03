package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateConvocatoriaRequest entrada para crear una convocatoria.
// Si EstadoInicial viene informado el estado queda fijado manualmente; también si
// EstadoManual es true y Estado viene informado. En otro caso se calcula por fechas.
type CreateConvocatoriaRequest struct {
	Titulo        string           `json:"titulo" validate:"required,max=200"`
	Descripcion   string           `json:"descripcion" validate:"required"`
	FechaInicio   time.Time        `json:"fecha_inicio" validate:"required"`
	FechaFin      time.Time        `json:"fecha_fin" validate:"required"`
	Categoria     string           `json:"categoria" validate:"required,max=100"`
	Entidad       string           `json:"entidad" validate:"required,max=100"`
	CompanyID     *string          `json:"company_id" validate:"omitempty,uuid"`
	Presupuesto   *decimal.Decimal `json:"presupuesto"`
	Requisitos    []string         `json:"requisitos"`
	EstadoInicial *string          `json:"estado_inicial" validate:"omitempty,oneof=activa cerrada pendiente"`
	Estado        *string          `json:"estado" validate:"omitempty,oneof=activa cerrada pendiente"`
	EstadoManual  bool             `json:"estado_manual"`
}

// UpdateConvocatoriaRequest entrada para reemplazar una convocatoria.
// EstadoManual=false recalcula por fechas; true con Estado lo fija; true sin Estado conserva el actual.
type UpdateConvocatoriaRequest struct {
	Titulo       string           `json:"titulo" validate:"required,max=200"`
	Descripcion  string           `json:"descripcion" validate:"required"`
	FechaInicio  time.Time        `json:"fecha_inicio" validate:"required"`
	FechaFin     time.Time        `json:"fecha_fin" validate:"required"`
	Categoria    string           `json:"categoria" validate:"required,max=100"`
	Entidad      string           `json:"entidad" validate:"required,max=100"`
	CompanyID    *string          `json:"company_id" validate:"omitempty,uuid"`
	Presupuesto  *decimal.Decimal `json:"presupuesto"`
	Requisitos   []string         `json:"requisitos"`
	Estado       *string          `json:"estado" validate:"omitempty,oneof=activa cerrada pendiente"`
	EstadoManual bool             `json:"estado_manual"`
}

// EstadoUpdateRequest entrada para fijar el estado manualmente.
type EstadoUpdateRequest struct {
	Estado string `json:"estado" validate:"required,oneof=activa cerrada pendiente"`
}

// ConvocatoriaResponse salida de una convocatoria.
type ConvocatoriaResponse struct {
	ID            string           `json:"id"`
	Titulo        string           `json:"titulo"`
	Descripcion   string           `json:"descripcion"`
	FechaInicio   time.Time        `json:"fecha_inicio"`
	FechaFin      time.Time        `json:"fecha_fin"`
	Categoria     string           `json:"categoria"`
	Entidad       string           `json:"entidad"`
	Presupuesto   *decimal.Decimal `json:"presupuesto"`
	Estado        string           `json:"estado"`
	EstadoManual  bool             `json:"estado_manual"`
	EstaActiva    bool             `json:"esta_activa"`
	DiasRestantes int              `json:"dias_restantes"`
	Requisitos    []string         `json:"requisitos"`
	CompanyID     *string          `json:"company_id"`
	Company       *CompanyInfo     `json:"company"`
	CreatedAt     time.Time        `json:"created_at"`
	UpdatedAt     time.Time        `json:"updated_at"`
}

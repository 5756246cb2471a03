package convocatoria

import "time"

// Intent es la intención del llamador sobre el estado en una escritura.
// Variantes: ExplicitStatus, UpdateWindowOnly, PreserveManual y ClearToAutomatic.
type Intent interface {
	// Name identifica la variante (para logs).
	Name() string
	isIntent()
}

// ExplicitStatus fija el estado manualmente (creación con estado, actualización con
// estado_manual=true y estado, o cambio explícito de estado).
type ExplicitStatus struct {
	Estado Estado
}

// UpdateWindowOnly recalcula el estado desde las fechas y limpia cualquier fijación previa.
type UpdateWindowOnly struct{}

// PreserveManual conserva el estado fijado por un administrador sin tocarlo.
type PreserveManual struct{}

// ClearToAutomatic restablece el modo automático (estado_manual=false) y recalcula.
type ClearToAutomatic struct{}

func (ExplicitStatus) Name() string   { return "explicit_status" }
func (UpdateWindowOnly) Name() string { return "update_window_only" }
func (PreserveManual) Name() string   { return "preserve_manual" }
func (ClearToAutomatic) Name() string { return "clear_to_automatic" }

func (ExplicitStatus) isIntent()   {}
func (UpdateWindowOnly) isIntent() {}
func (PreserveManual) isIntent()   {}
func (ClearToAutomatic) isIntent() {}

// Current es el par (estado, estado_manual) persistido antes de la operación.
type Current struct {
	Estado Estado
	Manual bool
}

// Outcome es el par (estado, estado_manual) que debe persistirse.
type Outcome struct {
	Estado Estado
	Manual bool
}

// Changed informa si el resultado difiere del par persistido.
func (o Outcome) Changed(cur Current) bool {
	return o.Estado != cur.Estado || o.Manual != cur.Manual
}

// Apply es el único punto de decisión del ciclo de vida. Total sobre entradas bien formadas:
// el estado de ExplicitStatus ya viene validado por ParseEstado.
func Apply(cur Current, in Intent, w Window, now time.Time) Outcome {
	switch v := in.(type) {
	case ExplicitStatus:
		return Outcome{Estado: v.Estado, Manual: true}
	case PreserveManual:
		return Outcome{Estado: cur.Estado, Manual: true}
	default: // UpdateWindowOnly, ClearToAutomatic
		return Outcome{Estado: Resolve(w, now), Manual: false}
	}
}

// CreateIntent construye la intención para una creación. Precedencia:
// estado_inicial presente, luego estado_manual con estado, luego automático.
func CreateIntent(estadoInicial, estado *Estado, estadoManual bool) Intent {
	if estadoInicial != nil {
		return ExplicitStatus{Estado: *estadoInicial}
	}
	if estadoManual && estado != nil {
		return ExplicitStatus{Estado: *estado}
	}
	return UpdateWindowOnly{}
}

// UpdateIntent construye la intención para una actualización completa.
// Con estado_manual=false siempre se recalcula (así se limpia una fijación previa).
func UpdateIntent(estadoManual bool, estado *Estado) Intent {
	if !estadoManual {
		return UpdateWindowOnly{}
	}
	if estado != nil {
		return ExplicitStatus{Estado: *estado}
	}
	return PreserveManual{}
}

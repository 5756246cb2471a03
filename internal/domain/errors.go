package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound           = errors.New("recurso no encontrado")
	ErrUserNotFound       = errors.New("usuario no encontrado")
	ErrCompanyNotFound    = errors.New("la empresa no existe")
	ErrEmailAlreadyExists = errors.New("el email ya está registrado")
	ErrInvalidInput       = errors.New("entrada inválida")
	ErrInvalidWindow      = errors.New("la fecha de inicio debe ser anterior a la fecha de fin")
	ErrInvalidStatus      = errors.New("estado inválido: use activa, cerrada o pendiente")
	ErrInvalidPassword    = errors.New("la contraseña actual es incorrecta")
	ErrDuplicate          = errors.New("recurso duplicado")
	ErrUnauthorized       = errors.New("no autorizado")
	ErrForbidden          = errors.New("acceso denegado")
)

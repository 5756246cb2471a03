package entity

import "time"

// Roles válidos para User.
const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// User representa una cuenta de usuario.
type User struct {
	ID           string
	Nombre       string
	Apellido     string
	Email        string // siempre en minúsculas y sin espacios
	PasswordHash string // bcrypt hash, nunca plano en dominio después de persistir
	Rol          string // user, admin
	IsActive     bool
	Telefono     *string
	Organizacion *string
	CreatedAt    time.Time
	UpdatedAt    time.Time
	LastLoginAt  *time.Time
}

// NombreCompleto concatena nombre y apellido.
func (u *User) NombreCompleto() string {
	return u.Nombre + " " + u.Apellido
}

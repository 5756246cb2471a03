package dto

import "time"

// RegisterRequest entrada para registro.
type RegisterRequest struct {
	Nombre          string  `json:"nombre" validate:"required,max=100"`
	Apellido        string  `json:"apellido" validate:"required,max=100"`
	Email           string  `json:"email" validate:"required,email,max=255"`
	Password        string  `json:"password" validate:"required,min=6,max=100"`
	ConfirmPassword string  `json:"confirm_password" validate:"required,eqfield=Password"`
	Telefono        *string `json:"telefono"`
	Organizacion    *string `json:"organizacion"`
}

// LoginRequest entrada para login.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// UpdateProfileRequest entrada para actualizar el perfil propio.
type UpdateProfileRequest struct {
	Nombre       string  `json:"nombre" validate:"required,max=100"`
	Apellido     string  `json:"apellido" validate:"required,max=100"`
	Telefono     *string `json:"telefono"`
	Organizacion *string `json:"organizacion"`
}

// ChangePasswordRequest entrada para cambiar la contraseña.
type ChangePasswordRequest struct {
	CurrentPassword    string `json:"current_password" validate:"required"`
	NewPassword        string `json:"new_password" validate:"required,min=6,max=100"`
	ConfirmNewPassword string `json:"confirm_new_password" validate:"required,eqfield=NewPassword"`
}

// UserResponse salida de un usuario (sin password).
type UserResponse struct {
	ID             string     `json:"id"`
	Nombre         string     `json:"nombre"`
	Apellido       string     `json:"apellido"`
	NombreCompleto string     `json:"nombre_completo"`
	Email          string     `json:"email"`
	Rol            string     `json:"rol"`
	IsActive       bool       `json:"is_active"`
	Telefono       *string    `json:"telefono,omitempty"`
	Organizacion   *string    `json:"organizacion,omitempty"`
	CreatedAt      time.Time  `json:"created_at"`
	LastLoginAt    *time.Time `json:"last_login_at,omitempty"`
}

// AuthResponse salida de registro, login y refresh: token JWT + usuario.
type AuthResponse struct {
	Token      string       `json:"token"`
	Expiration time.Time    `json:"expiration"`
	Usuario    UserResponse `json:"usuario"`
}

// ValidateTokenResponse salida de /auth/validate.
type ValidateTokenResponse struct {
	Valid   bool          `json:"valid"`
	User    *UserResponse `json:"user,omitempty"`
	Message string        `json:"message"`
}

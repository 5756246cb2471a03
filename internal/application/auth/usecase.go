package auth

import (
	"context"
	"net/mail"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/InnovationMap-api/internal/application/dto"
	"github.com/jhoicas/InnovationMap-api/internal/domain"
	"github.com/jhoicas/InnovationMap-api/internal/domain/entity"
	"github.com/jhoicas/InnovationMap-api/internal/domain/repository"
	"github.com/jhoicas/InnovationMap-api/pkg/jwt"
)

const (
	minPasswordLen = 6
	maxPasswordLen = 100
	maxNameLen     = 100
	maxEmailLen    = 255

	// bcrypt.GenerateFromPassword rechaza entradas de más de 72 bytes.
	maxPasswordBytes = 72
)

// JWTConfig configuración para generación de tokens.
type JWTConfig = jwt.Config

// AuthUseCase casos de uso de autenticación: registro, login y renovación de token.
type AuthUseCase struct {
	userRepo repository.UserRepository
	jwtCfg   JWTConfig
	log      zerolog.Logger
	now      func() time.Time
	hashCost int
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(userRepo repository.UserRepository, jwtCfg JWTConfig, log zerolog.Logger) *AuthUseCase {
	return &AuthUseCase{
		userRepo: userRepo,
		jwtCfg:   jwtCfg,
		log:      log.With().Str("component", "auth").Logger(),
		now:      func() time.Time { return time.Now().UTC() },
		hashCost: bcrypt.DefaultCost,
	}
}

// WithHashCost ajusta el costo de bcrypt (los tests usan bcrypt.MinCost).
func (uc *AuthUseCase) WithHashCost(cost int) *AuthUseCase {
	uc.hashCost = cost
	return uc
}

// Register crea un usuario, hashea el password con bcrypt y devuelve un token ya emitido.
// Devuelve ErrEmailAlreadyExists si el email está registrado.
func (uc *AuthUseCase) Register(ctx context.Context, in dto.RegisterRequest) (*dto.AuthResponse, error) {
	nombre := strings.TrimSpace(in.Nombre)
	apellido := strings.TrimSpace(in.Apellido)
	email := NormalizeEmail(in.Email)
	if nombre == "" || apellido == "" || len(nombre) > maxNameLen || len(apellido) > maxNameLen {
		return nil, domain.ErrInvalidInput
	}
	if !validEmail(email) {
		return nil, domain.ErrInvalidInput
	}
	if err := ValidatePassword(in.Password, in.ConfirmPassword); err != nil {
		return nil, err
	}

	existing, err := uc.userRepo.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrEmailAlreadyExists
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), uc.hashCost)
	if err != nil {
		return nil, err
	}
	now := uc.now()
	user := &entity.User{
		ID:           uuid.New().String(),
		Nombre:       nombre,
		Apellido:     apellido,
		Email:        email,
		PasswordHash: string(hash),
		Rol:          entity.RoleUser,
		IsActive:     true,
		Telefono:     trimOptional(in.Telefono),
		Organizacion: trimOptional(in.Organizacion),
		CreatedAt:    now,
		UpdatedAt:    now,
		LastLoginAt:  &now,
	}
	if err := uc.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}
	uc.log.Info().Str("user_id", user.ID).Msg("usuario registrado")
	return uc.issue(user)
}

// Login verifica email/password, registra el último acceso y retorna token + usuario.
func (uc *AuthUseCase) Login(ctx context.Context, in dto.LoginRequest) (*dto.AuthResponse, error) {
	user, err := uc.userRepo.GetByEmail(ctx, NormalizeEmail(in.Email))
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUnauthorized
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)); err != nil {
		return nil, domain.ErrUnauthorized
	}
	if !user.IsActive {
		return nil, domain.ErrForbidden
	}
	now := uc.now()
	user.LastLoginAt = &now
	user.UpdatedAt = now
	if err := uc.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}
	return uc.issue(user)
}

// RefreshToken emite un token nuevo para un usuario autenticado y activo.
func (uc *AuthUseCase) RefreshToken(ctx context.Context, userID string) (*dto.AuthResponse, error) {
	user, err := uc.activeUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	return uc.issue(user)
}

// Validate confirma que el usuario del token sigue existiendo y activo.
func (uc *AuthUseCase) Validate(ctx context.Context, userID string) (*dto.ValidateTokenResponse, error) {
	user, err := uc.activeUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	return &dto.ValidateTokenResponse{
		Valid:   true,
		User:    ToUserResponse(user),
		Message: "Token válido",
	}, nil
}

func (uc *AuthUseCase) activeUser(ctx context.Context, userID string) (*entity.User, error) {
	user, err := uc.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil || !user.IsActive {
		return nil, domain.ErrUnauthorized
	}
	return user, nil
}

func (uc *AuthUseCase) issue(user *entity.User) (*dto.AuthResponse, error) {
	token, exp, err := jwt.Generate(uc.jwtCfg, user.ID, user.Email, user.Rol)
	if err != nil {
		return nil, err
	}
	return &dto.AuthResponse{
		Token:      token,
		Expiration: exp,
		Usuario:    *ToUserResponse(user),
	}, nil
}

// NormalizeEmail recorta y pasa a minúsculas.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// ValidatePassword exige 6..100 caracteres, como máximo 72 bytes y que la confirmación coincida.
func ValidatePassword(password, confirm string) error {
	n := utf8.RuneCountInString(password)
	if n < minPasswordLen || n > maxPasswordLen || len(password) > maxPasswordBytes {
		return domain.ErrInvalidInput
	}
	if password != confirm {
		return domain.ErrInvalidInput
	}
	return nil
}

func validEmail(email string) bool {
	if email == "" || len(email) > maxEmailLen {
		return false
	}
	addr, err := mail.ParseAddress(email)
	return err == nil && addr.Address == email
}

func trimOptional(s *string) *string {
	if s == nil {
		return nil
	}
	v := strings.TrimSpace(*s)
	if v == "" {
		return nil
	}
	return &v
}

// ToUserResponse convierte la entidad en su representación pública (sin hash).
func ToUserResponse(u *entity.User) *dto.UserResponse {
	if u == nil {
		return nil
	}
	return &dto.UserResponse{
		ID:             u.ID,
		Nombre:         u.Nombre,
		Apellido:       u.Apellido,
		NombreCompleto: u.NombreCompleto(),
		Email:          u.Email,
		Rol:            u.Rol,
		IsActive:       u.IsActive,
		Telefono:       u.Telefono,
		Organizacion:   u.Organizacion,
		CreatedAt:      u.CreatedAt,
		LastLoginAt:    u.LastLoginAt,
	}
}

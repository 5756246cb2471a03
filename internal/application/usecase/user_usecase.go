package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/InnovationMap-api/internal/application/auth"
	"github.com/jhoicas/InnovationMap-api/internal/application/dto"
	"github.com/jhoicas/InnovationMap-api/internal/domain"
	"github.com/jhoicas/InnovationMap-api/internal/domain/entity"
	"github.com/jhoicas/InnovationMap-api/internal/domain/repository"
)

// UserUseCase aplica reglas de negocio sobre el perfil del usuario autenticado.
type UserUseCase struct {
	repo     repository.UserRepository
	log      zerolog.Logger
	hashCost int
}

// NewUserUseCase construye el caso de uso con el puerto de persistencia.
func NewUserUseCase(repo repository.UserRepository, log zerolog.Logger) *UserUseCase {
	return &UserUseCase{
		repo:     repo,
		log:      log.With().Str("component", "users").Logger(),
		hashCost: bcrypt.DefaultCost,
	}
}

// WithHashCost ajusta el costo de bcrypt.
func (uc *UserUseCase) WithHashCost(cost int) *UserUseCase {
	uc.hashCost = cost
	return uc
}

// Profile devuelve el perfil del usuario. ErrUnauthorized si no existe o está inactivo.
func (uc *UserUseCase) Profile(ctx context.Context, userID string) (*dto.UserResponse, error) {
	user, err := uc.activeUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	return auth.ToUserResponse(user), nil
}

// UpdateProfile actualiza nombre, apellido, teléfono y organización.
func (uc *UserUseCase) UpdateProfile(ctx context.Context, userID string, in dto.UpdateProfileRequest) (*dto.UserResponse, error) {
	nombre := strings.TrimSpace(in.Nombre)
	apellido := strings.TrimSpace(in.Apellido)
	if nombre == "" || apellido == "" || len(nombre) > 100 || len(apellido) > 100 {
		return nil, domain.ErrInvalidInput
	}
	user, err := uc.activeUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	user.Nombre = nombre
	user.Apellido = apellido
	user.Telefono = optionalText(in.Telefono)
	user.Organizacion = optionalText(in.Organizacion)
	user.UpdatedAt = time.Now().UTC()
	if err := uc.repo.Update(ctx, user); err != nil {
		return nil, err
	}
	return auth.ToUserResponse(user), nil
}

// ChangePassword verifica la contraseña actual y guarda el hash de la nueva.
func (uc *UserUseCase) ChangePassword(ctx context.Context, userID string, in dto.ChangePasswordRequest) error {
	if err := auth.ValidatePassword(in.NewPassword, in.ConfirmNewPassword); err != nil {
		return err
	}
	user, err := uc.activeUser(ctx, userID)
	if err != nil {
		return err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.CurrentPassword)); err != nil {
		return domain.ErrInvalidPassword
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.NewPassword), uc.hashCost)
	if err != nil {
		return err
	}
	user.PasswordHash = string(hash)
	user.UpdatedAt = time.Now().UTC()
	if err := uc.repo.Update(ctx, user); err != nil {
		return err
	}
	uc.log.Info().Str("user_id", user.ID).Msg("contraseña actualizada")
	return nil
}

func (uc *UserUseCase) activeUser(ctx context.Context, userID string) (*entity.User, error) {
	user, err := uc.repo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil || !user.IsActive {
		return nil, domain.ErrUnauthorized
	}
	return user, nil
}

func optionalText(s *string) *string {
	if s == nil {
		return nil
	}
	v := strings.TrimSpace(*s)
	if v == "" {
		return nil
	}
	return &v
}

package auth_test

import (
	"context"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/InnovationMap-api/internal/application/auth"
	"github.com/jhoicas/InnovationMap-api/internal/application/dto"
	"github.com/jhoicas/InnovationMap-api/internal/domain"
	"github.com/jhoicas/InnovationMap-api/internal/domain/entity"
	"github.com/jhoicas/InnovationMap-api/internal/domain/repository"
	pkgjwt "github.com/jhoicas/InnovationMap-api/pkg/jwt"
)

// ──────────────────────────────────────────────────────────────────────────────
// Repositorio en memoria
// ──────────────────────────────────────────────────────────────────────────────

type memUserRepo struct {
	mu    sync.Mutex
	users map[string]*entity.User
}

var _ repository.UserRepository = (*memUserRepo)(nil)

func newMemUserRepo() *memUserRepo {
	return &memUserRepo{users: map[string]*entity.User{}}
}

func (r *memUserRepo) Create(_ context.Context, u *entity.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, existing := range r.users {
		if strings.EqualFold(existing.Email, u.Email) {
			return domain.ErrEmailAlreadyExists
		}
	}
	cp := *u
	r.users[u.ID] = &cp
	return nil
}

func (r *memUserRepo) GetByID(_ context.Context, id string) (*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[id]
	if !ok {
		return nil, nil
	}
	cp := *u
	return &cp, nil
}

func (r *memUserRepo) GetByEmail(_ context.Context, email string) (*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if strings.EqualFold(u.Email, email) {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *memUserRepo) Update(_ context.Context, u *entity.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.users[u.ID]; !ok {
		return domain.ErrUserNotFound
	}
	cp := *u
	r.users[u.ID] = &cp
	return nil
}

var testJWT = pkgjwt.Config{
	Secret:     "test-secret-key-for-unit-tests",
	Issuer:     "innovation-map-test",
	Audience:   "innovation-map-test",
	Expiration: 24 * time.Hour,
}

func newAuth() (*memUserRepo, *auth.AuthUseCase) {
	repo := newMemUserRepo()
	return repo, auth.NewAuthUseCase(repo, testJWT, zerolog.Nop()).WithHashCost(bcrypt.MinCost)
}

func registerReq() dto.RegisterRequest {
	return dto.RegisterRequest{
		Nombre:          "Ana",
		Apellido:        "Gómez",
		Email:           "  Ana@Example.COM ",
		Password:        "secreto1",
		ConfirmPassword: "secreto1",
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Register
// ──────────────────────────────────────────────────────────────────────────────

func TestRegister_EmiteTokenYNormalizaEmail(t *testing.T) {
	repo, uc := newAuth()

	out, err := uc.Register(context.Background(), registerReq())
	require.NoError(t, err)

	assert.Equal(t, "ana@example.com", out.Usuario.Email)
	assert.Equal(t, entity.RoleUser, out.Usuario.Rol)
	assert.True(t, out.Usuario.IsActive)
	assert.NotNil(t, out.Usuario.LastLoginAt)
	assert.WithinDuration(t, time.Now().Add(24*time.Hour), out.Expiration, 5*time.Second)

	claims, err := pkgjwt.Parse(testJWT, out.Token)
	require.NoError(t, err)
	assert.Equal(t, out.Usuario.ID, claims.UserID)

	stored, _ := repo.GetByID(context.Background(), out.Usuario.ID)
	require.NotNil(t, stored)
	assert.NotEqual(t, "secreto1", stored.PasswordHash)
}

func TestRegister_EmailDuplicado(t *testing.T) {
	_, uc := newAuth()
	_, err := uc.Register(context.Background(), registerReq())
	require.NoError(t, err)

	in := registerReq()
	in.Email = "ana@example.com"
	_, err = uc.Register(context.Background(), in)
	assert.ErrorIs(t, err, domain.ErrEmailAlreadyExists)
}

func TestRegister_Validaciones(t *testing.T) {
	_, uc := newAuth()
	cases := map[string]func(*dto.RegisterRequest){
		"sin nombre":            func(r *dto.RegisterRequest) { r.Nombre = " " },
		"email inválido":        func(r *dto.RegisterRequest) { r.Email = "no-es-email" },
		"password corto":        func(r *dto.RegisterRequest) { r.Password, r.ConfirmPassword = "abc", "abc" },
		"confirmación distinta": func(r *dto.RegisterRequest) { r.ConfirmPassword = "otro" },
		"password de 80 bytes": func(r *dto.RegisterRequest) {
			r.Password = strings.Repeat("a", 80)
			r.ConfirmPassword = r.Password
		},
		"password de 40 eñes (80 bytes)": func(r *dto.RegisterRequest) {
			r.Password = strings.Repeat("ñ", 40)
			r.ConfirmPassword = r.Password
		},
	}
	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			in := registerReq()
			mutate(&in)
			_, err := uc.Register(context.Background(), in)
			assert.ErrorIs(t, err, domain.ErrInvalidInput)
		})
	}
}

func TestRegister_PasswordDe72Bytes_Acepta(t *testing.T) {
	_, uc := newAuth()
	in := registerReq()
	in.Password = strings.Repeat("a", 72)
	in.ConfirmPassword = in.Password

	out, err := uc.Register(context.Background(), in)
	require.NoError(t, err)

	_, err = uc.Login(context.Background(), dto.LoginRequest{Email: "ana@example.com", Password: in.Password})
	assert.NoError(t, err)
	assert.NotEmpty(t, out.Token)
}

// ──────────────────────────────────────────────────────────────────────────────
// Login / Refresh / Validate
// ──────────────────────────────────────────────────────────────────────────────

func TestLogin_CredencialesValidas(t *testing.T) {
	_, uc := newAuth()
	_, err := uc.Register(context.Background(), registerReq())
	require.NoError(t, err)

	out, err := uc.Login(context.Background(), dto.LoginRequest{Email: "ANA@example.com", Password: "secreto1"})
	require.NoError(t, err)
	assert.NotEmpty(t, out.Token)
	assert.NotNil(t, out.Usuario.LastLoginAt)
}

func TestLogin_PasswordIncorrecto_O_EmailDesconocido(t *testing.T) {
	_, uc := newAuth()
	_, err := uc.Register(context.Background(), registerReq())
	require.NoError(t, err)

	_, err = uc.Login(context.Background(), dto.LoginRequest{Email: "ana@example.com", Password: "otro"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)

	_, err = uc.Login(context.Background(), dto.LoginRequest{Email: "nadie@example.com", Password: "secreto1"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestLogin_UsuarioInactivo_Forbidden(t *testing.T) {
	repo, uc := newAuth()
	out, err := uc.Register(context.Background(), registerReq())
	require.NoError(t, err)

	u, _ := repo.GetByID(context.Background(), out.Usuario.ID)
	u.IsActive = false
	require.NoError(t, repo.Update(context.Background(), u))

	_, err = uc.Login(context.Background(), dto.LoginRequest{Email: "ana@example.com", Password: "secreto1"})
	assert.ErrorIs(t, err, domain.ErrForbidden)

	_, err = uc.RefreshToken(context.Background(), u.ID)
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestRefreshYValidate(t *testing.T) {
	_, uc := newAuth()
	reg, err := uc.Register(context.Background(), registerReq())
	require.NoError(t, err)

	refreshed, err := uc.RefreshToken(context.Background(), reg.Usuario.ID)
	require.NoError(t, err)
	assert.NotEqual(t, reg.Token, refreshed.Token, "cada token lleva un jti distinto")

	v, err := uc.Validate(context.Background(), reg.Usuario.ID)
	require.NoError(t, err)
	assert.True(t, v.Valid)
	assert.Equal(t, reg.Usuario.ID, v.User.ID)

	_, err = uc.Validate(context.Background(), "desconocido")
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

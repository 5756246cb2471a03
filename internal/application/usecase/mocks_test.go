package usecase_test

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/jhoicas/InnovationMap-api/internal/domain/convocatoria"
	"github.com/jhoicas/InnovationMap-api/internal/domain/entity"
	"github.com/jhoicas/InnovationMap-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Mocks de repositorios (testify/mock)
// ──────────────────────────────────────────────────────────────────────────────

type mockConvocatoriaRepo struct{ mock.Mock }

var _ repository.ConvocatoriaRepository = (*mockConvocatoriaRepo)(nil)

func (m *mockConvocatoriaRepo) Create(ctx context.Context, c *entity.Convocatoria) error {
	return m.Called(ctx, c).Error(0)
}

func (m *mockConvocatoriaRepo) GetByID(ctx context.Context, id string) (*entity.Convocatoria, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Convocatoria), args.Error(1)
}

func (m *mockConvocatoriaRepo) GetForUpdate(ctx context.Context, id string) (*entity.Convocatoria, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Convocatoria), args.Error(1)
}

func (m *mockConvocatoriaRepo) Update(ctx context.Context, c *entity.Convocatoria) error {
	return m.Called(ctx, c).Error(0)
}

func (m *mockConvocatoriaRepo) Delete(ctx context.Context, id string) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *mockConvocatoriaRepo) List(ctx context.Context) ([]*entity.Convocatoria, error) {
	return convocatoriaList(m.Called(ctx))
}

func (m *mockConvocatoriaRepo) ListByEstado(ctx context.Context, estado convocatoria.Estado) ([]*entity.Convocatoria, error) {
	return convocatoriaList(m.Called(ctx, estado))
}

func (m *mockConvocatoriaRepo) ListActiveAt(ctx context.Context, now time.Time) ([]*entity.Convocatoria, error) {
	return convocatoriaList(m.Called(ctx, now))
}

func (m *mockConvocatoriaRepo) ListByCompany(ctx context.Context, companyID string) ([]*entity.Convocatoria, error) {
	return convocatoriaList(m.Called(ctx, companyID))
}

func (m *mockConvocatoriaRepo) ClearCompany(ctx context.Context, companyID string) (int64, error) {
	args := m.Called(ctx, companyID)
	return args.Get(0).(int64), args.Error(1)
}

func convocatoriaList(args mock.Arguments) ([]*entity.Convocatoria, error) {
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Convocatoria), args.Error(1)
}

type mockCompanyRepo struct{ mock.Mock }

var _ repository.CompanyRepository = (*mockCompanyRepo)(nil)

func (m *mockCompanyRepo) Create(ctx context.Context, c *entity.Company) error {
	return m.Called(ctx, c).Error(0)
}

func (m *mockCompanyRepo) GetByID(ctx context.Context, id string) (*entity.Company, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Company), args.Error(1)
}

func (m *mockCompanyRepo) Exists(ctx context.Context, id string) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *mockCompanyRepo) Update(ctx context.Context, c *entity.Company) error {
	return m.Called(ctx, c).Error(0)
}

func (m *mockCompanyRepo) List(ctx context.Context, limit, offset int) ([]*entity.Company, error) {
	args := m.Called(ctx, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Company), args.Error(1)
}

func (m *mockCompanyRepo) ListSummaries(ctx context.Context) ([]*entity.CompanySummary, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.CompanySummary), args.Error(1)
}

func (m *mockCompanyRepo) Delete(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

type mockUserRepo struct{ mock.Mock }

var _ repository.UserRepository = (*mockUserRepo)(nil)

func (m *mockUserRepo) Create(ctx context.Context, u *entity.User) error {
	return m.Called(ctx, u).Error(0)
}

func (m *mockUserRepo) GetByID(ctx context.Context, id string) (*entity.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.User), args.Error(1)
}

func (m *mockUserRepo) GetByEmail(ctx context.Context, email string) (*entity.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.User), args.Error(1)
}

func (m *mockUserRepo) Update(ctx context.Context, u *entity.User) error {
	return m.Called(ctx, u).Error(0)
}

// fakeTx ejecuta los callbacks directamente con los mocks (sin transacción real).
type fakeTx struct {
	conv    repository.ConvocatoriaRepository
	company repository.CompanyRepository
	runs    int
}

func (f *fakeTx) RunConvocatoria(ctx context.Context, fn func(repo repository.ConvocatoriaRepository) error) error {
	f.runs++
	return fn(f.conv)
}

func (f *fakeTx) RunCompany(ctx context.Context, fn func(repository.CompanyRepository, repository.ConvocatoriaRepository) error) error {
	f.runs++
	return fn(f.company, f.conv)
}

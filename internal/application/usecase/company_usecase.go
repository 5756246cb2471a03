package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/jhoicas/InnovationMap-api/internal/application/dto"
	"github.com/jhoicas/InnovationMap-api/internal/domain"
	"github.com/jhoicas/InnovationMap-api/internal/domain/entity"
	"github.com/jhoicas/InnovationMap-api/internal/domain/repository"
)

// CompanyUseCase aplica reglas de negocio para empresas (casos de uso).
type CompanyUseCase struct {
	repo repository.CompanyRepository
	tx   CompanyTxRunner
	log  zerolog.Logger
}

// NewCompanyUseCase construye el caso de uso con el puerto de persistencia.
func NewCompanyUseCase(repo repository.CompanyRepository, tx CompanyTxRunner, log zerolog.Logger) *CompanyUseCase {
	return &CompanyUseCase{
		repo: repo,
		tx:   tx,
		log:  log.With().Str("component", "companies").Logger(),
	}
}

// Create crea una nueva empresa.
func (uc *CompanyUseCase) Create(ctx context.Context, in dto.CreateCompanyRequest) (*dto.CompanyResponse, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" || len(name) > 200 {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now().UTC()
	company := &entity.Company{
		ID:          uuid.New().String(),
		Name:        name,
		URL:         in.URL,
		LogoURL:     in.LogoURL,
		Sector:      in.Sector,
		Department:  in.Department,
		Description: in.Description,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.repo.Create(ctx, company); err != nil {
		return nil, err
	}
	return entityToCompanyResponse(company), nil
}

// GetByID obtiene una empresa por ID.
func (uc *CompanyUseCase) GetByID(ctx context.Context, id string) (*dto.CompanyResponse, error) {
	company, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if company == nil {
		return nil, nil
	}
	return entityToCompanyResponse(company), nil
}

// List lista empresas con paginación.
func (uc *CompanyUseCase) List(ctx context.Context, limit, offset int) (*dto.CompanyListResponse, error) {
	list, err := uc.repo.List(ctx, limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.CompanyResponse, 0, len(list))
	for _, c := range list {
		items = append(items, *entityToCompanyResponse(c))
	}
	return &dto.CompanyListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

// Update actualiza los campos informados de una empresa. (nil, nil) si no existe.
func (uc *CompanyUseCase) Update(ctx context.Context, id string, in dto.UpdateCompanyRequest) (*dto.CompanyResponse, error) {
	company, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if company == nil {
		return nil, nil
	}
	if in.Name != nil {
		name := strings.TrimSpace(*in.Name)
		if name == "" || len(name) > 200 {
			return nil, domain.ErrInvalidInput
		}
		company.Name = name
	}
	if in.URL != nil {
		company.URL = *in.URL
	}
	if in.LogoURL != nil {
		company.LogoURL = *in.LogoURL
	}
	if in.Sector != nil {
		company.Sector = *in.Sector
	}
	if in.Department != nil {
		company.Department = *in.Department
	}
	if in.Description != nil {
		company.Description = *in.Description
	}
	company.UpdatedAt = time.Now().UTC()
	if err := uc.repo.Update(ctx, company); err != nil {
		return nil, err
	}
	return entityToCompanyResponse(company), nil
}

// Delete elimina la empresa y, en la misma transacción, anula la referencia company_id
// de sus convocatorias (las convocatorias no se borran).
func (uc *CompanyUseCase) Delete(ctx context.Context, id string) error {
	return uc.tx.RunCompany(ctx, func(companyRepo repository.CompanyRepository, convRepo repository.ConvocatoriaRepository) error {
		ok, err := companyRepo.Exists(ctx, id)
		if err != nil {
			return err
		}
		if !ok {
			return domain.ErrNotFound
		}
		cleared, err := convRepo.ClearCompany(ctx, id)
		if err != nil {
			return err
		}
		if err := companyRepo.Delete(ctx, id); err != nil {
			return err
		}
		uc.log.Info().Str("company_id", id).Int64("convocatorias_desvinculadas", cleared).Msg("empresa eliminada")
		return nil
	})
}

func entityToCompanyResponse(c *entity.Company) *dto.CompanyResponse {
	if c == nil {
		return nil
	}
	return &dto.CompanyResponse{
		ID:          c.ID,
		Name:        c.Name,
		URL:         c.URL,
		LogoURL:     c.LogoURL,
		Sector:      c.Sector,
		Department:  c.Department,
		Description: c.Description,
		CreatedAt:   c.CreatedAt,
		UpdatedAt:   c.UpdatedAt,
	}
}

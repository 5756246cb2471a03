package dto

import "time"

// CreateCompanyRequest entrada para crear una empresa.
type CreateCompanyRequest struct {
	Name        string `json:"name" validate:"required,min=1,max=200"`
	URL         string `json:"url"`
	LogoURL     string `json:"logo_url"`
	Sector      string `json:"sector"`
	Department  string `json:"department"`
	Description string `json:"description"`
}

// UpdateCompanyRequest entrada para actualizar una empresa (campos opcionales).
type UpdateCompanyRequest struct {
	Name        *string `json:"name" validate:"omitempty,min=1,max=200"`
	URL         *string `json:"url"`
	LogoURL     *string `json:"logo_url"`
	Sector      *string `json:"sector"`
	Department  *string `json:"department"`
	Description *string `json:"description"`
}

// CompanyResponse salida de una empresa.
type CompanyResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	URL         string    `json:"url"`
	LogoURL     string    `json:"logo_url"`
	Sector      string    `json:"sector"`
	Department  string    `json:"department"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// CompanyListResponse lista paginada de empresas.
type CompanyListResponse struct {
	Items []CompanyResponse `json:"items"`
	Page  PageResponse      `json:"page"`
}

// CompanyInfo resumen de empresa embebido en convocatorias y en empresas-disponibles.
type CompanyInfo struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Sector      string `json:"sector"`
	LogoURL     string `json:"logo_url"`
	Description string `json:"description"`
}

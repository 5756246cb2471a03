package entity

import "time"

// Company representa una empresa que puede convocar oportunidades.
type Company struct {
	ID          string
	Name        string
	URL         string
	LogoURL     string
	Sector      string
	Department  string // departamento (región) donde opera
	Description string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// CompanySummary proyección liviana de Company embebida en convocatorias y selectores.
type CompanySummary struct {
	ID          string
	Name        string
	Sector      string
	LogoURL     string
	Description string
}

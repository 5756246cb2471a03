package usecase

import (
	"context"
	"slices"
	"strings"
	"time"
	"unicode"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"github.com/jhoicas/InnovationMap-api/internal/application/dto"
	"github.com/jhoicas/InnovationMap-api/internal/domain"
	"github.com/jhoicas/InnovationMap-api/internal/domain/convocatoria"
	"github.com/jhoicas/InnovationMap-api/internal/domain/entity"
	"github.com/jhoicas/InnovationMap-api/internal/domain/repository"
)

// ConvocatoriaUseCase casos de uso de convocatorias. Es el único llamador del guardián
// de ciclo de vida: toda escritura que toca fechas o estado pasa por convocatoria.Apply.
type ConvocatoriaUseCase struct {
	repo        repository.ConvocatoriaRepository
	companyRepo repository.CompanyRepository
	tx          ConvocatoriaTxRunner
	log         zerolog.Logger
	now         func() time.Time
}

// NewConvocatoriaUseCase construye el caso de uso. El reloj por defecto es time.Now en UTC.
func NewConvocatoriaUseCase(
	repo repository.ConvocatoriaRepository,
	companyRepo repository.CompanyRepository,
	tx ConvocatoriaTxRunner,
	log zerolog.Logger,
) *ConvocatoriaUseCase {
	return &ConvocatoriaUseCase{
		repo:        repo,
		companyRepo: companyRepo,
		tx:          tx,
		log:         log.With().Str("component", "convocatorias").Logger(),
		now:         func() time.Time { return time.Now().UTC() },
	}
}

// WithClock reemplaza el reloj (tests).
func (uc *ConvocatoriaUseCase) WithClock(now func() time.Time) *ConvocatoriaUseCase {
	uc.now = func() time.Time { return now().UTC() }
	return uc
}

// Create valida la entrada, calcula el estado inicial y persiste la convocatoria.
func (uc *ConvocatoriaUseCase) Create(ctx context.Context, in dto.CreateConvocatoriaRequest) (*dto.ConvocatoriaResponse, error) {
	w, err := convocatoria.NewWindow(in.FechaInicio, in.FechaFin)
	if err != nil {
		return nil, err
	}
	estadoInicial, err := convocatoria.ParseOptionalEstado(in.EstadoInicial)
	if err != nil {
		return nil, err
	}
	estado, err := convocatoria.ParseOptionalEstado(in.Estado)
	if err != nil {
		return nil, err
	}
	if err := validateConvocatoriaFields(in.Titulo, in.Descripcion, in.Categoria, in.Entidad, in.Presupuesto); err != nil {
		return nil, err
	}
	companyID := normalizeCompanyID(in.CompanyID)
	if err := uc.ensureCompany(ctx, companyID); err != nil {
		return nil, err
	}

	now := uc.now()
	c := &entity.Convocatoria{
		ID:          uuid.New().String(),
		Titulo:      strings.TrimSpace(in.Titulo),
		Descripcion: in.Descripcion,
		FechaInicio: w.Inicio,
		FechaFin:    w.Fin,
		Categoria:   strings.TrimSpace(in.Categoria),
		Entidad:     strings.TrimSpace(in.Entidad),
		CompanyID:   companyID,
		Presupuesto: in.Presupuesto,
		Requisitos:  requisitosOrEmpty(in.Requisitos),
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	intent := convocatoria.CreateIntent(estadoInicial, estado, in.EstadoManual)
	out := convocatoria.Apply(convocatoria.Current{}, intent, w, now)
	c.SetOutcome(out)

	if err := uc.repo.Create(ctx, c); err != nil {
		return nil, err
	}
	uc.log.Info().
		Str("convocatoria_id", c.ID).
		Str("estado", c.Estado.String()).
		Bool("estado_manual", c.EstadoManual).
		Str("intent", intent.Name()).
		Msg("convocatoria creada")

	return uc.reload(ctx, c, now)
}

// Update reemplaza los campos editables. Con estado_manual=false el estado se recalcula por fechas;
// con true y estado lo fija; con true sin estado conserva el actual. Sin cambios no escribe.
func (uc *ConvocatoriaUseCase) Update(ctx context.Context, id string, in dto.UpdateConvocatoriaRequest) (*dto.ConvocatoriaResponse, error) {
	w, err := convocatoria.NewWindow(in.FechaInicio, in.FechaFin)
	if err != nil {
		return nil, err
	}
	estado, err := convocatoria.ParseOptionalEstado(in.Estado)
	if err != nil {
		return nil, err
	}
	if err := validateConvocatoriaFields(in.Titulo, in.Descripcion, in.Categoria, in.Entidad, in.Presupuesto); err != nil {
		return nil, err
	}
	companyID := normalizeCompanyID(in.CompanyID)
	if err := uc.ensureCompany(ctx, companyID); err != nil {
		return nil, err
	}

	intent := convocatoria.UpdateIntent(in.EstadoManual, estado)
	return uc.mutate(ctx, id, intent, func(c *entity.Convocatoria) bool {
		return applyConvocatoriaFields(c, in, w, companyID)
	})
}

// UpdateEstado fija el estado manualmente.
func (uc *ConvocatoriaUseCase) UpdateEstado(ctx context.Context, id string, in dto.EstadoUpdateRequest) (*dto.ConvocatoriaResponse, error) {
	estado, err := convocatoria.ParseEstado(in.Estado)
	if err != nil {
		return nil, err
	}
	return uc.mutate(ctx, id, convocatoria.ExplicitStatus{Estado: estado}, nil)
}

// ResetEstadoAutomatico limpia la fijación manual y recalcula el estado por fechas.
func (uc *ConvocatoriaUseCase) ResetEstadoAutomatico(ctx context.Context, id string) (*dto.ConvocatoriaResponse, error) {
	return uc.mutate(ctx, id, convocatoria.ClearToAutomatic{}, nil)
}

// mutate lee la fila con bloqueo, aplica los cambios de campos (si los hay) y el guardián,
// y escribe solo si algo cambió. updated_at se refresca únicamente en ese caso.
func (uc *ConvocatoriaUseCase) mutate(ctx context.Context, id string, intent convocatoria.Intent, edit func(*entity.Convocatoria) bool) (*dto.ConvocatoriaResponse, error) {
	now := uc.now()
	var saved *entity.Convocatoria
	err := uc.tx.RunConvocatoria(ctx, func(repo repository.ConvocatoriaRepository) error {
		c, err := repo.GetForUpdate(ctx, id)
		if err != nil {
			return err
		}
		if c == nil {
			return domain.ErrNotFound
		}
		prev := c.Current()
		fieldsChanged := false
		if edit != nil {
			fieldsChanged = edit(c)
		}
		out := convocatoria.Apply(prev, intent, c.Window(), now)
		saved = c
		if !fieldsChanged && !out.Changed(prev) {
			return nil
		}
		c.SetOutcome(out)
		c.UpdatedAt = now
		if err := repo.Update(ctx, c); err != nil {
			return err
		}
		if out.Changed(prev) {
			uc.log.Info().
				Str("convocatoria_id", c.ID).
				Str("estado_anterior", prev.Estado.String()).
				Bool("manual_anterior", prev.Manual).
				Str("estado", out.Estado.String()).
				Bool("estado_manual", out.Manual).
				Str("intent", intent.Name()).
				Msg("transición de estado")
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return uc.reload(ctx, saved, now)
}

// Delete elimina una convocatoria. Devuelve domain.ErrNotFound si no existe.
func (uc *ConvocatoriaUseCase) Delete(ctx context.Context, id string) error {
	found, err := uc.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !found {
		return domain.ErrNotFound
	}
	return nil
}

// GetByID obtiene una convocatoria por ID (nil, nil si no existe).
func (uc *ConvocatoriaUseCase) GetByID(ctx context.Context, id string) (*dto.ConvocatoriaResponse, error) {
	c, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, nil
	}
	return toConvocatoriaResponse(c, uc.now()), nil
}

// List lista todas las convocatorias, más recientes primero.
func (uc *ConvocatoriaUseCase) List(ctx context.Context) ([]dto.ConvocatoriaResponse, error) {
	list, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	return uc.toResponses(list), nil
}

// ListByCategoria filtra por categoría: contiene, sin distinguir mayúsculas ni tildes.
func (uc *ConvocatoriaUseCase) ListByCategoria(ctx context.Context, categoria string) ([]dto.ConvocatoriaResponse, error) {
	needle := foldText(strings.TrimSpace(categoria))
	list, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	filtered := make([]*entity.Convocatoria, 0, len(list))
	for _, c := range list {
		if strings.Contains(foldText(c.Categoria), needle) {
			filtered = append(filtered, c)
		}
	}
	return uc.toResponses(filtered), nil
}

// ListByEstado filtra por el estado guardado. Un estado fuera del conjunto es domain.ErrInvalidStatus.
func (uc *ConvocatoriaUseCase) ListByEstado(ctx context.Context, estado string) ([]dto.ConvocatoriaResponse, error) {
	e, err := convocatoria.ParseEstado(estado)
	if err != nil {
		return nil, err
	}
	list, err := uc.repo.ListByEstado(ctx, e)
	if err != nil {
		return nil, err
	}
	return uc.toResponses(list), nil
}

// ListActivas devuelve las convocatorias cuya ventana contiene el instante actual,
// sin mirar el estado guardado.
func (uc *ConvocatoriaUseCase) ListActivas(ctx context.Context) ([]dto.ConvocatoriaResponse, error) {
	list, err := uc.repo.ListActiveAt(ctx, uc.now())
	if err != nil {
		return nil, err
	}
	return uc.toResponses(list), nil
}

// ListByCompany lista las convocatorias de una empresa.
func (uc *ConvocatoriaUseCase) ListByCompany(ctx context.Context, companyID string) ([]dto.ConvocatoriaResponse, error) {
	list, err := uc.repo.ListByCompany(ctx, companyID)
	if err != nil {
		return nil, err
	}
	return uc.toResponses(list), nil
}

// EmpresasDisponibles lista las empresas seleccionables como convocantes, ordenadas por nombre.
func (uc *ConvocatoriaUseCase) EmpresasDisponibles(ctx context.Context) ([]dto.CompanyInfo, error) {
	list, err := uc.companyRepo.ListSummaries(ctx)
	if err != nil {
		return nil, err
	}
	items := make([]dto.CompanyInfo, 0, len(list))
	for _, s := range list {
		items = append(items, *toCompanyInfo(s))
	}
	return items, nil
}

func (uc *ConvocatoriaUseCase) ensureCompany(ctx context.Context, companyID *string) error {
	if companyID == nil {
		return nil
	}
	ok, err := uc.companyRepo.Exists(ctx, *companyID)
	if err != nil {
		return err
	}
	if !ok {
		return domain.ErrCompanyNotFound
	}
	return nil
}

// reload relee la convocatoria para incluir la empresa; si desapareció entre medias
// devuelve lo que se escribió.
func (uc *ConvocatoriaUseCase) reload(ctx context.Context, c *entity.Convocatoria, now time.Time) (*dto.ConvocatoriaResponse, error) {
	fresh, err := uc.repo.GetByID(ctx, c.ID)
	if err != nil {
		return nil, err
	}
	if fresh == nil {
		fresh = c
	}
	return toConvocatoriaResponse(fresh, now), nil
}

func (uc *ConvocatoriaUseCase) toResponses(list []*entity.Convocatoria) []dto.ConvocatoriaResponse {
	now := uc.now()
	items := make([]dto.ConvocatoriaResponse, 0, len(list))
	for _, c := range list {
		items = append(items, *toConvocatoriaResponse(c, now))
	}
	return items
}

func validateConvocatoriaFields(titulo, descripcion, categoria, entidad string, presupuesto *decimal.Decimal) error {
	switch {
	case strings.TrimSpace(titulo) == "" || utf8.RuneCountInString(titulo) > 200:
		return domain.ErrInvalidInput
	case strings.TrimSpace(descripcion) == "":
		return domain.ErrInvalidInput
	case strings.TrimSpace(categoria) == "" || utf8.RuneCountInString(categoria) > 100:
		return domain.ErrInvalidInput
	case strings.TrimSpace(entidad) == "" || utf8.RuneCountInString(entidad) > 100:
		return domain.ErrInvalidInput
	case presupuesto != nil && presupuesto.IsNegative():
		return domain.ErrInvalidInput
	}
	return nil
}

// applyConvocatoriaFields copia los campos editables y reporta si alguno cambió.
func applyConvocatoriaFields(c *entity.Convocatoria, in dto.UpdateConvocatoriaRequest, w convocatoria.Window, companyID *string) bool {
	titulo := strings.TrimSpace(in.Titulo)
	categoria := strings.TrimSpace(in.Categoria)
	entidad := strings.TrimSpace(in.Entidad)
	requisitos := requisitosOrEmpty(in.Requisitos)

	changed := c.Titulo != titulo ||
		c.Descripcion != in.Descripcion ||
		!c.FechaInicio.Equal(w.Inicio) ||
		!c.FechaFin.Equal(w.Fin) ||
		c.Categoria != categoria ||
		c.Entidad != entidad ||
		!equalStringPtr(c.CompanyID, companyID) ||
		!equalDecimalPtr(c.Presupuesto, in.Presupuesto) ||
		!slices.Equal(c.Requisitos, requisitos)

	c.Titulo = titulo
	c.Descripcion = in.Descripcion
	c.FechaInicio = w.Inicio
	c.FechaFin = w.Fin
	c.Categoria = categoria
	c.Entidad = entidad
	c.CompanyID = companyID
	c.Presupuesto = in.Presupuesto
	c.Requisitos = requisitos
	return changed
}

func normalizeCompanyID(id *string) *string {
	if id == nil {
		return nil
	}
	s := strings.TrimSpace(*id)
	if s == "" {
		return nil
	}
	return &s
}

func requisitosOrEmpty(in []string) []string {
	if in == nil {
		return []string{}
	}
	return in
}

func equalStringPtr(a, b *string) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}

func equalDecimalPtr(a, b *decimal.Decimal) bool {
	if a == nil || b == nil {
		return a == b
	}
	return a.Equal(*b)
}

// foldText pasa a minúsculas y elimina tildes/diacríticos ("Innovación" -> "innovacion").
func foldText(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(t, s)
	if err != nil {
		out = s
	}
	return strings.ToLower(out)
}

func toConvocatoriaResponse(c *entity.Convocatoria, now time.Time) *dto.ConvocatoriaResponse {
	if c == nil {
		return nil
	}
	var company *dto.CompanyInfo
	if c.Company != nil {
		company = toCompanyInfo(c.Company)
	}
	return &dto.ConvocatoriaResponse{
		ID:            c.ID,
		Titulo:        c.Titulo,
		Descripcion:   c.Descripcion,
		FechaInicio:   c.FechaInicio,
		FechaFin:      c.FechaFin,
		Categoria:     c.Categoria,
		Entidad:       c.Entidad,
		Presupuesto:   c.Presupuesto,
		Estado:        c.Estado.String(),
		EstadoManual:  c.EstadoManual,
		EstaActiva:    c.Estado == convocatoria.EstadoActiva,
		DiasRestantes: convocatoria.DiasRestantes(c.Window(), now),
		Requisitos:    requisitosOrEmpty(c.Requisitos),
		CompanyID:     c.CompanyID,
		Company:       company,
		CreatedAt:     c.CreatedAt,
		UpdatedAt:     c.UpdatedAt,
	}
}

func toCompanyInfo(s *entity.CompanySummary) *dto.CompanyInfo {
	return &dto.CompanyInfo{
		ID:          s.ID,
		Name:        s.Name,
		Sector:      s.Sector,
		LogoURL:     s.LogoURL,
		Description: s.Description,
	}
}

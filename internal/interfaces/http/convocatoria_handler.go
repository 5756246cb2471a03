package http

import (
	"context"
	"net/url"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/InnovationMap-api/internal/application/dto"
)

// ConvocatoriaService lo implementa *usecase.ConvocatoriaUseCase.
type ConvocatoriaService interface {
	Create(ctx context.Context, in dto.CreateConvocatoriaRequest) (*dto.ConvocatoriaResponse, error)
	Update(ctx context.Context, id string, in dto.UpdateConvocatoriaRequest) (*dto.ConvocatoriaResponse, error)
	UpdateEstado(ctx context.Context, id string, in dto.EstadoUpdateRequest) (*dto.ConvocatoriaResponse, error)
	ResetEstadoAutomatico(ctx context.Context, id string) (*dto.ConvocatoriaResponse, error)
	Delete(ctx context.Context, id string) error
	GetByID(ctx context.Context, id string) (*dto.ConvocatoriaResponse, error)
	List(ctx context.Context) ([]dto.ConvocatoriaResponse, error)
	ListByCategoria(ctx context.Context, categoria string) ([]dto.ConvocatoriaResponse, error)
	ListByEstado(ctx context.Context, estado string) ([]dto.ConvocatoriaResponse, error)
	ListActivas(ctx context.Context) ([]dto.ConvocatoriaResponse, error)
	ListByCompany(ctx context.Context, companyID string) ([]dto.ConvocatoriaResponse, error)
	EmpresasDisponibles(ctx context.Context) ([]dto.CompanyInfo, error)
}

// ConvocatoriaHandler maneja las peticiones HTTP para convocatorias.
type ConvocatoriaHandler struct {
	uc ConvocatoriaService
}

// NewConvocatoriaHandler construye el handler.
func NewConvocatoriaHandler(uc ConvocatoriaService) *ConvocatoriaHandler {
	return &ConvocatoriaHandler{uc: uc}
}

// List godoc
// @Summary      Listar convocatorias
// @Tags         convocatorias
// @Produce      json
// @Success      200  {array}  dto.ConvocatoriaResponse
// @Router       /api/convocatorias [get]
func (h *ConvocatoriaHandler) List(c *fiber.Ctx) error {
	return h.respondList(c, func(ctx context.Context) ([]dto.ConvocatoriaResponse, error) {
		return h.uc.List(ctx)
	})
}

// GetByID devuelve una convocatoria o 404.
func (h *ConvocatoriaHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.UserContext(), c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}
	if out == nil {
		return notFound(c, "convocatoria no encontrada")
	}
	return c.JSON(out)
}

// ListByCategoria filtra por categoría (contiene, sin distinguir mayúsculas ni tildes).
func (h *ConvocatoriaHandler) ListByCategoria(c *fiber.Ctx) error {
	categoria := unescapeParam(c.Params("categoria"))
	return h.respondList(c, func(ctx context.Context) ([]dto.ConvocatoriaResponse, error) {
		return h.uc.ListByCategoria(ctx, categoria)
	})
}

// ListByEstado filtra por estado guardado (activa, cerrada, pendiente).
func (h *ConvocatoriaHandler) ListByEstado(c *fiber.Ctx) error {
	estado := c.Params("estado")
	return h.respondList(c, func(ctx context.Context) ([]dto.ConvocatoriaResponse, error) {
		return h.uc.ListByEstado(ctx, estado)
	})
}

// ListActivas devuelve las convocatorias abiertas hoy según sus fechas.
func (h *ConvocatoriaHandler) ListActivas(c *fiber.Ctx) error {
	return h.respondList(c, h.uc.ListActivas)
}

// ListByCompany lista las convocatorias de una empresa.
func (h *ConvocatoriaHandler) ListByCompany(c *fiber.Ctx) error {
	companyID := c.Params("companyId")
	return h.respondList(c, func(ctx context.Context) ([]dto.ConvocatoriaResponse, error) {
		return h.uc.ListByCompany(ctx, companyID)
	})
}

// EmpresasDisponibles lista las empresas seleccionables como convocantes.
func (h *ConvocatoriaHandler) EmpresasDisponibles(c *fiber.Ctx) error {
	out, err := h.uc.EmpresasDisponibles(c.UserContext())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Create godoc
// @Summary      Crear convocatoria
// @Tags         convocatorias
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateConvocatoriaRequest  true  "Datos de la convocatoria"
// @Success      201   {object}  dto.ConvocatoriaResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/convocatorias [post]
func (h *ConvocatoriaHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateConvocatoriaRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.Create(c.UserContext(), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Update reemplaza los campos editables; estado_manual decide cómo queda el estado.
func (h *ConvocatoriaHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateConvocatoriaRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.Update(c.UserContext(), c.Params("id"), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// UpdateEstado fija manualmente el estado.
func (h *ConvocatoriaHandler) UpdateEstado(c *fiber.Ctx) error {
	var in dto.EstadoUpdateRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.UpdateEstado(c.UserContext(), c.Params("id"), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// ResetEstadoAutomatico vuelve al estado calculado por fechas.
func (h *ConvocatoriaHandler) ResetEstadoAutomatico(c *fiber.Ctx) error {
	out, err := h.uc.ResetEstadoAutomatico(c.UserContext(), c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Delete elimina una convocatoria.
func (h *ConvocatoriaHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.UserContext(), c.Params("id")); err != nil {
		return writeError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func (h *ConvocatoriaHandler) respondList(c *fiber.Ctx, fetch func(ctx context.Context) ([]dto.ConvocatoriaResponse, error)) error {
	out, err := fetch(c.UserContext())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// unescapeParam decodifica parámetros de ruta con tildes o espacios ("Innovaci%C3%B3n").
func unescapeParam(s string) string {
	if v, err := url.PathUnescape(s); err == nil {
		return v
	}
	return s
}

package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/InnovationMap-api/internal/domain/entity"
	"github.com/jhoicas/InnovationMap-api/pkg/jwt"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC         AuthService
	UserUC         ProfileService
	CompanyUC      CompanyService
	ConvocatoriaUC ConvocatoriaService
	JWT            jwt.Config
}

// Router registra las rutas de la API. Las rutas estáticas van antes de /:id.
func Router(app *fiber.App, deps RouterDeps) {
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	api := app.Group("/api")
	authn := AuthMiddleware(deps.JWT)
	admin := RequireRole(entity.RoleAdmin)

	// Auth
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC, deps.UserUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)
	authGroup.Get("/profile", authn, authHandler.Profile)
	authGroup.Get("/me", authn, authHandler.Profile)
	authGroup.Put("/profile", authn, authHandler.UpdateProfile)
	authGroup.Post("/change-password", authn, authHandler.ChangePassword)
	authGroup.Post("/refresh-token", authn, authHandler.RefreshToken)
	authGroup.Get("/validate", authn, authHandler.Validate)

	// Companies (lectura pública; escritura solo admin)
	companies := api.Group("/companies")
	companyHandler := NewCompanyHandler(deps.CompanyUC)
	companies.Get("/", companyHandler.List)
	companies.Get("/:id", companyHandler.GetByID)
	companies.Post("/", authn, admin, companyHandler.Create)
	companies.Put("/:id", authn, admin, companyHandler.Update)
	companies.Delete("/:id", authn, admin, companyHandler.Delete)

	// Convocatorias (lectura pública; escritura autenticada; fijar/liberar estado solo admin)
	conv := api.Group("/convocatorias")
	convHandler := NewConvocatoriaHandler(deps.ConvocatoriaUC)
	conv.Get("/", convHandler.List)
	conv.Get("/activas", convHandler.ListActivas)
	conv.Get("/empresas-disponibles", convHandler.EmpresasDisponibles)
	conv.Get("/categoria/:categoria", convHandler.ListByCategoria)
	conv.Get("/estado/:estado", convHandler.ListByEstado)
	conv.Get("/por-empresa/:companyId", convHandler.ListByCompany)
	conv.Get("/:id", convHandler.GetByID)
	conv.Post("/", authn, convHandler.Create)
	conv.Put("/:id/estado/automatico", authn, admin, convHandler.ResetEstadoAutomatico)
	conv.Put("/:id/estado", authn, admin, convHandler.UpdateEstado)
	conv.Put("/:id", authn, convHandler.Update)
	conv.Delete("/:id", authn, convHandler.Delete)
}

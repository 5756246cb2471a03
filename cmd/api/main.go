package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/jhoicas/InnovationMap-api/internal/application/auth"
	"github.com/jhoicas/InnovationMap-api/internal/application/dto"
	"github.com/jhoicas/InnovationMap-api/internal/application/usecase"
	"github.com/jhoicas/InnovationMap-api/internal/infrastructure/postgres"
	httpRouter "github.com/jhoicas/InnovationMap-api/internal/interfaces/http"
	"github.com/jhoicas/InnovationMap-api/pkg/config"
	"github.com/jhoicas/InnovationMap-api/pkg/jwt"
	"github.com/jhoicas/InnovationMap-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.App.LogLevel,
	})
	if err := cfg.Validate(); err != nil {
		log.Fatal().Err(err).Msg("configuración inválida")
	}
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	companyRepo := postgres.NewCompanyRepository(pool)
	userRepo := postgres.NewUserRepository(pool)
	convocatoriaRepo := postgres.NewConvocatoriaRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	jwtCfg := jwt.Config{
		Secret:     cfg.JWT.Secret,
		Issuer:     cfg.JWT.Issuer,
		Audience:   cfg.JWT.Audience,
		Expiration: cfg.JWT.Expiration(),
	}

	zl := log.Zerolog()
	authUC := auth.NewAuthUseCase(userRepo, jwtCfg, zl)
	userUC := usecase.NewUserUseCase(userRepo, zl)
	companyUC := usecase.NewCompanyUseCase(companyRepo, txRunner, zl)
	convocatoriaUC := usecase.NewConvocatoriaUseCase(convocatoriaRepo, companyRepo, txRunner, zl)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			code := fiber.StatusInternalServerError
			msg := "error interno del servidor"
			var fe *fiber.Error
			if errors.As(err, &fe) {
				code, msg = fe.Code, fe.Message
			}
			return c.Status(code).JSON(dto.ErrorResponse{Code: "HTTP_ERROR", Message: msg})
		},
	})
	app.Use(recover.New())
	app.Use(httpRouter.RequestLogger(zl))

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:         authUC,
		UserUC:         userUC,
		CompanyUC:      companyUC,
		ConvocatoriaUC: convocatoriaUC,
		JWT:            jwtCfg,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTP.ShutdownTimeout)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}

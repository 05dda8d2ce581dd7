package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/google/uuid"
	"github.com/swaggo/swag"

	"github.com/jhoicas/finance-dashboard/docs"
	"github.com/jhoicas/finance-dashboard/internal/application/analytics"
	"github.com/jhoicas/finance-dashboard/internal/infrastructure/chart"
	"github.com/jhoicas/finance-dashboard/internal/infrastructure/synthetic"
	httpRouter "github.com/jhoicas/finance-dashboard/internal/interfaces/http"
	"github.com/jhoicas/finance-dashboard/pkg/config"
	"github.com/jhoicas/finance-dashboard/pkg/logger"
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
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Uint64("seed", cfg.Dashboard.Seed).
		Msg("iniciando aplicación")

	datasetRepo := synthetic.NewDatasetRepository(cfg.Dashboard.Seed)
	dashboardUC := analytics.NewDashboardUseCase(datasetRepo, cfg.Dashboard.TopN)
	charts := chart.NewSVGRenderer(cfg.Chart.Width, cfg.Chart.Height)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())
	app.Use(requestid.New(requestid.Config{Generator: uuid.NewString}))
	app.Use(httpRouter.RequestLogger(log.Component("http")))

	if cfg.RateLimit.Enabled() {
		app.Use(httpRouter.NewRateLimiter(cfg.RateLimit.RPS, cfg.RateLimit.Burst).Handler())
	}

	// Swagger UI en local: http://localhost:<port>/docs
	if cfg.Docs.SwaggerFile != "" {
		if _, err := os.Stat(cfg.Docs.SwaggerFile); err == nil {
			app.Use(swagger.New(swagger.Config{
				BasePath: "/",
				FilePath: cfg.Docs.SwaggerFile,
				Path:     "docs",
				Title:    docs.SwaggerInfo.Title,
			}))
		} else {
			log.Warn().Str("file", cfg.Docs.SwaggerFile).Msg("swagger.json no encontrado; /docs deshabilitado")
		}
	}

	// Especificación OpenAPI embebida en el binario
	app.Get("/openapi.json", func(c *fiber.Ctx) error {
		doc, err := swag.ReadDoc(docs.SwaggerInfo.InstanceName())
		if err != nil {
			return err
		}
		c.Type("json", "utf-8")
		return c.SendString(doc)
	})

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		DashboardUC: dashboardUC,
		Charts:      charts,
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

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}

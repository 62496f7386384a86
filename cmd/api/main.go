package main

import (
	"context"
	"os"
	"strings"
	"time"

	"github.com/gofiber/contrib/otelfiber"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/swagger"
	_ "github.com/joho/godotenv/autoload"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"

	"sitecms/docs"
	"sitecms/internal/config"
	handlers "sitecms/internal/http/handler"
	"sitecms/internal/http/middleware"
	"sitecms/internal/otel"
	"sitecms/internal/repository/docstore"
	"sitecms/internal/service"
	"sitecms/internal/storage"
	"sitecms/internal/store"
)

// @title Site CMS API
// @version 1.0
// @BasePath /
func main() {
	log := zerolog.New(os.Stdout).With().Timestamp().Logger()

	// Load configuration from environment variables (.env auto-loaded if present)
	cfg := config.Load()

	shutdownTracing, err := otel.Init(context.Background(), log)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize tracing")
	}
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := shutdownTracing(ctx); err != nil {
			log.Warn().Err(err).Msg("tracing shutdown failed")
		}
	}()

	// Connect the document store.
	st, err := store.ConnectSurreal(cfg.Surreal, log)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to document store")
	}
	defer st.Close()

	// Reusable S3-compatible object storage client (MinIO-supported).
	objStore, err := storage.NewMinIO(cfg.MinIO)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize object storage")
	}

	// Repositories and services.
	projectRepo := docstore.NewProjectRepo(st, log)
	serviceRepo := docstore.NewServiceRepo(st, log)
	statRepo := docstore.NewStatRepo(st, log)
	contactRepo := docstore.NewContactInfoRepo(st, log)
	hoursRepo := docstore.NewBusinessHourRepo(st, log)
	submissionRepo := docstore.NewSubmissionRepo(st, log)

	svcs := handlers.Services{
		Projects: service.NewProjectService(projectRepo, objStore, log),
		Catalog:  service.NewCatalogService(serviceRepo, statRepo, log),
		Contact:  service.NewContactService(contactRepo, hoursRepo, log),
		Inbox:    service.NewInboxService(submissionRepo, log),
	}

	app := fiber.New(fiber.Config{
		ErrorHandler: handlers.ErrorHandler(),
	})

	// Register global middleware.
	app.Use(middleware.RequestID())
	app.Use(middleware.Logger(log))
	app.Use(otelfiber.Middleware())

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector())
	reg.MustRegister(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	promMW, err := middleware.NewPrometheusMiddleware(reg)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to register metrics")
	}
	app.Use(promMW.Handler())
	app.Get("/metrics", adaptor.HTTPHandler(promhttp.HandlerFor(reg, promhttp.HandlerOpts{})))

	handlers.RegisterRoutes(app, st, svcs)

	// Swagger UI with dynamic host and scheme.
	app.Get("/swagger/*", func(c *fiber.Ctx) error {
		scheme := c.Protocol()
		if proto := c.Get("X-Forwarded-Proto"); proto != "" {
			scheme = strings.Split(proto, ",")[0]
		}

		docs.SwaggerInfo.Host = c.Get("Host")
		docs.SwaggerInfo.Schemes = []string{scheme}

		return swagger.HandlerDefault(c)
	})

	addr := ":" + cfg.Port

	if err := app.Listen(addr); err != nil {
		log.Fatal().Err(err).Msg("failed to start server")
	}
}

package handler

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"

	"sitecms/internal/service"
	"sitecms/internal/store"
)

// Services bundles the use-case layer handed to the router.
type Services struct {
	Projects service.ProjectService
	Catalog  service.CatalogService
	Contact  service.ContactService
	Inbox    service.InboxService
}

// HealthCheck reports whether the document store answers within two seconds.
func HealthCheck(st store.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		ctx, cancel := context.WithTimeout(c.UserContext(), 2*time.Second)
		defer cancel()
		if err := st.Ping(ctx); err != nil {
			return writeError(c, fiber.StatusServiceUnavailable, "SERVICE_UNAVAILABLE", "dependency unavailable")
		}
		return c.Status(fiber.StatusOK).JSON(fiber.Map{"status": "healthy"})
	}
}

// RegisterRoutes attaches all HTTP routes to the provided Fiber app.
func RegisterRoutes(app *fiber.App, st store.Store, svcs Services) {
	app.Get("/health", HealthCheck(st))

	// Plain liveness probe, no dependency checks.
	app.Get("/healthz", func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	})

	app.Get("/projects", ListProjects(svcs.Projects))
	app.Post("/projects", CreateProject(svcs.Projects))
	app.Get("/projects/:id", GetProject(svcs.Projects))
	app.Put("/projects/:id", UpdateProject(svcs.Projects))
	app.Delete("/projects/:id", DeleteProject(svcs.Projects))
	app.Post("/projects/:id/image", UploadProjectImage(svcs.Projects))

	app.Get("/services", ListServices(svcs.Catalog))
	app.Post("/services", CreateService(svcs.Catalog))
	app.Get("/services/:id", GetService(svcs.Catalog))
	app.Put("/services/:id", UpdateService(svcs.Catalog))
	app.Delete("/services/:id", DeleteService(svcs.Catalog))

	app.Get("/stats", ListStats(svcs.Catalog))
	app.Post("/stats", CreateStat(svcs.Catalog))
	app.Get("/stats/:id", GetStat(svcs.Catalog))
	app.Put("/stats/:id", UpdateStat(svcs.Catalog))
	app.Delete("/stats/:id", DeleteStat(svcs.Catalog))

	app.Get("/contact", GetContactInfo(svcs.Contact))
	app.Put("/contact", SaveContactInfo(svcs.Contact))

	app.Get("/hours", ListBusinessHours(svcs.Contact))
	app.Post("/hours", SaveBusinessHours(svcs.Contact))
	app.Put("/hours/week", SaveWeek(svcs.Contact))

	app.Post("/submissions", SubmitContactForm(svcs.Inbox))
	app.Get("/submissions", ListSubmissions(svcs.Inbox))
	app.Get("/submissions/:id", GetSubmission(svcs.Inbox))
	app.Post("/submissions/:id/read", MarkSubmissionRead(svcs.Inbox))
	app.Delete("/submissions/:id", DeleteSubmission(svcs.Inbox))
}

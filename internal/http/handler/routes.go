package handler

import (
	"html/template"
	"io/fs"
	"net/http"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/filesystem"
	"github.com/gofiber/fiber/v2/middleware/limiter"

	"clientintake/internal/config"
	"clientintake/internal/service"
)

// Deps are the collaborators of the HTTP surface.
type Deps struct {
	Intake    service.IntakeService
	Templates *template.Template
	Static    fs.FS
	Relay     config.RelayConfig
	Form      config.FormConfig
}

// RegisterRoutes attaches HTTP routes to the provided Fiber app.
func RegisterRoutes(app *fiber.App, d Deps) {
	pages := NewPages(d.Templates, d.Intake, d.Form.DefaultLang, d.Form.ResetDelay)

	app.Use("/static", filesystem.New(filesystem.Config{
		Root:   http.FS(d.Static),
		MaxAge: 3600,
	}))

	app.Get("/health", HealthCheck(d.Relay))
	app.Get("/healthz", LivenessProbe())

	app.Get("/", pages.Form())
	app.Post("/submit", submitLimiter(d.Form.RateLimitMax, pages.RateLimited), pages.Submit())

	api := app.Group("/api/v1")
	api.Post("/submissions", submitLimiter(d.Form.RateLimitMax, func(c *fiber.Ctx) error {
		return writeError(c, fiber.StatusTooManyRequests, "RATE_LIMITED", "too many requests")
	}), CreateSubmission(d.Intake, pages.lang))
}

// submitLimiter throttles posts per client IP; max 0 disables it.
func submitLimiter(limit int, reached fiber.Handler) fiber.Handler {
	if limit == 0 {
		return func(c *fiber.Ctx) error { return c.Next() }
	}
	return limiter.New(limiter.Config{
		Max:          limit,
		Expiration:   time.Minute,
		LimitReached: reached,
	})
}

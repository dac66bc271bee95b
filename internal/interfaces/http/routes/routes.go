package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/etag"

	"github.com/PavaniTiago/nps-feedback-api/internal/interfaces/http/handlers"
	"github.com/PavaniTiago/nps-feedback-api/internal/interfaces/http/middleware"
)

// Version é exposta no health check
const Version = "1.0.0"

func SetupRoutes(app *fiber.App, h *handlers.Handlers, adminMiddleware fiber.Handler) {
	app.Use(compress.New(compress.Config{
		Level: compress.LevelBestSpeed,
	}))

	// ETag para respostas sem ETag próprio
	app.Use(etag.New())

	// Health check
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status":  "healthy",
			"version": Version,
		})
	})

	groups := middleware.SetupRouteGroups(app, adminMiddleware)

	// Formulário
	groups.Public.Get("/areas", h.Survey.ListAreas)
	groups.Public.Post("/pesquisa", h.Survey.SubmitSurvey)
	groups.Public.Post("/pesquisa/etapas", h.Survey.EvaluateStep)
	groups.Public.Post("/admin/login", h.Auth.Login)

	// Painel e exportação
	groups.Public.Get("/pesquisa", groups.Admin, h.Dashboard.GetDashboard)
	groups.Public.Get("/export", groups.Admin, h.Export.Export)
}

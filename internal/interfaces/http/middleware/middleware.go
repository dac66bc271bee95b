package middleware

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"go.uber.org/zap"

	"github.com/PavaniTiago/nps-feedback-api/internal/config"
)

func SetupMiddlewares(app *fiber.App, cfg config.ServerConfig, logger *zap.Logger) {
	// CORS configuration
	app.Use(cors.New(cors.Config{
		AllowOrigins:  cfg.AllowOrigins,
		AllowMethods:  "GET,POST,OPTIONS",
		AllowHeaders:  "Origin, Content-Type, Accept, Authorization, X-Request-ID",
		ExposeHeaders: "Content-Disposition, ETag, X-Request-ID",
		MaxAge:        300, // 5 minutes
	}))

	app.Use(RequestLogger(logger))
}

// RouteGroups define os grupos de rotas da API
type RouteGroups struct {
	Public fiber.Router
	// Admin é aplicado rota a rota: /api/pesquisa é pública no POST e restrita no GET
	Admin fiber.Handler
}

// SetupRouteGroups configura os grupos de rotas com seus respectivos middlewares
func SetupRouteGroups(app *fiber.App, adminMiddleware fiber.Handler) RouteGroups {
	return RouteGroups{
		Public: app.Group("/api"),
		Admin:  adminMiddleware,
	}
}

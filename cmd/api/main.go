package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"
	"time"
	_ "time/tzdata"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/PavaniTiago/nps-feedback-api/internal/application/usecases"
	"github.com/PavaniTiago/nps-feedback-api/internal/config"
	"github.com/PavaniTiago/nps-feedback-api/internal/domain/repositories"
	"github.com/PavaniTiago/nps-feedback-api/internal/infrastructure/auth"
	"github.com/PavaniTiago/nps-feedback-api/internal/infrastructure/database"
	"github.com/PavaniTiago/nps-feedback-api/internal/infrastructure/logger"
	"github.com/PavaniTiago/nps-feedback-api/internal/interfaces/http/handlers"
	"github.com/PavaniTiago/nps-feedback-api/internal/interfaces/http/middleware"
	"github.com/PavaniTiago/nps-feedback-api/internal/interfaces/http/routes"
	"github.com/PavaniTiago/nps-feedback-api/internal/utils"
)

const serviceName = "nps-feedback-api"

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("❌ Error loading config: %v", err)
	}

	zlog, err := logger.NewLogger(cfg.Log.Level, cfg.Log.Format, serviceName)
	if err != nil {
		log.Fatalf("❌ Error creating logger: %v", err)
	}
	defer zlog.Sync()

	// Initialize database
	db, err := database.SetupDatabase(cfg.Database, zlog)
	if err != nil {
		zlog.Fatal("Error setting up database", zap.Error(err))
	}

	loc := utils.LoadLocation(cfg.Timezone)

	// Repositories
	surveyRepo := repositories.NewSurveyRepository(db, zlog, cfg.Database.QueryTimeout)
	analyticsRepo := repositories.NewAnalyticsRepository(db, zlog, cfg.Database.QueryTimeout, loc)
	exportRepo := repositories.NewExportRepository(db, zlog, cfg.Database.QueryTimeout, loc)

	// Use Cases
	surveyUseCase := usecases.NewSurveyUseCase(surveyRepo, cfg.Intake.StrictFeedback, zlog)
	dashboardUseCase, err := usecases.NewDashboardUseCase(analyticsRepo, cfg.Analytics, loc, zlog)
	if err != nil {
		zlog.Fatal("Error configuring dashboard", zap.Error(err))
	}
	exportUseCase := usecases.NewExportUseCase(exportRepo, loc, zlog)

	authenticator := auth.NewAuthenticator(cfg.Auth.AdminPasswordHash, cfg.Auth.JWTSecret, cfg.Auth.TokenTTL)
	if !authenticator.Enabled() {
		zlog.Warn("ADMIN_PASSWORD_HASH ou JWT_SECRET ausente: login administrativo desabilitado")
	}

	h := handlers.NewHandlers(surveyUseCase, dashboardUseCase, exportUseCase, authenticator, loc, zlog)

	app := fiber.New(fiber.Config{
		AppName:      serviceName,
		Prefork:      false,
		BodyLimit:    cfg.Server.BodyLimit,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	})

	// Setup middleware
	middleware.SetupMiddlewares(app, cfg.Server, zlog)

	// Setup routes
	routes.SetupRoutes(app, h, middleware.RequireAdmin(authenticator))

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		<-ctx.Done()
		zlog.Info("Shutting down server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := app.ShutdownWithContext(shutdownCtx); err != nil {
			zlog.Error("Error shutting down server", zap.Error(err))
		}
	}()

	zlog.Info("🚀 Server is running", zap.String("port", cfg.Server.Port))
	if err := app.Listen(":" + cfg.Server.Port); err != nil {
		zlog.Fatal("Server stopped", zap.Error(err))
	}

	if sqlDB, err := db.DB(); err == nil {
		sqlDB.Close()
	}
}

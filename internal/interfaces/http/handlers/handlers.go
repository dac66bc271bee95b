package handlers

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/PavaniTiago/nps-feedback-api/internal/application/usecases"
	"github.com/PavaniTiago/nps-feedback-api/internal/domain/analytics"
	"github.com/PavaniTiago/nps-feedback-api/internal/domain/entities"
	domainexport "github.com/PavaniTiago/nps-feedback-api/internal/domain/export"
	"github.com/PavaniTiago/nps-feedback-api/internal/domain/intake"
	"github.com/PavaniTiago/nps-feedback-api/internal/infrastructure/export"
)

// SurveyService é o caso de uso do formulário
type SurveyService interface {
	Submit(ctx context.Context, d entities.DraftSurvey) (int64, error)
	EvaluateStep(step intake.Step, d entities.DraftSurvey) (usecases.StepResult, error)
}

// DashboardService é o motor de agregação
type DashboardService interface {
	Dashboard(ctx context.Context, r *analytics.Range) (*entities.Dashboard, error)
}

// ExportService gera o documento de exportação
type ExportService interface {
	Export(ctx context.Context, format domainexport.Format) (export.Document, error)
}

// LoginService confere a senha administrativa
type LoginService interface {
	Login(password string) (string, time.Time, error)
}

type Handlers struct {
	Survey    *SurveyHandler
	Dashboard *DashboardHandler
	Export    *ExportHandler
	Auth      *AuthHandler
}

func NewHandlers(surveys SurveyService, dashboard DashboardService, exporter ExportService, login LoginService, loc *time.Location, logger *zap.Logger) *Handlers {
	return &Handlers{
		Survey:    NewSurveyHandler(surveys, logger),
		Dashboard: NewDashboardHandler(dashboard, loc, logger),
		Export:    NewExportHandler(exporter, logger),
		Auth:      NewAuthHandler(login, logger),
	}
}

const internalErrorMessage = "Erro interno do servidor"

func internalError(c *fiber.Ctx) error {
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
		"success": false,
		"error":   internalErrorMessage,
	})
}

func badRequest(c *fiber.Ctx, message, field string) error {
	body := fiber.Map{
		"success": false,
		"error":   message,
	}
	if field != "" {
		body["campo"] = field
	}
	return c.Status(fiber.StatusBadRequest).JSON(body)
}

func requestID(c *fiber.Ctx) zap.Field {
	id, _ := c.Locals("request_id").(string)
	return zap.String("request_id", id)
}

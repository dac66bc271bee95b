package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/PavaniTiago/nps-feedback-api/internal/domain/entities"
	"github.com/PavaniTiago/nps-feedback-api/internal/domain/intake"
)

// SurveyHandler lida com o formulário de pesquisa
type SurveyHandler struct {
	surveys SurveyService
	logger  *zap.Logger
}

// NewSurveyHandler cria uma nova instância de SurveyHandler
func NewSurveyHandler(surveys SurveyService, logger *zap.Logger) *SurveyHandler {
	return &SurveyHandler{surveys: surveys, logger: logger}
}

// SubmitSurvey grava uma pesquisa completa
// @Router /api/pesquisa [post]
func (h *SurveyHandler) SubmitSurvey(c *fiber.Ctx) error {
	var draft entities.DraftSurvey
	if err := c.BodyParser(&draft); err != nil {
		return badRequest(c, "Corpo da requisição inválido", "")
	}

	id, err := h.surveys.Submit(c.UserContext(), draft)
	if err != nil {
		var verr *intake.ValidationError
		if errors.As(err, &verr) {
			return badRequest(c, verr.Message, verr.Field)
		}
		h.logger.Error("Erro ao salvar pesquisa", requestID(c), zap.Error(err))
		return internalError(c)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"id":      id,
	})
}

type stepRequest struct {
	Step  intake.Step          `json:"etapa"`
	Draft entities.DraftSurvey `json:"rascunho"`
}

// EvaluateStep informa se o rascunho pode avançar da etapa informada
// @Router /api/pesquisa/etapas [post]
func (h *SurveyHandler) EvaluateStep(c *fiber.Ctx) error {
	var req stepRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Corpo da requisição inválido", "")
	}

	res, err := h.surveys.EvaluateStep(req.Step, req.Draft)
	if err != nil {
		var verr *intake.ValidationError
		if errors.As(err, &verr) {
			return badRequest(c, verr.Message, verr.Field)
		}
		h.logger.Error("Erro ao avaliar etapa", requestID(c), zap.Error(err))
		return internalError(c)
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    res,
	})
}

// ListAreas devolve as áreas avaliadas, na ordem do formulário
// @Router /api/areas [get]
func (h *SurveyHandler) ListAreas(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"success": true,
		"data":    entities.Areas,
	})
}

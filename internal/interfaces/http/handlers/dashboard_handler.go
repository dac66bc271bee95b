package handlers

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/PavaniTiago/nps-feedback-api/internal/domain/analytics"
)

// DashboardHandler lida com requisições do painel de satisfação
type DashboardHandler struct {
	dashboard DashboardService
	loc       *time.Location
	logger    *zap.Logger
}

// NewDashboardHandler cria uma nova instância de DashboardHandler
func NewDashboardHandler(dashboard DashboardService, loc *time.Location, logger *zap.Logger) *DashboardHandler {
	return &DashboardHandler{dashboard: dashboard, loc: loc, logger: logger}
}

// GetDashboard retorna estatísticas, áreas, pesquisas recentes e série diária
// @Param dataInicio query string false "Data inicial (formato: 2006-01-02)"
// @Param dataFim query string false "Data final (formato: 2006-01-02)"
// @Router /api/pesquisa [get]
func (h *DashboardHandler) GetDashboard(c *fiber.Ctx) error {
	startTime := time.Now()

	r, err := analytics.ParseRange(c.Query("dataInicio"), c.Query("dataFim"), h.loc)
	if err != nil {
		if errors.Is(err, analytics.ErrInvalidRange) {
			return badRequest(c, err.Error(), "dataInicio")
		}
		return internalError(c)
	}

	dash, err := h.dashboard.Dashboard(c.UserContext(), r)
	if err != nil {
		h.logger.Error("Erro ao buscar dados do painel", requestID(c), zap.Error(err))
		return internalError(c)
	}

	rounded := dash.Rounded()
	etag := rounded.CalculateETag()

	// Verificar se o cliente já tem a versão mais recente
	if c.Get(fiber.HeaderIfNoneMatch) == etag {
		return c.SendStatus(fiber.StatusNotModified)
	}
	c.Set(fiber.HeaderETag, etag)

	h.logger.Debug("painel servido",
		requestID(c),
		zap.Duration("duration", time.Since(startTime)),
	)

	return c.JSON(fiber.Map{
		"success": true,
		"data":    rounded,
	})
}

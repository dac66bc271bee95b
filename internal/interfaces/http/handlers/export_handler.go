package handlers

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	domainexport "github.com/PavaniTiago/nps-feedback-api/internal/domain/export"
)

// ExportHandler entrega o documento de exportação
type ExportHandler struct {
	exporter ExportService
	logger   *zap.Logger
}

// NewExportHandler cria uma nova instância de ExportHandler
func NewExportHandler(exporter ExportService, logger *zap.Logger) *ExportHandler {
	return &ExportHandler{exporter: exporter, logger: logger}
}

// Export gera o arquivo com todas as pesquisas
// @Param formato query string false "csv (padrão) ou xlsx"
// @Router /api/export [get]
func (h *ExportHandler) Export(c *fiber.Ctx) error {
	format, err := domainexport.ParseFormat(c.Query("formato"))
	if err != nil {
		return badRequest(c, err.Error(), "formato")
	}

	doc, err := h.exporter.Export(c.UserContext(), format)
	if err != nil {
		h.logger.Error("Erro ao exportar", requestID(c), zap.Error(err))
		return internalError(c)
	}

	c.Set(fiber.HeaderContentType, doc.ContentType)
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="%s"`, doc.FileName))
	return c.Send(doc.Body)
}

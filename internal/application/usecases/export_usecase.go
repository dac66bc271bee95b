package usecases

import (
	"context"
	"time"

	"go.uber.org/zap"

	domainexport "github.com/PavaniTiago/nps-feedback-api/internal/domain/export"
	"github.com/PavaniTiago/nps-feedback-api/internal/domain/repositories"
	"github.com/PavaniTiago/nps-feedback-api/internal/infrastructure/export"
	applog "github.com/PavaniTiago/nps-feedback-api/internal/infrastructure/logger"
)

// ExportUseCase gera o documento de exportação com todas as pesquisas
type ExportUseCase struct {
	source repositories.ExportSource
	loc    *time.Location
	logger *zap.Logger
	now    func() time.Time
}

// NewExportUseCase cria uma nova instância de ExportUseCase
func NewExportUseCase(source repositories.ExportSource, loc *time.Location, logger *zap.Logger) *ExportUseCase {
	return &ExportUseCase{source: source, loc: loc, logger: logger, now: time.Now}
}

// Export lê, achata e codifica as pesquisas no formato pedido
func (u *ExportUseCase) Export(ctx context.Context, format domainexport.Format) (export.Document, error) {
	data, err := u.source.ExportData(ctx)
	if err != nil {
		return export.Document{}, err
	}

	rows := domainexport.Project(data.Surveys, data.Evaluations, data.Referrals)
	doc, err := export.Encode(format, rows, u.now(), u.loc)
	if err != nil {
		return export.Document{}, err
	}

	applog.FromContext(ctx, u.logger).Info("exportação gerada",
		zap.String("formato", string(format)),
		zap.Int("linhas", len(rows)),
		zap.Int("bytes", len(doc.Body)),
	)
	return doc, nil
}

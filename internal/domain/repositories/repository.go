package repositories

import (
	"context"
	"errors"

	"github.com/PavaniTiago/nps-feedback-api/internal/domain/analytics"
	"github.com/PavaniTiago/nps-feedback-api/internal/domain/entities"
)

var (
	// ErrWriteFailed indica que a gravação da pesquisa foi desfeita por completo
	ErrWriteFailed = errors.New("falha ao gravar pesquisa")
	// ErrReadFailed indica falha em uma consulta de leitura
	ErrReadFailed = errors.New("falha ao consultar pesquisas")
)

// SurveyWriter grava uma pesquisa completa em uma única transação
type SurveyWriter interface {
	Submit(ctx context.Context, draft entities.DraftSurvey) (int64, error)
}

// AnalyticsSource fornece os agregados usados pelo motor do painel.
// Uma janela sem limites considera todas as pesquisas.
type AnalyticsSource interface {
	NPSDistribution(ctx context.Context, w analytics.Window) ([]entities.NPSBucket, error)
	AreaAggregates(ctx context.Context, w analytics.Window) ([]entities.AreaAggregate, error)
	DailyAggregates(ctx context.Context, w analytics.Window) ([]entities.DayAggregate, error)
	RecentSurveys(ctx context.Context, w analytics.Window, limit int) ([]entities.SurveyRecord, error)
}

// ExportSource lê todas as pesquisas com avaliações e indicações
type ExportSource interface {
	ExportData(ctx context.Context) (ExportData, error)
}

// ExportData são as linhas cruas lidas para a exportação
type ExportData struct {
	Surveys     []entities.SurveyRecord
	Evaluations []entities.EvaluationRecord
	Referrals   []entities.ReferralRecord
}

package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/PavaniTiago/nps-feedback-api/internal/domain/analytics"
	applog "github.com/PavaniTiago/nps-feedback-api/internal/infrastructure/logger"
)

// ExportRepository lê todas as pesquisas para exportação, sem filtro de datas
type ExportRepository struct {
	db      *gorm.DB
	logger  *zap.Logger
	timeout time.Duration
	loc     *time.Location
}

// NewExportRepository cria uma nova instância de ExportRepository
func NewExportRepository(db *gorm.DB, logger *zap.Logger, timeout time.Duration, loc *time.Location) *ExportRepository {
	return &ExportRepository{db: db, logger: logger, timeout: timeout, loc: loc}
}

// ExportData lê as três relações em uma transação somente leitura para que
// pesquisas gravadas durante a leitura não apareçam pela metade
func (r *ExportRepository) ExportData(ctx context.Context) (ExportData, error) {
	db, cancel := withTimeout(ctx, r.db, r.timeout)
	defer cancel()
	log := applog.FromContext(ctx, r.logger)

	var out ExportData
	err := db.Transaction(func(tx *gorm.DB) error {
		var err error
		if out.Surveys, err = selectSurveys(tx, analytics.Window{}, 0, r.loc); err != nil {
			log.Error("erro ao buscar pesquisas", zap.Error(err))
			return fmt.Errorf("%w: pesquisas: %w", ErrReadFailed, err)
		}
		if err := tx.Table("avaliacoes a").
			Select("a.pesquisa_id, a.area, a.nota, a.nao_se_aplica, a.feedback_positivo, a.feedback_melhoria").
			Order("a.pesquisa_id, a.id").
			Scan(&out.Evaluations).Error; err != nil {
			log.Error("erro ao buscar avaliações", zap.Error(err))
			return fmt.Errorf("%w: avaliações: %w", ErrReadFailed, err)
		}
		if err := tx.Table("indicacoes").
			Select("pesquisa_id, nome, empresa, email, telefone").
			Order("pesquisa_id, id").
			Scan(&out.Referrals).Error; err != nil {
			log.Error("erro ao buscar indicações", zap.Error(err))
			return fmt.Errorf("%w: indicações: %w", ErrReadFailed, err)
		}
		return nil
	}, &sql.TxOptions{ReadOnly: true, Isolation: sql.LevelRepeatableRead})
	if err != nil {
		if !errors.Is(err, ErrReadFailed) {
			err = fmt.Errorf("%w: %w", ErrReadFailed, err)
		}
		return ExportData{}, err
	}
	return out, nil
}

var _ ExportSource = (*ExportRepository)(nil)
var _ AnalyticsSource = (*AnalyticsRepository)(nil)
var _ SurveyWriter = (*SurveyRepository)(nil)

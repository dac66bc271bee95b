package repositories

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/PavaniTiago/nps-feedback-api/internal/domain/analytics"
	"github.com/PavaniTiago/nps-feedback-api/internal/domain/entities"
	applog "github.com/PavaniTiago/nps-feedback-api/internal/infrastructure/logger"
)

// AnalyticsRepository agrega no banco as linhas usadas pelo painel
type AnalyticsRepository struct {
	db      *gorm.DB
	logger  *zap.Logger
	timeout time.Duration
	loc     *time.Location
}

// NewAnalyticsRepository cria uma nova instância de AnalyticsRepository
func NewAnalyticsRepository(db *gorm.DB, logger *zap.Logger, timeout time.Duration, loc *time.Location) *AnalyticsRepository {
	return &AnalyticsRepository{db: db, logger: logger, timeout: timeout, loc: loc}
}

func withTimeout(ctx context.Context, db *gorm.DB, timeout time.Duration) (*gorm.DB, context.CancelFunc) {
	if timeout > 0 {
		ctx, cancel := context.WithTimeout(ctx, timeout)
		return db.WithContext(ctx), cancel
	}
	return db.WithContext(ctx), func() {}
}

func applyWindow(q *gorm.DB, w analytics.Window) *gorm.DB {
	if !w.From.IsZero() {
		q = q.Where("p.created_at >= ?", w.From)
	}
	if !w.To.IsZero() {
		q = q.Where("p.created_at < ?", w.To)
	}
	return q
}

// windowSQL monta o WHERE de created_at para consultas Raw
func windowSQL(w analytics.Window) (string, []interface{}) {
	var conds []string
	var args []interface{}
	if !w.From.IsZero() {
		conds = append(conds, "p.created_at >= ?")
		args = append(args, w.From)
	}
	if !w.To.IsZero() {
		conds = append(conds, "p.created_at < ?")
		args = append(args, w.To)
	}
	if len(conds) == 0 {
		return "", nil
	}
	return "WHERE " + strings.Join(conds, " AND "), args
}

func (r *AnalyticsRepository) readFailed(ctx context.Context, what string, err error) error {
	applog.FromContext(ctx, r.logger).Error("erro ao consultar "+what, zap.Error(err))
	return fmt.Errorf("%w: %s: %w", ErrReadFailed, what, err)
}

// NPSDistribution conta as pesquisas da janela por nota NPS
func (r *AnalyticsRepository) NPSDistribution(ctx context.Context, w analytics.Window) ([]entities.NPSBucket, error) {
	db, cancel := withTimeout(ctx, r.db, r.timeout)
	defer cancel()

	where, args := windowSQL(w)
	query := fmt.Sprintf(`
		SELECT p.nps, COUNT(*) AS total
		FROM pesquisas p
		%s
		GROUP BY p.nps
		ORDER BY p.nps
	`, where)

	var rows []entities.NPSBucket
	if err := db.Raw(query, args...).Scan(&rows).Error; err != nil {
		return nil, r.readFailed(ctx, "distribuição de NPS", err)
	}
	return rows, nil
}

// AreaAggregates soma as avaliações da janela por área e marcação "não se aplica".
// Feedback em branco não conta.
func (r *AnalyticsRepository) AreaAggregates(ctx context.Context, w analytics.Window) ([]entities.AreaAggregate, error) {
	db, cancel := withTimeout(ctx, r.db, r.timeout)
	defer cancel()

	where, args := windowSQL(w)
	query := fmt.Sprintf(`
		SELECT
			a.area,
			a.nao_se_aplica,
			COUNT(*) AS total,
			COALESCE(SUM(a.nota), 0)::bigint AS soma_notas,
			COUNT(*) FILTER (WHERE btrim(a.feedback_positivo) <> '') AS feedbacks_positivos,
			COUNT(*) FILTER (WHERE btrim(a.feedback_melhoria) <> '') AS feedbacks_melhoria
		FROM avaliacoes a
		JOIN pesquisas p ON a.pesquisa_id = p.id
		%s
		GROUP BY a.area, a.nao_se_aplica
	`, where)

	var rows []entities.AreaAggregate
	if err := db.Raw(query, args...).Scan(&rows).Error; err != nil {
		return nil, r.readFailed(ctx, "dados por área", err)
	}
	return rows, nil
}

// DailyAggregates agrupa as pesquisas da janela por dia civil no fuso do serviço
func (r *AnalyticsRepository) DailyAggregates(ctx context.Context, w analytics.Window) ([]entities.DayAggregate, error) {
	db, cancel := withTimeout(ctx, r.db, r.timeout)
	defer cancel()

	where, args := windowSQL(w)
	query := fmt.Sprintf(`
		SELECT
			to_char(p.created_at AT TIME ZONE ?, 'YYYY-MM-DD') AS dia,
			COUNT(*) AS total,
			SUM(p.nps)::bigint AS soma_nps
		FROM pesquisas p
		%s
		GROUP BY dia
		ORDER BY dia
	`, where)

	var rows []entities.DayAggregate
	if err := db.Raw(query, append([]interface{}{r.loc.String()}, args...)...).Scan(&rows).Error; err != nil {
		return nil, r.readFailed(ctx, "timeline", err)
	}
	return rows, nil
}

// RecentSurveys retorna até limit pesquisas da janela, da mais recente para a mais antiga
func (r *AnalyticsRepository) RecentSurveys(ctx context.Context, w analytics.Window, limit int) ([]entities.SurveyRecord, error) {
	db, cancel := withTimeout(ctx, r.db, r.timeout)
	defer cancel()

	rows, err := selectSurveys(db, w, limit, r.loc)
	if err != nil {
		return nil, r.readFailed(ctx, "pesquisas recentes", err)
	}
	return rows, nil
}

// selectSurveys lê pesquisas unidas à empresa; limit <= 0 não limita
func selectSurveys(db *gorm.DB, w analytics.Window, limit int, loc *time.Location) ([]entities.SurveyRecord, error) {
	var rows []entities.SurveyRecord
	q := db.Table("pesquisas p").
		Select("p.id, e.nome AS empresa, e.responsavel, p.nps, p.quer_indicar, p.created_at").
		Joins("JOIN empresas e ON p.empresa_id = e.id")
	q = applyWindow(q, w).Order("p.created_at DESC, p.id DESC")
	if limit > 0 {
		q = q.Limit(limit)
	}
	if err := q.Scan(&rows).Error; err != nil {
		return nil, err
	}
	for i := range rows {
		rows[i].CreatedAt = rows[i].CreatedAt.In(loc)
	}
	return rows, nil
}

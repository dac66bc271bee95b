package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/PavaniTiago/nps-feedback-api/internal/domain/entities"
	applog "github.com/PavaniTiago/nps-feedback-api/internal/infrastructure/logger"
)

// SurveyRepository grava pesquisas respondidas
type SurveyRepository struct {
	db      *gorm.DB
	logger  *zap.Logger
	timeout time.Duration
	now     func() time.Time
}

// NewSurveyRepository cria uma nova instância de SurveyRepository
func NewSurveyRepository(db *gorm.DB, logger *zap.Logger, timeout time.Duration) *SurveyRepository {
	return &SurveyRepository{
		db:      db,
		logger:  logger,
		timeout: timeout,
		now:     time.Now,
	}
}

// insertStep é uma inserção da unidade de trabalho
type insertStep struct {
	name string
	run  func(tx *gorm.DB) error
}

// plan monta as inserções na ordem exigida pelas chaves estrangeiras:
// empresa, pesquisa, avaliações e, se houver, indicações
func (r *SurveyRepository) plan(d entities.DraftSurvey, survey *entities.Survey) []insertStep {
	company := &entities.Company{Name: d.Company, ResponsibleName: d.Responsible}
	survey.WantsReferral = d.WantsReferral
	survey.CreatedAt = r.now()
	if d.NPS != nil {
		survey.NPS = *d.NPS
	}

	steps := []insertStep{
		{name: "empresas", run: func(tx *gorm.DB) error {
			return tx.Create(company).Error
		}},
		{name: "pesquisas", run: func(tx *gorm.DB) error {
			survey.CompanyID = company.ID
			return tx.Omit(clause.Associations).Create(survey).Error
		}},
	}

	if len(d.Evaluations) > 0 {
		steps = append(steps, insertStep{name: "avaliacoes", run: func(tx *gorm.DB) error {
			evals := make([]entities.AreaEvaluation, 0, len(d.Evaluations))
			for _, e := range d.Evaluations {
				score := e.Score()
				evals = append(evals, entities.AreaEvaluation{
					SurveyID:            survey.ID,
					Area:                e.Area,
					Score:               score.Value(),
					NotApplicable:       !score.IsApplicable(),
					PositiveFeedback:    e.PositiveFeedback,
					ImprovementFeedback: e.ImprovementFeedback,
				})
			}
			return tx.Omit(clause.Associations).Create(&evals).Error
		}})
	}

	if d.WantsReferral && len(d.Referrals) > 0 {
		steps = append(steps, insertStep{name: "indicacoes", run: func(tx *gorm.DB) error {
			refs := make([]entities.Referral, 0, len(d.Referrals))
			for _, ref := range d.Referrals {
				refs = append(refs, entities.Referral{
					SurveyID:    survey.ID,
					Name:        ref.Name,
					CompanyName: ref.CompanyName,
					Email:       ref.Email,
					Phone:       ref.Phone,
				})
			}
			return tx.Omit(clause.Associations).Create(&refs).Error
		}})
	}

	return steps
}

// Submit grava a pesquisa inteira ou nada. O id só é retornado após o commit.
func (r *SurveyRepository) Submit(ctx context.Context, d entities.DraftSurvey) (int64, error) {
	if r.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, r.timeout)
		defer cancel()
	}

	var survey entities.Survey
	steps := r.plan(d, &survey)

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, step := range steps {
			if err := step.run(tx); err != nil {
				return fmt.Errorf("erro ao inserir em %s: %w", step.name, err)
			}
		}
		return nil
	})
	if err != nil {
		r.logWriteError(ctx, err)
		return 0, fmt.Errorf("%w: %w", ErrWriteFailed, err)
	}

	applog.FromContext(ctx, r.logger).Info("pesquisa gravada",
		zap.Int64("pesquisa_id", survey.ID),
		zap.Int("avaliacoes", len(d.Evaluations)),
		zap.Int("indicacoes", len(d.Referrals)),
	)
	return survey.ID, nil
}

func (r *SurveyRepository) logWriteError(ctx context.Context, err error) {
	log := applog.FromContext(ctx, r.logger)
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && IsConstraintViolation(pgErr) {
		log.Warn("violação de restrição ao gravar pesquisa",
			zap.String("code", pgErr.Code),
			zap.String("constraint", pgErr.ConstraintName),
			zap.String("table", pgErr.TableName),
			zap.Error(err),
		)
		return
	}
	log.Error("erro ao gravar pesquisa, transação desfeita", zap.Error(err))
}

// IsConstraintViolation indica erros da classe 23 (integridade) do Postgres
func IsConstraintViolation(pgErr *pgconn.PgError) bool {
	return len(pgErr.Code) == 5 && pgErr.Code[:2] == "23"
}

package usecases

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"github.com/PavaniTiago/nps-feedback-api/internal/domain/entities"
	"github.com/PavaniTiago/nps-feedback-api/internal/domain/intake"
	"github.com/PavaniTiago/nps-feedback-api/internal/domain/repositories"
	applog "github.com/PavaniTiago/nps-feedback-api/internal/infrastructure/logger"
)

// SurveyUseCase implementa os casos de uso do preenchimento e envio de pesquisas
type SurveyUseCase struct {
	repo   repositories.SurveyWriter
	strict bool
	logger *zap.Logger
}

// NewSurveyUseCase cria uma nova instância de SurveyUseCase
func NewSurveyUseCase(repo repositories.SurveyWriter, strict bool, logger *zap.Logger) *SurveyUseCase {
	return &SurveyUseCase{
		repo:   repo,
		strict: strict,
		logger: logger,
	}
}

// Submit normaliza, revalida e grava a pesquisa em uma única transação
func (u *SurveyUseCase) Submit(ctx context.Context, d entities.DraftSurvey) (int64, error) {
	draft := intake.NormalizeDraft(d)
	if err := intake.ValidateSubmission(draft, u.strict); err != nil {
		applog.FromContext(ctx, u.logger).Debug("pesquisa rejeitada na validação", zap.Error(err))
		return 0, err
	}
	return u.repo.Submit(ctx, draft)
}

// StepResult é a avaliação de uma etapa do preenchimento
type StepResult struct {
	Step         intake.Step                                  `json:"etapa"`
	CanAdvance   bool                                         `json:"podeAvancar"`
	Field        string                                       `json:"campo,omitempty"`
	Message      string                                       `json:"erro,omitempty"`
	Requirements map[entities.Area]intake.FeedbackRequirement `json:"exigencias"`
	Celebrate    bool                                         `json:"celebrar"`
	Draft        entities.DraftSurvey                         `json:"rascunho"`
}

// EvaluateStep informa se o rascunho pode sair da etapa. Na revisão,
// "avançar" significa enviar, então aplica as mesmas regras do Submit.
func (u *SurveyUseCase) EvaluateStep(step intake.Step, d entities.DraftSurvey) (StepResult, error) {
	flow, err := intake.Resume(step, d)
	if err != nil {
		return StepResult{}, err
	}
	// NPS fora da faixa fica no rascunho para a regra da etapa 1 apontar o campo
	if d.NPS != nil && *d.NPS >= intake.MinNPS && *d.NPS <= intake.MaxNPS {
		_ = flow.SetNPS(*d.NPS)
	}

	draft := flow.Draft()
	var check error
	if step == intake.StepReview {
		check = intake.ValidateSubmission(intake.NormalizeDraft(draft), u.strict)
	} else {
		check = flow.CanAdvance()
	}

	res := StepResult{
		Step:         step,
		CanAdvance:   check == nil,
		Requirements: intake.Requirements(draft),
		Draft:        draft,
	}
	for _, ev := range flow.TakeEvents() {
		if ev == intake.EventPerfectScore {
			res.Celebrate = true
		}
	}
	if check != nil {
		res.Message = check.Error()
		var verr *intake.ValidationError
		if errors.As(check, &verr) {
			res.Field = verr.Field
		}
	}
	return res, nil
}

package intake

import (
	"fmt"
	"strings"

	"github.com/PavaniTiago/nps-feedback-api/internal/domain/entities"
)

// Step é a etapa do preenchimento
type Step int

const (
	StepBasics Step = 1 // empresa, responsável e NPS
	StepAreas  Step = 2 // avaliação das áreas
	StepReview Step = 3 // revisão e envio
)

const (
	MinNPS      = 0
	MaxNPS      = 10
	ReferralNPS = 7
	PerfectNPS  = 10
)

func (s Step) Valid() bool { return s >= StepBasics && s <= StepReview }

// FeedbackRequirement indica qual texto é obrigatório para a nota atual de uma área
type FeedbackRequirement string

const (
	FeedbackNone        FeedbackRequirement = ""
	FeedbackImprovement FeedbackRequirement = "melhoria"
	FeedbackPositive    FeedbackRequirement = "positivo"
)

func blank(s string) bool { return strings.TrimSpace(s) == "" }

// RequiredFeedback: nota 1..4 exige sugestão de melhoria, nota 5 exige feedback positivo
func RequiredFeedback(e entities.EvaluationDraft) FeedbackRequirement {
	score := e.Score()
	if !score.IsApplicable() {
		return FeedbackNone
	}
	switch v := score.Value(); {
	case v >= entities.MinScore && v < entities.MaxScore:
		return FeedbackImprovement
	case v == entities.MaxScore:
		return FeedbackPositive
	}
	return FeedbackNone
}

// EvaluationSatisfied indica se a avaliação cumpre o texto exigido pela nota
func EvaluationSatisfied(e entities.EvaluationDraft) bool {
	switch RequiredFeedback(e) {
	case FeedbackImprovement:
		return !blank(e.ImprovementFeedback)
	case FeedbackPositive:
		return !blank(e.PositiveFeedback)
	}
	return true
}

// CheckBasics valida a saída da etapa 1
func CheckBasics(d entities.DraftSurvey) error {
	if blank(d.Company) {
		return invalid("empresa", "Informe o nome da empresa")
	}
	if blank(d.Responsible) {
		return invalid("responsavel", "Informe o nome do responsável")
	}
	if d.NPS == nil {
		return invalid("nps", "Selecione uma nota de 0 a 10")
	}
	if *d.NPS < MinNPS || *d.NPS > MaxNPS {
		return invalid("nps", fmt.Sprintf("NPS deve estar entre %d e %d", MinNPS, MaxNPS))
	}
	return nil
}

// CheckAreas valida a saída da etapa 2. Área sem avaliação registrada não bloqueia.
func CheckAreas(d entities.DraftSurvey) error {
	for _, area := range entities.Areas {
		e, ok := d.Evaluation(area)
		if !ok || EvaluationSatisfied(e) {
			continue
		}
		if RequiredFeedback(e) == FeedbackImprovement {
			return invalid(feedbackField(area, FeedbackImprovement),
				fmt.Sprintf("Conte o que podemos melhorar em %s", area))
		}
		return invalid(feedbackField(area, FeedbackPositive),
			fmt.Sprintf("Conte o que você mais gosta em %s", area))
	}
	return nil
}

// CheckStep valida se o rascunho pode deixar a etapa informada
func CheckStep(step Step, d entities.DraftSurvey) error {
	switch step {
	case StepBasics:
		return CheckBasics(d)
	case StepAreas:
		return CheckAreas(d)
	case StepReview:
		return ErrLastStep
	}
	return fmt.Errorf("etapa inválida: %d", step)
}

// Requirements mapeia cada área para o feedback exigido no momento
func Requirements(d entities.DraftSurvey) map[entities.Area]FeedbackRequirement {
	out := make(map[entities.Area]FeedbackRequirement, len(entities.Areas))
	for _, area := range entities.Areas {
		e, ok := d.Evaluation(area)
		if !ok {
			out[area] = FeedbackNone
			continue
		}
		out[area] = RequiredFeedback(e)
	}
	return out
}

// ApplyNPS registra o NPS; abaixo de 7 a opção de indicar e as indicações são descartadas
func ApplyNPS(d entities.DraftSurvey, nps int) entities.DraftSurvey {
	out := d.Clone()
	out.NPS = &nps
	if nps < ReferralNPS {
		out.WantsReferral = false
		out.Referrals = nil
	}
	return out
}

func feedbackField(area entities.Area, req FeedbackRequirement) string {
	if req == FeedbackPositive {
		return fmt.Sprintf("avaliacoes[%s].feedbackPositivo", area)
	}
	return fmt.Sprintf("avaliacoes[%s].feedbackMelhoria", area)
}

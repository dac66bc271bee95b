package intake

import (
	"fmt"

	"github.com/PavaniTiago/nps-feedback-api/internal/domain/entities"
)

// Event é um acontecimento do preenchimento consumido pela camada de apresentação
type Event string

// EventPerfectScore é emitido sempre que o NPS é definido como 10
const EventPerfectScore Event = "nps_10"

// Flow conduz o preenchimento em 3 etapas. Não é seguro para uso concorrente.
type Flow struct {
	step   Step
	draft  entities.DraftSurvey
	events []Event
}

// NewFlow inicia um preenchimento vazio na etapa 1
func NewFlow() *Flow {
	return &Flow{step: StepBasics}
}

// Resume reconstrói um preenchimento a partir de um rascunho já acumulado
func Resume(step Step, draft entities.DraftSurvey) (*Flow, error) {
	if !step.Valid() {
		return nil, invalid("etapa", fmt.Sprintf("etapa inválida: %d", step))
	}
	return &Flow{step: step, draft: draft.Clone()}, nil
}

func (f *Flow) Step() Step { return f.step }

// Draft retorna uma cópia do rascunho atual
func (f *Flow) Draft() entities.DraftSurvey { return f.draft.Clone() }

func (f *Flow) SetCompany(name string)     { f.draft.Company = name }
func (f *Flow) SetResponsible(name string) { f.draft.Responsible = name }

// SetNPS registra a nota de recomendação
func (f *Flow) SetNPS(nps int) error {
	if nps < MinNPS || nps > MaxNPS {
		return invalid("nps", fmt.Sprintf("NPS deve estar entre %d e %d", MinNPS, MaxNPS))
	}
	f.draft = ApplyNPS(f.draft, nps)
	if nps == PerfectNPS {
		f.events = append(f.events, EventPerfectScore)
	}
	return nil
}

// SetWantsReferral marca a opção de indicar, disponível apenas para NPS >= 7
func (f *Flow) SetWantsReferral(wants bool) error {
	if wants && (f.draft.NPS == nil || *f.draft.NPS < ReferralNPS) {
		return ErrReferralNotAllowed
	}
	f.draft.WantsReferral = wants
	if !wants {
		f.draft.Referrals = nil
	}
	return nil
}

func (f *Flow) AddReferral(r entities.ReferralDraft) error {
	if !f.draft.WantsReferral {
		return ErrReferralNotAllowed
	}
	f.draft.Referrals = append(f.draft.Referrals, r)
	return nil
}

func (f *Flow) RemoveReferral(i int) error {
	if i < 0 || i >= len(f.draft.Referrals) {
		return fmt.Errorf("indicação %d não existe", i)
	}
	f.draft.Referrals = append(f.draft.Referrals[:i], f.draft.Referrals[i+1:]...)
	return nil
}

// SetScore escolhe uma nota 1..5 e desfaz a marcação "não se aplica"
func (f *Flow) SetScore(area entities.Area, score int) error {
	if !area.Valid() {
		return invalid("area", fmt.Sprintf("área desconhecida: %q", area))
	}
	if score < entities.MinScore || score > entities.MaxScore {
		return invalid("nota", fmt.Sprintf("nota deve estar entre %d e %d", entities.MinScore, entities.MaxScore))
	}
	e, _ := f.draft.Evaluation(area)
	e.Area = area
	e.Rating = score
	e.NotApplicable = false
	f.draft.PutEvaluation(e)
	return nil
}

// MarkNotApplicable zera a nota e os textos da área
func (f *Flow) MarkNotApplicable(area entities.Area) error {
	if !area.Valid() {
		return invalid("area", fmt.Sprintf("área desconhecida: %q", area))
	}
	f.draft.PutEvaluation(entities.EvaluationDraft{Area: area, NotApplicable: true})
	return nil
}

func (f *Flow) SetPositiveFeedback(area entities.Area, text string) error {
	return f.setFeedback(area, func(e *entities.EvaluationDraft) { e.PositiveFeedback = text })
}

func (f *Flow) SetImprovementFeedback(area entities.Area, text string) error {
	return f.setFeedback(area, func(e *entities.EvaluationDraft) { e.ImprovementFeedback = text })
}

func (f *Flow) setFeedback(area entities.Area, set func(*entities.EvaluationDraft)) error {
	if !area.Valid() {
		return invalid("area", fmt.Sprintf("área desconhecida: %q", area))
	}
	e, _ := f.draft.Evaluation(area)
	e.Area = area
	set(&e)
	f.draft.PutEvaluation(e)
	return nil
}

// RequiredFeedback informa o texto exigido para a área na situação atual
func (f *Flow) RequiredFeedback(area entities.Area) FeedbackRequirement {
	e, ok := f.draft.Evaluation(area)
	if !ok {
		return FeedbackNone
	}
	return RequiredFeedback(e)
}

// CanAdvance retorna nil quando a etapa atual pode ser concluída
func (f *Flow) CanAdvance() error {
	return CheckStep(f.step, f.draft)
}

// Advance avança uma etapa se as regras da etapa atual forem cumpridas
func (f *Flow) Advance() error {
	if err := f.CanAdvance(); err != nil {
		return err
	}
	f.step++
	return nil
}

// Retreat volta uma etapa sem apagar o que já foi preenchido
func (f *Flow) Retreat() error {
	if f.step <= StepBasics {
		return ErrFirstStep
	}
	f.step--
	return nil
}

// TakeEvents devolve e limpa os eventos pendentes
func (f *Flow) TakeEvents() []Event {
	out := f.events
	f.events = nil
	return out
}

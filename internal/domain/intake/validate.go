package intake

import (
	"fmt"
	"strings"

	"github.com/PavaniTiago/nps-feedback-api/internal/domain/entities"
)

// NormalizeDraft prepara o rascunho para envio: textos aparados, uma avaliação para cada
// área fixa (as não tocadas entram com nota 0), linhas "não se aplica" zeradas e
// indicações descartadas quando não cabem.
// Áreas fora da lista e duplicadas são preservadas para que ValidateSubmission as rejeite.
func NormalizeDraft(d entities.DraftSurvey) entities.DraftSurvey {
	out := d.Clone()
	out.Company = strings.TrimSpace(out.Company)
	out.Responsible = strings.TrimSpace(out.Responsible)

	evals := make([]entities.EvaluationDraft, 0, len(out.Evaluations))
	for _, e := range out.Evaluations {
		e.Area = entities.Area(strings.TrimSpace(string(e.Area)))
		e.PositiveFeedback = strings.TrimSpace(e.PositiveFeedback)
		e.ImprovementFeedback = strings.TrimSpace(e.ImprovementFeedback)
		if e.NotApplicable {
			e.Rating = 0
			e.PositiveFeedback = ""
			e.ImprovementFeedback = ""
		}
		evals = append(evals, e)
	}
	out.Evaluations = orderEvaluations(evals)

	refs := make([]entities.ReferralDraft, 0, len(out.Referrals))
	for _, r := range out.Referrals {
		r.Name = strings.TrimSpace(r.Name)
		r.CompanyName = strings.TrimSpace(r.CompanyName)
		r.Email = strings.TrimSpace(r.Email)
		r.Phone = strings.TrimSpace(r.Phone)
		refs = append(refs, r)
	}
	out.Referrals = refs
	if !out.WantsReferral {
		out.Referrals = nil
	}

	if out.NPS != nil {
		out = ApplyNPS(out, *out.NPS)
	}
	return out
}

// orderEvaluations coloca as áreas conhecidas na ordem de apresentação, completa as
// ausentes com nota 0 e mantém as demais ao final
func orderEvaluations(evals []entities.EvaluationDraft) []entities.EvaluationDraft {
	out := make([]entities.EvaluationDraft, 0, len(entities.Areas)+len(evals))
	used := make([]bool, len(evals))
	for _, area := range entities.Areas {
		found := false
		for i, e := range evals {
			if !used[i] && e.Area == area {
				out = append(out, e)
				used[i] = true
				found = true
			}
		}
		if !found {
			out = append(out, entities.EvaluationDraft{Area: area})
		}
	}
	for i, e := range evals {
		if !used[i] {
			out = append(out, e)
		}
	}
	return out
}

// ValidateSubmission aplica as regras de servidor antes da gravação.
// Com strict, a regra de feedback obrigatório por nota também é exigida.
func ValidateSubmission(d entities.DraftSurvey, strict bool) error {
	if err := CheckBasics(d); err != nil {
		return err
	}

	seen := make(map[entities.Area]bool, len(d.Evaluations))
	for i, e := range d.Evaluations {
		if !e.Area.Valid() {
			return invalid(fmt.Sprintf("avaliacoes[%d].area", i), fmt.Sprintf("Área desconhecida: %s", e.Area))
		}
		if seen[e.Area] {
			return invalid(fmt.Sprintf("avaliacoes[%d].area", i), fmt.Sprintf("Área avaliada mais de uma vez: %s", e.Area))
		}
		seen[e.Area] = true

		if e.NotApplicable {
			if e.Rating != 0 {
				return invalid(fmt.Sprintf("avaliacoes[%s].nota", e.Area),
					fmt.Sprintf("%s marcada como não se aplica não pode ter nota", e.Area))
			}
			continue
		}
		if e.Rating < 0 || e.Rating > entities.MaxScore {
			return invalid(fmt.Sprintf("avaliacoes[%s].nota", e.Area),
				fmt.Sprintf("Nota de %s deve estar entre %d e %d", e.Area, entities.MinScore, entities.MaxScore))
		}
	}

	if strict {
		if err := CheckAreas(d); err != nil {
			return err
		}
	}

	if len(d.Referrals) > 0 && (!d.WantsReferral || *d.NPS < ReferralNPS) {
		return invalid("indicacoes", ErrReferralNotAllowed.Error())
	}
	for i, r := range d.Referrals {
		if blank(r.Name) {
			return invalid(fmt.Sprintf("indicacoes[%d].nome", i), "Informe o nome da indicação")
		}
	}
	return nil
}

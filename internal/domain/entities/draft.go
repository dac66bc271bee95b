package entities

// DraftSurvey é a pesquisa em preenchimento, acumulada ao longo das etapas e enviada no final
type DraftSurvey struct {
	Company       string            `json:"empresa"`
	Responsible   string            `json:"responsavel"`
	NPS           *int              `json:"nps"`
	WantsReferral bool              `json:"querIndicar"`
	Evaluations   []EvaluationDraft `json:"avaliacoes"`
	Referrals     []ReferralDraft   `json:"indicacoes"`
}

// EvaluationDraft é a avaliação de uma área como recebida do cliente
type EvaluationDraft struct {
	Area                Area   `json:"area"`
	Rating              int    `json:"nota"`
	NotApplicable       bool   `json:"naoSeAplica"`
	PositiveFeedback    string `json:"feedbackPositivo"`
	ImprovementFeedback string `json:"feedbackMelhoria"`
}

// ReferralDraft é uma indicação como recebida do cliente
type ReferralDraft struct {
	Name        string `json:"nome"`
	CompanyName string `json:"empresa"`
	Email       string `json:"email"`
	Phone       string `json:"telefone"`
}

// Score converte o par (nota, naoSeAplica) na nota etiquetada
func (e EvaluationDraft) Score() Score {
	return ScoreFromStorage(e.Rating, e.NotApplicable)
}

// Evaluation busca a avaliação registrada para a área
func (d *DraftSurvey) Evaluation(area Area) (EvaluationDraft, bool) {
	for _, e := range d.Evaluations {
		if e.Area == area {
			return e, true
		}
	}
	return EvaluationDraft{}, false
}

// PutEvaluation insere ou substitui a avaliação da área
func (d *DraftSurvey) PutEvaluation(e EvaluationDraft) {
	for i := range d.Evaluations {
		if d.Evaluations[i].Area == e.Area {
			d.Evaluations[i] = e
			return
		}
	}
	d.Evaluations = append(d.Evaluations, e)
}

// Clone devolve uma cópia independente do rascunho
func (d DraftSurvey) Clone() DraftSurvey {
	out := d
	if d.NPS != nil {
		n := *d.NPS
		out.NPS = &n
	}
	out.Evaluations = append([]EvaluationDraft(nil), d.Evaluations...)
	out.Referrals = append([]ReferralDraft(nil), d.Referrals...)
	return out
}

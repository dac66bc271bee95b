package intake

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/PavaniTiago/nps-feedback-api/internal/domain/entities"
)

func intPtr(v int) *int { return &v }

func validDraft() entities.DraftSurvey {
	return entities.DraftSurvey{
		Company:       "Acme",
		Responsible:   "Maria",
		NPS:           intPtr(10),
		WantsReferral: true,
		Evaluations: []entities.EvaluationDraft{
			{Area: entities.AreaDesign, Rating: 5, PositiveFeedback: "lindo"},
			{Area: entities.AreaVendas, Rating: 3, ImprovementFeedback: "mais contato"},
			{Area: entities.AreaTecnologia, NotApplicable: true},
		},
		Referrals: []entities.ReferralDraft{{Name: "João", CompanyName: "Beta"}},
	}
}

func TestNormalizeDraft(t *testing.T) {
	d := entities.DraftSurvey{
		Company:     "  Acme ",
		Responsible: " Maria",
		NPS:         intPtr(4),
		Evaluations: []entities.EvaluationDraft{
			{Area: entities.AreaVendas, Rating: 2, ImprovementFeedback: " ligar mais "},
			{Area: entities.AreaAtendimento, Rating: 4, NotApplicable: true, PositiveFeedback: "x"},
		},
		WantsReferral: true,
		Referrals:     []entities.ReferralDraft{{Name: "João"}},
	}

	out := NormalizeDraft(d)

	assert.Equal(t, "Acme", out.Company)
	assert.Equal(t, "Maria", out.Responsible)
	require.Len(t, out.Evaluations, len(entities.Areas))
	assert.Equal(t, entities.AreaAtendimento, out.Evaluations[0].Area)
	assert.Equal(t, 0, out.Evaluations[0].Rating)
	assert.Empty(t, out.Evaluations[0].PositiveFeedback)
	vendas, ok := out.Evaluation(entities.AreaVendas)
	require.True(t, ok)
	assert.Equal(t, "ligar mais", vendas.ImprovementFeedback)
	assert.False(t, out.WantsReferral)
	assert.Empty(t, out.Referrals)

	// o rascunho original não é alterado
	assert.Equal(t, "  Acme ", d.Company)
	assert.Len(t, d.Referrals, 1)
}

func TestNormalizeDraft_FillsUntouchedAreas(t *testing.T) {
	f := NewFlow()
	f.SetCompany("Acme")
	f.SetResponsible("Maria")
	require.NoError(t, f.SetNPS(10))
	require.NoError(t, f.Advance())
	require.NoError(t, f.SetScore(entities.AreaDesign, 5))
	require.NoError(t, f.SetPositiveFeedback(entities.AreaDesign, "lindo"))
	require.NoError(t, f.Advance())
	require.Len(t, f.Draft().Evaluations, 1)

	out := NormalizeDraft(f.Draft())

	require.Len(t, out.Evaluations, len(entities.Areas))
	for i, area := range entities.Areas {
		e := out.Evaluations[i]
		assert.Equal(t, area, e.Area)
		assert.False(t, e.NotApplicable, "area %s", area)
		if area == entities.AreaDesign {
			assert.Equal(t, 5, e.Rating)
			continue
		}
		assert.Equal(t, 0, e.Rating, "area %s", area)
	}
	assert.NoError(t, ValidateSubmission(out, true))
}

func TestNormalizeDraft_KeepsUnknownAreasLast(t *testing.T) {
	d := validDraft()
	d.Evaluations = append(d.Evaluations, entities.EvaluationDraft{Area: "Jurídico", Rating: 1})

	out := NormalizeDraft(d)

	require.Len(t, out.Evaluations, len(entities.Areas)+1)
	assert.Equal(t, entities.Area("Jurídico"), out.Evaluations[len(entities.Areas)].Area)
	assert.Error(t, ValidateSubmission(out, true))
}

func TestNormalizeDraft_DropsReferralsWhenNotWanted(t *testing.T) {
	d := validDraft()
	d.WantsReferral = false

	out := NormalizeDraft(d)
	assert.Nil(t, out.Referrals)
}

func TestValidateSubmission(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*entities.DraftSurvey)
		strict bool
		field  string
	}{
		{name: "valid", mutate: func(*entities.DraftSurvey) {}, strict: true},
		{name: "blank company", mutate: func(d *entities.DraftSurvey) { d.Company = " " }, strict: true, field: "empresa"},
		{name: "missing nps", mutate: func(d *entities.DraftSurvey) { d.NPS = nil }, strict: true, field: "nps"},
		{name: "nps above range", mutate: func(d *entities.DraftSurvey) { d.NPS = intPtr(11) }, strict: true, field: "nps"},
		{
			name: "unknown area",
			mutate: func(d *entities.DraftSurvey) {
				d.Evaluations = append(d.Evaluations, entities.EvaluationDraft{Area: "Jurídico", Rating: 1})
			},
			strict: true,
			field:  "avaliacoes[3].area",
		},
		{
			name: "duplicated area",
			mutate: func(d *entities.DraftSurvey) {
				d.Evaluations = append(d.Evaluations, entities.EvaluationDraft{Area: entities.AreaDesign, NotApplicable: true})
			},
			strict: true,
			field:  "avaliacoes[3].area",
		},
		{
			name:   "score above range",
			mutate: func(d *entities.DraftSurvey) { d.Evaluations[0].Rating = 6 },
			strict: true,
			field:  "avaliacoes[Design].nota",
		},
		{
			name:   "not applicable with score",
			mutate: func(d *entities.DraftSurvey) { d.Evaluations[2].Rating = 3 },
			strict: true,
			field:  "avaliacoes[Tecnologia].nota",
		},
		{
			name:   "missing improvement feedback strict",
			mutate: func(d *entities.DraftSurvey) { d.Evaluations[1].ImprovementFeedback = "" },
			strict: true,
			field:  "avaliacoes[Vendas].feedbackMelhoria",
		},
		{
			name:   "missing improvement feedback lenient",
			mutate: func(d *entities.DraftSurvey) { d.Evaluations[1].ImprovementFeedback = "" },
			strict: false,
		},
		{
			name:   "referrals with low nps",
			mutate: func(d *entities.DraftSurvey) { d.NPS = intPtr(5) },
			strict: true,
			field:  "indicacoes",
		},
		{
			name:   "referral without name",
			mutate: func(d *entities.DraftSurvey) { d.Referrals[0].Name = "" },
			strict: true,
			field:  "indicacoes[0].nome",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := validDraft()
			tt.mutate(&d)

			err := ValidateSubmission(d, tt.strict)
			if tt.field == "" {
				assert.NoError(t, err)
				return
			}
			var verr *ValidationError
			require.ErrorAs(t, err, &verr)
			assert.Equal(t, tt.field, verr.Field)
			assert.ErrorIs(t, err, ErrInvalidDraft)
		})
	}
}

func TestRequirements(t *testing.T) {
	req := Requirements(validDraft())

	assert.Len(t, req, len(entities.Areas))
	assert.Equal(t, FeedbackPositive, req[entities.AreaDesign])
	assert.Equal(t, FeedbackImprovement, req[entities.AreaVendas])
	assert.Equal(t, FeedbackNone, req[entities.AreaTecnologia])
	assert.Equal(t, FeedbackNone, req[entities.AreaAtendimento])
}

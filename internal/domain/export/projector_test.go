package export

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/PavaniTiago/nps-feedback-api/internal/domain/entities"
)

var loc = time.FixedZone("BRT", -3*60*60)

func TestProject_LeftJoinAndOrdering(t *testing.T) {
	older := time.Date(2025, 3, 1, 10, 0, 0, 0, loc)
	newer := time.Date(2025, 3, 2, 10, 0, 0, 0, loc)

	surveys := []entities.SurveyRecord{
		{ID: 1, Company: "Acme", Responsible: "Maria", NPS: 9, WantsReferral: true, CreatedAt: older},
		{ID: 2, Company: "Beta", Responsible: "José", NPS: 4, CreatedAt: newer},
	}
	evals := []entities.EvaluationRecord{
		{SurveyID: 1, Area: entities.AreaVendas, Rating: 3, ImprovementFeedback: "ligar"},
		{SurveyID: 1, Area: entities.AreaDesign, NotApplicable: true},
	}
	refs := []entities.ReferralRecord{
		{SurveyID: 1, Name: "Zeca", CompanyName: "Z"},
		{SurveyID: 1, Name: "Ana", CompanyName: "A", Email: "ana@a.com"},
	}

	rows := Project(surveys, evals, refs)
	require.Len(t, rows, 5)

	// pesquisa mais recente primeiro, sem avaliações nem indicações
	want := entities.ExportRow{Company: "Beta", Responsible: "José", NPS: 4, SurveyDate: newer}
	if diff := cmp.Diff(want, rows[0]); diff != "" {
		t.Errorf("row 0 mismatch (-want +got):\n%s", diff)
	}

	type key struct {
		area entities.Area
		ref  string
	}
	var got []key
	for _, r := range rows[1:] {
		got = append(got, key{r.Area, r.ReferralName})
	}
	wantKeys := []key{
		{entities.AreaDesign, "Ana"},
		{entities.AreaDesign, "Zeca"},
		{entities.AreaVendas, "Ana"},
		{entities.AreaVendas, "Zeca"},
	}
	if diff := cmp.Diff(wantKeys, got, cmp.AllowUnexported(key{})); diff != "" {
		t.Errorf("row order mismatch (-want +got):\n%s", diff)
	}

	assert.True(t, rows[1].NotApplicable)
	assert.Equal(t, 0, rows[1].Rating)
	assert.Equal(t, "ana@a.com", rows[1].ReferralEmail)
	assert.Equal(t, 3, rows[3].Rating)
	assert.Equal(t, "ligar", rows[3].ImprovementFeedback)
}

func TestProject_Empty(t *testing.T) {
	assert.Empty(t, Project(nil, nil, nil))
}

func TestParseFormat(t *testing.T) {
	f, err := ParseFormat("")
	require.NoError(t, err)
	assert.Equal(t, FormatCSV, f)

	f, err = ParseFormat("xlsx")
	require.NoError(t, err)
	assert.Equal(t, FormatXLSX, f)

	_, err = ParseFormat("pdf")
	assert.Error(t, err)
}

func TestFileName(t *testing.T) {
	now := time.Date(2025, 3, 2, 1, 0, 0, 0, time.UTC)
	assert.Equal(t, "pesquisas-feedback-2025-03-01.csv", FileName(FormatCSV, now, loc))
	assert.Equal(t, "pesquisas-feedback-2025-03-01.xlsx", FileName(FormatXLSX, now, loc))
}

func TestHeaders(t *testing.T) {
	assert.Len(t, Headers, 14)
}

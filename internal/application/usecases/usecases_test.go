package usecases

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"go.uber.org/zap"

	"github.com/PavaniTiago/nps-feedback-api/internal/config"
	"github.com/PavaniTiago/nps-feedback-api/internal/domain/analytics"
	"github.com/PavaniTiago/nps-feedback-api/internal/domain/entities"
	domainexport "github.com/PavaniTiago/nps-feedback-api/internal/domain/export"
	"github.com/PavaniTiago/nps-feedback-api/internal/domain/intake"
	"github.com/PavaniTiago/nps-feedback-api/internal/domain/repositories"
	"github.com/PavaniTiago/nps-feedback-api/internal/infrastructure/export"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

var loc = time.FixedZone("BRT", -3*60*60)

func intPtr(v int) *int { return &v }

type fixture struct {
	store     *memStore
	surveys   *SurveyUseCase
	dashboard *DashboardUseCase
	clock     time.Time
}

func newFixture(t *testing.T, policy string) *fixture {
	t.Helper()
	f := &fixture{clock: time.Date(2025, 3, 10, 10, 0, 0, 0, loc)}
	f.store = newMemStore(func() time.Time { return f.clock })
	f.surveys = NewSurveyUseCase(f.store, true, zap.NewNop())

	dash, err := NewDashboardUseCase(f.store, config.AnalyticsConfig{
		NotApplicablePolicy: policy,
		TimelineDays:        30,
		RecentLimit:         50,
	}, loc, zap.NewNop())
	require.NoError(t, err)
	dash.now = func() time.Time { return f.clock }
	f.dashboard = dash
	return f
}

func TestSubmitThenDashboard_RoundTrip(t *testing.T) {
	f := newFixture(t, config.NotApplicableInclude)
	ctx := context.Background()

	id, err := f.surveys.Submit(ctx, entities.DraftSurvey{
		Company:     "  Acme ",
		Responsible: "Maria",
		NPS:         intPtr(10),
		Evaluations: []entities.EvaluationDraft{
			{Area: entities.AreaDesign, Rating: 5, PositiveFeedback: "excelente"},
		},
	})
	require.NoError(t, err)

	dash, err := f.dashboard.Dashboard(ctx, nil)
	require.NoError(t, err)

	require.Len(t, dash.Recent, 1)
	assert.Equal(t, id, dash.Recent[0].ID)
	assert.Equal(t, "Acme", dash.Recent[0].Company)
	assert.Equal(t, 10, dash.Recent[0].NPS)

	// áreas não tocadas também são gravadas, com nota 0
	require.Len(t, dash.Areas, len(entities.Areas))
	assert.Equal(t, entities.AreaDesign, dash.Areas[0].Area)
	assert.Equal(t, 5.0, dash.Areas[0].AvgScore)
	assert.Equal(t, int64(1), dash.Areas[0].PositiveFeedbackCount)
	for _, a := range dash.Areas[1:] {
		assert.Equal(t, int64(1), a.Count, "area %s", a.Area)
		assert.Zero(t, a.AvgScore, "area %s", a.Area)
	}
	assert.Nil(t, dash.Filter)
}

func TestSubmit_FlowWithOneAreaStoresEveryArea(t *testing.T) {
	f := newFixture(t, config.NotApplicableInclude)

	flow := intake.NewFlow()
	flow.SetCompany("Acme")
	flow.SetResponsible("Maria")
	require.NoError(t, flow.SetNPS(9))
	require.NoError(t, flow.Advance())
	require.NoError(t, flow.SetScore(entities.AreaDesign, 5))
	require.NoError(t, flow.SetPositiveFeedback(entities.AreaDesign, "ótimo"))
	require.NoError(t, flow.Advance())
	require.Equal(t, intake.StepReview, flow.Step())

	id, err := f.surveys.Submit(context.Background(), flow.Draft())
	require.NoError(t, err)

	var stored []entities.Area
	for _, e := range f.store.evals {
		if e.SurveyID == id {
			stored = append(stored, e.Area)
		}
	}
	assert.Equal(t, entities.Areas, stored)
}

func TestDashboard_TwoSurveysSameDay(t *testing.T) {
	f := newFixture(t, config.NotApplicableInclude)
	ctx := context.Background()

	for _, nps := range []int{9, 3} {
		_, err := f.surveys.Submit(ctx, entities.DraftSurvey{Company: "Acme", Responsible: "Maria", NPS: intPtr(nps)})
		require.NoError(t, err)
		f.clock = f.clock.Add(time.Hour)
	}

	r, err := analytics.ParseRange("2025-03-10", "2025-03-10", loc)
	require.NoError(t, err)

	dash, err := f.dashboard.Dashboard(ctx, r)
	require.NoError(t, err)

	assert.Equal(t, int64(2), dash.Stats.Total)
	assert.Equal(t, int64(1), dash.Stats.Promoters)
	assert.Equal(t, int64(0), dash.Stats.Passives)
	assert.Equal(t, int64(1), dash.Stats.Detractors)
	assert.Equal(t, 0.0, dash.Stats.NPSScore)

	require.Len(t, dash.Timeline, 1)
	assert.Equal(t, int64(2), dash.Timeline[0].SurveyCount)
	assert.Equal(t, "10/03/2025", dash.Timeline[0].Label)
	assert.Equal(t, &entities.DashboardFilter{Start: "2025-03-10", End: "2025-03-10"}, dash.Filter)

	// pesquisa mais nova primeiro
	require.Len(t, dash.Recent, 2)
	assert.Equal(t, 3, dash.Recent[0].NPS)
}

func TestDashboard_RangeExcludesOtherDays(t *testing.T) {
	f := newFixture(t, config.NotApplicableInclude)
	ctx := context.Background()

	_, err := f.surveys.Submit(ctx, entities.DraftSurvey{Company: "A", Responsible: "B", NPS: intPtr(8)})
	require.NoError(t, err)
	f.clock = f.clock.AddDate(0, 0, 1)
	_, err = f.surveys.Submit(ctx, entities.DraftSurvey{Company: "C", Responsible: "D", NPS: intPtr(10)})
	require.NoError(t, err)

	r, err := analytics.ParseRange("2025-03-11", "2025-03-11", loc)
	require.NoError(t, err)

	stats, err := f.dashboard.GlobalStats(ctx, r)
	require.NoError(t, err)
	assert.Equal(t, int64(1), stats.Total)
	assert.Equal(t, 100.0, stats.NPSScore)

	all, err := f.dashboard.GlobalStats(ctx, nil)
	require.NoError(t, err)
	assert.Equal(t, int64(2), all.Total)
}

func TestTimeline_DefaultWindow(t *testing.T) {
	f := newFixture(t, config.NotApplicableInclude)
	ctx := context.Background()

	_, err := f.surveys.Submit(ctx, entities.DraftSurvey{Company: "Antiga", Responsible: "X", NPS: intPtr(5)})
	require.NoError(t, err)

	f.clock = f.clock.AddDate(0, 0, 40)
	_, err = f.surveys.Submit(ctx, entities.DraftSurvey{Company: "Nova", Responsible: "Y", NPS: intPtr(9)})
	require.NoError(t, err)

	timeline, err := f.dashboard.Timeline(ctx, nil)
	require.NoError(t, err)
	require.Len(t, timeline, 1)
	assert.Equal(t, 9.0, timeline[0].AvgNPS)

	// janela móvel: 29 dias e 23 horas atrás ainda entra
	f.clock = f.clock.AddDate(0, 0, 30).Add(-time.Hour)
	timeline, err = f.dashboard.Timeline(ctx, nil)
	require.NoError(t, err)
	assert.Len(t, timeline, 1)

	f.clock = f.clock.Add(2 * time.Hour)
	timeline, err = f.dashboard.Timeline(ctx, nil)
	require.NoError(t, err)
	assert.Empty(t, timeline)
}

func TestDashboard_NoPartialResult(t *testing.T) {
	f := newFixture(t, config.NotApplicableInclude)
	f.store.failRead = fmt.Errorf("%w: conexão recusada", repositories.ErrReadFailed)

	dash, err := f.dashboard.Dashboard(context.Background(), nil)

	assert.Nil(t, dash)
	assert.ErrorIs(t, err, repositories.ErrReadFailed)
}

func TestDashboard_NotApplicablePolicy(t *testing.T) {
	ctx := context.Background()
	draft := entities.DraftSurvey{
		Company: "Acme", Responsible: "Maria", NPS: intPtr(8),
		Evaluations: []entities.EvaluationDraft{{Area: entities.AreaVendas, Rating: 4, ImprovementFeedback: "x"}},
	}
	naDraft := entities.DraftSurvey{
		Company: "Beta", Responsible: "José", NPS: intPtr(8),
		Evaluations: []entities.EvaluationDraft{{Area: entities.AreaVendas, NotApplicable: true}},
	}

	include := newFixture(t, config.NotApplicableInclude)
	exclude := newFixture(t, config.NotApplicableExclude)
	for _, f := range []*fixture{include, exclude} {
		_, err := f.surveys.Submit(ctx, draft)
		require.NoError(t, err)
		_, err = f.surveys.Submit(ctx, naDraft)
		require.NoError(t, err)
	}

	areas, err := include.dashboard.AreaBreakdown(ctx, nil)
	require.NoError(t, err)
	assert.Equal(t, 2.0, areas[0].AvgScore)

	areas, err = exclude.dashboard.AreaBreakdown(ctx, nil)
	require.NoError(t, err)
	assert.Equal(t, 4.0, areas[0].AvgScore)
	assert.Equal(t, int64(1), areas[0].NotApplicableCount)
}

func TestNewDashboardUseCase_InvalidPolicy(t *testing.T) {
	_, err := NewDashboardUseCase(newMemStore(time.Now), config.AnalyticsConfig{NotApplicablePolicy: "zero"}, loc, zap.NewNop())
	assert.Error(t, err)
}

func TestSubmit_RejectsInvalidDraft(t *testing.T) {
	f := newFixture(t, config.NotApplicableInclude)

	_, err := f.surveys.Submit(context.Background(), entities.DraftSurvey{
		Company: "Acme", Responsible: "Maria", NPS: intPtr(6),
		Evaluations: []entities.EvaluationDraft{{Area: entities.AreaDesign, Rating: 2}},
	})

	var verr *intake.ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Equal(t, "avaliacoes[Design].feedbackMelhoria", verr.Field)
	assert.Empty(t, f.store.surveys)
}

func TestSubmit_LowNPSDropsReferrals(t *testing.T) {
	f := newFixture(t, config.NotApplicableInclude)

	_, err := f.surveys.Submit(context.Background(), entities.DraftSurvey{
		Company: "Acme", Responsible: "Maria", NPS: intPtr(5),
		WantsReferral: true,
		Referrals:     []entities.ReferralDraft{{Name: "João"}},
	})
	require.NoError(t, err)
	assert.Empty(t, f.store.refs)
	assert.False(t, f.store.surveys[0].WantsReferral)
}

func TestEvaluateStep(t *testing.T) {
	f := newFixture(t, config.NotApplicableInclude)

	res, err := f.surveys.EvaluateStep(intake.StepAreas, entities.DraftSurvey{
		Company: "Acme", Responsible: "Maria", NPS: intPtr(10),
		Evaluations: []entities.EvaluationDraft{{Area: entities.AreaDesign, Rating: 2}},
	})
	require.NoError(t, err)
	assert.False(t, res.CanAdvance)
	assert.True(t, res.Celebrate)
	assert.Equal(t, "avaliacoes[Design].feedbackMelhoria", res.Field)
	assert.Equal(t, intake.FeedbackImprovement, res.Requirements[entities.AreaDesign])

	res, err = f.surveys.EvaluateStep(intake.StepBasics, entities.DraftSurvey{
		Company: "Acme", Responsible: "Maria", NPS: intPtr(4), WantsReferral: true,
		Referrals: []entities.ReferralDraft{{Name: "João"}},
	})
	require.NoError(t, err)
	assert.True(t, res.CanAdvance)
	assert.False(t, res.Celebrate)
	assert.Empty(t, res.Draft.Referrals)

	res, err = f.surveys.EvaluateStep(intake.StepBasics, entities.DraftSurvey{Company: "Acme", Responsible: "Maria", NPS: intPtr(12)})
	require.NoError(t, err)
	assert.False(t, res.CanAdvance)
	assert.Equal(t, "nps", res.Field)

	_, err = f.surveys.EvaluateStep(intake.Step(9), entities.DraftSurvey{})
	assert.ErrorIs(t, err, intake.ErrInvalidDraft)
}

func TestExport(t *testing.T) {
	f := newFixture(t, config.NotApplicableInclude)
	ctx := context.Background()

	_, err := f.surveys.Submit(ctx, entities.DraftSurvey{
		Company: "Acme", Responsible: "Maria", NPS: intPtr(9), WantsReferral: true,
		Evaluations: []entities.EvaluationDraft{{Area: entities.AreaDesign, Rating: 5, PositiveFeedback: "ok"}},
		Referrals:   []entities.ReferralDraft{{Name: "João"}},
	})
	require.NoError(t, err)

	uc := NewExportUseCase(f.store, loc, zap.NewNop())
	uc.now = func() time.Time { return f.clock }

	doc, err := uc.Export(ctx, domainexport.FormatCSV)
	require.NoError(t, err)
	assert.Equal(t, "pesquisas-feedback-2025-03-10.csv", doc.FileName)
	assert.Equal(t, export.CSVContentType, doc.ContentType)
	assert.Contains(t, string(doc.Body), `"Acme","Maria",9,Sim,10/03/2025,"Design",5,"ok","",Não,"João"`)
}

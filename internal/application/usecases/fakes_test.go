package usecases

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/PavaniTiago/nps-feedback-api/internal/domain/analytics"
	"github.com/PavaniTiago/nps-feedback-api/internal/domain/entities"
	"github.com/PavaniTiago/nps-feedback-api/internal/domain/repositories"
)

// memStore guarda pesquisas em memória e implementa as três portas de repositório
type memStore struct {
	mu       sync.Mutex
	now      func() time.Time
	nextID   int64
	surveys  []entities.SurveyRecord
	evals    []entities.EvaluationRecord
	refs     []entities.ReferralRecord
	failRead error
}

func newMemStore(now func() time.Time) *memStore {
	return &memStore{now: now}
}

func (m *memStore) Submit(_ context.Context, d entities.DraftSurvey) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.nextID++
	id := m.nextID
	m.surveys = append(m.surveys, entities.SurveyRecord{
		ID:            id,
		Company:       d.Company,
		Responsible:   d.Responsible,
		NPS:           *d.NPS,
		WantsReferral: d.WantsReferral,
		CreatedAt:     m.now(),
	})
	for _, e := range d.Evaluations {
		m.evals = append(m.evals, entities.EvaluationRecord{
			SurveyID:            id,
			Area:                e.Area,
			Rating:              e.Rating,
			NotApplicable:       e.NotApplicable,
			PositiveFeedback:    e.PositiveFeedback,
			ImprovementFeedback: e.ImprovementFeedback,
		})
	}
	if d.WantsReferral {
		for _, r := range d.Referrals {
			m.refs = append(m.refs, entities.ReferralRecord{SurveyID: id, Name: r.Name, CompanyName: r.CompanyName, Email: r.Email, Phone: r.Phone})
		}
	}
	return id, nil
}

// inWindow faz o papel do WHERE de created_at
func (m *memStore) inWindow(ctx context.Context, w analytics.Window) ([]entities.SurveyRecord, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failRead != nil {
		return nil, m.failRead
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	var out []entities.SurveyRecord
	for _, s := range m.surveys {
		if w.Contains(s.CreatedAt) {
			out = append(out, s)
		}
	}
	return out, nil
}

func (m *memStore) NPSDistribution(ctx context.Context, w analytics.Window) ([]entities.NPSBucket, error) {
	surveys, err := m.inWindow(ctx, w)
	if err != nil {
		return nil, err
	}
	counts := make(map[int]int64)
	for _, s := range surveys {
		counts[s.NPS]++
	}
	var out []entities.NPSBucket
	for nps := 0; nps <= 10; nps++ {
		if counts[nps] > 0 {
			out = append(out, entities.NPSBucket{NPS: nps, Count: counts[nps]})
		}
	}
	return out, nil
}

func (m *memStore) AreaAggregates(ctx context.Context, w analytics.Window) ([]entities.AreaAggregate, error) {
	surveys, err := m.inWindow(ctx, w)
	if err != nil {
		return nil, err
	}
	in := make(map[int64]bool, len(surveys))
	for _, s := range surveys {
		in[s.ID] = true
	}

	type key struct {
		area entities.Area
		na   bool
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	groups := make(map[key]*entities.AreaAggregate)
	var order []key
	for _, e := range m.evals {
		if !in[e.SurveyID] {
			continue
		}
		k := key{e.Area, e.NotApplicable}
		g, ok := groups[k]
		if !ok {
			g = &entities.AreaAggregate{Area: e.Area, NotApplicable: e.NotApplicable}
			groups[k] = g
			order = append(order, k)
		}
		g.Count++
		g.ScoreSum += int64(e.Rating)
		if strings.TrimSpace(e.PositiveFeedback) != "" {
			g.PositiveFeedback++
		}
		if strings.TrimSpace(e.ImprovementFeedback) != "" {
			g.ImprovementFeedback++
		}
	}
	out := make([]entities.AreaAggregate, 0, len(order))
	for _, k := range order {
		out = append(out, *groups[k])
	}
	return out, nil
}

func (m *memStore) DailyAggregates(ctx context.Context, w analytics.Window) ([]entities.DayAggregate, error) {
	surveys, err := m.inWindow(ctx, w)
	if err != nil {
		return nil, err
	}
	days := make(map[string]*entities.DayAggregate)
	var out []entities.DayAggregate
	for _, s := range surveys {
		key := s.CreatedAt.In(loc).Format("2006-01-02")
		d, ok := days[key]
		if !ok {
			d = &entities.DayAggregate{Day: key}
			days[key] = d
		}
		d.Count++
		d.NPSSum += int64(s.NPS)
	}
	for _, d := range days {
		out = append(out, *d)
	}
	return out, nil
}

func (m *memStore) RecentSurveys(ctx context.Context, w analytics.Window, limit int) ([]entities.SurveyRecord, error) {
	surveys, err := m.inWindow(ctx, w)
	if err != nil {
		return nil, err
	}
	analytics.SortByRecency(surveys)
	if limit > 0 && len(surveys) > limit {
		surveys = surveys[:limit]
	}
	return surveys, nil
}

func (m *memStore) ExportData(ctx context.Context) (repositories.ExportData, error) {
	surveys, err := m.inWindow(ctx, analytics.Window{})
	if err != nil {
		return repositories.ExportData{}, err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	return repositories.ExportData{
		Surveys:     surveys,
		Evaluations: append([]entities.EvaluationRecord(nil), m.evals...),
		Referrals:   append([]entities.ReferralRecord(nil), m.refs...),
	}, nil
}

var (
	_ repositories.SurveyWriter    = (*memStore)(nil)
	_ repositories.AnalyticsSource = (*memStore)(nil)
	_ repositories.ExportSource    = (*memStore)(nil)
)

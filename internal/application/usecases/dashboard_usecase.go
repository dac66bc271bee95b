package usecases

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/PavaniTiago/nps-feedback-api/internal/config"
	"github.com/PavaniTiago/nps-feedback-api/internal/domain/analytics"
	"github.com/PavaniTiago/nps-feedback-api/internal/domain/entities"
	"github.com/PavaniTiago/nps-feedback-api/internal/domain/repositories"
	applog "github.com/PavaniTiago/nps-feedback-api/internal/infrastructure/logger"
)

// DashboardUseCase é o motor de agregação do painel. Cada chamada recalcula a
// partir das linhas da base; não há cache.
type DashboardUseCase struct {
	source       repositories.AnalyticsSource
	logger       *zap.Logger
	loc          *time.Location
	policy       analytics.NotApplicablePolicy
	timelineDays int
	recentLimit  int
	now          func() time.Time
}

// NewDashboardUseCase cria uma nova instância de DashboardUseCase
func NewDashboardUseCase(source repositories.AnalyticsSource, cfg config.AnalyticsConfig, loc *time.Location, logger *zap.Logger) (*DashboardUseCase, error) {
	policy, err := analytics.ParsePolicy(cfg.NotApplicablePolicy)
	if err != nil {
		return nil, err
	}
	return &DashboardUseCase{
		source:       source,
		logger:       logger,
		loc:          loc,
		policy:       policy,
		timelineDays: cfg.TimelineDays,
		recentLimit:  cfg.RecentLimit,
		now:          time.Now,
	}, nil
}

// GlobalStats calcula total, média, categorias e NPS do período
func (u *DashboardUseCase) GlobalStats(ctx context.Context, r *analytics.Range) (entities.GlobalStats, error) {
	buckets, err := u.source.NPSDistribution(ctx, r.Window(u.loc))
	if err != nil {
		return entities.GlobalStats{}, err
	}
	return analytics.ComputeGlobalStats(buckets), nil
}

// AreaBreakdown agrega as avaliações por área
func (u *DashboardUseCase) AreaBreakdown(ctx context.Context, r *analytics.Range) ([]entities.AreaStats, error) {
	aggs, err := u.source.AreaAggregates(ctx, r.Window(u.loc))
	if err != nil {
		return nil, err
	}
	return analytics.ComputeAreaStats(aggs, u.policy), nil
}

// Timeline agrupa por dia; sem filtro usa os últimos timelineDays dias
func (u *DashboardUseCase) Timeline(ctx context.Context, r *analytics.Range) ([]entities.TimelinePoint, error) {
	w := analytics.TimelineWindow(r, u.now(), u.timelineDays, u.loc)
	days, err := u.source.DailyAggregates(ctx, w)
	if err != nil {
		return nil, err
	}
	return analytics.ComputeTimeline(days), nil
}

// Recent lista as pesquisas mais novas do período
func (u *DashboardUseCase) Recent(ctx context.Context, r *analytics.Range) ([]entities.RecentSurvey, error) {
	surveys, err := u.source.RecentSurveys(ctx, r.Window(u.loc), analytics.RecentLimit(u.recentLimit))
	if err != nil {
		return nil, err
	}
	return analytics.ComputeRecent(surveys, u.loc), nil
}

// Dashboard executa as quatro leituras em paralelo. Se qualquer uma falhar,
// as demais são canceladas e nenhum resultado parcial é devolvido.
func (u *DashboardUseCase) Dashboard(ctx context.Context, r *analytics.Range) (*entities.Dashboard, error) {
	start := time.Now()
	out := &entities.Dashboard{Filter: r.Filter()}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		stats, err := u.GlobalStats(gctx, r)
		if err != nil {
			return fmt.Errorf("estatísticas gerais: %w", err)
		}
		out.Stats = stats
		return nil
	})
	g.Go(func() error {
		areas, err := u.AreaBreakdown(gctx, r)
		if err != nil {
			return fmt.Errorf("dados por área: %w", err)
		}
		out.Areas = areas
		return nil
	})
	g.Go(func() error {
		recent, err := u.Recent(gctx, r)
		if err != nil {
			return fmt.Errorf("pesquisas recentes: %w", err)
		}
		out.Recent = recent
		return nil
	})
	g.Go(func() error {
		timeline, err := u.Timeline(gctx, r)
		if err != nil {
			return fmt.Errorf("timeline: %w", err)
		}
		out.Timeline = timeline
		return nil
	})

	if err := g.Wait(); err != nil {
		applog.FromContext(ctx, u.logger).Error("erro ao montar painel", zap.Error(err))
		return nil, err
	}

	applog.FromContext(ctx, u.logger).Debug("painel calculado",
		zap.Int64("total_pesquisas", out.Stats.Total),
		zap.Duration("duration", time.Since(start)),
	)
	return out, nil
}

package analytics

import (
	"fmt"
	"sort"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/PavaniTiago/nps-feedback-api/internal/domain/entities"
)

// NotApplicablePolicy define como avaliações "não se aplica" entram na média da área
type NotApplicablePolicy string

const (
	// IncludeNotApplicable conta a linha com nota 0 na média e no total
	IncludeNotApplicable NotApplicablePolicy = "include"
	// ExcludeNotApplicable considera apenas notas aplicáveis
	ExcludeNotApplicable NotApplicablePolicy = "exclude"
)

// ParsePolicy valida o nome da política configurada
func ParsePolicy(name string) (NotApplicablePolicy, error) {
	switch p := NotApplicablePolicy(name); p {
	case IncludeNotApplicable, ExcludeNotApplicable:
		return p, nil
	case "":
		return IncludeNotApplicable, nil
	}
	return "", fmt.Errorf("política de não se aplica desconhecida: %q", name)
}

type areaAcc struct {
	sum   int64
	stats entities.AreaStats
}

// ComputeAreaStats junta os agregados por área aplicando a política de "não se aplica",
// ordenando por média decrescente e, no empate, pelo nome da área em ordem alfabética portuguesa
func ComputeAreaStats(aggs []entities.AreaAggregate, policy NotApplicablePolicy) []entities.AreaStats {
	acc := make(map[entities.Area]*areaAcc)
	for _, g := range aggs {
		a, ok := acc[g.Area]
		if !ok {
			a = &areaAcc{stats: entities.AreaStats{Area: g.Area}}
			acc[g.Area] = a
		}
		if g.NotApplicable {
			a.stats.NotApplicableCount += g.Count
		}
		// "não se aplica" é gravado com nota 0
		if !g.NotApplicable || policy != ExcludeNotApplicable {
			a.stats.Count += g.Count
			a.sum += g.ScoreSum
		}
		a.stats.PositiveFeedbackCount += g.PositiveFeedback
		a.stats.ImprovementFeedbackCount += g.ImprovementFeedback
	}

	out := make([]entities.AreaStats, 0, len(acc))
	for _, a := range acc {
		if a.stats.Count > 0 {
			a.stats.AvgScore = float64(a.sum) / float64(a.stats.Count)
		}
		out = append(out, a.stats)
	}
	SortAreaStats(out)
	return out
}

// SortAreaStats ordena por média decrescente com desempate pelo nome
func SortAreaStats(stats []entities.AreaStats) {
	col := collate.New(language.BrazilianPortuguese)
	sort.SliceStable(stats, func(i, j int) bool {
		if stats[i].AvgScore != stats[j].AvgScore {
			return stats[i].AvgScore > stats[j].AvgScore
		}
		return col.CompareString(string(stats[i].Area), string(stats[j].Area)) < 0
	})
}

package analytics

import (
	"sort"
	"time"

	"github.com/PavaniTiago/nps-feedback-api/internal/domain/entities"
)

// MaxRecent é o teto da lista de pesquisas recentes
const MaxRecent = 50

// RecentLimit limita o tamanho pedido a 1..MaxRecent
func RecentLimit(limit int) int {
	if limit <= 0 || limit > MaxRecent {
		return MaxRecent
	}
	return limit
}

// ComputeRecent formata as pesquisas já ordenadas e limitadas pela consulta
func ComputeRecent(surveys []entities.SurveyRecord, loc *time.Location) []entities.RecentSurvey {
	out := make([]entities.RecentSurvey, 0, len(surveys))
	for _, s := range surveys {
		out = append(out, entities.RecentSurvey{
			ID:          s.ID,
			Company:     s.Company,
			Responsible: s.Responsible,
			NPS:         s.NPS,
			CreatedAt:   s.CreatedAt.In(loc).Format(time.RFC3339),
		})
	}
	return out
}

// SortByRecency ordena pesquisas da mais nova para a mais antiga (id decrescente no empate)
func SortByRecency(surveys []entities.SurveyRecord) {
	sort.SliceStable(surveys, func(i, j int) bool {
		if !surveys[i].CreatedAt.Equal(surveys[j].CreatedAt) {
			return surveys[i].CreatedAt.After(surveys[j].CreatedAt)
		}
		return surveys[i].ID > surveys[j].ID
	})
}

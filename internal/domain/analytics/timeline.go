package analytics

import (
	"sort"
	"time"

	"github.com/PavaniTiago/nps-feedback-api/internal/domain/entities"
)

// ComputeTimeline converte os totais diários em pontos em ordem crescente de dia.
// Só aparecem os dias com pelo menos uma pesquisa.
func ComputeTimeline(days []entities.DayAggregate) []entities.TimelinePoint {
	out := make([]entities.TimelinePoint, 0, len(days))
	for _, d := range days {
		if d.Count == 0 {
			continue
		}
		label := d.Day
		if t, err := time.Parse(dateLayout, d.Day); err == nil {
			label = t.Format("02/01/2006")
		}
		out = append(out, entities.TimelinePoint{
			Day:         d.Day,
			Label:       label,
			SurveyCount: d.Count,
			AvgNPS:      float64(d.NPSSum) / float64(d.Count),
		})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Day < out[j].Day })
	return out
}

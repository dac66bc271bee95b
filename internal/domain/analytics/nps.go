package analytics

import "github.com/PavaniTiago/nps-feedback-api/internal/domain/entities"

// Category é a classificação NPS de uma resposta
type Category int

const (
	Detractor Category = iota // 0..6
	Passive                   // 7..8
	Promoter                  // 9..10
)

func (c Category) String() string {
	switch c {
	case Promoter:
		return "promotor"
	case Passive:
		return "neutro"
	}
	return "detrator"
}

// Classify enquadra uma nota NPS em exatamente uma categoria
func Classify(nps int) Category {
	switch {
	case nps >= 9:
		return Promoter
	case nps >= 7:
		return Passive
	}
	return Detractor
}

// Score calcula %promotores - %detratores; zero quando não há respostas
func Score(promoters, detractors, total int64) float64 {
	if total == 0 {
		return 0
	}
	return float64(promoters)*100/float64(total) - float64(detractors)*100/float64(total)
}

// ComputeGlobalStats consolida a distribuição de notas do período
func ComputeGlobalStats(buckets []entities.NPSBucket) entities.GlobalStats {
	var stats entities.GlobalStats
	var sum int64
	for _, b := range buckets {
		stats.Total += b.Count
		sum += int64(b.NPS) * b.Count
		switch Classify(b.NPS) {
		case Promoter:
			stats.Promoters += b.Count
		case Passive:
			stats.Passives += b.Count
		default:
			stats.Detractors += b.Count
		}
	}
	if stats.Total > 0 {
		stats.AvgNPS = float64(sum) / float64(stats.Total)
	}
	stats.NPSScore = Score(stats.Promoters, stats.Detractors, stats.Total)
	return stats
}

package entities

import (
	"crypto/md5"
	"encoding/json"
	"fmt"
	"math"
)

// Dashboard representa a resposta consolidada do painel de satisfação
type Dashboard struct {
	Stats    GlobalStats      `json:"stats"`
	Areas    []AreaStats      `json:"areas"`
	Recent   []RecentSurvey   `json:"recent"`
	Timeline []TimelinePoint  `json:"timeline"`
	Filter   *DashboardFilter `json:"filtro"`
	ETag     string           `json:"-"` // Campo interno para geração de ETag
}

// GlobalStats contém as estatísticas de NPS do período
type GlobalStats struct {
	Total      int64   `json:"total_pesquisas"`
	AvgNPS     float64 `json:"nps_medio"`
	Promoters  int64   `json:"promotores"`
	Passives   int64   `json:"neutros"`
	Detractors int64   `json:"detratores"`
	NPSScore   float64 `json:"nps_score"`
}

// AreaStats contém o consolidado de uma área
type AreaStats struct {
	Area                     Area    `json:"area"`
	AvgScore                 float64 `json:"media_nota"`
	Count                    int64   `json:"total_avaliacoes"`
	PositiveFeedbackCount    int64   `json:"feedbacks_positivos"`
	ImprovementFeedbackCount int64   `json:"feedbacks_melhoria"`
	NotApplicableCount       int64   `json:"nao_se_aplica"`
}

// TimelinePoint contém os dados de um dia da série temporal
type TimelinePoint struct {
	Day         string  `json:"dia"`  // YYYY-MM-DD
	Label       string  `json:"data"` // dd/mm/yyyy
	SurveyCount int64   `json:"pesquisas"`
	AvgNPS      float64 `json:"nps_medio"`
}

// RecentSurvey é uma linha da lista de pesquisas recentes
type RecentSurvey struct {
	ID          int64  `json:"id"`
	Company     string `json:"empresa"`
	Responsible string `json:"responsavel"`
	NPS         int    `json:"nps"`
	CreatedAt   string `json:"data_criacao"` // RFC3339 no fuso do serviço
}

// DashboardFilter ecoa o filtro de datas aplicado
type DashboardFilter struct {
	Start string `json:"dataInicio"`
	End   string `json:"dataFim"`
}

// Rounded retorna uma cópia com nps_score e médias diárias arredondados em uma casa decimal
func (d Dashboard) Rounded() Dashboard {
	out := d
	out.Stats.NPSScore = Round1(d.Stats.NPSScore)
	out.Timeline = make([]TimelinePoint, len(d.Timeline))
	for i, p := range d.Timeline {
		p.AvgNPS = Round1(p.AvgNPS)
		out.Timeline[i] = p
	}
	return out
}

// CalculateETag gera um hash único para identificar a versão dos dados
func (d *Dashboard) CalculateETag() string {
	data, _ := json.Marshal(d)
	hash := md5.Sum(data)
	d.ETag = fmt.Sprintf(`W/"%x"`, hash)
	return d.ETag
}

// Round1 arredonda para uma casa decimal
func Round1(v float64) float64 {
	return math.Round(v*10) / 10
}

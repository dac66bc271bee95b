package entities

import "time"

// SurveyRecord é a pesquisa já unida à empresa, como lida pelo motor de agregação
type SurveyRecord struct {
	ID            int64     `gorm:"column:id"`
	Company       string    `gorm:"column:empresa"`
	Responsible   string    `gorm:"column:responsavel"`
	NPS           int       `gorm:"column:nps"`
	WantsReferral bool      `gorm:"column:quer_indicar"`
	CreatedAt     time.Time `gorm:"column:created_at"`
}

// EvaluationRecord é uma avaliação de área lida do banco
type EvaluationRecord struct {
	SurveyID            int64  `gorm:"column:pesquisa_id"`
	Area                Area   `gorm:"column:area"`
	Rating              int    `gorm:"column:nota"`
	NotApplicable       bool   `gorm:"column:nao_se_aplica"`
	PositiveFeedback    string `gorm:"column:feedback_positivo"`
	ImprovementFeedback string `gorm:"column:feedback_melhoria"`
}

// Score retorna a nota etiquetada
func (e EvaluationRecord) Score() Score {
	return ScoreFromStorage(e.Rating, e.NotApplicable)
}

// NPSBucket é o total de pesquisas com uma mesma nota NPS
type NPSBucket struct {
	NPS   int   `gorm:"column:nps"`
	Count int64 `gorm:"column:total"`
}

// AreaAggregate resume as avaliações de uma área, separadas pela marcação "não se aplica"
type AreaAggregate struct {
	Area                Area  `gorm:"column:area"`
	NotApplicable       bool  `gorm:"column:nao_se_aplica"`
	Count               int64 `gorm:"column:total"`
	ScoreSum            int64 `gorm:"column:soma_notas"`
	PositiveFeedback    int64 `gorm:"column:feedbacks_positivos"`
	ImprovementFeedback int64 `gorm:"column:feedbacks_melhoria"`
}

// DayAggregate é o total e a soma dos NPS de um dia civil (YYYY-MM-DD)
type DayAggregate struct {
	Day    string `gorm:"column:dia"`
	Count  int64  `gorm:"column:total"`
	NPSSum int64  `gorm:"column:soma_nps"`
}

// ReferralRecord é uma indicação lida do banco
type ReferralRecord struct {
	SurveyID    int64  `gorm:"column:pesquisa_id"`
	Name        string `gorm:"column:nome"`
	CompanyName string `gorm:"column:empresa"`
	Email       string `gorm:"column:email"`
	Phone       string `gorm:"column:telefone"`
}

// ExportRow é uma linha achatada (pesquisa × avaliação × indicação) da exportação.
// Campos de avaliação e indicação ficam vazios quando não há linha correspondente.
type ExportRow struct {
	Company             string
	Responsible         string
	NPS                 int
	WantsReferral       bool
	SurveyDate          time.Time
	HasEvaluation       bool
	Area                Area
	Rating              int
	PositiveFeedback    string
	ImprovementFeedback string
	NotApplicable       bool
	ReferralName        string
	ReferralCompany     string
	ReferralEmail       string
	ReferralPhone       string
}

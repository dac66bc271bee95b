package entities

import (
	"time"
)

// Company representa a empresa que respondeu uma pesquisa. Cada envio cria uma nova linha.
type Company struct {
	ID              int64  `json:"id" gorm:"primaryKey;column:id"`
	Name            string `json:"nome" gorm:"column:nome;not null"`
	ResponsibleName string `json:"responsavel" gorm:"column:responsavel;not null"`
}

func (Company) TableName() string { return "empresas" }

// Survey representa uma pesquisa respondida
type Survey struct {
	ID            int64     `json:"id" gorm:"primaryKey;column:id"`
	CompanyID     int64     `json:"empresa_id" gorm:"column:empresa_id;not null;index"`
	NPS           int       `json:"nps" gorm:"column:nps;type:smallint;not null;check:chk_pesquisas_nps,nps BETWEEN 0 AND 10"`
	WantsReferral bool      `json:"quer_indicar" gorm:"column:quer_indicar;not null;default:false"`
	CreatedAt     time.Time `json:"created_at" gorm:"column:created_at;not null;autoCreateTime:false"`

	// Relações
	Company Company `json:"-" gorm:"foreignKey:CompanyID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT"`
}

func (Survey) TableName() string { return "pesquisas" }

// AreaEvaluation representa a avaliação de uma área dentro de uma pesquisa
type AreaEvaluation struct {
	ID                  int64  `json:"id" gorm:"primaryKey;column:id"`
	SurveyID            int64  `json:"pesquisa_id" gorm:"column:pesquisa_id;not null;index"`
	Area                Area   `json:"area" gorm:"column:area;type:text;not null"`
	Score               int    `json:"nota" gorm:"column:nota;type:smallint;not null;check:chk_avaliacoes_nota,nota BETWEEN 0 AND 5"`
	NotApplicable       bool   `json:"nao_se_aplica" gorm:"column:nao_se_aplica;not null;default:false"`
	PositiveFeedback    string `json:"feedback_positivo" gorm:"column:feedback_positivo;not null;default:''"`
	ImprovementFeedback string `json:"feedback_melhoria" gorm:"column:feedback_melhoria;not null;default:''"`

	Survey Survey `json:"-" gorm:"foreignKey:SurveyID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
}

func (AreaEvaluation) TableName() string { return "avaliacoes" }

// Referral representa uma indicação feita pelo cliente
type Referral struct {
	ID          int64  `json:"id" gorm:"primaryKey;column:id"`
	SurveyID    int64  `json:"pesquisa_id" gorm:"column:pesquisa_id;not null;index"`
	Name        string `json:"nome" gorm:"column:nome"`
	CompanyName string `json:"empresa" gorm:"column:empresa"`
	Email       string `json:"email" gorm:"column:email"`
	Phone       string `json:"telefone" gorm:"column:telefone"`

	Survey Survey `json:"-" gorm:"foreignKey:SurveyID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
}

func (Referral) TableName() string { return "indicacoes" }

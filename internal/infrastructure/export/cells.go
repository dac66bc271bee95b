package export

import (
	"strconv"
	"time"

	"github.com/PavaniTiago/nps-feedback-api/internal/domain/entities"
	"github.com/PavaniTiago/nps-feedback-api/internal/utils"
)

// cellKind diz se a coluna é texto livre (sempre entre aspas no CSV) ou valor simples
type cellKind int

const (
	textCell cellKind = iota
	plainCell
)

// columnKinds segue a ordem de domain/export.Headers
var columnKinds = []cellKind{
	textCell,  // Empresa
	textCell,  // Responsável
	plainCell, // NPS
	plainCell, // Quer Indicar
	plainCell, // Data da Pesquisa
	textCell,  // Área Avaliada
	plainCell, // Nota da Área
	textCell,  // Feedback Positivo
	textCell,  // Feedback de Melhoria
	plainCell, // Não Se Aplica
	textCell,  // Nome da Indicação
	textCell,  // Empresa da Indicação
	textCell,  // Email da Indicação
	textCell,  // Telefone da Indicação
}

func yesNo(v bool) string {
	if v {
		return "Sim"
	}
	return "Não"
}

// cells renderiza uma linha exportada nas 14 colunas do cabeçalho
func cells(r entities.ExportRow, loc *time.Location) []string {
	rating := ""
	if r.HasEvaluation {
		rating = strconv.Itoa(r.Rating)
	}
	date := ""
	if !r.SurveyDate.IsZero() {
		date = utils.FormatBR(r.SurveyDate, loc)
	}
	return []string{
		r.Company,
		r.Responsible,
		strconv.Itoa(r.NPS),
		yesNo(r.WantsReferral),
		date,
		string(r.Area),
		rating,
		r.PositiveFeedback,
		r.ImprovementFeedback,
		yesNo(r.NotApplicable),
		r.ReferralName,
		r.ReferralCompany,
		r.ReferralEmail,
		r.ReferralPhone,
	}
}

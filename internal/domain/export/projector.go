package export

import (
	"fmt"
	"sort"
	"time"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/PavaniTiago/nps-feedback-api/internal/domain/analytics"
	"github.com/PavaniTiago/nps-feedback-api/internal/domain/entities"
)

// Format é o formato do documento exportado
type Format string

const (
	FormatCSV  Format = "csv"
	FormatXLSX Format = "xlsx"
)

// ParseFormat aceita "csv" (padrão quando vazio) ou "xlsx"
func ParseFormat(name string) (Format, error) {
	switch f := Format(name); f {
	case "":
		return FormatCSV, nil
	case FormatCSV, FormatXLSX:
		return f, nil
	}
	return "", fmt.Errorf("formato de exportação desconhecido: %q", name)
}

// Headers é o cabeçalho fixo do documento exportado
var Headers = []string{
	"Empresa",
	"Responsável",
	"NPS",
	"Quer Indicar",
	"Data da Pesquisa",
	"Área Avaliada",
	"Nota da Área",
	"Feedback Positivo",
	"Feedback de Melhoria",
	"Não Se Aplica",
	"Nome da Indicação",
	"Empresa da Indicação",
	"Email da Indicação",
	"Telefone da Indicação",
}

// FileName monta o nome do arquivo com a data do dia
func FileName(f Format, now time.Time, loc *time.Location) string {
	return fmt.Sprintf("pesquisas-feedback-%s.%s", now.In(loc).Format("2006-01-02"), f)
}

// Project achata pesquisas, avaliações e indicações em uma linha por
// (pesquisa × avaliação × indicação). Pesquisa sem avaliação ou sem indicação
// ainda gera linha, com os campos correspondentes vazios.
func Project(surveys []entities.SurveyRecord, evals []entities.EvaluationRecord, refs []entities.ReferralRecord) []entities.ExportRow {
	col := collate.New(language.BrazilianPortuguese)

	evalsBySurvey := make(map[int64][]entities.EvaluationRecord)
	for _, e := range evals {
		evalsBySurvey[e.SurveyID] = append(evalsBySurvey[e.SurveyID], e)
	}
	refsBySurvey := make(map[int64][]entities.ReferralRecord)
	for _, r := range refs {
		refsBySurvey[r.SurveyID] = append(refsBySurvey[r.SurveyID], r)
	}

	ordered := append([]entities.SurveyRecord(nil), surveys...)
	analytics.SortByRecency(ordered)

	var rows []entities.ExportRow
	for _, s := range ordered {
		se := evalsBySurvey[s.ID]
		sort.SliceStable(se, func(i, j int) bool {
			return col.CompareString(string(se[i].Area), string(se[j].Area)) < 0
		})
		sr := refsBySurvey[s.ID]
		sort.SliceStable(sr, func(i, j int) bool {
			return col.CompareString(sr[i].Name, sr[j].Name) < 0
		})

		base := entities.ExportRow{
			Company:       s.Company,
			Responsible:   s.Responsible,
			NPS:           s.NPS,
			WantsReferral: s.WantsReferral,
			SurveyDate:    s.CreatedAt,
		}

		evalRows := []entities.ExportRow{base}
		if len(se) > 0 {
			evalRows = evalRows[:0]
			for _, e := range se {
				row := base
				row.HasEvaluation = true
				row.Area = e.Area
				row.Rating = e.Score().Value()
				row.NotApplicable = !e.Score().IsApplicable()
				row.PositiveFeedback = e.PositiveFeedback
				row.ImprovementFeedback = e.ImprovementFeedback
				evalRows = append(evalRows, row)
			}
		}

		for _, row := range evalRows {
			if len(sr) == 0 {
				rows = append(rows, row)
				continue
			}
			for _, r := range sr {
				withRef := row
				withRef.ReferralName = r.Name
				withRef.ReferralCompany = r.CompanyName
				withRef.ReferralEmail = r.Email
				withRef.ReferralPhone = r.Phone
				rows = append(rows, withRef)
			}
		}
	}
	return rows
}

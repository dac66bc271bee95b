package export

import (
	"bytes"
	"fmt"
	"strconv"
	"time"

	"github.com/xuri/excelize/v2"

	domainexport "github.com/PavaniTiago/nps-feedback-api/internal/domain/export"
	"github.com/PavaniTiago/nps-feedback-api/internal/domain/entities"
)

// XLSXContentType é o tipo de conteúdo da planilha
const XLSXContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

const (
	sheetName    = "Pesquisas"
	defaultSheet = "Sheet1" // criada pelo excelize.NewFile
)

var columnWidths = []float64{
	25, // Empresa
	22, // Responsável
	6,  // NPS
	12, // Quer Indicar
	16, // Data da Pesquisa
	20, // Área Avaliada
	12, // Nota da Área
	40, // Feedback Positivo
	40, // Feedback de Melhoria
	14, // Não Se Aplica
	22, // Nome da Indicação
	22, // Empresa da Indicação
	28, // Email da Indicação
	18, // Telefone da Indicação
}

// WriteXLSX gera a planilha com o mesmo cabeçalho e os mesmos valores do CSV.
// NPS e nota da área são gravados como números.
func WriteXLSX(rows []entities.ExportRow, loc *time.Location) ([]byte, error) {
	f := excelize.NewFile()
	// Close só depois do WriteTo
	defer f.Close()

	if _, err := f.NewSheet(sheetName); err != nil {
		return nil, fmt.Errorf("erro ao criar aba %s: %w", sheetName, err)
	}
	if err := f.DeleteSheet(defaultSheet); err != nil {
		return nil, fmt.Errorf("erro ao remover aba %s: %w", defaultSheet, err)
	}
	index, err := f.GetSheetIndex(sheetName)
	if err != nil {
		return nil, fmt.Errorf("erro ao localizar aba %s: %w", sheetName, err)
	}
	f.SetActiveSheet(index)

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{
			Type:    "pattern",
			Color:   []string{"#E6F3FF"},
			Pattern: 1,
		},
		Border: []excelize.Border{
			{Type: "left", Color: "000000", Style: 1},
			{Type: "top", Color: "000000", Style: 1},
			{Type: "bottom", Color: "000000", Style: 1},
			{Type: "right", Color: "000000", Style: 1},
		},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})
	if err != nil {
		return nil, fmt.Errorf("erro ao criar estilo do cabeçalho: %w", err)
	}

	for col, header := range domainexport.Headers {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return nil, fmt.Errorf("erro ao converter coordenadas: %w", err)
		}
		if err := f.SetCellValue(sheetName, cell, header); err != nil {
			return nil, fmt.Errorf("erro ao gravar cabeçalho %s: %w", cell, err)
		}
		if err := f.SetCellStyle(sheetName, cell, cell, headerStyle); err != nil {
			return nil, fmt.Errorf("erro ao aplicar estilo do cabeçalho: %w", err)
		}

		name, err := excelize.ColumnNumberToName(col + 1)
		if err != nil {
			return nil, fmt.Errorf("erro ao converter número da coluna: %w", err)
		}
		if err := f.SetColWidth(sheetName, name, name, columnWidths[col]); err != nil {
			return nil, fmt.Errorf("erro ao definir largura da coluna: %w", err)
		}
	}

	for i, r := range rows {
		values := make([]interface{}, 0, len(columnKinds))
		for col, v := range cells(r, loc) {
			values = append(values, xlsxValue(col, v))
		}
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return nil, fmt.Errorf("erro ao converter coordenadas: %w", err)
		}
		if err := f.SetSheetRow(sheetName, cell, &values); err != nil {
			return nil, fmt.Errorf("erro ao gravar linha %d: %w", i+2, err)
		}
	}

	if err := f.SetPanes(sheetName, &excelize.Panes{
		Freeze:      true,
		YSplit:      1,
		TopLeftCell: "A2",
		ActivePane:  "bottomLeft",
	}); err != nil {
		return nil, fmt.Errorf("erro ao congelar cabeçalho: %w", err)
	}

	var buf bytes.Buffer
	if _, err := f.WriteTo(&buf); err != nil {
		return nil, fmt.Errorf("erro ao gerar planilha: %w", err)
	}
	return buf.Bytes(), nil
}

// xlsxValue converte NPS e nota para número; células vazias ficam em branco
func xlsxValue(col int, v string) interface{} {
	if columnKinds[col] == plainCell && v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return v
}

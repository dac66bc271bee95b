package export

import (
	"bytes"
	"fmt"
	"time"

	domainexport "github.com/PavaniTiago/nps-feedback-api/internal/domain/export"
	"github.com/PavaniTiago/nps-feedback-api/internal/domain/entities"
)

// Document é o arquivo pronto para download
type Document struct {
	FileName    string
	ContentType string
	Body        []byte
}

// Encode codifica as linhas no formato pedido
func Encode(format domainexport.Format, rows []entities.ExportRow, now time.Time, loc *time.Location) (Document, error) {
	doc := Document{FileName: domainexport.FileName(format, now, loc)}

	switch format {
	case domainexport.FormatCSV:
		var buf bytes.Buffer
		if err := WriteCSV(&buf, rows, loc); err != nil {
			return Document{}, fmt.Errorf("erro ao gerar CSV: %w", err)
		}
		doc.ContentType = CSVContentType
		doc.Body = buf.Bytes()
	case domainexport.FormatXLSX:
		body, err := WriteXLSX(rows, loc)
		if err != nil {
			return Document{}, fmt.Errorf("erro ao gerar planilha: %w", err)
		}
		doc.ContentType = XLSXContentType
		doc.Body = body
	default:
		return Document{}, fmt.Errorf("formato de exportação desconhecido: %q", format)
	}
	return doc, nil
}

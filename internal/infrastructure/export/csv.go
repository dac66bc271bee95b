package export

import (
	"bufio"
	"io"
	"strings"
	"time"

	domainexport "github.com/PavaniTiago/nps-feedback-api/internal/domain/export"
	"github.com/PavaniTiago/nps-feedback-api/internal/domain/entities"
)

// CSVContentType é o tipo de conteúdo do documento CSV
const CSVContentType = "text/csv; charset=utf-8"

func quote(s string) string {
	return `"` + strings.ReplaceAll(s, `"`, `""`) + `"`
}

// WriteCSV escreve o cabeçalho e as linhas. Campos de texto vão sempre entre
// aspas (aspas internas duplicadas); números, datas e Sim/Não vão sem aspas.
func WriteCSV(w io.Writer, rows []entities.ExportRow, loc *time.Location) error {
	bw := bufio.NewWriter(w)

	if _, err := bw.WriteString(strings.Join(domainexport.Headers, ",") + "\n"); err != nil {
		return err
	}

	fields := make([]string, len(columnKinds))
	for _, r := range rows {
		for i, v := range cells(r, loc) {
			if columnKinds[i] == textCell {
				v = quote(v)
			}
			fields[i] = v
		}
		if _, err := bw.WriteString(strings.Join(fields, ",") + "\n"); err != nil {
			return err
		}
	}
	return bw.Flush()
}

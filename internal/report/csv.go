package report

import (
	"encoding/csv"
	"io"

	"github.com/phyten/themecheck/internal/engine"
)

// WriteCSV renders results as RFC 4180 compliant CSV (including CRLF endings).
func WriteCSV(w io.Writer, results []engine.Result, fields []Field) error {
	writer := csv.NewWriter(w)
	writer.UseCRLF = true
	if err := writer.Write(Headers(fields)); err != nil {
		return err
	}
	for _, r := range results {
		if err := writer.Write(RowValues(r, fields)); err != nil {
			return err
		}
	}
	writer.Flush()
	return writer.Error()
}

package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/phyten/themecheck/internal/engine"
)

// WriteMarkdownTable renders results as a GitHub Flavored Markdown table.
func WriteMarkdownTable(w io.Writer, results []engine.Result, fields []Field) error {
	headers := Headers(fields)
	if _, err := fmt.Fprintf(w, "| %s |\n", strings.Join(headers, " | ")); err != nil {
		return err
	}
	sep := make([]string, len(headers))
	for i, f := range fields {
		sep[i] = "---"
		if f.Key == "value" {
			sep[i] = "---:"
		}
	}
	if _, err := fmt.Fprintf(w, "| %s |\n", strings.Join(sep, " | ")); err != nil {
		return err
	}
	for _, r := range results {
		row := RowValues(r, fields)
		for i := range row {
			row[i] = escapeMarkdownCell(row[i])
		}
		if _, err := fmt.Fprintf(w, "| %s |\n", strings.Join(row, " | ")); err != nil {
			return err
		}
	}
	return nil
}

func escapeMarkdownCell(s string) string {
	if s == "" {
		return ""
	}
	s = strings.ReplaceAll(s, "\r\n", "\n")
	s = strings.ReplaceAll(s, "\r", "")
	s = strings.ReplaceAll(s, "\n", "<br>")
	s = strings.ReplaceAll(s, "|", "\\|")
	return s
}

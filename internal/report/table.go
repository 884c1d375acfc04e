package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/phyten/themecheck/internal/colorutil"
	"github.com/phyten/themecheck/internal/engine"
	"github.com/phyten/themecheck/internal/termcolor"
)

const columnGap = "  "

// TableStyle controls terminal decoration of the table.
type TableStyle struct {
	Color   bool
	Scheme  termcolor.Scheme
	Profile termcolor.Profile
	// MaxMessage truncates the message column to that many cells; 0 keeps
	// it whole.
	MaxMessage int
}

// WriteTable renders results as aligned columns followed by a summary
// line. Widths are measured on the plain text so escape sequences never
// shift the layout.
func WriteTable(w io.Writer, rep *engine.Report, fields []Field, style TableStyle) error {
	rows := make([][]string, 0, len(rep.Results))
	for _, r := range rep.Results {
		row := RowValues(r, fields)
		for i, f := range fields {
			row[i] = singleLine(row[i])
			if f.Key == "message" && style.MaxMessage > 0 {
				row[i] = truncate(row[i], style.MaxMessage)
			}
		}
		rows = append(rows, row)
	}

	widths := make([]int, len(fields))
	for i, h := range Headers(fields) {
		widths[i] = visibleWidth(h)
	}
	for _, row := range rows {
		for i, cell := range row {
			if cw := visibleWidth(cell); cw > widths[i] {
				widths[i] = cw
			}
		}
	}

	header := make([]string, len(fields))
	for i, h := range Headers(fields) {
		header[i] = termcolor.Apply(termcolor.HeaderStyle(), h, style.Color)
	}
	if err := writeTableLine(w, fields, header, widths); err != nil {
		return err
	}
	for ri, row := range rows {
		r := rep.Results[ri]
		for i, f := range fields {
			row[i] = decorate(r, f.Key, row[i], style)
		}
		if err := writeTableLine(w, fields, row, widths); err != nil {
			return err
		}
	}

	s := rep.Summary
	line := fmt.Sprintf("%d checks: %d passed, %d failed, %d skipped", s.Total, s.Passed, s.Failed, s.Skipped)
	_, err := fmt.Fprintf(w, "\n%s\n", line)
	return err
}

func writeTableLine(w io.Writer, fields []Field, cells []string, widths []int) error {
	parts := make([]string, len(cells))
	for i, cell := range cells {
		if fields[i].Key == "value" {
			parts[i] = padLeft(cell, widths[i])
		} else {
			parts[i] = padRight(cell, widths[i])
		}
	}
	_, err := fmt.Fprintln(w, strings.TrimRight(strings.Join(parts, columnGap), " "))
	return err
}

func decorate(r engine.Result, key, cell string, style TableStyle) string {
	if !style.Color || cell == "" {
		return cell
	}
	switch key {
	case "status":
		return termcolor.Apply(termcolor.StatusStyle(cell, style.Scheme, style.Profile), cell, true)
	case "colors":
		painted := make([]string, 0, len(r.Colors))
		for _, hex := range r.Colors {
			c, err := colorutil.Parse(hex)
			if err != nil {
				painted = append(painted, hex)
				continue
			}
			painted = append(painted, termcolor.Apply(termcolor.Swatch(c, style.Profile), hex, true))
		}
		return strings.Join(painted, " ")
	default:
		return cell
	}
}

func singleLine(s string) string {
	if !strings.ContainsAny(s, "\r\n") {
		return s
	}
	s = strings.ReplaceAll(s, "\r\n", "\n")
	s = strings.ReplaceAll(s, "\r", "")
	return strings.ReplaceAll(s, "\n", " ")
}

// Package report renders an engine.Report in the supported output formats.
package report

import (
	"fmt"
	"io"

	"github.com/phyten/themecheck/internal/engine"
	"github.com/phyten/themecheck/internal/logging"
)

type Options struct {
	// Format is one of opts.Outputs, already normalized.
	Format string
	// Fields selects columns for table, csv and markdown. Nil means the
	// format default.
	Fields []Field
	Table  TableStyle
	// Title heads the HTML page.
	Title string
}

// Write renders rep to w. A nil report is written as an empty one.
func Write(w io.Writer, rep *engine.Report, o Options) error {
	if rep == nil {
		rep = &engine.Report{}
	}
	if rep.Results == nil {
		copied := *rep
		copied.Results = []engine.Result{}
		rep = &copied
	}
	fields := o.Fields
	if fields == nil {
		fields = DefaultFields(o.Format)
	}
	log := logging.Component("report")
	log.Debug().
		Str("format", o.Format).
		Int("results", len(rep.Results)).
		Msg("writing report")

	switch o.Format {
	case "", "table":
		return WriteTable(w, rep, fields, o.Table)
	case "json":
		return WriteJSON(w, rep)
	case "ndjson":
		return WriteNDJSON(w, rep.Results)
	case "csv":
		return WriteCSV(w, rep.Results, fields)
	case "markdown":
		return WriteMarkdownTable(w, rep.Results, fields)
	case "html":
		return WriteHTML(w, rep, o.Title)
	default:
		return fmt.Errorf("unsupported output format: %s", o.Format)
	}
}

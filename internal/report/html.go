package report

import (
	_ "embed"
	"html/template"
	"io"
	"sync"

	"github.com/phyten/themecheck/internal/engine"
)

var (
	//go:embed templates/report.html
	reportHTML string
	reportOnce sync.Once
	reportTmpl *template.Template
)

const defaultTitle = "themecheck report"

type htmlRow struct {
	Status  string
	Check   string
	Variant string
	Subject string
	Colors  []string
	Value   string
	Want    string
	Message string
}

type htmlData struct {
	Title   string
	Summary engine.Summary
	Rows    []htmlRow
}

// WriteHTML renders a standalone page with a swatch per color and
// client-side status filters. Every value is escaped by html/template.
func WriteHTML(w io.Writer, rep *engine.Report, title string) error {
	if title == "" {
		title = defaultTitle
	}
	data := htmlData{Title: title, Summary: rep.Summary, Rows: make([]htmlRow, 0, len(rep.Results))}
	for _, r := range rep.Results {
		data.Rows = append(data.Rows, htmlRow{
			Status:  string(r.Status),
			Check:   r.Check,
			Variant: r.Variant,
			Subject: r.Subject,
			Colors:  r.Colors,
			Value:   FormatValue(r),
			Want:    r.Want,
			Message: r.Message,
		})
	}
	return loadTemplate().Execute(w, data)
}

func loadTemplate() *template.Template {
	reportOnce.Do(func() {
		reportTmpl = template.Must(template.New("report").Parse(reportHTML))
	})
	return reportTmpl
}

package report

import (
	"encoding/json"
	"io"

	"github.com/phyten/themecheck/internal/engine"
)

// WriteJSON writes the whole report as one indented document.
func WriteJSON(w io.Writer, rep *engine.Report) error {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	return enc.Encode(rep)
}

// WriteNDJSON streams results as newline-delimited JSON objects.
func WriteNDJSON(w io.Writer, results []engine.Result) error {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	for _, r := range results {
		if err := enc.Encode(r); err != nil {
			return err
		}
	}
	return nil
}

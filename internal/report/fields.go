package report

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/phyten/themecheck/internal/engine"
)

type Field struct {
	Key    string
	Header string
}

var fieldRegistry = map[string]string{
	"status":  "STATUS",
	"check":   "CHECK",
	"variant": "VARIANT",
	"subject": "SUBJECT",
	"value":   "VALUE",
	"want":    "WANT",
	"colors":  "COLORS",
	"message": "MESSAGE",
}

// FieldKeys lists every column in its default order.
var FieldKeys = []string{"status", "check", "variant", "subject", "value", "want", "colors", "message"}

var tableKeys = []string{"status", "check", "variant", "subject", "value", "want", "message"}

func fieldsFor(keys []string) []Field {
	out := make([]Field, 0, len(keys))
	for _, key := range keys {
		out = append(out, Field{Key: key, Header: fieldRegistry[key]})
	}
	return out
}

// DefaultFields is the column set for a format when --fields is not given.
// The terminal table leaves out colors; files carry every column.
func DefaultFields(format string) []Field {
	if format == "table" {
		return fieldsFor(tableKeys)
	}
	return fieldsFor(FieldKeys)
}

// ResolveFields parses a comma-separated column list. An empty list means
// the format default and yields nil.
func ResolveFields(raw string) ([]Field, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}
	parts := strings.Split(raw, ",")
	out := make([]Field, 0, len(parts))
	seen := make(map[string]bool, len(parts))
	for _, part := range parts {
		name := strings.TrimSpace(part)
		if name == "" {
			return nil, fmt.Errorf("invalid fields: empty entry")
		}
		key := strings.ToLower(name)
		header, ok := fieldRegistry[key]
		if !ok {
			return nil, fmt.Errorf("unknown field: %s", name)
		}
		if seen[key] {
			return nil, fmt.Errorf("duplicate field: %s", name)
		}
		seen[key] = true
		out = append(out, Field{Key: key, Header: header})
	}
	return out, nil
}

func Headers(fields []Field) []string {
	out := make([]string, len(fields))
	for i, f := range fields {
		out[i] = f.Header
	}
	return out
}

func RowValues(r engine.Result, fields []Field) []string {
	out := make([]string, len(fields))
	for i, f := range fields {
		out[i] = FieldValue(r, f.Key)
	}
	return out
}

func FieldValue(r engine.Result, key string) string {
	switch key {
	case "status":
		return string(r.Status)
	case "check":
		return r.Check
	case "variant":
		return r.Variant
	case "subject":
		return r.Subject
	case "value":
		return FormatValue(r)
	case "want":
		return r.Want
	case "colors":
		return strings.Join(r.Colors, " ")
	case "message":
		return r.Message
	default:
		return ""
	}
}

// FormatValue renders the measured value. Checks without a numeric
// threshold and skipped checks have none.
func FormatValue(r engine.Result) string {
	if r.Status == engine.StatusSkip || !strings.ContainsAny(r.Want, "<>=") {
		return ""
	}
	return strconv.FormatFloat(r.Value, 'f', -1, 64)
}

package opts

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/phyten/themecheck/internal/engine"
	"github.com/phyten/themecheck/internal/palette"
)

const maxHueTolerance = 180.0

var (
	trueLiterals  = map[string]struct{}{"1": {}, "true": {}, "yes": {}, "on": {}}
	falseLiterals = map[string]struct{}{"0": {}, "false": {}, "no": {}, "off": {}}
)

// Outputs lists the report formats in the order they are documented.
var Outputs = []string{"table", "json", "ndjson", "csv", "markdown", "html"}

// Defaults returns the shared baseline options for the CLI and config layers.
func Defaults() engine.Options {
	return engine.Options{
		HueTolerance: palette.DefaultHueTolerance,
		MutedTextMin: palette.MutedTextMinLuminance,
	}
}

// NormalizeAndValidate ensures the options are canonical and within the allowed ranges.
func NormalizeAndValidate(o *engine.Options) error {
	if o.HueTolerance <= 0 || o.HueTolerance > maxHueTolerance {
		return fmt.Errorf("hue_tolerance must be greater than 0 and at most %g", maxHueTolerance)
	}
	if o.MutedTextMin <= 0 || o.MutedTextMin > 1 {
		return fmt.Errorf("muted_min_luminance must be greater than 0 and at most 1")
	}
	o.Only = SplitMulti(o.Only)
	for i, p := range o.Only {
		p = strings.ToLower(strings.TrimSuffix(p, "."))
		if !knownCheckPrefix(p) {
			return fmt.Errorf("invalid --only: %s", o.Only[i])
		}
		o.Only[i] = p
	}
	return nil
}

func knownCheckPrefix(p string) bool {
	for _, id := range engine.Checks {
		if id == p || strings.HasPrefix(id, p+".") {
			return true
		}
	}
	return false
}

// ParseBool converts a string literal into a boolean, accepting multiple synonyms.
func ParseBool(raw, key string) (bool, error) {
	v := strings.ToLower(strings.TrimSpace(raw))
	if _, ok := trueLiterals[v]; ok {
		return true, nil
	}
	if _, ok := falseLiterals[v]; ok {
		return false, nil
	}
	return false, fmt.Errorf("invalid value for %s: %q", key, raw)
}

// ParseFloat parses a decimal literal. Range checks happen in
// NormalizeAndValidate so every input path shares the same message.
func ParseFloat(raw, key string) (float64, error) {
	v := strings.TrimSpace(raw)
	if v == "" {
		return 0, fmt.Errorf("invalid number for %s: %q", key, raw)
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid number for %s: %q", key, raw)
	}
	return f, nil
}

// NormalizeOutput validates and lower-cases the output format value.
func NormalizeOutput(value string) (string, error) {
	v := strings.ToLower(strings.TrimSpace(value))
	switch v {
	case "":
		return "table", nil
	case "md":
		return "markdown", nil
	case "jsonl":
		return "ndjson", nil
	}
	for _, o := range Outputs {
		if v == o {
			return v, nil
		}
	}
	return "", fmt.Errorf("invalid --output: %s", value)
}

// SplitMulti turns repeated flag values (and comma-separated values) into a flat slice.
func SplitMulti(vals []string) []string {
	var out []string
	for _, raw := range vals {
		for _, piece := range strings.Split(raw, ",") {
			part := strings.TrimSpace(piece)
			if part == "" {
				continue
			}
			out = append(out, part)
		}
	}
	return out
}

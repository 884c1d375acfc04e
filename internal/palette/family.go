package palette

import (
	"fmt"
	"strings"

	"github.com/phyten/themecheck/internal/colorutil"
)

// DefaultHueTolerance is the widest hue drift, in degrees, allowed between a
// family variant and its base.
const DefaultHueTolerance = 30.0

// Tone is one of the five lightness variants of a color family.
type Tone string

const (
	ToneDarker  Tone = "darker"
	ToneDark    Tone = "dark"
	ToneBase    Tone = "base"
	ToneLight   Tone = "light"
	ToneLighter Tone = "lighter"
)

// Tones lists the variants from darkest to lightest.
var Tones = []Tone{ToneDarker, ToneDark, ToneBase, ToneLight, ToneLighter}

func ParseTone(v string) (Tone, error) {
	t := Tone(strings.ToLower(strings.TrimSpace(v)))
	for _, known := range Tones {
		if t == known {
			return t, nil
		}
	}
	return "", fmt.Errorf("unknown family variant: %q", v)
}

// Family is a named hue whose variants are declared as <Prefix>-darker,
// <Prefix>-dark, <Prefix>, <Prefix>-light and <Prefix>-lighter.
type Family struct {
	Name   string
	Prefix string
}

// Var returns the variable name holding tone t.
func (f Family) Var(t Tone) string {
	if t == ToneBase {
		return f.Prefix
	}
	return f.Prefix + "-" + string(t)
}

// Vars returns the five variable names, darkest first.
func (f Family) Vars() []string {
	out := make([]string, len(Tones))
	for i, t := range Tones {
		out[i] = f.Var(t)
	}
	return out
}

// ToneReport describes one variant of a validated family.
type ToneReport struct {
	Tone      Tone
	Color     colorutil.Color
	Luminance float64
	// Hue is meaningful only when Chromatic is true.
	Hue       float64
	Chromatic bool
	// HueDelta is the angular distance from the base hue.
	HueDelta float64
}

// FamilyReport is the result of ValidateFamily.
type FamilyReport struct {
	Family          string
	Tones           []ToneReport
	HueTolerance    float64
	OrderViolations []string
	HueViolations   []string
}

func (r FamilyReport) Ordered() bool       { return len(r.OrderViolations) == 0 }
func (r FamilyReport) HueConsistent() bool { return len(r.HueViolations) == 0 }

// ValidateFamily checks that luminance strictly increases from darker to
// lighter and that every chromatic variant stays within hueTolerance degrees
// of the base hue. An achromatic base disables the hue comparison. A
// non-positive tolerance selects DefaultHueTolerance.
func ValidateFamily(name string, colors map[Tone]colorutil.Color, hueTolerance float64) (FamilyReport, error) {
	if hueTolerance <= 0 {
		hueTolerance = DefaultHueTolerance
	}
	report := FamilyReport{Family: name, HueTolerance: hueTolerance, Tones: make([]ToneReport, 0, len(Tones))}
	for _, t := range Tones {
		c, ok := colors[t]
		if !ok {
			return report, fmt.Errorf("family %s: missing %s variant", name, t)
		}
		tr := ToneReport{Tone: t, Color: c, Luminance: colorutil.RelativeLuminance(c)}
		tr.Hue, tr.Chromatic = colorutil.Hue(c)
		report.Tones = append(report.Tones, tr)
	}

	for i := 1; i < len(report.Tones); i++ {
		prev, cur := report.Tones[i-1], report.Tones[i]
		if !(prev.Luminance < cur.Luminance) {
			report.OrderViolations = append(report.OrderViolations,
				fmt.Sprintf("%s %s (L=%.4f) is not darker than %s %s (L=%.4f)",
					prev.Tone, prev.Color, prev.Luminance, cur.Tone, cur.Color, cur.Luminance))
		}
	}

	base := report.Tones[2]
	if !base.Chromatic {
		return report, nil
	}
	for i := range report.Tones {
		tr := &report.Tones[i]
		if !tr.Chromatic {
			continue
		}
		tr.HueDelta = colorutil.HueDistance(tr.Hue, base.Hue)
		if tr.HueDelta > hueTolerance {
			report.HueViolations = append(report.HueViolations,
				fmt.Sprintf("%s %s hue %.1f° is %.1f° from base hue %.1f°",
					tr.Tone, tr.Color, tr.Hue, tr.HueDelta, base.Hue))
		}
	}
	return report, nil
}

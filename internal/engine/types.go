package engine

import (
	"github.com/phyten/themecheck/internal/palette"
	"github.com/phyten/themecheck/internal/wcag"
)

// Status はチェック 1 件の判定結果
type Status string

const (
	StatusPass Status = "pass"
	StatusFail Status = "fail"
	// StatusSkip は値を解決できず判定しなかったことを表す
	StatusSkip Status = "skip"
)

// Check IDs.
const (
	CheckVarsRequired       = "vars.required"
	CheckFamilyDefined      = "family.defined"
	CheckFamilyOrder        = "family.order"
	CheckFamilyHue          = "family.hue"
	CheckPolarityBackground = "polarity.background"
	CheckPolarityText       = "polarity.text"
	CheckPolarityPair       = "polarity.pair"
	CheckContrastText       = "contrast.text"
	CheckContrastBrand      = "contrast.brand"
	CheckContrastAccent     = "contrast.accent"
	CheckContrastPair       = "contrast.pair"
	CheckBrandVibrancy      = "brand.vibrancy"
)

// Checks lists every check ID in the order Run evaluates them.
var Checks = []string{
	CheckVarsRequired,
	CheckFamilyDefined,
	CheckFamilyOrder,
	CheckFamilyHue,
	CheckPolarityBackground,
	CheckPolarityText,
	CheckPolarityPair,
	CheckContrastText,
	CheckContrastBrand,
	CheckContrastAccent,
	CheckContrastPair,
	CheckBrandVibrancy,
}

// Result は 1 件のチェック結果を表す
type Result struct {
	Check   string   `json:"check"`
	Variant string   `json:"variant,omitempty"`
	Subject string   `json:"subject"`
	Status  Status   `json:"status"`
	Value   float64  `json:"value"`
	Want    string   `json:"want,omitempty"`
	Colors  []string `json:"colors,omitempty"`
	Message string   `json:"message,omitempty"`
}

// Summary は結果の集計
type Summary struct {
	Total   int `json:"total"`
	Passed  int `json:"passed"`
	Failed  int `json:"failed"`
	Skipped int `json:"skipped"`
}

func (s *Summary) add(st Status) {
	s.Total++
	switch st {
	case StatusPass:
		s.Passed++
	case StatusFail:
		s.Failed++
	case StatusSkip:
		s.Skipped++
	}
}

// Report は Run の出力
type Report struct {
	Results []Result `json:"results"`
	Summary Summary  `json:"summary"`
}

// Failed reports whether the run should be treated as unsuccessful. Under
// strict, a skipped check counts as a failure.
func (r *Report) Failed(strict bool) bool {
	if r == nil {
		return false
	}
	if r.Summary.Failed > 0 {
		return true
	}
	return strict && r.Summary.Skipped > 0
}

// Roles lists the variables that play each part in every variant.
type Roles struct {
	Backgrounds []string
	Text        []string
	MutedText   []string
	Accents     []string
	Required    []string
}

// FamilySpec is a brand family plus the tones that are used as body text
// and must therefore meet the normal-text threshold.
type FamilySpec struct {
	palette.Family
	TextTones []palette.Tone
}

func (f FamilySpec) usage(t palette.Tone) wcag.TextUsage {
	for _, tt := range f.TextTones {
		if tt == t {
			return wcag.NormalText
		}
	}
	return wcag.UsageForVariant(string(t))
}

// Pair is an explicit foreground/background combination. Foreground and
// Background may be variable names, var() expressions or color literals.
type Pair struct {
	Name       string
	Foreground string
	Background string
	Usage      wcag.TextUsage
	// MinRatio overrides the usage threshold when positive.
	MinRatio float64
	// Variants restricts the pair to the named variants. Empty means all.
	Variants []string
}

func (p Pair) appliesTo(variant string) bool {
	if len(p.Variants) == 0 {
		return true
	}
	for _, v := range p.Variants {
		if v == variant {
			return true
		}
	}
	return false
}

// Layout describes what to check, independent of any variant's values.
type Layout struct {
	Roles    Roles
	Families []FamilySpec
	Pairs    []Pair
}

// Theme は検査対象のテーマ全体
type Theme struct {
	Layout
	Variants []palette.Variant
}

// Options は実行オプション
type Options struct {
	// HueTolerance defaults to palette.DefaultHueTolerance.
	HueTolerance float64
	// MutedTextMin defaults to palette.MutedTextMinLuminance.
	MutedTextMin float64
	// Only limits the run to checks whose ID equals or starts with one of
	// these prefixes ("contrast" selects every contrast.* check).
	Only []string
}

// DefaultLayout is used when no configuration file is found.
func DefaultLayout() Layout {
	return Layout{
		Roles: Roles{
			Backgrounds: []string{"--bg-color", "--surface-color", "--surface-hover"},
			Text:        []string{"--text-color", "--text-muted"},
			MutedText:   []string{"--text-light"},
			Accents:     []string{"--primary", "--primary-dark", "--accent", "--accent-dark"},
			Required:    []string{"--bg-color", "--surface-color", "--text-color", "--text-muted", "--border-color"},
		},
		Families: []FamilySpec{
			{
				Family:    palette.Family{Name: "forest-green", Prefix: "--xgc-forest-green"},
				TextTones: []palette.Tone{palette.ToneDarker, palette.ToneDark, palette.ToneBase},
			},
			{Family: palette.Family{Name: "gold", Prefix: "--xgc-gold"}},
		},
		Pairs: []Pair{
			{Name: "border-visible", Foreground: "--border-color", Background: "--bg-color", MinRatio: 1.2},
		},
	}
}

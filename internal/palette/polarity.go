package palette

import "fmt"

const (
	// PolarityMidpoint splits light from dark luminance.
	PolarityMidpoint = 0.5
	// MutedTextMinLuminance is the floor for muted text in dark mode.
	// De-emphasized text on dark backgrounds is a medium gray, so it only
	// has to clear this value instead of PolarityMidpoint.
	MutedTextMinLuminance = 0.3
)

// Rule identifies which polarity rule a finding belongs to.
type Rule string

const (
	RuleBackground Rule = "background"
	RuleText       Rule = "text"
	RuleMutedText  Rule = "muted-text"
	RulePair       Rule = "pair"
	RuleVibrancy   Rule = "vibrancy"
)

// Finding is one evaluated polarity or vibrancy comparison.
type Finding struct {
	Rule    Rule
	Subject string
	Pass    bool
	// Value is the luminance under test (the text side for pairs, the dark
	// variant for vibrancy).
	Value   float64
	Want    string
	Colors  []string
	Message string
	// Err is set when the comparison could not be evaluated.
	Err error
}

// PolarityInput holds the resolved roles of one variant.
type PolarityInput struct {
	Mode        Mode
	Backgrounds []Sample
	Text        []Sample
	MutedText   []Sample
}

// PolarityRules tunes ValidatePolarity.
type PolarityRules struct {
	// MutedTextMin replaces MutedTextMinLuminance when positive.
	MutedTextMin float64
}

func (r PolarityRules) mutedMin() float64 {
	if r.MutedTextMin > 0 {
		return r.MutedTextMin
	}
	return MutedTextMinLuminance
}

// ValidatePolarity evaluates every background, text and muted-text sample
// against the variant's mode, and every (background, text) pair for
// ordering. Muted text does not take part in the pair ordering.
func ValidatePolarity(in PolarityInput, rules PolarityRules) []Finding {
	var out []Finding
	light := in.Mode != ModeDark

	for _, bg := range in.Backgrounds {
		f := Finding{Rule: RuleBackground, Subject: bg.Ref, Value: bg.Luminance, Colors: []string{bg.Color.Hex()}}
		if light {
			f.Want = fmt.Sprintf("> %.2f", PolarityMidpoint)
			f.Pass = bg.Luminance > PolarityMidpoint
		} else {
			f.Want = fmt.Sprintf("< %.2f", PolarityMidpoint)
			f.Pass = bg.Luminance < PolarityMidpoint
		}
		if !f.Pass {
			f.Message = fmt.Sprintf("%s background %s has luminance %.4f", in.Mode, bg.Color, bg.Luminance)
		}
		out = append(out, f)
	}

	for _, tx := range in.Text {
		out = append(out, textFinding(RuleText, in.Mode, tx, PolarityMidpoint))
	}
	for _, tx := range in.MutedText {
		floor := PolarityMidpoint
		if !light {
			floor = rules.mutedMin()
		}
		out = append(out, textFinding(RuleMutedText, in.Mode, tx, floor))
	}

	for _, bg := range in.Backgrounds {
		for _, tx := range in.Text {
			f := Finding{
				Rule:    RulePair,
				Subject: bg.Ref + " / " + tx.Ref,
				Value:   tx.Luminance,
				Colors:  []string{bg.Color.Hex(), tx.Color.Hex()},
			}
			if light {
				f.Want = fmt.Sprintf("< %.4f", bg.Luminance)
				f.Pass = bg.Luminance > tx.Luminance
			} else {
				f.Want = fmt.Sprintf("> %.4f", bg.Luminance)
				f.Pass = bg.Luminance < tx.Luminance
			}
			if !f.Pass {
				f.Message = fmt.Sprintf("text luminance %.4f is on the wrong side of background %.4f", tx.Luminance, bg.Luminance)
			}
			out = append(out, f)
		}
	}
	return out
}

// textFinding checks light-mode text below PolarityMidpoint, or dark-mode
// text above floor.
func textFinding(rule Rule, mode Mode, tx Sample, floor float64) Finding {
	f := Finding{Rule: rule, Subject: tx.Ref, Value: tx.Luminance, Colors: []string{tx.Color.Hex()}}
	if mode != ModeDark {
		f.Want = fmt.Sprintf("< %.2f", PolarityMidpoint)
		f.Pass = tx.Luminance < PolarityMidpoint
	} else {
		f.Want = fmt.Sprintf("> %.2f", floor)
		f.Pass = tx.Luminance > floor
	}
	if !f.Pass {
		f.Message = fmt.Sprintf("%s %s %s has luminance %.4f", mode, rule, tx.Color, tx.Luminance)
	}
	return f
}

// ValidateVibrancy checks that each brand color in refs is at least as
// bright in the dark variant as in the light one. A ref that does not
// resolve in either variant yields a finding with Err set.
func ValidateVibrancy(light, dark Variant, refs []string) []Finding {
	out := make([]Finding, 0, len(refs))
	for _, ref := range refs {
		l, err := light.Sample(ref)
		if err == nil {
			var d Sample
			d, err = dark.Sample(ref)
			if err == nil {
				out = append(out, vibrancy(ref, l, d))
				continue
			}
		}
		out = append(out, Finding{Rule: RuleVibrancy, Subject: ref, Err: err, Message: err.Error()})
	}
	return out
}

func vibrancy(ref string, light, dark Sample) Finding {
	f := Finding{
		Rule:    RuleVibrancy,
		Subject: ref,
		Value:   dark.Luminance,
		Want:    fmt.Sprintf(">= %.4f", light.Luminance),
		Colors:  []string{light.Color.Hex(), dark.Color.Hex()},
		Pass:    dark.Luminance >= light.Luminance,
	}
	if !f.Pass {
		f.Message = fmt.Sprintf("dark %s (L=%.4f) is dimmer than light %s (L=%.4f)",
			dark.Color, dark.Luminance, light.Color, light.Luminance)
	}
	return f
}

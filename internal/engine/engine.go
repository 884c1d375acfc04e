package engine

import (
	"errors"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/phyten/themecheck/internal/colorutil"
	"github.com/phyten/themecheck/internal/logging"
	"github.com/phyten/themecheck/internal/palette"
	"github.com/phyten/themecheck/internal/wcag"
)

// Run はテーマの全バリアントに対してチェックを実行し、結果と集計を返します。
//
// 値を解決できないチェックは skip として Report に記録され、エラーにはなりません。
// エラーを返すのはテーマ定義そのものが不正な場合だけです。
func Run(theme Theme, opts Options) (*Report, error) {
	start := time.Now()
	if err := validateTheme(theme); err != nil {
		return nil, err
	}
	r := &runner{opts: opts, log: logging.Component("engine")}
	for _, v := range theme.Variants {
		r.variant(theme.Layout, v)
	}
	r.vibrancy(theme)

	r.log.Info().
		Int("total", r.summary.Total).
		Int("passed", r.summary.Passed).
		Int("failed", r.summary.Failed).
		Int("skipped", r.summary.Skipped).
		Int64("elapsed_ms", time.Since(start).Milliseconds()).
		Msg("checks complete")
	return &Report{Results: r.results, Summary: r.summary}, nil
}

func validateTheme(theme Theme) error {
	if len(theme.Variants) == 0 {
		return errors.New("no theme variants to check")
	}
	seen := make(map[string]bool, len(theme.Variants))
	for i, v := range theme.Variants {
		if strings.TrimSpace(v.Name) == "" {
			return fmt.Errorf("variant %d has no name", i+1)
		}
		if seen[v.Name] {
			return fmt.Errorf("duplicate variant name: %s", v.Name)
		}
		seen[v.Name] = true
		if v.Mode != palette.ModeLight && v.Mode != palette.ModeDark {
			return fmt.Errorf("variant %s: invalid mode %q", v.Name, v.Mode)
		}
	}
	for _, f := range theme.Families {
		if !strings.HasPrefix(f.Prefix, "--") {
			return fmt.Errorf("family %s: prefix %q must start with --", f.Name, f.Prefix)
		}
	}
	return nil
}

type runner struct {
	opts    Options
	log     zerolog.Logger
	results []Result
	summary Summary
}

func (r *runner) enabled(check string) bool {
	if len(r.opts.Only) == 0 {
		return true
	}
	for _, p := range r.opts.Only {
		p = strings.TrimSuffix(strings.TrimSpace(p), ".")
		if check == p || strings.HasPrefix(check, p+".") {
			return true
		}
	}
	return false
}

func (r *runner) add(res Result) {
	if !r.enabled(res.Check) {
		return
	}
	if res.Status == StatusSkip {
		r.log.Debug().
			Str("check", res.Check).
			Str("variant", res.Variant).
			Str("subject", res.Subject).
			Msg(res.Message)
	}
	r.results = append(r.results, res)
	r.summary.add(res.Status)
}

func (r *runner) variant(l Layout, v palette.Variant) {
	for _, name := range l.Roles.Required {
		res := Result{Check: CheckVarsRequired, Variant: v.Name, Subject: name, Status: StatusPass}
		if !v.Vars.Has(name) {
			res.Status = StatusFail
			res.Message = "variable is not declared"
		}
		r.add(res)
	}
	for _, f := range l.Families {
		r.family(v, f)
	}
	r.polarity(l.Roles, v)

	for _, bg := range l.Roles.Backgrounds {
		for _, tx := range l.Roles.Text {
			r.contrast(CheckContrastText, v, tx, bg, tx+" on "+bg, wcag.NormalText, 0)
		}
		for _, tx := range l.Roles.MutedText {
			r.contrast(CheckContrastText, v, tx, bg, tx+" on "+bg, wcag.LargeTextOrUIComponent, 0)
		}
	}

	// Brand colors are checked against light surfaces only. Dark variants
	// are covered by brand.vibrancy.
	if v.Mode == palette.ModeLight {
		for _, f := range l.Families {
			for _, t := range palette.Tones {
				fg := f.Var(t)
				for _, bg := range l.Roles.Backgrounds {
					r.contrast(CheckContrastBrand, v, fg, bg, fg+" on "+bg, f.usage(t), 0)
				}
			}
		}
		for _, fg := range l.Roles.Accents {
			for _, bg := range l.Roles.Backgrounds {
				r.contrast(CheckContrastAccent, v, fg, bg, fg+" on "+bg, wcag.LargeTextOrUIComponent, 0)
			}
		}
	}

	for _, p := range l.Pairs {
		if !p.appliesTo(v.Name) {
			continue
		}
		subject := p.Name
		if subject == "" {
			subject = p.Foreground + " on " + p.Background
		}
		r.contrast(CheckContrastPair, v, p.Foreground, p.Background, subject, p.Usage, p.MinRatio)
	}
}

func (r *runner) family(v palette.Variant, f FamilySpec) {
	var missing []string
	for _, name := range f.Vars() {
		if !v.Vars.Has(name) {
			missing = append(missing, name)
		}
	}
	def := Result{Check: CheckFamilyDefined, Variant: v.Name, Subject: f.Name, Status: StatusPass}
	if len(missing) > 0 {
		def.Status = StatusFail
		def.Message = "missing " + strings.Join(missing, ", ")
	}
	r.add(def)

	skipBoth := func(msg string) {
		r.add(Result{Check: CheckFamilyOrder, Variant: v.Name, Subject: f.Name, Status: StatusSkip, Message: msg})
		r.add(Result{Check: CheckFamilyHue, Variant: v.Name, Subject: f.Name, Status: StatusSkip, Message: msg})
	}
	if len(missing) > 0 {
		skipBoth("family is incomplete")
		return
	}

	colors := make(map[palette.Tone]colorutil.Color, len(palette.Tones))
	for _, t := range palette.Tones {
		c, err := v.Vars.ResolveColor(f.Var(t))
		if err != nil {
			skipBoth(fmt.Sprintf("%s: %v", f.Var(t), err))
			return
		}
		colors[t] = c
	}
	rep, err := palette.ValidateFamily(f.Name, colors, r.opts.HueTolerance)
	if err != nil {
		skipBoth(err.Error())
		return
	}

	hexes := make([]string, len(rep.Tones))
	maxDelta := 0.0
	for i, tr := range rep.Tones {
		hexes[i] = tr.Color.Hex()
		maxDelta = math.Max(maxDelta, tr.HueDelta)
	}

	order := Result{
		Check:   CheckFamilyOrder,
		Variant: v.Name,
		Subject: f.Name,
		Status:  statusOf(rep.Ordered()),
		Want:    "increasing",
		Colors:  hexes,
		Message: strings.Join(rep.OrderViolations, "; "),
	}
	r.add(order)

	hue := Result{
		Check:   CheckFamilyHue,
		Variant: v.Name,
		Subject: f.Name,
		Status:  statusOf(rep.HueConsistent()),
		Value:   round4(maxDelta),
		Want:    fmt.Sprintf("<= %.1f", rep.HueTolerance),
		Colors:  hexes,
		Message: strings.Join(rep.HueViolations, "; "),
	}
	if !rep.Tones[2].Chromatic {
		hue.Status = StatusSkip
		hue.Want = ""
		hue.Message = "base color is achromatic"
	}
	r.add(hue)
}

func (r *runner) polarity(roles Roles, v palette.Variant) {
	in := palette.PolarityInput{Mode: v.Mode}
	in.Backgrounds = r.samples(v, roles.Backgrounds, CheckPolarityBackground)
	in.Text = r.samples(v, roles.Text, CheckPolarityText)
	in.MutedText = r.samples(v, roles.MutedText, CheckPolarityText)

	rules := palette.PolarityRules{MutedTextMin: r.opts.MutedTextMin}
	for _, f := range palette.ValidatePolarity(in, rules) {
		check := CheckPolarityText
		switch f.Rule {
		case palette.RuleBackground:
			check = CheckPolarityBackground
		case palette.RulePair:
			check = CheckPolarityPair
		}
		r.add(fromFinding(check, v.Name, f))
	}
}

// samples resolves refs in v and records a skip under check for every ref
// that does not resolve to a color.
func (r *runner) samples(v palette.Variant, refs []string, check string) []palette.Sample {
	out := make([]palette.Sample, 0, len(refs))
	for _, ref := range refs {
		s, err := v.Sample(ref)
		if err != nil {
			r.add(Result{Check: check, Variant: v.Name, Subject: ref, Status: StatusSkip, Message: err.Error()})
			continue
		}
		out = append(out, s)
	}
	return out
}

// contrast compares fg against bg. A positive minRatio replaces the usage
// threshold.
func (r *runner) contrast(check string, v palette.Variant, fgRef, bgRef, subject string, usage wcag.TextUsage, minRatio float64) {
	res := Result{Check: check, Variant: v.Name, Subject: subject}
	fg, err := v.Sample(fgRef)
	if err != nil {
		res.Status = StatusSkip
		res.Message = fmt.Sprintf("%s: %v", fgRef, err)
		r.add(res)
		return
	}
	bg, err := v.Sample(bgRef)
	if err != nil {
		res.Status = StatusSkip
		res.Message = fmt.Sprintf("%s: %v", bgRef, err)
		r.add(res)
		return
	}

	ratio := colorutil.ContrastRatio(fg.Color, bg.Color)
	want := wcag.MinRatio(usage)
	pass := wcag.MeetsThreshold(ratio, usage)
	if minRatio > 0 {
		want = minRatio
		pass = ratio >= minRatio
	}
	res.Status = statusOf(pass)
	res.Value = round4(ratio)
	res.Want = fmt.Sprintf(">= %.2f", want)
	res.Colors = []string{fg.Color.Hex(), bg.Color.Hex()}
	switch {
	case !pass:
		res.Message = fmt.Sprintf("contrast %.2f:1 is below %.2f:1", ratio, want)
	case minRatio <= 0 && usage == wcag.DecorativeOnly:
		res.Message = "decorative use, exempt"
	}
	r.add(res)
}

func (r *runner) vibrancy(t Theme) {
	refs := make([]string, 0, len(t.Families))
	for _, f := range t.Families {
		refs = append(refs, f.Var(palette.ToneBase))
	}
	if len(refs) == 0 {
		return
	}
	for _, light := range t.Variants {
		if light.Mode != palette.ModeLight {
			continue
		}
		for _, dark := range t.Variants {
			if dark.Mode != palette.ModeDark {
				continue
			}
			label := light.Name + "/" + dark.Name
			for _, f := range palette.ValidateVibrancy(light, dark, refs) {
				r.add(fromFinding(CheckBrandVibrancy, label, f))
			}
		}
	}
}

func fromFinding(check, variant string, f palette.Finding) Result {
	res := Result{
		Check:   check,
		Variant: variant,
		Subject: f.Subject,
		Status:  statusOf(f.Pass),
		Value:   round4(f.Value),
		Want:    f.Want,
		Colors:  f.Colors,
		Message: f.Message,
	}
	if f.Err != nil {
		res.Status = StatusSkip
	}
	return res
}

func statusOf(pass bool) Status {
	if pass {
		return StatusPass
	}
	return StatusFail
}

func round4(v float64) float64 { return math.Round(v*1e4) / 1e4 }

package engine

import (
	"math"
	"path/filepath"
	"strings"
	"testing"

	"github.com/phyten/themecheck/internal/cssvars"
	"github.com/phyten/themecheck/internal/palette"
	"github.com/phyten/themecheck/internal/wcag"
)

func loadVariant(t *testing.T, name string, mode palette.Mode, file string, edit func(map[string]string)) palette.Variant {
	t.Helper()
	table, err := cssvars.Load(filepath.Join("testdata", file))
	if err != nil {
		t.Fatalf("failed to load %s: %v", file, err)
	}
	vars := make(map[string]string, table.Len())
	for _, n := range table.Names() {
		vars[n], _ = table.Lookup(n)
	}
	if edit != nil {
		edit(vars)
	}
	return palette.NewVariant(name, mode, cssvars.New(vars))
}

func fixtureTheme(t *testing.T, editLight, editDark func(map[string]string)) Theme {
	t.Helper()
	return Theme{
		Layout: DefaultLayout(),
		Variants: []palette.Variant{
			loadVariant(t, "light", palette.ModeLight, "light.css", editLight),
			loadVariant(t, "dark", palette.ModeDark, "dark.css", editDark),
		},
	}
}

func run(t *testing.T, theme Theme, opts Options) *Report {
	t.Helper()
	rep, err := Run(theme, opts)
	if err != nil {
		t.Fatalf("Run returned error: %v", err)
	}
	return rep
}

func find(t *testing.T, rep *Report, check, variant, subject string) Result {
	t.Helper()
	for _, r := range rep.Results {
		if r.Check == check && r.Variant == variant && r.Subject == subject {
			return r
		}
	}
	t.Fatalf("no %s result for %s/%s", check, variant, subject)
	return Result{}
}

func count(rep *Report, check string) int {
	n := 0
	for _, r := range rep.Results {
		if r.Check == check {
			n++
		}
	}
	return n
}

func TestRunFixtureThemePasses(t *testing.T) {
	rep := run(t, fixtureTheme(t, nil, nil), Options{})

	want := Summary{Total: 110, Passed: 110}
	if rep.Summary != want {
		for _, r := range rep.Results {
			if r.Status != StatusPass {
				t.Logf("%s %s %s %s: %s", r.Status, r.Check, r.Variant, r.Subject, r.Message)
			}
		}
		t.Fatalf("summary mismatch: got=%+v want=%+v", rep.Summary, want)
	}
	if rep.Failed(true) {
		t.Fatalf("clean report must not fail even under strict")
	}

	counts := map[string]int{
		CheckVarsRequired:       10,
		CheckFamilyDefined:      4,
		CheckFamilyOrder:        4,
		CheckFamilyHue:          4,
		CheckPolarityBackground: 6,
		CheckPolarityText:       6,
		CheckPolarityPair:       12,
		CheckContrastText:       18,
		CheckContrastBrand:      30,
		CheckContrastAccent:     12,
		CheckContrastPair:       2,
		CheckBrandVibrancy:      2,
	}
	for check, n := range counts {
		if got := count(rep, check); got != n {
			t.Fatalf("%s: got %d results, want %d", check, got, n)
		}
	}

	border := find(t, rep, CheckContrastPair, "light", "border-visible")
	if math.Abs(border.Value-1.2328) > 1e-4 || border.Want != ">= 1.20" {
		t.Fatalf("border pair mismatch: %+v", border)
	}
	lighter := find(t, rep, CheckContrastBrand, "light", "--xgc-gold-lighter on --bg-color")
	if lighter.Status != StatusPass || lighter.Message != "decorative use, exempt" {
		t.Fatalf("gold lighter should be exempt: %+v", lighter)
	}
	if math.Abs(lighter.Value-2.1028) > 1e-4 {
		t.Fatalf("gold lighter ratio: got %.4f", lighter.Value)
	}
	base := find(t, rep, CheckContrastBrand, "light", "--xgc-gold on --surface-hover")
	if base.Want != ">= 3.00" {
		t.Fatalf("gold base should use the large-text threshold: %+v", base)
	}
	forest := find(t, rep, CheckContrastBrand, "light", "--xgc-forest-green on --bg-color")
	if forest.Want != ">= 4.50" || math.Abs(forest.Value-9.2485) > 1e-4 {
		t.Fatalf("forest base is a text tone: %+v", forest)
	}
	muted := find(t, rep, CheckPolarityText, "dark", "--text-light")
	if muted.Want != "> 0.30" || muted.Status != StatusPass {
		t.Fatalf("dark muted text should use the relaxed floor: %+v", muted)
	}
}

func TestRunResultOrder(t *testing.T) {
	rep := run(t, fixtureTheme(t, nil, nil), Options{})
	if rep.Results[0].Check != CheckVarsRequired || rep.Results[0].Variant != "light" {
		t.Fatalf("first result should be a light vars.required: %+v", rep.Results[0])
	}
	last := rep.Results[len(rep.Results)-1]
	if last.Check != CheckBrandVibrancy || last.Variant != "light/dark" {
		t.Fatalf("vibrancy results should come last: %+v", last)
	}
}

func TestRunTextContrastFailure(t *testing.T) {
	rep := run(t, fixtureTheme(t, func(m map[string]string) { m["--text-color"] = "#cccccc" }, nil), Options{})

	if rep.Summary.Failed != 4 {
		t.Fatalf("want 4 failures (1 polarity + 3 contrast), got %+v", rep.Summary)
	}
	if !rep.Failed(false) {
		t.Fatalf("report with failures must fail")
	}
	res := find(t, rep, CheckContrastText, "light", "--text-color on --bg-color")
	if res.Status != StatusFail {
		t.Fatalf("expected fail: %+v", res)
	}
	if !strings.Contains(res.Message, "below 4.50:1") {
		t.Fatalf("unexpected message: %q", res.Message)
	}
	if len(res.Colors) != 2 || res.Colors[0] != "#cccccc" || res.Colors[1] != "#ffffff" {
		t.Fatalf("unexpected colors: %v", res.Colors)
	}
	if find(t, rep, CheckPolarityText, "light", "--text-color").Status != StatusFail {
		t.Fatalf("light text above the midpoint must fail polarity")
	}
}

func TestRunUnresolvedValuesAreSkipped(t *testing.T) {
	rep := run(t, fixtureTheme(t, func(m map[string]string) { m["--surface-hover"] = "var(--undefined)" }, nil), Options{})

	// polarity 1 + text 3 + brand 10 + accent 4; the two polarity pairs are dropped
	want := Summary{Total: 108, Passed: 90, Skipped: 18}
	if rep.Summary != want {
		t.Fatalf("summary mismatch: got=%+v want=%+v", rep.Summary, want)
	}
	if rep.Failed(false) {
		t.Fatalf("skips alone must not fail")
	}
	if !rep.Failed(true) {
		t.Fatalf("skips must fail under strict")
	}
	res := find(t, rep, CheckContrastAccent, "light", "--primary on --surface-hover")
	if res.Status != StatusSkip || !strings.Contains(res.Message, "unresolved") {
		t.Fatalf("expected unresolved skip: %+v", res)
	}
}

func TestRunIncompleteFamily(t *testing.T) {
	rep := run(t, fixtureTheme(t, func(m map[string]string) { delete(m, "--xgc-gold-lighter") }, nil), Options{})

	def := find(t, rep, CheckFamilyDefined, "light", "gold")
	if def.Status != StatusFail || def.Message != "missing --xgc-gold-lighter" {
		t.Fatalf("unexpected family.defined: %+v", def)
	}
	for _, check := range []string{CheckFamilyOrder, CheckFamilyHue} {
		if r := find(t, rep, check, "light", "gold"); r.Status != StatusSkip {
			t.Fatalf("%s should be skipped: %+v", check, r)
		}
	}
	if rep.Summary.Failed != 1 || rep.Summary.Skipped != 5 {
		t.Fatalf("unexpected summary: %+v", rep.Summary)
	}
}

func TestRunFamilyOrderAndHueViolations(t *testing.T) {
	rep := run(t, fixtureTheme(t, func(m map[string]string) {
		m["--xgc-forest-green-dark"] = "#0a1a04"
		m["--xgc-gold-light"] = "#b8321f"
	}, nil), Options{})

	order := find(t, rep, CheckFamilyOrder, "light", "forest-green")
	if order.Status != StatusFail || !strings.Contains(order.Message, "darker #0d2005") {
		t.Fatalf("forest order should fail: %+v", order)
	}
	hue := find(t, rep, CheckFamilyHue, "light", "gold")
	if hue.Status != StatusFail || hue.Value <= 10 || hue.Want != "<= 30.0" {
		t.Fatalf("gold hue should fail: %+v", hue)
	}

	wide := run(t, fixtureTheme(t, func(m map[string]string) { m["--xgc-gold-light"] = "#b8321f" }, nil), Options{HueTolerance: 60})
	if r := find(t, wide, CheckFamilyHue, "light", "gold"); r.Status != StatusPass || r.Want != "<= 60.0" {
		t.Fatalf("wider tolerance should pass: %+v", r)
	}
}

func TestRunVibrancy(t *testing.T) {
	rep := run(t, fixtureTheme(t, nil, func(m map[string]string) { m["--xgc-gold"] = "#7a5e0d" }), Options{})
	res := find(t, rep, CheckBrandVibrancy, "light/dark", "--xgc-gold")
	if res.Status != StatusFail || !strings.Contains(res.Message, "dimmer") {
		t.Fatalf("dimmer dark gold should fail vibrancy: %+v", res)
	}
	if find(t, rep, CheckBrandVibrancy, "light/dark", "--xgc-forest-green").Status != StatusPass {
		t.Fatalf("forest vibrancy should pass")
	}
}

func TestRunMutedTextOption(t *testing.T) {
	rep := run(t, fixtureTheme(t, nil, nil), Options{MutedTextMin: 0.4})
	res := find(t, rep, CheckPolarityText, "dark", "--text-light")
	if res.Status != StatusFail || res.Want != "> 0.40" {
		t.Fatalf("raised floor should fail #94a3b8: %+v", res)
	}
}

func TestRunOnlyFilter(t *testing.T) {
	rep := run(t, fixtureTheme(t, nil, nil), Options{Only: []string{"contrast.text", "brand."}})
	if rep.Summary.Total != 20 {
		t.Fatalf("want 18 contrast.text + 2 brand.vibrancy, got %d", rep.Summary.Total)
	}
	for _, r := range rep.Results {
		if r.Check != CheckContrastText && r.Check != CheckBrandVibrancy {
			t.Fatalf("unexpected check %s", r.Check)
		}
	}

	rep = run(t, fixtureTheme(t, nil, nil), Options{Only: []string{"contrast"}})
	if rep.Summary.Total != 62 {
		t.Fatalf("want 62 contrast results, got %d", rep.Summary.Total)
	}
}

func TestRunPairs(t *testing.T) {
	theme := fixtureTheme(t, nil, nil)
	for _, p := range [][3]string{
		{"alert-success", "#065f46", "#d1fae5"},
		{"alert-warning", "#92400e", "#fef3c7"},
		{"alert-danger", "#991b1b", "#fee2e2"},
		{"alert-info", "#1e40af", "#dbeafe"},
	} {
		theme.Pairs = append(theme.Pairs, Pair{Name: p[0], Foreground: p[1], Background: p[2], Usage: wcag.NormalText, Variants: []string{"light"}})
	}
	theme.Pairs = append(theme.Pairs, Pair{Foreground: "--xgc-gold-lighter", Background: "#ffffff", Usage: wcag.NormalText})

	rep := run(t, theme, Options{})
	if got := count(rep, CheckContrastPair); got != 2+4+2 {
		t.Fatalf("unexpected pair count: %d", got)
	}
	for _, name := range []string{"alert-success", "alert-warning", "alert-danger", "alert-info"} {
		if r := find(t, rep, CheckContrastPair, "light", name); r.Status != StatusPass {
			t.Fatalf("%s should pass: %+v", name, r)
		}
	}
	gold := find(t, rep, CheckContrastPair, "light", "--xgc-gold-lighter on #ffffff")
	if gold.Status != StatusFail || math.Abs(gold.Value-2.1028) > 1e-4 {
		t.Fatalf("gold on white must fail normal text: %+v", gold)
	}
	if rep.Summary.Failed != 2 {
		t.Fatalf("want the unnamed pair to fail in both variants: %+v", rep.Summary)
	}
}

func TestRunInvalidTheme(t *testing.T) {
	light := palette.NewVariant("light", palette.ModeLight, cssvars.New(nil))
	cases := map[string]Theme{
		"no variants":    {},
		"duplicate name": {Variants: []palette.Variant{light, light}},
		"bad mode":       {Variants: []palette.Variant{palette.NewVariant("dim", "dim", cssvars.New(nil))}},
		"unnamed":        {Variants: []palette.Variant{palette.NewVariant(" ", palette.ModeDark, cssvars.New(nil))}},
		"bad prefix": {
			Layout:   Layout{Families: []FamilySpec{{Family: palette.Family{Name: "x", Prefix: "xgc"}}}},
			Variants: []palette.Variant{light},
		},
	}
	for name, theme := range cases {
		if _, err := Run(theme, Options{}); err == nil {
			t.Fatalf("%s: expected error", name)
		}
	}
}

func TestReportFailedNil(t *testing.T) {
	var rep *Report
	if rep.Failed(true) {
		t.Fatalf("nil report must not fail")
	}
}

package palette

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/phyten/themecheck/internal/colorutil"
	"github.com/phyten/themecheck/internal/cssvars"
)

func tones(hexes ...string) map[Tone]colorutil.Color {
	m := make(map[Tone]colorutil.Color, len(hexes))
	for i, h := range hexes {
		m[Tones[i]] = colorutil.MustParse(h)
	}
	return m
}

func TestFamilyVars(t *testing.T) {
	f := Family{Name: "forest-green", Prefix: "--xgc-forest-green"}
	assert.Equal(t, []string{
		"--xgc-forest-green-darker",
		"--xgc-forest-green-dark",
		"--xgc-forest-green",
		"--xgc-forest-green-light",
		"--xgc-forest-green-lighter",
	}, f.Vars())
}

func TestParseTone(t *testing.T) {
	got, err := ParseTone(" Lighter ")
	require.NoError(t, err)
	assert.Equal(t, ToneLighter, got)

	_, err = ParseTone("darkest")
	assert.Error(t, err)
}

func TestParseMode(t *testing.T) {
	m, err := ParseMode("DARK")
	require.NoError(t, err)
	assert.Equal(t, ModeDark, m)

	_, err = ParseMode("dim")
	assert.Error(t, err)
}

func TestValidateFamilyForestGreen(t *testing.T) {
	report, err := ValidateFamily("forest-green", tones("#0d2005", "#1d3a0f", "#2d5016", "#3d6b1f", "#4d7c2a"), 30)
	require.NoError(t, err)
	assert.True(t, report.Ordered(), report.OrderViolations)
	assert.True(t, report.HueConsistent(), report.HueViolations)
	require.Len(t, report.Tones, 5)
	for i := 1; i < len(report.Tones); i++ {
		assert.Less(t, report.Tones[i-1].Luminance, report.Tones[i].Luminance)
	}
	for _, tr := range report.Tones {
		require.True(t, tr.Chromatic)
		assert.InDelta(t, 98, tr.Hue, 6)
	}
}

func TestValidateFamilyOrderViolation(t *testing.T) {
	report, err := ValidateFamily("forest-green", tones("#1d3a0f", "#0d2005", "#2d5016", "#3d6b1f", "#4d7c2a"), 30)
	require.NoError(t, err)
	assert.False(t, report.Ordered())
	assert.Len(t, report.OrderViolations, 1)
	assert.Contains(t, report.OrderViolations[0], "darker #1d3a0f")
}

func TestValidateFamilyEqualLuminanceIsNotOrdered(t *testing.T) {
	report, err := ValidateFamily("gray", tones("#111111", "#444444", "#444444", "#888888", "#cccccc"), 30)
	require.NoError(t, err)
	assert.False(t, report.Ordered())
}

func TestValidateFamilyHueDrift(t *testing.T) {
	// lighter swapped for a violet of similar lightness
	report, err := ValidateFamily("forest-green", tones("#0d2005", "#1d3a0f", "#2d5016", "#3d6b1f", "#8a6fd6"), 30)
	require.NoError(t, err)
	assert.True(t, report.Ordered())
	assert.False(t, report.HueConsistent())
	require.Len(t, report.HueViolations, 1)
	assert.Contains(t, report.HueViolations[0], "lighter")
	assert.Greater(t, report.Tones[4].HueDelta, 30.0)

	wide, err := ValidateFamily("forest-green", tones("#0d2005", "#1d3a0f", "#2d5016", "#3d6b1f", "#8a6fd6"), 180)
	require.NoError(t, err)
	assert.True(t, wide.HueConsistent())
}

func TestValidateFamilyAchromatic(t *testing.T) {
	// a gray variant is skipped, not measured against the base hue
	report, err := ValidateFamily("forest-green", tones("#0d2005", "#1d3a0f", "#2d5016", "#3d6b1f", "#cccccc"), 30)
	require.NoError(t, err)
	assert.True(t, report.HueConsistent())
	assert.False(t, report.Tones[4].Chromatic)

	grays, err := ValidateFamily("gray", tones("#111111", "#444444", "#666666", "#888888", "#cccccc"), 30)
	require.NoError(t, err)
	assert.True(t, grays.Ordered())
	assert.True(t, grays.HueConsistent())
}

func TestValidateFamilyDefaultsAndMissingTone(t *testing.T) {
	report, err := ValidateFamily("forest-green", tones("#0d2005", "#1d3a0f", "#2d5016", "#3d6b1f", "#4d7c2a"), 0)
	require.NoError(t, err)
	assert.Equal(t, DefaultHueTolerance, report.HueTolerance)

	_, err = ValidateFamily("forest-green", tones("#0d2005", "#1d3a0f", "#2d5016"), 30)
	assert.ErrorContains(t, err, "missing light variant")
}

func sample(ref, hex string) Sample { return NewSample(ref, colorutil.MustParse(hex)) }

func countFailures(fs []Finding) int {
	n := 0
	for _, f := range fs {
		if !f.Pass {
			n++
		}
	}
	return n
}

func TestValidatePolarityLight(t *testing.T) {
	in := PolarityInput{
		Mode:        ModeLight,
		Backgrounds: []Sample{sample("--bg-color", "#ffffff"), sample("--surface-hover", "#f1f5f9")},
		Text:        []Sample{sample("--text-color", "#1e293b")},
		MutedText:   []Sample{sample("--text-light", "#64748b")},
	}
	findings := ValidatePolarity(in, PolarityRules{})
	// 2 backgrounds, 1 text, 1 muted, 2 pairs
	assert.Len(t, findings, 6)
	assert.Zero(t, countFailures(findings))

	in.Backgrounds = append(in.Backgrounds, sample("--oops", "#0f172a"))
	findings = ValidatePolarity(in, PolarityRules{})
	// the dark background fails its own rule and its pair ordering
	assert.Equal(t, 2, countFailures(findings))
}

func TestValidatePolarityDarkMutedRelaxation(t *testing.T) {
	in := PolarityInput{
		Mode:        ModeDark,
		Backgrounds: []Sample{sample("--bg-color", "#0f172a"), sample("--surface-hover", "#334155")},
		Text:        []Sample{sample("--text-color", "#e2e8f0"), sample("--text-muted", "#cbd5e1")},
		MutedText:   []Sample{sample("--text-light", "#94a3b8")},
	}
	findings := ValidatePolarity(in, PolarityRules{})
	// 2 + 2 + 1 + 2*2 pairs; muted text takes no part in pair ordering
	assert.Len(t, findings, 9)
	assert.Zero(t, countFailures(findings))

	var muted Finding
	for _, f := range findings {
		if f.Rule == RuleMutedText {
			muted = f
		}
	}
	assert.InDelta(t, 0.3595, muted.Value, 0.001)
	assert.Equal(t, "> 0.30", muted.Want)

	// #94a3b8 would not pass as ordinary dark-mode text
	in.Text = append(in.Text, in.MutedText...)
	assert.Equal(t, 1, countFailures(ValidatePolarity(in, PolarityRules{})))

	strict := ValidatePolarity(PolarityInput{Mode: ModeDark, MutedText: in.MutedText}, PolarityRules{MutedTextMin: 0.4})
	require.Len(t, strict, 1)
	assert.False(t, strict[0].Pass)
}

func TestValidatePolarityDarkBackgroundTooBright(t *testing.T) {
	findings := ValidatePolarity(PolarityInput{
		Mode:        ModeDark,
		Backgrounds: []Sample{sample("--bg-color", "#ffffff")},
		Text:        []Sample{sample("--text-color", "#e2e8f0")},
	}, PolarityRules{})
	require.Len(t, findings, 3)
	assert.False(t, findings[0].Pass)
	assert.True(t, findings[1].Pass)
	assert.False(t, findings[2].Pass, "text must be brighter than the background in dark mode")
	assert.Equal(t, RulePair, findings[2].Rule)
	assert.Equal(t, "--bg-color / --text-color", findings[2].Subject)
}

func TestValidateVibrancy(t *testing.T) {
	light := NewVariant("light", ModeLight, cssvars.New(map[string]string{
		"--xgc-forest-green": "#2d5016",
		"--xgc-gold":         "#9c7a10",
		"--primary":          "var(--xgc-forest-green)",
		"--dim":              "#d4af37",
	}))
	dark := NewVariant("dark", ModeDark, cssvars.New(map[string]string{
		"--xgc-forest-green": "#4d7c2a",
		"--xgc-gold":         "#9c7a10",
		"--primary":          "var(--xgc-forest-green)",
		"--dim":              "#9c7a10",
	}))

	findings := ValidateVibrancy(light, dark, []string{"--xgc-forest-green", "--xgc-gold", "--primary", "--dim", "--missing"})
	require.Len(t, findings, 5)
	assert.True(t, findings[0].Pass)
	assert.Equal(t, []string{"#2d5016", "#4d7c2a"}, findings[0].Colors)
	assert.True(t, findings[1].Pass, "equal luminance is allowed")
	assert.True(t, findings[2].Pass)
	assert.False(t, findings[3].Pass)
	assert.Contains(t, findings[3].Message, "dimmer")
	assert.ErrorIs(t, findings[4].Err, cssvars.ErrUnresolvedReference)
	assert.True(t, cssvars.Skippable(findings[4].Err))
}

func TestVariantSample(t *testing.T) {
	v := NewVariant("light", ModeLight, cssvars.New(map[string]string{
		"--bg-color": "#ffffff",
		"--font":     "Inter, sans-serif",
	}))
	s, err := v.Sample("--bg-color")
	require.NoError(t, err)
	assert.InDelta(t, 1.0, s.Luminance, 1e-9)

	_, err = v.Sample("--font")
	assert.True(t, cssvars.Skippable(err))
}

func TestCategoryString(t *testing.T) {
	assert.Equal(t, "muted-text", CategoryMutedText.String())
	assert.Equal(t, "Category(9)", Category(9).String())
}

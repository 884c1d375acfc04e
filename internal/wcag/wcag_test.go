package wcag

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/phyten/themecheck/internal/colorutil"
)

func TestMeetsThreshold(t *testing.T) {
	assert.True(t, MeetsThreshold(3.2, LargeTextOrUIComponent))
	assert.False(t, MeetsThreshold(3.2, NormalText))
	assert.True(t, MeetsThreshold(4.6, NormalText))
	assert.True(t, MeetsThreshold(4.5, NormalText), "boundary is inclusive")
	assert.True(t, MeetsThreshold(3.0, LargeTextOrUIComponent), "boundary is inclusive")
	assert.False(t, MeetsThreshold(2.99, LargeTextOrUIComponent))
	assert.True(t, MeetsThreshold(1.0, DecorativeOnly))
}

func TestUsageForVariantExemptsOnlyLightVariants(t *testing.T) {
	cases := map[string]TextUsage{
		"lighter": DecorativeOnly,
		"light":   DecorativeOnly,
		"base":    LargeTextOrUIComponent,
		"dark":    LargeTextOrUIComponent,
		"darker":  LargeTextOrUIComponent,
		"":        LargeTextOrUIComponent,
	}
	for variant, want := range cases {
		assert.Equal(t, want, UsageForVariant(variant), "variant %q", variant)
	}
}

func TestParseUsage(t *testing.T) {
	cases := map[string]TextUsage{
		"normal":       NormalText,
		"":             NormalText,
		"Large":        LargeTextOrUIComponent,
		"ui-component": LargeTextOrUIComponent,
		"decorative":   DecorativeOnly,
	}
	for in, want := range cases {
		got, err := ParseUsage(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}
	_, err := ParseUsage("huge")
	assert.Error(t, err)
}

func TestGrade(t *testing.T) {
	assert.Equal(t, "AAA", Grade(21))
	assert.Equal(t, "AA", Grade(4.5))
	assert.Equal(t, "AA Large", Grade(3.2))
	assert.Equal(t, "Fail", Grade(2.1))
}

func TestBrandScenarios(t *testing.T) {
	forest, err := colorutil.ContrastRatioHex("#ffffff", "#2d5016")
	require.NoError(t, err)
	assert.True(t, MeetsThreshold(forest, NormalText))
	assert.True(t, MeetsThreshold(forest, LargeTextOrUIComponent))

	// Base gold on white is a known marginal case: text needs a darker variant.
	gold, err := colorutil.ContrastRatioHex("#ffffff", "#d4af37")
	require.NoError(t, err)
	assert.InDelta(t, 2.10, gold, 0.05)
	assert.False(t, MeetsThreshold(gold, NormalText))
	assert.False(t, MeetsThreshold(gold, LargeTextOrUIComponent))
}


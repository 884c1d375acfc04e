// Package wcag classifies contrast ratios against the WCAG 2.1 AA
// thresholds and owns the exemption policy for decorative color variants.
package wcag

import (
	"fmt"
	"strings"
)

// TextUsage says how a foreground color is used, which decides the minimum
// contrast it needs.
type TextUsage int

const (
	// NormalText requires 4.5:1.
	NormalText TextUsage = iota
	// LargeTextOrUIComponent requires 3:1 (large text, icons, control
	// boundaries).
	LargeTextOrUIComponent
	// DecorativeOnly has no requirement.
	DecorativeOnly
)

const (
	NormalTextMinRatio = 4.5
	LargeTextMinRatio  = 3.0
	EnhancedMinRatio   = 7.0
)

func (u TextUsage) String() string {
	switch u {
	case NormalText:
		return "normal"
	case LargeTextOrUIComponent:
		return "large"
	case DecorativeOnly:
		return "decorative"
	default:
		return fmt.Sprintf("TextUsage(%d)", int(u))
	}
}

// ParseUsage accepts the names used in config files.
func ParseUsage(v string) (TextUsage, error) {
	switch strings.ReplaceAll(strings.ToLower(strings.TrimSpace(v)), "-", "_") {
	case "", "normal", "normal_text", "text":
		return NormalText, nil
	case "large", "large_text", "ui", "ui_component":
		return LargeTextOrUIComponent, nil
	case "decorative", "decorative_only":
		return DecorativeOnly, nil
	default:
		return NormalText, fmt.Errorf("unknown text usage: %s", v)
	}
}

// MinRatio is the smallest passing ratio for u. DecorativeOnly returns 1,
// which every ratio meets.
func MinRatio(u TextUsage) float64 {
	switch u {
	case NormalText:
		return NormalTextMinRatio
	case LargeTextOrUIComponent:
		return LargeTextMinRatio
	default:
		return 1
	}
}

// MeetsThreshold reports whether ratio is enough for usage.
func MeetsThreshold(ratio float64, usage TextUsage) bool {
	if usage == DecorativeOnly {
		return true
	}
	return ratio >= MinRatio(usage)
}

// UsageForVariant maps a color family variant name to the usage its
// contrast is checked against. The light and lighter variants are
// decorative and exempt; everything else must work as large text or a UI
// component. This is the only exemption rule.
func UsageForVariant(variant string) TextUsage {
	switch strings.ToLower(strings.TrimSpace(variant)) {
	case "light", "lighter":
		return DecorativeOnly
	default:
		return LargeTextOrUIComponent
	}
}

// Grade names the highest WCAG level ratio reaches.
func Grade(ratio float64) string {
	switch {
	case ratio >= EnhancedMinRatio:
		return "AAA"
	case ratio >= NormalTextMinRatio:
		return "AA"
	case ratio >= LargeTextMinRatio:
		return "AA Large"
	default:
		return "Fail"
	}
}

package colorutil

import "math"

// Linear segment cutoff as published in WCAG 2.1 (IEC sRGB says 0.04045).
const srgbCutoff = 0.03928

func srgbToLinear(c float64) float64 {
	if c <= srgbCutoff {
		return c / 12.92
	}
	return math.Pow((c+0.055)/1.055, 2.4)
}

// RelativeLuminance returns the WCAG relative luminance of c in [0, 1].
func RelativeLuminance(c Color) float64 {
	r := srgbToLinear(float64(c.R) / 255.0)
	g := srgbToLinear(float64(c.G) / 255.0)
	b := srgbToLinear(float64(c.B) / 255.0)
	return 0.2126*r + 0.7152*g + 0.0722*b
}

// LuminanceHex parses s and returns its relative luminance.
func LuminanceHex(s string) (float64, error) {
	c, err := Parse(s)
	if err != nil {
		return 0, err
	}
	return RelativeLuminance(c), nil
}

// ContrastRatio returns the WCAG contrast ratio between a and b. The result
// does not depend on argument order and lies in [1, 21].
func ContrastRatio(a, b Color) float64 {
	l1 := RelativeLuminance(a)
	l2 := RelativeLuminance(b)
	if l1 < l2 {
		l1, l2 = l2, l1
	}
	return (l1 + 0.05) / (l2 + 0.05)
}

// ContrastRatioHex is ContrastRatio for textual colors.
func ContrastRatioHex(a, b string) (float64, error) {
	ca, err := Parse(a)
	if err != nil {
		return 0, err
	}
	cb, err := Parse(b)
	if err != nil {
		return 0, err
	}
	return ContrastRatio(ca, cb), nil
}

// AutoTextColor picks black or white, whichever reads better on bg.
func AutoTextColor(bg Color) Color {
	crBlack := ContrastRatio(Black, bg)
	crWhite := ContrastRatio(White, bg)
	if crBlack >= 4.5 || crBlack >= crWhite {
		return Black
	}
	return White
}

// EnsureContrast returns fg when it already meets minRatio against bg and
// falls back to AutoTextColor otherwise.
func EnsureContrast(fg, bg Color, minRatio float64) Color {
	if minRatio <= 0 {
		minRatio = 4.5
	}
	if ContrastRatio(fg, bg) >= minRatio {
		return fg
	}
	return AutoTextColor(bg)
}

package termcolor

import (
	"testing"

	"github.com/phyten/themecheck/internal/colorutil"
)

func TestDetectSchemeFromColorfgbg(t *testing.T) {
	cases := []struct {
		raw  string
		want Scheme
	}{
		{"7;0", SchemeDark},
		{"15;7", SchemeLight},
		{"0;15", SchemeLight},
		{"0;default;15", SchemeLight},
		{"15;4", SchemeDark},
		{"0;8", SchemeLight},
		{"15;0;", SchemeDark},
		{"0;231", SchemeLight},
		{"15;234", SchemeDark},
	}
	for _, tc := range cases {
		if got := DetectScheme(map[string]string{"COLORFGBG": tc.raw}); got != tc.want {
			t.Fatalf("COLORFGBG=%q: got %v want %v", tc.raw, got, tc.want)
		}
	}
}

func TestDetectSchemeFallsBackToTermName(t *testing.T) {
	if got := DetectScheme(map[string]string{"TERM": "xterm-light"}); got != SchemeLight {
		t.Fatalf("expected light for TERM containing light, got %v", got)
	}
	if got := DetectScheme(map[string]string{"COLORFGBG": "default;default", "TERM": "xterm"}); got != SchemeDark {
		t.Fatalf("unparseable COLORFGBG should fall through to dark, got %v", got)
	}
	if got := DetectScheme(nil); got != SchemeDark {
		t.Fatalf("nil env should default to dark, got %v", got)
	}
}

func TestAnsiToRGBInvertsRgbToANSI256(t *testing.T) {
	for idx := 16; idx < 232; idx++ {
		c, ok := ansiToRGB(idx)
		if !ok {
			t.Fatalf("index %d rejected", idx)
		}
		if c.R == c.G && c.G == c.B {
			continue
		}
		if back := rgbToANSI256(c.R, c.G, c.B); back != idx {
			t.Fatalf("index %d -> %s -> %d", idx, c.Hex(), back)
		}
	}
	if c, _ := ansiToRGB(255); c != (colorutil.Color{R: 238, G: 238, B: 238}) {
		t.Fatalf("index 255 = %s", c.Hex())
	}
	if _, ok := ansiToRGB(256); ok {
		t.Fatal("index 256 should be rejected")
	}
}

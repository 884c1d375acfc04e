package termcolor

import (
	"testing"

	"github.com/phyten/themecheck/internal/colorutil"
)

func TestHeaderStyle(t *testing.T) {
	s := HeaderStyle()
	if !s.Bold || !s.Underline {
		t.Fatalf("header style should enable bold+underline: %+v", s)
	}
}

func TestStatusStyleRespectsScheme(t *testing.T) {
	failBasic := StatusStyle("fail", SchemeDark, ProfileBasic8)
	if failBasic.FGBasic == nil || *failBasic.FGBasic != 1 || !failBasic.Bold {
		t.Fatalf("fail basic style mismatch: %+v", failBasic)
	}
	passBasic := StatusStyle("PASS", SchemeDark, ProfileBasic8)
	if passBasic.FGBasic == nil || *passBasic.FGBasic != 2 || passBasic.Bold {
		t.Fatalf("pass basic style mismatch: %+v", passBasic)
	}
	skip256 := StatusStyle("skip", SchemeDark, ProfileANSI256)
	if skip256.FG256 == nil || *skip256.FG256 != rgbToANSI256(250, 204, 21) {
		t.Fatalf("skip 256 color mismatch: %+v", skip256)
	}

	for _, status := range []string{"pass", "fail", "skip"} {
		for _, tc := range []struct {
			scheme Scheme
			bg     colorutil.Color
		}{
			{SchemeLight, lightTerminalBG},
			{SchemeDark, darkTerminalBG},
		} {
			style := StatusStyle(status, tc.scheme, ProfileTrueColor)
			if style.FGTrue == nil {
				t.Fatalf("%s truecolor missing fg: %+v", status, style)
			}
			rgb := *style.FGTrue
			contrast := colorutil.ContrastRatio(colorutil.Color{R: rgb[0], G: rgb[1], B: rgb[2]}, tc.bg)
			if contrast < 4.5 {
				t.Fatalf("%s truecolor contrast %.2f < 4.5 on scheme %v (rgb=%v)", status, contrast, tc.scheme, rgb)
			}
		}
	}

	none := StatusStyle("other", SchemeDark, ProfileBasic8)
	if none.FGBasic != nil || none.FG256 != nil || none.FGTrue != nil {
		t.Fatalf("unknown status should have no color: %+v", none)
	}
}

func TestSwatch(t *testing.T) {
	gold := colorutil.MustParse("#d4a017")
	s := Swatch(gold, ProfileTrueColor)
	if s.BGTrue == nil || *s.BGTrue != [3]uint8{0xd4, 0xa0, 0x17} {
		t.Fatalf("swatch background mismatch: %+v", s)
	}
	if s.FGTrue == nil || *s.FGTrue != [3]uint8{0, 0, 0} {
		t.Fatalf("gold swatch should use black text: %+v", s)
	}

	navy := colorutil.MustParse("#1e293b")
	basic := Swatch(navy, ProfileBasic8)
	if basic.BGBasic == nil || *basic.BGBasic != 0 || basic.FGBasic == nil || *basic.FGBasic != 7 {
		t.Fatalf("navy basic swatch mismatch: %+v", basic)
	}

	s256 := Swatch(colorutil.White, ProfileANSI256)
	if s256.BG256 == nil || *s256.BG256 != 231 {
		t.Fatalf("white 256 swatch mismatch: %+v", s256)
	}
}

func TestNearestBasic(t *testing.T) {
	tests := []struct {
		hex  string
		want int
	}{
		{"#000000", 0},
		{"#ff0000", 1},
		{"#00ff00", 2},
		{"#ffff00", 3},
		{"#0000ff", 4},
		{"#ffffff", 7},
	}
	for _, tc := range tests {
		if got := nearestBasic(colorutil.MustParse(tc.hex)); got != tc.want {
			t.Fatalf("%s expected %d, got %d", tc.hex, tc.want, got)
		}
	}
}

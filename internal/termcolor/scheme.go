package termcolor

import (
	"strconv"
	"strings"

	"github.com/phyten/themecheck/internal/colorutil"
)

// Scheme is the terminal's own background polarity. Status colors are
// adjusted to stay readable on it.
type Scheme int

const (
	SchemeUnknown Scheme = iota
	SchemeDark
	SchemeLight
)

func (s Scheme) String() string {
	switch s {
	case SchemeDark:
		return "dark"
	case SchemeLight:
		return "light"
	default:
		return "unknown"
	}
}

// xterm's default rendering of the 16 base colors.
var ansiBase = [16]colorutil.Color{
	{R: 0x00, G: 0x00, B: 0x00}, {R: 0xcd, G: 0x00, B: 0x00}, {R: 0x00, G: 0xcd, B: 0x00}, {R: 0xcd, G: 0xcd, B: 0x00},
	{R: 0x00, G: 0x00, B: 0xee}, {R: 0xcd, G: 0x00, B: 0xcd}, {R: 0x00, G: 0xcd, B: 0xcd}, {R: 0xe5, G: 0xe5, B: 0xe5},
	{R: 0x7f, G: 0x7f, B: 0x7f}, {R: 0xff, G: 0x00, B: 0x00}, {R: 0x00, G: 0xff, B: 0x00}, {R: 0xff, G: 0xff, B: 0x00},
	{R: 0x5c, G: 0x5c, B: 0xff}, {R: 0xff, G: 0x00, B: 0xff}, {R: 0x00, G: 0xff, B: 0xff}, {R: 0xff, G: 0xff, B: 0xff},
}

var cubeLevels = [6]uint8{0x00, 0x5f, 0x87, 0xaf, 0xd7, 0xff}

// DetectScheme guesses the terminal background from COLORFGBG, judging the
// background index by which of black or white text reads better on it.
// TERM names containing "light" count as light; anything else is dark.
func DetectScheme(env map[string]string) Scheme {
	if env == nil {
		return SchemeDark
	}
	if bg, ok := colorfgbgBackground(env["COLORFGBG"]); ok {
		if colorutil.AutoTextColor(bg) == colorutil.Black {
			return SchemeLight
		}
		return SchemeDark
	}
	if strings.Contains(strings.ToLower(env["TERM"]), "light") {
		return SchemeLight
	}
	return SchemeDark
}

// colorfgbgBackground reads "fg;bg" or "fg;default;bg". rxvt leaves a
// trailing empty field in some versions.
func colorfgbgBackground(raw string) (colorutil.Color, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return colorutil.Color{}, false
	}
	parts := strings.Split(raw, ";")
	field := strings.TrimSpace(parts[len(parts)-1])
	if field == "" && len(parts) >= 2 {
		field = strings.TrimSpace(parts[len(parts)-2])
	}
	idx, err := strconv.Atoi(field)
	if err != nil {
		return colorutil.Color{}, false
	}
	return ansiToRGB(idx)
}

// ansiToRGB is the inverse of rgbToANSI256 for the xterm 256-color table.
func ansiToRGB(idx int) (colorutil.Color, bool) {
	switch {
	case idx < 0 || idx > 255:
		return colorutil.Color{}, false
	case idx < 16:
		return ansiBase[idx], true
	case idx < 232:
		idx -= 16
		return colorutil.Color{R: cubeLevels[idx/36], G: cubeLevels[idx/6%6], B: cubeLevels[idx%6]}, true
	default:
		v := uint8(8 + (idx-232)*10)
		return colorutil.Color{R: v, G: v, B: v}, true
	}
}

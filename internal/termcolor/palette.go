package termcolor

import (
	"strings"

	"github.com/phyten/themecheck/internal/colorutil"
)

var (
	lightTerminalBG = colorutil.Color{R: 249, G: 250, B: 251}
	darkTerminalBG  = colorutil.Color{R: 17, G: 24, B: 39}
)

type statusColors struct {
	basic int
	light colorutil.Color
	dark  colorutil.Color
}

var statusPalette = map[string]statusColors{
	"pass": {basic: 2, light: colorutil.Color{R: 21, G: 128, B: 61}, dark: colorutil.Color{R: 74, G: 222, B: 128}},
	"fail": {basic: 1, light: colorutil.Color{R: 185, G: 28, B: 28}, dark: colorutil.Color{R: 248, G: 113, B: 113}},
	"skip": {basic: 3, light: colorutil.Color{R: 161, G: 98, B: 7}, dark: colorutil.Color{R: 250, G: 204, B: 21}},
}

func HeaderStyle() Style {
	return Style{Bold: true, Underline: true}
}

// StatusStyle colors a result status. Truecolor and 256-color shades are
// picked per scheme and kept at 4.5:1 or better against the terminal
// background.
func StatusStyle(status string, scheme Scheme, profile Profile) Style {
	key := strings.ToLower(strings.TrimSpace(status))
	colors, ok := statusPalette[key]
	if !ok {
		return Style{}
	}
	style := Style{Bold: key == "fail"}
	if profile == ProfileBasic8 {
		c := colors.basic
		style.FGBasic = &c
		return style
	}
	fg, bg := colors.dark, darkTerminalBG
	if scheme == SchemeLight {
		fg, bg = colors.light, lightTerminalBG
	}
	fg = colorutil.EnsureContrast(fg, bg, 4.5)
	if profile == ProfileTrueColor {
		rgb := fg.RGB()
		style.FGTrue = &rgb
		return style
	}
	idx := rgbToANSI256(fg.R, fg.G, fg.B)
	style.FG256 = &idx
	return style
}

// Swatch paints text on c with whichever of black or white reads better.
func Swatch(c colorutil.Color, profile Profile) Style {
	fg := colorutil.AutoTextColor(c)
	switch profile {
	case ProfileTrueColor:
		bg := c.RGB()
		fgRGB := fg.RGB()
		return Style{FGTrue: &fgRGB, BGTrue: &bg}
	case ProfileANSI256:
		bg := rgbToANSI256(c.R, c.G, c.B)
		fgIdx := rgbToANSI256(fg.R, fg.G, fg.B)
		return Style{FG256: &fgIdx, BG256: &bg}
	default:
		bg := nearestBasic(c)
		fgIdx := 0
		if fg == colorutil.White {
			fgIdx = 7
		}
		return Style{FGBasic: &fgIdx, BGBasic: &bg}
	}
}

// nearestBasic thresholds each channel; the ANSI color numbers happen to be
// the bitmask red=1, green=2, blue=4.
func nearestBasic(c colorutil.Color) int {
	idx := 0
	if c.R > 127 {
		idx |= 1
	}
	if c.G > 127 {
		idx |= 2
	}
	if c.B > 127 {
		idx |= 4
	}
	return idx
}

func rgbToANSI256(r, g, b uint8) int {
	if r == g && g == b {
		if r < 8 {
			return 16
		}
		if r > 248 {
			return 231
		}
		return 232 + (int(r)-8)*24/247
	}
	rr := int(r) * 5 / 255
	gg := int(g) * 5 / 255
	bb := int(b) * 5 / 255
	return 16 + 36*rr + 6*gg + bb
}

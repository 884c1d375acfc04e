package colorutil

import (
	"math"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// Achromatic reports whether c has no hue (all channels equal).
func Achromatic(c Color) bool {
	return c.R == c.G && c.G == c.B
}

// Hue returns the HSL hue of c in degrees [0, 360). ok is false for
// achromatic colors, whose hue is undefined.
func Hue(c Color) (deg float64, ok bool) {
	if Achromatic(c) {
		return 0, false
	}
	h, _, _ := toColorful(c).Hsl()
	if h < 0 {
		h += 360
	}
	return math.Mod(h, 360), true
}

// HueDistance is the shortest angular distance between two hues, so 350°
// and 5° are 15° apart.
func HueDistance(a, b float64) float64 {
	d := math.Abs(math.Mod(a-b, 360))
	if d > 180 {
		d = 360 - d
	}
	return d
}

func toColorful(c Color) colorful.Color {
	return colorful.Color{R: float64(c.R) / 255.0, G: float64(c.G) / 255.0, B: float64(c.B) / 255.0}
}

package colorutil

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var (
	// ErrInvalidColorFormat reports a value that is not an opaque sRGB color
	// this package understands (6-digit hex, rgb() or rgba()).
	ErrInvalidColorFormat = errors.New("invalid color format")
	// ErrOutOfRangeChannel reports a channel outside [0, 255]. It wraps
	// ErrInvalidColorFormat.
	ErrOutOfRangeChannel = fmt.Errorf("%w: channel out of range", ErrInvalidColorFormat)
)

// Color is an opaque 8-bit sRGB color.
type Color struct {
	R uint8
	G uint8
	B uint8
}

var (
	Black = Color{0, 0, 0}
	White = Color{255, 255, 255}
)

// Hex returns the lower-case #rrggbb form.
func (c Color) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

func (c Color) String() string { return c.Hex() }

// RGB returns the channels as an array, the shape termcolor styles use.
func (c Color) RGB() [3]uint8 { return [3]uint8{c.R, c.G, c.B} }

// Parse accepts #RRGGBB (any case), rgb(r, g, b) and rgba(r, g, b, a).
// Alpha is validated and dropped.
func Parse(s string) (Color, error) {
	v := strings.TrimSpace(s)
	if v == "" {
		return Color{}, fmt.Errorf("%w: empty value", ErrInvalidColorFormat)
	}
	if strings.HasPrefix(v, "#") {
		return parseHex(v)
	}
	lower := strings.ToLower(v)
	if strings.HasPrefix(lower, "rgb(") || strings.HasPrefix(lower, "rgba(") {
		return parseFunc(lower)
	}
	return Color{}, fmt.Errorf("%w: %q", ErrInvalidColorFormat, s)
}

// MustParse is Parse for literals known to be valid.
func MustParse(s string) Color {
	c, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return c
}

// IsHex reports whether s is exactly a 6-digit hex color.
func IsHex(s string) bool {
	_, err := parseHex(strings.TrimSpace(s))
	return err == nil
}

// Normalize returns the canonical #rrggbb form of s.
func Normalize(s string) (string, error) {
	c, err := Parse(s)
	if err != nil {
		return "", err
	}
	return c.Hex(), nil
}

func parseHex(v string) (Color, error) {
	if len(v) != 7 || v[0] != '#' {
		return Color{}, fmt.Errorf("%w: %q is not #RRGGBB", ErrInvalidColorFormat, v)
	}
	n, err := strconv.ParseUint(v[1:], 16, 32)
	if err != nil {
		return Color{}, fmt.Errorf("%w: %q is not #RRGGBB", ErrInvalidColorFormat, v)
	}
	return Color{R: uint8(n >> 16), G: uint8(n >> 8), B: uint8(n)}, nil
}

func parseFunc(v string) (Color, error) {
	open := strings.IndexByte(v, '(')
	if !strings.HasSuffix(v, ")") {
		return Color{}, fmt.Errorf("%w: %q", ErrInvalidColorFormat, v)
	}
	name := strings.TrimSpace(v[:open])
	args := strings.Split(v[open+1:len(v)-1], ",")
	want := 3
	if name == "rgba" {
		want = 4
	}
	if len(args) != want {
		return Color{}, fmt.Errorf("%w: %s() takes %d arguments", ErrInvalidColorFormat, name, want)
	}
	var ch [3]uint8
	for i := 0; i < 3; i++ {
		raw := strings.TrimSpace(args[i])
		n, err := strconv.Atoi(raw)
		if err != nil {
			return Color{}, fmt.Errorf("%w: channel %q", ErrInvalidColorFormat, raw)
		}
		if n < 0 || n > 255 {
			return Color{}, fmt.Errorf("%w: %d", ErrOutOfRangeChannel, n)
		}
		ch[i] = uint8(n)
	}
	if want == 4 {
		raw := strings.TrimSpace(args[3])
		a, err := strconv.ParseFloat(raw, 64)
		if err != nil || a < 0 || a > 1 {
			return Color{}, fmt.Errorf("%w: alpha %q", ErrInvalidColorFormat, raw)
		}
	}
	return Color{R: ch[0], G: ch[1], B: ch[2]}, nil
}

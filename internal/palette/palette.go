// Package palette models a theme's named color roles, its brand color
// families and its light/dark variants, and validates the relationships
// between them.
package palette

import (
	"fmt"
	"strings"

	"github.com/phyten/themecheck/internal/colorutil"
	"github.com/phyten/themecheck/internal/cssvars"
)

// Mode is the display polarity of a theme variant.
type Mode string

const (
	ModeLight Mode = "light"
	ModeDark  Mode = "dark"
)

func ParseMode(v string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "light":
		return ModeLight, nil
	case "dark":
		return ModeDark, nil
	default:
		return "", fmt.Errorf("unknown theme mode: %q (want light or dark)", v)
	}
}

// Category decides which rules apply to a role.
type Category int

const (
	CategoryBackground Category = iota
	CategoryText
	// CategoryMutedText is low-emphasis text. It follows the text rules
	// except for the dark-mode luminance floor.
	CategoryMutedText
	CategoryBrandAccent
)

func (c Category) String() string {
	switch c {
	case CategoryBackground:
		return "background"
	case CategoryText:
		return "text"
	case CategoryMutedText:
		return "muted-text"
	case CategoryBrandAccent:
		return "brand-accent"
	default:
		return fmt.Sprintf("Category(%d)", int(c))
	}
}

// Role names a variable and says how it is used.
type Role struct {
	Var      string
	Category Category
}

// Sample is a role whose color resolved.
type Sample struct {
	Ref       string
	Color     colorutil.Color
	Luminance float64
}

// NewSample computes the luminance of c once.
func NewSample(ref string, c colorutil.Color) Sample {
	return Sample{Ref: ref, Color: c, Luminance: colorutil.RelativeLuminance(c)}
}

// Variant is one display mode of the theme: its declared variables and
// polarity.
type Variant struct {
	Name string
	Mode Mode
	Vars cssvars.Table
}

func NewVariant(name string, mode Mode, vars cssvars.Table) Variant {
	return Variant{Name: name, Mode: mode, Vars: vars}
}

// Sample resolves ref (a variable name, var() expression or literal) in
// this variant. Errors are cssvars.Skippable when the value cannot be
// checked.
func (v Variant) Sample(ref string) (Sample, error) {
	c, err := v.Vars.ResolveColorRef(ref)
	if err != nil {
		return Sample{}, err
	}
	return NewSample(ref, c), nil
}

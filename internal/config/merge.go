package config

import (
	"strings"

	"github.com/phyten/themecheck/internal/engine"
	"github.com/phyten/themecheck/internal/palette"
	"github.com/phyten/themecheck/internal/wcag"
)

// MergeSettings applies layers in order; later layers win.
func MergeSettings(base Settings, layers ...CheckConfig) Settings {
	out := base
	for _, layer := range layers {
		out.Output = pickTrimmed(out.Output, layer.Output)
		out.Color = pickTrimmed(out.Color, layer.Color)
		out.HueTolerance = pick(out.HueTolerance, layer.HueTolerance)
		out.MutedMinLuminance = pick(out.MutedMinLuminance, layer.MutedMinLuminance)
		out.Strict = pick(out.Strict, layer.Strict)
		out.LogLevel = pickTrimmed(out.LogLevel, layer.LogLevel)
		out.Only = pickStrings(out.Only, layer.Only)
	}
	if strings.TrimSpace(out.Output) == "" {
		out.Output = "table"
	}
	if strings.TrimSpace(out.Color) == "" {
		out.Color = "auto"
	}
	return out
}

// MergeRoles overrides the roles of base that cfg sets.
func MergeRoles(base engine.Roles, cfg RolesConfig) engine.Roles {
	return engine.Roles{
		Backgrounds: pickStrings(base.Backgrounds, cfg.Backgrounds),
		Text:        pickStrings(base.Text, cfg.Text),
		MutedText:   pickStrings(base.MutedText, cfg.MutedText),
		Accents:     pickStrings(base.Accents, cfg.Accents),
		Required:    pickStrings(base.Required, cfg.Required),
	}
}

// Layout merges the file's roles, families and pairs over the built-in
// layout. Call Validate first; invalid names are skipped here.
func (c Config) Layout() engine.Layout {
	def := engine.DefaultLayout()
	out := engine.Layout{
		Roles:    MergeRoles(def.Roles, c.Roles),
		Families: def.Families,
		Pairs:    def.Pairs,
	}
	if c.Families != nil {
		out.Families = make([]engine.FamilySpec, 0, len(*c.Families))
		for _, f := range *c.Families {
			spec := engine.FamilySpec{Family: palette.Family{Name: f.Name, Prefix: f.Prefix}}
			for _, tv := range f.TextVariants {
				if tone, err := palette.ParseTone(tv); err == nil {
					spec.TextTones = append(spec.TextTones, tone)
				}
			}
			out.Families = append(out.Families, spec)
		}
	}
	if c.Pairs != nil {
		out.Pairs = make([]engine.Pair, 0, len(*c.Pairs))
		for _, p := range *c.Pairs {
			pair := engine.Pair{
				Name:       p.Name,
				Foreground: p.Foreground,
				Background: p.Background,
				MinRatio:   p.MinRatio,
				Variants:   cloneStrings(p.Variants),
			}
			pair.Usage, _ = wcag.ParseUsage(p.Usage)
			out.Pairs = append(out.Pairs, pair)
		}
	}
	return out
}

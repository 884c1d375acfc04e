package config

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/phyten/themecheck/internal/cssvars"
	"github.com/phyten/themecheck/internal/engine"
	"github.com/phyten/themecheck/internal/palette"
)

// DefaultVariants is used when files are given on the command line and the
// config declares no variants: the first file is light, the second dark.
func DefaultVariants() []VariantConfig {
	return []VariantConfig{
		{Name: "light", Mode: string(palette.ModeLight)},
		{Name: "dark", Mode: string(palette.ModeDark)},
	}
}

// Theme validates c, loads every variant's stylesheet and applies inline
// vars on top. files, when given, replace the configured variant files in
// order and are resolved against the working directory; configured files
// are resolved against the config file's directory.
func (c Config) Theme(files []string) (engine.Theme, error) {
	if err := c.Validate(); err != nil {
		return engine.Theme{}, err
	}

	variants := append([]VariantConfig(nil), c.Variants...)
	base := make([]string, len(variants))
	for i := range base {
		base[i] = c.Dir
	}
	if len(files) > 0 {
		if len(variants) == 0 {
			variants = DefaultVariants()
			if len(files) > len(variants) {
				return engine.Theme{}, fmt.Errorf("got %d stylesheets but only light and dark variants are known; declare variants in the config file", len(files))
			}
			variants = variants[:len(files)]
			base = make([]string, len(variants))
		}
		if len(files) > len(variants) {
			return engine.Theme{}, fmt.Errorf("got %d stylesheets for %d configured variants", len(files), len(variants))
		}
		for i, f := range files {
			variants[i].File = f
			base[i] = ""
		}
	}
	if len(variants) == 0 {
		return engine.Theme{}, errors.New("no theme variants: pass CSS files or declare variants in the config file")
	}

	theme := engine.Theme{Layout: c.Layout()}
	for i, v := range variants {
		mode, err := variantMode(v)
		if err != nil {
			return engine.Theme{}, fmt.Errorf("variant %s: %w", v.Name, err)
		}
		table := cssvars.New(nil)
		if v.File != "" {
			path := v.File
			if !filepath.IsAbs(path) && base[i] != "" {
				path = filepath.Join(base[i], path)
			}
			table, err = cssvars.Load(path)
			if err != nil {
				return engine.Theme{}, fmt.Errorf("variant %s: %w", v.Name, err)
			}
		}
		if len(v.Vars) > 0 {
			table = table.With(v.Vars)
		}
		theme.Variants = append(theme.Variants, palette.NewVariant(v.Name, mode, table))
	}
	return theme, nil
}

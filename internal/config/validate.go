package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/phyten/themecheck/internal/engine/opts"
	"github.com/phyten/themecheck/internal/logging"
	"github.com/phyten/themecheck/internal/palette"
	"github.com/phyten/themecheck/internal/termcolor"
	"github.com/phyten/themecheck/internal/wcag"
)

const maxContrastRatio = 21.0

// Normalize canonicalizes the merged settings and rejects invalid values.
func Normalize(values Settings) (Settings, error) {
	var err error
	values.Output, err = opts.NormalizeOutput(values.Output)
	if err != nil {
		return values, err
	}
	mode, err := termcolor.ParseMode(values.Color)
	if err != nil {
		return values, err
	}
	values.Color = mode.String()

	values.LogLevel = strings.ToLower(strings.TrimSpace(values.LogLevel))
	if values.LogLevel == "" {
		values.LogLevel = "warn"
	}
	if _, err := logging.ParseLevel(values.LogLevel); err != nil {
		return values, err
	}

	o := values.EngineOptions()
	if err := opts.NormalizeAndValidate(&o); err != nil {
		return values, err
	}
	values.Only = o.Only
	return values, nil
}

// Validate checks the theme description: variants, families and pairs.
// Every problem is reported, not just the first.
func (c Config) Validate() error {
	var errs []error

	names := make(map[string]bool, len(c.Variants))
	for i, v := range c.Variants {
		if v.Name == "" {
			errs = append(errs, fmt.Errorf("variants #%d: name is required", i+1))
			continue
		}
		if names[v.Name] {
			errs = append(errs, fmt.Errorf("duplicate variant name: %s", v.Name))
		}
		names[v.Name] = true
		if _, err := variantMode(v); err != nil {
			errs = append(errs, fmt.Errorf("variant %s: %w", v.Name, err))
		}
		if v.File == "" && len(v.Vars) == 0 {
			errs = append(errs, fmt.Errorf("variant %s: file or vars is required", v.Name))
		}
	}

	if c.Families != nil {
		for i, f := range *c.Families {
			label := f.Name
			if label == "" {
				errs = append(errs, fmt.Errorf("families #%d: name is required", i+1))
				label = fmt.Sprintf("#%d", i+1)
			}
			if !strings.HasPrefix(f.Prefix, "--") {
				errs = append(errs, fmt.Errorf("family %s: prefix %q must start with --", label, f.Prefix))
			}
			for _, tv := range f.TextVariants {
				if _, err := palette.ParseTone(tv); err != nil {
					errs = append(errs, fmt.Errorf("family %s: text_variants: %w", label, err))
				}
			}
		}
	}

	if c.Pairs != nil {
		for i, p := range *c.Pairs {
			label := p.Name
			if label == "" {
				label = fmt.Sprintf("#%d", i+1)
			}
			if p.Foreground == "" || p.Background == "" {
				errs = append(errs, fmt.Errorf("pair %s: foreground and background are required", label))
			}
			if _, err := wcag.ParseUsage(p.Usage); err != nil {
				errs = append(errs, fmt.Errorf("pair %s: %w", label, err))
			}
			if p.MinRatio != 0 && (p.MinRatio < 1 || p.MinRatio > maxContrastRatio) {
				errs = append(errs, fmt.Errorf("pair %s: min_ratio must be between 1 and %g", label, maxContrastRatio))
			}
			if len(c.Variants) > 0 {
				for _, name := range p.Variants {
					if !names[name] {
						errs = append(errs, fmt.Errorf("pair %s: unknown variant %s", label, name))
					}
				}
			}
		}
	}

	return errors.Join(errs...)
}

// variantMode falls back to the variant name when mode is omitted, so
// "name: dark" alone is enough.
func variantMode(v VariantConfig) (palette.Mode, error) {
	if strings.TrimSpace(v.Mode) == "" {
		return palette.ParseMode(v.Name)
	}
	return palette.ParseMode(v.Mode)
}

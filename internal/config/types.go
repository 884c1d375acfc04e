package config

import (
	"github.com/phyten/themecheck/internal/engine"
	"github.com/phyten/themecheck/internal/engine/opts"
)

// CheckConfig holds the scalar settings. Every field is a pointer so that a
// layer (file, env, flags) only overrides what it sets.
type CheckConfig struct {
	Output            *string   `yaml:"output" toml:"output" json:"output"`
	Color             *string   `yaml:"color" toml:"color" json:"color"`
	HueTolerance      *float64  `yaml:"hue_tolerance" toml:"hue_tolerance" json:"hue_tolerance"`
	MutedMinLuminance *float64  `yaml:"muted_min_luminance" toml:"muted_min_luminance" json:"muted_min_luminance"`
	Strict            *bool     `yaml:"strict" toml:"strict" json:"strict"`
	LogLevel          *string   `yaml:"log_level" toml:"log_level" json:"log_level"`
	Only              *[]string `yaml:"only" toml:"only" json:"only"`
}

type VariantConfig struct {
	Name string            `yaml:"name" toml:"name" json:"name"`
	Mode string            `yaml:"mode" toml:"mode" json:"mode"`
	File string            `yaml:"file" toml:"file" json:"file"`
	Vars map[string]string `yaml:"vars" toml:"vars" json:"vars"`
}

type RolesConfig struct {
	Backgrounds *[]string `yaml:"backgrounds" toml:"backgrounds" json:"backgrounds"`
	Text        *[]string `yaml:"text" toml:"text" json:"text"`
	MutedText   *[]string `yaml:"muted_text" toml:"muted_text" json:"muted_text"`
	Accents     *[]string `yaml:"accents" toml:"accents" json:"accents"`
	Required    *[]string `yaml:"required" toml:"required" json:"required"`
}

type FamilyConfig struct {
	Name         string   `yaml:"name" toml:"name" json:"name"`
	Prefix       string   `yaml:"prefix" toml:"prefix" json:"prefix"`
	TextVariants []string `yaml:"text_variants" toml:"text_variants" json:"text_variants"`
}

type PairConfig struct {
	Name       string   `yaml:"name" toml:"name" json:"name"`
	Foreground string   `yaml:"foreground" toml:"foreground" json:"foreground"`
	Background string   `yaml:"background" toml:"background" json:"background"`
	Usage      string   `yaml:"usage" toml:"usage" json:"usage"`
	MinRatio   float64  `yaml:"min_ratio" toml:"min_ratio" json:"min_ratio"`
	Variants   []string `yaml:"variants" toml:"variants" json:"variants"`
}

type Config struct {
	Check    CheckConfig     `yaml:"check" toml:"check" json:"check"`
	Variants []VariantConfig `yaml:"variants" toml:"variants" json:"variants"`
	Roles    RolesConfig     `yaml:"roles" toml:"roles" json:"roles"`
	// Families and Pairs are nil when the file does not mention them, so the
	// built-in layout applies.
	Families *[]FamilyConfig `yaml:"families" toml:"families" json:"families"`
	Pairs    *[]PairConfig   `yaml:"pairs" toml:"pairs" json:"pairs"`

	// Dir is the directory of the loaded file. Relative variant files are
	// resolved against it.
	Dir string `yaml:"-" toml:"-" json:"-"`
}

type Settings struct {
	Output            string
	Color             string
	HueTolerance      float64
	MutedMinLuminance float64
	Strict            bool
	LogLevel          string
	Only              []string
}

func DefaultSettings() Settings {
	def := opts.Defaults()
	return Settings{
		Output:            "table",
		Color:             "auto",
		HueTolerance:      def.HueTolerance,
		MutedMinLuminance: def.MutedTextMin,
		Strict:            false,
		LogLevel:          "warn",
	}
}

func (s Settings) EngineOptions() engine.Options {
	return engine.Options{
		HueTolerance: s.HueTolerance,
		MutedTextMin: s.MutedMinLuminance,
		Only:         cloneStrings(s.Only),
	}
}

func cloneStrings(in []string) []string {
	if len(in) == 0 {
		return nil
	}
	out := make([]string, len(in))
	copy(out, in)
	return out
}

package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	toml "github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/phyten/themecheck/internal/engine/opts"
)

var checkKeyMap = map[string]string{
	"output":              "output",
	"format":              "output",
	"color":               "color",
	"hue_tolerance":       "hue_tolerance",
	"muted_min_luminance": "muted_min_luminance",
	"muted_text_min":      "muted_min_luminance",
	"strict":              "strict",
	"log_level":           "log_level",
	"only":                "only",
	"checks":              "only",
}

var roleKeyMap = map[string]string{
	"backgrounds": "backgrounds",
	"background":  "backgrounds",
	"text":        "text",
	"muted_text":  "muted_text",
	"muted":       "muted_text",
	"accents":     "accents",
	"accent":      "accents",
	"required":    "required",
}

var (
	variantKeys = map[string]bool{"name": true, "mode": true, "file": true, "vars": true}
	familyKeys  = map[string]bool{"name": true, "prefix": true, "text_variants": true}
	pairKeys    = map[string]bool{"name": true, "foreground": true, "background": true, "usage": true, "min_ratio": true, "variants": true}
)

func Load(path string) (Config, error) {
	var cfg Config
	path = strings.TrimSpace(path)
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	ext := strings.ToLower(filepath.Ext(path))
	var raw map[string]any
	switch ext {
	case ".yaml", ".yml":
		if decodeErr := yaml.Unmarshal(data, &raw); decodeErr != nil {
			return cfg, fmt.Errorf("parse %s: %w", path, decodeErr)
		}
	case ".toml":
		if decodeErr := toml.Unmarshal(data, &raw); decodeErr != nil {
			return cfg, fmt.Errorf("parse %s: %w", path, decodeErr)
		}
	case ".json":
		if decodeErr := json.Unmarshal(data, &raw); decodeErr != nil {
			return cfg, fmt.Errorf("parse %s: %w", path, decodeErr)
		}
	default:
		return cfg, fmt.Errorf("unsupported config extension: %s", ext)
	}
	if abs, absErr := filepath.Abs(path); absErr == nil {
		cfg.Dir = filepath.Dir(abs)
	} else {
		cfg.Dir = filepath.Dir(path)
	}
	if raw == nil {
		return cfg, nil
	}
	decoded, err := decodeConfigMap(raw)
	if err != nil {
		return cfg, fmt.Errorf("%s: %w", path, err)
	}
	decoded.Dir = cfg.Dir
	return decoded, nil
}

func decodeConfigMap(raw map[string]any) (Config, error) {
	var cfg Config
	checkSection := make(map[string]any)

	if block, ok := raw["check"]; ok {
		sub, err := toStringKeyMap(block)
		if err != nil {
			return cfg, fmt.Errorf("check: %w", err)
		}
		if err := fillSection(checkSection, sub, checkKeyMap, "check"); err != nil {
			return cfg, err
		}
	}

	for key, value := range raw {
		norm := normalizeKey(key)
		switch norm {
		case "check":
			continue
		case "variants":
			list, err := decodeVariants(value)
			if err != nil {
				return cfg, fmt.Errorf("variants: %w", err)
			}
			cfg.Variants = list
		case "roles":
			if err := decodeRoles(value, &cfg.Roles); err != nil {
				return cfg, fmt.Errorf("roles: %w", err)
			}
		case "families":
			list, err := decodeFamilies(value)
			if err != nil {
				return cfg, fmt.Errorf("families: %w", err)
			}
			cfg.Families = &list
		case "pairs":
			list, err := decodePairs(value)
			if err != nil {
				return cfg, fmt.Errorf("pairs: %w", err)
			}
			cfg.Pairs = &list
		default:
			if canonical, ok := checkKeyMap[norm]; ok {
				checkSection[canonical] = value
				continue
			}
			return cfg, fmt.Errorf("unknown config key: %s", key)
		}
	}

	if err := assignCheck(checkSection, &cfg.Check); err != nil {
		return cfg, fmt.Errorf("check: %w", err)
	}
	return cfg, nil
}

func fillSection(dst, src map[string]any, allowed map[string]string, section string) error {
	for key, value := range src {
		canonical, ok := allowed[normalizeKey(key)]
		if !ok {
			return fmt.Errorf("unknown %s key: %s", section, key)
		}
		dst[canonical] = value
	}
	return nil
}

func assignCheck(section map[string]any, dst *CheckConfig) error {
	for key, value := range section {
		switch key {
		case "output":
			str, err := expectString(value, key)
			if err != nil {
				return err
			}
			trimmed := strings.TrimSpace(str)
			dst.Output = &trimmed
		case "color":
			str, err := expectString(value, key)
			if err != nil {
				return err
			}
			trimmed := strings.TrimSpace(str)
			dst.Color = &trimmed
		case "hue_tolerance":
			f, err := expectFloat(value, key)
			if err != nil {
				return err
			}
			dst.HueTolerance = &f
		case "muted_min_luminance":
			f, err := expectFloat(value, key)
			if err != nil {
				return err
			}
			dst.MutedMinLuminance = &f
		case "strict":
			b, err := expectBool(value, key)
			if err != nil {
				return err
			}
			dst.Strict = &b
		case "log_level":
			str, err := expectString(value, key)
			if err != nil {
				return err
			}
			trimmed := strings.TrimSpace(str)
			dst.LogLevel = &trimmed
		case "only":
			list, err := expectStringList(value, key)
			if err != nil {
				return err
			}
			dst.Only = &list
		default:
			return fmt.Errorf("unknown key: %s", key)
		}
	}
	return nil
}

func decodeRoles(value any, dst *RolesConfig) error {
	section, err := toStringKeyMap(value)
	if err != nil {
		return err
	}
	for key, raw := range section {
		canonical, ok := roleKeyMap[normalizeKey(key)]
		if !ok {
			return fmt.Errorf("unknown roles key: %s", key)
		}
		list, err := expectStringList(raw, canonical)
		if err != nil {
			return err
		}
		switch canonical {
		case "backgrounds":
			dst.Backgrounds = &list
		case "text":
			dst.Text = &list
		case "muted_text":
			dst.MutedText = &list
		case "accents":
			dst.Accents = &list
		case "required":
			dst.Required = &list
		}
	}
	return nil
}

func decodeVariants(value any) ([]VariantConfig, error) {
	items, err := expectMapList(value, variantKeys)
	if err != nil {
		return nil, err
	}
	out := make([]VariantConfig, 0, len(items))
	for i, item := range items {
		var v VariantConfig
		for key, raw := range item {
			switch key {
			case "name":
				v.Name, err = expectTrimmed(raw, key)
			case "mode":
				v.Mode, err = expectTrimmed(raw, key)
			case "file":
				v.File, err = expectTrimmed(raw, key)
			case "vars":
				v.Vars, err = expectStringMap(raw, key)
			}
			if err != nil {
				return nil, fmt.Errorf("#%d: %w", i+1, err)
			}
		}
		out = append(out, v)
	}
	return out, nil
}

func decodeFamilies(value any) ([]FamilyConfig, error) {
	items, err := expectMapList(value, familyKeys)
	if err != nil {
		return nil, err
	}
	out := make([]FamilyConfig, 0, len(items))
	for i, item := range items {
		var f FamilyConfig
		for key, raw := range item {
			switch key {
			case "name":
				f.Name, err = expectTrimmed(raw, key)
			case "prefix":
				f.Prefix, err = expectTrimmed(raw, key)
			case "text_variants":
				f.TextVariants, err = expectStringList(raw, key)
			}
			if err != nil {
				return nil, fmt.Errorf("#%d: %w", i+1, err)
			}
		}
		out = append(out, f)
	}
	return out, nil
}

func decodePairs(value any) ([]PairConfig, error) {
	items, err := expectMapList(value, pairKeys)
	if err != nil {
		return nil, err
	}
	out := make([]PairConfig, 0, len(items))
	for i, item := range items {
		var p PairConfig
		for key, raw := range item {
			switch key {
			case "name":
				p.Name, err = expectTrimmed(raw, key)
			case "foreground":
				p.Foreground, err = expectTrimmed(raw, key)
			case "background":
				p.Background, err = expectTrimmed(raw, key)
			case "usage":
				p.Usage, err = expectTrimmed(raw, key)
			case "min_ratio":
				p.MinRatio, err = expectFloat(raw, key)
			case "variants":
				p.Variants, err = expectStringList(raw, key)
			}
			if err != nil {
				return nil, fmt.Errorf("#%d: %w", i+1, err)
			}
		}
		out = append(out, p)
	}
	return out, nil
}

// expectMapList decodes a list of tables whose keys, once normalized, must
// all appear in allowed.
func expectMapList(value any, allowed map[string]bool) ([]map[string]any, error) {
	var items []any
	switch v := value.(type) {
	case []any:
		items = v
	case []map[string]any:
		for _, m := range v {
			items = append(items, m)
		}
	default:
		return nil, fmt.Errorf("expected list, got %T", value)
	}
	out := make([]map[string]any, 0, len(items))
	for i, item := range items {
		m, err := toStringKeyMap(item)
		if err != nil {
			return nil, fmt.Errorf("#%d: %w", i+1, err)
		}
		norm := make(map[string]any, len(m))
		for k, v := range m {
			nk := normalizeKey(k)
			if !allowed[nk] {
				return nil, fmt.Errorf("#%d: unknown key: %s", i+1, k)
			}
			norm[nk] = v
		}
		out = append(out, norm)
	}
	return out, nil
}

func expectString(value any, field string) (string, error) {
	if value == nil {
		return "", fmt.Errorf("%s cannot be null", field)
	}
	if s, ok := value.(string); ok {
		return s, nil
	}
	return "", fmt.Errorf("expected string for %s, got %T", field, value)
}

func expectTrimmed(value any, field string) (string, error) {
	s, err := expectString(value, field)
	return strings.TrimSpace(s), err
}

func expectBool(value any, field string) (bool, error) {
	switch v := value.(type) {
	case bool:
		return v, nil
	case string:
		return opts.ParseBool(v, field)
	default:
		return false, fmt.Errorf("expected bool for %s, got %T", field, value)
	}
}

func expectFloat(value any, field string) (float64, error) {
	switch v := value.(type) {
	case float64:
		return v, nil
	case float32:
		return float64(v), nil
	case int:
		return float64(v), nil
	case int64:
		return float64(v), nil
	case uint64:
		return float64(v), nil
	case json.Number:
		f, err := strconv.ParseFloat(v.String(), 64)
		if err != nil {
			return 0, fmt.Errorf("invalid number for %s: %v", field, value)
		}
		return f, nil
	case string:
		return opts.ParseFloat(v, field)
	default:
		return 0, fmt.Errorf("expected number for %s, got %T", field, value)
	}
}

func expectStringList(value any, field string) ([]string, error) {
	switch v := value.(type) {
	case string:
		parts := opts.SplitMulti([]string{v})
		return normalizeList(parts), nil
	case []any:
		out := make([]string, 0, len(v))
		for _, item := range v {
			str, err := expectString(item, field)
			if err != nil {
				return nil, err
			}
			out = append(out, str)
		}
		return normalizeList(out), nil
	case []string:
		return normalizeList(v), nil
	default:
		return nil, fmt.Errorf("expected string or list for %s, got %T", field, value)
	}
}

func expectStringMap(value any, field string) (map[string]string, error) {
	m, err := toStringKeyMap(value)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", field, err)
	}
	out := make(map[string]string, len(m))
	for k, v := range m {
		str, err := expectString(v, field+"."+k)
		if err != nil {
			return nil, err
		}
		out[strings.TrimSpace(k)] = strings.TrimSpace(str)
	}
	return out, nil
}

func normalizeList(values []string) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		trimmed := strings.TrimSpace(v)
		if trimmed == "" {
			continue
		}
		out = append(out, trimmed)
	}
	return out
}

func toStringKeyMap(v any) (map[string]any, error) {
	switch typed := v.(type) {
	case map[string]any:
		return typed, nil
	case map[any]any:
		out := make(map[string]any, len(typed))
		for k, value := range typed {
			key, ok := k.(string)
			if !ok {
				return nil, fmt.Errorf("non-string key: %v", k)
			}
			out[key] = value
		}
		return out, nil
	default:
		return nil, fmt.Errorf("expected map, got %T", v)
	}
}

func normalizeKey(key string) string {
	norm := strings.ToLower(strings.TrimSpace(key))
	norm = strings.ReplaceAll(norm, "-", "_")
	return norm
}

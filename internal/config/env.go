package config

import (
	"errors"
	"strings"

	"github.com/phyten/themecheck/internal/engine/opts"
)

// EnvConfigPath names the variable holding an explicit config file path.
const EnvConfigPath = "THEMECHECK_CONFIG"

func FromEnv(getenv func(string) string) (CheckConfig, error) {
	if getenv == nil {
		getenv = func(string) string { return "" }
	}
	var cfg CheckConfig
	var errs []error

	setString := func(target **string, key string) {
		raw := strings.TrimSpace(getenv(key))
		if raw == "" {
			return
		}
		value := raw
		*target = &value
	}
	setList := func(target **[]string, key string) {
		raw := strings.TrimSpace(getenv(key))
		if raw == "" {
			return
		}
		list := opts.SplitMulti([]string{raw})
		if len(list) == 0 {
			empty := make([]string, 0)
			*target = &empty
			return
		}
		copyVals := make([]string, len(list))
		copy(copyVals, list)
		*target = &copyVals
	}
	setBool := func(target **bool, key string) {
		raw := strings.TrimSpace(getenv(key))
		if raw == "" {
			return
		}
		v, err := opts.ParseBool(raw, key)
		if err != nil {
			errs = append(errs, err)
			return
		}
		value := v
		*target = &value
	}
	setFloat := func(target **float64, key string) {
		raw := strings.TrimSpace(getenv(key))
		if raw == "" {
			return
		}
		v, err := opts.ParseFloat(raw, key)
		if err != nil {
			errs = append(errs, err)
			return
		}
		value := v
		*target = &value
	}

	setString(&cfg.Output, "THEMECHECK_OUTPUT")
	setString(&cfg.Color, "THEMECHECK_COLOR")
	// Range checks are left to Normalize so every input path shares the
	// same error message.
	setFloat(&cfg.HueTolerance, "THEMECHECK_HUE_TOLERANCE")
	setFloat(&cfg.MutedMinLuminance, "THEMECHECK_MUTED_MIN_LUMINANCE")
	setBool(&cfg.Strict, "THEMECHECK_STRICT")
	setString(&cfg.LogLevel, "THEMECHECK_LOG_LEVEL")
	setList(&cfg.Only, "THEMECHECK_ONLY")

	if len(errs) > 0 {
		return cfg, errors.Join(errs...)
	}
	return cfg, nil
}

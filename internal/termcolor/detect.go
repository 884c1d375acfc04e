package termcolor

import (
	"fmt"
	"os"
	"strings"

	"golang.org/x/term"
)

// ColorMode is the --color setting.
type ColorMode int

const (
	ModeAuto ColorMode = iota
	ModeAlways
	ModeNever
)

func (m ColorMode) String() string {
	switch m {
	case ModeAlways:
		return "always"
	case ModeNever:
		return "never"
	default:
		return "auto"
	}
}

func ParseMode(v string) (ColorMode, error) {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "", "auto":
		return ModeAuto, nil
	case "always":
		return ModeAlways, nil
	case "never":
		return ModeNever, nil
	default:
		return ModeAuto, fmt.Errorf("unknown color mode: %s", v)
	}
}

// Profile is how many colors the terminal can show.
type Profile int

const (
	ProfileBasic8 Profile = iota
	ProfileANSI256
	ProfileTrueColor
)

func (p Profile) String() string {
	switch p {
	case ProfileTrueColor:
		return "truecolor"
	case ProfileANSI256:
		return "256"
	default:
		return "basic"
	}
}

// EnvMap turns os.Environ style entries into a map.
func EnvMap(values []string) map[string]string {
	env := make(map[string]string, len(values))
	for _, entry := range values {
		if entry == "" {
			continue
		}
		key, value, _ := strings.Cut(entry, "=")
		env[key] = value
	}
	return env
}

// modeRule inspects the environment and reports a decision when it has one.
type modeRule func(env map[string]string) (ColorMode, bool)

// modeRules are tried in order; the first decision wins. Anything that turns
// color off outranks anything that forces it on.
var modeRules = []modeRule{
	func(env map[string]string) (ColorMode, bool) {
		return ModeNever, strings.EqualFold(strings.TrimSpace(env["TERM"]), "dumb")
	},
	func(env map[string]string) (ColorMode, bool) {
		return ModeNever, strings.TrimSpace(env["NO_COLOR"]) != ""
	},
	func(env map[string]string) (ColorMode, bool) {
		return ModeNever, strings.TrimSpace(env["CLICOLOR"]) == "0"
	},
	func(env map[string]string) (ColorMode, bool) {
		return ModeAlways, isForced(env["CLICOLOR_FORCE"]) || isForced(env["FORCE_COLOR"])
	},
}

// DetectMode resolves ModeAuto for out: environment conventions first
// (TERM=dumb, NO_COLOR, CLICOLOR=0, then CLICOLOR_FORCE/FORCE_COLOR), then
// whether out is a terminal. A nil out, such as a report file, never gets
// color.
func DetectMode(out *os.File, env map[string]string) ColorMode {
	if out == nil {
		return ModeNever
	}
	for _, rule := range modeRules {
		if mode, ok := rule(env); ok {
			return mode
		}
	}
	if isTerminal(out) {
		return ModeAlways
	}
	return ModeNever
}

// truecolorPrograms support 24-bit color without advertising it in COLORTERM.
var truecolorPrograms = map[string]bool{
	"iterm.app": true,
	"wezterm":   true,
	"vscode":    true,
	"ghostty":   true,
}

// DetectProfile picks the richest profile the environment advertises.
func DetectProfile(env map[string]string) Profile {
	colorterm := strings.ToLower(strings.TrimSpace(env["COLORTERM"]))
	switch {
	case strings.Contains(colorterm, "truecolor"), strings.Contains(colorterm, "24bit"), strings.Contains(colorterm, "24-bit"):
		return ProfileTrueColor
	case truecolorPrograms[strings.ToLower(strings.TrimSpace(env["TERM_PROGRAM"]))]:
		return ProfileTrueColor
	case strings.Contains(strings.ToLower(env["TERM"]), "256color"):
		return ProfileANSI256
	default:
		return ProfileBasic8
	}
}

func isTerminal(f *os.File) bool {
	return f != nil && term.IsTerminal(int(f.Fd()))
}

func isForced(v string) bool {
	v = strings.TrimSpace(v)
	return v != "" && v != "0"
}

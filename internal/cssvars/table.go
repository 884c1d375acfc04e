// Package cssvars reads CSS custom-property declarations into an immutable
// symbol table and resolves var() references against it.
//
// Only top-level "--name: value;" declarations are understood. Selectors,
// cascade and at-rules are ignored: every declaration in the input lands in
// one flat table and a later declaration of the same name wins.
package cssvars

import (
	"errors"
	"fmt"
	"os"
	"regexp"
	"sort"
	"strings"

	"github.com/phyten/themecheck/internal/colorutil"
)

// MaxDepth is the number of var() dereferences Resolve follows before it
// gives up. Theme files nest at most one level deep today.
const MaxDepth = 2

// ErrUnresolvedReference reports a var() whose target is missing, cyclic or
// nested deeper than MaxDepth.
var ErrUnresolvedReference = errors.New("unresolved variable reference")

var (
	commentRe = regexp.MustCompile(`(?s)/\*.*?\*/`)
	declRe    = regexp.MustCompile(`(--[\w-]+)\s*:\s*([^;{}]+);`)
	varRe     = regexp.MustCompile(`^var\(\s*(--[\w-]+)\s*(?:,\s*(.*?))?\s*\)$`)
)

// Table maps custom-property names (with the leading "--") to their raw
// values. The zero value is an empty table. Tables are never modified after
// construction, so they can be shared freely.
type Table struct {
	vars map[string]string
}

// New copies vars into a table. Names and values are trimmed.
func New(vars map[string]string) Table {
	m := make(map[string]string, len(vars))
	for k, v := range vars {
		m[strings.TrimSpace(k)] = strings.TrimSpace(v)
	}
	return Table{vars: m}
}

// Parse scans css for custom-property declarations.
func Parse(css string) Table {
	css = commentRe.ReplaceAllString(css, "")
	m := make(map[string]string)
	for _, match := range declRe.FindAllStringSubmatch(css, -1) {
		m[strings.TrimSpace(match[1])] = strings.TrimSpace(match[2])
	}
	return Table{vars: m}
}

// Load reads and parses a stylesheet.
func Load(path string) (Table, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Table{}, err
	}
	return Parse(string(data)), nil
}

// With returns a new table holding t's declarations overridden by vars.
func (t Table) With(vars map[string]string) Table {
	m := make(map[string]string, len(t.vars)+len(vars))
	for k, v := range t.vars {
		m[k] = v
	}
	for k, v := range vars {
		m[strings.TrimSpace(k)] = strings.TrimSpace(v)
	}
	return Table{vars: m}
}

func (t Table) Len() int { return len(t.vars) }

// Lookup returns the raw declared value of name.
func (t Table) Lookup(name string) (string, bool) {
	v, ok := t.vars[name]
	return v, ok
}

func (t Table) Has(name string) bool {
	_, ok := t.vars[name]
	return ok
}

// Names returns the declared names in sorted order.
func (t Table) Names() []string {
	names := make([]string, 0, len(t.vars))
	for k := range t.vars {
		names = append(names, k)
	}
	sort.Strings(names)
	return names
}

// Resolve returns the value of name with var() references followed.
func (t Table) Resolve(name string) (string, error) {
	raw, ok := t.vars[name]
	if !ok {
		return "", fmt.Errorf("%w: %s is not declared", ErrUnresolvedReference, name)
	}
	return t.resolve(raw, 0)
}

// ResolveValue follows var() references in a raw value. Values without a
// reference come back unchanged.
func (t Table) ResolveValue(raw string) (string, error) {
	return t.resolve(raw, 0)
}

func (t Table) resolve(raw string, depth int) (string, error) {
	v := strings.TrimSpace(raw)
	m := varRe.FindStringSubmatch(v)
	if m == nil {
		if strings.Contains(v, "var(") {
			return "", fmt.Errorf("%w: %q mixes references with other values", ErrUnresolvedReference, v)
		}
		return v, nil
	}
	if depth >= MaxDepth {
		return "", fmt.Errorf("%w: %s nested deeper than %d", ErrUnresolvedReference, m[1], MaxDepth)
	}
	next, ok := t.vars[m[1]]
	if !ok {
		if strings.TrimSpace(m[2]) != "" {
			return t.resolve(m[2], depth+1)
		}
		return "", fmt.Errorf("%w: %s is not declared", ErrUnresolvedReference, m[1])
	}
	return t.resolve(next, depth+1)
}

// ResolveColor resolves name and parses the result as a color.
func (t Table) ResolveColor(name string) (colorutil.Color, error) {
	v, err := t.Resolve(name)
	if err != nil {
		return colorutil.Color{}, err
	}
	return colorutil.Parse(v)
}

// ResolveColorRef accepts either a variable name ("--bg-color"), a var()
// expression or a color literal.
func (t Table) ResolveColorRef(ref string) (colorutil.Color, error) {
	ref = strings.TrimSpace(ref)
	if strings.HasPrefix(ref, "--") {
		return t.ResolveColor(ref)
	}
	v, err := t.ResolveValue(ref)
	if err != nil {
		return colorutil.Color{}, err
	}
	return colorutil.Parse(v)
}

// Skippable reports whether err means "this value cannot be checked" rather
// than a real failure.
func Skippable(err error) bool {
	return errors.Is(err, ErrUnresolvedReference) || errors.Is(err, colorutil.ErrInvalidColorFormat)
}

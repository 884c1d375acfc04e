package config

import "strings"

// pick returns the last non-nil layer value, or def.
func pick[T any](def T, layers ...*T) T {
	out := def
	for _, v := range layers {
		if v != nil {
			out = *v
		}
	}
	return out
}

func pickTrimmed(def string, layers ...*string) string {
	return strings.TrimSpace(pick(def, layers...))
}

// pickStrings is pick for lists. A layer holding an empty list clears the
// value instead of falling through.
func pickStrings(def []string, layers ...*[]string) []string {
	out := cloneStrings(def)
	for _, v := range layers {
		if v == nil {
			continue
		}
		if len(*v) == 0 {
			out = []string{}
			continue
		}
		out = cloneStrings(*v)
	}
	return out
}

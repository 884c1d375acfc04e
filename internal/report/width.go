package report

import (
	"regexp"
	"strings"

	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"
)

// CSI and OSC sequences.
var ansiRe = regexp.MustCompile(`\x1b\[[0-?]*[ -/]*[@-~]|\x1b\][^\x07\x1b]*(?:\x07|\x1b\\)`)

const ellipsis = "..."

func stripANSI(s string) string {
	if !strings.ContainsRune(s, 0x1b) {
		return s
	}
	return ansiRe.ReplaceAllString(s, "")
}

// visibleWidth is the terminal cell width of s, ignoring escape sequences
// and counting each grapheme cluster once.
func visibleWidth(s string) int {
	if s == "" {
		return 0
	}
	width := 0
	g := uniseg.NewGraphemes(stripANSI(s))
	for g.Next() {
		width += runewidth.StringWidth(g.Str())
	}
	return width
}

// truncate shortens plain text to at most w cells, ending in "..." when
// anything was cut. Grapheme clusters are never split.
func truncate(s string, w int) string {
	if w <= 0 || visibleWidth(s) <= w {
		return s
	}
	if w <= len(ellipsis) {
		return ellipsis[:w]
	}
	limit := w - len(ellipsis)
	var b strings.Builder
	used := 0
	g := uniseg.NewGraphemes(s)
	for g.Next() {
		cw := runewidth.StringWidth(g.Str())
		if used+cw > limit {
			break
		}
		b.WriteString(g.Str())
		used += cw
	}
	return b.String() + ellipsis
}

// padRight pads s, which may carry escape sequences, to w visible cells.
func padRight(s string, w int) string {
	if pad := w - visibleWidth(s); pad > 0 {
		return s + strings.Repeat(" ", pad)
	}
	return s
}

// padLeft right-aligns s in w visible cells.
func padLeft(s string, w int) string {
	if pad := w - visibleWidth(s); pad > 0 {
		return strings.Repeat(" ", pad) + s
	}
	return s
}

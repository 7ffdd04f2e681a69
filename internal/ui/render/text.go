// Package render provides text rendering utilities for TUI components.
package render

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"
)

// nbsp renders at inconsistent widths across terminals, so it becomes
// a plain space.
const nbsp = '\u00a0'

// Sanitize removes control characters (except tab), converts
// non-breaking spaces, and drops invalid UTF-8 bytes. Broken metadata
// must not corrupt the terminal.
func Sanitize(s string) string {
	if !needsSanitize(s) {
		return s
	}
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); {
		r, size := utf8.DecodeRuneInString(s[i:])
		if r == utf8.RuneError && size <= 1 {
			i++
			continue
		}
		if r != '\t' && unicode.IsControl(r) {
			i += size
			continue
		}
		if r == nbsp {
			b.WriteByte(' ')
			i += size
			continue
		}
		b.WriteString(s[i : i+size])
		i += size
	}
	return b.String()
}

// needsSanitize reports whether Sanitize would change the string. Pure
// printable ASCII short-circuits; anything with a high byte is decoded
// since invalid sequences, control runes, and nbsp all hide there.
func needsSanitize(s string) bool {
	for i := 0; i < len(s); {
		c := s[i]
		if c < 0x20 && c != '\t' {
			return true
		}
		if c < 0x80 {
			i++
			continue
		}
		r, size := utf8.DecodeRuneInString(s[i:])
		if r == utf8.RuneError && size <= 1 {
			return true
		}
		if unicode.IsControl(r) || r == nbsp {
			return true
		}
		i += size
	}
	return false
}

// Truncate shortens a string to fit maxWidth, appending a single
// character ellipsis when truncated. Grapheme clusters are kept whole
// so wide characters are never split.
func Truncate(s string, maxWidth int) string {
	s = Sanitize(s)
	if maxWidth <= 0 {
		return ""
	}
	if runewidth.StringWidth(s) <= maxWidth {
		return s
	}

	var b strings.Builder
	used := 0
	gr := uniseg.NewGraphemes(s)
	for gr.Next() {
		w := runewidth.StringWidth(gr.Str())
		if used+w > maxWidth-1 {
			break
		}
		b.WriteString(gr.Str())
		used += w
	}
	return b.String() + "…"
}

// Pad fills a string with spaces to reach the specified width.
func Pad(s string, width int) string {
	return runewidth.FillRight(s, width)
}

// TruncateAndPad truncates if necessary, then pads to exactly width cells.
func TruncateAndPad(s string, width int) string {
	return Pad(Truncate(s, width), width)
}

// Row joins left and right aligned content with at least one space between.
func Row(left, right string, width int) string {
	leftWidth := lipgloss.Width(left)
	rightWidth := lipgloss.Width(right)
	gap := max(width-leftWidth-rightWidth, 1)
	return left + strings.Repeat(" ", gap) + right
}

// Separator creates a horizontal separator line of the specified width.
func Separator(width int) string {
	return strings.Repeat("─", width)
}

// EmptyLine creates a line of spaces of the specified width.
func EmptyLine(width int) string {
	return strings.Repeat(" ", width)
}

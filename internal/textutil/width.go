package textutil

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// Ellipsis marks text cut to fit a column.
const Ellipsis = "…"

// DisplayWidth reports the terminal column width of text, counting grapheme
// clusters such as flags and ZWJ emoji as a single glyph.
func DisplayWidth(text string) int {
	return runewidth.StringWidth(text)
}

// Truncate shortens text to at most width columns, ending with an ellipsis
// when anything was cut.
func Truncate(text string, width int) string {
	if width <= 0 {
		return ""
	}
	if runewidth.StringWidth(text) <= width {
		return text
	}
	return runewidth.Truncate(text, width, Ellipsis)
}

// PadRight truncates text to width and fills the rest with spaces.
func PadRight(text string, width int) string {
	text = Truncate(text, width)
	if gap := width - runewidth.StringWidth(text); gap > 0 {
		return text + strings.Repeat(" ", gap)
	}
	return text
}

// PadLeft right-aligns text in a field of width columns.
func PadLeft(text string, width int) string {
	text = Truncate(text, width)
	if gap := width - runewidth.StringWidth(text); gap > 0 {
		return strings.Repeat(" ", gap) + text
	}
	return text
}

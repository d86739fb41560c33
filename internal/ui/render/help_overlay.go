package render

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	statepkg "github.com/kk-code-lab/nplay/internal/state"
	textutil "github.com/kk-code-lab/nplay/internal/textutil"
)

type helpOverlayEntry struct {
	keys string
	desc string
}

type helpOverlaySection struct {
	title   string
	entries []helpOverlayEntry
}

func buildHelpOverlayLines(state *statepkg.AppState) []string {
	repeatDesc := "Turn repeat on"
	if state != nil && state.Playlist != nil && state.Playlist.Repeat {
		repeatDesc = "Turn repeat off"
	}

	sections := []helpOverlaySection{
		{
			title: "Navigation",
			entries: []helpOverlayEntry{
				{keys: "↑/↓ or k/j", desc: "Move cursor"},
				{keys: "PgUp/PgDn", desc: "Move one page"},
				{keys: "Home/End", desc: "Jump to first/last"},
			},
		},
		{
			title: "Playback",
			entries: []helpOverlayEntry{
				{keys: "↵", desc: "Play video under cursor"},
				{keys: "n / p", desc: "Next / previous in view"},
				{keys: "s", desc: "Skip to the next in queue"},
				{keys: "space", desc: "Pause / resume"},
				{keys: "r", desc: repeatDesc},
			},
		},
		{
			title: "Queue",
			entries: []helpOverlayEntry{
				{keys: "d", desc: "Remove video under cursor"},
				{keys: "X", desc: "Clear the queue"},
			},
		},
		{
			title: "Filter",
			entries: []helpOverlayEntry{
				{keys: "/", desc: "Edit filter"},
				{keys: "↵", desc: "Keep filter and return to list"},
				{keys: "Esc", desc: "Clear filter"},
			},
		},
		{
			title: "Exit",
			entries: []helpOverlayEntry{
				{keys: "q", desc: "Quit"},
				{keys: "Ctrl+C", desc: "Quit immediately"},
				{keys: "?", desc: "Close this help"},
			},
		},
	}

	lines := make([]string, 0, 32)
	for i, section := range sections {
		if i > 0 {
			lines = append(lines, "")
		}
		lines = append(lines, section.title)
		for _, entry := range section.entries {
			lines = append(lines, formatHelpOverlayEntry(entry))
		}
	}

	return lines
}

func formatHelpOverlayEntry(entry helpOverlayEntry) string {
	key := textutil.PadRight(textutil.SanitizeTerminalText(entry.keys), 12)
	desc := textutil.SanitizeTerminalText(entry.desc)
	return fmt.Sprintf("  %s %s", key, desc)
}

// drawHelpOverlay draws a centered, bordered box with the key reference.
func (r *Renderer) drawHelpOverlay(state *statepkg.AppState, w, h int) {
	baseStyle := tcell.StyleDefault.Background(r.theme.Background).Foreground(r.theme.Foreground)
	lines := buildHelpOverlayLines(state)

	contentWidth := 0
	for _, line := range lines {
		if lw := r.measureTextWidth(line); lw > contentWidth {
			contentWidth = lw
		}
	}
	boxW := contentWidth + 4
	if boxW > w {
		boxW = w
	}
	boxH := len(lines) + 2
	if boxH > h {
		boxH = h
	}
	left := (w - boxW) / 2
	top := (h - boxH) / 2

	for y := 0; y < h; y++ {
		r.fillRow(0, w, y, baseStyle)
	}
	if boxW < 2 || boxH < 2 {
		return
	}

	right, bottom := left+boxW-1, top+boxH-1
	for x := left + 1; x < right; x++ {
		r.screen.SetContent(x, top, tcell.RuneHLine, nil, baseStyle)
		r.screen.SetContent(x, bottom, tcell.RuneHLine, nil, baseStyle)
	}
	for y := top + 1; y < bottom; y++ {
		r.screen.SetContent(left, y, tcell.RuneVLine, nil, baseStyle)
		r.screen.SetContent(right, y, tcell.RuneVLine, nil, baseStyle)
	}
	r.screen.SetContent(left, top, tcell.RuneULCorner, nil, baseStyle)
	r.screen.SetContent(right, top, tcell.RuneURCorner, nil, baseStyle)
	r.screen.SetContent(left, bottom, tcell.RuneLLCorner, nil, baseStyle)
	r.screen.SetContent(right, bottom, tcell.RuneLRCorner, nil, baseStyle)

	title := " Help "
	if tw := r.measureTextWidth(title); tw < boxW-2 {
		r.drawTextLine(left+(boxW-tw)/2, top, tw, title, baseStyle.Bold(true))
	}

	innerW := boxW - 4
	for i, line := range lines {
		y := top + 1 + i
		if y >= bottom {
			break
		}
		style := baseStyle
		if line != "" && line[0] != ' ' {
			style = style.Bold(true)
		}
		r.drawTextLine(left+2, y, innerW, r.truncateTextToWidth(line, innerW), style)
	}
}

package render

import (
	"strings"

	statepkg "github.com/kk-code-lab/nplay/internal/state"
)

// buildFooterHelpText returns the contextual footer hint string with leading/trailing padding.
func buildFooterHelpText(state *statepkg.AppState) string {
	parts := buildFooterHelpSegments(state)
	if len(parts) == 0 {
		return ""
	}
	return " " + strings.Join(parts, "  ") + " "
}

// buildFooterHelpSegments assembles context-aware help hints for the footer.
func buildFooterHelpSegments(state *statepkg.AppState) []string {
	if state == nil {
		return nil
	}

	if state.FilterEditing {
		return []string{
			"type: filter",
			"↵: accept",
			"Esc: clear",
			"↑↓: move",
		}
	}

	segments := []string{
		"↑↓/jk: move",
		"↵: play",
		"n/p: next/prev",
		"space: " + pauseHint(state),
		"r: repeat " + onOff(state.Playlist != nil && state.Playlist.Repeat),
		"/: filter",
	}
	if state.Playlist != nil && state.Playlist.Filter != "" {
		segments = append(segments, "Esc: clear filter")
	}
	return append(segments, "?: help", "q: quit")
}

func pauseHint(state *statepkg.AppState) string {
	if state.Paused {
		return "resume"
	}
	return "pause"
}

func onOff(v bool) string {
	if v {
		return "on"
	}
	return "off"
}

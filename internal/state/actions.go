package state

import (
	"time"

	"github.com/kk-code-lab/nplay/internal/playlist"
)

// Action is the base interface for all state mutations. Every playlist action
// is accepted as well and forwarded to the playlist reducer.
type Action = playlist.Action

// ===== NAVIGATION ACTIONS =====

type NavigateUpAction struct{}
type NavigateDownAction struct{}
type MouseSelectAction struct {
	DisplayIndex int
}

// ===== SCROLL ACTIONS =====

type ScrollPageUpAction struct{}
type ScrollPageDownAction struct{}
type ScrollToStartAction struct{}
type ScrollToEndAction struct{}

// ===== QUEUE ACTIONS =====

type PlayCursorAction struct{}   // ↵ - play the video under the cursor
type RemoveCursorAction struct{} // d - drop the video under the cursor

// ===== FILTER ACTIONS =====

type FilterStartAction struct{}
type FilterCharAction struct {
	Char rune
}
type FilterBackspaceAction struct{}
type FilterAcceptAction struct{}
type FilterClearAction struct{}

// ===== PLAYBACK ACTIONS =====

type TogglePauseAction struct{}
type TickAction struct {
	Delta time.Duration
}

// ===== VIEW ACTIONS =====

type ResizeAction struct {
	Width  int
	Height int
}

type HelpToggleAction struct{}
type HelpHideAction struct{}

// ===== APPLICATION ACTIONS =====

type QuitAction struct{}
type SuspendAction struct{} // Ctrl+Z - hand the terminal back to the shell

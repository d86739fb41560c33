package state

import (
	"time"

	"github.com/kk-code-lab/nplay/internal/media"
	"github.com/kk-code-lab/nplay/internal/playlist"
)

// ===== STATE DEFINITIONS =====

// AppState is the single source of truth for the terminal view. The queue
// itself lives in Playlist and is only ever replaced, never edited.
type AppState struct {
	Playlist *playlist.State

	// Selection & viewport (indices into the display list)
	CursorIndex  int
	ScrollOffset int

	// Filter input mode
	FilterEditing bool

	// Help overlay
	HelpVisible bool

	// Simulated playback clock for the selected video
	Paused  bool
	Elapsed time.Duration

	// Dimensions
	ScreenWidth  int
	ScreenHeight int

	// Error state
	LastError error

	// Display list cache, valid while displayFor is the current Playlist
	displayCache []media.Video
	displayFor   *playlist.State
}

// NewAppState wraps a playlist in a fresh view.
func NewAppState(pl *playlist.State) *AppState {
	if pl == nil {
		pl = playlist.NewState()
	}
	return &AppState{Playlist: pl}
}

// ===== HELPER METHODS =====

func (s *AppState) playlistState() *playlist.State {
	if s.Playlist == nil {
		s.Playlist = playlist.NewState()
	}
	return s.Playlist
}

// FilterLineVisible reports whether the renderer reserves a row for the filter.
func (s *AppState) FilterLineVisible() bool {
	return s.FilterEditing || s.playlistState().Filter != ""
}

// ListStartRow is the first screen row of the video list.
func (s *AppState) ListStartRow() int {
	if s.FilterLineVisible() {
		return 2
	}
	return 1
}

// ListHeight is the number of list rows that fit between the header and the
// status and footer lines.
func (s *AppState) ListHeight() int {
	h := s.ScreenHeight - s.ListStartRow() - 2
	if h < 1 {
		return 1
	}
	return h
}

// SelectedVideo returns the video currently playing.
func (s *AppState) SelectedVideo() (media.Video, bool) {
	return s.playlistState().Selected()
}

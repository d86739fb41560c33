package state

import (
	"github.com/kk-code-lab/nplay/internal/playlist"
)

// ===== REDUCER =====

// StateReducer applies actions to state
type StateReducer struct {
	playlist *playlist.Reducer
}

// NewStateReducer creates a new reducer
func NewStateReducer() *StateReducer {
	return &StateReducer{
		playlist: playlist.NewReducer(),
	}
}

// applyPlaylist runs a playlist action and reconciles the view with the new
// queue. It reports whether the queue state changed.
func (r *StateReducer) applyPlaylist(state *AppState, action playlist.Action) bool {
	prev := state.playlistState()
	next := r.playlist.Reduce(prev, action)
	if next == prev {
		return false
	}

	state.setPlaylist(next)
	state.getDisplayVideos(r.playlist.FilteredVideos)

	if next.SelectedID != prev.SelectedID {
		state.Elapsed = 0
		state.Paused = false
	}
	return true
}

// Reduce applies an action to state and returns it. View fields are updated
// in place; the playlist is replaced by the pure playlist reducer's output.
func (r *StateReducer) Reduce(state *AppState, action Action) *AppState {
	if state == nil {
		state = NewAppState(nil)
	}

	switch a := action.(type) {

	// ===== NAVIGATION =====

	case NavigateDownAction:
		count := len(state.DisplayVideos())
		if count == 0 || state.CursorIndex >= count-1 {
			return state
		}
		state.CursorIndex++
		state.updateScrollVisibility()
		return state

	case NavigateUpAction:
		if state.CursorIndex <= 0 {
			return state
		}
		state.CursorIndex--
		state.updateScrollVisibility()
		return state

	case MouseSelectAction:
		if a.DisplayIndex < 0 || a.DisplayIndex >= len(state.DisplayVideos()) {
			return state
		}
		state.CursorIndex = a.DisplayIndex
		state.updateScrollVisibility()
		return state

	// ===== SCROLLING =====

	case ScrollPageUpAction:
		state.CursorIndex -= state.ListHeight()
		state.clampCursor()
		return state

	case ScrollPageDownAction:
		state.CursorIndex += state.ListHeight()
		state.clampCursor()
		return state

	case ScrollToStartAction:
		state.CursorIndex = 0
		state.clampCursor()
		return state

	case ScrollToEndAction:
		state.CursorIndex = len(state.DisplayVideos()) - 1
		state.clampCursor()
		return state

	// ===== QUEUE =====

	case PlayCursorAction:
		video, ok := state.CursorVideo()
		if !ok {
			return state
		}
		r.applyPlaylist(state, playlist.SelectAction{Media: video})
		state.updateScrollVisibility()
		return state

	case RemoveCursorAction:
		video, ok := state.CursorVideo()
		if !ok {
			return state
		}
		r.applyPlaylist(state, playlist.RemoveAction{Media: video})
		state.clampCursor()
		return state

	// ===== FILTERING =====

	case FilterStartAction:
		state.HelpVisible = false
		state.FilterEditing = true
		state.updateScrollVisibility()
		return state

	case FilterCharAction:
		if !state.FilterEditing {
			return state
		}
		r.applyPlaylist(state, playlist.FilterChangeAction{Filter: state.playlistState().Filter + string(a.Char)})
		state.ScrollOffset = 0
		state.followSelection()
		return state

	case FilterBackspaceAction:
		filter := state.playlistState().Filter
		if !state.FilterEditing || filter == "" {
			return state
		}
		runes := []rune(filter)
		r.applyPlaylist(state, playlist.FilterChangeAction{Filter: string(runes[:len(runes)-1])})
		state.ScrollOffset = 0
		state.followSelection()
		return state

	case FilterAcceptAction:
		state.FilterEditing = false
		state.updateScrollVisibility()
		return state

	case FilterClearAction:
		state.FilterEditing = false
		if state.playlistState().Filter != "" {
			r.applyPlaylist(state, playlist.FilterChangeAction{Filter: ""})
		}
		state.followSelection()
		return state

	// ===== PLAYBACK =====

	case TogglePauseAction:
		if _, ok := state.SelectedVideo(); !ok {
			return state
		}
		state.Paused = !state.Paused
		return state

	case TickAction:
		video, ok := state.SelectedVideo()
		if !ok || state.Paused || a.Delta <= 0 {
			return state
		}
		state.Elapsed += a.Delta
		length := video.Duration()
		if length <= 0 || state.Elapsed < length {
			return state
		}
		r.applyPlaylist(state, playlist.MediaEndedAction{})
		if state.playlistState().SelectedID == video.ID {
			// Same video again: a one-item repeat loop, or the end of the
			// queue, where playback rewinds and waits.
			state.Elapsed = 0
			state.Paused = !state.playlistState().Repeat
			return state
		}
		state.followSelection()
		return state

	// ===== VIEW =====

	case ResizeAction:
		state.ScreenWidth = a.Width
		state.ScreenHeight = a.Height
		state.updateScrollVisibility()
		return state

	case HelpToggleAction:
		state.HelpVisible = !state.HelpVisible
		return state

	case HelpHideAction:
		state.HelpVisible = false
		return state
	}

	if playlist.IsPlaylistAction(action) {
		r.applyPlaylist(state, action)
		switch action.(type) {
		case playlist.RemoveAllAction:
			state.FilterEditing = false
			state.CursorIndex = 0
			state.ScrollOffset = 0
		case playlist.QueueAction, playlist.QueueVideosAction, playlist.RemoveAction:
			state.clampCursor()
		default:
			state.followSelection()
		}
	}
	return state
}

package playlist

import "github.com/kk-code-lab/nplay/internal/media"

// Reducer applies actions to playlist state. Its only field is a cache of
// folded search text, so two reducers always agree on every transition.
// A Reducer is not safe for concurrent use.
type Reducer struct {
	textCache map[string]string
}

// NewReducer creates a reducer with an empty search-text cache.
func NewReducer() *Reducer {
	return &Reducer{textCache: make(map[string]string)}
}

// Reduce applies action to state without a search-text cache.
func Reduce(state *State, action Action) *State {
	return (&Reducer{}).Reduce(state, action)
}

// FilteredVideos returns the videos of state that match its filter.
func (r *Reducer) FilteredVideos(state *State) []media.Video {
	if state == nil {
		return nil
	}
	return r.filterVideos(state.Videos, state.Filter)
}

// Reduce returns the state that follows action. Unrecognized actions return
// state itself so callers can detect a no-op by pointer comparison; every
// recognized action returns a fresh *State and leaves state untouched.
func (r *Reducer) Reduce(state *State, action Action) *State {
	if state == nil {
		state = NewState()
	}

	switch a := action.(type) {

	// ===== SELECTION =====

	case SelectAction:
		next := state.clone()
		next.SelectedID = a.Media.ID
		return next

	case UpdateIndexAction:
		next := state.clone()
		next.SelectedID = a.ID
		return next

	case SelectAndQueueAction:
		next := state.clone()
		if indexOf(state.Videos, a.Media.ID) < 0 {
			next.Videos = appendVideos(state.Videos, a.Media)
		}
		next.SelectedID = a.Media.ID
		return next

	// ===== QUEUE =====

	case QueueAction:
		next := state.clone()
		next.Videos = appendVideos(state.Videos, a.Media)
		return next

	case QueueVideosAction:
		next := state.clone()
		next.Videos = appendVideos(state.Videos, a.Media...)
		return next

	case RemoveAction:
		next := state.clone()
		next.Videos = removeVideo(state.Videos, a.Media.ID)
		return next

	case RemoveAllAction:
		return NewState()

	// ===== PLAYBACK =====

	case MediaEndedAction:
		next := state.clone()
		if id, ok := afterMediaEnded(state.Videos, state.SelectedID, state.Repeat); ok {
			next.SelectedID = id
		}
		return next

	case SelectNextAction:
		next := state.clone()
		if id, ok := nextInView(r.FilteredVideos(state), state.SelectedID); ok {
			next.SelectedID = id
		}
		return next

	case SelectPreviousAction:
		next := state.clone()
		if id, ok := previousInView(r.FilteredVideos(state), state.SelectedID); ok {
			next.SelectedID = id
		}
		return next

	case ToggleRepeatAction:
		next := state.clone()
		next.Repeat = !state.Repeat
		return next

	// ===== FILTER =====

	case FilterChangeAction:
		next := state.clone()
		next.Filter = a.Filter
		return next
	}

	return state
}

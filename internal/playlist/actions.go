package playlist

import "github.com/kk-code-lab/nplay/internal/media"

// Action is the base interface for all playlist transitions. Values of any
// type not declared here are ignored by the reducer.
type Action interface{}

// ActionType names an action in logs.
type ActionType string

const (
	ActionSelect         ActionType = "[Now Playlist] Select"
	ActionQueue          ActionType = "[Now Playlist] Queue"
	ActionQueueVideos    ActionType = "[Now Playlist] Queue Videos"
	ActionMediaEnded     ActionType = "[Now Playlist] Media Ended"
	ActionSelectNext     ActionType = "[Now Playlist] Select Next"
	ActionSelectPrevious ActionType = "[Now Playlist] Select Previous"
	ActionRemoveAll      ActionType = "[Now Playlist] Remove All"
	ActionRemove         ActionType = "[Now Playlist] Remove"
	ActionUpdateIndex    ActionType = "[Now Playlist] Update Index"
	ActionSelectAndQueue ActionType = "[Now Playlist] Select And Queue"
	ActionFilterChange   ActionType = "[Now Playlist] Filter Change"
	ActionToggleRepeat   ActionType = "[Now Playlist] Toggle Repeat"
)

// ===== SELECTION =====

type SelectAction struct {
	Media media.Video
}

type UpdateIndexAction struct {
	ID string
}

type SelectAndQueueAction struct {
	Media media.Video
}

// ===== QUEUE =====

type QueueAction struct {
	Media media.Video
}

type QueueVideosAction struct {
	Media []media.Video
}

type RemoveAction struct {
	Media media.Video
}

type RemoveAllAction struct{}

// ===== PLAYBACK =====

type MediaEndedAction struct{}
type SelectNextAction struct{}
type SelectPreviousAction struct{}
type ToggleRepeatAction struct{}

// ===== FILTER =====

type FilterChangeAction struct {
	Filter string
}

func (SelectAction) Type() ActionType         { return ActionSelect }
func (UpdateIndexAction) Type() ActionType    { return ActionUpdateIndex }
func (SelectAndQueueAction) Type() ActionType { return ActionSelectAndQueue }
func (QueueAction) Type() ActionType          { return ActionQueue }
func (QueueVideosAction) Type() ActionType    { return ActionQueueVideos }
func (RemoveAction) Type() ActionType         { return ActionRemove }
func (RemoveAllAction) Type() ActionType      { return ActionRemoveAll }
func (MediaEndedAction) Type() ActionType     { return ActionMediaEnded }
func (SelectNextAction) Type() ActionType     { return ActionSelectNext }
func (SelectPreviousAction) Type() ActionType { return ActionSelectPrevious }
func (ToggleRepeatAction) Type() ActionType   { return ActionToggleRepeat }
func (FilterChangeAction) Type() ActionType   { return ActionFilterChange }

// IsPlaylistAction reports whether the reducer recognizes action.
func IsPlaylistAction(action Action) bool {
	switch action.(type) {
	case SelectAction, UpdateIndexAction, SelectAndQueueAction,
		QueueAction, QueueVideosAction, RemoveAction, RemoveAllAction,
		MediaEndedAction, SelectNextAction, SelectPreviousAction,
		ToggleRepeatAction, FilterChangeAction:
		return true
	}
	return false
}

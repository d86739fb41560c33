package input

import (
	"unicode"

	"github.com/gdamore/tcell/v2"
	"github.com/kk-code-lab/nplay/internal/playlist"
	statepkg "github.com/kk-code-lab/nplay/internal/state"
)

// InputHandler converts tcell events to Actions
type InputHandler struct {
	actionChan chan statepkg.Action
	state      *statepkg.AppState // Reference to current state for mode checking
}

// NewInputHandler creates a new input handler
func NewInputHandler(actionChan chan statepkg.Action) *InputHandler {
	return &InputHandler{
		actionChan: actionChan,
	}
}

// SetState sets the state reference for mode checking
func (ih *InputHandler) SetState(state *statepkg.AppState) {
	ih.state = state
}

// ProcessEvent converts a tcell event into an Action. It returns false once
// the user asked to quit.
func (ih *InputHandler) ProcessEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return ih.processKeyEvent(ev)
	case *tcell.EventResize:
		w, h := ev.Size()
		ih.actionChan <- statepkg.ResizeAction{Width: w, Height: h}
		return true
	default:
		return true
	}
}

func (ih *InputHandler) processKeyEvent(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyCtrlC:
		ih.actionChan <- statepkg.QuitAction{}
		return false
	case tcell.KeyCtrlZ:
		ih.actionChan <- statepkg.SuspendAction{}
		return true
	}

	helpVisible := ih.state != nil && ih.state.HelpVisible
	if helpVisible {
		switch ev.Key() {
		case tcell.KeyEscape:
			ih.actionChan <- statepkg.HelpHideAction{}
		case tcell.KeyRune:
			switch ev.Rune() {
			case '?', 'q', 'Q':
				ih.actionChan <- statepkg.HelpHideAction{}
			}
		}
		return true
	}

	if ih.state != nil && ih.state.FilterEditing {
		return ih.processFilterKey(ev)
	}
	return ih.processNormalKey(ev)
}

// processFilterKey handles keys while the filter line has focus.
func (ih *InputHandler) processFilterKey(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape:
		ih.actionChan <- statepkg.FilterClearAction{}
	case tcell.KeyEnter:
		ih.actionChan <- statepkg.FilterAcceptAction{}
	case tcell.KeyBackspace, tcell.KeyBackspace2, tcell.KeyDelete:
		ih.actionChan <- statepkg.FilterBackspaceAction{}
	case tcell.KeyUp:
		ih.actionChan <- statepkg.NavigateUpAction{}
	case tcell.KeyDown:
		ih.actionChan <- statepkg.NavigateDownAction{}
	case tcell.KeyHome:
		ih.actionChan <- statepkg.ScrollToStartAction{}
	case tcell.KeyEnd:
		ih.actionChan <- statepkg.ScrollToEndAction{}
	case tcell.KeyRune:
		r := ev.Rune()
		if ev.Modifiers()&tcell.ModCtrl != 0 {
			return true
		}
		if ev.Modifiers()&tcell.ModShift != 0 {
			// Normalize shifted alphabetic runes to reflect user intent (Shift+A => 'A')
			r = unicode.ToUpper(r)
		}
		if unicode.IsPrint(r) {
			ih.actionChan <- statepkg.FilterCharAction{Char: r}
		}
	}
	return true
}

// processNormalKey handles the list view bindings.
func (ih *InputHandler) processNormalKey(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape:
		if ih.state != nil && ih.state.Playlist != nil && ih.state.Playlist.Filter != "" {
			ih.actionChan <- statepkg.FilterClearAction{}
		}
		return true
	case tcell.KeyUp:
		ih.actionChan <- statepkg.NavigateUpAction{}
		return true
	case tcell.KeyDown:
		ih.actionChan <- statepkg.NavigateDownAction{}
		return true
	case tcell.KeyPgUp:
		ih.actionChan <- statepkg.ScrollPageUpAction{}
		return true
	case tcell.KeyPgDn:
		ih.actionChan <- statepkg.ScrollPageDownAction{}
		return true
	case tcell.KeyHome:
		ih.actionChan <- statepkg.ScrollToStartAction{}
		return true
	case tcell.KeyEnd:
		ih.actionChan <- statepkg.ScrollToEndAction{}
		return true
	case tcell.KeyEnter:
		ih.actionChan <- statepkg.PlayCursorAction{}
		return true
	case tcell.KeyRune:
	default:
		return true
	}

	switch ev.Rune() {
	case 'q', 'Q':
		ih.actionChan <- statepkg.QuitAction{}
		return false
	case 'k':
		ih.actionChan <- statepkg.NavigateUpAction{}
	case 'j':
		ih.actionChan <- statepkg.NavigateDownAction{}
	case 'n':
		ih.actionChan <- playlist.SelectNextAction{}
	case 'p':
		ih.actionChan <- playlist.SelectPreviousAction{}
	case 's':
		ih.actionChan <- playlist.MediaEndedAction{}
	case 'r':
		ih.actionChan <- playlist.ToggleRepeatAction{}
	case ' ':
		ih.actionChan <- statepkg.TogglePauseAction{}
	case 'd':
		ih.actionChan <- statepkg.RemoveCursorAction{}
	case 'X':
		ih.actionChan <- playlist.RemoveAllAction{}
	case '/':
		ih.actionChan <- statepkg.FilterStartAction{}
	case '?':
		ih.actionChan <- statepkg.HelpToggleAction{}
	}
	return true
}

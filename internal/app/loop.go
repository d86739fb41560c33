package app

import (
	"fmt"
	"os"
	"os/signal"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/kk-code-lab/nplay/internal/playlist"
	statepkg "github.com/kk-code-lab/nplay/internal/state"
)

const doubleClickThreshold = 300 * time.Millisecond

// Run processes terminal events, queued actions and playback ticks until the
// user quits.
func (app *Application) Run() {
	defer app.screen.Fini()

	app.renderer.Render(app.state)
	renderPending := false

	eventChan := make(chan tcell.Event)
	go func() {
		for {
			ev := app.screen.PollEvent()
			if ev == nil {
				return
			}
			eventChan <- ev
		}
	}()

	var sigContCh chan os.Signal
	if sigs := contSignals(); len(sigs) > 0 {
		sigContCh = make(chan os.Signal, 1)
		signal.Notify(sigContCh, sigs...)
		defer signal.Stop(sigContCh)
	}

	ticker := time.NewTicker(app.tickInterval)
	defer ticker.Stop()
	lastTick := time.Now()

	for !app.shouldQuit {
		if renderPending {
			app.renderer.Render(app.state)
			renderPending = false
		}

		select {
		case ev := <-eventChan:
			if app.handleEvent(ev) {
				renderPending = true
			}
		case now := <-ticker.C:
			delta := now.Sub(lastTick)
			lastTick = now
			if app.playing() && app.handleAction(statepkg.TickAction{Delta: delta}) {
				renderPending = true
			}
		case action := <-app.actionCh:
			if app.handleAction(action) {
				renderPending = true
			}
		case <-sigContCh:
			if app.resumeAfterStop() {
				renderPending = true
			}
		}

		if app.processActions() {
			renderPending = true
		}
	}

	app.logger.Info().Msg("quit")
}

func (app *Application) playing() bool {
	if app.state.Paused {
		return false
	}
	_, ok := app.state.SelectedVideo()
	return ok
}

func (app *Application) handleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey, *tcell.EventResize:
		if !app.input.ProcessEvent(ev) {
			app.shouldQuit = true
		}
	case *tcell.EventMouse:
		app.handleMouse(ev)
	case *tcell.EventInterrupt:
		return true
	default:
		return false
	}
	return true
}

// handleMouse maps wheel scrolls to cursor moves, primary clicks on list rows
// to MouseSelectAction, and double clicks to playback.
func (app *Application) handleMouse(ev *tcell.EventMouse) {
	if app.state == nil || app.state.HelpVisible {
		return
	}

	buttons := ev.Buttons()
	switch {
	case buttons&tcell.WheelUp != 0:
		app.actionCh <- statepkg.NavigateUpAction{}
		return
	case buttons&tcell.WheelDown != 0:
		app.actionCh <- statepkg.NavigateDownAction{}
		return
	case buttons&tcell.Button1 == 0:
		return
	}

	_, y := ev.Position()
	listStartY := app.state.ListStartRow()
	bottomLimit := app.state.ScreenHeight - 2 // status and footer lines
	if y < listStartY || y >= bottomLimit {
		return
	}

	displayIdx := app.state.ScrollOffset + (y - listStartY)
	if displayIdx >= len(app.state.DisplayVideos()) {
		return
	}

	doubleClick := app.lastClickRow == displayIdx && time.Since(app.lastClickTime) <= doubleClickThreshold
	app.lastClickRow = displayIdx
	app.lastClickTime = time.Now()

	app.actionCh <- statepkg.MouseSelectAction{DisplayIndex: displayIdx}
	if doubleClick {
		app.actionCh <- statepkg.PlayCursorAction{}
		app.lastClickRow = -1
	}
}

func (app *Application) processActions() bool {
	changed := false
	for {
		select {
		case action := <-app.actionCh:
			if app.handleAction(action) {
				changed = true
			}
		default:
			return changed
		}
	}
}

func (app *Application) handleAction(action statepkg.Action) bool {
	if action == nil {
		return false
	}

	switch action.(type) {
	case statepkg.QuitAction:
		app.logger.Debug().Str("action", actionName(action)).Msg("dispatch")
		app.shouldQuit = true
		return false
	case statepkg.SuspendAction:
		app.logger.Debug().Str("action", actionName(action)).Msg("dispatch")
		app.suspendToShell()
		app.resumeAfterStop()
		return true
	}

	app.dispatch(action)
	return true
}

// dispatch runs an action through the reducer and logs the transition.
func (app *Application) dispatch(action statepkg.Action) {
	before := app.state.Playlist
	app.state = app.reducer.Reduce(app.state, action)
	app.input.SetState(app.state)

	event := app.logger.Debug().Str("action", actionName(action))
	if app.state.Playlist != before {
		event = event.Str("selected", app.state.Playlist.SelectedID).
			Int("queued", len(app.state.Playlist.Videos))
	}
	event.Msg("dispatch")
}

// actionName prefers the playlist discriminant and falls back to the Go type.
func actionName(action statepkg.Action) string {
	if typed, ok := action.(interface{ Type() playlist.ActionType }); ok {
		return string(typed.Type())
	}
	return fmt.Sprintf("%T", action)
}

package app

import (
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/kk-code-lab/nplay/internal/media"
	"github.com/kk-code-lab/nplay/internal/playlist"
	statepkg "github.com/kk-code-lab/nplay/internal/state"
	inputui "github.com/kk-code-lab/nplay/internal/ui/input"
	renderui "github.com/kk-code-lab/nplay/internal/ui/render"
	"github.com/rs/zerolog"
)

const defaultTickInterval = time.Second

// Options configure a new Application.
type Options struct {
	Videos       []media.Video
	Filter       string
	Repeat       bool
	Autoplay     bool
	TickInterval time.Duration
	Logger       zerolog.Logger
}

// Application represents the running app.
type Application struct {
	screen       tcell.Screen
	state        *statepkg.AppState
	reducer      *statepkg.StateReducer
	renderer     *renderui.Renderer
	input        *inputui.InputHandler
	actionCh     chan statepkg.Action
	logger       zerolog.Logger
	tickInterval time.Duration
	shouldQuit   bool

	lastClickRow  int
	lastClickTime time.Time
}

// NewApplication opens the terminal and builds the initial queue.
func NewApplication(opts Options) (*Application, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	if err := screen.Init(); err != nil {
		return nil, err
	}
	// Parse mouse sequences so modified clicks don't leak as key events.
	screen.EnableMouse()

	return newApplication(screen, opts), nil
}

func newApplication(screen tcell.Screen, opts Options) *Application {
	if opts.TickInterval <= 0 {
		opts.TickInterval = defaultTickInterval
	}

	actionCh := make(chan statepkg.Action, 10)
	app := &Application{
		screen:       screen,
		state:        statepkg.NewAppState(nil),
		reducer:      statepkg.NewStateReducer(),
		renderer:     renderui.NewRenderer(screen),
		input:        inputui.NewInputHandler(actionCh),
		actionCh:     actionCh,
		logger:       opts.Logger,
		tickInterval: opts.TickInterval,
		lastClickRow: -1,
	}

	w, h := screen.Size()
	app.state.ScreenWidth = w
	app.state.ScreenHeight = h
	app.input.SetState(app.state)

	for _, action := range initialActions(opts) {
		app.dispatch(action)
	}
	if opts.Autoplay {
		if video, ok := firstPlayable(app.state); ok {
			app.dispatch(playlist.SelectAction{Media: video})
		}
	}

	app.logger.Info().
		Int("videos", len(opts.Videos)).
		Str("filter", opts.Filter).
		Bool("repeat", opts.Repeat).
		Msg("queue ready")
	return app
}

func initialActions(opts Options) []statepkg.Action {
	actions := []statepkg.Action{playlist.QueueVideosAction{Media: opts.Videos}}
	if opts.Filter != "" {
		actions = append(actions, playlist.FilterChangeAction{Filter: opts.Filter})
	}
	if opts.Repeat {
		actions = append(actions, playlist.ToggleRepeatAction{})
	}
	return actions
}

// firstPlayable picks the first video of the filtered view, falling back to
// the head of the queue when the filter hides everything.
func firstPlayable(state *statepkg.AppState) (media.Video, bool) {
	if videos := state.DisplayVideos(); len(videos) > 0 {
		return videos[0], true
	}
	if state.Playlist != nil && len(state.Playlist.Videos) > 0 {
		return state.Playlist.Videos[0], true
	}
	return media.Video{}, false
}

// State exposes the current view state.
func (app *Application) State() *statepkg.AppState {
	return app.state
}

// Close cleans up resources.
func (app *Application) Close() error {
	app.screen.Fini()
	return nil
}

package app

import (
	"bytes"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/kk-code-lab/nplay/internal/media"
	"github.com/kk-code-lab/nplay/internal/playlist"
	statepkg "github.com/kk-code-lab/nplay/internal/state"
	"github.com/rs/zerolog"
)

func testVideos(titles ...string) []media.Video {
	videos := make([]media.Video, len(titles))
	for i, title := range titles {
		videos[i] = media.Video{
			ID:             fmt.Sprintf("vid-%d", i),
			Snippet:        &media.Snippet{Title: title},
			ContentDetails: &media.ContentDetails{Duration: "PT2S"},
		}
	}
	return videos
}

func newTestApp(t *testing.T, opts Options) (*Application, tcell.SimulationScreen) {
	t.Helper()
	screen := tcell.NewSimulationScreen("")
	if err := screen.Init(); err != nil {
		t.Fatalf("init simulation screen: %v", err)
	}
	screen.SetSize(80, 12)
	return newApplication(screen, opts), screen
}

func TestNewApplicationQueuesAndAutoplays(t *testing.T) {
	app, screen := newTestApp(t, Options{
		Videos:   testVideos("Intro", "Aurora live", "Outro"),
		Autoplay: true,
	})
	defer screen.Fini()

	state := app.State()
	if len(state.Playlist.Videos) != 3 {
		t.Fatalf("expected 3 queued videos, got %d", len(state.Playlist.Videos))
	}
	if state.Playlist.SelectedID != "vid-0" {
		t.Fatalf("autoplay should select the first video, got %q", state.Playlist.SelectedID)
	}
	if state.ScreenWidth != 80 || state.ScreenHeight != 12 {
		t.Fatalf("screen size not copied: %dx%d", state.ScreenWidth, state.ScreenHeight)
	}
	if app.tickInterval != defaultTickInterval {
		t.Fatalf("tick interval should default to %v, got %v", defaultTickInterval, app.tickInterval)
	}
}

func TestNewApplicationAppliesFilterAndRepeat(t *testing.T) {
	app, screen := newTestApp(t, Options{
		Videos:   testVideos("Intro", "Aurora live", "Outro"),
		Filter:   "aurora",
		Repeat:   true,
		Autoplay: true,
	})
	defer screen.Fini()

	state := app.State()
	if state.Playlist.Filter != "aurora" || !state.Playlist.Repeat {
		t.Fatalf("filter/repeat not applied: %+v", state.Playlist)
	}
	if state.Playlist.SelectedID != "vid-1" {
		t.Fatalf("autoplay should pick the first match, got %q", state.Playlist.SelectedID)
	}
}

func TestNewApplicationWithoutAutoplay(t *testing.T) {
	app, screen := newTestApp(t, Options{Videos: testVideos("Intro")})
	defer screen.Fini()

	if id := app.State().Playlist.SelectedID; id != "" {
		t.Fatalf("nothing should be selected, got %q", id)
	}
}

func TestDispatchLogsActionType(t *testing.T) {
	var buf bytes.Buffer
	logger := zerolog.New(&buf).Level(zerolog.DebugLevel)
	app, screen := newTestApp(t, Options{Videos: testVideos("Intro", "Outro"), Logger: logger})
	defer screen.Fini()

	buf.Reset()
	app.handleAction(playlist.SelectNextAction{})
	app.handleAction(statepkg.NavigateDownAction{})

	out := buf.String()
	if !strings.Contains(out, `"action":"[Now Playlist] Select Next"`) {
		t.Fatalf("expected playlist discriminant in log, got %s", out)
	}
	if !strings.Contains(out, `"selected":"vid-0"`) {
		t.Fatalf("expected selection in log, got %s", out)
	}
	if !strings.Contains(out, `"action":"state.NavigateDownAction"`) {
		t.Fatalf("expected Go type name for view actions, got %s", out)
	}
}

func TestHandleActionQuit(t *testing.T) {
	app, screen := newTestApp(t, Options{})
	defer screen.Fini()

	if app.handleAction(statepkg.QuitAction{}) {
		t.Fatal("quit should not request a render")
	}
	if !app.shouldQuit {
		t.Fatal("quit flag not set")
	}
}

func TestHandleMouseSelectsListRow(t *testing.T) {
	app, screen := newTestApp(t, Options{Videos: testVideos("a", "b", "c")})
	defer screen.Fini()

	// list starts on row 1 without a filter line
	app.handleMouse(tcell.NewEventMouse(5, 3, tcell.Button1, tcell.ModNone))

	select {
	case act := <-app.actionCh:
		sel, ok := act.(statepkg.MouseSelectAction)
		if !ok || sel.DisplayIndex != 2 {
			t.Fatalf("expected MouseSelectAction{2}, got %+v", act)
		}
	default:
		t.Fatal("expected selection action")
	}

	// second click on the same row plays it
	app.handleMouse(tcell.NewEventMouse(5, 3, tcell.Button1, tcell.ModNone))
	<-app.actionCh
	select {
	case act := <-app.actionCh:
		if _, ok := act.(statepkg.PlayCursorAction); !ok {
			t.Fatalf("expected PlayCursorAction on double click, got %T", act)
		}
	default:
		t.Fatal("expected double click to play")
	}
}

func TestHandleMouseIgnoresRowsOutsideList(t *testing.T) {
	app, screen := newTestApp(t, Options{Videos: testVideos("a", "b")})
	defer screen.Fini()

	for _, y := range []int{0, 5, 10, 11} {
		app.handleMouse(tcell.NewEventMouse(1, y, tcell.Button1, tcell.ModNone))
	}
	select {
	case act := <-app.actionCh:
		t.Fatalf("unexpected action %T", act)
	default:
	}
}

func TestHandleMouseWheel(t *testing.T) {
	app, screen := newTestApp(t, Options{Videos: testVideos("a", "b")})
	defer screen.Fini()

	app.handleMouse(tcell.NewEventMouse(1, 2, tcell.WheelDown, tcell.ModNone))
	if _, ok := (<-app.actionCh).(statepkg.NavigateDownAction); !ok {
		t.Fatal("wheel down should move the cursor down")
	}
}

func TestRunAdvancesPlaybackAndQuits(t *testing.T) {
	app, screen := newTestApp(t, Options{
		Videos:       testVideos("a", "b"),
		Autoplay:     true,
		TickInterval: 5 * time.Millisecond,
	})

	done := make(chan struct{})
	go func() {
		app.Run()
		close(done)
	}()

	time.Sleep(50 * time.Millisecond)
	screen.InjectKey(tcell.KeyRune, 'q', tcell.ModNone)

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("Run did not return after q")
	}
	if app.State().Elapsed <= 0 && app.State().Playlist.SelectedID == "vid-0" {
		t.Fatalf("ticker should have advanced playback")
	}
}

package render

import (
	"strings"
	"testing"

	statepkg "github.com/kk-code-lab/nplay/internal/state"
)

func TestBuildHelpOverlayLinesIncludesSections(t *testing.T) {
	lines := buildHelpOverlayLines(statepkg.NewAppState(nil))

	joined := strings.Join(lines, "\n")
	for _, want := range []string{"Navigation", "Playback", "Queue", "Filter", "Exit", "Clear the queue", "Turn repeat on"} {
		if !strings.Contains(joined, want) {
			t.Fatalf("expected help to contain %q, got %v", want, lines)
		}
	}
}

func TestBuildHelpOverlayLinesReflectsRepeat(t *testing.T) {
	state := statepkg.NewAppState(nil)
	state.Playlist.Repeat = true

	joined := strings.Join(buildHelpOverlayLines(state), " ")
	if !strings.Contains(joined, "Turn repeat off") {
		t.Fatalf("expected repeat-off hint when repeat is on, got %q", joined)
	}
}

func TestFormatHelpOverlayEntryAlignsKeys(t *testing.T) {
	a := formatHelpOverlayEntry(helpOverlayEntry{keys: "q", desc: "Quit"})
	b := formatHelpOverlayEntry(helpOverlayEntry{keys: "Ctrl+C", desc: "Quit immediately"})
	if strings.Index(a, "Quit") != strings.Index(b, "Quit") {
		t.Fatalf("descriptions should start in the same column:\n%q\n%q", a, b)
	}
}

package state

import "testing"

// ===== NAVIGATION TESTS =====

func TestNavigateDownAndUp(t *testing.T) {
	reducer := NewStateReducer()
	state := newTestState(makeVideos(3))

	reducer.Reduce(state, NavigateDownAction{})
	reducer.Reduce(state, NavigateDownAction{})
	if state.CursorIndex != 2 {
		t.Fatalf("CursorIndex=%d want 2", state.CursorIndex)
	}

	// Already at last item, nothing to do
	reducer.Reduce(state, NavigateDownAction{})
	if state.CursorIndex != 2 {
		t.Fatalf("cursor should stop at the last row, got %d", state.CursorIndex)
	}

	reducer.Reduce(state, NavigateUpAction{})
	reducer.Reduce(state, NavigateUpAction{})
	reducer.Reduce(state, NavigateUpAction{})
	if state.CursorIndex != 0 {
		t.Fatalf("cursor should stop at the first row, got %d", state.CursorIndex)
	}
}

func TestNavigateDoesNotChangeSelection(t *testing.T) {
	reducer := NewStateReducer()
	state := newTestState(makeVideos(3))
	state.Playlist.SelectedID = "v0"

	reducer.Reduce(state, NavigateDownAction{})
	if state.Playlist.SelectedID != "v0" {
		t.Fatalf("moving the cursor must not select, got %q", state.Playlist.SelectedID)
	}
}

func TestNavigateOnEmptyList(t *testing.T) {
	reducer := NewStateReducer()
	state := newTestState(nil)

	reducer.Reduce(state, NavigateDownAction{})
	reducer.Reduce(state, ScrollToEndAction{})
	reducer.Reduce(state, ScrollPageDownAction{})
	if state.CursorIndex != 0 || state.ScrollOffset != 0 {
		t.Fatalf("empty list should keep cursor at 0, got cursor=%d scroll=%d", state.CursorIndex, state.ScrollOffset)
	}
}

func TestScrollFollowsCursor(t *testing.T) {
	reducer := NewStateReducer()
	state := newTestState(makeVideos(20))
	visible := state.ListHeight()
	if visible != 7 {
		t.Fatalf("ListHeight=%d want 7", visible)
	}

	for i := 0; i < visible; i++ {
		reducer.Reduce(state, NavigateDownAction{})
	}
	if state.CursorIndex != visible {
		t.Fatalf("CursorIndex=%d want %d", state.CursorIndex, visible)
	}
	if state.ScrollOffset != 1 {
		t.Fatalf("ScrollOffset=%d want 1", state.ScrollOffset)
	}
}

func TestPageAndJumpActions(t *testing.T) {
	reducer := NewStateReducer()
	state := newTestState(makeVideos(20))

	reducer.Reduce(state, ScrollPageDownAction{})
	if state.CursorIndex != 7 {
		t.Fatalf("page down: cursor=%d want 7", state.CursorIndex)
	}

	reducer.Reduce(state, ScrollToEndAction{})
	if state.CursorIndex != 19 {
		t.Fatalf("end: cursor=%d want 19", state.CursorIndex)
	}
	if state.ScrollOffset != 13 {
		t.Fatalf("end: scroll=%d want 13", state.ScrollOffset)
	}

	reducer.Reduce(state, ScrollPageDownAction{})
	if state.CursorIndex != 19 {
		t.Fatalf("page down past end should clamp, got %d", state.CursorIndex)
	}

	reducer.Reduce(state, ScrollPageUpAction{})
	if state.CursorIndex != 12 {
		t.Fatalf("page up: cursor=%d want 12", state.CursorIndex)
	}

	reducer.Reduce(state, ScrollToStartAction{})
	if state.CursorIndex != 0 || state.ScrollOffset != 0 {
		t.Fatalf("start: cursor=%d scroll=%d", state.CursorIndex, state.ScrollOffset)
	}
}

func TestMouseSelect(t *testing.T) {
	reducer := NewStateReducer()
	state := newTestState(makeVideos(5))

	reducer.Reduce(state, MouseSelectAction{DisplayIndex: 3})
	if state.CursorIndex != 3 {
		t.Fatalf("CursorIndex=%d want 3", state.CursorIndex)
	}

	reducer.Reduce(state, MouseSelectAction{DisplayIndex: 9})
	if state.CursorIndex != 3 {
		t.Fatalf("out of range click should be ignored, got %d", state.CursorIndex)
	}
}

func TestResizeClampsScroll(t *testing.T) {
	reducer := NewStateReducer()
	state := newTestState(makeVideos(20))
	reducer.Reduce(state, ScrollToEndAction{})

	reducer.Reduce(state, ResizeAction{Width: 100, Height: 40})
	if state.ScreenWidth != 100 || state.ScreenHeight != 40 {
		t.Fatalf("dimensions not stored")
	}
	if state.ScrollOffset != 0 {
		t.Fatalf("all rows fit, scroll should reset to 0, got %d", state.ScrollOffset)
	}
}

package state

import (
	"github.com/kk-code-lab/nplay/internal/media"
	"github.com/kk-code-lab/nplay/internal/playlist"
)

// setPlaylist swaps in a new queue state. The display cache is keyed on the
// playlist pointer, so replacing it is enough to invalidate.
func (s *AppState) setPlaylist(pl *playlist.State) {
	s.Playlist = pl
}

func (s *AppState) getDisplayVideos(filter func(*playlist.State) []media.Video) []media.Video {
	pl := s.playlistState()
	if s.displayFor == pl && s.displayCache != nil {
		return s.displayCache
	}
	var videos []media.Video
	if filter != nil {
		videos = filter(pl)
	} else {
		videos = playlist.FilterVideos(pl.Videos, pl.Filter)
	}
	if videos == nil {
		videos = []media.Video{}
	}
	s.displayCache = videos
	s.displayFor = pl
	return videos
}

// DisplayVideos returns the filtered view shown in the list. Callers must not
// modify the returned slice.
func (s *AppState) DisplayVideos() []media.Video {
	return s.getDisplayVideos(nil)
}

// DisplayIndexOf returns the list row holding id, or -1.
func (s *AppState) DisplayIndexOf(id string) int {
	if id == "" {
		return -1
	}
	for i, v := range s.DisplayVideos() {
		if v.ID == id {
			return i
		}
	}
	return -1
}

// CursorVideo returns the video under the cursor.
func (s *AppState) CursorVideo() (media.Video, bool) {
	videos := s.DisplayVideos()
	if s.CursorIndex < 0 || s.CursorIndex >= len(videos) {
		return media.Video{}, false
	}
	return videos[s.CursorIndex], true
}

func (s *AppState) clampCursor() {
	count := len(s.DisplayVideos())
	if count == 0 {
		s.CursorIndex = 0
		s.ScrollOffset = 0
		return
	}
	if s.CursorIndex >= count {
		s.CursorIndex = count - 1
	}
	if s.CursorIndex < 0 {
		s.CursorIndex = 0
	}
	s.updateScrollVisibility()
}

// followSelection moves the cursor onto the playing video when it is visible.
func (s *AppState) followSelection() {
	if idx := s.DisplayIndexOf(s.playlistState().SelectedID); idx >= 0 {
		s.CursorIndex = idx
	}
	s.clampCursor()
}

// updateScrollVisibility keeps the cursor inside the visible window.
func (s *AppState) updateScrollVisibility() {
	visible := s.ListHeight()
	count := len(s.DisplayVideos())

	if s.CursorIndex < s.ScrollOffset {
		s.ScrollOffset = s.CursorIndex
	}
	if s.CursorIndex >= s.ScrollOffset+visible {
		s.ScrollOffset = s.CursorIndex - visible + 1
	}

	maxOffset := count - visible
	if maxOffset < 0 {
		maxOffset = 0
	}
	if s.ScrollOffset > maxOffset {
		s.ScrollOffset = maxOffset
	}
	if s.ScrollOffset < 0 {
		s.ScrollOffset = 0
	}
}

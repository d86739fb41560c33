package playlist

import "github.com/kk-code-lab/nplay/internal/media"

// State is the now-playing queue. A State is never modified after the
// reducer returns it; every transition produces a new value.
type State struct {
	SelectedID string
	Videos     []media.Video
	Filter     string
	Repeat     bool
}

// NewState returns the default, empty queue.
func NewState() *State {
	return &State{
		SelectedID: "",
		Videos:     []media.Video{},
		Filter:     "",
		Repeat:     false,
	}
}

// IndexOf returns the position of id in the unfiltered queue, or -1.
func (s *State) IndexOf(id string) int {
	if s == nil {
		return -1
	}
	return indexOf(s.Videos, id)
}

// Selected returns the active video, if it is still queued.
func (s *State) Selected() (media.Video, bool) {
	idx := s.IndexOf(s.selectedID())
	if idx < 0 {
		return media.Video{}, false
	}
	return s.Videos[idx], true
}

func (s *State) selectedID() string {
	if s == nil {
		return ""
	}
	return s.SelectedID
}

func (s *State) clone() *State {
	next := *s
	return &next
}

func indexOf(videos []media.Video, id string) int {
	if id == "" {
		return -1
	}
	for i := range videos {
		if videos[i].ID == id {
			return i
		}
	}
	return -1
}

// appendVideos copies before appending so the previous state's backing array
// is never written to.
func appendVideos(videos []media.Video, more ...media.Video) []media.Video {
	out := make([]media.Video, 0, len(videos)+len(more))
	out = append(out, videos...)
	return append(out, more...)
}

func removeVideo(videos []media.Video, id string) []media.Video {
	out := make([]media.Video, 0, len(videos))
	for _, v := range videos {
		if v.ID != id {
			out = append(out, v)
		}
	}
	return out
}

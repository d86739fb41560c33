package playlist

import "github.com/kk-code-lab/nplay/internal/media"

// nextInView steps forward through view, wrapping from the last entry to the
// first. A selection missing from view lands on the first entry.
func nextInView(view []media.Video, selectedID string) (string, bool) {
	if len(view) == 0 {
		return "", false
	}
	idx := indexOf(view, selectedID)
	if idx < 0 {
		return view[0].ID, true
	}
	return view[(idx+1)%len(view)].ID, true
}

// previousInView mirrors nextInView; a missing selection lands on the last entry.
func previousInView(view []media.Video, selectedID string) (string, bool) {
	if len(view) == 0 {
		return "", false
	}
	idx := indexOf(view, selectedID)
	if idx < 0 {
		return view[len(view)-1].ID, true
	}
	return view[(idx-1+len(view))%len(view)].ID, true
}

// afterMediaEnded picks the successor in the unfiltered queue. The last video
// only wraps to the first when repeat is on.
func afterMediaEnded(videos []media.Video, selectedID string, repeat bool) (string, bool) {
	if len(videos) == 0 {
		return "", false
	}
	idx := indexOf(videos, selectedID)
	switch {
	case idx < 0:
		return videos[0].ID, true
	case idx == len(videos)-1:
		if repeat {
			return videos[0].ID, true
		}
		return "", false
	default:
		return videos[idx+1].ID, true
	}
}

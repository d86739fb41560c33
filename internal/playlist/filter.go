package playlist

import (
	"strings"

	"github.com/kk-code-lab/nplay/internal/media"
	"golang.org/x/text/cases"
	"golang.org/x/text/unicode/norm"
)

// foldText normalizes text for case-insensitive substring matching.
func foldText(s string) string {
	return cases.Fold().String(norm.NFC.String(s))
}

// Matches reports whether the serialized video contains filter, ignoring case.
// An empty filter matches everything.
func Matches(v media.Video, filter string) bool {
	if filter == "" {
		return true
	}
	return strings.Contains(foldText(v.Serialize()), foldText(filter))
}

// FilterVideos returns the filtered view of videos, preserving order. With an
// empty filter the result shares videos' elements but has its capacity
// clipped, so appending to it never writes into videos.
func FilterVideos(videos []media.Video, filter string) []media.Video {
	return (&Reducer{}).filterVideos(videos, filter)
}

func searchKey(v media.Video) string {
	if v.Etag == "" {
		return ""
	}
	return v.ID + "\x00" + v.Etag
}

// searchText returns the folded serialization of v. Entries are cached by
// id and etag; videos without an etag are folded on every call.
func (r *Reducer) searchText(v media.Video) string {
	key := searchKey(v)
	if key != "" && r.textCache != nil {
		if text, ok := r.textCache[key]; ok {
			return text
		}
	}
	text := foldText(v.Serialize())
	if key != "" && r.textCache != nil {
		r.textCache[key] = text
	}
	return text
}

func (r *Reducer) filterVideos(videos []media.Video, filter string) []media.Video {
	if filter == "" {
		return videos[:len(videos):len(videos)]
	}
	needle := foldText(filter)
	view := make([]media.Video, 0, len(videos))
	for _, v := range videos {
		if strings.Contains(r.searchText(v), needle) {
			view = append(view, v)
		}
	}
	return view
}

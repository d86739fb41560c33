package playlist

import (
	"fmt"

	"github.com/kk-code-lab/nplay/internal/media"
)

func fixtureVideo(n int, title, publishedAt, description, duration string) media.Video {
	id := fmt.Sprintf("vid-%d", n)
	return media.Video{
		Kind: "youtube#video",
		Etag: fmt.Sprintf("etag-%d", n),
		ID:   id,
		Snippet: &media.Snippet{
			PublishedAt:  publishedAt,
			ChannelID:    fmt.Sprintf("UC-chan-%d", n),
			Title:        title,
			Description:  description,
			ChannelTitle: fmt.Sprintf("Channel %d", n),
			Thumbnails: map[string]media.Thumbnail{
				"default": {URL: "https://i.ytimg.com/vi/" + id + "/default.jpg", Width: 120, Height: 90},
			},
		},
		ContentDetails: &media.ContentDetails{
			Duration:   duration,
			Dimension:  "2d",
			Definition: "hd",
		},
	}
}

// fixtureVideos returns eight queued items. "2015" matches vid-1 and vid-3,
// "aurora" matches vid-2 only, "full" matches vid-0 and vid-4.
func fixtureVideos() []media.Video {
	return []media.Video{
		fixtureVideo(0, "Full Album - Night Drive", "2016-03-01T10:00:00Z", "synthwave mix", "PT45M"),
		fixtureVideo(1, "Live at Red Rocks", "2015-06-12T20:00:00Z", "concert recording", "PT1H2M"),
		fixtureVideo(2, "Aurora - Runaway", "2016-01-05T08:00:00Z", "official video", "PT4M13S"),
		fixtureVideo(3, "Studio Session", "2015-11-30T12:00:00Z", "behind the scenes", "PT12M"),
		fixtureVideo(4, "Ambient Rain", "2017-02-14T09:00:00Z", "FULL length relaxation", "PT3H"),
		fixtureVideo(5, "Morning Jazz", "2018-07-07T07:00:00Z", "coffee shop", "PT58M"),
		fixtureVideo(6, "Piano Covers", "2019-09-09T19:00:00Z", "requests", "PT21M"),
		fixtureVideo(7, "Lo-fi Beats", "2020-10-10T10:10:00Z", "study", "PT2H"),
	}
}

func createState(selectedID string, videos []media.Video, filter string) *State {
	state := NewState()
	state.SelectedID = selectedID
	if videos != nil {
		state.Videos = videos
	}
	state.Filter = filter
	return state
}

func ids(videos []media.Video) []string {
	out := make([]string, 0, len(videos))
	for _, v := range videos {
		out = append(out, v.ID)
	}
	return out
}

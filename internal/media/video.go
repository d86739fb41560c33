package media

import (
	"bytes"
	"encoding/json"
	"fmt"
	"time"
)

// Video mirrors a YouTube video resource. Only ID and Etag carry meaning for
// the playlist; the rest is descriptive payload that filtering searches through.
//
// Videos decoded from a playlist keep their source document, so fields the
// struct does not declare still take part in Serialize.
type Video struct {
	Kind           string          `json:"kind,omitempty" yaml:"kind,omitempty"`
	Etag           string          `json:"etag,omitempty" yaml:"etag,omitempty"`
	ID             string          `json:"id" yaml:"id"`
	Snippet        *Snippet        `json:"snippet,omitempty" yaml:"snippet,omitempty"`
	ContentDetails *ContentDetails `json:"contentDetails,omitempty" yaml:"contentDetails,omitempty"`
	Statistics     *Statistics     `json:"statistics,omitempty" yaml:"statistics,omitempty"`

	raw json.RawMessage
}

type Snippet struct {
	PublishedAt  string               `json:"publishedAt,omitempty" yaml:"publishedAt,omitempty"`
	ChannelID    string               `json:"channelId,omitempty" yaml:"channelId,omitempty"`
	Title        string               `json:"title,omitempty" yaml:"title,omitempty"`
	Description  string               `json:"description,omitempty" yaml:"description,omitempty"`
	Thumbnails   map[string]Thumbnail `json:"thumbnails,omitempty" yaml:"thumbnails,omitempty"`
	ChannelTitle string               `json:"channelTitle,omitempty" yaml:"channelTitle,omitempty"`
	Tags         []string             `json:"tags,omitempty" yaml:"tags,omitempty"`
}

type Thumbnail struct {
	URL    string `json:"url" yaml:"url"`
	Width  int    `json:"width,omitempty" yaml:"width,omitempty"`
	Height int    `json:"height,omitempty" yaml:"height,omitempty"`
}

type ContentDetails struct {
	Duration   string `json:"duration,omitempty" yaml:"duration,omitempty"`
	Dimension  string `json:"dimension,omitempty" yaml:"dimension,omitempty"`
	Definition string `json:"definition,omitempty" yaml:"definition,omitempty"`
	Caption    string `json:"caption,omitempty" yaml:"caption,omitempty"`
}

type Statistics struct {
	ViewCount    Count `json:"viewCount,omitempty" yaml:"viewCount,omitempty"`
	LikeCount    Count `json:"likeCount,omitempty" yaml:"likeCount,omitempty"`
	CommentCount Count `json:"commentCount,omitempty" yaml:"commentCount,omitempty"`
}

// Count is a statistics counter. The Data API sends counters as strings;
// hand-written playlists often use plain numbers. Both decode.
type Count string

func (c *Count) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	switch {
	case bytes.Equal(data, []byte("null")):
		return nil
	case len(data) > 0 && data[0] == '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*c = Count(s)
		return nil
	default:
		var n json.Number
		if err := json.Unmarshal(data, &n); err != nil {
			return fmt.Errorf("count: %w", err)
		}
		*c = Count(n.String())
		return nil
	}
}

// UnmarshalJSON decodes a video and keeps the compacted document. Only kind,
// etag and id must have the declared types; a malformed descriptive part is
// left nil and stays searchable through the document.
func (v *Video) UnmarshalJSON(data []byte) error {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return err
	}

	var decoded Video
	for key, dst := range map[string]*string{"kind": &decoded.Kind, "etag": &decoded.Etag, "id": &decoded.ID} {
		raw, ok := fields[key]
		if !ok {
			continue
		}
		if err := json.Unmarshal(raw, dst); err != nil {
			return fmt.Errorf("video %s: %w", key, err)
		}
	}
	decodePart(fields["snippet"], &decoded.Snippet)
	decodePart(fields["contentDetails"], &decoded.ContentDetails)
	decodePart(fields["statistics"], &decoded.Statistics)

	var compact bytes.Buffer
	if err := json.Compact(&compact, data); err != nil {
		return err
	}
	decoded.raw = compact.Bytes()
	*v = decoded
	return nil
}

func decodePart[T any](raw json.RawMessage, dst **T) {
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return
	}
	var part T
	if err := json.Unmarshal(raw, &part); err != nil {
		return
	}
	*dst = &part
}

// Title returns the snippet title, falling back to the id.
func (v Video) Title() string {
	if v.Snippet != nil && v.Snippet.Title != "" {
		return v.Snippet.Title
	}
	return v.ID
}

func (v Video) ChannelTitle() string {
	if v.Snippet == nil {
		return ""
	}
	return v.Snippet.ChannelTitle
}

// Duration reports the declared length of the video, or 0 when it is missing
// or malformed.
func (v Video) Duration() time.Duration {
	if v.ContentDetails == nil || v.ContentDetails.Duration == "" {
		return 0
	}
	d, err := ParseISODuration(v.ContentDetails.Duration)
	if err != nil {
		return 0
	}
	return d
}

// Serialize returns the JSON form of the video used for text search: the
// source document when the video was decoded, otherwise the struct encoded
// with HTML escaping disabled so "&" and "<" stay searchable as typed.
func (v Video) Serialize() string {
	if len(v.raw) > 0 {
		return string(v.raw)
	}
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return v.ID
	}
	return string(bytes.TrimRight(buf.Bytes(), "\n"))
}

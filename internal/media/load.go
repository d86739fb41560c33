package media

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/text/encoding/unicode"
	"gopkg.in/yaml.v3"
)

var (
	ErrUnsupportedFormat = errors.New("unsupported playlist format")
	ErrEmptyPlaylist     = errors.New("playlist contains no videos")
)

// Format identifies how a playlist file is encoded.
type Format int

const (
	FormatAuto Format = iota
	FormatJSON
	FormatYAML
)

// listDocument is the YouTube list response envelope ({"items": [...]}).
// A mapping without items but with an id is treated as a single video.
type listDocument struct {
	Items []Video `json:"items" yaml:"items"`
	ID    string  `json:"id" yaml:"id"`
}

// FormatForPath picks the decoder from the file extension.
func FormatForPath(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return FormatJSON
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatAuto
	}
}

// LoadFile reads videos from a JSON or YAML playlist file.
func LoadFile(path string) ([]Video, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read playlist %s: %w", path, err)
	}
	videos, err := Decode(data, FormatForPath(path))
	if err != nil {
		return nil, fmt.Errorf("load playlist %s: %w", path, err)
	}
	return videos, nil
}

// LoadFiles concatenates the videos of every file in argument order.
func LoadFiles(paths ...string) ([]Video, error) {
	var all []Video
	for _, path := range paths {
		videos, err := LoadFile(path)
		if err != nil {
			return nil, err
		}
		all = append(all, videos...)
	}
	if len(all) == 0 {
		return nil, ErrEmptyPlaylist
	}
	return all, nil
}

// Decode parses playlist content. Videos without an id are dropped.
func Decode(data []byte, format Format) ([]Video, error) {
	content, err := NormalizeText(data)
	if err != nil {
		return nil, err
	}
	content = bytes.TrimSpace(content)
	if len(content) == 0 {
		return nil, ErrEmptyPlaylist
	}

	if format == FormatAuto {
		format = FormatYAML
		if json.Valid(content) {
			format = FormatJSON
		}
	}

	var videos []Video
	switch format {
	case FormatJSON:
		videos, err = decodeJSON(content)
	case FormatYAML:
		videos, err = decodeYAML(content)
	default:
		return nil, ErrUnsupportedFormat
	}
	if err != nil {
		return nil, err
	}

	kept := videos[:0]
	for _, v := range videos {
		if strings.TrimSpace(v.ID) == "" {
			continue
		}
		kept = append(kept, v)
	}
	if len(kept) == 0 {
		return nil, ErrEmptyPlaylist
	}
	return kept, nil
}

func decodeJSON(content []byte) ([]Video, error) {
	switch content[0] {
	case '[':
		var videos []Video
		if err := json.Unmarshal(content, &videos); err != nil {
			return nil, fmt.Errorf("decode json: %w", err)
		}
		return videos, nil
	case '{':
		var doc listDocument
		if err := json.Unmarshal(content, &doc); err != nil {
			return nil, fmt.Errorf("decode json: %w", err)
		}
		if doc.Items != nil || doc.ID == "" {
			return doc.Items, nil
		}
		var single Video
		if err := json.Unmarshal(content, &single); err != nil {
			return nil, fmt.Errorf("decode json: %w", err)
		}
		return []Video{single}, nil
	default:
		return nil, ErrUnsupportedFormat
	}
}

func decodeYAML(content []byte) ([]Video, error) {
	var root yaml.Node
	if err := yaml.Unmarshal(content, &root); err != nil {
		return nil, fmt.Errorf("decode yaml: %w", err)
	}
	if root.Kind != yaml.DocumentNode || len(root.Content) == 0 {
		return nil, ErrUnsupportedFormat
	}

	node := root.Content[0]
	switch node.Kind {
	case yaml.SequenceNode:
		var videos []Video
		if err := node.Decode(&videos); err != nil {
			return nil, fmt.Errorf("decode yaml: %w", err)
		}
		return videos, nil
	case yaml.MappingNode:
		var doc listDocument
		if err := node.Decode(&doc); err != nil {
			return nil, fmt.Errorf("decode yaml: %w", err)
		}
		if doc.Items != nil || doc.ID == "" {
			return doc.Items, nil
		}
		var single Video
		if err := node.Decode(&single); err != nil {
			return nil, fmt.Errorf("decode yaml: %w", err)
		}
		return []Video{single}, nil
	default:
		return nil, ErrUnsupportedFormat
	}
}

// UnmarshalYAML converts the video mapping to JSON, key order preserved, and
// decodes that, so YAML and JSON playlists serialize the same way.
func (v *Video) UnmarshalYAML(node *yaml.Node) error {
	var buf bytes.Buffer
	if err := writeNodeJSON(&buf, node); err != nil {
		return err
	}
	return v.UnmarshalJSON(buf.Bytes())
}

func writeNodeJSON(buf *bytes.Buffer, node *yaml.Node) error {
	switch node.Kind {
	case yaml.DocumentNode:
		if len(node.Content) == 0 {
			buf.WriteString("null")
			return nil
		}
		return writeNodeJSON(buf, node.Content[0])
	case yaml.AliasNode:
		return writeNodeJSON(buf, node.Alias)
	case yaml.MappingNode:
		buf.WriteByte('{')
		for i := 0; i+1 < len(node.Content); i += 2 {
			if i > 0 {
				buf.WriteByte(',')
			}
			if err := writeJSONValue(buf, node.Content[i].Value); err != nil {
				return err
			}
			buf.WriteByte(':')
			if err := writeNodeJSON(buf, node.Content[i+1]); err != nil {
				return err
			}
		}
		buf.WriteByte('}')
		return nil
	case yaml.SequenceNode:
		buf.WriteByte('[')
		for i, item := range node.Content {
			if i > 0 {
				buf.WriteByte(',')
			}
			if err := writeNodeJSON(buf, item); err != nil {
				return err
			}
		}
		buf.WriteByte(']')
		return nil
	case yaml.ScalarNode:
		var value any = node.Value
		if node.ShortTag() != "!!str" {
			if err := node.Decode(&value); err != nil {
				return fmt.Errorf("line %d: %w", node.Line, err)
			}
		}
		if err := writeJSONValue(buf, value); err != nil {
			// .inf and .nan have no JSON form
			return writeJSONValue(buf, node.Value)
		}
		return nil
	default:
		return fmt.Errorf("line %d: unexpected yaml node", node.Line)
	}
}

func writeJSONValue(buf *bytes.Buffer, value any) error {
	var out bytes.Buffer
	enc := json.NewEncoder(&out)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(value); err != nil {
		return err
	}
	buf.Write(bytes.TrimRight(out.Bytes(), "\n"))
	return nil
}

type textEncoding int

const (
	encodingUnknown textEncoding = iota
	encodingUTF8BOM
	encodingUTF16LE
	encodingUTF16BE
)

func detectTextEncoding(sample []byte) textEncoding {
	if len(sample) >= 3 && sample[0] == 0xEF && sample[1] == 0xBB && sample[2] == 0xBF {
		return encodingUTF8BOM
	}
	if len(sample) >= 2 {
		switch {
		case sample[0] == 0xFF && sample[1] == 0xFE:
			return encodingUTF16LE
		case sample[0] == 0xFE && sample[1] == 0xFF:
			return encodingUTF16BE
		}
	}
	return encodingUnknown
}

// NormalizeText converts BOM-marked UTF-8 and UTF-16 playlists (as written by
// some Windows exporters) to plain UTF-8.
func NormalizeText(content []byte) ([]byte, error) {
	switch detectTextEncoding(content) {
	case encodingUTF8BOM:
		return content[3:], nil
	case encodingUTF16LE:
		return decodeUTF16(content, unicode.LittleEndian)
	case encodingUTF16BE:
		return decodeUTF16(content, unicode.BigEndian)
	default:
		return content, nil
	}
}

func decodeUTF16(content []byte, endian unicode.Endianness) ([]byte, error) {
	decoder := unicode.UTF16(endian, unicode.ExpectBOM).NewDecoder()
	out, err := decoder.Bytes(content)
	if err != nil {
		return nil, fmt.Errorf("decode utf-16: %w", err)
	}
	return out, nil
}

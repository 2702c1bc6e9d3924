//go:generate go run github.com/abice/go-enum -f=$GOFILE --marshal --names --values
package config

import (
	"errors"
	"fmt"
	"strings"
)

const maxTextSourceDisplayLen = 12

// BytesSourceType supported BytesSource types. ENUM(
// text=1 // Inline YAML block.
// http   // HTTP(S).
// file   // Local file.
// )
type BytesSourceType uint16

// BytesSource is a location of suffix list text.
type BytesSource struct {
	Type BytesSourceType
	From string
}

func (s BytesSource) String() string {
	switch s.Type {
	case BytesSourceTypeText:
		return displayText(s.From)

	case BytesSourceTypeHttp:
		return s.From

	case BytesSourceTypeFile:
		return fmt.Sprintf("file://%s", s.From)
	}

	return fmt.Sprintf("unknown source (%s: %s)", s.Type, s.From)
}

// first line only, truncated
func displayText(text string) string {
	truncated := false

	if idx := strings.IndexRune(text, '\n'); idx != -1 {
		truncated = idx < len(text)-1
		text = text[:idx]
	}

	if len(text) > maxTextSourceDisplayLen {
		text = text[:maxTextSourceDisplayLen]
		truncated = true
	}

	if truncated {
		return text + "..."
	}

	return text
}

// UnmarshalText implements `encoding.TextUnmarshaler`.
func (s *BytesSource) UnmarshalText(data []byte) error {
	source := string(data)

	switch {
	// Inline definition in YAML (with literal style Block Scalar)
	case strings.ContainsAny(source, "\n"):
		*s = BytesSource{Type: BytesSourceTypeText, From: source}

	case strings.HasPrefix(source, "http://"), strings.HasPrefix(source, "https://"):
		*s = BytesSource{Type: BytesSourceTypeHttp, From: source}

	// Probably path to a local file
	default:
		*s = BytesSource{Type: BytesSourceTypeFile, From: strings.TrimPrefix(source, "file://")}
	}

	return nil
}

func (s BytesSource) validate() error {
	if !s.Type.IsValid() {
		return fmt.Errorf("invalid source type: %s", s)
	}

	if strings.TrimSpace(s.From) == "" {
		return errors.New("source must not be empty")
	}

	return nil
}

func newBytesSource(source string) BytesSource {
	var res BytesSource

	// UnmarshalText never returns an error
	_ = res.UnmarshalText([]byte(source))

	return res
}

// NewBytesSources parses each of `sources` like a configured source.
func NewBytesSources(sources ...string) []BytesSource {
	res := make([]BytesSource, 0, len(sources))

	for _, source := range sources {
		res = append(res, newBytesSource(source))
	}

	return res
}

// TextBytesSource returns an inline source containing `lines`.
func TextBytesSource(lines ...string) BytesSource {
	// at least one line ending so it's parsed as an inline block
	return BytesSource{Type: BytesSourceTypeText, From: strings.Join(lines, "\n") + "\n"}
}

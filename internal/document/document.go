package document

import (
	"fmt"
	"os"
	"strings"
	"unicode/utf8"
)

// SpanStyle is the inline style applied to a run of text.
// Styles are flat: spans never nest, so there is no bold-italic combination.
type SpanStyle int

const (
	StylePlain SpanStyle = iota
	StyleBold
	StyleItalic
	StyleCode
)

func (s SpanStyle) String() string {
	switch s {
	case StyleBold:
		return "bold"
	case StyleItalic:
		return "italic"
	case StyleCode:
		return "code"
	default:
		return "plain"
	}
}

// Span is a styled run of text within a block. Concatenating a block's
// span texts reconstructs its visible text (delimiters stripped).
type Span struct {
	Text  string
	Style SpanStyle
}

// Block is one display unit of the document: a heading (level 1-6) or a
// paragraph (level 0). Blocks are immutable once parsed; a reload
// replaces the whole slice.
type Block struct {
	Level int // 0 = paragraph, 1-6 = heading level
	Spans []Span
	Index int // position in source order
}

// IsHeading reports whether the block is a heading.
func (b Block) IsHeading() bool {
	return b.Level > 0
}

// Text returns the block's visible text with all delimiters stripped.
func (b Block) Text() string {
	var sb strings.Builder
	for _, sp := range b.Spans {
		sb.WriteString(sp.Text)
	}
	return sb.String()
}

// LoadError reports a document that could not be read or is not valid
// text. Playback state is left untouched by a failed load.
type LoadError struct {
	Path string
	Err  error
}

func (e *LoadError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("load %s: %v", e.Path, e.Err)
	}
	return fmt.Sprintf("load %s: not valid UTF-8 text", e.Path)
}

func (e *LoadError) Unwrap() error { return e.Err }

// Load reads a markdown file and parses it. The whole file is read into
// memory; there is no size ceiling here.
func Load(path string) ([]Block, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &LoadError{Path: path, Err: err}
	}
	if !utf8.Valid(data) {
		return nil, &LoadError{Path: path}
	}
	return Parse(string(data)), nil
}

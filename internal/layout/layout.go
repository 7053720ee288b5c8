package layout

import (
	"strings"

	"github.com/muesli/reflow/wordwrap"

	"github.com/markprompt/markprompt/internal/document"
)

// The controller works in px; a text row is FontSize*lineHeightFactor
// px tall and headings scale that per level, mirroring how the blocks
// would measure in a proportional-font viewer.
const (
	lineHeightFactor = 1.5
	blockGapFactor   = 0.5
)

// headingScale is the row-height multiplier per heading level 1-6.
var headingScale = [6]float64{2.0, 1.8, 1.6, 1.4, 1.2, 1.1}

// Line is one wrapped display row with its vertical placement.
type Line struct {
	Text  string  // rendered row content, ANSI styling allowed
	Y     float64 // top offset in px
	H     float64 // row height in px
	Block int     // index of the block this row came from
}

// Result is the measured document the scroll controller consumes:
// per-row placement, heading offsets and the total content height.
type Result struct {
	Lines          []Line
	HeadingOffsets []float64 // ascending, deduplicated
	ContentHeight  float64
}

// LineAt returns the index of the row covering the vertical offset
// pos, clamped to the last row when pos is past the end.
func (r Result) LineAt(pos float64) int {
	for i, ln := range r.Lines {
		if pos < ln.Y+ln.H {
			return i
		}
	}
	if len(r.Lines) == 0 {
		return 0
	}
	return len(r.Lines) - 1
}

// RenderFunc turns a block into its display string. Styling is the
// caller's business; wrapping is ANSI-aware so escape sequences cost
// no width.
type RenderFunc func(document.Block) string

// Measurer wraps blocks to a viewport width and assigns px geometry.
// It only measures; it never draws.
type Measurer struct {
	Width    int
	FontSize float64
}

// Measure lays out blocks top to bottom. render may be nil, in which
// case the block's plain text is used.
func (m Measurer) Measure(blocks []document.Block, render RenderFunc) Result {
	if render == nil {
		render = func(b document.Block) string { return b.Text() }
	}
	width := m.Width
	if width < 1 {
		width = 1
	}

	var res Result
	y := 0.0
	gap := m.FontSize * blockGapFactor

	for i, b := range blocks {
		if i > 0 {
			y += gap
		}

		rowH := m.FontSize * lineHeightFactor
		if b.IsHeading() {
			rowH *= headingScale[b.Level-1]
			n := len(res.HeadingOffsets)
			if n == 0 || res.HeadingOffsets[n-1] < y {
				res.HeadingOffsets = append(res.HeadingOffsets, y)
			}
		}

		wrapped := wordwrap.String(render(b), width)
		for _, row := range strings.Split(wrapped, "\n") {
			res.Lines = append(res.Lines, Line{
				Text:  row,
				Y:     y,
				H:     rowH,
				Block: b.Index,
			})
			y += rowH
		}
	}

	res.ContentHeight = y
	return res
}

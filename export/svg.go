package export

import (
	"fmt"
	"io"

	svg "github.com/ajstarks/svgo"

	"github.com/katalvlaran/cistrune/glyph"
	"github.com/katalvlaran/cistrune/grid"
)

// MIMEType is the media type of an exported glyph document.
const MIMEType = "image/svg+xml"

// lineStyle is the shared styling of every glyph segment.
const lineStyle = "stroke:black;stroke-width:4;stroke-linecap:round;fill:none"

// Filename returns the conventional export name for value.
func Filename(value int) string {
	return fmt.Sprintf("rune-%d.svg", value)
}

// WriteSVG composes value's glyph and writes it to w as a complete SVG
// document. An out-of-domain value is refused with ErrValueOutOfRange
// before anything is written; an exporter must not emit an empty document.
func WriteSVG(w io.Writer, value int) error {
	if err := glyph.Validate(value); err != nil {
		return err
	}

	canvas := svg.New(w)
	canvas.Startview(grid.CanvasWidth, grid.CanvasHeight, 0, 0, grid.CanvasWidth, grid.CanvasHeight)
	canvas.Gstyle(lineStyle)
	for _, s := range glyph.Glyph(value) {
		canvas.Line(s.From.X, s.From.Y, s.To.X, s.To.Y)
	}
	canvas.Gend()
	canvas.End()

	return nil
}

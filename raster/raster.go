package raster

import (
	"image"
	"image/color"
	"image/draw"
	"math"

	"golang.org/x/image/vector"

	"github.com/katalvlaran/cistrune/glyph"
	"github.com/katalvlaran/cistrune/grid"
)

// strokeWidth matches the SVG styling contract: 4px wide, round caps.
const strokeWidth = 4

// capSides is the polygon resolution approximating a round cap.
const capSides = 16

// Render composes value's glyph and rasterises it onto a white
// CanvasWidth×CanvasHeight image. An out-of-domain value is refused with
// glyph.ErrValueOutOfRange.
func Render(value int) (*image.RGBA, error) {
	if err := glyph.Validate(value); err != nil {
		return nil, err
	}

	img := image.NewRGBA(image.Rect(0, 0, grid.CanvasWidth, grid.CanvasHeight))
	draw.Draw(img, img.Bounds(), image.NewUniform(color.White), image.Point{}, draw.Src)

	z := vector.NewRasterizer(grid.CanvasWidth, grid.CanvasHeight)
	for _, s := range glyph.Glyph(value) {
		addSegment(z, s)
	}
	z.Draw(img, img.Bounds(), image.NewUniform(color.Black), image.Point{})

	return img, nil
}

// addSegment outlines one stroked segment as fill geometry: a quad offset
// half the stroke width to each side of the segment, plus a full disc at
// each endpoint. The quad's vertex order (a+n, b+n, b-n, a-n) winds the
// same way for every segment direction, matching addDisc.
func addSegment(z *vector.Rasterizer, s glyph.Segment) {
	ax, ay := float64(s.From.X), float64(s.From.Y)
	bx, by := float64(s.To.X), float64(s.To.Y)
	half := float64(strokeWidth) / 2

	if l := math.Hypot(bx-ax, by-ay); l > 0 {
		nx := -(by - ay) / l * half
		ny := (bx - ax) / l * half
		z.MoveTo(float32(ax+nx), float32(ay+ny))
		z.LineTo(float32(bx+nx), float32(by+ny))
		z.LineTo(float32(bx-nx), float32(by-ny))
		z.LineTo(float32(ax-nx), float32(ay-ny))
		z.ClosePath()
	}
	addDisc(z, ax, ay, half)
	addDisc(z, bx, by, half)
}

// addDisc appends a clockwise regular polygon approximating a disc.
func addDisc(z *vector.Rasterizer, cx, cy, r float64) {
	z.MoveTo(float32(cx+r), float32(cy))
	for i := 1; i <= capSides; i++ {
		a := -2 * math.Pi * float64(i) / capSides
		z.LineTo(float32(cx+r*math.Cos(a)), float32(cy+r*math.Sin(a)))
	}
	z.ClosePath()
}

// Package glyph defines the place model, segment type, and sentinel errors
// for glyph composition.
package glyph

import (
	"errors"

	"github.com/katalvlaran/cistrune/grid"
)

// Representable value domain. Values outside it compose to an empty glyph.
const (
	// MinValue is the smallest representable number.
	MinValue = 1
	// MaxValue is the largest representable number.
	MaxValue = 9999
)

// ErrValueOutOfRange indicates a value outside [MinValue, MaxValue].
var ErrValueOutOfRange = errors.New("glyph: value outside [1, 9999]")

// Place identifies one decimal position of a zero-padded 4-digit value.
type Place int

const (
	// Thousands is the most significant place; its quadrant mirrors both ways.
	Thousands Place = iota
	// Hundreds mirrors horizontally only.
	Hundreds
	// Tens mirrors vertically only.
	Tens
	// Ones is the canonical quadrant; no mirroring.
	Ones
)

// placement holds the mirror flags relocating a canonical stroke into one
// place's quadrant.
type placement struct {
	flipHorizontal bool
	flipVertical   bool
}

// placements is fixed by the numeral convention; never mutated after init.
var placements = [4]placement{
	Thousands: {flipHorizontal: true, flipVertical: true},
	Hundreds:  {flipHorizontal: true},
	Tens:      {flipVertical: true},
	Ones:      {},
}

// divisors extracts each place's digit: value / divisors[place] % 10.
var divisors = [4]int{
	Thousands: 1000,
	Hundreds:  100,
	Tens:      10,
	Ones:      1,
}

// Segment is one renderable line in output pixel space.
type Segment struct {
	From, To grid.Pixel
}

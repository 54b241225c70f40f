package stroke

import (
	"slices"

	"github.com/katalvlaran/cistrune/grid"
)

// Stroke is an ordered polyline in canonical grid coordinates. A stroke with
// n vertices renders as n-1 connected line segments.
type Stroke []grid.Point

// table is the canonical digit alphabet, authored in the ones quadrant.
// Index 0 is deliberately empty: the digit 0 contributes no stroke.
var table = [10]Stroke{
	1: {{X: 1, Y: 0}, {X: 2, Y: 0}},
	2: {{X: 1, Y: 1}, {X: 2, Y: 1}},
	3: {{X: 1, Y: 0}, {X: 2, Y: 1}},
	4: {{X: 1, Y: 1}, {X: 2, Y: 0}},
	5: {{X: 1, Y: 1}, {X: 2, Y: 0}, {X: 1, Y: 0}},
	6: {{X: 2, Y: 0}, {X: 2, Y: 1}},
	7: {{X: 1, Y: 0}, {X: 2, Y: 0}, {X: 2, Y: 1}},
	8: {{X: 1, Y: 1}, {X: 2, Y: 1}, {X: 2, Y: 0}},
	9: {{X: 1, Y: 1}, {X: 2, Y: 1}, {X: 2, Y: 0}, {X: 1, Y: 0}},
}

// ForDigit returns the canonical stroke for a digit in 1-9 and true, or
// (nil, false) for any other value. The returned slice is a copy; mutating
// it cannot alter the alphabet.
func ForDigit(d int) (Stroke, bool) {
	if d < 1 || d > 9 {
		return nil, false
	}

	return slices.Clone(table[d]), true
}

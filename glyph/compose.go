package glyph

import (
	"github.com/katalvlaran/cistrune/grid"
	"github.com/katalvlaran/cistrune/stroke"
)

// Validate reports whether value lies in the representable domain,
// returning ErrValueOutOfRange otherwise. Composition itself never errors;
// this helper exists for input layers that clamp or reject before calling.
func Validate(value int) error {
	if value < MinValue || value > MaxValue {
		return ErrValueOutOfRange
	}

	return nil
}

// Segments composes the digit segments of value: for each nonzero decimal
// digit, the digit's canonical stroke mirrored into its place's quadrant and
// projected to pixel space, one segment per consecutive vertex pair.
// Ordering is fixed: thousands→hundreds→tens→ones, vertex order within each
// place. An out-of-domain value yields nil.
func Segments(value int) []Segment {
	if Validate(value) != nil {
		return nil
	}

	var segs []Segment
	for place := Thousands; place <= Ones; place++ {
		s, ok := stroke.ForDigit(value / divisors[place] % 10)
		if !ok {
			continue
		}

		prev := relocate(s[0], placements[place])
		for _, p := range s[1:] {
			cur := relocate(p, placements[place])
			segs = append(segs, Segment{From: grid.Project(prev), To: grid.Project(cur)})
			prev = cur
		}
	}

	return segs
}

// Glyph returns the full renderable glyph for value: the Stem first, then
// the digit segments in place order. An out-of-domain value yields nil.
func Glyph(value int) []Segment {
	digits := Segments(value)
	if digits == nil {
		return nil
	}

	return append([]Segment{Stem()}, digits...)
}

// Stem returns the vertical backbone shared by every glyph, independent of
// digit content.
func Stem() Segment {
	return Segment{
		From: grid.Project(grid.Point{X: 1, Y: 0}),
		To:   grid.Project(grid.Point{X: 1, Y: 3}),
	}
}

// relocate mirrors a canonical point into a place's quadrant. The mirror
// order is fixed — horizontal first, then vertical. On the current 2×3 grid
// the two act on independent axes, but the order is part of the convention
// and must survive any future grid generalization.
func relocate(p grid.Point, pl placement) grid.Point {
	if pl.flipHorizontal {
		p = grid.ReflectHorizontal(p)
	}
	if pl.flipVertical {
		p = grid.ReflectVertical(p)
	}

	return p
}

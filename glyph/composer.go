package glyph

import "slices"

// Composer memoizes the most recent composition, avoiding recomputation
// when the same value is requested repeatedly (an editing UI redrawing on
// every keystroke, say). It is a pure convenience: observable output is
// identical to calling Glyph directly, and recomputation from scratch is
// always correct. Not safe for concurrent use; computation is cheap enough
// that concurrent callers should just call Glyph.
type Composer struct {
	lastValue int
	lastGlyph []Segment
}

// NewComposer returns an empty Composer; the first Compose call fills the
// cache.
func NewComposer() *Composer {
	return &Composer{}
}

// Compose returns the glyph for value, reusing the cached result when value
// matches the previous call. The returned slice is a copy the caller may
// retain or mutate freely.
func (c *Composer) Compose(value int) []Segment {
	if c.lastGlyph == nil || value != c.lastValue {
		c.lastValue = value
		c.lastGlyph = Glyph(value)
	}

	return slices.Clone(c.lastGlyph)
}

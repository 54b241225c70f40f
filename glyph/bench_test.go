package glyph_test

import (
	"testing"

	"github.com/katalvlaran/cistrune/glyph"
)

// BenchmarkGlyph measures full composition of a dense four-digit value.
func BenchmarkGlyph(b *testing.B) {
	for i := 0; i < b.N; i++ {
		_ = glyph.Glyph(9999)
	}
}

// BenchmarkComposer_Hit measures the memoized path on an unchanged value.
func BenchmarkComposer_Hit(b *testing.B) {
	c := glyph.NewComposer()
	c.Compose(9999)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = c.Compose(9999)
	}
}

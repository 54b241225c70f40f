// Package export serializes a composed glyph into an SVG document: a
// 140×200 canvas (viewBox "0 0 140 200") with every segment drawn as a
// black stroke of width 4 with round line caps. It also owns the export
// file-naming convention (rune-{value}.svg) and MIME type.
package export

// Package cistrune turns an integer in [1, 9999] into a single Cistercian
// numeral glyph — a shared vertical stem plus, per decimal place, a mirrored
// variant of a ones-digit stroke pattern — and exports it as a vector image.
//
// What's inside:
//
//	grid/    — the canonical 2×3 grid: points, the two placement mirrors,
//	           and the grid→pixel projection
//	stroke/  — the closed digit→polyline alphabet for digits 1-9
//	glyph/   — decimal places, per-place mirror selection, and the composer
//	           that assembles a value into an ordered list of line segments
//	export/  — SVG serialization (140×200 canvas, black 4px round-cap lines)
//	raster/  — supplemental PNG rendering of the same glyph
//
// Why cistrune?
//
//   - Deterministic – a glyph is fully determined by its value; two calls
//     with the same input produce identical segment lists
//   - Closed alphabet – the nine digit strokes are hand-authored constants,
//     never derived at runtime
//   - Pure core – composition is a total function over its domain; invalid
//     values yield an empty glyph, never a panic
//
// Quick example:
//
//	segs := glyph.Glyph(1993)       // stem + per-place digit segments
//	_ = export.WriteSVG(f, 1993)    // rune-1993.svg
//
// The command line front end lives in cmd/cistrune.
package cistrune

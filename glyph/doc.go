// Package glyph assembles a full Cistercian numeral glyph from an integer
// in [1, 9999]: the shared vertical stem plus, per nonzero decimal digit, a
// mirrored copy of that digit's canonical stroke, flattened into an ordered
// list of pixel-space line segments.
//
// What:
//
//   - Place — one of the four decimal positions, each bound to a fixed pair
//     of mirror flags (thousands: both; hundreds: horizontal; tens:
//     vertical; ones: none).
//   - Segments — the digit segments of a value, in place order
//     (thousands→ones), vertex order within each place.
//   - Glyph — Stem first, then Segments; the form exporters consume.
//   - Stem — the invariant vertical backbone, (1,0)→(1,3) projected.
//   - Composer — optional single-entry memoization over Glyph.
//
// Why:
//
//   - A glyph is fully determined by its value: no hidden state, no
//     randomness, bit-identical output on repeated calls. Consumers doing
//     visual diffing or snapshot testing can rely on the segment order.
//
// Errors:
//
//   - ErrValueOutOfRange: value outside [1, 9999]. Only Validate returns
//     it; Segments and Glyph signal the same condition with an empty list,
//     which is the defined behavior for invalid input reaching the
//     composer. Clamping belongs to the input layer, never to this package.
//
// Complexity: O(1) — at most four strokes of at most four vertices each.
package glyph

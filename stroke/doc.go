// Package stroke holds the closed, hand-authored alphabet mapping each
// decimal digit 1-9 to its canonical polyline on the grid.
//
// What:
//
//   - Stroke — an ordered vertex list, drawn as one line segment per
//     consecutive pair; every stroke has at least two vertices.
//   - ForDigit — lookup into the alphabet; digit 0 (and anything outside
//     1-9) has no stroke and yields (nil, false).
//
// The nine strokes are literal constants of the numeral convention, not a
// computed rule. They are never derived at runtime and lookups hand out
// copies, so the alphabet cannot drift once the process starts.
package stroke

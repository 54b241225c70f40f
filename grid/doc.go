// Package grid defines the canonical coordinate space of a cistrune glyph:
// a discrete 2×3 grid on which every digit stroke is authored, the two
// point reflections that relocate a stroke into a place-specific quadrant,
// and the linear projection from grid coordinates to output pixels.
//
// What:
//
//   - Point — a vertex on the canonical grid.
//   - ReflectHorizontal / ReflectVertical — involutions mirroring a point
//     across the grid's vertical / horizontal centerline.
//   - Project — scale-and-offset mapping into pixel space (Padding=20,
//     CellSize=50), total over every integer coordinate.
//
// Why:
//
//   - Keeping reflections and projection here, away from the stroke table
//     and the composer, makes each a pure function testable in isolation.
//
// Both reflections are their own inverse, and applying both yields the
// 180°-rotated point.
package grid

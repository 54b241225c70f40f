// Package raster renders a composed glyph onto an in-memory RGBA image,
// matching the SVG export's styling: a white 140×200 canvas with black
// 4px-wide round-capped strokes.
//
// Each segment is converted to fill geometry — a quad along the segment
// plus a disc at each endpoint for the round caps — and rasterised with
// golang.org/x/image/vector. All outlines share one winding direction, so
// overlaps between a quad and its caps accumulate instead of cancelling.
package raster

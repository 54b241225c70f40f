package grid_test

import (
	"testing"

	"github.com/katalvlaran/cistrune/grid"
)

// allPoints enumerates every vertex of the canonical grid, including the
// reflected range, so involution checks cover every coordinate a stroke
// can ever visit.
func allPoints() []grid.Point {
	var pts []grid.Point
	for x := 0; x <= grid.Width; x++ {
		for y := 0; y <= grid.Height; y++ {
			pts = append(pts, grid.Point{X: x, Y: y})
		}
	}

	return pts
}

// TestReflectHorizontal_Involution verifies that mirroring twice across the
// vertical centerline restores the original point.
func TestReflectHorizontal_Involution(t *testing.T) {
	for _, p := range allPoints() {
		if got := grid.ReflectHorizontal(grid.ReflectHorizontal(p)); got != p {
			t.Errorf("ReflectHorizontal twice on %v = %v; want %v", p, got, p)
		}
	}
}

// TestReflectVertical_Involution verifies that mirroring twice across the
// horizontal centerline restores the original point.
func TestReflectVertical_Involution(t *testing.T) {
	for _, p := range allPoints() {
		if got := grid.ReflectVertical(grid.ReflectVertical(p)); got != p {
			t.Errorf("ReflectVertical twice on %v = %v; want %v", p, got, p)
		}
	}
}

// TestReflectBoth_Rotation checks that composing both mirrors yields the
// 180°-rotated point, independent of application order on this grid.
func TestReflectBoth_Rotation(t *testing.T) {
	for _, p := range allPoints() {
		want := grid.Point{X: grid.Width - p.X, Y: grid.Height - p.Y}

		hv := grid.ReflectVertical(grid.ReflectHorizontal(p))
		if hv != want {
			t.Errorf("H then V on %v = %v; want %v", p, hv, want)
		}
		vh := grid.ReflectHorizontal(grid.ReflectVertical(p))
		if vh != want {
			t.Errorf("V then H on %v = %v; want %v", p, vh, want)
		}

		// Rotating twice (four reflections in total) is the identity.
		if back := grid.ReflectVertical(grid.ReflectHorizontal(hv)); back != p {
			t.Errorf("double rotation on %v = %v; want %v", p, back, p)
		}
	}
}

// TestProject verifies the fixed scale-and-offset mapping on grid corners.
func TestProject(t *testing.T) {
	cases := []struct {
		name string
		in   grid.Point
		want grid.Pixel
	}{
		{"Origin", grid.Point{X: 0, Y: 0}, grid.Pixel{X: 20, Y: 20}},
		{"StemTop", grid.Point{X: 1, Y: 0}, grid.Pixel{X: 70, Y: 20}},
		{"StemBottom", grid.Point{X: 1, Y: 3}, grid.Pixel{X: 70, Y: 170}},
		{"FarCorner", grid.Point{X: 2, Y: 3}, grid.Pixel{X: 120, Y: 170}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := grid.Project(tc.in); got != tc.want {
				t.Errorf("Project(%v) = %v; want %v", tc.in, got, tc.want)
			}
		})
	}
}

// TestCanvasExtents pins the derived output surface to the documented
// 140×200 canvas.
func TestCanvasExtents(t *testing.T) {
	if grid.CanvasWidth != 140 {
		t.Errorf("CanvasWidth = %d; want 140", grid.CanvasWidth)
	}
	if grid.CanvasHeight != 200 {
		t.Errorf("CanvasHeight = %d; want 200", grid.CanvasHeight)
	}
}

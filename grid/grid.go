package grid

// Canonical grid dimensions. Every digit stroke is authored inside
// [0, Width] × [0, Height]; reflections keep points inside the same range.
const (
	// Width is the horizontal extent of the canonical grid.
	Width = 2
	// Height is the vertical extent of the canonical grid.
	Height = 3
)

// Pixel-space projection constants.
const (
	// Padding is the pixel margin added on every side of the glyph.
	Padding = 20
	// CellSize is the pixel size of one grid cell.
	CellSize = 50
)

// Derived output canvas extents: Padding on both sides plus the projected grid.
const (
	// CanvasWidth is the pixel width of the output surface.
	CanvasWidth = 2*Padding + Width*CellSize
	// CanvasHeight is the pixel height of the output surface.
	CanvasHeight = 2*Padding + Height*CellSize
)

// Point is a vertex on the canonical (unreflected) grid.
type Point struct {
	X, Y int
}

// Pixel is a projected point in output pixel space.
type Pixel struct {
	X, Y int
}

// ReflectHorizontal mirrors p across the vertical centerline of the grid.
// It is an involution: ReflectHorizontal(ReflectHorizontal(p)) == p.
func ReflectHorizontal(p Point) Point {
	return Point{X: Width - p.X, Y: p.Y}
}

// ReflectVertical mirrors p across the horizontal centerline of the grid.
// It is an involution: ReflectVertical(ReflectVertical(p)) == p.
func ReflectVertical(p Point) Point {
	return Point{X: p.X, Y: Height - p.Y}
}

// Project maps a grid point to pixel space by a fixed scale and offset.
// Pure and total over all integer coordinates.
func Project(p Point) Pixel {
	return Pixel{
		X: Padding + p.X*CellSize,
		Y: Padding + p.Y*CellSize,
	}
}

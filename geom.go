// geom.go re-exports geometry types from pkg/geom.
// Any changes to pkg/geom types must be mirrored here.
package box

import "github.com/grindlemire/go-box/pkg/geom"

// Dimension represents an abstract size (pixels, cells, or percent).
type Dimension = geom.Dimension

// Unit specifies how a Dimension is interpreted.
type Unit = geom.Unit

const (
	UnitPixels  = geom.UnitPixels
	UnitCells   = geom.UnitCells
	UnitPercent = geom.UnitPercent
)

// SizeContext supplies the concrete values needed to resolve a Dimension.
type SizeContext = geom.SizeContext

// Edges represents abstract spacing on four sides (top, right, bottom, left).
type Edges = geom.Edges

// PixelEdges is an Edges resolved to concrete pixel values.
type PixelEdges = geom.PixelEdges

// Rect represents a rectangle in pixel coordinates.
type Rect = geom.Rect

// Point represents an (X, Y) pixel coordinate.
type Point = geom.Point

// Pixels creates a Dimension measured in device-independent pixels.
func Pixels(n float64) Dimension {
	return geom.Pixels(n)
}

// Cells creates a Dimension measured in terminal cell widths/heights.
func Cells(n float64) Dimension {
	return geom.Cells(n)
}

// Percent creates a Dimension representing a percentage of available space.
func Percent(p float64) Dimension {
	return geom.Percent(p)
}

// NewRect creates a new Rect with the given position and dimensions.
func NewRect(x, y, width, height float64) Rect {
	return geom.NewRect(x, y, width, height)
}

// EdgeAll creates Edges with the same dimension on all sides.
func EdgeAll(d Dimension) Edges {
	return geom.EdgeAll(d)
}

// EdgeSymmetric creates Edges with vertical (top/bottom) and horizontal
// (left/right) dimensions.
func EdgeSymmetric(v, h Dimension) Edges {
	return geom.EdgeSymmetric(v, h)
}

// EdgeTRBL creates Edges following CSS order: Top, Right, Bottom, Left.
func EdgeTRBL(t, r, b, l Dimension) Edges {
	return geom.EdgeTRBL(t, r, b, l)
}

package geom

// Edges represents abstract spacing on four sides of a box.
// Used for padding, margin, and border thickness.
type Edges struct {
	Top, Right, Bottom, Left Dimension
}

// EdgeAll creates Edges with the same dimension on all sides.
func EdgeAll(d Dimension) Edges {
	return Edges{Top: d, Right: d, Bottom: d, Left: d}
}

// EdgeSymmetric creates Edges with vertical (top/bottom) and horizontal
// (left/right) dimensions.
func EdgeSymmetric(v, h Dimension) Edges {
	return Edges{Top: v, Right: h, Bottom: v, Left: h}
}

// EdgeTRBL creates Edges following CSS order: Top, Right, Bottom, Left.
func EdgeTRBL(t, r, b, l Dimension) Edges {
	return Edges{Top: t, Right: r, Bottom: b, Left: l}
}

// IsZero returns true if all four sides are zero.
func (e Edges) IsZero() bool {
	return e.Top.IsZero() && e.Right.IsZero() && e.Bottom.IsZero() && e.Left.IsZero()
}

// Resolve converts all four sides to concrete pixels.
// Left and Right resolve against the horizontal context, Top and Bottom
// against the vertical context.
func (e Edges) Resolve(h, v SizeContext) PixelEdges {
	return PixelEdges{
		Top:    e.Top.Resolve(v),
		Right:  e.Right.Resolve(h),
		Bottom: e.Bottom.Resolve(v),
		Left:   e.Left.Resolve(h),
	}
}

// PixelEdges is an Edges resolved to concrete pixel values.
type PixelEdges struct {
	Top, Right, Bottom, Left float64
}

// Horizontal returns the sum of Left and Right.
func (e PixelEdges) Horizontal() float64 {
	return e.Left + e.Right
}

// Vertical returns the sum of Top and Bottom.
func (e PixelEdges) Vertical() float64 {
	return e.Top + e.Bottom
}

// IsZero returns true if all edge values are zero.
func (e PixelEdges) IsZero() bool {
	return e.Top == 0 && e.Right == 0 && e.Bottom == 0 && e.Left == 0
}

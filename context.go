package box

// Context carries the inputs for one Compute call: the target rectangle the
// element must lay itself out into, the sizing contexts for each axis, cell
// metrics, and the shaping service.
//
// Contexts are passed by value down the recursion; the Shaper is the only
// shared handle, and the single-threaded frame model serializes access to
// any cache it carries.
type Context struct {
	// Bounds is the rectangle the element lays itself out into. The
	// computed element's Bounds will originate at this rect's origin.
	Bounds Rect

	// Width and Height supply DPI, the available extent, and the cell size
	// for resolving horizontal and vertical dimensions respectively.
	Width  SizeContext
	Height SizeContext

	// Metrics is the pixel cell geometry for text sizing.
	Metrics CellMetrics

	// Shaper is the external shaping service.
	Shaper Shaper

	// ZIndex is the inherited z-index for this subtree.
	ZIndex int
}

// withBounds returns a copy of the context targeting a different rect.
func (ctx Context) withBounds(r Rect) Context {
	ctx.Bounds = r
	return ctx
}

// withLineHeight returns a copy with the vertical metrics rescaled.
// A scale of 0 leaves the context unchanged.
func (ctx Context) withLineHeight(scale float64) Context {
	if scale == 0 || scale == 1 {
		return ctx
	}
	ctx.Metrics = ctx.Metrics.Scale(scale)
	ctx.Height.PixelCell = ctx.Metrics.CellHeight
	return ctx
}

package geom

// Unit specifies how a Dimension is interpreted.
type Unit uint8

const (
	UnitPixels  Unit = iota // Device-independent pixels, scaled by DPI
	UnitCells               // Multiples of the cell size in pixels
	UnitPercent             // Percentage of the context's maximum extent
)

// Dimension represents an abstract size that resolves to concrete pixels
// only once a sizing context is known.
type Dimension struct {
	Amount float64
	Unit   Unit
}

// Pixels returns a Dimension measured in device-independent pixels.
func Pixels(n float64) Dimension {
	return Dimension{Amount: n, Unit: UnitPixels}
}

// Cells returns a Dimension measured in terminal cell widths/heights.
func Cells(n float64) Dimension {
	return Dimension{Amount: n, Unit: UnitCells}
}

// Percent returns a Dimension measured as a percentage of available space.
// The value is on a 0-100 scale (50.0 = 50%).
func Percent(p float64) Dimension {
	return Dimension{Amount: p, Unit: UnitPercent}
}

// SizeContext supplies the concrete values needed to resolve a Dimension
// along one axis.
type SizeContext struct {
	// DPI is the display density; pixel dimensions are authored at 96 DPI
	// and scaled by DPI/96.
	DPI float64

	// PixelMax is the available extent in pixels on this axis.
	// Percent dimensions scale against it.
	PixelMax float64

	// PixelCell is the cell size in pixels on this axis
	// (cell width for horizontal contexts, cell height for vertical).
	PixelCell float64
}

// Resolve converts the dimension to concrete pixels.
// No clamping happens here; negative or oversized results are the caller's
// concern (remaining-width computations clamp to zero where it matters).
func (d Dimension) Resolve(ctx SizeContext) float64 {
	switch d.Unit {
	case UnitPixels:
		dpi := ctx.DPI
		if dpi == 0 {
			dpi = 96
		}
		return d.Amount * dpi / 96
	case UnitCells:
		return d.Amount * ctx.PixelCell
	case UnitPercent:
		return ctx.PixelMax * d.Amount / 100
	default:
		return 0
	}
}

// IsZero returns true if the dimension resolves to zero in any context.
func (d Dimension) IsZero() bool {
	return d.Amount == 0
}

package box

// ComputedContent is the closed set of computed content kinds.
type ComputedContent interface {
	isComputedContent()
}

// ComputedText is a single shaped line of cells.
type ComputedText struct {
	Cells []ShapedCell
}

// ComputedLines is word-wrapped text partitioned into lines.
type ComputedLines struct {
	Lines      [][]ShapedCell
	LineHeight float64
}

// ComputedChildren holds child elements in paint order (stable-sorted by
// final z-index, ascending).
type ComputedChildren struct {
	Children []*ComputedElement
}

// ComputedPoly is a vector shape resolved to pixel dimensions.
type ComputedPoly struct {
	Poly   Poly
	Width  float64
	Height float64
}

func (*ComputedText) isComputedContent()     {}
func (*ComputedLines) isComputedContent()    {}
func (*ComputedChildren) isComputedContent() {}
func (*ComputedPoly) isComputedContent()     {}

// ComputedCorner is a corner polygon resolved to pixel dimensions.
type ComputedCorner struct {
	Poly   Poly
	Width  float64
	Height float64
}

// ComputedCorners holds the resolved per-corner polygons.
type ComputedCorners struct {
	TopLeft     *ComputedCorner
	TopRight    *ComputedCorner
	BottomLeft  *ComputedCorner
	BottomRight *ComputedCorner
}

// ComputedElement is the layout result for one Element: absolute pixel
// rectangles, resolved border widths, and paint-ready content.
//
// The rects nest: Bounds encloses BorderRect encloses PaddingRect encloses
// ContentRect, each inset by exactly the resolved margin, border, and
// padding. Translate preserves this invariant.
type ComputedElement struct {
	// Bounds is the outer rectangle including margin, in the absolute
	// coordinates the caller supplied via Context.Bounds.
	Bounds Rect

	// BorderRect is Bounds minus margin.
	BorderRect Rect

	// PaddingRect is BorderRect minus border thickness.
	PaddingRect Rect

	// ContentRect is PaddingRect minus padding.
	ContentRect Rect

	// Baseline is the vertical offset from the content rect top to the
	// text baseline.
	Baseline float64

	// ZIndex is the absolute z-index (ancestors' plus this element's own).
	ZIndex int

	// Border holds the resolved per-side border thickness in pixels.
	Border PixelEdges

	// Corners holds resolved corner polygons, if any were declared.
	Corners *ComputedCorners

	// Colors and HoverColors are carried through unresolved; resolution
	// happens at paint time against the inherited chain and hover state.
	Colors      Palette
	HoverColors *Palette

	// Clip is the absolute clip rectangle for text content, or nil.
	// It restricts painting only, never sizing.
	Clip *Rect

	Content ComputedContent
}

// Translate moves the element and all its descendants by (dx, dy),
// preserving the rect nesting invariant.
func (e *ComputedElement) Translate(dx, dy float64) {
	e.Bounds = e.Bounds.Translate(dx, dy)
	e.BorderRect = e.BorderRect.Translate(dx, dy)
	e.PaddingRect = e.PaddingRect.Translate(dx, dy)
	e.ContentRect = e.ContentRect.Translate(dx, dy)
	if e.Clip != nil {
		clip := e.Clip.Translate(dx, dy)
		e.Clip = &clip
	}
	if children, ok := e.Content.(*ComputedChildren); ok {
		for _, child := range children.Children {
			child.Translate(dx, dy)
		}
	}
}

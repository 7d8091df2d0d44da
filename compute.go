package box

import "sort"

// Compute lays out an element tree within ctx.Bounds and returns the
// computed geometry, a pure function of its inputs. It fails only when the
// shaping service fails (or violates its cluster contract); the failed
// subtree's result is abandoned and the error propagates to the caller.
//
// Coordinates work in one depth-first pass: children are laid out relative
// to the parent's content origin, and once the parent's own box geometry is
// known the whole child subtree is translated into the parent's absolute
// frame. No second top-down traversal is needed.
func Compute(ctx Context, e *Element) (*ComputedElement, error) {
	ctx = ctx.withLineHeight(e.lineHeight)

	margin := e.margin.Resolve(ctx.Width, ctx.Height)
	border := e.border.Resolve(ctx.Width, ctx.Height)
	padding := e.padding.Resolve(ctx.Width, ctx.Height)

	minWidth := resolveOrZero(e.minWidth, ctx.Width)
	minHeight := resolveOrZero(e.minHeight, ctx.Height)

	// Usable width for content: the element's own max width (if any)
	// clamped to the inherited bounds, additionally capped so content never
	// extends past the window's right edge. This cap is what keeps deeply
	// nested unconstrained content inside the viewport.
	avail := ctx.Bounds.Width
	if e.maxWidth != nil {
		avail = min(avail, e.maxWidth.Resolve(ctx.Width))
	}
	if ctx.Width.PixelMax > 0 {
		avail = min(avail, ctx.Width.PixelMax-ctx.Bounds.X)
	}
	widthBudget := max(0, avail-border.Horizontal()-padding.Horizontal())
	heightBudget := max(0, ctx.Bounds.Height-border.Vertical()-padding.Vertical())

	zindex := ctx.ZIndex + e.zindex

	var (
		contentWidth  float64
		contentHeight float64
		computed      ComputedContent
		err           error
	)

	switch c := e.content.(type) {
	case textContent:
		computed, contentWidth, contentHeight, err = computeText(ctx, e, c.text)
	case wrappedTextContent:
		computed, contentWidth, contentHeight, err = computeWrappedText(ctx, c.text, widthBudget)
	case childrenContent:
		computed, contentWidth, contentHeight, err = computeChildren(ctx, c.children, zindex, widthBudget, heightBudget, minWidth)
	case polyContent:
		pw := c.poly.Width.Resolve(ctx.Width)
		ph := c.poly.Height.Resolve(ctx.Height)
		computed = &ComputedPoly{Poly: c.poly.Poly, Width: pw, Height: ph}
		contentWidth, contentHeight = pw, ph
	default:
		// No content declared: size is driven entirely by constraints.
		computed = &ComputedChildren{}
	}
	if err != nil {
		return nil, err
	}

	contentWidth = max(contentWidth, minWidth)
	contentHeight = max(contentHeight, minHeight)

	// Build the nested rects outward from the content size, anchored at the
	// target rect's origin.
	contentRect := NewRect(
		ctx.Bounds.X+margin.Left+border.Left+padding.Left,
		ctx.Bounds.Y+margin.Top+border.Top+padding.Top,
		contentWidth, contentHeight,
	)
	paddingRect := contentRect.Outset(padding)
	borderRect := paddingRect.Outset(border)
	bounds := borderRect.Outset(margin)

	// Children were laid out relative to the content origin; shift the
	// whole subtree into this element's frame.
	if children, ok := computed.(*ComputedChildren); ok {
		for _, child := range children.Children {
			child.Translate(contentRect.X, contentRect.Y)
		}
	}

	out := &ComputedElement{
		Bounds:      bounds,
		BorderRect:  borderRect,
		PaddingRect: paddingRect,
		ContentRect: contentRect,
		Baseline:    ctx.Metrics.Baseline(),
		ZIndex:      zindex,
		Border:      border,
		Corners:     resolveCorners(e.corners, ctx),
		Colors:      e.colors,
		HoverColors: e.hover,
		Content:     computed,
	}

	if e.clip != nil {
		clip := contentRect
		if e.clip.Explicit {
			clip.Width = e.clip.Width.Resolve(ctx.Width)
			clip.Height = e.clip.Height.Resolve(ctx.Height)
		}
		out.Clip = &clip
	}

	return out, nil
}

// computeText shapes a single text run and accumulates glyph advances.
// The run is truncated at the element's max width only when one is
// explicitly declared; unconstrained text never breaks mid-run.
func computeText(ctx Context, e *Element, text string) (ComputedContent, float64, float64, error) {
	cells, err := shapeCells(ctx.Shaper, ctx.Metrics, text)
	if err != nil {
		return nil, 0, 0, err
	}

	limit := -1.0
	if e.maxWidth != nil {
		limit = min(e.maxWidth.Resolve(ctx.Width), ctx.Bounds.Width)
	}

	width := 0.0
	kept := cells
	for i, c := range cells {
		if limit >= 0 && width+c.Advance > limit {
			kept = cells[:i]
			break
		}
		width += c.Advance
	}

	return &ComputedText{Cells: kept}, width, ctx.Metrics.CellHeight, nil
}

// computeWrappedText word-wraps a run into the available width.
func computeWrappedText(ctx Context, text string, maxWidth float64) (ComputedContent, float64, float64, error) {
	lines, err := wrapCells(ctx.Shaper, ctx.Metrics, text, maxWidth)
	if err != nil {
		return nil, 0, 0, err
	}

	width := 0.0
	for _, line := range lines {
		width = max(width, cellsWidth(line))
	}
	height := ctx.Metrics.CellHeight * float64(len(lines))

	return &ComputedLines{Lines: lines, LineHeight: ctx.Metrics.CellHeight}, width, height, nil
}

// computeChildren runs the two-pass child layout.
//
// Pass 1 walks children in document order with a running block cursor:
// block children force a new row, inline children advance the horizontal
// cursor, and right-floated children accumulate into a separate float width
// instead of the cursor. Pass 2 repositions floats from the right edge
// inward (first float ends up rightmost), applies each child's vertical
// alignment within its row's final height, and stable-sorts the children by
// absolute z-index for painting. A single forward pass cannot place right
// floats: their x depends on the total float width of the row, which is
// only known once every sibling has been visited.
func computeChildren(ctx Context, children []*Element, zindex int, widthBudget, heightBudget, minWidth float64) (ComputedContent, float64, float64, error) {
	if len(children) == 0 {
		return &ComputedChildren{}, 0, 0, nil
	}

	computed := make([]*ComputedElement, len(children))
	rowOf := make([]int, len(children))
	var rowHeights []float64
	var floats []int

	x, y := 0.0, 0.0
	rowHeight := 0.0
	floatWidth := 0.0
	maxX := 0.0

	closeRow := func() {
		rowHeights = append(rowHeights, rowHeight)
		y += rowHeight
		rowHeight = 0
		x = 0
		floatWidth = 0
	}

	for i, child := range children {
		if child.display == DisplayBlock && (x > 0 || rowHeight > 0) {
			closeRow()
		}

		slot := NewRect(x, y, max(0, widthBudget-x), max(0, heightBudget-y))
		cc, err := Compute(ctx.withBounds(slot).withZIndex(zindex), child)
		if err != nil {
			return nil, 0, 0, err
		}
		computed[i] = cc
		rowOf[i] = len(rowHeights)

		if child.float == FloatRight {
			floats = append(floats, i)
			floatWidth += cc.Bounds.Width
		} else {
			x += cc.Bounds.Width
		}
		rowHeight = max(rowHeight, cc.Bounds.Height)
		maxX = max(maxX, x+floatWidth)

		if child.display == DisplayBlock {
			closeRow()
		}
	}
	closeRow()

	// The min-width clamp applies before float packing so floats align to
	// the edge the parent will actually occupy.
	contentWidth := max(min(maxX, widthBudget), minWidth)
	contentHeight := y

	// Pass 2: floats pack right-to-left against the final content width.
	rightEdge := contentWidth
	for _, i := range floats {
		cc := computed[i]
		cc.Translate(rightEdge-cc.Bounds.Right(), 0)
		rightEdge -= cc.Bounds.Width
	}

	// Vertical alignment within each row's final height.
	for i, child := range children {
		rh := rowHeights[rowOf[i]]
		switch child.valign {
		case AlignBottom:
			computed[i].Translate(0, rh-computed[i].Bounds.Height)
		case AlignMiddle:
			computed[i].Translate(0, (rh-computed[i].Bounds.Height)/2)
		}
	}

	// Paint order: ascending absolute z-index, insertion order for ties.
	sort.SliceStable(computed, func(a, b int) bool {
		return computed[a].ZIndex < computed[b].ZIndex
	})

	return &ComputedChildren{Children: computed}, contentWidth, contentHeight, nil
}

// withZIndex returns a copy of the context with the inherited z-index
// replaced.
func (ctx Context) withZIndex(z int) Context {
	ctx.ZIndex = z
	return ctx
}

// resolveOrZero resolves an optional dimension, treating nil as zero.
func resolveOrZero(d *Dimension, ctx SizeContext) float64 {
	if d == nil {
		return 0
	}
	return d.Resolve(ctx)
}

// resolveCorners converts declared corner polygons to pixel sizes.
func resolveCorners(c *Corners, ctx Context) *ComputedCorners {
	if c == nil {
		return nil
	}
	resolve := func(p *SizedPoly) *ComputedCorner {
		if p == nil {
			return nil
		}
		return &ComputedCorner{
			Poly:   p.Poly,
			Width:  p.Width.Resolve(ctx.Width),
			Height: p.Height.Resolve(ctx.Height),
		}
	}
	return &ComputedCorners{
		TopLeft:     resolve(c.TopLeft),
		TopRight:    resolve(c.TopRight),
		BottomLeft:  resolve(c.BottomLeft),
		BottomRight: resolve(c.BottomRight),
	}
}

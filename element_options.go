package box

// Option configures an Element.
type Option func(*Element)

// --- Flow Options ---

// WithDisplay sets the element's display mode.
func WithDisplay(d Display) Option {
	return func(e *Element) {
		e.display = d
	}
}

// WithBlock makes the element a block: it forces a new row and resets
// horizontal flow.
func WithBlock() Option {
	return func(e *Element) {
		e.display = DisplayBlock
	}
}

// WithFloat sets the element's float mode.
func WithFloat(f Float) Option {
	return func(e *Element) {
		e.float = f
	}
}

// WithVerticalAlign sets how the element is positioned within its row.
func WithVerticalAlign(a VerticalAlign) Option {
	return func(e *Element) {
		e.valign = a
	}
}

// WithZIndex sets the element's z-index relative to its ancestors.
func WithZIndex(z int) Option {
	return func(e *Element) {
		e.zindex = z
	}
}

// --- Spacing Options ---

// WithPadding sets uniform padding on all sides.
func WithPadding(d Dimension) Option {
	return func(e *Element) {
		e.padding = EdgeAll(d)
	}
}

// WithPaddingEdges sets padding per side.
func WithPaddingEdges(edges Edges) Option {
	return func(e *Element) {
		e.padding = edges
	}
}

// WithMargin sets uniform margin on all sides.
func WithMargin(d Dimension) Option {
	return func(e *Element) {
		e.margin = EdgeAll(d)
	}
}

// WithMarginEdges sets margin per side.
func WithMarginEdges(edges Edges) Option {
	return func(e *Element) {
		e.margin = edges
	}
}

// WithBorder sets uniform border thickness on all sides.
func WithBorder(d Dimension) Option {
	return func(e *Element) {
		e.border = EdgeAll(d)
	}
}

// WithBorderEdges sets border thickness per side.
func WithBorderEdges(edges Edges) Option {
	return func(e *Element) {
		e.border = edges
	}
}

// WithBorderCorners sets per-corner polygons for rounded-corner rendering.
func WithBorderCorners(c *Corners) Option {
	return func(e *Element) {
		e.corners = c
	}
}

// --- Color Options ---

// WithColors sets the element's full palette.
func WithColors(p Palette) Option {
	return func(e *Element) {
		e.colors = p
	}
}

// WithTextColor sets the text color spec.
func WithTextColor(cs ColorSpec) Option {
	return func(e *Element) {
		e.colors.Text = cs
	}
}

// WithBgColor sets the background color spec.
func WithBgColor(cs ColorSpec) Option {
	return func(e *Element) {
		e.colors.Bg = cs
	}
}

// WithBorderColor sets the border color specs.
func WithBorderColor(bc BorderColor) Option {
	return func(e *Element) {
		e.colors.Border = bc
	}
}

// WithHoverColors sets the palette substituted wholesale while the pointer
// is inside the element's bounds (and no other element has captured it).
func WithHoverColors(p Palette) Option {
	return func(e *Element) {
		e.hover = &p
	}
}

// --- Content Options ---

// WithText sets single-run text content. Unconstrained text is never
// wrapped or truncated; set a max width to bound it.
func WithText(text string) Option {
	return func(e *Element) {
		e.content = textContent{text: text}
	}
}

// WithWrappedText sets word-wrapping text content. Words wrap at the
// available width, falling back to grapheme-level breaks for words that
// cannot fit on a line of their own.
func WithWrappedText(text string) Option {
	return func(e *Element) {
		e.content = wrappedTextContent{text: text}
	}
}

// WithChildren sets container content. Children are laid out in insertion
// order and re-sorted by final z-index for painting.
func WithChildren(children ...*Element) Option {
	return func(e *Element) {
		e.content = childrenContent{children: children}
	}
}

// WithPoly sets vector shape content with the given declared size.
func WithPoly(p SizedPoly) Option {
	return func(e *Element) {
		e.content = polyContent{poly: p}
	}
}

// --- Constraint Options ---

// WithMaxWidth caps the element's content width. The cap also clamps
// against the remaining horizontal space in the current layout bounds.
func WithMaxWidth(d Dimension) Option {
	return func(e *Element) {
		e.maxWidth = &d
	}
}

// WithMinWidth sets the minimum content width.
func WithMinWidth(d Dimension) Option {
	return func(e *Element) {
		e.minWidth = &d
	}
}

// WithMinHeight sets the minimum content height.
func WithMinHeight(d Dimension) Option {
	return func(e *Element) {
		e.minHeight = &d
	}
}

// --- Clip Options ---

// WithClipToContent clips the element's text content to its computed
// content rect at paint time. Clipping never affects sizing.
func WithClipToContent() Option {
	return func(e *Element) {
		e.clip = &Clip{}
	}
}

// WithClipSize clips the element's text content to an explicit pixel box
// originating at the content rect origin.
func WithClipSize(width, height Dimension) Option {
	return func(e *Element) {
		e.clip = &Clip{Explicit: true, Width: width, Height: height}
	}
}

// --- Metrics Options ---

// WithLineHeight rescales the vertical cell metrics for this subtree.
// A value of 0 inherits the ambient metrics.
func WithLineHeight(scale float64) Option {
	return func(e *Element) {
		e.lineHeight = scale
	}
}

package box

// Display controls how an element participates in its parent's flow.
type Display uint8

const (
	// DisplayInline flows left-to-right within the current row (default).
	DisplayInline Display = iota
	// DisplayBlock forces a new row and resets horizontal flow.
	DisplayBlock
)

// Float removes an element from the main horizontal accumulation.
type Float uint8

const (
	// FloatNone keeps the element in normal flow (default).
	FloatNone Float = iota
	// FloatRight lays the element out against the right edge; later floats
	// pack further left of earlier ones.
	FloatRight
)

// VerticalAlign positions an element within its row's final height.
type VerticalAlign uint8

const (
	// AlignTop keeps the element at the row top (default).
	AlignTop VerticalAlign = iota
	// AlignBottom pushes the element to the row bottom.
	AlignBottom
	// AlignMiddle centers the element within the row height.
	AlignMiddle
)

// Poly is a closed vector shape. Points are in unit coordinates ([0,1] on
// both axes) and are scaled to the declared size when rasterized.
type Poly struct {
	Points []Point

	// Outline draws the shape stroked instead of filled.
	Outline bool
}

// SizedPoly pairs a polygon with its declared dimensions.
type SizedPoly struct {
	Poly   Poly
	Width  Dimension
	Height Dimension
}

// Corners declares optional per-corner polygons for rounded-corner
// rendering. A nil corner stays square. When any corner is present, the
// background and border are drawn via a nine-region decomposition instead
// of simple rectangles.
type Corners struct {
	TopLeft     *SizedPoly
	TopRight    *SizedPoly
	BottomLeft  *SizedPoly
	BottomRight *SizedPoly
}

// Clip declares a paint-time clip region for an element's text content.
// The zero value clips to the element's computed content rect; an explicit
// clip originates at the content rect origin with the given size.
type Clip struct {
	Explicit bool
	Width    Dimension
	Height   Dimension
}

// content is the closed set of element content kinds.
type content interface {
	isContent()
}

type textContent struct{ text string }

type wrappedTextContent struct{ text string }

type childrenContent struct{ children []*Element }

type polyContent struct{ poly SizedPoly }

func (textContent) isContent()        {}
func (wrappedTextContent) isContent() {}
func (childrenContent) isContent()    {}
func (polyContent) isContent()        {}

// Element is a declarative, style-annotated node in a layout tree.
// Elements are built once via New and treated as immutable afterwards;
// Compute never mutates them. An Element owns its children by value: the
// tree is a strict hierarchy with no shared or cyclic references.
type Element struct {
	display Display
	float   Float
	valign  VerticalAlign
	zindex  int

	padding Edges
	margin  Edges
	border  Edges
	corners *Corners

	colors Palette
	hover  *Palette

	// lineHeight rescales the vertical cell metrics for this subtree only;
	// 0 inherits the ambient metrics.
	lineHeight float64

	maxWidth  *Dimension
	minWidth  *Dimension
	minHeight *Dimension

	clip *Clip

	content content
}

// New creates a new Element with the given options.
// By default an element is inline, unfloated, inherits all colors, and has
// empty children content.
func New(opts ...Option) *Element {
	e := &Element{}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Display returns the element's display mode.
func (e *Element) Display() Display {
	return e.display
}

// ZIndex returns the element's relative z-index.
func (e *Element) ZIndex() int {
	return e.zindex
}

// Children returns the element's child list, or nil for non-container
// content.
func (e *Element) Children() []*Element {
	if c, ok := e.content.(childrenContent); ok {
		return c.children
	}
	return nil
}

// Text returns the element's text, for Text and WrappedText content.
func (e *Element) Text() string {
	switch c := e.content.(type) {
	case textContent:
		return c.text
	case wrappedTextContent:
		return c.text
	}
	return ""
}

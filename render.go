package box

// RenderContext carries the collaborators for one paint traversal.
type RenderContext struct {
	// Sink receives the emitted draw primitives.
	Sink QuadSink

	// Sprites supplies rasterized glyph/block/polygon sprites.
	Sprites SpriteSource

	// Hover is the current pointer position, or nil when there is no
	// pointer or another UI element has captured input.
	Hover *Point

	// Scheduler receives wake-up hints from animated colors; may be nil.
	Scheduler FrameScheduler

	// Tint is an optional HSV adjustment applied to every emitted quad.
	Tint *HSV
}

// Render paints a computed tree into the sink, depth-first with each parent
// painted before its children so descendants composite over the parent's
// own background and border. Siblings arrive pre-sorted by z-index from the
// compute phase.
func Render(rc *RenderContext, e *ComputedElement) error {
	return renderElement(rc, e, nil)
}

func renderElement(rc *RenderContext, e *ComputedElement, inherited *resolvedPalette) error {
	palette := e.Colors
	if e.HoverColors != nil && rc.Hover != nil && rc.Hover.In(e.Bounds) {
		palette = *e.HoverColors
	}
	resolved := resolvePalette(palette, inherited, rc.Scheduler)

	// 1. Background
	if e.Corners != nil {
		if err := renderCorneredBackground(rc, e, resolved.bg); err != nil {
			return err
		}
	} else if !resolved.bg.IsTransparent() {
		if err := fillQuad(rc, e.ZIndex, SubLayerBackground, e.PaddingRect, resolved.bg); err != nil {
			return err
		}
	}

	// 2. Border
	if err := renderBorder(rc, e, &resolved); err != nil {
		return err
	}

	// 3. Content
	switch c := e.Content.(type) {
	case *ComputedText:
		return renderCells(rc, e, resolved.text, c.Cells, e.ContentRect.Y, e.ContentRect.Height)

	case *ComputedLines:
		for i, line := range c.Lines {
			y := e.ContentRect.Y + float64(i)*c.LineHeight
			if err := renderCells(rc, e, resolved.text, line, y, c.LineHeight); err != nil {
				return err
			}
		}

	case *ComputedChildren:
		for _, child := range c.Children {
			if err := renderElement(rc, child, &resolved); err != nil {
				return err
			}
		}

	case *ComputedPoly:
		return renderPoly(rc, e, resolved.text, c)
	}

	return nil
}

// renderCells emits one textured quad per visible cell, advancing an
// x-cursor by each cell's advance. Clipping is manual: cells fully outside
// the element's clip rect are skipped, and partially visible cells have
// their texture coordinates re-sliced so only the visible slice is drawn,
// preserving subpixel rendering at clip edges.
func renderCells(rc *RenderContext, e *ComputedElement, fg ResolvedColor, cells []ShapedCell, y, lineHeight float64) error {
	x := e.ContentRect.X
	for _, cell := range cells {
		rect := NewRect(x, y, cell.Advance, lineHeight)
		x += cell.Advance

		var sprite *Sprite
		var err error
		if cell.Block != 0 {
			sprite, err = rc.Sprites.BlockSprite(cell.Block)
		} else {
			rect.X += cell.Glyph.XOffset
			rect.Y += cell.Glyph.YOffset
			sprite, err = rc.Sprites.GlyphSprite(cell.Glyph, cell.Text)
		}
		if err != nil {
			return err
		}
		if sprite == nil {
			// Blank cell (e.g. whitespace): advance only.
			continue
		}

		tex := sprite.Texture
		if e.Clip != nil {
			visible := rect.Intersect(*e.Clip)
			if visible.IsEmpty() {
				continue
			}
			if visible != rect {
				tex = sliceTexture(tex, rect, visible)
				rect = visible
			}
		}

		quad, err := rc.Sink.Allocate(e.ZIndex, SubLayerText)
		if err != nil {
			return err
		}
		quad.SetPosition(rect.X, rect.Y, rect.Right(), rect.Bottom())
		quad.SetTexture(tex)
		applyColor(quad, rc, fg)
	}
	return nil
}

// renderBorder emits up to four side rectangles. A side is skipped when its
// resolved thickness is zero or its color is fully transparent. When corner
// polygons are present the side extents stop short of the corner regions.
func renderBorder(rc *RenderContext, e *ComputedElement, resolved *resolvedPalette) error {
	b := e.Border
	if b.IsZero() {
		return nil
	}

	br := e.BorderRect
	tlw, tlh := cornerSize(e.Corners.topLeft())
	trw, trh := cornerSize(e.Corners.topRight())
	blw, blh := cornerSize(e.Corners.bottomLeft())
	brw, brh := cornerSize(e.Corners.bottomRight())

	sides := [4]struct {
		thickness float64
		rect      Rect
	}{
		{b.Top, NewRect(br.X+tlw, br.Y, br.Width-tlw-trw, b.Top)},
		{b.Right, NewRect(br.Right()-b.Right, br.Y+max(trh, b.Top), b.Right, br.Height-max(trh, b.Top)-max(brh, b.Bottom))},
		{b.Bottom, NewRect(br.X+blw, br.Bottom()-b.Bottom, br.Width-blw-brw, b.Bottom)},
		{b.Left, NewRect(br.X, br.Y+max(tlh, b.Top), b.Left, br.Height-max(tlh, b.Top)-max(blh, b.Bottom))},
	}

	for i, side := range sides {
		color := resolved.border[i]
		if side.thickness <= 0 || color.IsTransparent() || side.rect.IsEmpty() {
			continue
		}
		if err := fillQuad(rc, e.ZIndex, SubLayerBorder, side.rect, color); err != nil {
			return err
		}
	}
	return nil
}

// renderCorneredBackground paints a rounded background as four corner
// sprites plus five rectangular fill regions. The fixed decomposition
// avoids overdrawing the corner shapes; it is not a general clipping
// operation.
func renderCorneredBackground(rc *RenderContext, e *ComputedElement, bg ResolvedColor) error {
	if bg.IsTransparent() {
		return nil
	}

	pr := e.PaddingRect
	c := e.Corners
	tlw, tlh := cornerSize(c.topLeft())
	trw, trh := cornerSize(c.topRight())
	blw, blh := cornerSize(c.bottomLeft())
	brw, brh := cornerSize(c.bottomRight())

	corners := [4]struct {
		corner *ComputedCorner
		rect   Rect
	}{
		{c.topLeft(), NewRect(pr.X, pr.Y, tlw, tlh)},
		{c.topRight(), NewRect(pr.Right()-trw, pr.Y, trw, trh)},
		{c.bottomLeft(), NewRect(pr.X, pr.Bottom()-blh, blw, blh)},
		{c.bottomRight(), NewRect(pr.Right()-brw, pr.Bottom()-brh, brw, brh)},
	}
	for _, cr := range corners {
		if cr.corner == nil || cr.rect.IsEmpty() {
			continue
		}
		sprite, err := rc.Sprites.PolySprite(cr.corner.Poly, cr.corner.Width, cr.corner.Height)
		if err != nil {
			return err
		}
		quad, err := rc.Sink.Allocate(e.ZIndex, SubLayerBackground)
		if err != nil {
			return err
		}
		quad.SetPosition(cr.rect.X, cr.rect.Y, cr.rect.Right(), cr.rect.Bottom())
		if sprite != nil {
			quad.SetTexture(sprite.Texture)
			quad.SetGrayscale(true)
		}
		applyColor(quad, rc, bg)
	}

	topH := max(tlh, trh)
	bottomH := max(blh, brh)
	leftW := max(tlw, blw)
	rightW := max(trw, brw)

	fills := [5]Rect{
		NewRect(pr.X+tlw, pr.Y, pr.Width-tlw-trw, topH),
		NewRect(pr.X+blw, pr.Bottom()-bottomH, pr.Width-blw-brw, bottomH),
		NewRect(pr.X, pr.Y+topH, leftW, pr.Height-topH-bottomH),
		NewRect(pr.Right()-rightW, pr.Y+topH, rightW, pr.Height-topH-bottomH),
		NewRect(pr.X+leftW, pr.Y+topH, pr.Width-leftW-rightW, pr.Height-topH-bottomH),
	}
	for _, rect := range fills {
		if rect.IsEmpty() {
			continue
		}
		if err := fillQuad(rc, e.ZIndex, SubLayerBackground, rect, bg); err != nil {
			return err
		}
	}
	return nil
}

// renderPoly emits the element's vector shape in its resolved text color.
// The draw is skipped when the content rect is smaller than the declared
// polygon size, preventing degenerate quads.
func renderPoly(rc *RenderContext, e *ComputedElement, fg ResolvedColor, c *ComputedPoly) error {
	if c.Width <= 0 || c.Height <= 0 {
		return nil
	}
	if e.ContentRect.Width < c.Width || e.ContentRect.Height < c.Height {
		return nil
	}

	sprite, err := rc.Sprites.PolySprite(c.Poly, c.Width, c.Height)
	if err != nil {
		return err
	}
	quad, err := rc.Sink.Allocate(e.ZIndex, SubLayerText)
	if err != nil {
		return err
	}
	quad.SetPosition(e.ContentRect.X, e.ContentRect.Y, e.ContentRect.X+c.Width, e.ContentRect.Y+c.Height)
	if sprite != nil {
		quad.SetTexture(sprite.Texture)
		quad.SetGrayscale(true)
	}
	applyColor(quad, rc, fg)
	return nil
}

// fillQuad emits a solid rectangle.
func fillQuad(rc *RenderContext, zindex int, sub SubLayer, rect Rect, color ResolvedColor) error {
	quad, err := rc.Sink.Allocate(zindex, sub)
	if err != nil {
		return err
	}
	quad.SetPosition(rect.X, rect.Y, rect.Right(), rect.Bottom())
	applyColor(quad, rc, color)
	return nil
}

// applyColor sets a quad's color state from a resolved color.
func applyColor(quad Quad, rc *RenderContext, c ResolvedColor) {
	quad.SetFgColor(c.Effective())
	if c.Mix != 0 {
		quad.SetAltColorAndMix(c.Alt, c.Mix)
	}
	if rc.Tint != nil {
		quad.SetHSV(rc.Tint)
	}
}

// sliceTexture maps a visible sub-rectangle of a cell back onto the cell's
// texture region, proportionally on both axes.
func sliceTexture(t TextureRegion, full, visible Rect) TextureRegion {
	u := func(x float64) float64 {
		return t.X0 + (t.X1-t.X0)*(x-full.X)/full.Width
	}
	v := func(y float64) float64 {
		return t.Y0 + (t.Y1-t.Y0)*(y-full.Y)/full.Height
	}
	return TextureRegion{
		X0: u(visible.X), Y0: v(visible.Y),
		X1: u(visible.Right()), Y1: v(visible.Bottom()),
	}
}

// Corner accessors tolerate a nil receiver so square-cornered elements can
// share the border path.
func (c *ComputedCorners) topLeft() *ComputedCorner {
	if c == nil {
		return nil
	}
	return c.TopLeft
}

func (c *ComputedCorners) topRight() *ComputedCorner {
	if c == nil {
		return nil
	}
	return c.TopRight
}

func (c *ComputedCorners) bottomLeft() *ComputedCorner {
	if c == nil {
		return nil
	}
	return c.BottomLeft
}

func (c *ComputedCorners) bottomRight() *ComputedCorner {
	if c == nil {
		return nil
	}
	return c.BottomRight
}

// cornerSize returns a corner's pixel extent, or zeros for a nil corner.
func cornerSize(c *ComputedCorner) (w, h float64) {
	if c == nil {
		return 0, 0
	}
	return c.Width, c.Height
}

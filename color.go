// Package box provides a retained-mode box-model layout and render engine:
// a declarative Element tree is computed into absolute pixel geometry and
// painted as positioned, colored, textured quads.
package box

// Color is a straight-alpha linear RGBA color. Values are nominally in
// [0, 1] but are not clamped here.
type Color struct {
	R, G, B, A float64
}

// Transparent is the fully transparent color.
var Transparent = Color{}

// RGB returns an opaque color.
func RGB(r, g, b float64) Color {
	return Color{R: r, G: g, B: b, A: 1}
}

// RGBA returns a color with explicit alpha.
func RGBA(r, g, b, a float64) Color {
	return Color{R: r, G: g, B: b, A: a}
}

// WithAlpha returns the color with its alpha replaced.
func (c Color) WithAlpha(a float64) Color {
	c.A = a
	return c
}

// IsTransparent returns true if the color contributes nothing when drawn.
func (c Color) IsTransparent() bool {
	return c.A <= 0
}

// colorKind distinguishes the ColorSpec variants.
type colorKind uint8

const (
	colorInherit colorKind = iota
	colorSolid
	colorAnimated
)

// ColorSpec is a logical color that resolves at paint time: it either
// defers to an ancestor's resolved color, names a solid color, or animates
// between two colors under an external easing service.
// The zero value is Inherited.
type ColorSpec struct {
	kind    colorKind
	color   Color
	alt     Color
	easer   Easer
	oneShot bool
}

// Inherited returns a ColorSpec that defers to the nearest ancestor's
// resolved color. With no ancestor color available it resolves to fully
// transparent.
func Inherited() ColorSpec {
	return ColorSpec{kind: colorInherit}
}

// Solid returns a ColorSpec for a concrete color.
func Solid(c Color) ColorSpec {
	return ColorSpec{kind: colorSolid, color: c}
}

// Animated returns a ColorSpec that blends from color toward alt under the
// given easer. When oneShot is true the animation runs once and then
// resolves to the static color.
func Animated(color, alt Color, easer Easer, oneShot bool) ColorSpec {
	return ColorSpec{kind: colorAnimated, color: color, alt: alt, easer: easer, oneShot: oneShot}
}

// IsInherited returns true if the spec defers to an ancestor.
func (cs ColorSpec) IsInherited() bool {
	return cs.kind == colorInherit
}

// BorderColor holds a ColorSpec per border side.
type BorderColor struct {
	Top, Right, Bottom, Left ColorSpec
}

// UniformBorder returns a BorderColor with the same spec on all sides.
func UniformBorder(cs ColorSpec) BorderColor {
	return BorderColor{Top: cs, Right: cs, Bottom: cs, Left: cs}
}

// Palette is the full set of logical colors an element carries.
// The zero value inherits everything.
type Palette struct {
	Text   ColorSpec
	Bg     ColorSpec
	Border BorderColor
}

// ResolvedColor is a paint-ready color. When Mix is nonzero the sink blends
// Color toward Alt by Mix (animated colors). AlphaOverride is set for solid
// colors with non-opaque alpha so compositing can special-case flat
// translucency separately from the animated path; nil means no override.
type ResolvedColor struct {
	Color         Color
	Alt           Color
	Mix           float64
	AlphaOverride *float64
}

// Effective returns the color with any alpha override applied.
func (r ResolvedColor) Effective() Color {
	c := r.Color
	if r.AlphaOverride != nil {
		c.A = *r.AlphaOverride
	}
	return c
}

// IsTransparent returns true if drawing with this color has no effect.
func (r ResolvedColor) IsTransparent() bool {
	return r.Effective().IsTransparent() && r.Mix == 0
}

// resolve produces the paint-ready color for this spec.
// inherited is the ancestor's resolved color for the same slot (nil at the
// root). Animated specs query the easer and, on success, schedule the next
// frame wake-up; a completed one-shot falls back to the static color.
func (cs ColorSpec) resolve(inherited *ResolvedColor, sched FrameScheduler) ResolvedColor {
	switch cs.kind {
	case colorInherit:
		if inherited == nil {
			return ResolvedColor{}
		}
		return *inherited

	case colorAnimated:
		if cs.easer != nil {
			if mix, next, ok := cs.easer.Intensity(cs.oneShot); ok {
				if sched != nil {
					sched.ScheduleFrameAt(next)
				}
				return ResolvedColor{Color: cs.color, Alt: cs.alt, Mix: mix}
			}
		}
		// Animation complete (or no easer wired): behave like a solid color.
		return solidResolved(cs.color)

	default:
		return solidResolved(cs.color)
	}
}

func solidResolved(c Color) ResolvedColor {
	rc := ResolvedColor{Color: c, Alt: c}
	if c.A < 1 {
		a := c.A
		rc.AlphaOverride = &a
	}
	return rc
}

// ResolveText resolves the palette's text color against an inherited chain.
func (p Palette) ResolveText(inherited *ResolvedColor, sched FrameScheduler) ResolvedColor {
	return p.Text.resolve(inherited, sched)
}

// ResolveBg resolves the palette's background color against an inherited
// chain.
func (p Palette) ResolveBg(inherited *ResolvedColor, sched FrameScheduler) ResolvedColor {
	return p.Bg.resolve(inherited, sched)
}

// resolvedPalette carries an element's fully resolved colors; children that
// declare Inherited specs resolve against it.
type resolvedPalette struct {
	text   ResolvedColor
	bg     ResolvedColor
	border [4]ResolvedColor // top, right, bottom, left
}

// resolvePalette resolves every slot of a palette against the inherited
// chain.
func resolvePalette(p Palette, inherited *resolvedPalette, sched FrameScheduler) resolvedPalette {
	var it, ib *ResolvedColor
	var ibd [4]*ResolvedColor
	if inherited != nil {
		it = &inherited.text
		ib = &inherited.bg
		for i := range inherited.border {
			ibd[i] = &inherited.border[i]
		}
	}

	sides := [4]ColorSpec{p.Border.Top, p.Border.Right, p.Border.Bottom, p.Border.Left}
	out := resolvedPalette{
		text: p.Text.resolve(it, sched),
		bg:   p.Bg.resolve(ib, sched),
	}
	for i, side := range sides {
		out.border[i] = side.resolve(ibd[i], sched)
	}
	return out
}

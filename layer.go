package box

// SubLayer selects one of the three deterministic sub-layers inside a
// z-index bucket. The fixed ordering gives correct compositing without a
// depth buffer: backgrounds under borders under text.
type SubLayer uint8

const (
	// SubLayerBackground holds background fills and corner masks.
	SubLayerBackground SubLayer = iota
	// SubLayerBorder holds border sides and underlines.
	SubLayerBorder
	// SubLayerText holds glyph, block, and polygon sprites.
	SubLayerText
)

// HSV is a hue/saturation/value adjustment applied to a quad's sampled
// color. The identity transform is {0, 1, 1}.
type HSV struct {
	Hue        float64
	Saturation float64
	Value      float64
}

// Quad is one positioned draw primitive owned by the render sink.
// A quad with no texture set is a solid fill in its fg color.
type Quad interface {
	// SetPosition sets the quad's corners in window pixel coordinates.
	SetPosition(x0, y0, x1, y1 float64)

	// SetTexture sets the atlas region sampled across the quad.
	SetTexture(t TextureRegion)

	// SetFgColor sets the quad's color (multiplied with any texture).
	SetFgColor(c Color)

	// SetAltColorAndMix sets the animation target color and blend factor.
	SetAltColorAndMix(alt Color, mix float64)

	// SetHSV applies a color adjustment; nil resets to identity.
	SetHSV(h *HSV)

	// SetGrayscale marks the texture as a coverage mask rather than a
	// colored sprite.
	SetGrayscale(grayscale bool)
}

// QuadSink allocates draw primitives from z-index-selected layers. The
// paint phase is its only caller; implementations decide batching and
// submission.
type QuadSink interface {
	Allocate(zindex int, sub SubLayer) (Quad, error)
}

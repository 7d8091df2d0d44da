// Package raster is a software reference backend for the render engine.
//
// A Canvas implements both sides of the paint contract: it allocates quads
// into z-ordered layers and rasterizes glyph, block, and polygon sprites
// into a grayscale atlas. Flush composites the buffered quads into an RGBA
// image in layer order, which makes render output directly inspectable in
// tests and in the demo CLI without a GPU.
package raster

import (
	"fmt"
	"image"
	"image/color"
	"sort"
	"unicode"

	"github.com/lucasb-eyer/go-colorful"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
	"golang.org/x/image/vector"

	box "github.com/grindlemire/go-box"
)

const atlasSize = 1024

// Canvas buffers quads and owns the sprite atlas.
type Canvas struct {
	width  int
	height int

	cellW float64
	cellH float64

	atlas  *image.Alpha
	atlasX int
	atlasY int
	rowH   int

	sprites map[string]*box.Sprite

	quads []*quad
}

// New creates a canvas of the given pixel size with the given cell
// geometry for glyph and block sprites.
func New(width, height int, cellWidth, cellHeight float64) *Canvas {
	return &Canvas{
		width:   width,
		height:  height,
		cellW:   cellWidth,
		cellH:   cellHeight,
		atlas:   image.NewAlpha(image.Rect(0, 0, atlasSize, atlasSize)),
		sprites: make(map[string]*box.Sprite),
	}
}

// quad is a buffered draw primitive.
type quad struct {
	z   int
	sub box.SubLayer
	seq int

	x0, y0, x1, y1 float64
	tex            *box.TextureRegion
	fg             box.Color
	alt            box.Color
	mix            float64
	hsv            *box.HSV
	grayscale      bool
}

func (q *quad) SetPosition(x0, y0, x1, y1 float64) { q.x0, q.y0, q.x1, q.y1 = x0, y0, x1, y1 }
func (q *quad) SetTexture(t box.TextureRegion)    { q.tex = &t }
func (q *quad) SetFgColor(c box.Color)            { q.fg = c }
func (q *quad) SetAltColorAndMix(alt box.Color, mix float64) {
	q.alt = alt
	q.mix = mix
}
func (q *quad) SetHSV(h *box.HSV)         { q.hsv = h }
func (q *quad) SetGrayscale(g bool)       { q.grayscale = g }

// Allocate returns a fresh quad in the given layer. Allocation order breaks
// z-index ties, matching the engine's stable paint order.
func (c *Canvas) Allocate(zindex int, sub box.SubLayer) (box.Quad, error) {
	q := &quad{z: zindex, sub: sub, seq: len(c.quads)}
	c.quads = append(c.quads, q)
	return q, nil
}

// Reset discards all buffered quads, keeping the atlas warm.
func (c *Canvas) Reset() {
	c.quads = c.quads[:0]
}

// Flush composites the buffered quads onto a fresh image in (z-index,
// sub-layer, allocation) order and resets the quad buffer.
func (c *Canvas) Flush() *image.RGBA {
	sort.SliceStable(c.quads, func(a, b int) bool {
		qa, qb := c.quads[a], c.quads[b]
		if qa.z != qb.z {
			return qa.z < qb.z
		}
		if qa.sub != qb.sub {
			return qa.sub < qb.sub
		}
		return qa.seq < qb.seq
	})

	img := image.NewRGBA(image.Rect(0, 0, c.width, c.height))
	for _, q := range c.quads {
		c.composite(img, q)
	}
	c.Reset()
	return img
}

// composite draws one quad with source-over blending. Textured quads sample
// the atlas with nearest-neighbor lookup; untextured quads are solid fills.
func (c *Canvas) composite(img *image.RGBA, q *quad) {
	fg := q.fg
	if q.mix != 0 {
		a := colorful.Color{R: fg.R, G: fg.G, B: fg.B}
		b := colorful.Color{R: q.alt.R, G: q.alt.G, B: q.alt.B}
		blended := a.BlendRgb(b, q.mix)
		fg = box.Color{R: blended.R, G: blended.G, B: blended.B, A: fg.A + (q.alt.A-fg.A)*q.mix}
	}
	if q.hsv != nil {
		cf := colorful.Color{R: fg.R, G: fg.G, B: fg.B}
		h, s, v := cf.Hsv()
		cf = colorful.Hsv(h+q.hsv.Hue, clamp01(s*q.hsv.Saturation), clamp01(v*q.hsv.Value))
		fg.R, fg.G, fg.B = cf.R, cf.G, cf.B
	}

	px0, py0 := int(q.x0), int(q.y0)
	px1, py1 := int(q.x1+0.5), int(q.y1+0.5)
	if px0 < 0 {
		px0 = 0
	}
	if py0 < 0 {
		py0 = 0
	}
	if px1 > c.width {
		px1 = c.width
	}
	if py1 > c.height {
		py1 = c.height
	}

	for py := py0; py < py1; py++ {
		for px := px0; px < px1; px++ {
			coverage := 1.0
			if q.tex != nil {
				coverage = c.sample(q, px, py)
				if coverage == 0 {
					continue
				}
			}
			alpha := fg.A * coverage
			if alpha <= 0 {
				continue
			}
			blendOver(img, px, py, fg, alpha)
		}
	}
}

// sample returns the atlas coverage under a quad pixel.
func (c *Canvas) sample(q *quad, px, py int) float64 {
	w := q.x1 - q.x0
	h := q.y1 - q.y0
	if w <= 0 || h <= 0 {
		return 0
	}
	u := q.tex.X0 + (q.tex.X1-q.tex.X0)*((float64(px)+0.5-q.x0)/w)
	v := q.tex.Y0 + (q.tex.Y1-q.tex.Y0)*((float64(py)+0.5-q.y0)/h)
	ax := int(u * atlasSize)
	ay := int(v * atlasSize)
	if ax < 0 || ay < 0 || ax >= atlasSize || ay >= atlasSize {
		return 0
	}
	return float64(c.atlas.AlphaAt(ax, ay).A) / 255
}

func blendOver(img *image.RGBA, x, y int, fg box.Color, alpha float64) {
	dst := img.RGBAAt(x, y)
	inv := 1 - alpha
	img.SetRGBA(x, y, color.RGBA{
		R: uint8(clamp01(fg.R*alpha+float64(dst.R)/255*inv) * 255),
		G: uint8(clamp01(fg.G*alpha+float64(dst.G)/255*inv) * 255),
		B: uint8(clamp01(fg.B*alpha+float64(dst.B)/255*inv) * 255),
		A: uint8(clamp01(alpha+float64(dst.A)/255*inv) * 255),
	})
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// GlyphSprite rasterizes a cluster's first rune with the built-in bitmap
// face, centered in a cell. Whitespace clusters have no ink and return nil.
func (c *Canvas) GlyphSprite(info box.GlyphInfo, text string) (*box.Sprite, error) {
	if isBlank(text) {
		return nil, nil
	}

	key := "g:" + text
	if s, ok := c.sprites[key]; ok {
		return s, nil
	}

	w := int(info.Advance + 0.5)
	if w <= 0 {
		w = int(c.cellW + 0.5)
	}
	h := int(c.cellH + 0.5)
	rect, err := c.reserve(w, h)
	if err != nil {
		return nil, err
	}

	face := basicfont.Face7x13
	d := font.Drawer{
		Dst:  c.atlas,
		Src:  image.NewUniform(color.Alpha{A: 0xff}),
		Face: face,
		Dot: fixed.P(
			rect.Min.X+(w-face.Advance)/2,
			rect.Min.Y+(h+face.Ascent)/2-1,
		),
	}
	d.DrawString(firstRuneString(text))

	s := &box.Sprite{Texture: normalize(rect)}
	c.sprites[key] = s
	return s, nil
}

// BlockSprite rasterizes a box-drawing or block-element rune procedurally
// at exactly one cell, so terminal line art joins seamlessly regardless of
// the font.
func (c *Canvas) BlockSprite(block rune) (*box.Sprite, error) {
	key := "b:" + string(block)
	if s, ok := c.sprites[key]; ok {
		return s, nil
	}

	w := int(c.cellW + 0.5)
	h := int(c.cellH + 0.5)
	rect, err := c.reserve(w, h)
	if err != nil {
		return nil, err
	}
	drawBlock(c.atlas, rect, block)

	s := &box.Sprite{Texture: normalize(rect)}
	c.sprites[key] = s
	return s, nil
}

// PolySprite rasterizes a unit-coordinate polygon into a coverage mask at
// the requested pixel size. Outline polys are filled too; the reference
// backend does not stroke.
func (c *Canvas) PolySprite(poly box.Poly, width, height float64) (*box.Sprite, error) {
	if len(poly.Points) < 3 || width <= 0 || height <= 0 {
		return nil, nil
	}

	key := fmt.Sprintf("p:%v:%gx%g", poly.Points, width, height)
	if s, ok := c.sprites[key]; ok {
		return s, nil
	}

	w := int(width + 0.5)
	h := int(height + 0.5)
	rect, err := c.reserve(w, h)
	if err != nil {
		return nil, err
	}

	r := vector.NewRasterizer(w, h)
	first := poly.Points[0]
	r.MoveTo(float32(first.X*width), float32(first.Y*height))
	for _, p := range poly.Points[1:] {
		r.LineTo(float32(p.X*width), float32(p.Y*height))
	}
	r.ClosePath()
	r.Draw(c.atlas, rect, image.NewUniform(color.Alpha{A: 0xff}), image.Point{})

	s := &box.Sprite{Texture: normalize(rect)}
	c.sprites[key] = s
	return s, nil
}

// reserve claims a rectangle in the atlas with shelf packing.
func (c *Canvas) reserve(w, h int) (image.Rectangle, error) {
	if w > atlasSize || h > atlasSize {
		return image.Rectangle{}, fmt.Errorf("raster: sprite %dx%d exceeds atlas", w, h)
	}
	if c.atlasX+w > atlasSize {
		c.atlasX = 0
		c.atlasY += c.rowH
		c.rowH = 0
	}
	if c.atlasY+h > atlasSize {
		return image.Rectangle{}, fmt.Errorf("raster: atlas full")
	}
	rect := image.Rect(c.atlasX, c.atlasY, c.atlasX+w, c.atlasY+h)
	c.atlasX += w
	if h > c.rowH {
		c.rowH = h
	}
	return rect, nil
}

// normalize converts an atlas rectangle to normalized texture coordinates.
func normalize(rect image.Rectangle) box.TextureRegion {
	return box.TextureRegion{
		X0: float64(rect.Min.X) / atlasSize,
		Y0: float64(rect.Min.Y) / atlasSize,
		X1: float64(rect.Max.X) / atlasSize,
		Y1: float64(rect.Max.Y) / atlasSize,
	}
}

func isBlank(s string) bool {
	for _, r := range s {
		if !unicode.IsSpace(r) {
			return false
		}
	}
	return true
}

func firstRuneString(s string) string {
	for i := range s {
		if i > 0 {
			return s[:i]
		}
	}
	return s
}

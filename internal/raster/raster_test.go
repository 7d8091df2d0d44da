package raster

import (
	"testing"

	box "github.com/grindlemire/go-box"
)

func solidQuad(t *testing.T, c *Canvas, z int, sub box.SubLayer, x0, y0, x1, y1 float64, fg box.Color) {
	t.Helper()
	q, err := c.Allocate(z, sub)
	if err != nil {
		t.Fatalf("Allocate() error = %v", err)
	}
	q.SetPosition(x0, y0, x1, y1)
	q.SetFgColor(fg)
}

func TestCanvas_FlushCompositesInLayerOrder(t *testing.T) {
	c := New(10, 10, 8, 16)

	// Allocated out of order: the z=1 quad must still paint on top.
	solidQuad(t, c, 1, box.SubLayerBackground, 0, 0, 10, 10, box.RGB(0, 0, 1))
	solidQuad(t, c, 0, box.SubLayerBackground, 0, 0, 10, 10, box.RGB(1, 0, 0))

	img := c.Flush()
	got := img.RGBAAt(5, 5)
	if got.B != 255 || got.R != 0 {
		t.Errorf("pixel = %+v, want blue on top", got)
	}
}

func TestCanvas_SubLayerOrderWithinZ(t *testing.T) {
	c := New(10, 10, 8, 16)

	solidQuad(t, c, 0, box.SubLayerText, 0, 0, 10, 10, box.RGB(0, 1, 0))
	solidQuad(t, c, 0, box.SubLayerBackground, 0, 0, 10, 10, box.RGB(1, 0, 0))

	img := c.Flush()
	got := img.RGBAAt(5, 5)
	if got.G != 255 {
		t.Errorf("pixel = %+v, want text layer over background", got)
	}
}

func TestCanvas_AlphaBlends(t *testing.T) {
	c := New(10, 10, 8, 16)

	solidQuad(t, c, 0, box.SubLayerBackground, 0, 0, 10, 10, box.RGB(1, 0, 0))
	q, err := c.Allocate(0, box.SubLayerText)
	if err != nil {
		t.Fatalf("Allocate() error = %v", err)
	}
	q.SetPosition(0, 0, 10, 10)
	q.SetFgColor(box.RGBA(0, 0, 1, 0.5))

	img := c.Flush()
	got := img.RGBAAt(5, 5)
	if got.R < 100 || got.R > 155 || got.B < 100 || got.B > 155 {
		t.Errorf("pixel = %+v, want an even red/blue blend", got)
	}
}

func TestCanvas_AnimatedMixBlends(t *testing.T) {
	c := New(10, 10, 8, 16)

	q, err := c.Allocate(0, box.SubLayerBackground)
	if err != nil {
		t.Fatalf("Allocate() error = %v", err)
	}
	q.SetPosition(0, 0, 10, 10)
	q.SetFgColor(box.RGB(1, 0, 0))
	q.SetAltColorAndMix(box.RGB(0, 0, 1), 1)

	// Full mix lands on the alt color.
	img := c.Flush()
	got := img.RGBAAt(5, 5)
	if got.B != 255 || got.R != 0 {
		t.Errorf("pixel = %+v, want alt blue at mix 1", got)
	}
}

func TestCanvas_ResetDropsQuads(t *testing.T) {
	c := New(10, 10, 8, 16)
	solidQuad(t, c, 0, box.SubLayerBackground, 0, 0, 10, 10, box.RGB(1, 0, 0))
	c.Reset()

	img := c.Flush()
	if got := img.RGBAAt(5, 5); got.A != 0 {
		t.Errorf("pixel after Reset = %+v, want untouched", got)
	}
}

func TestCanvas_PolySpriteCoverage(t *testing.T) {
	c := New(20, 20, 8, 16)

	square := box.Poly{Points: []box.Point{
		{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 1, Y: 1}, {X: 0, Y: 1},
	}}
	sprite, err := c.PolySprite(square, 8, 8)
	if err != nil {
		t.Fatalf("PolySprite() error = %v", err)
	}
	if sprite == nil {
		t.Fatal("PolySprite() = nil, want sprite")
	}

	q, err := c.Allocate(0, box.SubLayerText)
	if err != nil {
		t.Fatalf("Allocate() error = %v", err)
	}
	q.SetPosition(0, 0, 8, 8)
	q.SetTexture(sprite.Texture)
	q.SetGrayscale(true)
	q.SetFgColor(box.RGB(1, 1, 1))

	img := c.Flush()
	if got := img.RGBAAt(4, 4); got.R != 255 {
		t.Errorf("center pixel = %+v, want full coverage", got)
	}
	if got := img.RGBAAt(15, 15); got.A != 0 {
		t.Errorf("outside pixel = %+v, want empty", got)
	}
}

func TestCanvas_PolySpriteDegenerate(t *testing.T) {
	c := New(20, 20, 8, 16)

	sprite, err := c.PolySprite(box.Poly{Points: []box.Point{{X: 0, Y: 0}}}, 8, 8)
	if err != nil {
		t.Fatalf("PolySprite() error = %v", err)
	}
	if sprite != nil {
		t.Errorf("PolySprite(two points) = %+v, want nil", sprite)
	}
}

func TestCanvas_GlyphSprite(t *testing.T) {
	c := New(20, 20, 8, 16)

	t.Run("whitespace has no ink", func(t *testing.T) {
		sprite, err := c.GlyphSprite(box.GlyphInfo{Advance: 8}, " ")
		if err != nil {
			t.Fatalf("GlyphSprite() error = %v", err)
		}
		if sprite != nil {
			t.Errorf("GlyphSprite(space) = %+v, want nil", sprite)
		}
	})

	t.Run("letter rasterizes and caches", func(t *testing.T) {
		first, err := c.GlyphSprite(box.GlyphInfo{Advance: 8}, "A")
		if err != nil {
			t.Fatalf("GlyphSprite() error = %v", err)
		}
		if first == nil {
			t.Fatal("GlyphSprite(A) = nil, want sprite")
		}

		second, err := c.GlyphSprite(box.GlyphInfo{Advance: 8}, "A")
		if err != nil {
			t.Fatalf("GlyphSprite() error = %v", err)
		}
		if second != first {
			t.Error("repeated GlyphSprite(A) not served from cache")
		}
	})
}

func TestCanvas_BlockSpriteFullBlock(t *testing.T) {
	c := New(20, 20, 8, 16)

	sprite, err := c.BlockSprite('█')
	if err != nil {
		t.Fatalf("BlockSprite() error = %v", err)
	}

	q, err := c.Allocate(0, box.SubLayerText)
	if err != nil {
		t.Fatalf("Allocate() error = %v", err)
	}
	q.SetPosition(0, 0, 8, 16)
	q.SetTexture(sprite.Texture)
	q.SetFgColor(box.RGB(1, 1, 1))

	img := c.Flush()
	for _, p := range [][2]int{{0, 0}, {4, 8}, {7, 15}} {
		if got := img.RGBAAt(p[0], p[1]); got.R != 255 {
			t.Errorf("pixel %v = %+v, want full coverage", p, got)
		}
	}
}

func TestCanvas_HSVAdjustsValue(t *testing.T) {
	c := New(10, 10, 8, 16)

	q, err := c.Allocate(0, box.SubLayerBackground)
	if err != nil {
		t.Fatalf("Allocate() error = %v", err)
	}
	q.SetPosition(0, 0, 10, 10)
	q.SetFgColor(box.RGB(1, 0, 0))
	q.SetHSV(&box.HSV{Hue: 0, Saturation: 1, Value: 0.5})

	img := c.Flush()
	got := img.RGBAAt(5, 5)
	if got.R < 120 || got.R > 135 {
		t.Errorf("pixel R = %d, want roughly half value", got.R)
	}
}

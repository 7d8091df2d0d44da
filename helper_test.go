package box

import "time"

// runeShaper shapes every rune as one glyph with a fixed advance. Cluster
// indices are the rune's byte offset, matching the shaping contract.
type runeShaper struct {
	advance float64
}

func (s runeShaper) Shape(text string) ([]GlyphInfo, error) {
	var glyphs []GlyphInfo
	for i := range text {
		glyphs = append(glyphs, GlyphInfo{Cluster: i, Advance: s.advance})
	}
	return glyphs, nil
}

// scriptShaper returns a fixed glyph stream regardless of input.
type scriptShaper struct {
	glyphs []GlyphInfo
	err    error
}

func (s scriptShaper) Shape(text string) ([]GlyphInfo, error) {
	return s.glyphs, s.err
}

// fakeEaser reports a scripted intensity.
type fakeEaser struct {
	mix  float64
	next time.Time
	ok   bool
}

func (f fakeEaser) Intensity(oneShot bool) (float64, time.Time, bool) {
	return f.mix, f.next, f.ok
}

// fakeScheduler records requested wake-ups.
type fakeScheduler struct {
	times []time.Time
}

func (f *fakeScheduler) ScheduleFrameAt(t time.Time) {
	f.times = append(f.times, t)
}

func testMetrics() CellMetrics {
	return CellMetrics{CellWidth: 10, CellHeight: 20, Descender: -4}
}

// testCtx builds a layout context over a w x h surface with 10x20 cells and
// a 10px-per-rune shaper.
func testCtx(w, h float64) Context {
	return Context{
		Bounds:  NewRect(0, 0, w, h),
		Width:   SizeContext{DPI: 96, PixelMax: w, PixelCell: 10},
		Height:  SizeContext{DPI: 96, PixelMax: h, PixelCell: 20},
		Metrics: testMetrics(),
		Shaper:  runeShaper{advance: 10},
	}
}

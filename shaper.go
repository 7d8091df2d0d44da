package box

import (
	"errors"
	"fmt"
	"time"
)

// ErrInvalidCluster reports a shaped glyph whose cluster index does not fall
// inside the backing string. This indicates a bug in the shaping layer's
// contract, not a recoverable runtime condition; it propagates like any other
// shaping failure.
var ErrInvalidCluster = errors.New("box: glyph cluster index outside source text")

// GlyphInfo describes one shaped glyph in a text run.
// Cluster is the byte offset of the glyph's source cluster within the run.
// Advance, XOffset, and YOffset are in pixels.
type GlyphInfo struct {
	Cluster int
	Advance float64
	XOffset float64
	YOffset float64
}

// Shaper converts a text run into positioned glyphs with pixel advances.
// Shaping and font fallback are external concerns; the layout engine only
// consumes cluster indices and advances.
type Shaper interface {
	Shape(text string) ([]GlyphInfo, error)
}

// CellMetrics carries the pixel cell geometry used for text sizing.
type CellMetrics struct {
	// CellWidth and CellHeight are the nominal cell size in pixels.
	CellWidth  float64
	CellHeight float64

	// Descender is the font descender in pixels relative to the baseline
	// (zero or negative).
	Descender float64
}

// Baseline returns the vertical offset from the top of a cell row to the
// text baseline.
func (m CellMetrics) Baseline() float64 {
	return m.CellHeight + m.Descender
}

// Scale returns metrics with the vertical values multiplied by the given
// line-height factor. CellWidth is unaffected.
func (m CellMetrics) Scale(lineHeight float64) CellMetrics {
	m.CellHeight *= lineHeight
	m.Descender *= lineHeight
	return m
}

// TextureRegion addresses a rectangular slice of the sink's texture atlas in
// normalized coordinates.
type TextureRegion struct {
	X0, Y0, X1, Y1 float64
}

// Sprite is a rasterized glyph, block, or polygon ready to be textured onto
// a quad.
type Sprite struct {
	Texture TextureRegion
}

// SpriteSource supplies rasterized sprites at paint time.
// A nil *Sprite with a nil error means the input has no visible ink
// (e.g. whitespace); the caller advances without emitting a quad.
type SpriteSource interface {
	// GlyphSprite returns the sprite for a shaped glyph. text is the source
	// cluster the glyph was shaped from.
	GlyphSprite(info GlyphInfo, text string) (*Sprite, error)

	// BlockSprite returns the sprite for a box-drawing/block rune, which is
	// always drawn at exactly one cell width.
	BlockSprite(block rune) (*Sprite, error)

	// PolySprite rasterizes a polygon at the given pixel size and returns
	// its sprite (a grayscale coverage mask).
	PolySprite(poly Poly, width, height float64) (*Sprite, error)
}

// Easer produces the current intensity of an animated color.
// ok is false once a one-shot animation has completed; callers then fall
// back to the static color. next is the wall-clock time at which the value
// will change again.
type Easer interface {
	Intensity(oneShot bool) (mix float64, next time.Time, ok bool)
}

// FrameScheduler receives wake-up hints from animated color resolution.
// The engine never blocks on it; the surrounding frame pump decides when to
// actually repaint.
type FrameScheduler interface {
	ScheduleFrameAt(t time.Time)
}

// ShapedCell is one paint-ready unit of text: either a shaped glyph or a
// block sprite drawn at fixed cell width.
type ShapedCell struct {
	// Text is the source cluster this cell was shaped from.
	Text string

	// Advance is the pixel width the cell occupies.
	Advance float64

	// Glyph holds the shaping result when Block is zero.
	Glyph GlyphInfo

	// Block is nonzero when the cell is a box-drawing rune rendered as a
	// fixed-width sprite, bypassing glyph metrics.
	Block rune
}

// IsBlockGlyph reports whether r is drawn as a fixed one-cell-wide sprite
// rather than a shaped glyph. Covers Box Drawing and Block Elements.
func IsBlockGlyph(r rune) bool {
	return r >= 0x2500 && r <= 0x259F
}

// shapeCells shapes a text run and converts the glyphs into paint-ready
// cells, mapping each glyph's cluster byte offset back to its source
// substring. Glyphs sharing a cluster (ligature expansion) merge into one
// cell with their advances summed.
func shapeCells(shaper Shaper, metrics CellMetrics, text string) ([]ShapedCell, error) {
	if text == "" {
		return nil, nil
	}

	glyphs, err := shaper.Shape(text)
	if err != nil {
		return nil, fmt.Errorf("shape %q: %w", text, err)
	}

	cells := make([]ShapedCell, 0, len(glyphs))
	for i := 0; i < len(glyphs); {
		g := glyphs[i]
		if g.Cluster < 0 || g.Cluster >= len(text) {
			return nil, fmt.Errorf("%w: cluster %d in run of %d bytes", ErrInvalidCluster, g.Cluster, len(text))
		}

		// Merge glyphs that share a cluster and find the cluster's end.
		advance := 0.0
		j := i
		for j < len(glyphs) && glyphs[j].Cluster == g.Cluster {
			advance += glyphs[j].Advance
			j++
		}
		end := len(text)
		if j < len(glyphs) {
			end = glyphs[j].Cluster
			if end <= g.Cluster || end > len(text) {
				return nil, fmt.Errorf("%w: cluster %d follows %d", ErrInvalidCluster, end, g.Cluster)
			}
		}
		cluster := text[g.Cluster:end]

		cell := ShapedCell{Text: cluster, Advance: advance, Glyph: g}
		if r := firstRune(cluster); IsBlockGlyph(r) {
			// Block glyphs occupy exactly one cell regardless of what the
			// font reports.
			cell.Block = r
			cell.Advance = metrics.CellWidth
		}
		cells = append(cells, cell)
		i = j
	}

	return cells, nil
}

// cellsWidth returns the summed advance of a cell run.
func cellsWidth(cells []ShapedCell) float64 {
	w := 0.0
	for _, c := range cells {
		w += c.Advance
	}
	return w
}

// firstRune returns the first rune of s, or 0 for an empty string.
func firstRune(s string) rune {
	for _, r := range s {
		return r
	}
	return 0
}

// Package shape provides a monospace text shaper.
//
// It segments text into grapheme clusters and assigns each cluster an
// advance of one or two cells based on its East Asian width. It performs no
// font lookups, which makes it deterministic and dependency-free at layout
// time; sprite rasterization happens separately at paint time.
package shape

import (
	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"

	box "github.com/grindlemire/go-box"
)

// Monospace shapes text on a fixed cell grid.
type Monospace struct {
	cellWidth float64
	tabWidth  int
}

// Option configures a Monospace shaper.
type Option func(*Monospace)

// WithTabWidth sets the number of cells a tab advances. Defaults to 4.
func WithTabWidth(cells int) Option {
	return func(m *Monospace) {
		m.tabWidth = cells
	}
}

// New creates a monospace shaper for the given cell width in pixels.
func New(cellWidth float64, opts ...Option) *Monospace {
	m := &Monospace{
		cellWidth: cellWidth,
		tabWidth:  4,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Shape segments text into grapheme clusters and returns one glyph per
// cluster. Wide (East Asian full-width) clusters advance two cells, tabs
// advance the configured tab width, and zero-width clusters advance zero.
func (m *Monospace) Shape(text string) ([]box.GlyphInfo, error) {
	if text == "" {
		return nil, nil
	}

	glyphs := make([]box.GlyphInfo, 0, len(text))
	gr := uniseg.NewGraphemes(text)
	for gr.Next() {
		from, _ := gr.Positions()
		cluster := gr.Str()

		cells := runewidth.StringWidth(cluster)
		if cluster == "\t" {
			cells = m.tabWidth
		}

		glyphs = append(glyphs, box.GlyphInfo{
			Cluster: from,
			Advance: float64(cells) * m.cellWidth,
		})
	}
	return glyphs, nil
}

// CellWidth returns the shaper's cell width in pixels.
func (m *Monospace) CellWidth() float64 {
	return m.cellWidth
}

// Package scene loads declarative layout scenes from TOML files and builds
// element trees from them. It backs the demo CLI; the engine itself never
// reads scene files.
package scene

import (
	"fmt"

	"github.com/BurntSushi/toml"
	"github.com/charmbracelet/log"
	"github.com/lucasb-eyer/go-colorful"

	box "github.com/grindlemire/go-box"
	"github.com/grindlemire/go-box/pkg/shape"
)

// Scene is the top-level TOML document: a window description plus a list of
// root elements.
type Scene struct {
	Window  Window `toml:"window"`
	Element []Node `toml:"element"`
}

// Window describes the target surface and cell geometry.
type Window struct {
	Width      int     `toml:"width"`
	Height     int     `toml:"height"`
	DPI        float64 `toml:"dpi"`
	CellWidth  float64 `toml:"cell_width"`
	CellHeight float64 `toml:"cell_height"`
	Descender  float64 `toml:"descender"`
}

// Node is one declarative element in the scene file. Children nest
// recursively.
type Node struct {
	Display string  `toml:"display"`
	Float   string  `toml:"float"`
	VAlign  string  `toml:"valign"`
	ZIndex  int     `toml:"zindex"`
	Text    string  `toml:"text"`
	Wrap    bool    `toml:"wrap"`
	Padding float64 `toml:"padding"`
	Margin  float64 `toml:"margin"`
	Border  float64 `toml:"border"`

	Fg          string `toml:"fg"`
	Bg          string `toml:"bg"`
	BorderColor string `toml:"border_color"`
	HoverFg     string `toml:"hover_fg"`
	HoverBg     string `toml:"hover_bg"`

	MinWidth   float64 `toml:"min_width"`
	MaxWidth   float64 `toml:"max_width"`
	MinHeight  float64 `toml:"min_height"`
	LineHeight float64 `toml:"line_height"`
	Clip       bool    `toml:"clip"`

	Children []Node `toml:"children"`
}

// Load reads and validates a scene file.
func Load(path string) (*Scene, error) {
	var s Scene
	if _, err := toml.DecodeFile(path, &s); err != nil {
		return nil, fmt.Errorf("decode scene %s: %w", path, err)
	}

	if s.Window.Width <= 0 {
		s.Window.Width = 800
	}
	if s.Window.Height <= 0 {
		s.Window.Height = 600
	}
	if s.Window.DPI <= 0 {
		s.Window.DPI = 96
	}
	if s.Window.CellWidth <= 0 {
		s.Window.CellWidth = 8
	}
	if s.Window.CellHeight <= 0 {
		s.Window.CellHeight = 16
	}
	if s.Window.Descender > 0 {
		s.Window.Descender = -s.Window.Descender
	}
	if s.Window.Descender == 0 {
		s.Window.Descender = -3
	}

	return &s, nil
}

// Context builds a layout context spanning the scene's window.
func (w Window) Context() box.Context {
	return box.Context{
		Bounds: box.NewRect(0, 0, float64(w.Width), float64(w.Height)),
		Width: box.SizeContext{
			DPI:       w.DPI,
			PixelMax:  float64(w.Width),
			PixelCell: w.CellWidth,
		},
		Height: box.SizeContext{
			DPI:       w.DPI,
			PixelMax:  float64(w.Height),
			PixelCell: w.CellHeight,
		},
		Metrics: box.CellMetrics{
			CellWidth:  w.CellWidth,
			CellHeight: w.CellHeight,
			Descender:  w.Descender,
		},
		Shaper: shape.New(w.CellWidth),
	}
}

// Root builds the scene's element tree. Nodes with invalid attributes are
// logged and kept with the bad attribute skipped; the scene as a whole
// always produces a tree.
func (s *Scene) Root(logger *log.Logger) *box.Element {
	children := make([]*box.Element, 0, len(s.Element))
	for i := range s.Element {
		children = append(children, build(&s.Element[i], logger))
	}
	return box.New(box.WithBlock(), box.WithChildren(children...))
}

// ComputeTrees lays out each top-level scene element as an independent
// tree, stacked vertically. A tree whose compute fails is logged and
// dropped; the surviving trees still lay out and can be painted.
func (s *Scene) ComputeTrees(ctx box.Context, logger *log.Logger) []*box.ComputedElement {
	var out []*box.ComputedElement
	y := 0.0
	for i := range s.Element {
		el := build(&s.Element[i], logger)

		treeCtx := ctx
		treeCtx.Bounds = box.NewRect(
			ctx.Bounds.X, ctx.Bounds.Y+y,
			ctx.Bounds.Width, max(0, ctx.Bounds.Height-y),
		)

		c, err := box.Compute(treeCtx, el)
		if err != nil {
			logger.Warn("skipping scene element", "index", i, "err", err)
			continue
		}
		out = append(out, c)
		y += c.Bounds.Height
	}
	return out
}

func build(n *Node, logger *log.Logger) *box.Element {
	var opts []box.Option

	switch n.Display {
	case "", "inline":
	case "block":
		opts = append(opts, box.WithBlock())
	default:
		logger.Warn("unknown display mode, using inline", "display", n.Display)
	}

	switch n.Float {
	case "", "none":
	case "right":
		opts = append(opts, box.WithFloat(box.FloatRight))
	default:
		logger.Warn("unknown float mode, ignoring", "float", n.Float)
	}

	switch n.VAlign {
	case "", "top":
	case "bottom":
		opts = append(opts, box.WithVerticalAlign(box.AlignBottom))
	case "middle":
		opts = append(opts, box.WithVerticalAlign(box.AlignMiddle))
	default:
		logger.Warn("unknown vertical alignment, ignoring", "valign", n.VAlign)
	}

	if n.ZIndex != 0 {
		opts = append(opts, box.WithZIndex(n.ZIndex))
	}
	if n.Padding > 0 {
		opts = append(opts, box.WithPadding(box.Pixels(n.Padding)))
	}
	if n.Margin > 0 {
		opts = append(opts, box.WithMargin(box.Pixels(n.Margin)))
	}
	if n.Border > 0 {
		opts = append(opts, box.WithBorder(box.Pixels(n.Border)))
	}
	if n.MinWidth > 0 {
		opts = append(opts, box.WithMinWidth(box.Pixels(n.MinWidth)))
	}
	if n.MaxWidth > 0 {
		opts = append(opts, box.WithMaxWidth(box.Pixels(n.MaxWidth)))
	}
	if n.MinHeight > 0 {
		opts = append(opts, box.WithMinHeight(box.Pixels(n.MinHeight)))
	}
	if n.LineHeight > 0 {
		opts = append(opts, box.WithLineHeight(n.LineHeight))
	}
	if n.Clip {
		opts = append(opts, box.WithClipToContent())
	}

	if cs, ok := parseColor(n.Fg, logger); ok {
		opts = append(opts, box.WithTextColor(cs))
	}
	if cs, ok := parseColor(n.Bg, logger); ok {
		opts = append(opts, box.WithBgColor(cs))
	}
	if cs, ok := parseColor(n.BorderColor, logger); ok {
		opts = append(opts, box.WithBorderColor(box.UniformBorder(cs)))
	}
	if n.HoverFg != "" || n.HoverBg != "" {
		var hover box.Palette
		if cs, ok := parseColor(n.HoverFg, logger); ok {
			hover.Text = cs
		}
		if cs, ok := parseColor(n.HoverBg, logger); ok {
			hover.Bg = cs
		}
		opts = append(opts, box.WithHoverColors(hover))
	}

	switch {
	case len(n.Children) > 0:
		children := make([]*box.Element, 0, len(n.Children))
		for i := range n.Children {
			children = append(children, build(&n.Children[i], logger))
		}
		opts = append(opts, box.WithChildren(children...))
	case n.Text != "" && n.Wrap:
		opts = append(opts, box.WithWrappedText(n.Text))
	case n.Text != "":
		opts = append(opts, box.WithText(n.Text))
	}

	return box.New(opts...)
}

// parseColor converts a scene color string to a spec. Empty means inherit
// (reported as not-set so the element default applies); "transparent" and
// hex colors map to solids. Invalid values are logged and skipped.
func parseColor(s string, logger *log.Logger) (box.ColorSpec, bool) {
	switch s {
	case "":
		return box.ColorSpec{}, false
	case "transparent":
		return box.Solid(box.Transparent), true
	}

	cf, err := colorful.Hex(s)
	if err != nil {
		logger.Warn("invalid color, skipping", "color", s, "err", err)
		return box.ColorSpec{}, false
	}
	return box.Solid(box.RGB(cf.R, cf.G, cf.B)), true
}

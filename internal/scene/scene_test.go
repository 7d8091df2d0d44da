package scene

import (
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/log"

	box "github.com/grindlemire/go-box"
)

// pickyShaper shapes one glyph per rune but refuses any text containing
// the bad substring.
type pickyShaper struct{ bad string }

func (p pickyShaper) Shape(text string) ([]box.GlyphInfo, error) {
	if p.bad != "" && strings.Contains(text, p.bad) {
		return nil, errors.New("cannot shape text")
	}
	var glyphs []box.GlyphInfo
	for i := range text {
		glyphs = append(glyphs, box.GlyphInfo{Cluster: i, Advance: 10})
	}
	return glyphs, nil
}

func writeScene(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "scene.toml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write scene: %v", err)
	}
	return path
}

func discard() *log.Logger {
	return log.New(io.Discard)
}

func TestLoad_Defaults(t *testing.T) {
	s, err := Load(writeScene(t, ""))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if s.Window.Width != 800 || s.Window.Height != 600 {
		t.Errorf("window = %dx%d, want 800x600", s.Window.Width, s.Window.Height)
	}
	if s.Window.DPI != 96 {
		t.Errorf("DPI = %v, want 96", s.Window.DPI)
	}
	if s.Window.CellWidth != 8 || s.Window.CellHeight != 16 {
		t.Errorf("cell = %vx%v, want 8x16", s.Window.CellWidth, s.Window.CellHeight)
	}
	if s.Window.Descender >= 0 {
		t.Errorf("Descender = %v, want negative", s.Window.Descender)
	}
}

func TestLoad_Missing(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.toml")); err == nil {
		t.Error("Load(missing) error = nil, want error")
	}
}

func TestScene_RootBuildsTree(t *testing.T) {
	s, err := Load(writeScene(t, `
[window]
width = 100
height = 50

[[element]]
display = "block"
text = "title"

[[element]]
  [[element.children]]
  text = "left"
  [[element.children]]
  text = "right"
  float = "right"
`))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	root := s.Root(discard())
	children := root.Children()
	if len(children) != 2 {
		t.Fatalf("root children = %d, want 2", len(children))
	}
	if children[0].Display() != box.DisplayBlock {
		t.Error("first element not block")
	}
	if children[0].Text() != "title" {
		t.Errorf("first element text = %q, want \"title\"", children[0].Text())
	}
	if got := children[1].Children(); len(got) != 2 {
		t.Errorf("nested children = %d, want 2", len(got))
	}
}

func TestScene_ComputesEndToEnd(t *testing.T) {
	s, err := Load(writeScene(t, `
[window]
width = 100
height = 100
cell_width = 10
cell_height = 20

[[element]]
text = "hello"
padding = 4
`))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	computed, err := box.Compute(s.Window.Context(), s.Root(discard()))
	if err != nil {
		t.Fatalf("Compute() error = %v", err)
	}

	children := computed.Content.(*box.ComputedChildren).Children
	if len(children) != 1 {
		t.Fatalf("computed children = %d, want 1", len(children))
	}
	// 5 cells of 10px plus 4px padding per side.
	if children[0].Bounds.Width != 58 {
		t.Errorf("element width = %v, want 58", children[0].Bounds.Width)
	}
}

func TestScene_ComputeTreesStacksVertically(t *testing.T) {
	s, err := Load(writeScene(t, `
[window]
width = 100
height = 100
cell_width = 10
cell_height = 20

[[element]]
text = "aa"

[[element]]
text = "bb"
`))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	ctx := s.Window.Context()
	ctx.Shaper = pickyShaper{}
	trees := s.ComputeTrees(ctx, discard())
	if len(trees) != 2 {
		t.Fatalf("trees = %d, want 2", len(trees))
	}
	if trees[0].Bounds.Y != 0 {
		t.Errorf("first tree Y = %v, want 0", trees[0].Bounds.Y)
	}
	if trees[1].Bounds.Y != trees[0].Bounds.Height {
		t.Errorf("second tree Y = %v, want %v", trees[1].Bounds.Y, trees[0].Bounds.Height)
	}
}

func TestScene_ComputeTreesSkipsFailingTree(t *testing.T) {
	s, err := Load(writeScene(t, `
[window]
width = 100
height = 100
cell_width = 10
cell_height = 20

[[element]]
text = "bad glyphs"

[[element]]
text = "ok"
`))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	ctx := s.Window.Context()
	ctx.Shaper = pickyShaper{bad: "bad"}
	trees := s.ComputeTrees(ctx, discard())
	if len(trees) != 1 {
		t.Fatalf("trees = %d, want the failing tree dropped", len(trees))
	}

	text, ok := trees[0].Content.(*box.ComputedText)
	if !ok {
		t.Fatalf("surviving tree content = %T, want text", trees[0].Content)
	}
	if got := len(text.Cells); got != 2 {
		t.Errorf("surviving tree cells = %d, want 2", got)
	}
	// The survivor still lays out at the window origin.
	if trees[0].Bounds.Y != 0 {
		t.Errorf("surviving tree Y = %v, want 0", trees[0].Bounds.Y)
	}
}

func TestParseColor(t *testing.T) {
	type tc struct {
		input string
		ok    bool
	}

	tests := map[string]tc{
		"empty inherits":    {"", false},
		"transparent":       {"transparent", true},
		"hex":               {"#336699", true},
		"invalid is logged": {"notacolor", false},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			_, ok := parseColor(tt.input, discard())
			if ok != tt.ok {
				t.Errorf("parseColor(%q) ok = %v, want %v", tt.input, ok, tt.ok)
			}
		})
	}
}

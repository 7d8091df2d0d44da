package box

import "testing"

// checkShifted walks two identically-shaped computed trees and verifies
// every rect in after is before's rect moved by exactly (dx, dy).
func checkShifted(t *testing.T, before, after *ComputedElement, dx, dy float64, path string) {
	t.Helper()

	rects := []struct {
		name string
		b, a Rect
	}{
		{"Bounds", before.Bounds, after.Bounds},
		{"BorderRect", before.BorderRect, after.BorderRect},
		{"PaddingRect", before.PaddingRect, after.PaddingRect},
		{"ContentRect", before.ContentRect, after.ContentRect},
	}
	for _, r := range rects {
		if want := r.b.Translate(dx, dy); r.a != want {
			t.Errorf("%s %s = %v, want %v", path, r.name, r.a, want)
		}
	}

	switch {
	case before.Clip == nil && after.Clip != nil:
		t.Errorf("%s Clip = %v, want nil", path, after.Clip)
	case before.Clip != nil && after.Clip == nil:
		t.Errorf("%s Clip = nil, want shifted clip", path)
	case before.Clip != nil:
		if want := before.Clip.Translate(dx, dy); *after.Clip != want {
			t.Errorf("%s Clip = %v, want %v", path, *after.Clip, want)
		}
	}

	if !after.Bounds.ContainsRect(after.BorderRect) ||
		!after.BorderRect.ContainsRect(after.PaddingRect) ||
		!after.PaddingRect.ContainsRect(after.ContentRect) {
		t.Errorf("%s rects no longer nest after translate", path)
	}

	bc, bok := before.Content.(*ComputedChildren)
	ac, aok := after.Content.(*ComputedChildren)
	if bok != aok {
		t.Fatalf("%s content kind changed: %T vs %T", path, before.Content, after.Content)
	}
	if !bok {
		return
	}
	if len(bc.Children) != len(ac.Children) {
		t.Fatalf("%s children = %d, want %d", path, len(ac.Children), len(bc.Children))
	}
	for i := range bc.Children {
		checkShifted(t, bc.Children[i], ac.Children[i], dx, dy, path+".child")
	}
}

func TestComputedElement_TranslateShiftsWholeTree(t *testing.T) {
	build := func() *ComputedElement {
		t.Helper()
		e := New(
			WithPadding(Pixels(4)),
			WithBorder(Pixels(2)),
			WithMargin(Pixels(3)),
			WithChildren(
				New(WithText("hi"), WithPadding(Pixels(1)), WithClipToContent()),
				New(WithBlock(), WithText("below")),
			),
		)
		c, err := Compute(testCtx(200, 200), e)
		if err != nil {
			t.Fatalf("Compute() error = %v", err)
		}
		return c
	}

	before := build()
	after := build()
	after.Translate(7, 11)

	checkShifted(t, before, after, 7, 11, "root")
}

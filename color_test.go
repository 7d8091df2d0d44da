package box

import (
	"testing"
	"time"
)

func TestColor_IsTransparent(t *testing.T) {
	if !Transparent.IsTransparent() {
		t.Error("Transparent.IsTransparent() = false, want true")
	}
	if RGB(1, 0, 0).IsTransparent() {
		t.Error("opaque color IsTransparent() = true, want false")
	}
	if !RGB(1, 0, 0).WithAlpha(0).IsTransparent() {
		t.Error("zero-alpha color IsTransparent() = false, want true")
	}
}

func TestColorSpec_ZeroValueInherits(t *testing.T) {
	var cs ColorSpec
	if !cs.IsInherited() {
		t.Error("zero ColorSpec.IsInherited() = false, want true")
	}
	if !Inherited().IsInherited() {
		t.Error("Inherited().IsInherited() = false, want true")
	}
	if Solid(RGB(1, 1, 1)).IsInherited() {
		t.Error("Solid().IsInherited() = true, want false")
	}
}

func TestColorSpec_Resolve(t *testing.T) {
	red := RGB(1, 0, 0)
	green := RGB(0, 1, 0)

	t.Run("inherit with no ancestor is transparent", func(t *testing.T) {
		got := Inherited().resolve(nil, nil)
		if !got.IsTransparent() {
			t.Errorf("resolve() = %+v, want transparent", got)
		}
	})

	t.Run("inherit takes ancestor color", func(t *testing.T) {
		ancestor := solidResolved(red)
		got := Inherited().resolve(&ancestor, nil)
		if got.Color != red {
			t.Errorf("Color = %v, want %v", got.Color, red)
		}
	})

	t.Run("solid opaque has no alpha override", func(t *testing.T) {
		got := Solid(red).resolve(nil, nil)
		if got.Color != red {
			t.Errorf("Color = %v, want %v", got.Color, red)
		}
		if got.AlphaOverride != nil {
			t.Errorf("AlphaOverride = %v, want nil", *got.AlphaOverride)
		}
	})

	t.Run("solid translucent sets alpha override", func(t *testing.T) {
		got := Solid(red.WithAlpha(0.5)).resolve(nil, nil)
		if got.AlphaOverride == nil {
			t.Fatal("AlphaOverride = nil, want 0.5")
		}
		if *got.AlphaOverride != 0.5 {
			t.Errorf("AlphaOverride = %v, want 0.5", *got.AlphaOverride)
		}
		if got.Effective().A != 0.5 {
			t.Errorf("Effective().A = %v, want 0.5", got.Effective().A)
		}
	})

	t.Run("animated reports mix and schedules a frame", func(t *testing.T) {
		next := time.Now().Add(time.Second / 60)
		sched := &fakeScheduler{}

		got := Animated(red, green, fakeEaser{mix: 0.25, next: next, ok: true}, false).resolve(nil, sched)

		if got.Color != red || got.Alt != green {
			t.Errorf("colors = (%v, %v), want (%v, %v)", got.Color, got.Alt, red, green)
		}
		if got.Mix != 0.25 {
			t.Errorf("Mix = %v, want 0.25", got.Mix)
		}
		if len(sched.times) != 1 || !sched.times[0].Equal(next) {
			t.Errorf("scheduled = %v, want [%v]", sched.times, next)
		}
	})

	t.Run("completed one-shot falls back to solid", func(t *testing.T) {
		sched := &fakeScheduler{}

		got := Animated(red, green, fakeEaser{ok: false}, true).resolve(nil, sched)

		if got.Color != red || got.Mix != 0 {
			t.Errorf("resolve() = %+v, want solid %v", got, red)
		}
		if len(sched.times) != 0 {
			t.Errorf("scheduled %v frames after completion, want none", sched.times)
		}
	})
}

func TestResolvePalette_InheritanceChain(t *testing.T) {
	red := RGB(1, 0, 0)
	blue := RGB(0, 0, 1)

	parent := resolvePalette(Palette{
		Text:   Solid(red),
		Border: UniformBorder(Solid(blue)),
	}, nil, nil)

	// A zero palette inherits every slot from the parent.
	child := resolvePalette(Palette{}, &parent, nil)

	if child.text.Color != red {
		t.Errorf("child text = %v, want inherited %v", child.text.Color, red)
	}
	for i, side := range child.border {
		if side.Color != blue {
			t.Errorf("child border[%d] = %v, want inherited %v", i, side.Color, blue)
		}
	}

	// Declared slots win over inheritance.
	overridden := resolvePalette(Palette{Text: Solid(blue)}, &parent, nil)
	if overridden.text.Color != blue {
		t.Errorf("overridden text = %v, want %v", overridden.text.Color, blue)
	}
}

func TestResolvedColor_IsTransparent(t *testing.T) {
	if !(ResolvedColor{}).IsTransparent() {
		t.Error("zero ResolvedColor.IsTransparent() = false, want true")
	}

	// An animated color mixing away from transparent still paints.
	animated := ResolvedColor{Color: Transparent, Alt: RGB(1, 1, 1), Mix: 0.5}
	if animated.IsTransparent() {
		t.Error("mixing ResolvedColor.IsTransparent() = true, want false")
	}
}

// Package ease provides intensity sources for animated colors.
//
// A Timeline maps wall-clock time through an easing curve, cycling or
// running once. A Spring integrates a damped harmonic oscillator toward
// full intensity. Both implement the engine's Easer contract: they report
// the current blend factor and the next time it will change, and never
// block.
package ease

import (
	"math"
	"time"

	"github.com/charmbracelet/harmonica"
)

// frameInterval is the wake-up granularity reported to the frame scheduler.
const frameInterval = time.Second / 60

// Curve maps normalized progress in [0, 1] to eased intensity in [0, 1].
type Curve func(t float64) float64

// Linear is the identity curve.
func Linear(t float64) float64 { return t }

// In accelerates from zero.
func In(t float64) float64 { return t * t }

// Out decelerates into one.
func Out(t float64) float64 { return t * (2 - t) }

// InOut accelerates then decelerates.
func InOut(t float64) float64 {
	if t < 0.5 {
		return 2 * t * t
	}
	return 1 - 2*(1-t)*(1-t)
}

// Timeline eases intensity over wall-clock time.
type Timeline struct {
	start  time.Time
	period time.Duration
	curve  Curve
	now    func() time.Time
}

// TimelineOption configures a Timeline.
type TimelineOption func(*Timeline)

// WithClock substitutes the time source. Tests use this to drive the
// timeline deterministically.
func WithClock(now func() time.Time) TimelineOption {
	return func(tl *Timeline) {
		tl.now = now
	}
}

// NewTimeline creates a timeline that eases over the given period through
// the given curve, starting now.
func NewTimeline(period time.Duration, curve Curve, opts ...TimelineOption) *Timeline {
	tl := &Timeline{
		period: period,
		curve:  curve,
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(tl)
	}
	tl.start = tl.now()
	return tl
}

// Restart rewinds the timeline to zero progress.
func (tl *Timeline) Restart() {
	tl.start = tl.now()
}

// Intensity returns the current eased blend factor.
//
// In one-shot mode the timeline runs start to finish once and then reports
// done. Otherwise it cycles as a triangle wave with period 2p, easing up
// for one period and back down for the next.
func (tl *Timeline) Intensity(oneShot bool) (mix float64, next time.Time, ok bool) {
	now := tl.now()
	elapsed := now.Sub(tl.start)
	if elapsed < 0 {
		elapsed = 0
	}

	if oneShot {
		if elapsed >= tl.period {
			return 1, time.Time{}, false
		}
		t := float64(elapsed) / float64(tl.period)
		return tl.curve(t), now.Add(frameInterval), true
	}

	phase := elapsed % (2 * tl.period)
	t := float64(phase) / float64(tl.period)
	if t > 1 {
		t = 2 - t
	}
	return tl.curve(t), now.Add(frameInterval), true
}

// Spring eases intensity with a damped harmonic oscillator. Each Intensity
// call advances the simulation by one frame toward full intensity, so the
// motion overshoots and settles rather than following a fixed curve.
type Spring struct {
	spring harmonica.Spring
	pos    float64
	vel    float64
	now    func() time.Time
}

// SpringOption configures a Spring.
type SpringOption func(*Spring)

// WithSpringClock substitutes the time source used for wake-up hints.
func WithSpringClock(now func() time.Time) SpringOption {
	return func(s *Spring) {
		s.now = now
	}
}

// NewSpring creates a spring easer with the given angular frequency and
// damping ratio, stepped at the frame rate.
func NewSpring(frequency, damping float64, opts ...SpringOption) *Spring {
	s := &Spring{
		spring: harmonica.NewSpring(harmonica.FPS(60), frequency, damping),
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Restart resets the spring to zero intensity at rest.
func (s *Spring) Restart() {
	s.pos = 0
	s.vel = 0
}

// Intensity advances the spring one frame and returns its position clamped
// to [0, 1]. In one-shot mode it reports done once the spring has settled
// at full intensity.
func (s *Spring) Intensity(oneShot bool) (mix float64, next time.Time, ok bool) {
	s.pos, s.vel = s.spring.Update(s.pos, s.vel, 1)

	if oneShot && math.Abs(1-s.pos) < 1e-3 && math.Abs(s.vel) < 1e-3 {
		return 1, time.Time{}, false
	}

	mix = s.pos
	if mix < 0 {
		mix = 0
	} else if mix > 1 {
		mix = 1
	}
	return mix, s.now().Add(frameInterval), true
}

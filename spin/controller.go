// Package spin drives the grid frame's quarter-turn rotation and the
// synchronized jelly zoom.
package spin

import (
	"github.com/pthm-cable/spingrid/tween"
)

// Timeline channel names. Rotation and scale run on separate channels so a
// re-trigger overwrites both without touching anything else.
const (
	chanRotate = "rotate"
	chanScale  = "scale"
)

// Config holds the animation parameters for a controller.
type Config struct {
	Duration float32               // Seconds per quarter turn
	Ease     tween.EaseFunc        // Rotation easing (overshoot/bounce)
	Jelly    func(float32) float32 // Scale curve over tween progress

	// CounterClockwise spins negative; the zero value spins clockwise.
	CounterClockwise bool
}

// Controller owns the animated rotation angle and scale of the grid frame.
// All angles are in degrees.
type Controller struct {
	cfg      Config
	timeline *tween.Timeline

	angle float32 // animated angle relative to base
	scale float32
	base  float32 // externally driven base angle

	turns    int // quarter turns including any in-flight spin, wraps on snap
	spinning bool

	onComplete func()
}

// NewController creates an idle controller at angle 0 and scale 1.
func NewController(cfg Config) *Controller {
	if cfg.Ease == nil {
		cfg.Ease = tween.BackOut(1.70158)
	}
	if cfg.Jelly == nil {
		cfg.Jelly = tween.Jelly(0.82, 0.4, 2.2)
	}
	if cfg.Duration <= 0 {
		cfg.Duration = 0.9
	}
	return &Controller{
		cfg:      cfg,
		timeline: tween.NewTimeline(),
		scale:    1,
	}
}

// OnComplete registers a hook fired after every completed spin (after the
// drift-correction snap). A re-trigger that overwrites an in-flight spin
// fires it only once, when the final spin lands.
func (c *Controller) OnComplete(fn func()) {
	c.onComplete = fn
}

// Trigger starts a quarter-turn spin. Triggering while a spin is in flight
// overwrites the active tweens: the target advances another quarter and the
// rotation retargets from the current interpolated angle.
func (c *Controller) Trigger() {
	c.turns++
	c.spinning = true

	target := c.step() * float32(c.turns)
	rot := tween.New(c.angle, target, c.cfg.Duration, c.cfg.Ease, func(v float32) {
		c.angle = v
	}).OnComplete(c.finishSpin)
	c.timeline.Play(chanRotate, rot)

	// Scale runs the jelly curve over linear tween progress.
	jelly := c.cfg.Jelly
	zoom := tween.New(0, 1, c.cfg.Duration, tween.Linear, func(p float32) {
		c.scale = jelly(p)
	})
	c.timeline.Play(chanScale, zoom)
}

// Reset stops all tweens and returns the frame to neutral: zero accumulated
// rotation, scale 1. The externally driven base angle is kept.
func (c *Controller) Reset() {
	c.timeline.StopAll()
	c.turns = 0
	c.angle = 0
	c.scale = 1
	c.spinning = false
}

// SetBaseAngle sets the externally driven rotation offset in degrees.
func (c *Controller) SetBaseAngle(deg float32) {
	c.base = deg
}

// BaseAngle returns the externally driven rotation offset in degrees.
func (c *Controller) BaseAngle() float32 {
	return c.base
}

// Angle returns the display angle in degrees: base plus animated rotation.
func (c *Controller) Angle() float32 {
	return c.base + c.angle
}

// Scale returns the current jelly zoom factor.
func (c *Controller) Scale() float32 {
	return c.scale
}

// Spinning reports whether a spin is in flight.
func (c *Controller) Spinning() bool {
	return c.spinning
}

// Update advances the animation by dt seconds.
func (c *Controller) Update(dt float32) {
	c.timeline.Update(dt)
}

// finishSpin applies drift correction: the accumulated turn count wraps mod
// 4 and the angle snaps to an exact quarter multiple, so eased deltas never
// accumulate error across spins.
func (c *Controller) finishSpin() {
	c.turns %= 4
	c.angle = c.step() * float32(c.turns)
	c.spinning = false
	if c.onComplete != nil {
		c.onComplete()
	}
}

// step returns the signed degrees of one quarter turn.
func (c *Controller) step() float32 {
	if c.cfg.CounterClockwise {
		return -90
	}
	return 90
}

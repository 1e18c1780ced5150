// Package tween implements a float32 property tween engine with a
// channel-based timeline sequencer. Tweens advance on a fixed or
// frame-delta timestep; playing onto a busy timeline channel overwrites
// the active tween, which is the only cancellation semantic.
package tween

// Tween interpolates a single float32 property over a duration.
type Tween struct {
	from, to   float32
	duration   float32
	delay      float32
	elapsed    float32
	ease       EaseFunc
	apply      func(float32)
	onComplete func()
	done       bool
}

// New creates a tween from one value to another over duration seconds.
// apply receives the interpolated value on every advance.
func New(from, to, duration float32, ease EaseFunc, apply func(float32)) *Tween {
	if ease == nil {
		ease = Linear
	}
	return &Tween{
		from:     from,
		to:       to,
		duration: duration,
		ease:     ease,
		apply:    apply,
	}
}

// WithDelay defers the start of interpolation by d seconds.
func (t *Tween) WithDelay(d float32) *Tween {
	t.delay = d
	return t
}

// OnComplete registers a callback fired exactly once when the tween finishes.
// Overwritten tweens never fire it.
func (t *Tween) OnComplete(fn func()) *Tween {
	t.onComplete = fn
	return t
}

// Done reports whether the tween has finished.
func (t *Tween) Done() bool {
	return t.done
}

// Advance steps the tween by dt seconds, applying the interpolated value.
// On completion the end value is applied exactly, with no easing residue.
func (t *Tween) Advance(dt float32) {
	if t.done {
		return
	}
	t.elapsed += dt

	live := t.elapsed - t.delay
	if live < 0 {
		return
	}

	if t.duration <= 0 || live >= t.duration {
		if t.apply != nil {
			t.apply(t.to)
		}
		t.done = true
		if t.onComplete != nil {
			t.onComplete()
		}
		return
	}

	p := t.ease(live / t.duration)
	if t.apply != nil {
		t.apply(t.from + (t.to-t.from)*p)
	}
}

// Timeline runs at most one tween per named channel.
type Timeline struct {
	channels map[string]*Tween
}

// NewTimeline creates an empty timeline.
func NewTimeline() *Timeline {
	return &Timeline{channels: make(map[string]*Tween)}
}

// Play starts a tween on the named channel, overwriting whatever is active
// there. The overwritten tween is dropped without firing its completion.
func (tl *Timeline) Play(channel string, t *Tween) {
	tl.channels[channel] = t
}

// Stop drops the active tween on the named channel, if any.
func (tl *Timeline) Stop(channel string) {
	delete(tl.channels, channel)
}

// StopAll drops every active tween.
func (tl *Timeline) StopAll() {
	for ch := range tl.channels {
		delete(tl.channels, ch)
	}
}

// Active returns the number of channels with a running tween.
func (tl *Timeline) Active() int {
	return len(tl.channels)
}

// Update advances every active tween by dt and releases finished channels.
func (tl *Timeline) Update(dt float32) {
	for ch, t := range tl.channels {
		t.Advance(dt)
		if t.Done() {
			// Only release if the completion callback didn't replace us
			if tl.channels[ch] == t {
				delete(tl.channels, ch)
			}
		}
	}
}

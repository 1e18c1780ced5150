package tween

import (
	"testing"
)

func TestTweenAppliesExactEndValue(t *testing.T) {
	var value float32
	tw := New(0, 90, 0.5, BackOut(1.70158), func(v float32) { value = v })

	for i := 0; i < 60; i++ {
		tw.Advance(1.0 / 60.0)
	}

	if !tw.Done() {
		t.Error("expected tween to be done")
	}
	if value != 90 {
		t.Errorf("expected exact end value 90, got %f", value)
	}
}

func TestTweenCompletionFiresOnce(t *testing.T) {
	completions := 0
	tw := New(0, 1, 0.1, Linear, nil).OnComplete(func() { completions++ })

	for i := 0; i < 30; i++ {
		tw.Advance(1.0 / 60.0)
	}

	if completions != 1 {
		t.Errorf("expected 1 completion, got %d", completions)
	}
}

func TestTweenZeroDurationCompletesImmediately(t *testing.T) {
	var value float32
	tw := New(0, 5, 0, Linear, func(v float32) { value = v })

	tw.Advance(1.0 / 60.0)

	if !tw.Done() {
		t.Error("expected zero-duration tween to be done after one advance")
	}
	if value != 5 {
		t.Errorf("expected end value 5, got %f", value)
	}
}

func TestTweenDelayDefersStart(t *testing.T) {
	applied := false
	tw := New(0, 1, 0.2, Linear, func(v float32) { applied = true }).WithDelay(0.5)

	// Advance less than the delay: nothing should be applied
	for i := 0; i < 20; i++ {
		tw.Advance(1.0 / 60.0)
	}
	if applied {
		t.Error("expected no application during delay")
	}
	if tw.Done() {
		t.Error("expected tween to still be pending")
	}

	// Push past delay + duration
	for i := 0; i < 40; i++ {
		tw.Advance(1.0 / 60.0)
	}
	if !applied {
		t.Error("expected application after delay")
	}
	if !tw.Done() {
		t.Error("expected tween to be done")
	}
}

func TestTimelineOverwriteSuppressesCompletion(t *testing.T) {
	tl := NewTimeline()

	firstCompleted := false
	secondCompleted := false

	tl.Play("rotate", New(0, 90, 1.0, Linear, nil).OnComplete(func() { firstCompleted = true }))
	tl.Update(0.1)

	// Overwrite mid-flight
	tl.Play("rotate", New(10, 180, 0.2, Linear, nil).OnComplete(func() { secondCompleted = true }))

	for i := 0; i < 60; i++ {
		tl.Update(1.0 / 60.0)
	}

	if firstCompleted {
		t.Error("overwritten tween must not fire completion")
	}
	if !secondCompleted {
		t.Error("replacement tween should have completed")
	}
}

func TestTimelineChannelsAreIndependent(t *testing.T) {
	tl := NewTimeline()

	var a, b float32
	tl.Play("rotate", New(0, 90, 0.2, Linear, func(v float32) { a = v }))
	tl.Play("scale", New(1, 0.8, 0.2, Linear, func(v float32) { b = v }))

	if tl.Active() != 2 {
		t.Errorf("expected 2 active channels, got %d", tl.Active())
	}

	for i := 0; i < 30; i++ {
		tl.Update(1.0 / 60.0)
	}

	if a != 90 {
		t.Errorf("expected rotate channel to finish at 90, got %f", a)
	}
	if b != 0.8 {
		t.Errorf("expected scale channel to finish at 0.8, got %f", b)
	}
	if tl.Active() != 0 {
		t.Errorf("expected finished channels to be released, got %d active", tl.Active())
	}
}

func TestTimelineStopAll(t *testing.T) {
	tl := NewTimeline()

	completed := false
	tl.Play("rotate", New(0, 90, 0.1, Linear, nil).OnComplete(func() { completed = true }))
	tl.StopAll()

	for i := 0; i < 30; i++ {
		tl.Update(1.0 / 60.0)
	}

	if completed {
		t.Error("stopped tween must not fire completion")
	}
	if tl.Active() != 0 {
		t.Errorf("expected 0 active channels, got %d", tl.Active())
	}
}

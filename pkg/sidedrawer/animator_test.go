package sidedrawer

import (
	"testing"
	"time"
)

type fakeClock struct {
	t time.Duration
}

func (c *fakeClock) now() time.Duration { return c.t }

func TestTweenAnimator(t *testing.T) {
	clock := &fakeClock{}
	a := NewTweenAnimator(clock.now)

	var frames []Frame
	done := 0
	a.Animate(Frame{}, Frame{Offset: 300, Opacity: 0.4}, ms(300), func(f Frame) {
		frames = append(frames, f)
	}, func() { done++ })

	if !a.Animating() {
		t.Fatal("not animating after Animate")
	}

	clock.t = ms(150)
	a.Tick()
	if got := frames[len(frames)-1].Offset; got != 150 {
		t.Errorf("offset at midpoint = %v, want 150", got)
	}
	if done != 0 {
		t.Fatal("completed early")
	}

	clock.t = ms(400)
	if !a.Tick() {
		t.Fatal("final tick reported idle")
	}
	if got := frames[len(frames)-1]; got != (Frame{Offset: 300, Opacity: 0.4}) {
		t.Errorf("final frame = %+v", got)
	}
	if done != 1 {
		t.Errorf("done called %d times, want 1", done)
	}
	if a.Tick() || a.Animating() {
		t.Error("still animating after completion")
	}
}

func TestTweenAnimatorReplace(t *testing.T) {
	clock := &fakeClock{}
	a := NewTweenAnimator(clock.now)

	var order []string
	var last Frame
	apply := func(f Frame) { last = f }

	a.Animate(Frame{}, Frame{Offset: 300}, ms(300), apply, func() { order = append(order, "first") })
	clock.t = ms(100)
	a.Tick()

	a.Animate(last, Frame{}, ms(300), apply, func() { order = append(order, "second") })
	if len(order) != 1 || order[0] != "first" {
		t.Fatalf("replaced animation did not complete first: %v", order)
	}

	clock.t = ms(500)
	a.Tick()
	if len(order) != 2 || last != (Frame{}) {
		t.Errorf("order = %v, last = %+v", order, last)
	}
}

func TestTweenAnimatorZeroDuration(t *testing.T) {
	a := NewTweenAnimator((&fakeClock{}).now)

	var got Frame
	done := false
	a.Animate(Frame{}, Frame{Offset: 10}, 0, func(f Frame) { got = f }, func() { done = true })

	if !done || got.Offset != 10 || a.Animating() {
		t.Errorf("zero duration: done %v frame %+v animating %v", done, got, a.Animating())
	}
}

func TestEaseInOut(t *testing.T) {
	if EaseInOut(0) != 0 || EaseInOut(1) != 1 || EaseInOut(0.5) != 0.5 {
		t.Errorf("endpoints: %v %v %v", EaseInOut(0), EaseInOut(0.5), EaseInOut(1))
	}
	prev := 0.0
	for p := 0.0; p <= 1; p += 0.05 {
		v := EaseInOut(p)
		if v < prev {
			t.Fatalf("not monotonic at %v", p)
		}
		prev = v
	}
}

func TestDrawerWithTweenAnimator(t *testing.T) {
	clock := &fakeClock{}
	anim := NewTweenAnimator(clock.now)
	opts := testOptions()
	opts.Animator = anim
	d, side := newTestDrawer(opts)

	d.Open(true)
	d.Close(true)

	// The replaced opening transition completes before the closing one starts.
	if len(side.events) != 3 || side.events[1] != "end" || side.events[2] != "begin(false,true)" {
		t.Fatalf("hooks = %v", side.events)
	}
	if d.IsOpen() {
		t.Error("IsOpen does not report the latest target")
	}

	clock.t = time.Second
	anim.Tick()
	if len(side.events) != 4 || d.Frame() != (Frame{}) {
		t.Errorf("hooks = %v frame = %+v", side.events, d.Frame())
	}
}

package sidedrawer

import "time"

// Frame is the drawer's visual state: how much of the side panel is visible
// and how opaque the dimming overlay is.
type Frame struct {
	Offset  float64
	Opacity float64
}

// Lerp interpolates between f and to by p in [0, 1].
func (f Frame) Lerp(to Frame, p float64) Frame {
	return Frame{
		Offset:  f.Offset + (to.Offset-f.Offset)*p,
		Opacity: f.Opacity + (to.Opacity-f.Opacity)*p,
	}
}

// Animator runs a timed transition between two frames. Animate returns
// immediately; apply is called with intermediate frames and done once the
// transition finishes, both on the caller's thread.
type Animator interface {
	Animate(from, to Frame, duration time.Duration, apply func(Frame), done func())
}

// ImmediateAnimator jumps to the target frame and completes synchronously.
type ImmediateAnimator struct{}

func (ImmediateAnimator) Animate(_, to Frame, _ time.Duration, apply func(Frame), done func()) {
	apply(to)
	done()
}

type tween struct {
	from, to Frame
	start    time.Duration
	duration time.Duration
	apply    func(Frame)
	done     func()
}

// TweenAnimator eases between frames as the host calls Tick once per rendered
// frame. There is only ever one transition in flight: starting a new one
// completes the previous one where it stands, and the new one takes over the
// visual properties.
type TweenAnimator struct {
	now    func() time.Duration
	active *tween
}

// NewTweenAnimator creates an animator reading time from now, which must be
// monotonic.
func NewTweenAnimator(now func() time.Duration) *TweenAnimator {
	return &TweenAnimator{now: now}
}

func (a *TweenAnimator) Animate(from, to Frame, duration time.Duration, apply func(Frame), done func()) {
	if prev := a.active; prev != nil {
		a.active = nil
		prev.done()
	}

	if duration <= 0 {
		apply(to)
		done()
		return
	}

	a.active = &tween{
		from:     from,
		to:       to,
		start:    a.now(),
		duration: duration,
		apply:    apply,
		done:     done,
	}
}

// Tick advances the in-flight transition. It returns false when nothing is
// animating.
func (a *TweenAnimator) Tick() bool {
	t := a.active
	if t == nil {
		return false
	}

	p := float64(a.now()-t.start) / float64(t.duration)
	if p >= 1 {
		a.active = nil
		t.apply(t.to)
		t.done()
		return true
	}
	if p < 0 {
		p = 0
	}

	t.apply(t.from.Lerp(t.to, EaseInOut(p)))
	return true
}

// Animating reports whether a transition is in flight.
func (a *TweenAnimator) Animating() bool {
	return a.active != nil
}

// EaseInOut is a cubic ease-in-out curve over [0, 1].
func EaseInOut(p float64) float64 {
	if p < 0.5 {
		return 4 * p * p * p
	}
	q := -2*p + 2
	return 1 - q*q*q/2
}

package sidedrawer

import (
	"fmt"
	"time"

	"github.com/BrandonKowalski/sidedrawer/pkg/sidedrawer/gesture"
)

// fakePanel records appearance hook calls.
type fakePanel struct {
	events []string
}

func (p *fakePanel) BeginAppearanceTransition(appearing, animated bool) {
	p.events = append(p.events, fmt.Sprintf("begin(%t,%t)", appearing, animated))
}

func (p *fakePanel) EndAppearanceTransition() {
	p.events = append(p.events, "end")
}

// deferredAnimator holds transitions until the test completes them.
type deferredAnimator struct {
	pending   []func()
	durations []time.Duration
}

func (a *deferredAnimator) Animate(_, to Frame, d time.Duration, apply func(Frame), done func()) {
	a.durations = append(a.durations, d)
	a.pending = append(a.pending, func() {
		apply(to)
		done()
	})
}

func (a *deferredAnimator) completeAll() {
	pending := a.pending
	a.pending = nil
	for _, f := range pending {
		f()
	}
}

type hapticCounter struct {
	n int
}

func (h *hapticCounter) ImpactOccurred() { h.n++ }

// testOptions returns options for a 300 wide panel in a private registry.
func testOptions() Options {
	return Options{
		ScreenWidth:     375,
		ScreenHeight:    667,
		PanelWidthRatio: 0.8,
		Registry:        NewRegistry(),
	}
}

func sample(phase gesture.Phase, dx, vx float64) gesture.Sample {
	return gesture.Sample{
		Phase:       phase,
		Origin:      gesture.Point{X: 5, Y: 100},
		Location:    gesture.Point{X: 5 + dx, Y: 100},
		Translation: gesture.Point{X: dx},
		Velocity:    gesture.Point{X: vx},
	}
}

func ms(n int) time.Duration { return time.Duration(n) * time.Millisecond }

// drag dispatches a down at (x0, y0), moves in equal steps to (x1, y1), then
// an up.
func drag(c *Container, x0, y0, x1, y1 float64, steps int, stepTime time.Duration) {
	c.Dispatch(gesture.PointerEvent{Kind: gesture.PointerDown, X: x0, Y: y0})
	for i := 1; i <= steps; i++ {
		f := float64(i) / float64(steps)
		c.Dispatch(gesture.PointerEvent{
			Kind: gesture.PointerMove,
			X:    x0 + (x1-x0)*f,
			Y:    y0 + (y1-y0)*f,
			Time: time.Duration(i) * stepTime,
		})
	}
	c.Dispatch(gesture.PointerEvent{Kind: gesture.PointerUp, X: x1, Y: y1, Time: time.Duration(steps) * stepTime})
}

func tap(c *Container, x, y float64) {
	c.Dispatch(gesture.PointerEvent{Kind: gesture.PointerDown, X: x, Y: y})
	c.Dispatch(gesture.PointerEvent{Kind: gesture.PointerUp, X: x, Y: y, Time: ms(50)})
}

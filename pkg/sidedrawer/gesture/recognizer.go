package gesture

import (
	"fmt"
	"math"
)

// Phase is a recognizer lifecycle phase.
type Phase int

const (
	PhasePossible Phase = iota
	PhaseBegan
	PhaseChanged
	PhaseEnded
	PhaseCancelled
	PhaseFailed
)

func (p Phase) String() string {
	switch p {
	case PhasePossible:
		return "possible"
	case PhaseBegan:
		return "began"
	case PhaseChanged:
		return "changed"
	case PhaseEnded:
		return "ended"
	case PhaseCancelled:
		return "cancelled"
	case PhaseFailed:
		return "failed"
	default:
		return fmt.Sprintf("Phase(%d)", int(p))
	}
}

// Terminal reports whether the phase closes a gesture cycle.
func (p Phase) Terminal() bool {
	return p == PhaseEnded || p == PhaseCancelled || p == PhaseFailed
}

// Active reports whether the recognizer is between began and a terminal phase.
func (p Phase) Active() bool {
	return p == PhaseBegan || p == PhaseChanged
}

// Axis restricts the direction a pan recognizes.
type Axis int

const (
	AxisFree Axis = iota
	AxisHorizontal
	AxisVertical
)

func (a Axis) String() string {
	switch a {
	case AxisFree:
		return "free"
	case AxisHorizontal:
		return "horizontal"
	case AxisVertical:
		return "vertical"
	default:
		return fmt.Sprintf("Axis(%d)", int(a))
	}
}

// Kind distinguishes continuous pans from discrete taps.
type Kind int

const (
	KindPan Kind = iota
	KindTap
)

// Sample is what a recognizer reports to its handler on each callback.
type Sample struct {
	Phase       Phase
	Origin      Point // where the pointer went down
	Location    Point // where the pointer is now
	Translation Point // Location - Origin
	Velocity    Point // units per second, from the velocity tracker
}

// Handler receives recognizer callbacks.
type Handler func(r *Recognizer, s Sample)

// Recognizer is a pan or tap recognizer. Create one with NewPan or NewTap and
// add it to a Set.
type Recognizer struct {
	name    string
	kind    Kind
	axis    Axis
	handler Handler

	phase         Phase
	participating bool
	pending       bool
	origin        Point
	location      Point
	tracker       VelocityTracker
}

// NewPan creates a pan recognizer restricted to the given axis.
func NewPan(name string, axis Axis, handler Handler) *Recognizer {
	return &Recognizer{
		name:    name,
		kind:    KindPan,
		axis:    axis,
		handler: handler,
		tracker: NewVelocityTracker(),
	}
}

// NewTap creates a single-tap recognizer.
func NewTap(name string, handler Handler) *Recognizer {
	return &Recognizer{
		name:    name,
		kind:    KindTap,
		handler: handler,
		tracker: NewVelocityTracker(),
	}
}

func (r *Recognizer) Name() string  { return r.name }
func (r *Recognizer) Kind() Kind    { return r.kind }
func (r *Recognizer) Axis() Axis    { return r.axis }
func (r *Recognizer) Phase() Phase  { return r.phase }
func (r *Recognizer) Origin() Point { return r.origin }

// Location returns the last pointer location the recognizer saw.
func (r *Recognizer) Location() Point { return r.location }

// Translation returns the displacement from the origin.
func (r *Recognizer) Translation() Point { return r.location.Sub(r.origin) }

// Participating reports whether the recognizer received the current pointer
// sequence.
func (r *Recognizer) Participating() bool { return r.participating }

func (r *Recognizer) String() string {
	return fmt.Sprintf("%s(%s)", r.name, r.phase)
}

func (r *Recognizer) reset() {
	r.phase = PhasePossible
	r.participating = false
	r.pending = false
	r.tracker.Reset()
}

func (r *Recognizer) track(at Point, ev PointerEvent) {
	r.location = at
	r.tracker.Add(at, ev.Time)
}

func (r *Recognizer) sample() Sample {
	return Sample{
		Phase:       r.phase,
		Origin:      r.origin,
		Location:    r.location,
		Translation: r.Translation(),
		Velocity:    r.tracker.Velocity(),
	}
}

func (r *Recognizer) emit(phase Phase) {
	r.phase = phase
	if r.handler != nil {
		r.handler(r, r.sample())
	}
}

// movement classifies the translation against the dead zone: whether the
// pan should begin and whether it moved the wrong way.
func (r *Recognizer) movement(deadZone float64) (begin, wrongAxis bool) {
	t := r.Translation()
	dx, dy := math.Abs(t.X), math.Abs(t.Y)

	switch r.axis {
	case AxisHorizontal:
		if dx > deadZone && dx >= dy {
			return true, false
		}
		return false, dy > deadZone && dy > dx
	case AxisVertical:
		if dy > deadZone && dy > dx {
			return true, false
		}
		return false, dx > deadZone && dx >= dy
	default:
		return math.Hypot(dx, dy) > deadZone, false
	}
}

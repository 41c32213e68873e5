package gesture

import (
	"github.com/BrandonKowalski/sidedrawer/pkg/sidedrawer/constants"
)

// Delegate lets the owner of a recognizer take part in arbitration.
// A recognizer without a delegate receives every touch, never runs
// alongside another recognizer and never makes another one wait.
type Delegate interface {
	// ShouldReceive decides whether r takes part in a pointer sequence that
	// starts at p.
	ShouldReceive(r *Recognizer, p Point) bool

	// ShouldRecognizeSimultaneously decides whether r may be active while
	// other is active.
	ShouldRecognizeSimultaneously(r, other *Recognizer) bool

	// ShouldBeRequiredToFailBy decides whether other must wait for r to fail
	// before it may begin.
	ShouldBeRequiredToFailBy(r, other *Recognizer) bool
}

type member struct {
	r *Recognizer
	d Delegate
}

// Set dispatches one pointer sequence at a time to its recognizers.
// It is not safe for concurrent use; hosts call Dispatch from their UI loop.
type Set struct {
	members  []member
	deadZone float64
	tracking bool
	ending   bool
}

// NewSet creates a Set. A non-positive dead zone selects the default.
func NewSet(deadZone float64) *Set {
	if deadZone <= 0 {
		deadZone = constants.DefaultDragDeadZone
	}
	return &Set{deadZone: deadZone}
}

// Add registers a recognizer with an optional delegate. Recognizers added
// while a sequence is in flight join at the next pointer down.
func (s *Set) Add(r *Recognizer, d Delegate) {
	for i := range s.members {
		if s.members[i].r == r {
			s.members[i].d = d
			return
		}
	}
	s.members = append(s.members, member{r: r, d: d})
}

// Remove unregisters a recognizer.
func (s *Set) Remove(r *Recognizer) {
	for i := range s.members {
		if s.members[i].r == r {
			s.members = append(s.members[:i], s.members[i+1:]...)
			r.reset()
			return
		}
	}
}

// Tracking reports whether a pointer sequence is in flight.
func (s *Set) Tracking() bool {
	return s.tracking
}

// DeadZone returns the movement a pan needs before it begins.
func (s *Set) DeadZone() float64 {
	return s.deadZone
}

// Dispatch feeds one pointer event to the recognizers.
func (s *Set) Dispatch(ev PointerEvent) {
	switch ev.Kind {
	case PointerDown:
		s.down(ev)
	case PointerMove:
		s.move(ev)
	case PointerUp:
		s.up(ev)
	case PointerCancel:
		s.cancel(ev)
	}
}

func (s *Set) down(ev PointerEvent) {
	if s.tracking {
		return
	}
	s.tracking = true
	s.ending = false

	p := ev.Location()
	for _, m := range s.snapshot() {
		m.r.reset()
		m.r.origin = p
		m.r.location = p

		if m.d != nil && !m.d.ShouldReceive(m.r, p) {
			continue
		}

		m.r.participating = true
		m.r.tracker.Add(p, ev.Time)
	}
}

func (s *Set) move(ev PointerEvent) {
	if !s.tracking {
		return
	}

	live := s.live()
	for _, r := range live {
		r.track(ev.Location(), ev)
	}

	for _, r := range live {
		switch {
		case r.phase.Active():
			r.emit(PhaseChanged)
		case r.phase == PhasePossible && !r.pending:
			begin, wrongAxis := r.movement(s.deadZone)
			if r.kind == KindTap {
				if begin || wrongAxis {
					s.fail(r)
				}
				continue
			}
			if wrongAxis {
				s.fail(r)
			} else if begin {
				s.tryBegin(r)
			}
		}
	}
}

func (s *Set) up(ev PointerEvent) {
	if !s.tracking {
		return
	}
	s.ending = true

	live := s.live()
	for _, r := range live {
		r.track(ev.Location(), ev)
	}

	for _, r := range live {
		switch {
		case r.phase.Active():
			r.emit(PhaseEnded)
		case r.phase == PhasePossible && r.kind == KindTap:
			r.emit(PhaseEnded)
		case r.phase == PhasePossible:
			s.fail(r)
		}
	}

	s.tracking = false
	s.ending = false
}

func (s *Set) cancel(ev PointerEvent) {
	if !s.tracking {
		return
	}
	s.ending = true

	for _, r := range s.live() {
		if r.phase.Active() {
			r.emit(PhaseCancelled)
		} else if r.phase == PhasePossible {
			s.fail(r)
		}
	}

	s.tracking = false
	s.ending = false
}

// tryBegin starts r unless a still-possible recognizer makes it wait or an
// active one excludes it.
func (s *Set) tryBegin(r *Recognizer) {
	for _, o := range s.live() {
		if o == r || o.phase != PhasePossible {
			continue
		}
		if s.requiredToFailBy(o, r) {
			r.pending = true
			return
		}
	}
	r.pending = false

	for _, o := range s.live() {
		if o != r && o.phase.Active() && !s.simultaneous(o, r) {
			s.fail(r)
			return
		}
	}

	s.begin(r)
}

func (s *Set) begin(r *Recognizer) {
	r.emit(PhaseBegan)

	for _, o := range s.live() {
		if o == r || o.phase != PhasePossible {
			continue
		}
		if o.pending && s.requiredToFailBy(r, o) {
			s.fail(o)
			continue
		}
		if !s.simultaneous(r, o) {
			s.fail(o)
		}
	}
}

func (s *Set) fail(r *Recognizer) {
	if r.phase.Terminal() {
		return
	}
	r.pending = false
	r.emit(PhaseFailed)

	if s.ending {
		return
	}
	for _, o := range s.live() {
		if o.pending && o.phase == PhasePossible {
			s.tryBegin(o)
		}
	}
}

func (s *Set) simultaneous(a, b *Recognizer) bool {
	if d := s.delegateOf(a); d != nil && d.ShouldRecognizeSimultaneously(a, b) {
		return true
	}
	if d := s.delegateOf(b); d != nil && d.ShouldRecognizeSimultaneously(b, a) {
		return true
	}
	return false
}

func (s *Set) requiredToFailBy(r, other *Recognizer) bool {
	d := s.delegateOf(r)
	return d != nil && d.ShouldBeRequiredToFailBy(r, other)
}

func (s *Set) delegateOf(r *Recognizer) Delegate {
	for _, m := range s.members {
		if m.r == r {
			return m.d
		}
	}
	return nil
}

func (s *Set) snapshot() []member {
	return append([]member(nil), s.members...)
}

// live returns the participants that have not reached a terminal phase.
func (s *Set) live() []*Recognizer {
	out := make([]*Recognizer, 0, len(s.members))
	for _, m := range s.members {
		if m.r.participating && !m.r.phase.Terminal() {
			out = append(out, m.r)
		}
	}
	return out
}

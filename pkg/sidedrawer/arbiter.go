package sidedrawer

import (
	"fmt"

	"github.com/BrandonKowalski/sidedrawer/pkg/sidedrawer/gesture"
)

// Role classifies a recognizer for arbitration. Foreign recognizers are only
// classified by axis, so new kinds of content gestures need no new rules.
type Role int

const (
	RoleEdgeOpen          Role = iota // the drawer's leading-edge open gesture
	RoleDragClose                     // the drawer's reverse gesture, active while open
	RoleForeignHorizontal             // content pan that can scroll horizontally
	RoleForeignVertical               // content pan that only scrolls vertically
	RoleTap                           // taps, including the overlay dismissal
)

func (r Role) String() string {
	switch r {
	case RoleEdgeOpen:
		return "edge-open"
	case RoleDragClose:
		return "drag-close"
	case RoleForeignHorizontal:
		return "foreign-horizontal"
	case RoleForeignVertical:
		return "foreign-vertical"
	case RoleTap:
		return "tap"
	default:
		return fmt.Sprintf("Role(%d)", int(r))
	}
}

// RoleFor classifies a recognizer that does not belong to the drawer. Free
// pans compete for horizontal drags, so they count as horizontal.
func RoleFor(r *gesture.Recognizer) Role {
	if r.Kind() == gesture.KindTap {
		return RoleTap
	}
	if r.Axis() == gesture.AxisVertical {
		return RoleForeignVertical
	}
	return RoleForeignHorizontal
}

// Flags is the drawer state arbitration depends on.
type Flags struct {
	Open           bool
	EdgeInProgress bool
}

// Arbiter applies the drawer's gesture ownership rules. It is a pure function
// of role, edge band membership and Flags.
type Arbiter struct {
	EdgeGestureWidth float64
}

// InEdgeBand reports whether a horizontal position lies in the leading-edge band.
func (a Arbiter) InEdgeBand(x float64) bool {
	return x <= a.EdgeGestureWidth
}

// ShouldReceive decides whether a recognizer in the given role takes part in
// a touch at x. The reverse gesture only listens while the drawer is open and
// the edge gesture only inside the band while it is closed.
func (a Arbiter) ShouldReceive(role Role, x float64, f Flags) bool {
	switch role {
	case RoleDragClose:
		return f.Open
	case RoleEdgeOpen:
		return a.InEdgeBand(x) && !f.Open
	default:
		return true
	}
}

// ShouldRecognizeSimultaneously grants simultaneity to the edge gesture while
// its touch started in the band and it has not begun yet. Once the edge
// gesture is in progress it owns the drag.
func (a Arbiter) ShouldRecognizeSimultaneously(role Role, originX float64, other Role, f Flags) bool {
	if role != RoleEdgeOpen {
		return false
	}
	if f.EdgeInProgress {
		return false
	}
	return a.InEdgeBand(originX)
}

// ShouldBeRequiredToFailBy makes a horizontal content pan that starts in the
// band wait for the edge gesture to fail. Vertical pans are never held back.
func (a Arbiter) ShouldBeRequiredToFailBy(role, other Role, otherOriginX float64) bool {
	if role != RoleEdgeOpen {
		return false
	}
	return other == RoleForeignHorizontal && a.InEdgeBand(otherOriginX)
}

// Package gesture turns a stream of single-pointer events into recognizer
// lifecycles (began, changed, ended, cancelled, failed) and arbitrates
// between recognizers that compete for the same pointer sequence.
//
// Hosts feed PointerEvents into a Set. Each Recognizer in the Set may carry a
// Delegate that decides whether it receives a touch, whether it may run
// alongside another recognizer, and whether another recognizer must wait for
// it to fail first.
package gesture

import (
	"fmt"
	"time"
)

// Point is a location or displacement in host units.
type Point struct {
	X, Y float64
}

// Sub returns p - q.
func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

// PointerKind identifies what happened to the pointer.
type PointerKind int

const (
	PointerDown PointerKind = iota
	PointerMove
	PointerUp
	PointerCancel
)

func (k PointerKind) String() string {
	switch k {
	case PointerDown:
		return "down"
	case PointerMove:
		return "move"
	case PointerUp:
		return "up"
	case PointerCancel:
		return "cancel"
	default:
		return fmt.Sprintf("PointerKind(%d)", int(k))
	}
}

// PointerEvent is one sample of the single tracked pointer. Time is a
// monotonic timestamp from any fixed origin; only differences are used.
type PointerEvent struct {
	Kind PointerKind
	X, Y float64
	Time time.Duration
}

// Location returns the event position as a Point.
func (e PointerEvent) Location() Point {
	return Point{X: e.X, Y: e.Y}
}

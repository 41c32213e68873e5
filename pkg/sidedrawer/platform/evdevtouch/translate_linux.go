//go:build linux

package evdevtouch

import (
	"time"

	"github.com/holoplot/go-evdev"

	"github.com/BrandonKowalski/sidedrawer/pkg/sidedrawer/gesture"
)

// axis is the raw range a device reports for one coordinate.
type axis struct {
	min, max float64
}

// scale maps a raw value onto [0, size]. An unknown range passes values
// through unchanged.
func (a axis) scale(v int32, size float64) float64 {
	if a.max <= a.min {
		return float64(v)
	}
	return (float64(v) - a.min) / (a.max - a.min) * size
}

// translator folds evdev reports into pointer events. The kernel groups the
// changes of one frame and terminates them with SYN_REPORT; one pointer
// event is emitted per frame.
type translator struct {
	x, y          axis
	width, height float64

	slot     int32
	at       gesture.Point
	touching bool
	wasDown  bool
	moved    bool
}

func newTranslator(x, y axis, width, height float64) *translator {
	return &translator{x: x, y: y, width: width, height: height}
}

func (t *translator) feed(ev *evdev.InputEvent) (gesture.PointerEvent, bool) {
	switch ev.Type {
	case evdev.EV_ABS:
		switch ev.Code {
		case evdev.ABS_MT_SLOT:
			t.slot = ev.Value
		case evdev.ABS_MT_POSITION_X:
			if t.slot == 0 {
				t.at.X = t.x.scale(ev.Value, t.width)
				t.moved = true
			}
		case evdev.ABS_MT_POSITION_Y:
			if t.slot == 0 {
				t.at.Y = t.y.scale(ev.Value, t.height)
				t.moved = true
			}
		case evdev.ABS_X:
			t.at.X = t.x.scale(ev.Value, t.width)
			t.moved = true
		case evdev.ABS_Y:
			t.at.Y = t.y.scale(ev.Value, t.height)
			t.moved = true
		}

	case evdev.EV_KEY:
		if ev.Code == evdev.BTN_TOUCH {
			t.touching = ev.Value != 0
		}

	case evdev.EV_SYN:
		if ev.Code == evdev.SYN_REPORT {
			return t.report(time.Duration(ev.Time.Nano()))
		}
	}
	return gesture.PointerEvent{}, false
}

func (t *translator) report(at time.Duration) (gesture.PointerEvent, bool) {
	pe := gesture.PointerEvent{X: t.at.X, Y: t.at.Y, Time: at}
	moved := t.moved
	wasDown := t.wasDown
	t.moved = false
	t.wasDown = t.touching

	switch {
	case t.touching && !wasDown:
		pe.Kind = gesture.PointerDown
	case t.touching && moved:
		pe.Kind = gesture.PointerMove
	case !t.touching && wasDown:
		pe.Kind = gesture.PointerUp
	default:
		return gesture.PointerEvent{}, false
	}
	return pe, true
}

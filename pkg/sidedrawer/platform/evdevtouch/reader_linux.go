//go:build linux

package evdevtouch

import (
	"fmt"
	"log/slog"
	"sync"

	"github.com/holoplot/go-evdev"
	"go.uber.org/atomic"

	"github.com/BrandonKowalski/sidedrawer/pkg/sidedrawer"
	"github.com/BrandonKowalski/sidedrawer/pkg/sidedrawer/gesture"
	"github.com/BrandonKowalski/sidedrawer/pkg/sidedrawer/internal"
)

const eventBuffer = 64

// Reader delivers pointer events from one touchscreen device.
type Reader struct {
	dev    *evdev.InputDevice
	events chan gesture.PointerEvent
	done   chan struct{}
	closed atomic.Bool
	wg     sync.WaitGroup
	log    *slog.Logger
}

// Open starts reading the device at path, for example /dev/input/event1.
// Positions are scaled from the device's axis range to width x height.
func Open(path string, width, height float64) (*Reader, error) {
	dev, err := evdev.Open(path)
	if err != nil {
		return nil, sidedrawer.NewInfrastructureError("open_touch_device", err)
	}

	infos, err := dev.AbsInfos()
	if err != nil {
		dev.Close()
		return nil, sidedrawer.NewInfrastructureError("open_touch_device", fmt.Errorf("read axis ranges of %s: %w", path, err))
	}

	t := newTranslator(
		axisOf(infos, evdev.ABS_MT_POSITION_X, evdev.ABS_X),
		axisOf(infos, evdev.ABS_MT_POSITION_Y, evdev.ABS_Y),
		width, height,
	)

	r := &Reader{
		dev:    dev,
		events: make(chan gesture.PointerEvent, eventBuffer),
		done:   make(chan struct{}),
		log:    internal.GetInternalLogger(),
	}

	name, _ := dev.Name()
	r.log.Info("Touch device opened", "path", path, "name", name, "x", t.x, "y", t.y)

	r.wg.Add(1)
	go r.loop(t)
	return r, nil
}

// Events returns the pointer event stream. It is closed when the device
// fails or the reader is closed.
func (r *Reader) Events() <-chan gesture.PointerEvent {
	return r.events
}

// Close stops the reader and releases the device. It is safe to call more
// than once.
func (r *Reader) Close() error {
	if !r.closed.CompareAndSwap(false, true) {
		return nil
	}
	close(r.done)
	err := r.dev.Close()
	r.wg.Wait()
	return err
}

func (r *Reader) loop(t *translator) {
	defer r.wg.Done()
	defer close(r.events)

	for {
		ev, err := r.dev.ReadOne()
		if err != nil {
			if !r.closed.Load() {
				r.log.Error("Touch device read failed", "error", err)
			}
			return
		}

		pe, ok := t.feed(ev)
		if !ok {
			continue
		}
		select {
		case r.events <- pe:
		case <-r.done:
			return
		}
	}
}

func axisOf(infos map[evdev.EvCode]evdev.AbsInfo, codes ...evdev.EvCode) axis {
	for _, code := range codes {
		if info, ok := infos[code]; ok && info.Maximum > info.Minimum {
			return axis{min: float64(info.Minimum), max: float64(info.Maximum)}
		}
	}
	return axis{}
}

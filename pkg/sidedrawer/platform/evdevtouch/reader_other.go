//go:build !linux

package evdevtouch

import (
	"github.com/BrandonKowalski/sidedrawer/pkg/sidedrawer"
	"github.com/BrandonKowalski/sidedrawer/pkg/sidedrawer/gesture"
)

// Reader is unavailable on this platform.
type Reader struct{}

func Open(path string, width, height float64) (*Reader, error) {
	return nil, sidedrawer.NewInfrastructureError("open_touch_device", ErrUnsupported)
}

func (r *Reader) Events() <-chan gesture.PointerEvent { return nil }

func (r *Reader) Close() error { return nil }

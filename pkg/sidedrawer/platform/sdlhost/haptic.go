package sdlhost

import (
	"errors"

	"github.com/veandco/go-sdl2/sdl"

	"github.com/BrandonKowalski/sidedrawer/pkg/sidedrawer"
	"github.com/BrandonKowalski/sidedrawer/pkg/sidedrawer/internal"
)

var ErrNoHapticDevice = errors.New("no rumble capable haptic device")

// Rumble plays a short, light rumble on the first haptic device. It
// implements sidedrawer.Haptic.
type Rumble struct {
	haptic   *sdl.Haptic
	Strength float32 // 0 to 1
	Length   uint32  // milliseconds
}

// OpenRumble opens the first haptic device that supports simple rumble.
func OpenRumble() (*Rumble, error) {
	n, err := sdl.NumHaptics()
	if err != nil {
		return nil, sidedrawer.NewInfrastructureError("open_haptic", err)
	}
	if n == 0 {
		return nil, sidedrawer.NewInfrastructureError("open_haptic", ErrNoHapticDevice)
	}

	h, err := sdl.HapticOpen(0)
	if err != nil {
		return nil, sidedrawer.NewInfrastructureError("open_haptic", err)
	}

	if ok, err := h.RumbleSupported(); err != nil || !ok {
		h.Close()
		if err == nil {
			err = ErrNoHapticDevice
		}
		return nil, sidedrawer.NewInfrastructureError("open_haptic", err)
	}
	if err := h.RumbleInit(); err != nil {
		h.Close()
		return nil, sidedrawer.NewInfrastructureError("open_haptic", err)
	}

	return &Rumble{haptic: h, Strength: 0.3, Length: 20}, nil
}

func (r *Rumble) ImpactOccurred() {
	if err := r.haptic.RumblePlay(r.Strength, r.Length); err != nil {
		internal.GetInternalLogger().Warn("Rumble failed", "error", err)
	}
}

func (r *Rumble) Close() {
	r.haptic.Close()
}

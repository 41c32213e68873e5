package gesture

import (
	"time"

	"github.com/BrandonKowalski/sidedrawer/pkg/sidedrawer/constants"
)

type velocitySample struct {
	at   Point
	time time.Duration
}

// VelocityTracker estimates pointer velocity in units per second from the
// samples that fall inside a trailing time window.
type VelocityTracker struct {
	samples []velocitySample
	window  time.Duration
}

// NewVelocityTracker creates a tracker with the default 100ms window.
func NewVelocityTracker() VelocityTracker {
	return VelocityTracker{window: constants.VelocityWindow}
}

// Add records a sample and drops the ones that fell out of the window.
func (v *VelocityTracker) Add(at Point, t time.Duration) {
	if v.window == 0 {
		v.window = constants.VelocityWindow
	}

	v.samples = append(v.samples, velocitySample{at: at, time: t})

	cutoff := t - v.window
	drop := 0
	for drop < len(v.samples)-1 && v.samples[drop].time < cutoff {
		drop++
	}
	if drop > 0 {
		v.samples = append(v.samples[:0], v.samples[drop:]...)
	}
}

// Velocity returns the average velocity across the window. It is zero with
// fewer than two samples or when no time has passed.
func (v *VelocityTracker) Velocity() Point {
	if len(v.samples) < 2 {
		return Point{}
	}

	first := v.samples[0]
	last := v.samples[len(v.samples)-1]
	dt := (last.time - first.time).Seconds()
	if dt <= 0 {
		return Point{}
	}

	d := last.at.Sub(first.at)
	return Point{X: d.X / dt, Y: d.Y / dt}
}

// Reset clears all samples.
func (v *VelocityTracker) Reset() {
	v.samples = v.samples[:0]
}

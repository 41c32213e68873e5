package gesture

import (
	"math"
	"testing"
	"time"
)

func near(a, b float64) bool { return math.Abs(a-b) < 1e-6 }

func TestVelocityTrackerEmpty(t *testing.T) {
	v := NewVelocityTracker()
	if got := v.Velocity(); got != (Point{}) {
		t.Errorf("empty Velocity() = %v", got)
	}

	v.Add(Point{X: 10}, 0)
	if got := v.Velocity(); got != (Point{}) {
		t.Errorf("single sample Velocity() = %v", got)
	}

	v.Add(Point{X: 20}, 0)
	if got := v.Velocity(); got != (Point{}) {
		t.Errorf("zero elapsed Velocity() = %v", got)
	}
}

func TestVelocityTrackerWindow(t *testing.T) {
	var v VelocityTracker

	// A slow start followed by a fast flick: only the flick is in the window.
	v.Add(Point{X: 0}, 0)
	v.Add(Point{X: 1}, 500*time.Millisecond)
	v.Add(Point{X: 2}, 900*time.Millisecond)
	v.Add(Point{X: 32}, 950*time.Millisecond)
	v.Add(Point{X: 62}, 1000*time.Millisecond)

	got := v.Velocity()
	want := 600.0
	if !near(got.X, want) {
		t.Errorf("Velocity().X = %v, want %v", got.X, want)
	}
}

func TestVelocityTrackerNegative(t *testing.T) {
	v := NewVelocityTracker()
	v.Add(Point{X: 100, Y: 5}, 0)
	v.Add(Point{X: 50, Y: 5}, 50*time.Millisecond)

	got := v.Velocity()
	if !near(got.X, -1000) || got.Y != 0 {
		t.Errorf("Velocity() = %v, want {-1000 0}", got)
	}

	v.Reset()
	if got := v.Velocity(); got != (Point{}) {
		t.Errorf("after Reset Velocity() = %v", got)
	}
}

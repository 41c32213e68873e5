package sidedrawer

import "testing"

func TestOffsetClamps(t *testing.T) {
	const width = 300.0

	deltas := []float64{-1e6, -301, -300, -150, -1, 0, 1, 150, 299, 300, 301, 1e6}
	for _, dir := range []Direction{Opening, Closing} {
		for _, delta := range deltas {
			got := Offset(dir, delta, width)
			if got < 0 || got > width {
				t.Errorf("Offset(%v, %v) = %v, outside [0, %v]", dir, delta, got, width)
			}
		}
	}
}

func TestOffset(t *testing.T) {
	tests := []struct {
		dir   Direction
		delta float64
		want  float64
	}{
		{Opening, 120, 120},
		{Opening, -20, 0},
		{Opening, 400, 300},
		{Closing, 0, 300},
		{Closing, -100, 200},
		{Closing, -500, 0},
		{Closing, 50, 300},
	}

	for _, tt := range tests {
		if got := Offset(tt.dir, tt.delta, 300); got != tt.want {
			t.Errorf("Offset(%v, %v) = %v, want %v", tt.dir, tt.delta, got, tt.want)
		}
	}
}

func TestOverlayOpacityMonotonic(t *testing.T) {
	const width, max = 300.0, 0.4

	prev := -1.0
	for offset := 0.0; offset <= width; offset += 7.5 {
		got := OverlayOpacity(offset, width, max)
		if got < prev {
			t.Fatalf("opacity decreased at offset %v: %v < %v", offset, got, prev)
		}
		prev = got
	}

	if got := OverlayOpacity(width, width, max); got != max {
		t.Errorf("opacity at full width = %v, want %v", got, max)
	}
	if got := OverlayOpacity(0, width, max); got != 0 {
		t.Errorf("opacity at zero = %v, want 0", got)
	}
	if got := OverlayOpacity(10, 0, max); got != 0 {
		t.Errorf("opacity with zero width = %v, want 0", got)
	}
}

func TestPanelX(t *testing.T) {
	if got := PanelX(0, 300); got != -300 {
		t.Errorf("PanelX(0) = %v, want -300", got)
	}
	if got := PanelX(300, 300); got != 0 {
		t.Errorf("PanelX(300) = %v, want 0", got)
	}
	if got := PanelX(120, 300); got != -180 {
		t.Errorf("PanelX(120) = %v, want -180", got)
	}
}

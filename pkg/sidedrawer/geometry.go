package sidedrawer

// Direction tells the geometry and commit policy which drag is in progress.
type Direction int

const (
	Opening Direction = iota // edge gesture revealing a closed drawer
	Closing                  // reverse gesture dragging an open drawer back
)

func (d Direction) String() string {
	if d == Closing {
		return "closing"
	}
	return "opening"
}

// Offset converts a drag delta along the horizontal axis into the visible
// width of the side panel, clamped to [0, panelWidth].
//
// While opening, the delta is the revealed width. While closing, the delta is
// negative toward closed, so adding it to the full width gives what remains.
func Offset(dir Direction, delta, panelWidth float64) float64 {
	if dir == Closing {
		return clamp(panelWidth+delta, 0, panelWidth)
	}
	return clamp(delta, 0, panelWidth)
}

// OverlayOpacity interpolates the dimming overlay linearly from 0 at a hidden
// panel to maxOpacity at a fully revealed one.
func OverlayOpacity(offset, panelWidth, maxOpacity float64) float64 {
	if panelWidth <= 0 {
		return 0
	}
	return offset / panelWidth * maxOpacity
}

// PanelX is the side panel's left edge for a given visible width.
func PanelX(offset, panelWidth float64) float64 {
	return -panelWidth + offset
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

package widgets

import (
	"math"

	"github.com/BrandonKowalski/sidedrawer/pkg/sidedrawer"
	"github.com/BrandonKowalski/sidedrawer/pkg/sidedrawer/gesture"
)

// FlickVelocity is the release speed that turns a carousel page regardless
// of how far it was dragged.
const FlickVelocity = 300.0

// Carousel is a horizontally paged strip. Its pan competes with the
// drawer's edge gesture.
type Carousel struct {
	Pages  []string
	Bounds sidedrawer.Rect // Set by the host on every layout

	offset float64
	base   float64
	active bool
	pan    *gesture.Recognizer
}

func NewCarousel(pages []string) *Carousel {
	c := &Carousel{Pages: pages}
	c.pan = gesture.NewPan("carousel", gesture.AxisHorizontal, c.handle)
	return c
}

// Recognizer returns the carousel's pan. Add it to the container's main layer.
func (c *Carousel) Recognizer() *gesture.Recognizer { return c.pan }

// Offset is the horizontal scroll position in host units.
func (c *Carousel) Offset() float64 { return c.offset }

// Page returns the page nearest to the scroll position.
func (c *Carousel) Page() int {
	if c.Bounds.W <= 0 {
		return 0
	}
	return int(math.Round(c.offset / c.Bounds.W))
}

// Dragging reports whether a drag owns the carousel.
func (c *Carousel) Dragging() bool { return c.active }

func (c *Carousel) maxOffset() float64 {
	return math.Max(0, float64(len(c.Pages)-1)*c.Bounds.W)
}

func (c *Carousel) handle(_ *gesture.Recognizer, s gesture.Sample) {
	switch s.Phase {
	case gesture.PhaseBegan:
		c.active = c.Bounds.Contains(s.Origin)
		c.base = c.offset

	case gesture.PhaseChanged:
		if c.active {
			c.offset = clamp(c.base-s.Translation.X, 0, c.maxOffset())
		}

	case gesture.PhaseEnded, gesture.PhaseCancelled:
		if !c.active {
			return
		}
		c.active = false

		page := int(math.Round(c.base / math.Max(c.Bounds.W, 1)))
		switch {
		case s.Translation.X < -c.Bounds.W/2 || s.Velocity.X < -FlickVelocity:
			page++
		case s.Translation.X > c.Bounds.W/2 || s.Velocity.X > FlickVelocity:
			page--
		}
		page = int(clamp(float64(page), 0, float64(len(c.Pages)-1)))
		c.offset = float64(page) * c.Bounds.W
	}
}

// List is a vertically scrolling list of rows. Its pan never competes with
// the drawer.
type List struct {
	Items     []string
	RowHeight float64
	Bounds    sidedrawer.Rect // Set by the host on every layout

	scroll float64
	base   float64
	active bool
	pan    *gesture.Recognizer
}

func NewList(items []string, rowHeight float64) *List {
	l := &List{Items: items, RowHeight: rowHeight}
	l.pan = gesture.NewPan("list", gesture.AxisVertical, l.handle)
	return l
}

// Recognizer returns the list's pan. Add it to the container's main layer.
func (l *List) Recognizer() *gesture.Recognizer { return l.pan }

// Scroll is the vertical scroll position in host units.
func (l *List) Scroll() float64 { return l.scroll }

// FirstVisible returns the index of the topmost visible row.
func (l *List) FirstVisible() int {
	if l.RowHeight <= 0 {
		return 0
	}
	return int(l.scroll / l.RowHeight)
}

func (l *List) maxScroll() float64 {
	return math.Max(0, float64(len(l.Items))*l.RowHeight-l.Bounds.H)
}

func (l *List) handle(_ *gesture.Recognizer, s gesture.Sample) {
	switch s.Phase {
	case gesture.PhaseBegan:
		l.active = l.Bounds.Contains(s.Origin)
		l.base = l.scroll
	case gesture.PhaseChanged:
		if l.active {
			l.scroll = clamp(l.base-s.Translation.Y, 0, l.maxScroll())
		}
	case gesture.PhaseEnded, gesture.PhaseCancelled:
		l.active = false
	}
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(v, hi))
}

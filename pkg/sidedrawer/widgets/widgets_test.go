package widgets

import (
	"testing"
	"time"

	"github.com/BrandonKowalski/sidedrawer/pkg/sidedrawer"
	"github.com/BrandonKowalski/sidedrawer/pkg/sidedrawer/gesture"
)

type screen struct{}

func (screen) BeginAppearanceTransition(bool, bool) {}
func (screen) EndAppearanceTransition()             {}

func drag(c *sidedrawer.Container, x0, y0, x1, y1 float64) {
	const steps = 8
	c.Dispatch(gesture.PointerEvent{Kind: gesture.PointerDown, X: x0, Y: y0})
	for i := 1; i <= steps; i++ {
		f := float64(i) / steps
		c.Dispatch(gesture.PointerEvent{
			Kind: gesture.PointerMove,
			X:    x0 + (x1-x0)*f,
			Y:    y0 + (y1-y0)*f,
			Time: time.Duration(i) * 100 * time.Millisecond,
		})
	}
	c.Dispatch(gesture.PointerEvent{Kind: gesture.PointerUp, X: x1, Y: y1, Time: steps * 100 * time.Millisecond})
}

// newScene builds a 400x800 container with a menu in the side panel and a
// carousel above a list in the main panel.
func newScene() (*sidedrawer.Container, *Menu, *Carousel, *List) {
	menu := NewMenu("Menu", []MenuItem{{Text: "Home"}, {Text: "Library"}, {Text: "Settings"}}, 100, 50)
	c := sidedrawer.New(menu, screen{}, sidedrawer.Options{
		ScreenWidth:  400,
		ScreenHeight: 800,
		Registry:     sidedrawer.NewRegistry(),
	})

	carousel := NewCarousel([]string{"one", "two", "three"})
	carousel.Bounds = sidedrawer.Rect{W: 400, H: 200}
	list := NewList(make([]string, 40), 50)
	list.Bounds = sidedrawer.Rect{Y: 200, W: 400, H: 600}

	c.AddRecognizer(menu.Recognizer(), sidedrawer.LayerSide)
	c.AddRecognizer(carousel.Recognizer(), sidedrawer.LayerMain)
	c.AddRecognizer(list.Recognizer(), sidedrawer.LayerMain)
	return c, menu, carousel, list
}

func TestCarouselPages(t *testing.T) {
	c, _, carousel, _ := newScene()

	drag(c, 300, 100, 50, 100)
	if carousel.Page() != 1 || carousel.Offset() != 400 {
		t.Fatalf("page = %d offset = %v, want 1, 400", carousel.Page(), carousel.Offset())
	}

	drag(c, 300, 100, 250, 100)
	if carousel.Page() != 1 {
		t.Errorf("short slow drag turned the page to %d", carousel.Page())
	}

	drag(c, 100, 100, 350, 100)
	if carousel.Page() != 0 {
		t.Errorf("page = %d, want 0", carousel.Page())
	}
	if c.Drawer().IsOpen() {
		t.Error("carousel drag opened the drawer")
	}
}

func TestCarouselLosesEdgeSwipe(t *testing.T) {
	c, menu, carousel, _ := newScene()

	drag(c, 5, 100, 250, 100)

	if !c.Drawer().IsOpen() {
		t.Fatal("edge swipe over the carousel did not open the drawer")
	}
	if carousel.Offset() != 0 || carousel.Dragging() {
		t.Errorf("carousel moved: offset %v", carousel.Offset())
	}
	if menu.Visibility() != Visible {
		t.Errorf("menu visibility = %v, want visible", menu.Visibility())
	}
}

func TestListScrollsAtEdge(t *testing.T) {
	c, _, _, list := newScene()

	drag(c, 5, 700, 5, 300)

	if list.Scroll() != 400 {
		t.Errorf("scroll = %v, want 400", list.Scroll())
	}
	if list.FirstVisible() != 8 {
		t.Errorf("first visible = %d, want 8", list.FirstVisible())
	}
	if c.Drawer().IsOpen() {
		t.Error("vertical drag opened the drawer")
	}

	drag(c, 200, 300, 200, 790)
	if list.Scroll() != 0 {
		t.Errorf("scroll past the top = %v, want 0", list.Scroll())
	}
}

func TestListIgnoresDragsOutsideBounds(t *testing.T) {
	c, _, _, list := newScene()

	drag(c, 200, 150, 200, 50)
	if list.Scroll() != 0 {
		t.Errorf("drag on the carousel scrolled the list to %v", list.Scroll())
	}
}

func TestMenuSelection(t *testing.T) {
	c, menu, _, _ := newScene()
	var selected []string
	menu.OnSelect = func(_ int, item MenuItem) {
		selected = append(selected, item.Text)
		c.Close(true)
	}

	c.Open(false)
	c.Dispatch(gesture.PointerEvent{Kind: gesture.PointerDown, X: 100, Y: 175})
	c.Dispatch(gesture.PointerEvent{Kind: gesture.PointerUp, X: 100, Y: 175, Time: 50 * time.Millisecond})

	if len(selected) != 1 || selected[0] != "Library" {
		t.Fatalf("selected = %v, want [Library]", selected)
	}
	if menu.Focused() != 1 {
		t.Errorf("focused = %d, want 1", menu.Focused())
	}
	if c.Drawer().IsOpen() || menu.Visibility() != Hidden {
		t.Errorf("selection did not close: open %v visibility %v", c.Drawer().IsOpen(), menu.Visibility())
	}
}

func TestMenuItemAt(t *testing.T) {
	m := NewMenu("Menu", []MenuItem{{Text: "a"}, {Text: "b"}}, 100, 50)

	tests := []struct {
		y    float64
		want int
		ok   bool
	}{
		{50, 0, false},
		{100, 0, true},
		{149, 0, true},
		{150, 1, true},
		{200, 0, false},
	}
	for _, tt := range tests {
		got, ok := m.ItemAt(tt.y)
		if got != tt.want || ok != tt.ok {
			t.Errorf("ItemAt(%v) = %d, %v, want %d, %v", tt.y, got, ok, tt.want, tt.ok)
		}
	}
}

func TestPageStaysVisibleAsMainPanel(t *testing.T) {
	menu := NewMenu("Menu", nil, 100, 50)
	page := NewPage("Home")
	c := sidedrawer.New(menu, page, sidedrawer.Options{Registry: sidedrawer.NewRegistry()})

	c.Open(false)
	c.Close(false)

	if page.Visibility() != Visible {
		t.Errorf("page visibility = %v, want visible", page.Visibility())
	}
	if menu.Visibility() != Hidden {
		t.Errorf("menu visibility = %v, want hidden", menu.Visibility())
	}
}

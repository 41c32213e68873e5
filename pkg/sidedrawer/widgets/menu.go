// Package widgets holds toolkit-agnostic content models for panels hosted in
// a sidedrawer.Container: a side Menu and the two kinds of scrollers that
// compete with the drawer for drags, a horizontal Carousel and a vertical
// List. Hosts draw them; the models only track state and gestures.
package widgets

import (
	"fmt"
	"log/slog"

	"github.com/BrandonKowalski/sidedrawer/pkg/sidedrawer/gesture"
	"github.com/BrandonKowalski/sidedrawer/pkg/sidedrawer/internal"
)

// MenuItem represents a single entry of a side Menu.
type MenuItem struct {
	Text     string // Display text for the item
	Focused  bool   // Whether this item was the last one selected
	Metadata any    // Application-specific data attached to the item
}

// Visibility follows a panel through its appearance transitions.
type Visibility int

const (
	Hidden Visibility = iota
	Appearing
	Visible
	Disappearing
)

func (v Visibility) String() string {
	switch v {
	case Hidden:
		return "hidden"
	case Appearing:
		return "appearing"
	case Visible:
		return "visible"
	case Disappearing:
		return "disappearing"
	default:
		return fmt.Sprintf("Visibility(%d)", int(v))
	}
}

// Menu is a vertical list of tappable items shown in the side panel. It is a
// sidedrawer.Panel, so it tracks whether it is on screen.
type Menu struct {
	Title        string
	Items        []MenuItem
	HeaderHeight float64 // Height of the title area above the first item
	ItemHeight   float64 // Height of each item row

	// OnSelect is called when an item is tapped.
	OnSelect func(index int, item MenuItem)

	appearance
	tap *gesture.Recognizer
	log *slog.Logger
}

// NewMenu creates a menu. Add Recognizer to the container's side layer.
func NewMenu(title string, items []MenuItem, headerHeight, itemHeight float64) *Menu {
	m := &Menu{
		Title:        title,
		Items:        items,
		HeaderHeight: headerHeight,
		ItemHeight:   itemHeight,
		log:          internal.GetInternalLogger(),
	}
	m.tap = gesture.NewTap("menu", func(_ *gesture.Recognizer, s gesture.Sample) {
		if s.Phase != gesture.PhaseEnded {
			return
		}
		if i, ok := m.ItemAt(s.Location.Y); ok {
			m.Select(i)
		}
	})
	return m
}

// Recognizer returns the menu's tap recognizer.
func (m *Menu) Recognizer() *gesture.Recognizer {
	return m.tap
}

// ItemAt returns the item index at vertical position y.
func (m *Menu) ItemAt(y float64) (int, bool) {
	if m.ItemHeight <= 0 || y < m.HeaderHeight {
		return 0, false
	}
	i := int((y - m.HeaderHeight) / m.ItemHeight)
	if i >= len(m.Items) {
		return 0, false
	}
	return i, true
}

// Select focuses item i and reports it to OnSelect.
func (m *Menu) Select(i int) {
	if i < 0 || i >= len(m.Items) {
		return
	}
	for j := range m.Items {
		m.Items[j].Focused = j == i
	}

	m.log.Debug("Menu item selected", "index", i, "text", m.Items[i].Text)
	if m.OnSelect != nil {
		m.OnSelect(i, m.Items[i])
	}
}

// Focused returns the index of the focused item, or -1.
func (m *Menu) Focused() int {
	for i, item := range m.Items {
		if item.Focused {
			return i
		}
	}
	return -1
}

// appearance tracks a panel through its appearance hooks.
type appearance struct {
	visibility Visibility
	appearing  bool
}

// Visibility reports where the panel is in its appearance transitions.
func (a *appearance) Visibility() Visibility {
	return a.visibility
}

func (a *appearance) BeginAppearanceTransition(appearing, animated bool) {
	a.appearing = appearing
	if appearing {
		a.visibility = Appearing
	} else {
		a.visibility = Disappearing
	}
}

func (a *appearance) EndAppearanceTransition() {
	if a.appearing {
		a.visibility = Visible
	} else {
		a.visibility = Hidden
	}
}

func (m *Menu) BeginAppearanceTransition(appearing, animated bool) {
	m.appearance.BeginAppearanceTransition(appearing, animated)
	m.log.Debug("Menu appearance began", "appearing", appearing, "animated", animated)
}

func (m *Menu) EndAppearanceTransition() {
	m.appearance.EndAppearanceTransition()
	m.log.Debug("Menu appearance ended", "visibility", m.visibility.String())
}

// Page is the model of a main panel. The drawer never hides the main panel,
// so a Page stays Visible unless a host drives its hooks.
type Page struct {
	Title string

	appearance
}

func NewPage(title string) *Page {
	return &Page{Title: title, appearance: appearance{visibility: Visible, appearing: true}}
}

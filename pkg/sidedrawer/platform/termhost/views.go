package termhost

import (
	"math"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"github.com/BrandonKowalski/sidedrawer/pkg/sidedrawer"
	"github.com/BrandonKowalski/sidedrawer/pkg/sidedrawer/widgets"
)

// Area is a rectangle of cells. X may be negative while the side panel is
// partly off screen.
type Area struct {
	X, Y, W, H int
}

func toArea(r sidedrawer.Rect) Area {
	return Area{
		X: int(math.Round(r.X)),
		Y: int(math.Round(r.Y)),
		W: int(math.Round(r.W)),
		H: int(math.Round(r.H)),
	}
}

// Drawable draws a panel into area.
type Drawable interface {
	Draw(s tcell.Screen, area Area)
}

// DrawableFunc adapts a function to Drawable.
type DrawableFunc func(s tcell.Screen, area Area)

func (f DrawableFunc) Draw(s tcell.Screen, area Area) { f(s, area) }

// Theme holds the styles the host draws with.
type Theme struct {
	Main      tcell.Style // Main panel background and text
	Panel     tcell.Style // Side panel background and text
	Overlay   tcell.Color // Background of dimmed cells
	Highlight tcell.Style // Focused menu item
	Accent    tcell.Style // Titles and carousel cards
	Hint      tcell.Style // Secondary text
}

// DefaultTheme returns the teal-on-dark palette.
func DefaultTheme() Theme {
	base := tcell.StyleDefault
	return Theme{
		Main:      base.Background(tcell.NewRGBColor(0x1E, 0x1E, 0x1E)).Foreground(tcell.ColorWhite),
		Panel:     base.Background(tcell.NewRGBColor(0x2B, 0x2B, 0x2B)).Foreground(tcell.ColorWhite),
		Overlay:   tcell.ColorBlack,
		Highlight: base.Background(tcell.ColorTeal).Foreground(tcell.ColorWhite),
		Accent:    base.Background(tcell.ColorTeal).Foreground(tcell.ColorWhite).Bold(true),
		Hint:      base.Background(tcell.NewRGBColor(0x1E, 0x1E, 0x1E)).Foreground(tcell.ColorGray),
	}
}

// Fill paints area with blanks in Style.
type Fill struct {
	Style tcell.Style
}

func (f Fill) Draw(s tcell.Screen, area Area) {
	fillArea(s, area, f.Style)
}

func fillArea(s tcell.Screen, area Area, style tcell.Style) {
	for y := area.Y; y < area.Y+area.H; y++ {
		for x := area.X; x < area.X+area.W; x++ {
			s.SetContent(x, y, ' ', nil, style)
		}
	}
}

// DrawText writes text from x, y without crossing maxX, honoring wide runes.
func DrawText(s tcell.Screen, x, y, maxX int, text string, style tcell.Style) {
	for _, r := range text {
		w := runewidth.RuneWidth(r)
		if w == 0 {
			continue
		}
		if x+w > maxX {
			return
		}
		s.SetContent(x, y, r, nil, style)
		x += w
	}
}

// MenuView draws a widgets.Menu, one item per row.
type MenuView struct {
	Menu  *widgets.Menu
	Theme Theme
}

func (v MenuView) Draw(s tcell.Screen, area Area) {
	fillArea(s, area, v.Theme.Panel)

	right := area.X + area.W
	DrawText(s, area.X+2, area.Y+int(v.Menu.HeaderHeight)/2, right, v.Menu.Title, v.Theme.Panel.Bold(true))

	for i, item := range v.Menu.Items {
		row := Area{
			X: area.X,
			Y: area.Y + int(v.Menu.HeaderHeight) + i*int(v.Menu.ItemHeight),
			W: area.W,
			H: int(v.Menu.ItemHeight),
		}
		style := v.Theme.Panel
		if item.Focused {
			style = v.Theme.Highlight
			fillArea(s, row, style)
		}
		DrawText(s, row.X+2, row.Y+row.H/2, right, item.Text, style)
	}
}

// CarouselView draws a widgets.Carousel as side-by-side cards.
type CarouselView struct {
	Carousel *widgets.Carousel
	Theme    Theme
}

func (v CarouselView) Draw(s tcell.Screen, _ Area) {
	c := v.Carousel
	b := toArea(c.Bounds)

	for i, page := range c.Pages {
		x := b.X + int(math.Round(float64(i)*c.Bounds.W-c.Offset()))
		card := Area{X: x + 2, Y: b.Y + 1, W: b.W - 4, H: b.H - 2}
		visible := clip(card, b)
		if visible.W <= 0 {
			continue
		}
		fillArea(s, visible, v.Theme.Accent)
		if card.X+2 >= b.X {
			DrawText(s, card.X+2, card.Y+card.H/2, b.X+b.W, page, v.Theme.Accent)
		}
	}
}

// ListView draws the visible rows of a widgets.List.
type ListView struct {
	List  *widgets.List
	Theme Theme
}

func (v ListView) Draw(s tcell.Screen, _ Area) {
	l := v.List
	b := toArea(l.Bounds)

	for i := l.FirstVisible(); i < len(l.Items); i++ {
		y := b.Y + int(math.Round(float64(i)*l.RowHeight-l.Scroll()))
		if y >= b.Y+b.H {
			break
		}
		if y < b.Y {
			continue
		}
		DrawText(s, b.X+2, y, b.X+b.W, l.Items[i], v.Theme.Main)
	}
}

// Stack draws its drawables in order over a Fill.
type Stack struct {
	Background tcell.Style
	Drawables  []Drawable
}

func (st Stack) Draw(s tcell.Screen, area Area) {
	fillArea(s, area, st.Background)
	for _, d := range st.Drawables {
		d.Draw(s, area)
	}
}

func clip(a, bounds Area) Area {
	x0 := max(a.X, bounds.X)
	y0 := max(a.Y, bounds.Y)
	x1 := min(a.X+a.W, bounds.X+bounds.W)
	y1 := min(a.Y+a.H, bounds.Y+bounds.H)
	return Area{X: x0, Y: y0, W: x1 - x0, H: y1 - y0}
}

package sdlhost

import (
	"github.com/veandco/go-sdl2/img"
	"github.com/veandco/go-sdl2/sdl"

	"github.com/BrandonKowalski/sidedrawer/pkg/sidedrawer"
	"github.com/BrandonKowalski/sidedrawer/pkg/sidedrawer/widgets"
)

// Painter draws a panel into the given area.
type Painter interface {
	Paint(r *sdl.Renderer, area sdl.Rect)
}

// PainterFunc adapts a function to Painter.
type PainterFunc func(r *sdl.Renderer, area sdl.Rect)

func (f PainterFunc) Paint(r *sdl.Renderer, area sdl.Rect) { f(r, area) }

func toSDLRect(r sidedrawer.Rect) sdl.Rect {
	return sdl.Rect{X: int32(r.X), Y: int32(r.Y), W: int32(r.W), H: int32(r.H)}
}

func fill(r *sdl.Renderer, c sdl.Color, rect sdl.Rect) {
	r.SetDrawColor(c.R, c.G, c.B, c.A)
	r.FillRect(&rect)
}

// MenuView paints a widgets.Menu.
type MenuView struct {
	Menu  *widgets.Menu
	Text  *Text
	Theme Theme
}

func (v MenuView) Paint(r *sdl.Renderer, area sdl.Rect) {
	fill(r, v.Theme.PanelColor, area)

	pad := int32(24)
	v.Text.Draw(v.Menu.Title, v.Theme.AccentColor, area.X+pad, area.Y+(int32(v.Menu.HeaderHeight)-v.Text.Height())/2)

	ih := int32(v.Menu.ItemHeight)
	for i, item := range v.Menu.Items {
		row := sdl.Rect{X: area.X, Y: area.Y + int32(v.Menu.HeaderHeight) + int32(i)*ih, W: area.W, H: ih}
		color := v.Theme.TextColor
		if item.Focused {
			fill(r, v.Theme.HighlightColor, row)
		}
		v.Text.Draw(item.Text, color, row.X+pad, row.Y+(ih-v.Text.Height())/2)
	}
}

// CarouselView paints a widgets.Carousel, one page per bounds width.
type CarouselView struct {
	Carousel *widgets.Carousel
	Text     *Text
	Theme    Theme
}

func (v CarouselView) Paint(r *sdl.Renderer, area sdl.Rect) {
	c := v.Carousel
	bounds := toSDLRect(c.Bounds)
	r.SetClipRect(&bounds)
	defer r.SetClipRect(nil)

	gap := int32(16)
	for i, page := range c.Pages {
		x := bounds.X + int32(float64(i)*c.Bounds.W-c.Offset())
		card := sdl.Rect{X: x + gap, Y: bounds.Y + gap, W: bounds.W - 2*gap, H: bounds.H - 2*gap}
		if card.X+card.W < area.X || card.X > area.X+area.W {
			continue
		}
		fill(r, v.Theme.AccentColor, card)
		v.Text.Draw(page, v.Theme.TextColor, card.X+gap, card.Y+gap)
	}
}

// ListView paints the visible rows of a widgets.List.
type ListView struct {
	List  *widgets.List
	Text  *Text
	Theme Theme
}

func (v ListView) Paint(r *sdl.Renderer, _ sdl.Rect) {
	l := v.List
	bounds := toSDLRect(l.Bounds)
	r.SetClipRect(&bounds)
	defer r.SetClipRect(nil)

	rh := int32(l.RowHeight)
	for i := l.FirstVisible(); i < len(l.Items); i++ {
		y := bounds.Y + int32(float64(i)*l.RowHeight-l.Scroll())
		if y > bounds.Y+bounds.H {
			break
		}
		v.Text.Draw(l.Items[i], v.Theme.TextColor, bounds.X+24, y+(rh-v.Text.Height())/2)
		fill(r, v.Theme.HintColor, sdl.Rect{X: bounds.X + 24, Y: y + rh - 1, W: bounds.W - 48, H: 1})
	}
}

// Stack paints its painters in order over a background color.
type Stack struct {
	Background sdl.Color
	Painters   []Painter
}

func (s Stack) Paint(r *sdl.Renderer, area sdl.Rect) {
	fill(r, s.Background, area)
	for _, p := range s.Painters {
		p.Paint(r, area)
	}
}

// LoadImage loads a PNG or JPEG file into a texture. The caller destroys it.
func LoadImage(r *sdl.Renderer, path string) (*sdl.Texture, error) {
	texture, err := img.LoadTexture(r, path)
	if err != nil {
		return nil, sidedrawer.NewInfrastructureError("load_image", err)
	}
	return texture, nil
}

// ImageView stretches a texture over the area it is given.
type ImageView struct {
	Texture *sdl.Texture
}

func (v ImageView) Paint(r *sdl.Renderer, area sdl.Rect) {
	if v.Texture == nil {
		return
	}
	r.Copy(v.Texture, nil, &area)
}

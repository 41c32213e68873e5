package sdlhost

import (
	"fmt"

	"github.com/veandco/go-sdl2/sdl"
	"github.com/veandco/go-sdl2/ttf"

	"github.com/BrandonKowalski/sidedrawer/pkg/sidedrawer"
)

// Text draws labels with a TTF font. A nil *Text draws nothing, so hosts
// without a font still run.
type Text struct {
	renderer *sdl.Renderer
	font     *ttf.Font
	cache    *TextureCache
}

func OpenText(renderer *sdl.Renderer, path string, size int) (*Text, error) {
	font, err := ttf.OpenFont(path, size)
	if err != nil {
		return nil, sidedrawer.NewInfrastructureError("open_font", err)
	}
	return &Text{renderer: renderer, font: font, cache: NewTextureCache(0)}, nil
}

// Draw renders s with its top-left corner at x, y.
func (t *Text) Draw(s string, color sdl.Color, x, y int32) {
	if t == nil || s == "" {
		return
	}

	key := fmt.Sprintf("%s#%02x%02x%02x%02x", s, color.R, color.G, color.B, color.A)
	texture, err := t.cache.Get(key, func() (*sdl.Texture, error) {
		surface, err := t.font.RenderUTF8Blended(s, color)
		if err != nil {
			return nil, err
		}
		defer surface.Free()
		return t.renderer.CreateTextureFromSurface(surface)
	})
	if err != nil {
		return
	}

	_, _, w, h, err := texture.Query()
	if err != nil {
		return
	}
	t.renderer.Copy(texture, nil, &sdl.Rect{X: x, Y: y, W: w, H: h})
}

// Height returns the font's line height.
func (t *Text) Height() int32 {
	if t == nil {
		return 0
	}
	return int32(t.font.Height())
}

func (t *Text) Close() {
	if t == nil {
		return
	}
	t.cache.Destroy()
	t.font.Close()
}

package sdlhost

import (
	"fmt"
	"image"
	"strings"
	"unsafe"

	"github.com/srwiley/oksvg"
	"github.com/srwiley/rasterx"
	"github.com/veandco/go-sdl2/sdl"

	"github.com/BrandonKowalski/sidedrawer/pkg/sidedrawer"
)

// EdgeHintSVG is the chevron drawn at the leading edge while the drawer is
// closed.
const EdgeHintSVG = `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 24 24">
<path d="M9 5 L16 12 L9 19" fill="none" stroke="#FFFFFF" stroke-width="3" stroke-linecap="round" stroke-linejoin="round"/>
</svg>`

// RasterizeSVG renders an SVG document into a size x size RGBA image.
func RasterizeSVG(svg string, size int) (*image.RGBA, error) {
	if size <= 0 {
		return nil, fmt.Errorf("invalid icon size %d", size)
	}

	icon, err := oksvg.ReadIconStream(strings.NewReader(svg))
	if err != nil {
		return nil, err
	}
	icon.SetTarget(0, 0, float64(size), float64(size))

	img := image.NewRGBA(image.Rect(0, 0, size, size))
	scanner := rasterx.NewScannerGV(size, size, img, img.Bounds())
	raster := rasterx.NewDasher(size, size, scanner)
	icon.Draw(raster, 1.0)

	return img, nil
}

// Icons turns SVG documents into cached textures.
type Icons struct {
	renderer *sdl.Renderer
	cache    *TextureCache
}

func NewIcons(renderer *sdl.Renderer) *Icons {
	return &Icons{renderer: renderer, cache: NewTextureCache(16)}
}

// Texture returns the texture for svg at the given size, tinted by color.
func (i *Icons) Texture(name, svg string, size int, color sdl.Color) (*sdl.Texture, error) {
	key := fmt.Sprintf("%s@%d#%02x%02x%02x", name, size, color.R, color.G, color.B)
	return i.cache.Get(key, func() (*sdl.Texture, error) {
		img, err := RasterizeSVG(svg, size)
		if err != nil {
			return nil, sidedrawer.NewInfrastructureError("rasterize_icon", err)
		}
		return textureFromRGBA(i.renderer, img, color)
	})
}

func (i *Icons) Destroy() {
	i.cache.Destroy()
}

func textureFromRGBA(renderer *sdl.Renderer, img *image.RGBA, color sdl.Color) (*sdl.Texture, error) {
	b := img.Bounds()
	surface, err := sdl.CreateRGBSurfaceWithFormatFrom(
		unsafe.Pointer(&img.Pix[0]),
		int32(b.Dx()), int32(b.Dy()),
		32, int32(img.Stride),
		uint32(sdl.PIXELFORMAT_ABGR8888),
	)
	if err != nil {
		return nil, sidedrawer.NewInfrastructureError("icon_surface", err)
	}
	defer surface.Free()

	texture, err := renderer.CreateTextureFromSurface(surface)
	if err != nil {
		return nil, sidedrawer.NewInfrastructureError("icon_texture", err)
	}
	texture.SetBlendMode(sdl.BLENDMODE_BLEND)
	texture.SetColorMod(color.R, color.G, color.B)
	return texture, nil
}

// Package sdlhost runs a sidedrawer.Container in an SDL2 window: it turns
// mouse and finger events into pointer events, ticks the drawer's animator,
// paints the layers in order and offers SDL rumble as the haptic capability.
package sdlhost

import (
	"os"
	"strconv"

	"github.com/veandco/go-sdl2/img"
	"github.com/veandco/go-sdl2/sdl"
	"github.com/veandco/go-sdl2/ttf"

	"github.com/BrandonKowalski/sidedrawer/pkg/sidedrawer"
	"github.com/BrandonKowalski/sidedrawer/pkg/sidedrawer/constants"
	"github.com/BrandonKowalski/sidedrawer/pkg/sidedrawer/internal"
)

// WindowOptions selects SDL window flags.
type WindowOptions struct {
	Borderless bool // Remove window decorations (SDL_WINDOW_BORDERLESS)
	Resizable  bool // Allow window resizing (SDL_WINDOW_RESIZABLE)
	Fullscreen bool // Fullscreen at desktop resolution (SDL_WINDOW_FULLSCREEN_DESKTOP)
	Hidden     bool // Start hidden (omits SDL_WINDOW_SHOWN)
}

func (wo WindowOptions) flags() uint32 {
	var flags uint32

	if !wo.Hidden {
		flags |= sdl.WINDOW_SHOWN
	}
	if wo.Resizable {
		flags |= sdl.WINDOW_RESIZABLE
	}
	if wo.Borderless {
		flags |= sdl.WINDOW_BORDERLESS
	}
	if wo.Fullscreen {
		flags |= sdl.WINDOW_FULLSCREEN_DESKTOP
	}

	return flags
}

// Window wraps the SDL window and renderer the host draws into.
type Window struct {
	Window   *sdl.Window
	Renderer *sdl.Renderer
	Title    string

	hasVSync        bool
	lastPresentTime uint64
}

// Init starts the SDL subsystems the host needs. Pair it with Quit.
func Init() error {
	if err := sdl.Init(sdl.INIT_VIDEO | sdl.INIT_EVENTS | sdl.INIT_HAPTIC); err != nil {
		return sidedrawer.NewInfrastructureError("sdl_init", err)
	}
	if err := ttf.Init(); err != nil {
		sdl.Quit()
		return sidedrawer.NewInfrastructureError("ttf_init", err)
	}
	if err := img.Init(img.INIT_PNG | img.INIT_JPG); err != nil {
		ttf.Quit()
		sdl.Quit()
		return sidedrawer.NewInfrastructureError("img_init", err)
	}
	return nil
}

// Quit shuts SDL down.
func Quit() {
	img.Quit()
	ttf.Quit()
	sdl.Quit()
}

// OpenWindow creates a window covering the current display. In development
// mode (ENVIRONMENT=DEV) it opens a decorated window sized by WINDOW_WIDTH
// and WINDOW_HEIGHT instead.
func OpenWindow(title string, opts WindowOptions) (*Window, error) {
	width, height := int32(sidedrawer.DefaultScreenWidth), int32(sidedrawer.DefaultScreenHeight)
	x, y := int32(sdl.WINDOWPOS_CENTERED), int32(sdl.WINDOWPOS_CENTERED)

	if constants.IsDevMode() {
		opts.Borderless = false
		opts.Fullscreen = false
		x, y = 50, 50
		width = envSize(constants.WindowWidthEnvVar, width)
		height = envSize(constants.WindowHeightEnvVar, height)
	} else if mode, err := sdl.GetCurrentDisplayMode(0); err == nil {
		width, height = mode.W, mode.H
	} else {
		internal.GetInternalLogger().Error("Failed to get display mode", "error", err)
	}

	internal.GetInternalLogger().Debug("Initializing SDL window", "width", width, "height", height)

	window, err := sdl.CreateWindow(title, x, y, width, height, opts.flags())
	if err != nil {
		return nil, sidedrawer.NewInfrastructureError("create_window", err)
	}

	renderer, err := sdl.CreateRenderer(window, -1, sdl.RENDERER_ACCELERATED|sdl.RENDERER_PRESENTVSYNC)
	if err != nil {
		window.Destroy()
		return nil, sidedrawer.NewInfrastructureError("create_renderer", err)
	}
	renderer.SetDrawBlendMode(sdl.BLENDMODE_BLEND)

	info, err := renderer.GetInfo()
	vsync := err == nil && info.Flags&sdl.RENDERER_PRESENTVSYNC != 0

	return &Window{
		Window:   window,
		Renderer: renderer,
		Title:    title,
		hasVSync: vsync,
	}, nil
}

func envSize(name string, fallback int32) int32 {
	v := os.Getenv(name)
	if v == "" {
		return fallback
	}
	n, err := strconv.ParseInt(v, 10, 32)
	if err != nil || n <= 0 {
		internal.GetInternalLogger().Warn("Invalid window size; using default", "variable", name, "value", v, "error", err)
		return fallback
	}
	return int32(n)
}

// Size returns the renderer output size.
func (w *Window) Size() (int32, int32) {
	width, height, err := w.Renderer.GetOutputSize()
	if err != nil {
		return w.Window.GetSize()
	}
	return width, height
}

// Present swaps the render buffer and holds frames to about 60fps when
// VSync is not available.
func (w *Window) Present() {
	w.Renderer.Present()
	if !w.hasVSync {
		now := sdl.GetTicks64()
		if elapsed := now - w.lastPresentTime; elapsed < uint64(constants.DefaultFrameInterval.Milliseconds()) {
			sdl.Delay(uint32(uint64(constants.DefaultFrameInterval.Milliseconds()) - elapsed))
		}
		w.lastPresentTime = sdl.GetTicks64()
	}
}

// Close destroys the renderer and window.
func (w *Window) Close() {
	w.Renderer.Destroy()
	w.Window.Destroy()
}

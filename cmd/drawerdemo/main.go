// Command drawerdemo opens an SDL window with a side drawer menu over a page
// holding a carousel and a list. Drag from the left edge, press M, or pick a
// menu item to exercise the drawer.
//
// Environment:
//
//	DRAWER_CONFIG        TOML config file
//	DRAWER_TOUCH_DEVICE  evdev touchscreen, e.g. /dev/input/event1
//	DRAWER_FONT          TTF font for labels
//	DRAWER_BACKGROUND    PNG or JPEG drawn behind the page
//	DRAWER_TRACE         any value enables the gesture trace
//	ENVIRONMENT=DEV      windowed mode sized by WINDOW_WIDTH and WINDOW_HEIGHT
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/veandco/go-sdl2/sdl"

	"github.com/BrandonKowalski/sidedrawer/pkg/sidedrawer"
	"github.com/BrandonKowalski/sidedrawer/pkg/sidedrawer/constants"
	"github.com/BrandonKowalski/sidedrawer/pkg/sidedrawer/platform/evdevtouch"
	"github.com/BrandonKowalski/sidedrawer/pkg/sidedrawer/platform/sdlhost"
	"github.com/BrandonKowalski/sidedrawer/pkg/sidedrawer/widgets"
)

const headerHeight = 64

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	cfg := sidedrawer.Config{}
	if path := os.Getenv(constants.ConfigPathEnvVar); path != "" {
		var err error
		if cfg, err = sidedrawer.LoadConfig(path); err != nil {
			return err
		}
	}
	cfg.ApplyLogging()
	defer sidedrawer.CloseLogger()
	if os.Getenv(constants.TraceEnvVar) != "" {
		sidedrawer.SetTraceEnabled(true)
	}

	logger := sidedrawer.GetLogger()

	if err := sdlhost.Init(); err != nil {
		return err
	}
	defer sdlhost.Quit()

	window, err := sdlhost.OpenWindow("Side Drawer", sdlhost.WindowOptions{Resizable: true})
	if err != nil {
		return err
	}
	defer window.Close()

	theme := sdlhost.DefaultTheme("")
	var text *sdlhost.Text
	if theme.FontPath != "" {
		if text, err = sdlhost.OpenText(window.Renderer, theme.FontPath, theme.FontSize); err != nil {
			logger.Warn("Labels disabled", "error", err)
		}
	}
	defer text.Close()

	w, h := window.Size()
	animator := sidedrawer.NewTweenAnimator(sdlhost.Now)

	opts := cfg.Options()
	opts.ScreenWidth, opts.ScreenHeight = float64(w), float64(h)
	opts.Animator = animator
	if rumble, err := sdlhost.OpenRumble(); err != nil {
		logger.Info("Haptic feedback disabled", "error", err)
	} else {
		defer rumble.Close()
		opts.Haptic = rumble
	}

	page := widgets.NewPage("Home")
	menu := widgets.NewMenu("Menu", []widgets.MenuItem{
		{Text: "Home"},
		{Text: "Library"},
		{Text: "Downloads"},
		{Text: "Settings"},
	}, 120, 72)
	menu.Items[0].Focused = true

	container := sidedrawer.New(menu, page, opts)
	defer container.Release()

	menu.OnSelect = func(_ int, item widgets.MenuItem) {
		page.Title = item.Text
		sidedrawer.Close(true)
	}

	carousel := widgets.NewCarousel([]string{"Featured", "New", "Popular", "Recent"})
	rows := make([]string, 50)
	for i := range rows {
		rows[i] = fmt.Sprintf("Item %d", i+1)
	}
	list := widgets.NewList(rows, 64)

	layout := func(w, h int32) {
		band := float64(h-headerHeight) / 3
		carousel.Bounds = sidedrawer.Rect{Y: headerHeight, W: float64(w), H: band}
		list.Bounds = sidedrawer.Rect{Y: headerHeight + band, W: float64(w), H: float64(h) - headerHeight - band}
	}
	layout(w, h)

	container.AddRecognizer(menu.Recognizer(), sidedrawer.LayerSide)
	container.AddRecognizer(carousel.Recognizer(), sidedrawer.LayerMain)
	container.AddRecognizer(list.Recognizer(), sidedrawer.LayerMain)

	var background sdlhost.ImageView
	if path := os.Getenv(constants.BackgroundEnvVar); path != "" {
		if background.Texture, err = sdlhost.LoadImage(window.Renderer, path); err != nil {
			logger.Warn("Background disabled", "error", err)
		} else {
			defer background.Texture.Destroy()
		}
	}

	hostOpts := sdlhost.HostOptions{
		Main: sdlhost.Stack{
			Background: theme.BackgroundColor,
			Painters: []sdlhost.Painter{
				background,
				sdlhost.PainterFunc(func(r *sdl.Renderer, area sdl.Rect) {
					text.Draw(page.Title, theme.TextColor, area.X+headerHeight, area.Y+(headerHeight-text.Height())/2)
				}),
				sdlhost.CarouselView{Carousel: carousel, Text: text, Theme: theme},
				sdlhost.ListView{List: list, Text: text, Theme: theme},
			},
		},
		Side:     sdlhost.MenuView{Menu: menu, Text: text, Theme: theme},
		Theme:    theme,
		Animator: animator,
		OnResize: layout,
	}

	if path := os.Getenv(constants.TouchDeviceEnvVar); path != "" {
		touch, err := evdevtouch.Open(path, float64(w), float64(h))
		if err != nil {
			logger.Warn("Touch input disabled", "error", err)
		} else {
			defer touch.Close()
			hostOpts.Touch = touch.Events()
		}
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	logger.Info("Drawer demo running", "width", w, "height", h, "panel_width", container.Drawer().PanelWidth())
	return sdlhost.NewHost(window, container, hostOpts).Run(ctx)
}

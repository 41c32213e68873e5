// Command drawerterm runs the side drawer demo in a terminal. Drag from the
// left column with the mouse, press M, or click a menu item. Q quits.
//
// Logs go to logs/drawerterm.log unless the config names another path.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/BrandonKowalski/sidedrawer/pkg/sidedrawer"
	"github.com/BrandonKowalski/sidedrawer/pkg/sidedrawer/constants"
	"github.com/BrandonKowalski/sidedrawer/pkg/sidedrawer/platform/termhost"
	"github.com/BrandonKowalski/sidedrawer/pkg/sidedrawer/widgets"
)

// Cell-sized defaults; the drawer's own defaults assume pixels.
const (
	edgeGestureWidth  = 2
	dragDeadZone      = 1
	fastSwipeVelocity = 60
	headerHeight      = 2
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	sidedrawer.SetQuietStdout(true)
	sidedrawer.SetLogPath("logs/drawerterm.log")

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

	screen, err := tcell.NewScreen()
	if err != nil {
		return sidedrawer.NewInfrastructureError("open_terminal", err)
	}
	if err := screen.Init(); err != nil {
		return sidedrawer.NewInfrastructureError("open_terminal", err)
	}
	defer screen.Fini()

	w, h := screen.Size()
	start := time.Now()
	animator := sidedrawer.NewTweenAnimator(func() time.Duration { return time.Since(start) })

	opts := cfg.Options()
	opts.ScreenWidth, opts.ScreenHeight = float64(w), float64(h)
	opts.Animator = animator
	if opts.EdgeGestureWidth == 0 {
		opts.EdgeGestureWidth = edgeGestureWidth
	}
	if opts.DragDeadZone == 0 {
		opts.DragDeadZone = dragDeadZone
	}
	if opts.FastSwipeVelocityThreshold == 0 {
		opts.FastSwipeVelocityThreshold = fastSwipeVelocity
	}

	page := widgets.NewPage("Home")
	menu := widgets.NewMenu("Menu", []widgets.MenuItem{
		{Text: "Home", Focused: true},
		{Text: "Library"},
		{Text: "Downloads"},
		{Text: "Settings"},
	}, 2, 2)

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
	list := widgets.NewList(rows, 1)

	layout := func(w, h int) {
		band := float64(h-headerHeight) / 3
		carousel.Bounds = sidedrawer.Rect{Y: headerHeight, W: float64(w), H: band}
		list.Bounds = sidedrawer.Rect{Y: headerHeight + band, W: float64(w), H: float64(h) - headerHeight - band}
	}
	layout(w, h)

	container.AddRecognizer(menu.Recognizer(), sidedrawer.LayerSide)
	container.AddRecognizer(carousel.Recognizer(), sidedrawer.LayerMain)
	container.AddRecognizer(list.Recognizer(), sidedrawer.LayerMain)

	theme := termhost.DefaultTheme()
	host := termhost.New(screen, container, termhost.Options{
		Main: termhost.Stack{
			Background: theme.Main,
			Drawables: []termhost.Drawable{
				termhost.DrawableFunc(func(s tcell.Screen, area termhost.Area) {
					termhost.DrawText(s, area.X+4, area.Y, area.X+area.W, page.Title, theme.Main.Bold(true))
				}),
				termhost.CarouselView{Carousel: carousel, Theme: theme},
				termhost.ListView{List: list, Theme: theme},
			},
		},
		Side:     termhost.MenuView{Menu: menu, Theme: theme},
		Theme:    theme,
		Animator: animator,
		OnResize: layout,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	sidedrawer.GetLogger().Info("Terminal drawer running", "width", w, "height", h)
	if err := host.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}

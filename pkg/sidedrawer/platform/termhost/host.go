// Package termhost runs a sidedrawer.Container in a terminal with tcell.
// Coordinates are cells: mouse drags with the primary button become pointer
// events, and the overlay dims the main panel's cells.
package termhost

import (
	"context"
	"log/slog"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/BrandonKowalski/sidedrawer/pkg/sidedrawer"
	"github.com/BrandonKowalski/sidedrawer/pkg/sidedrawer/constants"
	"github.com/BrandonKowalski/sidedrawer/pkg/sidedrawer/gesture"
	"github.com/BrandonKowalski/sidedrawer/pkg/sidedrawer/internal"
)

// Options configures a Host.
type Options struct {
	Main, Side    Drawable
	Theme         Theme
	Animator      *sidedrawer.TweenAnimator // Ticked on every frame; nil when the container jumps
	Registry      *sidedrawer.Registry      // Keyboard shortcuts control this registry; nil uses the default
	FrameInterval time.Duration             // Animation frame interval (default 16ms)

	// OnResize is called with the new size in cells.
	OnResize func(width, height int)
}

// Host runs the event loop for one container on a tcell.Screen.
type Host struct {
	screen    tcell.Screen
	container *sidedrawer.Container
	opts      Options
	input     mouseTranslator
	log       *slog.Logger
}

// New creates a host on an initialized screen.
func New(screen tcell.Screen, container *sidedrawer.Container, opts Options) *Host {
	if opts.Registry == nil {
		opts.Registry = sidedrawer.DefaultRegistry()
	}
	if opts.FrameInterval <= 0 {
		opts.FrameInterval = constants.DefaultFrameInterval
	}
	if opts.Main == nil {
		opts.Main = Fill{Style: opts.Theme.Main}
	}
	if opts.Side == nil {
		opts.Side = Fill{Style: opts.Theme.Panel}
	}

	h := &Host{
		screen:    screen,
		container: container,
		opts:      opts,
		input:     mouseTranslator{start: time.Now()},
		log:       internal.GetInternalLogger(),
	}

	w, height := screen.Size()
	h.resize(w, height)
	return h
}

// Run processes events and draws frames until Q or Ctrl-C is pressed or ctx
// is done.
func (h *Host) Run(ctx context.Context) error {
	h.screen.EnableMouse()
	h.screen.HideCursor()

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	go func() {
		ticker := time.NewTicker(h.opts.FrameInterval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				h.screen.PostEvent(tcell.NewEventInterrupt(ctx.Err()))
				return
			case <-ticker.C:
				if h.opts.Animator != nil && h.opts.Animator.Animating() {
					h.screen.PostEvent(tcell.NewEventInterrupt(nil))
				}
			}
		}
	}()

	h.Render()
	for {
		ev := h.screen.PollEvent()
		if ev == nil {
			return nil
		}
		if in, ok := ev.(*tcell.EventInterrupt); ok {
			if err, ok := in.Data().(error); ok {
				return err
			}
		}
		if quit := h.HandleEvent(ev); quit {
			return nil
		}
		h.Render()
	}
}

// HandleEvent applies one tcell event. It reports whether the host should quit.
func (h *Host) HandleEvent(ev tcell.Event) bool {
	switch e := ev.(type) {
	case *tcell.EventKey:
		switch {
		case e.Key() == tcell.KeyCtrlC, e.Rune() == 'q':
			return true
		case e.Key() == tcell.KeyEscape:
			h.opts.Registry.Close(true)
		case e.Rune() == 'm':
			h.Toggle()
		}

	case *tcell.EventResize:
		w, height := e.Size()
		h.resize(w, height)
		h.screen.Sync()

	case *tcell.EventMouse:
		if pe, ok := h.input.translate(e); ok {
			h.container.Dispatch(pe)
		}

	case *tcell.EventInterrupt:
		if h.opts.Animator != nil {
			h.opts.Animator.Tick()
		}
	}
	return false
}

// Toggle opens the current drawer if it is closed and closes it otherwise.
func (h *Host) Toggle() {
	open, ok := h.opts.Registry.IsOpen()
	if !ok {
		h.log.Warn("No drawer to toggle")
		return
	}
	if open {
		h.opts.Registry.Close(true)
	} else {
		h.opts.Registry.Open(true)
	}
}

func (h *Host) resize(w, height int) {
	h.container.Resize(float64(w), float64(height))
	if h.opts.OnResize != nil {
		h.opts.OnResize(w, height)
	}
}

// Render draws the layers in paint order and shows the screen.
func (h *Host) Render() {
	layout := h.container.Layout()
	h.screen.Clear()

	for _, layer := range sidedrawer.PaintOrder {
		switch layer {
		case sidedrawer.LayerMain:
			h.opts.Main.Draw(h.screen, toArea(layout.Main))
		case sidedrawer.LayerOverlay:
			if layout.OverlayOpacity > constants.OverlayHitTestMinOpacity {
				dim(h.screen, toArea(layout.Overlay), h.opts.Theme.Overlay)
			}
		case sidedrawer.LayerSide:
			if layout.Side.X+layout.Side.W > 0 {
				h.opts.Side.Draw(h.screen, toArea(layout.Side))
			}
		}
	}

	h.screen.Show()
}

// dim restyles every cell of area onto the overlay color, keeping its text.
func dim(s tcell.Screen, area Area, overlay tcell.Color) {
	for y := area.Y; y < area.Y+area.H; y++ {
		for x := area.X; x < area.X+area.W; x++ {
			mainc, combc, style, _ := s.GetContent(x, y)
			s.SetContent(x, y, mainc, combc, style.Background(overlay).Dim(true))
		}
	}
}

// mouseTranslator turns primary-button mouse reports into pointer events.
type mouseTranslator struct {
	start   time.Time
	buttons tcell.ButtonMask
}

func (t *mouseTranslator) translate(e *tcell.EventMouse) (gesture.PointerEvent, bool) {
	x, y := e.Position()
	buttons := e.Buttons()
	prev := t.buttons
	t.buttons = buttons

	ev := gesture.PointerEvent{X: float64(x), Y: float64(y), Time: e.When().Sub(t.start)}
	down := buttons&tcell.Button1 != 0
	wasDown := prev&tcell.Button1 != 0

	switch {
	case down && !wasDown:
		ev.Kind = gesture.PointerDown
	case down && wasDown:
		ev.Kind = gesture.PointerMove
	case !down && wasDown:
		ev.Kind = gesture.PointerUp
	default:
		return gesture.PointerEvent{}, false
	}
	return ev, true
}

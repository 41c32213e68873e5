package sdlhost

import (
	"context"
	"log/slog"
	"time"

	"github.com/veandco/go-sdl2/sdl"

	"github.com/BrandonKowalski/sidedrawer/pkg/sidedrawer"
	"github.com/BrandonKowalski/sidedrawer/pkg/sidedrawer/gesture"
	"github.com/BrandonKowalski/sidedrawer/pkg/sidedrawer/internal"
)

const edgeHintSize = 32

// touchMouseID is SDL_TOUCH_MOUSEID, the Which of mouse events SDL
// synthesizes from touches.
const touchMouseID = 0xFFFFFFFF

// Now is the SDL tick clock, for sidedrawer.NewTweenAnimator.
func Now() time.Duration {
	return time.Duration(sdl.GetTicks64()) * time.Millisecond
}

// HostOptions configures a Host.
type HostOptions struct {
	Main, Side Painter
	Theme      Theme
	Animator   *sidedrawer.TweenAnimator // Ticked once per frame; nil when the container jumps
	Registry   *sidedrawer.Registry      // Keyboard shortcuts control this registry; nil uses the default
	Touch      <-chan gesture.PointerEvent

	// OnResize is called with the new size when the window changes size.
	OnResize func(width, height int32)
}

// Host runs the event loop for one container.
type Host struct {
	window    *Window
	container *sidedrawer.Container
	opts      HostOptions
	icons     *Icons
	input     pointerTranslator
	log       *slog.Logger
}

func NewHost(window *Window, container *sidedrawer.Container, opts HostOptions) *Host {
	if opts.Registry == nil {
		opts.Registry = sidedrawer.DefaultRegistry()
	}
	if opts.Main == nil {
		opts.Main = Stack{Background: opts.Theme.BackgroundColor}
	}
	if opts.Side == nil {
		opts.Side = Stack{Background: opts.Theme.PanelColor}
	}

	w, h := window.Size()
	container.Resize(float64(w), float64(h))

	return &Host{
		window:    window,
		container: container,
		opts:      opts,
		icons:     NewIcons(window.Renderer),
		input:     pointerTranslator{width: float64(w), height: float64(h)},
		log:       internal.GetInternalLogger(),
	}
}

// Run processes events and draws frames until the window closes, Q is
// pressed or ctx is done.
func (h *Host) Run(ctx context.Context) error {
	defer h.icons.Destroy()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
			if quit := h.handleEvent(event); quit {
				return nil
			}
		}

		h.drainTouch()

		if h.opts.Animator != nil {
			h.opts.Animator.Tick()
		}
		h.render()
	}
}

func (h *Host) drainTouch() {
	for {
		select {
		case ev, ok := <-h.opts.Touch:
			if !ok {
				h.opts.Touch = nil
				return
			}
			h.container.Dispatch(ev)
		default:
			return
		}
	}
}

func (h *Host) handleEvent(event sdl.Event) bool {
	switch e := event.(type) {
	case *sdl.QuitEvent:
		return true

	case *sdl.KeyboardEvent:
		if e.Type != sdl.KEYDOWN || e.Repeat != 0 {
			return false
		}
		switch e.Keysym.Sym {
		case sdl.K_q:
			return true
		case sdl.K_m:
			h.Toggle()
		case sdl.K_ESCAPE:
			h.opts.Registry.Close(true)
		}

	case *sdl.WindowEvent:
		if e.Event == sdl.WINDOWEVENT_SIZE_CHANGED {
			h.resize(e.Data1, e.Data2)
		}
		if ev, ok := h.input.translate(event); ok {
			h.container.Dispatch(ev)
		}

	default:
		if ev, ok := h.input.translate(event); ok {
			h.container.Dispatch(ev)
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

func (h *Host) resize(w, height int32) {
	h.input.width, h.input.height = float64(w), float64(height)
	h.container.Resize(float64(w), float64(height))
	if h.opts.OnResize != nil {
		h.opts.OnResize(w, height)
	}
}

func (h *Host) render() {
	r := h.window.Renderer
	layout := h.container.Layout()

	bg := h.opts.Theme.BackgroundColor
	r.SetDrawColor(bg.R, bg.G, bg.B, bg.A)
	r.Clear()

	for _, layer := range sidedrawer.PaintOrder {
		switch layer {
		case sidedrawer.LayerMain:
			h.opts.Main.Paint(r, toSDLRect(layout.Main))

		case sidedrawer.LayerOverlay:
			if layout.OverlayOpacity <= 0 {
				continue
			}
			c := h.opts.Theme.OverlayColor
			c.A = uint8(layout.OverlayOpacity * 255)
			fill(r, c, toSDLRect(layout.Overlay))

		case sidedrawer.LayerSide:
			if layout.Side.X+layout.Side.W <= 0 {
				h.paintEdgeHint(layout)
				continue
			}
			h.opts.Side.Paint(r, toSDLRect(layout.Side))
		}
	}

	h.window.Present()
}

func (h *Host) paintEdgeHint(layout sidedrawer.Layout) {
	texture, err := h.icons.Texture("edge-hint", EdgeHintSVG, edgeHintSize, h.opts.Theme.AccentColor)
	if err != nil {
		h.log.Error("Failed to load edge hint", "error", err)
		return
	}
	dst := sdl.Rect{X: 0, Y: int32(layout.Main.H/2) - edgeHintSize/2, W: edgeHintSize, H: edgeHintSize}
	h.window.Renderer.Copy(texture, nil, &dst)
}

// pointerTranslator turns SDL mouse and finger events into pointer events
// for a single pointer. Mouse events SDL synthesizes from touches are
// dropped so a finger is not seen twice. Losing the mouse or focus while the
// pointer is down cancels it, since the matching release may never arrive.
type pointerTranslator struct {
	width, height float64

	mouseDown    bool
	fingerActive bool
	finger       sdl.FingerID
	last         gesture.Point
}

func (t *pointerTranslator) translate(event sdl.Event) (gesture.PointerEvent, bool) {
	ev, ok := t.pointer(event)
	if ok {
		t.last = ev.Location()
	}
	return ev, ok
}

func (t *pointerTranslator) pointer(event sdl.Event) (gesture.PointerEvent, bool) {
	switch e := event.(type) {
	case *sdl.WindowEvent:
		if e.Event != sdl.WINDOWEVENT_LEAVE && e.Event != sdl.WINDOWEVENT_FOCUS_LOST {
			return gesture.PointerEvent{}, false
		}
		if !t.mouseDown && !t.fingerActive {
			return gesture.PointerEvent{}, false
		}
		t.mouseDown = false
		t.fingerActive = false
		return gesture.PointerEvent{Kind: gesture.PointerCancel, X: t.last.X, Y: t.last.Y, Time: ticks(e.Timestamp)}, true

	case *sdl.MouseButtonEvent:
		if e.Which == touchMouseID || e.Button != sdl.BUTTON_LEFT || t.fingerActive {
			return gesture.PointerEvent{}, false
		}
		ev := gesture.PointerEvent{X: float64(e.X), Y: float64(e.Y), Time: ticks(e.Timestamp)}
		if e.Type == sdl.MOUSEBUTTONDOWN {
			t.mouseDown = true
			ev.Kind = gesture.PointerDown
		} else {
			if !t.mouseDown {
				return gesture.PointerEvent{}, false
			}
			t.mouseDown = false
			ev.Kind = gesture.PointerUp
		}
		return ev, true

	case *sdl.MouseMotionEvent:
		if e.Which == touchMouseID || !t.mouseDown {
			return gesture.PointerEvent{}, false
		}
		return gesture.PointerEvent{Kind: gesture.PointerMove, X: float64(e.X), Y: float64(e.Y), Time: ticks(e.Timestamp)}, true

	case *sdl.TouchFingerEvent:
		ev := gesture.PointerEvent{
			X:    float64(e.X) * t.width,
			Y:    float64(e.Y) * t.height,
			Time: ticks(e.Timestamp),
		}
		switch e.Type {
		case sdl.FINGERDOWN:
			if t.fingerActive || t.mouseDown {
				return gesture.PointerEvent{}, false
			}
			t.fingerActive = true
			t.finger = e.FingerID
			ev.Kind = gesture.PointerDown
		case sdl.FINGERMOTION:
			if !t.fingerActive || e.FingerID != t.finger {
				return gesture.PointerEvent{}, false
			}
			ev.Kind = gesture.PointerMove
		case sdl.FINGERUP:
			if !t.fingerActive || e.FingerID != t.finger {
				return gesture.PointerEvent{}, false
			}
			t.fingerActive = false
			ev.Kind = gesture.PointerUp
		default:
			return gesture.PointerEvent{}, false
		}
		return ev, true
	}

	return gesture.PointerEvent{}, false
}

func ticks(ms uint32) time.Duration {
	return time.Duration(ms) * time.Millisecond
}

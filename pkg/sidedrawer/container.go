package sidedrawer

import (
	"fmt"

	"github.com/BrandonKowalski/sidedrawer/pkg/sidedrawer/constants"
	"github.com/BrandonKowalski/sidedrawer/pkg/sidedrawer/gesture"
)

// Rect is an axis-aligned rectangle in host units.
type Rect struct {
	X, Y, W, H float64
}

// Contains reports whether p lies inside r. The right and bottom edges are
// exclusive.
func (r Rect) Contains(p gesture.Point) bool {
	return p.X >= r.X && p.X < r.X+r.W && p.Y >= r.Y && p.Y < r.Y+r.H
}

// Layer identifies one of the container's layers, bottom to top.
type Layer int

const (
	LayerMain Layer = iota
	LayerOverlay
	LayerSide
)

func (l Layer) String() string {
	switch l {
	case LayerMain:
		return "main"
	case LayerOverlay:
		return "overlay"
	case LayerSide:
		return "side"
	default:
		return fmt.Sprintf("Layer(%d)", int(l))
	}
}

// PaintOrder lists the layers in the order hosts must draw them.
var PaintOrder = []Layer{LayerMain, LayerOverlay, LayerSide}

// Layout is where the host draws each layer for the current frame.
type Layout struct {
	Main           Rect
	Overlay        Rect
	OverlayOpacity float64
	Side           Rect
}

// Container composes a side panel and a main panel with a dimming overlay
// between them, and owns the gestures that move the drawer.
type Container struct {
	side, main Panel
	drawer     *Drawer
	arbiter    Arbiter
	registry   *Registry
	set        *gesture.Set

	edgePan    *gesture.Recognizer
	closePan   *gesture.Recognizer
	overlayTap *gesture.Recognizer
	layers     map[*gesture.Recognizer]Layer

	width, height float64
}

// New builds a Container and registers its drawer as current in the
// Options' registry. Both panels are required; New panics with
// ErrMissingPanel otherwise.
func New(side, main Panel, opts Options) *Container {
	if side == nil || main == nil {
		panic(ErrMissingPanel)
	}

	opts = opts.withDefaults()
	c := &Container{
		side:     side,
		main:     main,
		drawer:   newDrawer(side, opts),
		arbiter:  Arbiter{EdgeGestureWidth: opts.EdgeGestureWidth},
		registry: opts.Registry,
		set:      gesture.NewSet(opts.DragDeadZone),
		layers:   make(map[*gesture.Recognizer]Layer),
		width:    opts.ScreenWidth,
		height:   opts.ScreenHeight,
	}

	c.edgePan = gesture.NewPan("drawer-edge", gesture.AxisHorizontal, func(_ *gesture.Recognizer, s gesture.Sample) {
		c.drawer.HandleEdgePan(s)
	})
	c.closePan = gesture.NewPan("drawer-close", gesture.AxisFree, func(_ *gesture.Recognizer, s gesture.Sample) {
		c.drawer.HandleClosePan(s)
	})
	c.overlayTap = gesture.NewTap("drawer-overlay", func(_ *gesture.Recognizer, s gesture.Sample) {
		if s.Phase == gesture.PhaseEnded {
			c.drawer.HandleTapOutside()
		}
	})

	c.set.Add(c.edgePan, c)
	c.set.Add(c.closePan, c)
	c.set.Add(c.overlayTap, c)

	c.registry.Register(c.drawer)
	return c
}

// Drawer returns the container's state machine.
func (c *Container) Drawer() *Drawer { return c.drawer }

func (c *Container) Side() Panel { return c.side }
func (c *Container) Main() Panel { return c.main }

// Open and Close drive this container directly, bypassing the registry.
func (c *Container) Open(animated bool) bool  { return c.drawer.Open(animated) }
func (c *Container) Close(animated bool) bool { return c.drawer.Close(animated) }

// Release unregisters the drawer if it is still current. Dropping the last
// reference to the Container has the same effect once it is collected.
func (c *Container) Release() {
	c.registry.Unregister(c.drawer)
}

// Resize updates the screen bounds the main panel and overlay fill. The side
// panel keeps the width it was constructed with.
func (c *Container) Resize(width, height float64) {
	c.width, c.height = width, height
}

// AddRecognizer attaches a content recognizer to a panel layer. It only
// receives touches that hit that layer and is arbitrated against the
// drawer's gestures by its axis.
func (c *Container) AddRecognizer(r *gesture.Recognizer, layer Layer) {
	c.layers[r] = layer
	c.set.Add(r, c)
}

// RemoveRecognizer detaches a content recognizer.
func (c *Container) RemoveRecognizer(r *gesture.Recognizer) {
	delete(c.layers, r)
	c.set.Remove(r)
}

// Dispatch feeds a pointer event to the container's gestures.
func (c *Container) Dispatch(ev gesture.PointerEvent) {
	c.set.Dispatch(ev)
}

// Layout reports where each layer sits for the drawer's current frame.
func (c *Container) Layout() Layout {
	screen := Rect{W: c.width, H: c.height}
	frame := c.drawer.Frame()
	return Layout{
		Main:           screen,
		Overlay:        screen,
		OverlayOpacity: frame.Opacity,
		Side: Rect{
			X: c.drawer.PanelX(),
			W: c.drawer.PanelWidth(),
			H: c.height,
		},
	}
}

// HitTest returns the topmost layer that takes touches at p. The overlay
// only takes touches while the drawer is open and the overlay is visible; a
// drawer animating shut already lets touches through to the main panel.
func (c *Container) HitTest(p gesture.Point) Layer {
	l := c.Layout()
	if l.Side.Contains(p) {
		return LayerSide
	}
	if c.drawer.IsOpen() && l.OverlayOpacity > constants.OverlayHitTestMinOpacity {
		return LayerOverlay
	}
	return LayerMain
}

func (c *Container) role(r *gesture.Recognizer) Role {
	switch r {
	case c.edgePan:
		return RoleEdgeOpen
	case c.closePan:
		return RoleDragClose
	case c.overlayTap:
		return RoleTap
	default:
		return RoleFor(r)
	}
}

// ShouldReceive implements gesture.Delegate.
func (c *Container) ShouldReceive(r *gesture.Recognizer, p gesture.Point) bool {
	switch r {
	case c.edgePan, c.closePan:
		return c.arbiter.ShouldReceive(c.role(r), p.X, c.drawer.Flags())
	case c.overlayTap:
		return c.HitTest(p) == LayerOverlay
	}

	layer, ok := c.layers[r]
	if !ok || c.HitTest(p) != layer {
		return false
	}
	return c.arbiter.ShouldReceive(c.role(r), p.X, c.drawer.Flags())
}

// ShouldRecognizeSimultaneously implements gesture.Delegate.
func (c *Container) ShouldRecognizeSimultaneously(r, other *gesture.Recognizer) bool {
	return c.arbiter.ShouldRecognizeSimultaneously(c.role(r), r.Origin().X, c.role(other), c.drawer.Flags())
}

// ShouldBeRequiredToFailBy implements gesture.Delegate.
func (c *Container) ShouldBeRequiredToFailBy(r, other *gesture.Recognizer) bool {
	return c.arbiter.ShouldBeRequiredToFailBy(c.role(r), c.role(other), other.Origin().X)
}

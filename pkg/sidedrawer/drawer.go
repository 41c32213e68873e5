package sidedrawer

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/BrandonKowalski/sidedrawer/pkg/sidedrawer/gesture"
	"github.com/BrandonKowalski/sidedrawer/pkg/sidedrawer/internal"
)

// State is where the drawer is in its interaction cycle. Closed and Open are
// resting states; the drag states last from a gesture's began to its
// terminal phase.
type State int

const (
	StateClosed State = iota
	StateOpeningDrag
	StateClosingDrag
	StateOpen
)

func (s State) String() string {
	switch s {
	case StateClosed:
		return "closed"
	case StateOpeningDrag:
		return "opening-drag"
	case StateClosingDrag:
		return "closing-drag"
	case StateOpen:
		return "open"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// Resting reports whether s is Closed or Open.
func (s State) Resting() bool {
	return s == StateClosed || s == StateOpen
}

// Panel is an embedded screen. The drawer calls the appearance hooks of the
// side panel around every transition into a resting state: begin before the
// animation starts, end once it completes.
type Panel interface {
	BeginAppearanceTransition(appearing, animated bool)
	EndAppearanceTransition()
}

// Drawer is the interaction state machine behind a Container. Gesture
// callbacks and control calls must all come from the UI thread.
type Drawer struct {
	side       Panel
	opts       Options
	policy     CommitPolicy
	msgs       *internal.Messages
	log        *slog.Logger
	panelWidth float64

	state          State
	open           bool
	edgeInProgress bool
	hapticFired    bool
	frame          Frame
	cycle          uuid.UUID

	// transitionSeq identifies the latest transition; appearing is set
	// between its begin and end hooks.
	transitionSeq int
	appearing     bool
}

func newDrawer(side Panel, opts Options) *Drawer {
	opts = opts.withDefaults()
	return &Drawer{
		side:       side,
		opts:       opts,
		policy:     NewCommitPolicy(opts.FastSwipeVelocityThreshold),
		msgs:       internal.NewMessages(opts.Language),
		log:        opts.Logger,
		panelWidth: opts.ScreenWidth * opts.PanelWidthRatio,
		state:      StateClosed,
	}
}

// IsOpen reports the drawer's committed resting state. The flag flips when a
// transition starts, not when its animation finishes, so during an animated
// transition it already reports the target state.
func (d *Drawer) IsOpen() bool { return d.open }

func (d *Drawer) State() State { return d.state }

// Flags returns the state gesture arbitration depends on.
func (d *Drawer) Flags() Flags {
	return Flags{Open: d.open, EdgeInProgress: d.edgeInProgress}
}

// HapticFired reports whether the current opening drag has fired its haptic.
func (d *Drawer) HapticFired() bool { return d.hapticFired }

func (d *Drawer) PanelWidth() float64 { return d.panelWidth }

// Frame returns the visible state, which trails IsOpen while animating.
func (d *Drawer) Frame() Frame { return d.frame }

// PanelX returns the side panel's left edge for the current frame.
func (d *Drawer) PanelX() float64 { return PanelX(d.frame.Offset, d.panelWidth) }

// Open starts a transition to the open resting state. It returns false and
// does nothing when the drawer is already open.
func (d *Drawer) Open(animated bool) bool {
	if d.open {
		d.trace(internal.MsgAlreadyOpen, nil)
		return false
	}
	d.transition(true, animated)
	return true
}

// Close starts a transition to the closed resting state. It returns false and
// does nothing when the drawer is already closed.
func (d *Drawer) Close(animated bool) bool {
	if !d.open {
		d.trace(internal.MsgAlreadyClosed, nil)
		return false
	}
	d.transition(false, animated)
	return true
}

// HandleEdgePan consumes callbacks of the leading-edge open gesture.
func (d *Drawer) HandleEdgePan(s gesture.Sample) {
	switch s.Phase {
	case gesture.PhaseBegan:
		if d.open {
			return
		}
		d.state = StateOpeningDrag
		d.edgeInProgress = true
		d.hapticFired = false
		d.cycle = uuid.New()
		d.trace(internal.MsgEdgeGestureBegan, map[string]any{"X": s.Origin.X})

	case gesture.PhaseChanged:
		if d.state != StateOpeningDrag {
			return
		}
		offset := Offset(Opening, s.Translation.X, d.panelWidth)
		d.setFrame(d.dragFrame(offset))
		d.trace(internal.MsgEdgeGestureChanged, map[string]any{
			"Offset": offset,
			"PanelX": d.PanelX(),
		})

		if !d.hapticFired && offset > 0 {
			d.hapticFired = true
			d.opts.Haptic.ImpactOccurred()
			d.trace(internal.MsgHapticFired, nil)
		}

	case gesture.PhaseEnded, gesture.PhaseCancelled:
		d.edgeInProgress = false
		if d.state != StateOpeningDrag {
			return
		}
		offset := Offset(Opening, s.Translation.X, d.panelWidth)
		decision := d.policy.Decide(Opening, offset, d.panelWidth, s.Velocity.X)
		d.trace(internal.MsgEdgeGestureEnded, map[string]any{
			"Offset":   offset,
			"Velocity": s.Velocity.X,
			"Open":     decision.Open,
		})
		d.transition(decision.Open, true)

	case gesture.PhaseFailed:
		d.edgeInProgress = false
		d.trace(internal.MsgEdgeGestureFailed, nil)
		if d.state != StateOpeningDrag {
			return
		}
		// The panel never began appearing, so there are no hooks to balance.
		d.state = StateClosed
		d.setFrame(Frame{})
	}
}

// HandleClosePan consumes callbacks of the reverse gesture. Callbacks are
// ignored while the drawer is closed.
func (d *Drawer) HandleClosePan(s gesture.Sample) {
	if !d.open {
		return
	}

	switch s.Phase {
	case gesture.PhaseBegan:
		d.state = StateClosingDrag
		d.hapticFired = false
		d.cycle = uuid.New()
		d.trace(internal.MsgCloseGestureBegan, map[string]any{"Offset": d.frame.Offset})

	case gesture.PhaseChanged:
		if d.state != StateClosingDrag {
			return
		}
		offset := Offset(Closing, s.Translation.X, d.panelWidth)
		d.setFrame(d.dragFrame(offset))
		d.trace(internal.MsgCloseGestureChanged, map[string]any{
			"Offset": offset,
			"PanelX": d.PanelX(),
		})

	case gesture.PhaseEnded, gesture.PhaseCancelled:
		if d.state != StateClosingDrag {
			return
		}
		offset := Offset(Closing, s.Translation.X, d.panelWidth)
		velocity := s.Velocity.X
		d.trace(internal.MsgCloseGestureEnded, map[string]any{
			"Offset":   offset,
			"Width":    d.panelWidth,
			"Velocity": velocity,
		})
		d.trace(internal.MsgCloseDecisionPosition, map[string]any{"Close": d.policy.closeByPosition(offset, d.panelWidth)})
		d.trace(internal.MsgCloseDecisionVelocity, map[string]any{"Close": d.policy.closeByVelocity(velocity)})

		decision := d.policy.Decide(Closing, offset, d.panelWidth, velocity)
		d.trace(internal.MsgCloseDecisionFinal, map[string]any{"Close": !decision.Open})
		d.transition(decision.Open, true)

	case gesture.PhaseFailed:
		if d.state == StateClosingDrag {
			d.state = StateOpen
		}
	}
}

// HandleTapOutside closes an open drawer unconditionally, whatever drag flags
// are pending. A drawer that is already closed, even one still animating
// shut, is left alone.
func (d *Drawer) HandleTapOutside() {
	if !d.open {
		d.trace(internal.MsgAlreadyClosed, nil)
		return
	}
	d.trace(internal.MsgTapOutside, nil)
	d.transition(false, true)
}

func (d *Drawer) transition(open, animated bool) {
	d.open = open
	if open {
		d.state = StateOpen
		d.trace(internal.MsgDrawerOpening, nil)
	} else {
		d.state = StateClosed
		d.edgeInProgress = false
		d.trace(internal.MsgDrawerClosing, nil)
	}

	var duration time.Duration
	if animated {
		duration = d.opts.AnimationDuration
	}

	// A superseded transition ends its hooks before the next one begins.
	d.endAppearance()
	d.transitionSeq++
	seq := d.transitionSeq

	d.side.BeginAppearanceTransition(open, animated)
	d.appearing = true
	d.opts.Animator.Animate(d.frame, d.restingFrame(open), duration, d.setFrame, func() {
		if seq == d.transitionSeq {
			d.endAppearance()
		}
	})
}

func (d *Drawer) endAppearance() {
	if !d.appearing {
		return
	}
	d.appearing = false
	d.side.EndAppearanceTransition()
}

func (d *Drawer) restingFrame(open bool) Frame {
	if open {
		return Frame{Offset: d.panelWidth, Opacity: d.opts.MaxOverlayOpacity}
	}
	return Frame{}
}

func (d *Drawer) dragFrame(offset float64) Frame {
	return Frame{
		Offset:  offset,
		Opacity: OverlayOpacity(offset, d.panelWidth, d.opts.MaxOverlayOpacity),
	}
}

func (d *Drawer) setFrame(f Frame) {
	d.frame = f
}

func (d *Drawer) trace(id string, data map[string]any) {
	if !d.log.Enabled(context.Background(), slog.LevelDebug) {
		return
	}

	attrs := []any{"message_id", id, "state", d.state.String()}
	if d.cycle != uuid.Nil {
		attrs = append(attrs, "cycle", d.cycle.String())
	}
	d.log.Debug(d.msgs.Text(id, data), attrs...)
}

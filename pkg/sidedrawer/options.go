package sidedrawer

import (
	"log/slog"
	"time"

	"github.com/BrandonKowalski/sidedrawer/pkg/sidedrawer/constants"
	"github.com/BrandonKowalski/sidedrawer/pkg/sidedrawer/internal"
)

// Default screen size used when Options leaves it unset.
const (
	DefaultScreenWidth  = 1024
	DefaultScreenHeight = 768
)

// Haptic is the light-impact feedback capability the drawer triggers once per
// opening drag.
type Haptic interface {
	ImpactOccurred()
}

// HapticFunc adapts a function to Haptic.
type HapticFunc func()

func (f HapticFunc) ImpactOccurred() { f() }

type noHaptic struct{}

func (noHaptic) ImpactOccurred() {}

// Options configures a Container. Zero values select the defaults; set them
// before constructing the Container.
type Options struct {
	ScreenWidth                float64       // Screen width the panel width is derived from
	ScreenHeight               float64       // Screen height used for layout
	PanelWidthRatio            float64       // Panel width as a fraction of ScreenWidth (default 0.8)
	EdgeGestureWidth           float64       // Leading-edge band that starts the open gesture (default 20)
	FastSwipeVelocityThreshold float64       // Release velocity that overrides position (default 300/s)
	MaxOverlayOpacity          float64       // Overlay opacity when fully open (default 0.4)
	AnimationDuration          time.Duration // Duration of animated transitions (default 300ms)
	DragDeadZone               float64       // Movement before a pan begins (default 4)
	Language                   string        // Language of diagnostic trace lines (default "en")

	Haptic   Haptic       // Light-impact feedback; nil disables it
	Animator Animator     // Transition driver; nil jumps straight to the target
	Logger   *slog.Logger // Diagnostic logger; nil uses the internal logger
	Registry *Registry    // Registry the drawer becomes current in; nil uses the default
}

// DefaultOptions returns Options with every default filled in.
func DefaultOptions() Options {
	return Options{}.withDefaults()
}

func (o Options) withDefaults() Options {
	if o.ScreenWidth <= 0 {
		o.ScreenWidth = DefaultScreenWidth
	}
	if o.ScreenHeight <= 0 {
		o.ScreenHeight = DefaultScreenHeight
	}
	if o.PanelWidthRatio <= 0 || o.PanelWidthRatio > 1 {
		o.PanelWidthRatio = constants.DefaultPanelWidthRatio
	}
	if o.EdgeGestureWidth <= 0 {
		o.EdgeGestureWidth = constants.DefaultEdgeGestureWidth
	}
	if o.FastSwipeVelocityThreshold <= 0 {
		o.FastSwipeVelocityThreshold = constants.DefaultFastSwipeVelocityThreshold
	}
	if o.MaxOverlayOpacity <= 0 || o.MaxOverlayOpacity > 1 {
		o.MaxOverlayOpacity = constants.DefaultMaxOverlayOpacity
	}
	if o.AnimationDuration <= 0 {
		o.AnimationDuration = constants.DefaultAnimationDuration
	}
	if o.DragDeadZone <= 0 {
		o.DragDeadZone = constants.DefaultDragDeadZone
	}
	if o.Language == "" {
		o.Language = constants.DefaultLanguage
	}
	if o.Haptic == nil {
		o.Haptic = noHaptic{}
	}
	if o.Animator == nil {
		o.Animator = ImmediateAnimator{}
	}
	if o.Logger == nil {
		o.Logger = internal.GetInternalLogger()
	}
	if o.Registry == nil {
		o.Registry = defaultRegistry
	}
	return o
}

// PanelWidth is the side panel width these options produce.
func (o Options) PanelWidth() float64 {
	o = o.withDefaults()
	return o.ScreenWidth * o.PanelWidthRatio
}

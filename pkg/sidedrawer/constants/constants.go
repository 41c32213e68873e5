// Package constants defines shared defaults, environment variable names and
// identifiers used throughout the sidedrawer packages.
package constants

import (
	"os"
	"time"
)

// Development is the environment variable value for development mode.
const Development = "DEV"

// Environment variables read by the hosts and demos.
const (
	EnvironmentEnvVar  = "ENVIRONMENT"
	WindowWidthEnvVar  = "WINDOW_WIDTH"
	WindowHeightEnvVar = "WINDOW_HEIGHT"
	ConfigPathEnvVar   = "DRAWER_CONFIG"
	TouchDeviceEnvVar  = "DRAWER_TOUCH_DEVICE"
	FontPathEnvVar     = "DRAWER_FONT"
	BackgroundEnvVar   = "DRAWER_BACKGROUND"
	TraceEnvVar        = "DRAWER_TRACE"
)

// IsDevMode returns true if running in development mode (ENVIRONMENT=DEV).
func IsDevMode() bool {
	return os.Getenv(EnvironmentEnvVar) == Development
}

// Drawer defaults. Distances are in host units (points, pixels or cells).
const (
	DefaultPanelWidthRatio            = 0.8   // Side panel width as a fraction of the screen width
	DefaultEdgeGestureWidth           = 20.0  // Width of the leading-edge band that starts the open gesture
	DefaultFastSwipeVelocityThreshold = 300.0 // Release velocity (units/second) that overrides position
	DefaultMaxOverlayOpacity          = 0.4   // Overlay opacity when the drawer is fully open
	DefaultDragDeadZone               = 4.0   // Movement before a pan begins
	DefaultLanguage                   = "en"

	DefaultAnimationDuration = 300 * time.Millisecond
)

// OverlayHitTestMinOpacity is the opacity below which the overlay is treated
// as hidden and stops taking taps.
const OverlayHitTestMinOpacity = 0.01

// VelocityWindow is how far back the velocity tracker looks.
const VelocityWindow = 100 * time.Millisecond

// Default timing constants for host loops.
const (
	DefaultFrameInterval = 16 * time.Millisecond // ~60fps pacing when VSync is unavailable
)

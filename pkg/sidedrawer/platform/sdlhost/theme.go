package sdlhost

import (
	"os"

	"github.com/veandco/go-sdl2/sdl"

	"github.com/BrandonKowalski/sidedrawer/pkg/sidedrawer/constants"
)

// Theme holds the colors and font the host paints with.
type Theme struct {
	BackgroundColor sdl.Color // Main panel background
	PanelColor      sdl.Color // Side panel background
	OverlayColor    sdl.Color // Dimming overlay; alpha comes from the drawer
	TextColor       sdl.Color // Default text color
	HighlightColor  sdl.Color // Focused menu item background
	AccentColor     sdl.Color // Carousel pages, edge hint
	HintColor       sdl.Color // Secondary text, list separators
	FontPath        string    // TTF font for labels; labels are skipped without one
	FontSize        int
}

// DefaultTheme returns the teal-on-dark palette. The font path comes from
// DRAWER_FONT when fontPath is empty.
func DefaultTheme(fontPath string) Theme {
	if fontPath == "" {
		fontPath = os.Getenv(constants.FontPathEnvVar)
	}
	return Theme{
		BackgroundColor: HexToColor(0x1E1E1E),
		PanelColor:      HexToColor(0x2B2B2B),
		OverlayColor:    HexToColor(0x000000),
		TextColor:       HexToColor(0xFFFFFF),
		HighlightColor:  HexToColor(0x008080),
		AccentColor:     HexToColor(0x008080),
		HintColor:       HexToColor(0x808080),
		FontPath:        fontPath,
		FontSize:        28,
	}
}

// HexToColor converts 0xRRGGBB to an opaque color.
func HexToColor(hex uint32) sdl.Color {
	return sdl.Color{
		R: uint8(hex >> 16),
		G: uint8(hex >> 8),
		B: uint8(hex),
		A: 0xFF,
	}
}

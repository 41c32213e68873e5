// Package sidedrawer provides a slide-out side panel container: a drawer that
// overlays a main screen, opened by an edge swipe or by explicit calls and
// closed by a reverse swipe, a tap outside the panel or explicit calls.
//
// The package is toolkit agnostic. A host (see platform/sdlhost and
// platform/termhost) feeds pointer events into a Container, ticks its
// Animator and paints the Layout it reports. The Container keeps the single
// source of truth for whether the drawer is open, which gesture handlers and
// the package-level Open, Close and IsOpen functions share.
//
// Only one drawer is externally controllable at a time: the most recently
// constructed Container becomes current in its Registry.
package sidedrawer

import (
	"log/slog"

	"github.com/BrandonKowalski/sidedrawer/pkg/sidedrawer/internal"
)

// SetLogPath sets the full path for the log file, including filename.
// Creates all necessary parent directories.
// Call before anything logs to take effect.
func SetLogPath(path string) {
	internal.SetLogPath(path)
}

// SetQuietStdout keeps log output off stdout, for hosts that draw to the
// terminal. Call before anything logs to take effect.
func SetQuietStdout(quiet bool) {
	internal.SetQuietStdout(quiet)
}

// GetLogger returns the application logger for structured logging.
func GetLogger() *slog.Logger {
	return internal.GetLogger()
}

// SetLogLevel sets the minimum log level for the application logger.
func SetLogLevel(level slog.Level) {
	internal.SetLogLevel(level)
}

// SetRawLogLevel parses and sets the log level from a string (e.g., "debug", "info", "error").
func SetRawLogLevel(level string) {
	internal.SetRawLogLevel(level)
}

// SetTraceEnabled turns the drawer's diagnostic trace lines on or off for
// containers using the internal logger. The trace never affects behavior.
func SetTraceEnabled(enabled bool) {
	if enabled {
		internal.SetInternalLogLevel(slog.LevelDebug)
	} else {
		internal.SetInternalLogLevel(slog.LevelError)
	}
}

// CloseLogger closes the log file, if one was opened.
func CloseLogger() {
	internal.CloseLogger()
}

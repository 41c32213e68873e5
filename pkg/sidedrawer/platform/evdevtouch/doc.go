// Package evdevtouch reads a Linux touchscreen through evdev and delivers
// single-pointer events scaled to screen coordinates. Only the first contact
// slot is tracked; other fingers are ignored.
//
// On other platforms Open always fails with ErrUnsupported.
package evdevtouch

import "errors"

// ErrUnsupported is returned by Open where evdev is not available.
var ErrUnsupported = errors.New("evdev touch input requires linux")

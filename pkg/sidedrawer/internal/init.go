// Package internal contains the shared infrastructure for the sidedrawer
// packages: logging and localized diagnostic messages.
// Types and functions in this package are not part of the public API.
package internal

package sidedrawer

import (
	"context"
	"log/slog"
	"weak"

	"go.uber.org/atomic"

	"github.com/BrandonKowalski/sidedrawer/pkg/sidedrawer/constants"
	"github.com/BrandonKowalski/sidedrawer/pkg/sidedrawer/internal"
)

// Registry holds a non-owning reference to the one drawer that external code
// may control. Registering a drawer supersedes the previous one. Once the
// registered drawer's Container is garbage collected the registry reports no
// instance.
type Registry struct {
	current atomic.Pointer[weak.Pointer[Drawer]]
}

var defaultRegistry = NewRegistry()

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{}
}

// DefaultRegistry returns the process-wide registry containers use unless
// Options.Registry says otherwise.
func DefaultRegistry() *Registry {
	return defaultRegistry
}

// Register makes d the current drawer.
func (r *Registry) Register(d *Drawer) {
	wp := weak.Make(d)
	r.current.Store(&wp)
}

// Unregister clears the registry if d is still the current drawer.
func (r *Registry) Unregister(d *Drawer) {
	p := r.current.Load()
	if p == nil || p.Value() != d {
		return
	}
	r.current.CompareAndSwap(p, nil)
}

// Current returns the registered drawer, or nil when none is registered or it
// has been collected.
func (r *Registry) Current() *Drawer {
	p := r.current.Load()
	if p == nil {
		return nil
	}
	return p.Value()
}

// Open opens the current drawer. It returns false when there is no drawer or
// it is already open.
func (r *Registry) Open(animated bool) bool {
	d := r.Current()
	if d == nil {
		traceNoInstance()
		return false
	}
	if d.IsOpen() {
		d.trace(internal.MsgAlreadyOpen, nil)
		return false
	}
	d.trace(internal.MsgExternalOpen, nil)
	return d.Open(animated)
}

// Close closes the current drawer. It returns false when there is no drawer
// or it is already closed.
func (r *Registry) Close(animated bool) bool {
	d := r.Current()
	if d == nil {
		traceNoInstance()
		return false
	}
	if !d.IsOpen() {
		d.trace(internal.MsgAlreadyClosed, nil)
		return false
	}
	d.trace(internal.MsgExternalClose, nil)
	return d.Close(animated)
}

// IsOpen reports whether the current drawer is open. ok is false when no
// drawer is registered.
func (r *Registry) IsOpen() (open, ok bool) {
	d := r.Current()
	if d == nil {
		return false, false
	}
	return d.IsOpen(), true
}

// Open opens the drawer registered in the default registry.
func Open(animated bool) bool {
	return defaultRegistry.Open(animated)
}

// Close closes the drawer registered in the default registry.
func Close(animated bool) bool {
	return defaultRegistry.Close(animated)
}

// IsOpen queries the drawer registered in the default registry.
func IsOpen() (open, ok bool) {
	return defaultRegistry.IsOpen()
}

// Current returns the drawer registered in the default registry, or nil.
func Current() *Drawer {
	return defaultRegistry.Current()
}

func traceNoInstance() {
	logger := internal.GetInternalLogger()
	if !logger.Enabled(context.Background(), slog.LevelDebug) {
		return
	}
	msgs := internal.NewMessages(constants.DefaultLanguage)
	logger.Debug(msgs.Text(internal.MsgNoInstance, nil), "message_id", internal.MsgNoInstance)
}

package sidedrawer

import (
	"errors"
	"fmt"
)

// ErrMissingPanel is the panic value of New when a panel is nil. It signals a
// usage bug in the host application, not a runtime condition.
var ErrMissingPanel = errors.New("sidedrawer: side and main panels are required")

// InfrastructureError represents a failure outside the interaction logic:
// configuration that cannot be read, a host that cannot open its window or
// input devices. Drawer transitions never return errors.
type InfrastructureError struct {
	Op  string // Operation that failed (e.g., "load_config", "open_window")
	Err error  // Underlying error
}

func (e *InfrastructureError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("sidedrawer: %s: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("sidedrawer: %s", e.Op)
}

func (e *InfrastructureError) Unwrap() error {
	return e.Err
}

// NewInfrastructureError creates a new infrastructure error.
func NewInfrastructureError(op string, err error) *InfrastructureError {
	return &InfrastructureError{Op: op, Err: err}
}

// IsInfrastructureError checks if an error is an infrastructure error.
func IsInfrastructureError(err error) bool {
	var infraErr *InfrastructureError
	return errors.As(err, &infraErr)
}

package capability

import (
	"errors"
	"fmt"
)

// ErrUnavailable indicates a capability could not be initialized or is
// switched off. Callers treat it as "no contribution", never as fatal.
var ErrUnavailable = errors.New("capability unavailable")

// CallError wraps a failure during a capability call.
type CallError struct {
	Capability string
	Cause      error
}

func (e *CallError) Error() string {
	return fmt.Sprintf("%s capability call failed: %v", e.Capability, e.Cause)
}

func (e *CallError) Unwrap() error {
	return e.Cause
}

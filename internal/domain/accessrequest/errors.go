package accessrequest

import (
	"fmt"
	"strings"
)

// ValidationError reports every missing required field at once, so the
// caller never needs a second round trip to discover the next problem.
type ValidationError struct {
	MissingFields []string
	ReceivedKeys  []string
	FieldTypes    map[string]string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	return fmt.Sprintf("missing required fields: %s", strings.Join(e.MissingFields, ", "))
}

// NewValidationError builds a ValidationError describing the raw input:
// which required fields are missing, which keys were actually present, and
// the runtime type of each present value.
func NewValidationError(missing []string, raw map[string]any) *ValidationError {
	keys := make([]string, 0, len(raw))
	types := make(map[string]string, len(raw))
	for k, v := range raw {
		keys = append(keys, k)
		types[k] = JSONType(v)
	}
	return &ValidationError{
		MissingFields: missing,
		ReceivedKeys:  keys,
		FieldTypes:    types,
	}
}

// PersistenceError wraps a failed durable-store write. Code carries the
// vendor error code when the driver exposes one, otherwise empty.
type PersistenceError struct {
	Code string
	Err  error
}

// Error implements the error interface.
func (e *PersistenceError) Error() string {
	if e.Code != "" {
		return fmt.Sprintf("access request persistence failed (code %s): %v", e.Code, e.Err)
	}
	return fmt.Sprintf("access request persistence failed: %v", e.Err)
}

// Unwrap exposes the underlying driver error.
func (e *PersistenceError) Unwrap() error {
	return e.Err
}

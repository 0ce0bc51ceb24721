package libevents

import (
	"fmt"

	"github.com/pkg/errors"
)

var (
	// ErrListenerPanic matches every error built from a recovered listener panic.
	ErrListenerPanic = errors.New("listener panicked")
)

// PanicError carries the value a listener panicked with.
type PanicError struct {
	Value any
}

func (e PanicError) Error() string {
	return fmt.Sprintf("%s: %v", ErrListenerPanic, e.Value)
}

// Unwrap exposes the panic value when it is an error.
func (e PanicError) Unwrap() error {
	if err, ok := e.Value.(error); ok {
		return err
	}
	return nil
}

// Is reports ErrListenerPanic as a match.
func (e PanicError) Is(target error) bool { return target == ErrListenerPanic }

func wrapPanic(value any) error {
	return errors.WithStack(PanicError{Value: value})
}

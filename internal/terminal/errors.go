package terminal

import (
	"errors"
	"fmt"
)

// Terminal errors.
var (
	// ErrNotTerminal indicates stdin or stdout is not attached to a terminal.
	ErrNotTerminal = errors.New("not a terminal")

	// ErrInputClosed indicates the input stream reached end of file.
	ErrInputClosed = errors.New("input closed")

	// ErrNotInitialized indicates a primitive was used outside Initialize/Terminate.
	ErrNotInitialized = errors.New("terminal not initialized")

	// ErrUnknownBackend indicates an unrecognized backend name.
	ErrUnknownBackend = errors.New("unknown backend")
)

// IOError is the single failure kind raised by Terminal primitives.
// It names the primitive that failed and wraps the underlying OS error.
type IOError struct {
	Op  string // Primitive name (e.g., "enable raw mode", "flush")
	Err error  // Underlying error
}

// NewIOError creates a new IOError.
func NewIOError(op string, err error) *IOError {
	return &IOError{Op: op, Err: err}
}

func (e *IOError) Error() string {
	if e == nil {
		return ""
	}
	if e.Err == nil {
		return "terminal: " + e.Op
	}
	return fmt.Sprintf("terminal: %s: %v", e.Op, e.Err)
}

func (e *IOError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// Is implements errors.Is for IOError.
// Matches both the wrapper itself and the wrapped error.
func (e *IOError) Is(target error) bool {
	if e == nil {
		return false
	}
	if t, ok := target.(*IOError); ok {
		return e == t
	}
	return errors.Is(e.Err, target)
}

// IsIOFailure reports whether any error in err's chain is an *IOError.
func IsIOFailure(err error) bool {
	var ioErr *IOError
	return errors.As(err, &ioErr)
}

// wrapIO wraps err as an *IOError for op. Nil stays nil and errors that
// already carry an *IOError are returned unchanged.
func wrapIO(op string, err error) error {
	if err == nil {
		return nil
	}
	if IsIOFailure(err) {
		return err
	}
	return &IOError{Op: op, Err: err}
}

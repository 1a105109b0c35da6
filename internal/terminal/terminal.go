package terminal

import (
	"errors"
	"fmt"
	"sync"
)

// Terminal is the façade the editor draws through.
// Drawing primitives queue commands on the backend; Execute commits them.
// A Terminal serves one session: Initialize once, Terminate once.
type Terminal struct {
	backend Backend

	mu          sync.Mutex
	initialized bool
}

// New creates a Terminal over the given backend.
func New(backend Backend) *Terminal {
	return &Terminal{backend: backend}
}

// Backend returns the wrapped backend.
func (t *Terminal) Backend() Backend {
	return t.backend
}

// Initialize enables raw mode, clears the screen, homes the caret and flushes.
// If any step after enabling raw mode fails, raw mode is disabled again
// before the error is returned.
func (t *Terminal) Initialize() error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.initialized {
		return nil
	}

	if err := t.backend.Init(); err != nil {
		return wrapIO("enable raw mode", err)
	}

	err := t.backend.Clear(ClearAll)
	if err == nil {
		err = t.backend.MoveTo(Origin)
	}
	if err == nil {
		err = t.backend.Flush()
	}
	if err != nil {
		failure := wrapIO("initialize", err)
		if finiErr := t.backend.Fini(); finiErr != nil {
			return errors.Join(failure, wrapIO("disable raw mode", finiErr))
		}
		return failure
	}

	t.initialized = true
	return nil
}

// Terminate flushes pending output, disables raw mode and clears the screen.
// Raw mode is disabled even when the flush fails. Calling Terminate on a
// terminal that is not initialized does nothing.
func (t *Terminal) Terminate() error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if !t.initialized {
		return nil
	}
	t.initialized = false

	var errs []error
	if err := t.backend.Flush(); err != nil {
		errs = append(errs, wrapIO("flush", err))
	}
	if err := t.backend.Fini(); err != nil {
		errs = append(errs, wrapIO("disable raw mode", err))
	}
	if err := t.backend.Clear(ClearAll); err != nil {
		errs = append(errs, wrapIO("clear screen", err))
	} else if err := t.backend.Flush(); err != nil {
		errs = append(errs, wrapIO("flush", err))
	}
	return errors.Join(errs...)
}

// Initialized reports whether the terminal is between Initialize and Terminate.
func (t *Terminal) Initialized() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.initialized
}

// ClearScreen queues a full-screen erase.
func (t *Terminal) ClearScreen() error {
	return t.do("clear screen", func() error {
		return t.backend.Clear(ClearAll)
	})
}

// ClearLine queues an erase of the current line.
func (t *Terminal) ClearLine() error {
	return t.do("clear line", func() error {
		return t.backend.Clear(ClearCurrentLine)
	})
}

// MoveCaretTo queues a caret relocation. Coordinates outside
// [0, MaxCoordinate] are truncated to that range.
func (t *Terminal) MoveCaretTo(pos Position) error {
	return t.do("move caret", func() error {
		return t.backend.MoveTo(pos.truncated())
	})
}

// HideCaret queues hiding the caret.
func (t *Terminal) HideCaret() error {
	return t.do("hide caret", func() error {
		return t.backend.SetCursorVisible(false)
	})
}

// ShowCaret queues showing the caret.
func (t *Terminal) ShowCaret() error {
	return t.do("show caret", func() error {
		return t.backend.SetCursorVisible(true)
	})
}

// Print queues text at the caret. Line terminators are not translated:
// raw mode needs an explicit "\r\n" to start a new row.
func (t *Terminal) Print(text string) error {
	return t.do("print", func() error {
		return t.backend.Print(text)
	})
}

// Printf formats according to a format specifier and queues the result.
func (t *Terminal) Printf(format string, args ...any) error {
	return t.Print(fmt.Sprintf(format, args...))
}

// Size queries the current viewport size. It is never cached.
func (t *Terminal) Size() (Size, error) {
	var size Size
	err := t.do("query size", func() error {
		s, err := t.backend.Size()
		size = s.truncated()
		return err
	})
	if err != nil {
		return Size{}, err
	}
	return size, nil
}

// Execute commits every queued command in the order queued.
func (t *Terminal) Execute() error {
	return t.do("flush", t.backend.Flush)
}

// ReadEvent blocks until one input event arrives.
func (t *Terminal) ReadEvent() (Event, error) {
	var ev Event
	err := t.do("read event", func() error {
		e, err := t.backend.PollEvent()
		ev = e
		return err
	})
	return ev, err
}

// do runs fn if the terminal is initialized and tags its error as op.
func (t *Terminal) do(op string, fn func() error) error {
	if !t.Initialized() {
		return fmt.Errorf("%s: %w", op, ErrNotInitialized)
	}
	return wrapIO(op, fn())
}

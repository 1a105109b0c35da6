// Package editor provides the editor session: state, control loop and rendering.
package editor

import (
	"runtime/debug"

	"github.com/dshills/hecto/internal/terminal"
)

// Default banner values.
const (
	DefaultName    = "hecto"
	DefaultVersion = "0.1.0"
)

// Options configures an Editor.
type Options struct {
	// Name is shown in the startup banner.
	Name string
	// Version is shown in the startup banner.
	Version string
	// Logger receives session diagnostics. Nil disables logging.
	Logger *Logger
}

// Editor owns one interactive session: the quit flag, the caret and the
// terminal it draws on. It is used by a single goroutine.
type Editor struct {
	term   *terminal.Terminal
	logger *Logger

	name    string
	version string

	shouldQuit bool
	caret      terminal.Position

	// size is the viewport measured by the latest render pass.
	size terminal.Size
}

// New creates an Editor drawing on term.
func New(term *terminal.Terminal, opts Options) *Editor {
	if opts.Name == "" {
		opts.Name = DefaultName
	}
	if opts.Version == "" {
		opts.Version = DefaultVersion
	}
	logger := opts.Logger
	if logger == nil {
		logger = NullLogger
	}

	return &Editor{
		term:    term,
		logger:  logger.WithComponent("editor"),
		name:    opts.Name,
		version: opts.Version,
	}
}

// Caret returns the tracked caret position.
func (e *Editor) Caret() terminal.Position {
	return e.caret
}

// ShouldQuit reports whether the quit key has been pressed.
func (e *Editor) ShouldQuit() bool {
	return e.shouldQuit
}

// ViewportSize returns the viewport size seen by the latest render pass.
func (e *Editor) ViewportSize() terminal.Size {
	return e.size
}

// Run puts the terminal into raw mode, runs the session until the quit
// key is pressed, and restores the terminal. The terminal is restored on
// every exit path, including a failing or panicking loop; the loop's
// error is returned after restoration, together with any restore error.
func (e *Editor) Run() (err error) {
	if err := e.term.Initialize(); err != nil {
		e.logger.Error("initialize terminal: %v", err)
		return WrapError(err, "start session")
	}
	e.logger.Info("session started")

	defer func() {
		if r := recover(); r != nil {
			err = NewRecoveredPanicError(r, string(debug.Stack()))
		}

		errs := NewErrorList()
		errs.Add(err)
		errs.Add(WrapError(e.term.Terminate(), "restore terminal"))
		err = errs.AsError()

		if err != nil {
			e.logger.Error("session ended: %v", err)
			return
		}
		e.logger.Info("session ended")
	}()

	return e.repl()
}

// Package editor provides the editor session: state, control loop and rendering.
package editor

import (
	"github.com/dshills/hecto/internal/terminal"
)

// repl draws the first frame, then reads, evaluates and renders one event
// at a time until the quit frame has been drawn.
func (e *Editor) repl() error {
	if err := e.refreshScreen(); err != nil {
		return err
	}

	for !e.shouldQuit {
		ev, err := e.term.ReadEvent()
		if err != nil {
			return err
		}
		e.evaluateEvent(ev)
		if err := e.refreshScreen(); err != nil {
			return err
		}
	}
	return nil
}

// evaluateEvent applies one input event to the session state.
// Only key presses count; repeats, releases and non-key events are ignored.
func (e *Editor) evaluateEvent(ev terminal.Event) {
	if !ev.IsKeyPress() {
		return
	}

	switch {
	case IsQuitEvent(ev):
		e.logger.Debug("quit requested")
		e.shouldQuit = true
	case IsNavigationKey(ev.Key):
		before := e.caret
		e.caret = Navigate(e.caret, ev.Key, e.size)
		if e.logger.Enabled(LogLevelDebug) {
			e.logger.Debug("%s: caret %v -> %v in %v", ev, before, e.caret, e.size)
		}
	default:
		// Unbound keys do nothing.
	}
}

// IsQuitEvent reports whether ev is exactly Alt+q.
func IsQuitEvent(ev terminal.Event) bool {
	return ev.Type == terminal.EventKey &&
		ev.Key == terminal.KeyRune &&
		ev.Rune == 'q' &&
		ev.Mod == terminal.ModAlt
}

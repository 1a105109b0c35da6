// Package terminal provides the terminal façade used by the editor.
//
// A Terminal wraps a Backend and exposes the small set of primitives the
// editor needs:
//
//   - Raw mode lifecycle: Initialize and Terminate, always paired
//   - Queued drawing: ClearScreen, ClearLine, MoveCaretTo, HideCaret,
//     ShowCaret and Print
//   - Commit: Execute flushes every queued command in order
//   - Queries: Size, read fresh on every call
//   - Input: ReadEvent blocks until one event arrives
//
// Nothing drawn is visible until Execute runs, so a render pass reaches
// the screen as one batch.
//
// # Backends
//
// ANSIBackend drives an xterm-compatible terminal directly with escape
// sequences and golang.org/x/term raw mode. TcellBackend renders through
// a tcell Screen. NullBackend records every call in memory for tests.
//
// Every failure from a backend reaches the caller as an *IOError.
package terminal

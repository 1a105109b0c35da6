// Package editor provides the editor session: state, control loop and rendering.
package editor

import "github.com/dshills/hecto/internal/terminal"

// IsNavigationKey reports whether k moves the caret.
func IsNavigationKey(k terminal.Key) bool {
	switch k {
	case terminal.KeyLeft, terminal.KeyRight, terminal.KeyUp, terminal.KeyDown,
		terminal.KeyHome, terminal.KeyEnd, terminal.KeyPageUp, terminal.KeyPageDown:
		return true
	}
	return false
}

// Navigate returns the caret position after pressing k in a viewport of
// the given size. Arrow keys wrap around the edges instead of stopping:
// Left from column 0 lands on the last column, Right from the last column
// lands on column 0, and likewise for Up and Down. Home and End jump to
// the first and last column, PageUp and PageDown to the first and last row.
//
// A caret outside the viewport (after a shrink) is pulled inside first.
// An axis of length zero pins that coordinate to 0. Keys that do not
// navigate return caret unchanged.
func Navigate(caret terminal.Position, k terminal.Key, size terminal.Size) terminal.Position {
	if !IsNavigationKey(k) {
		return caret
	}

	pos := terminal.Position{
		X: clampAxis(caret.X, size.Width),
		Y: clampAxis(caret.Y, size.Height),
	}

	switch k {
	case terminal.KeyLeft:
		pos.X = wrapDecrement(pos.X, size.Width)
	case terminal.KeyRight:
		pos.X = wrapIncrement(pos.X, size.Width)
	case terminal.KeyUp:
		pos.Y = wrapDecrement(pos.Y, size.Height)
	case terminal.KeyDown:
		pos.Y = wrapIncrement(pos.Y, size.Height)
	case terminal.KeyHome:
		pos.X = 0
	case terminal.KeyEnd:
		pos.X = lastIndex(size.Width)
	case terminal.KeyPageUp:
		pos.Y = 0
	case terminal.KeyPageDown:
		pos.Y = lastIndex(size.Height)
	}
	return pos
}

func wrapDecrement(v, bound int) int {
	if bound <= 0 {
		return 0
	}
	if v <= 0 {
		return bound - 1
	}
	return v - 1
}

func wrapIncrement(v, bound int) int {
	if bound <= 0 {
		return 0
	}
	if v+1 >= bound {
		return 0
	}
	return v + 1
}

func lastIndex(bound int) int {
	if bound <= 0 {
		return 0
	}
	return bound - 1
}

func clampAxis(v, bound int) int {
	if v < 0 || bound <= 0 {
		return 0
	}
	if v >= bound {
		return bound - 1
	}
	return v
}

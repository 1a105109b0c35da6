package terminal

import (
	"fmt"
	"math"
)

// MaxCoordinate is the largest column or row a backend is asked to address.
// Terminal drivers report and accept 16-bit cell coordinates; anything
// larger is truncated to this value.
const MaxCoordinate = math.MaxUint16

// Position is a zero-based cell coordinate in the viewport.
type Position struct {
	X int // column
	Y int // row
}

// Origin is the top-left cell.
var Origin = Position{}

// String returns the position as "(x,y)".
func (p Position) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

// truncated limits both coordinates to [0, MaxCoordinate].
func (p Position) truncated() Position {
	return Position{X: truncate(p.X), Y: truncate(p.Y)}
}

// Size is the viewport size in character cells.
type Size struct {
	Width  int
	Height int
}

// String returns the size as "WxH".
func (s Size) String() string {
	return fmt.Sprintf("%dx%d", s.Width, s.Height)
}

// Contains reports whether p lies inside the viewport.
func (s Size) Contains(p Position) bool {
	return p.X >= 0 && p.Y >= 0 && p.X < s.Width && p.Y < s.Height
}

func (s Size) truncated() Size {
	return Size{Width: truncate(s.Width), Height: truncate(s.Height)}
}

func truncate(v int) int {
	if v < 0 {
		return 0
	}
	if v > MaxCoordinate {
		return MaxCoordinate
	}
	return v
}

// ClearType selects what a clear command erases.
type ClearType int

const (
	// ClearAll erases the whole screen.
	ClearAll ClearType = iota
	// ClearCurrentLine erases the row holding the pen.
	ClearCurrentLine
)

// String returns a short name for the clear type.
func (c ClearType) String() string {
	switch c {
	case ClearAll:
		return "all"
	case ClearCurrentLine:
		return "line"
	default:
		return "unknown"
	}
}

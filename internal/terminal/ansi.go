package terminal

import (
	"bufio"
	"strconv"
)

// Pre-allocated ANSI sequence fragments
var (
	csi = []byte("\x1b[")

	csiClearAll  = []byte("\x1b[2J")
	csiClearLine = []byte("\x1b[2K")

	csiCursorHide = []byte("\x1b[?25l")
	csiCursorShow = []byte("\x1b[?25h")
	csiSGR0       = []byte("\x1b[0m")
)

// writeCursorPos writes a cursor positioning sequence (0-indexed input).
func writeCursorPos(w *bufio.Writer, x, y int) error {
	buf := make([]byte, 0, 16)
	buf = append(buf, csi...)
	buf = strconv.AppendInt(buf, int64(y+1), 10)
	buf = append(buf, ';')
	buf = strconv.AppendInt(buf, int64(x+1), 10)
	buf = append(buf, 'H')
	_, err := w.Write(buf)
	return err
}

// writeClear writes the erase sequence for what.
func writeClear(w *bufio.Writer, what ClearType) error {
	var err error
	switch what {
	case ClearCurrentLine:
		_, err = w.Write(csiClearLine)
	default:
		_, err = w.Write(csiClearAll)
	}
	return err
}

// writeCursorVisible writes the DECTCEM show or hide sequence.
func writeCursorVisible(w *bufio.Writer, visible bool) error {
	var err error
	if visible {
		_, err = w.Write(csiCursorShow)
	} else {
		_, err = w.Write(csiCursorHide)
	}
	return err
}

// Package editor provides the editor session: state, control loop and rendering.
package editor

import (
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/dshills/hecto/internal/terminal"
)

const (
	// emptyRowGlyph marks a viewport row with no content.
	emptyRowGlyph = "~"
	// farewell is printed on the exit frame.
	farewell = "Goodbye.\r\n"
	// newline starts the next row; raw mode does not translate "\n".
	newline = "\r\n"
)

// refreshScreen runs one render pass: hide caret, draw, place caret,
// show caret, flush. On the quit frame nothing but the farewell is drawn.
func (e *Editor) refreshScreen() error {
	if err := e.term.HideCaret(); err != nil {
		return err
	}

	if e.shouldQuit {
		if err := e.term.ClearScreen(); err != nil {
			return err
		}
		if err := e.term.Print(farewell); err != nil {
			return err
		}
	} else {
		size, err := e.term.Size()
		if err != nil {
			return err
		}
		e.size = size

		if err := e.drawRows(size); err != nil {
			return err
		}
		if err := e.term.MoveCaretTo(e.caret); err != nil {
			return err
		}
	}

	if err := e.term.ShowCaret(); err != nil {
		return err
	}
	return e.term.Execute()
}

// drawRows draws one row per viewport line, each cleared first, with the
// banner on the row two thirds of the way down.
func (e *Editor) drawRows(size terminal.Size) error {
	if err := e.term.MoveCaretTo(terminal.Origin); err != nil {
		return err
	}

	bannerRow := size.Height * 2 / 3
	for row := 0; row < size.Height; row++ {
		if err := e.term.ClearLine(); err != nil {
			return err
		}

		line := emptyRowGlyph
		if row == bannerRow {
			line = welcomeLine(e.Banner(), size.Width)
		}
		if err := e.term.Print(line); err != nil {
			return err
		}

		if row+1 < size.Height {
			if err := e.term.Print(newline); err != nil {
				return err
			}
		}
	}
	return nil
}

// Banner returns the name and version line shown on startup.
func (e *Editor) Banner() string {
	return e.name + " editor -- version " + e.version
}

// welcomeLine builds the banner row for a viewport width: the row glyph,
// then padding so the banner is centered, truncated to width cells.
// The banner starts at column width/2 - bannerWidth/2, but never on
// column 0, which holds the glyph.
func welcomeLine(banner string, width int) string {
	if width <= 0 {
		return emptyRowGlyph
	}

	offset := width/2 - runewidth.StringWidth(banner)/2
	if offset < 1 {
		offset = 1
	}

	line := emptyRowGlyph + strings.Repeat(" ", offset-1) + banner
	return runewidth.Truncate(line, width, "")
}

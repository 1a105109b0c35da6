//go:build unix

package terminal

import (
	"bufio"
	"errors"
	"io"
	"os"

	"golang.org/x/sys/unix"
	"golang.org/x/term"
)

// escapeTimeoutMs is how long to wait after a partial escape sequence
// before resolving it, e.g. a lone ESC.
const escapeTimeoutMs = 50

// ANSIBackend drives an xterm-compatible terminal with raw escape sequences.
// Output is buffered until Flush; input is read from the input file and
// decoded byte by byte.
type ANSIBackend struct {
	in    *os.File
	out   *os.File
	inFd  int
	outFd int

	oldState *term.State
	writer   *bufio.Writer

	readBuf []byte
	pending []byte
}

// NewANSIBackend creates a backend on the process's stdin and stdout.
func NewANSIBackend() *ANSIBackend {
	return NewANSIBackendFiles(os.Stdin, os.Stdout)
}

// NewANSIBackendFiles creates a backend reading from in and writing to out.
// Both must be attached to the same terminal.
func NewANSIBackendFiles(in, out *os.File) *ANSIBackend {
	return &ANSIBackend{
		in:      in,
		out:     out,
		inFd:    int(in.Fd()),
		outFd:   int(out.Fd()),
		writer:  bufio.NewWriterSize(out, 64*1024),
		readBuf: make([]byte, 256),
		pending: make([]byte, 0, 256),
	}
}

func (b *ANSIBackend) Init() error {
	if !term.IsTerminal(b.inFd) {
		return ErrNotTerminal
	}
	if b.oldState != nil {
		return nil
	}

	old, err := term.MakeRaw(b.inFd)
	if err != nil {
		return err
	}
	b.oldState = old
	return nil
}

func (b *ANSIBackend) Fini() error {
	if b.oldState == nil {
		return nil
	}
	// Leave the cursor visible and attributes reset for the shell.
	_, _ = b.writer.Write(csiCursorShow)
	_, _ = b.writer.Write(csiSGR0)
	flushErr := b.writer.Flush()

	err := term.Restore(b.inFd, b.oldState)
	b.oldState = nil
	if err != nil {
		return err
	}
	return flushErr
}

// RawMode reports whether the backend currently holds the terminal in raw mode.
func (b *ANSIBackend) RawMode() bool {
	return b.oldState != nil
}

func (b *ANSIBackend) Size() (Size, error) {
	w, h, err := term.GetSize(b.outFd)
	if err != nil {
		return Size{}, err
	}
	return Size{Width: w, Height: h}, nil
}

func (b *ANSIBackend) Clear(what ClearType) error {
	return writeClear(b.writer, what)
}

func (b *ANSIBackend) MoveTo(pos Position) error {
	return writeCursorPos(b.writer, pos.X, pos.Y)
}

func (b *ANSIBackend) SetCursorVisible(visible bool) error {
	return writeCursorVisible(b.writer, visible)
}

func (b *ANSIBackend) Print(text string) error {
	_, err := b.writer.WriteString(text)
	return err
}

func (b *ANSIBackend) Flush() error {
	return b.writer.Flush()
}

// PollEvent blocks until one complete event has been read and decoded.
// Unknown escape sequences are skipped.
func (b *ANSIBackend) PollEvent() (Event, error) {
	for {
		if len(b.pending) > 0 {
			ev, n := decodeEvent(b.pending, false)
			if n == 0 {
				// Partial sequence: wait briefly for the rest.
				ready, err := b.waitInput(escapeTimeoutMs)
				if err != nil {
					return Event{}, err
				}
				if !ready {
					ev, n = decodeEvent(b.pending, true)
				}
			}
			if n > 0 {
				b.consume(n)
				if ev.Type == EventNone {
					continue
				}
				return ev, nil
			}
		}

		if err := b.fill(); err != nil {
			return Event{}, err
		}
	}
}

// fill performs one blocking read and appends it to the pending input.
func (b *ANSIBackend) fill() error {
	n, err := b.in.Read(b.readBuf)
	if n > 0 {
		b.pending = append(b.pending, b.readBuf[:n]...)
	}
	if err != nil {
		if errors.Is(err, io.EOF) {
			if n > 0 {
				return nil
			}
			return ErrInputClosed
		}
		return err
	}
	if n == 0 {
		return ErrInputClosed
	}
	return nil
}

// waitInput polls the input descriptor for up to timeoutMs.
func (b *ANSIBackend) waitInput(timeoutMs int) (bool, error) {
	fds := []unix.PollFd{{Fd: int32(b.inFd), Events: unix.POLLIN}}
	for {
		n, err := unix.Poll(fds, timeoutMs)
		if err == unix.EINTR {
			continue
		}
		if err != nil {
			return false, err
		}
		return n > 0, nil
	}
}

// consume drops n decoded bytes from the front of the pending input.
func (b *ANSIBackend) consume(n int) {
	if n >= len(b.pending) {
		b.pending = b.pending[:0]
		return
	}
	copy(b.pending, b.pending[n:])
	b.pending = b.pending[:len(b.pending)-n]
}

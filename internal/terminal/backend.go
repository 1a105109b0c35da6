package terminal

import (
	"fmt"
	"sync"
)

// Backend defines the primitives a Terminal drives.
// Drawing methods only queue output; nothing reaches the display until Flush.
// Errors are returned unwrapped; the Terminal tags them as *IOError.
type Backend interface {
	// Init enables raw input mode.
	Init() error

	// Fini disables raw input mode and releases backend resources.
	Fini() error

	// Size returns the current viewport dimensions.
	Size() (Size, error)

	// Clear queues an erase of the screen or the current line.
	Clear(what ClearType) error

	// MoveTo queues a relocation of the pen and hardware cursor.
	MoveTo(pos Position) error

	// SetCursorVisible queues a cursor visibility change.
	SetCursorVisible(visible bool) error

	// Print queues text at the pen position.
	Print(text string) error

	// Flush commits queued output in order.
	Flush() error

	// PollEvent blocks until the next input event.
	PollEvent() (Event, error)
}

// Backend operation names, used by NullBackend call logs and fault injection.
const (
	OpInit   = "init"
	OpFini   = "fini"
	OpSize   = "size"
	OpClear  = "clear"
	OpMove   = "move"
	OpCursor = "cursor"
	OpPrint  = "print"
	OpFlush  = "flush"
	OpPoll   = "poll"
)

// NullBackend is an in-memory backend for testing.
// It records every call, serves scripted events and can fail any operation.
type NullBackend struct {
	mu sync.Mutex

	size    Size
	events  []Event
	calls   []string
	faults  map[string]error
	raw     bool
	inits   int
	finis   int
	pending []string
	flushed []string
}

// NewNullBackend creates a null backend with the given dimensions.
func NewNullBackend(width, height int) *NullBackend {
	return &NullBackend{
		size:   Size{Width: width, Height: height},
		faults: make(map[string]error),
	}
}

func (b *NullBackend) Init() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if err := b.record(OpInit); err != nil {
		return err
	}
	b.raw = true
	b.inits++
	return nil
}

func (b *NullBackend) Fini() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.finis++
	if err := b.record(OpFini); err != nil {
		return err
	}
	b.raw = false
	return nil
}

func (b *NullBackend) Size() (Size, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if err := b.record(OpSize); err != nil {
		return Size{}, err
	}
	return b.size, nil
}

func (b *NullBackend) Clear(what ClearType) error {
	return b.queue(OpClear, OpClear+" "+what.String())
}

func (b *NullBackend) MoveTo(pos Position) error {
	return b.queue(OpMove, fmt.Sprintf("%s %d,%d", OpMove, pos.X, pos.Y))
}

func (b *NullBackend) SetCursorVisible(visible bool) error {
	if visible {
		return b.queue(OpCursor, OpCursor+" show")
	}
	return b.queue(OpCursor, OpCursor+" hide")
}

func (b *NullBackend) Print(text string) error {
	return b.queue(OpPrint, OpPrint+" "+text)
}

func (b *NullBackend) Flush() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if err := b.record(OpFlush); err != nil {
		return err
	}
	b.flushed = append(b.flushed, b.pending...)
	b.pending = b.pending[:0]
	return nil
}

// PollEvent returns the next scripted event, or ErrInputClosed when none remain.
func (b *NullBackend) PollEvent() (Event, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if err := b.record(OpPoll); err != nil {
		return Event{}, err
	}
	if len(b.events) == 0 {
		return Event{}, ErrInputClosed
	}
	ev := b.events[0]
	b.events = b.events[1:]
	return ev, nil
}

// queue records a drawing command and holds it until the next Flush.
func (b *NullBackend) queue(op, call string) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.calls = append(b.calls, call)
	if err := b.fault(op); err != nil {
		return err
	}
	b.pending = append(b.pending, call)
	return nil
}

// record logs op and returns the injected fault for it, if any.
// Caller must hold b.mu.
func (b *NullBackend) record(op string) error {
	b.calls = append(b.calls, op)
	return b.fault(op)
}

// fault returns the injected error for op. Caller must hold b.mu.
func (b *NullBackend) fault(op string) error {
	return b.faults[op]
}

// PushEvents appends events to the input script.
func (b *NullBackend) PushEvents(events ...Event) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.events = append(b.events, events...)
}

// FailOn makes every later call of op return err. A nil err clears the fault.
func (b *NullBackend) FailOn(op string, err error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if err == nil {
		delete(b.faults, op)
		return
	}
	b.faults[op] = err
}

// Resize changes the size reported by later Size calls.
func (b *NullBackend) Resize(width, height int) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.size = Size{Width: width, Height: height}
}

// Calls returns a copy of every call made so far, in order.
// Drawing calls carry their argument, e.g. "move 0,0" or "print ~".
func (b *NullBackend) Calls() []string {
	b.mu.Lock()
	defer b.mu.Unlock()
	out := make([]string, len(b.calls))
	copy(out, b.calls)
	return out
}

// Flushed returns the drawing calls committed by Flush, in order.
func (b *NullBackend) Flushed() []string {
	b.mu.Lock()
	defer b.mu.Unlock()
	out := make([]string, len(b.flushed))
	copy(out, b.flushed)
	return out
}

// Pending returns the drawing calls queued since the last Flush.
func (b *NullBackend) Pending() []string {
	b.mu.Lock()
	defer b.mu.Unlock()
	out := make([]string, len(b.pending))
	copy(out, b.pending)
	return out
}

// ResetCalls clears the call log and flushed output.
func (b *NullBackend) ResetCalls() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.calls = nil
	b.flushed = nil
}

// RawMode reports whether raw mode is currently enabled.
func (b *NullBackend) RawMode() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.raw
}

// InitCount returns how many times Init succeeded.
func (b *NullBackend) InitCount() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.inits
}

// FiniCount returns how many times Fini was called.
func (b *NullBackend) FiniCount() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.finis
}

package terminal

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func newInitialized(t *testing.T, width, height int) (*Terminal, *NullBackend) {
	t.Helper()
	b := NewNullBackend(width, height)
	term := New(b)
	if err := term.Initialize(); err != nil {
		t.Fatalf("Initialize failed: %v", err)
	}
	b.ResetCalls()
	return term, b
}

func TestInitializeSequence(t *testing.T) {
	b := NewNullBackend(80, 24)
	term := New(b)

	if err := term.Initialize(); err != nil {
		t.Fatalf("Initialize failed: %v", err)
	}

	want := []string{"init", "clear all", "move 0,0", "flush"}
	if diff := cmp.Diff(want, b.Calls()); diff != "" {
		t.Errorf("Initialize calls mismatch (-want +got):\n%s", diff)
	}
	if !b.RawMode() {
		t.Error("raw mode should be enabled after Initialize")
	}
	if !term.Initialized() {
		t.Error("terminal should report initialized")
	}
}

func TestInitializeTwiceIsNoop(t *testing.T) {
	term, b := newInitialized(t, 80, 24)

	if err := term.Initialize(); err != nil {
		t.Fatalf("second Initialize failed: %v", err)
	}
	if len(b.Calls()) != 0 {
		t.Errorf("expected no backend calls, got %v", b.Calls())
	}
	if b.InitCount() != 1 {
		t.Errorf("expected 1 init, got %d", b.InitCount())
	}
}

func TestInitializeRawModeFailure(t *testing.T) {
	b := NewNullBackend(80, 24)
	osErr := errors.New("ioctl failed")
	b.FailOn(OpInit, osErr)
	term := New(b)

	err := term.Initialize()
	if err == nil {
		t.Fatal("expected error")
	}
	if !IsIOFailure(err) {
		t.Errorf("expected IOError, got %T", err)
	}
	if !errors.Is(err, osErr) {
		t.Errorf("expected wrapped OS error, got %v", err)
	}
	if b.FiniCount() != 0 {
		t.Errorf("raw mode never enabled, expected no fini, got %d", b.FiniCount())
	}
	if term.Initialized() {
		t.Error("terminal should not be initialized")
	}
}

func TestInitializeRollsBackRawMode(t *testing.T) {
	b := NewNullBackend(80, 24)
	b.FailOn(OpFlush, errors.New("write: broken pipe"))
	term := New(b)

	if err := term.Initialize(); err == nil {
		t.Fatal("expected error")
	}
	if b.RawMode() {
		t.Error("raw mode should be disabled after failed Initialize")
	}
	if b.FiniCount() != 1 {
		t.Errorf("expected 1 fini, got %d", b.FiniCount())
	}
}

func TestTerminateSequence(t *testing.T) {
	term, b := newInitialized(t, 80, 24)

	if err := term.Terminate(); err != nil {
		t.Fatalf("Terminate failed: %v", err)
	}

	want := []string{"flush", "fini", "clear all", "flush"}
	if diff := cmp.Diff(want, b.Calls()); diff != "" {
		t.Errorf("Terminate calls mismatch (-want +got):\n%s", diff)
	}
	if b.RawMode() {
		t.Error("raw mode should be disabled after Terminate")
	}
}

func TestTerminateDisablesRawModeWhenFlushFails(t *testing.T) {
	term, b := newInitialized(t, 80, 24)
	flushErr := errors.New("write: input/output error")
	b.FailOn(OpFlush, flushErr)

	err := term.Terminate()
	if !errors.Is(err, flushErr) {
		t.Errorf("expected flush error, got %v", err)
	}
	if b.RawMode() {
		t.Error("raw mode should be disabled even when flush fails")
	}
}

func TestTerminateOnlyOnce(t *testing.T) {
	term, b := newInitialized(t, 80, 24)

	if err := term.Terminate(); err != nil {
		t.Fatalf("Terminate failed: %v", err)
	}
	if err := term.Terminate(); err != nil {
		t.Fatalf("second Terminate failed: %v", err)
	}
	if b.FiniCount() != 1 {
		t.Errorf("expected 1 fini, got %d", b.FiniCount())
	}
}

func TestPrimitivesRequireInitialize(t *testing.T) {
	term := New(NewNullBackend(80, 24))

	checks := map[string]func() error{
		"ClearScreen": term.ClearScreen,
		"ClearLine":   term.ClearLine,
		"HideCaret":   term.HideCaret,
		"ShowCaret":   term.ShowCaret,
		"Execute":     term.Execute,
		"Print":       func() error { return term.Print("x") },
		"MoveCaretTo": func() error { return term.MoveCaretTo(Origin) },
		"Size": func() error {
			_, err := term.Size()
			return err
		},
	}
	for name, fn := range checks {
		if err := fn(); !errors.Is(err, ErrNotInitialized) {
			t.Errorf("%s: expected ErrNotInitialized, got %v", name, err)
		}
	}
}

func TestDrawingIsQueuedUntilExecute(t *testing.T) {
	term, b := newInitialized(t, 80, 24)

	_ = term.HideCaret()
	_ = term.ClearLine()
	_ = term.Print("~")
	_ = term.MoveCaretTo(Position{X: 3, Y: 4})
	_ = term.ShowCaret()

	if len(b.Flushed()) != 0 {
		t.Fatalf("nothing should be flushed yet, got %v", b.Flushed())
	}

	if err := term.Execute(); err != nil {
		t.Fatalf("Execute failed: %v", err)
	}

	want := []string{"cursor hide", "clear line", "print ~", "move 3,4", "cursor show"}
	if diff := cmp.Diff(want, b.Flushed()); diff != "" {
		t.Errorf("flushed commands mismatch (-want +got):\n%s", diff)
	}
	if len(b.Pending()) != 0 {
		t.Errorf("expected empty queue after Execute, got %v", b.Pending())
	}
}

func TestMoveCaretToTruncates(t *testing.T) {
	term, b := newInitialized(t, 80, 24)

	tests := []struct {
		pos  Position
		want string
	}{
		{Position{X: 5, Y: 7}, "move 5,7"},
		{Position{X: MaxCoordinate + 10, Y: 1}, "move 65535,1"},
		{Position{X: 2, Y: 1 << 20}, "move 2,65535"},
		{Position{X: -3, Y: -1}, "move 0,0"},
	}
	for _, tt := range tests {
		b.ResetCalls()
		if err := term.MoveCaretTo(tt.pos); err != nil {
			t.Fatalf("MoveCaretTo(%v) failed: %v", tt.pos, err)
		}
		calls := b.Calls()
		if len(calls) != 1 || calls[0] != tt.want {
			t.Errorf("MoveCaretTo(%v): expected %q, got %v", tt.pos, tt.want, calls)
		}
	}
}

func TestSizeIsQueriedEveryCall(t *testing.T) {
	term, b := newInitialized(t, 80, 24)

	s, err := term.Size()
	if err != nil {
		t.Fatalf("Size failed: %v", err)
	}
	if s != (Size{Width: 80, Height: 24}) {
		t.Errorf("expected 80x24, got %v", s)
	}

	b.Resize(100, 40)
	s, _ = term.Size()
	if s != (Size{Width: 100, Height: 40}) {
		t.Errorf("expected 100x40 after resize, got %v", s)
	}

	b.Resize(MaxCoordinate+1, 1)
	s, _ = term.Size()
	if s.Width != MaxCoordinate {
		t.Errorf("expected width truncated to %d, got %d", MaxCoordinate, s.Width)
	}
}

func TestPrimitiveFailuresAreIOErrors(t *testing.T) {
	tests := []struct {
		op   string
		call func(*Terminal) error
		name string
	}{
		{OpPrint, func(t *Terminal) error { return t.Print("x") }, "print"},
		{OpFlush, (*Terminal).Execute, "flush"},
		{OpClear, (*Terminal).ClearScreen, "clear screen"},
		{OpCursor, (*Terminal).HideCaret, "hide caret"},
		{OpMove, func(t *Terminal) error { return t.MoveCaretTo(Origin) }, "move caret"},
		{OpSize, func(t *Terminal) error { _, err := t.Size(); return err }, "query size"},
		{OpPoll, func(t *Terminal) error { _, err := t.ReadEvent(); return err }, "read event"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			term, b := newInitialized(t, 80, 24)
			osErr := errors.New("EIO")
			b.FailOn(tt.op, osErr)

			err := tt.call(term)
			var ioErr *IOError
			if !errors.As(err, &ioErr) {
				t.Fatalf("expected *IOError, got %T (%v)", err, err)
			}
			if ioErr.Op != tt.name {
				t.Errorf("expected op %q, got %q", tt.name, ioErr.Op)
			}
			if !errors.Is(err, osErr) {
				t.Errorf("expected wrapped OS error")
			}
		})
	}
}

func TestReadEvent(t *testing.T) {
	term, b := newInitialized(t, 80, 24)
	b.PushEvents(KeyEvent(KeyUp, ModNone), RuneEvent('q', ModAlt))

	ev, err := term.ReadEvent()
	if err != nil {
		t.Fatalf("ReadEvent failed: %v", err)
	}
	if ev.Key != KeyUp {
		t.Errorf("expected Up, got %v", ev)
	}

	ev, _ = term.ReadEvent()
	if ev.String() != "Alt+q" {
		t.Errorf("expected Alt+q, got %v", ev)
	}

	_, err = term.ReadEvent()
	if !errors.Is(err, ErrInputClosed) {
		t.Errorf("expected ErrInputClosed, got %v", err)
	}
}

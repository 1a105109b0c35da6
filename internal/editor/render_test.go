package editor

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/dshills/hecto/internal/terminal"
)

// newTestEditor returns an editor over an initialized null terminal with
// an empty call log.
func newTestEditor(t *testing.T, width, height int) (*Editor, *terminal.NullBackend) {
	t.Helper()

	backend := terminal.NewNullBackend(width, height)
	term := terminal.New(backend)
	if err := term.Initialize(); err != nil {
		t.Fatalf("Initialize failed: %v", err)
	}
	backend.ResetCalls()
	return New(term, Options{}), backend
}

func TestRefreshScreenFrame(t *testing.T) {
	e, backend := newTestEditor(t, 30, 3)

	if err := e.refreshScreen(); err != nil {
		t.Fatalf("refreshScreen failed: %v", err)
	}

	want := []string{
		"cursor hide",
		"size",
		"move 0,0",
		"clear line", "print ~", "print \r\n",
		"clear line", "print ~", "print \r\n",
		"clear line", "print ~hecto editor -- version 0.1.0",
		"move 0,0",
		"cursor show",
		"flush",
	}
	if diff := cmp.Diff(want, backend.Calls()); diff != "" {
		t.Errorf("frame mismatch (-want +got):\n%s", diff)
	}
	if len(backend.Pending()) != 0 {
		t.Errorf("expected nothing pending after a frame, got %v", backend.Pending())
	}
}

func TestRefreshScreenDrawsEveryRow(t *testing.T) {
	sizes := []terminal.Size{{Width: 80, Height: 24}, {Width: 120, Height: 1}, {Width: 5, Height: 50}}

	for _, size := range sizes {
		t.Run(size.String(), func(t *testing.T) {
			e, backend := newTestEditor(t, size.Width, size.Height)
			if err := e.refreshScreen(); err != nil {
				t.Fatalf("refreshScreen failed: %v", err)
			}

			rows, banners, clears := 0, 0, 0
			for _, call := range backend.Flushed() {
				if strings.HasPrefix(call, "print ~") {
					rows++
				}
				if strings.Contains(call, "editor -- version") {
					banners++
				}
				if call == "clear line" {
					clears++
				}
			}
			if rows != size.Height {
				t.Errorf("expected %d rows, got %d", size.Height, rows)
			}
			if clears != size.Height {
				t.Errorf("expected %d line clears, got %d", size.Height, clears)
			}
			if size.Width >= 40 && banners != 1 {
				t.Errorf("expected one banner, got %d", banners)
			}
			if e.ViewportSize() != size {
				t.Errorf("expected viewport %v, got %v", size, e.ViewportSize())
			}
		})
	}
}

func TestRefreshScreenPlacesCaret(t *testing.T) {
	e, backend := newTestEditor(t, 80, 24)
	e.caret = terminal.Position{X: 12, Y: 7}

	if err := e.refreshScreen(); err != nil {
		t.Fatalf("refreshScreen failed: %v", err)
	}

	calls := backend.Calls()
	tail := calls[len(calls)-3:]
	want := []string{"move 12,7", "cursor show", "flush"}
	if diff := cmp.Diff(want, tail); diff != "" {
		t.Errorf("frame tail mismatch (-want +got):\n%s", diff)
	}
}

func TestRefreshScreenQuitFrame(t *testing.T) {
	e, backend := newTestEditor(t, 80, 24)
	e.shouldQuit = true

	if err := e.refreshScreen(); err != nil {
		t.Fatalf("refreshScreen failed: %v", err)
	}

	want := []string{
		"cursor hide",
		"clear all",
		"print Goodbye.\r\n",
		"cursor show",
		"flush",
	}
	if diff := cmp.Diff(want, backend.Calls()); diff != "" {
		t.Errorf("quit frame mismatch (-want +got):\n%s", diff)
	}
}

func TestRefreshScreenFailure(t *testing.T) {
	e, backend := newTestEditor(t, 80, 24)
	boom := errors.New("boom")
	backend.FailOn(terminal.OpSize, boom)

	err := e.refreshScreen()
	if !errors.Is(err, boom) {
		t.Fatalf("expected boom, got %v", err)
	}
	if !terminal.IsIOFailure(err) {
		t.Errorf("expected IO failure, got %T", err)
	}
	for _, call := range backend.Calls() {
		if call == "flush" {
			t.Error("failed frame should not be flushed")
		}
	}
}

func TestWelcomeLine(t *testing.T) {
	banner := "hecto editor -- version 0.1.0"

	tests := []struct {
		name   string
		banner string
		width  int
		want   string
	}{
		{"centered", banner, 80, "~" + strings.Repeat(" ", 25) + banner},
		{"exact fit", banner, 30, "~" + banner},
		{"truncated", banner, 10, "~hecto edi"},
		{"one column", banner, 1, "~"},
		{"zero width", banner, 0, "~"},
		{"wide runes", "日本", 10, "~  日本"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := welcomeLine(tt.banner, tt.width); got != tt.want {
				t.Errorf("expected %q, got %q", tt.want, got)
			}
		})
	}
}

func TestBanner(t *testing.T) {
	e := New(terminal.New(terminal.NewNullBackend(1, 1)), Options{Name: "ed", Version: "9.9"})
	if got := e.Banner(); got != "ed editor -- version 9.9" {
		t.Errorf("expected custom banner, got %q", got)
	}

	e = New(terminal.New(terminal.NewNullBackend(1, 1)), Options{})
	if got := e.Banner(); got != "hecto editor -- version 0.1.0" {
		t.Errorf("expected default banner, got %q", got)
	}
}

package terminal

import (
	"sync"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
)

// TcellBackend implements Backend on a tcell Screen.
// tcell keeps its own cell buffer, so queued drawing maps onto SetContent
// and Flush maps onto Show. Print tracks a pen position the way a real
// terminal advances its cursor: "\r" returns to column 0 and "\n" moves
// down one row.
type TcellBackend struct {
	screen tcell.Screen
	style  tcell.Style

	mu            sync.Mutex
	pen           Position
	cursorVisible bool
	started       bool
}

// NewTcellBackend creates a backend on the controlling terminal.
func NewTcellBackend() (*TcellBackend, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	return NewTcellBackendScreen(screen), nil
}

// NewTcellBackendScreen creates a backend on an existing screen, such as
// a tcell simulation screen.
func NewTcellBackendScreen(screen tcell.Screen) *TcellBackend {
	return &TcellBackend{
		screen: screen,
		style:  tcell.StyleDefault,
	}
}

// Screen returns the underlying tcell screen.
func (t *TcellBackend) Screen() tcell.Screen {
	return t.screen
}

func (t *TcellBackend) Init() error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.started {
		return nil
	}
	if err := t.screen.Init(); err != nil {
		return err
	}
	t.started = true
	t.pen = Origin
	return nil
}

func (t *TcellBackend) Fini() error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if !t.started {
		return nil
	}
	t.started = false
	t.screen.Fini()
	return nil
}

func (t *TcellBackend) Size() (Size, error) {
	w, h := t.screen.Size()
	return Size{Width: w, Height: h}, nil
}

func (t *TcellBackend) Clear(what ClearType) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if !t.started {
		return nil
	}
	switch what {
	case ClearCurrentLine:
		w, _ := t.screen.Size()
		for x := 0; x < w; x++ {
			t.screen.SetContent(x, t.pen.Y, ' ', nil, t.style)
		}
	default:
		t.screen.Clear()
	}
	return nil
}

func (t *TcellBackend) MoveTo(pos Position) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.pen = pos
	return nil
}

func (t *TcellBackend) SetCursorVisible(visible bool) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.cursorVisible = visible
	return nil
}

func (t *TcellBackend) Print(text string) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if !t.started {
		return nil
	}
	for _, r := range text {
		switch r {
		case '\r':
			t.pen.X = 0
		case '\n':
			t.pen.Y++
		default:
			width := runewidth.RuneWidth(r)
			if width == 0 {
				continue
			}
			t.screen.SetContent(t.pen.X, t.pen.Y, r, nil, t.style)
			t.pen.X += width
		}
	}
	return nil
}

func (t *TcellBackend) Flush() error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if !t.started {
		return nil
	}
	if t.cursorVisible {
		t.screen.ShowCursor(t.pen.X, t.pen.Y)
	} else {
		t.screen.HideCursor()
	}
	t.screen.Show()
	return nil
}

// PollEvent returns the next key or resize event. Other tcell events are
// reported as EventNone.
func (t *TcellBackend) PollEvent() (Event, error) {
	ev := t.screen.PollEvent()
	if ev == nil {
		return Event{}, ErrInputClosed
	}
	return convertTcellEvent(ev), nil
}

// convertTcellEvent converts tcell events to our Event type.
func convertTcellEvent(ev tcell.Event) Event {
	switch e := ev.(type) {
	case *tcell.EventKey:
		return convertTcellKey(e)
	case *tcell.EventResize:
		w, h := e.Size()
		return ResizeEvent(w, h)
	default:
		return Event{Type: EventNone}
	}
}

// convertTcellKey converts a tcell key event. Control characters come back
// as the corresponding letter with ModCtrl.
func convertTcellKey(e *tcell.EventKey) Event {
	mod := convertTcellMod(e.Modifiers())
	k := e.Key()

	switch k {
	case tcell.KeyRune:
		return RuneEvent(e.Rune(), mod)
	case tcell.KeyEscape:
		return KeyEvent(KeyEscape, mod)
	case tcell.KeyEnter:
		return KeyEvent(KeyEnter, mod)
	case tcell.KeyTab:
		return KeyEvent(KeyTab, mod)
	case tcell.KeyBacktab:
		return KeyEvent(KeyTab, mod|ModShift)
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		return KeyEvent(KeyBackspace, mod)
	case tcell.KeyDelete:
		return KeyEvent(KeyDelete, mod)
	case tcell.KeyInsert:
		return KeyEvent(KeyInsert, mod)
	case tcell.KeyHome:
		return KeyEvent(KeyHome, mod)
	case tcell.KeyEnd:
		return KeyEvent(KeyEnd, mod)
	case tcell.KeyPgUp:
		return KeyEvent(KeyPageUp, mod)
	case tcell.KeyPgDn:
		return KeyEvent(KeyPageDown, mod)
	case tcell.KeyUp:
		return KeyEvent(KeyUp, mod)
	case tcell.KeyDown:
		return KeyEvent(KeyDown, mod)
	case tcell.KeyLeft:
		return KeyEvent(KeyLeft, mod)
	case tcell.KeyRight:
		return KeyEvent(KeyRight, mod)
	}

	if k >= tcell.KeyF1 && k <= tcell.KeyF12 {
		return KeyEvent(KeyF1+Key(k-tcell.KeyF1), mod)
	}
	if k >= tcell.KeyCtrlA && k <= tcell.KeyCtrlZ {
		return RuneEvent(rune('a'+(k-tcell.KeyCtrlA)), mod|ModCtrl)
	}
	if k == tcell.KeyCtrlSpace {
		return RuneEvent(' ', mod|ModCtrl)
	}
	return Event{Type: EventNone}
}

// convertTcellMod converts tcell modifier mask to our Modifier.
func convertTcellMod(m tcell.ModMask) Modifier {
	var result Modifier
	if m&tcell.ModShift != 0 {
		result |= ModShift
	}
	if m&tcell.ModCtrl != 0 {
		result |= ModCtrl
	}
	if m&tcell.ModAlt != 0 {
		result |= ModAlt
	}
	if m&tcell.ModMeta != 0 {
		result |= ModMeta
	}
	return result
}

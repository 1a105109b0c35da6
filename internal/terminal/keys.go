package terminal

import (
	"strconv"
	"strings"
	"unicode/utf8"
)

// Byte values with special meaning in a raw input stream.
const (
	byteNul       = 0x00
	byteBackspace = 0x08
	byteTab       = 0x09
	byteLF        = 0x0a
	byteCR        = 0x0d
	byteEscape    = 0x1b
	byteDelete    = 0x7f
)

// tildeKeys maps the numeric code of "CSI n ~" sequences to keys.
var tildeKeys = map[int]Key{
	1:  KeyHome,
	2:  KeyInsert,
	3:  KeyDelete,
	4:  KeyEnd,
	5:  KeyPageUp,
	6:  KeyPageDown,
	7:  KeyHome,
	8:  KeyEnd,
	11: KeyF1,
	12: KeyF2,
	13: KeyF3,
	14: KeyF4,
	15: KeyF5,
	17: KeyF6,
	18: KeyF7,
	19: KeyF8,
	20: KeyF9,
	21: KeyF10,
	23: KeyF11,
	24: KeyF12,
}

// letterKeys maps the final byte of CSI and SS3 sequences to keys.
var letterKeys = map[byte]Key{
	'A': KeyUp,
	'B': KeyDown,
	'C': KeyRight,
	'D': KeyLeft,
	'H': KeyHome,
	'F': KeyEnd,
	'P': KeyF1,
	'Q': KeyF2,
	'R': KeyF3,
	'S': KeyF4,
}

// decodeModifier converts an xterm modifier parameter (1 + bitmask) to a Modifier.
func decodeModifier(param int) Modifier {
	if param < 2 {
		return ModNone
	}
	bits := param - 1
	var mod Modifier
	if bits&1 != 0 {
		mod |= ModShift
	}
	if bits&2 != 0 {
		mod |= ModAlt
	}
	if bits&4 != 0 {
		mod |= ModCtrl
	}
	if bits&8 != 0 {
		mod |= ModMeta
	}
	return mod
}

// decodeEvent decodes the first event in data and returns it with the
// number of bytes consumed. A zero count means data holds an incomplete
// sequence and more input is needed. With final set, incomplete input is
// resolved instead: a lone ESC becomes KeyEscape.
//
// Unknown but complete escape sequences are consumed and returned as an
// EventNone so the caller can skip them.
func decodeEvent(data []byte, final bool) (Event, int) {
	if len(data) == 0 {
		return Event{}, 0
	}

	b := data[0]
	switch {
	case b == byteEscape:
		return decodeEscape(data, final)
	case b == byteCR || b == byteLF:
		return KeyEvent(KeyEnter, ModNone), 1
	case b == byteTab:
		return KeyEvent(KeyTab, ModNone), 1
	case b == byteBackspace || b == byteDelete:
		return KeyEvent(KeyBackspace, ModNone), 1
	case b == byteNul:
		return RuneEvent(' ', ModCtrl), 1
	case b < 0x1b:
		// Ctrl+A .. Ctrl+Z
		return RuneEvent(rune('a'+b-1), ModCtrl), 1
	case b < 0x20:
		// Ctrl+\ Ctrl+] Ctrl+^ Ctrl+_
		return RuneEvent(rune(b+0x40), ModCtrl), 1
	case b < utf8.RuneSelf:
		return RuneEvent(rune(b), ModNone), 1
	}

	if !utf8.FullRune(data) {
		if !final {
			return Event{}, 0
		}
		return RuneEvent(utf8.RuneError, ModNone), 1
	}
	r, size := utf8.DecodeRune(data)
	return RuneEvent(r, ModNone), size
}

// decodeEscape handles input starting with ESC.
func decodeEscape(data []byte, final bool) (Event, int) {
	if len(data) == 1 {
		if !final {
			return Event{}, 0
		}
		return KeyEvent(KeyEscape, ModNone), 1
	}

	switch data[1] {
	case '[':
		ev, n := decodeCSI(data)
		if n == 0 && final {
			return KeyEvent(KeyEscape, ModNone), 1
		}
		return ev, n
	case 'O':
		if len(data) < 3 {
			if !final {
				return Event{}, 0
			}
			return RuneEvent('O', ModAlt), 2
		}
		if k, ok := letterKeys[data[2]]; ok {
			return KeyEvent(k, ModNone), 3
		}
		return Event{}, 3
	case byteEscape:
		return KeyEvent(KeyEscape, ModNone), 1
	}

	// ESC followed by a key is that key with Alt held.
	ev, n := decodeEvent(data[1:], final)
	if n == 0 {
		return Event{}, 0
	}
	ev.Mod |= ModAlt
	return ev, n + 1
}

// decodeCSI handles "ESC [ params final". Returns zero bytes consumed
// when the final byte has not arrived yet.
func decodeCSI(data []byte) (Event, int) {
	end := -1
	for i := 2; i < len(data); i++ {
		c := data[i]
		if c >= 0x40 && c <= 0x7e {
			end = i
			break
		}
		if c < 0x20 || c > 0x3f {
			// Not a parameter byte: malformed, drop what we have.
			return Event{}, i
		}
	}
	if end < 0 {
		return Event{}, 0
	}

	params := parseParams(string(data[2:end]))
	finalByte := data[end]
	consumed := end + 1

	switch finalByte {
	case '~':
		if len(params) == 0 {
			return Event{}, consumed
		}
		k, ok := tildeKeys[params[0]]
		if !ok {
			return Event{}, consumed
		}
		mod := ModNone
		if len(params) > 1 {
			mod = decodeModifier(params[1])
		}
		return KeyEvent(k, mod), consumed
	case 'Z':
		return KeyEvent(KeyTab, ModShift), consumed
	}

	k, ok := letterKeys[finalByte]
	if !ok {
		return Event{}, consumed
	}
	mod := ModNone
	if len(params) > 1 {
		mod = decodeModifier(params[1])
	}
	return KeyEvent(k, mod), consumed
}

// parseParams splits "1;5" into [1 5]. Empty or non-numeric fields become 0.
func parseParams(s string) []int {
	if s == "" {
		return nil
	}
	fields := strings.Split(s, ";")
	out := make([]int, len(fields))
	for i, f := range fields {
		n, err := strconv.Atoi(f)
		if err != nil {
			n = 0
		}
		out[i] = n
	}
	return out
}

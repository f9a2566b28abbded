package hal

import "unicode/utf8"

const (
	ctrlC = 0x03
	ctrlD = 0x04
)

// vt100Decoder turns a VT100 byte stream into key events.
//
// Partial escape sequences and partial UTF-8 runes are buffered until the
// next Feed call.
type vt100Decoder struct {
	pending []byte
	lastCR  bool
}

// Feed decodes b. eof reports an end-of-input control (Ctrl-C or Ctrl-D).
func (d *vt100Decoder) Feed(b []byte) (evs []KeyEvent, eof bool) {
	d.pending = append(d.pending, b...)
	b = d.pending

	for len(b) > 0 {
		if b[0] == 0x1b {
			n, code, ok := parseEscape(b)
			if !ok {
				break
			}
			b = b[n:]
			d.lastCR = false
			if code != KeyUnknown {
				evs = append(evs, KeyEvent{Code: code})
			}
			continue
		}

		c := b[0]
		switch {
		case c == '\r':
			b = b[1:]
			d.lastCR = true
			evs = append(evs, KeyEvent{Code: KeyEnter})
			continue
		case c == '\n':
			b = b[1:]
			if !d.lastCR {
				evs = append(evs, KeyEvent{Code: KeyEnter})
			}
			d.lastCR = false
			continue
		}
		d.lastCR = false

		switch {
		case c == 0x7f || c == 0x08:
			b = b[1:]
			evs = append(evs, KeyEvent{Code: KeyBackspace})
		case c == '\t':
			b = b[1:]
			evs = append(evs, KeyEvent{Code: KeyTab})
		case c == ctrlC || c == ctrlD:
			d.pending = d.pending[:0]
			return evs, true
		case c < 0x20:
			b = b[1:]
		default:
			if !utf8.FullRune(b) {
				d.keep(b)
				return evs, false
			}
			r, sz := utf8.DecodeRune(b)
			b = b[sz:]
			if r == utf8.RuneError && sz == 1 {
				continue
			}
			evs = append(evs, KeyEvent{Rune: r})
		}
	}
	d.keep(b)
	return evs, false
}

func (d *vt100Decoder) keep(rest []byte) {
	n := copy(d.pending, rest)
	d.pending = d.pending[:n]
}

func parseEscape(b []byte) (consumed int, code KeyCode, ok bool) {
	if len(b) < 2 {
		return 0, KeyUnknown, false
	}
	if b[1] != '[' && b[1] != 'O' {
		return 1, KeyEscape, true
	}
	if len(b) < 3 {
		return 0, KeyUnknown, false
	}
	switch b[2] {
	case 'A':
		return 3, KeyUp, true
	case 'B':
		return 3, KeyDown, true
	case 'C':
		return 3, KeyRight, true
	case 'D':
		return 3, KeyLeft, true
	case 'H':
		return 3, KeyHome, true
	case 'F':
		return 3, KeyEnd, true
	case '3':
		// CSI 3 ~ : Delete.
		if len(b) < 4 {
			return 0, KeyUnknown, false
		}
		if b[3] == '~' {
			return 4, KeyDelete, true
		}
	}
	n := consumeEscape(b)
	if n == 0 {
		return 0, KeyUnknown, false
	}
	return n, KeyUnknown, true
}

// consumeEscape skips a CSI sequence up to its final byte. It returns 0 when
// the sequence is still incomplete.
func consumeEscape(b []byte) int {
	for i := 2; i < len(b); i++ {
		if b[i] >= 0x40 && b[i] <= 0x7e {
			return i + 1
		}
	}
	return 0
}

package hal

import "errors"

// Logger writes newline-delimited log lines.
type Logger interface {
	WriteLineString(s string)
	WriteLineBytes(b []byte)
}

var ErrNotImplemented = errors.New("not implemented")

// Color is a packed 0xRRGGBB value.
type Color uint32

// RGB unpacks the color channels.
func (c Color) RGB() (r, g, b uint8) {
	return uint8(c >> 16), uint8(c >> 8), uint8(c)
}

// Console is the character output device.
//
// Writes are treated as always succeeding. The cursor visibility flag is
// owned by the console; only the timer interrupt toggles it.
type Console interface {
	WriteString(s string)
	PutRune(r rune)
	SetColor(c Color)
	ToggleCursor()
	CursorVisible() bool
	Clear()
}

// KeyCode is a minimal key identifier.
type KeyCode uint16

const (
	KeyUnknown KeyCode = iota
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyEnter
	KeyEscape
	KeyBackspace
	KeyTab
	KeyDelete
	KeyHome
	KeyEnd
)

// KeyEvent is a keyboard event.
//
// Printable input carries Code == KeyUnknown and a non-zero Rune.
type KeyEvent struct {
	Code KeyCode
	Rune rune
}

// Printable reports whether the event carries a printable character.
func (ev KeyEvent) Printable() bool {
	return ev.Code == KeyUnknown && ev.Rune >= 0x20 && ev.Rune != 0x7f
}

// Keyboard provides key events. The channel is closed when input ends.
type Keyboard interface {
	Events() <-chan KeyEvent
}

// PITBaseHz is the input clock of the programmable interval timer.
const PITBaseHz = 1193182

// Timer is the programmable interval timer.
//
// Configure programs channel 0 with a reload divisor (0 means 65536) and
// starts delivering ticks.
type Timer interface {
	Configure(divisor uint16)
	Ticks() <-chan uint64
}

// RNG produces one pseudorandom non-negative integer per call.
type RNG interface {
	Int() int
}

// HAL provides the only contact point between the OS and the outside world.
type HAL interface {
	Logger() Logger
	Console() Console
	Keyboard() Keyboard
	Timer() Timer
	RNG() RNG

	// Reset performs an irreversible machine reset. Callers must not
	// expect anything they do afterwards to be observed.
	Reset()
}

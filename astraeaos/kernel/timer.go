package kernel

import (
	"fmt"

	"astraea/hal"
)

// BlinkTicks is the number of timer ticks between cursor toggles.
const BlinkTicks = 9

// CursorToggler is the one console operation the timer is allowed to use.
type CursorToggler interface {
	ToggleCursor()
}

// TimerState is owned by the interrupt context.
type TimerState struct {
	ticks int
}

// Timer is the IRQ0 handler driving the blinking cursor.
//
// It never touches shell state; its only side effect outside TimerState is
// toggling the console cursor.
type Timer struct {
	pic    *Controller
	cursor CursorToggler
	state  TimerState
}

// NewTimer returns a timer bound to pic and the console cursor.
func NewTimer(pic *Controller, cursor CursorToggler) *Timer {
	return &Timer{pic: pic, cursor: cursor}
}

// Init installs the IRQ0 handler, programs the PIT for hz and starts
// forwarding its ticks as interrupts. Call once at boot, before enabling
// interrupts.
func (t *Timer) Init(pit hal.Timer, hz float64, log hal.Logger) {
	t.pic.Register(IRQTimer, t.handle)

	divisor := DivisorFor(hz)
	pit.Configure(divisor)
	if log != nil {
		log.WriteLineString(fmt.Sprintf("timer: divisor=%d rate=%.4fHz blink=%d ticks", divisor, RateFor(divisor), BlinkTicks))
	}

	ticks := pit.Ticks()
	if ticks == nil {
		return
	}
	go func() {
		for range ticks {
			t.pic.Raise(IRQTimer)
		}
	}()
}

func (t *Timer) handle() {
	t.state.ticks++
	if t.state.ticks >= BlinkTicks {
		t.cursor.ToggleCursor()
		t.state.ticks = 0
	}
	t.pic.EOI(IRQTimer)
}

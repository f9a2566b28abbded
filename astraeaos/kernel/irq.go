package kernel

import (
	"context"
	"sync/atomic"
)

// IRQ identifies a hardware interrupt line on the primary PIC.
type IRQ uint8

const (
	IRQTimer IRQ = iota
	IRQKeyboard

	maxIRQs = 16
)

// Handler runs in interrupt context. It must not block and must call
// Controller.EOI for its line before returning, or the line stays masked.
type Handler func()

type irqLine struct {
	handler   atomic.Pointer[Handler]
	inService atomic.Bool
	delivered atomic.Uint64
	dropped   atomic.Uint64
}

// Controller is the interrupt controller plus the CPU interrupt flag.
//
// Devices call Raise from their own goroutines; the main context parks in
// Halt until something was delivered.
type Controller struct {
	enabled atomic.Bool
	lines   [maxIRQs]irqLine
	wake    chan struct{}
}

// NewController returns a controller with interrupts disabled.
func NewController() *Controller {
	return &Controller{wake: make(chan struct{}, 1)}
}

// Register installs the handler for a line. Install handlers before Enable.
func (c *Controller) Register(line IRQ, h Handler) {
	if line >= maxIRQs {
		return
	}
	c.lines[line].handler.Store(&h)
}

// Enable sets the interrupt flag (sti).
func (c *Controller) Enable() { c.enabled.Store(true) }

// Disable clears the interrupt flag (cli).
func (c *Controller) Disable() { c.enabled.Store(false) }

// Enabled reports the interrupt flag.
func (c *Controller) Enabled() bool { return c.enabled.Load() }

// Raise delivers an interrupt on line and reports whether its handler ran.
//
// The interrupt is dropped when interrupts are disabled, when no handler is
// installed, or while the line is still in service.
func (c *Controller) Raise(line IRQ) bool {
	if line >= maxIRQs {
		return false
	}
	l := &c.lines[line]
	if !c.enabled.Load() {
		l.dropped.Add(1)
		return false
	}
	h := l.handler.Load()
	if h == nil || *h == nil {
		l.dropped.Add(1)
		return false
	}
	if !l.inService.CompareAndSwap(false, true) {
		l.dropped.Add(1)
		return false
	}
	l.delivered.Add(1)
	(*h)()
	c.Wake()
	return true
}

// EOI signals end of interrupt for line.
func (c *Controller) EOI(line IRQ) {
	if line >= maxIRQs {
		return
	}
	c.lines[line].inService.Store(false)
}

// Stats returns delivered and dropped interrupt counts for line.
func (c *Controller) Stats(line IRQ) (delivered, dropped uint64) {
	if line >= maxIRQs {
		return 0, 0
	}
	l := &c.lines[line]
	return l.delivered.Load(), l.dropped.Load()
}

// Halt parks the caller until the next delivered interrupt or Wake (hlt).
func (c *Controller) Halt(ctx context.Context) error {
	select {
	case <-c.wake:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Wake releases a pending or future Halt.
func (c *Controller) Wake() {
	select {
	case c.wake <- struct{}{}:
	default:
	}
}

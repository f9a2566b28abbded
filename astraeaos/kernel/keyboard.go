package kernel

import (
	"context"
	"io"
	"sync"
	"sync/atomic"

	"astraea/hal"
)

// Keyboard is the IRQ1 driver: the device goroutine latches one event into
// the data port and raises IRQ1; the handler moves it into the buffer that
// the main context reads.
type Keyboard struct {
	pic *Controller
	buf Mailbox

	port    hal.KeyEvent
	closed  atomic.Bool
	overrun atomic.Uint64

	room     chan struct{}
	done     chan struct{}
	stopOnce sync.Once
}

// NewKeyboard installs the IRQ1 handler on pic.
func NewKeyboard(pic *Controller) *Keyboard {
	k := &Keyboard{
		pic:  pic,
		room: make(chan struct{}, 1),
		done: make(chan struct{}),
	}
	pic.Register(IRQKeyboard, k.handle)
	return k
}

// Attach starts the device side for dev. It returns immediately.
func (k *Keyboard) Attach(dev hal.Keyboard) {
	ch := dev.Events()
	if ch == nil {
		k.closed.Store(true)
		k.pic.Wake()
		return
	}
	go k.device(ch)
}

func (k *Keyboard) device(ch <-chan hal.KeyEvent) {
	defer func() {
		k.closed.Store(true)
		k.pic.Wake()
	}()
	for ev := range ch {
		if !k.waitRoom() {
			return
		}
		k.port = ev
		k.pic.Raise(IRQKeyboard)
	}
}

// waitRoom holds the next key while the buffer is full so scripted input is
// not lost behind a slow consumer. It reports false once Stop was called.
func (k *Keyboard) waitRoom() bool {
	for k.buf.Full() && k.pic.Enabled() {
		select {
		case <-k.room:
		case <-k.done:
			return false
		}
	}
	return true
}

// Stop detaches the device side. Events already buffered stay readable.
func (k *Keyboard) Stop() {
	k.stopOnce.Do(func() { close(k.done) })
}

func (k *Keyboard) handle() {
	if !k.buf.TrySend(k.port) {
		k.overrun.Add(1)
	}
	k.pic.EOI(IRQKeyboard)
}

// Overruns returns the number of events dropped on a full buffer.
func (k *Keyboard) Overruns() uint64 { return k.overrun.Load() }

// ReadEvent returns the next buffered event, halting until one arrives.
// It returns io.EOF once the device has closed and the buffer is drained.
func (k *Keyboard) ReadEvent(ctx context.Context) (hal.KeyEvent, error) {
	for {
		if ev, ok := k.buf.TryRecv(); ok {
			k.signalRoom()
			return ev, nil
		}
		if k.closed.Load() {
			// The device may have delivered its last event right before
			// closing.
			if ev, ok := k.buf.TryRecv(); ok {
				k.signalRoom()
				return ev, nil
			}
			return hal.KeyEvent{}, io.EOF
		}
		if err := k.pic.Halt(ctx); err != nil {
			return hal.KeyEvent{}, err
		}
	}
}

func (k *Keyboard) signalRoom() {
	select {
	case k.room <- struct{}{}:
	default:
	}
}

package kernel

import (
	"sync/atomic"

	"astraea/hal"
)

const mailboxSlots = 32

// Mailbox is a fixed-size single-producer, single-consumer event queue.
// It is designed for bare-metal use: no allocations, no locks.
type Mailbox struct {
	_     [0]func() // prevent accidental copying.
	head  atomic.Uint32
	tail  atomic.Uint32
	slots [mailboxSlots]hal.KeyEvent
}

// TrySend enqueues an event, returning false if the mailbox is full.
// Only one goroutine may send.
func (mb *Mailbox) TrySend(ev hal.KeyEvent) bool {
	head := mb.head.Load()
	tail := mb.tail.Load()
	if head-tail >= mailboxSlots {
		return false
	}
	mb.slots[head%mailboxSlots] = ev
	mb.head.Store(head + 1)
	return true
}

// TryRecv dequeues one event, returning false if empty.
// Only one goroutine may receive.
func (mb *Mailbox) TryRecv() (hal.KeyEvent, bool) {
	tail := mb.tail.Load()
	head := mb.head.Load()
	if tail == head {
		return hal.KeyEvent{}, false
	}
	ev := mb.slots[tail%mailboxSlots]
	mb.tail.Store(tail + 1)
	return ev, true
}

// Full reports whether TrySend would fail.
func (mb *Mailbox) Full() bool {
	return mb.head.Load()-mb.tail.Load() >= mailboxSlots
}

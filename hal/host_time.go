//go:build !tinygo

package hal

import (
	"sync"
	"time"
)

// hostTime emulates PIT channel 0 with a ticker goroutine.
type hostTime struct {
	ch  chan uint64
	seq uint64

	once     sync.Once
	stopOnce sync.Once
	done     chan struct{}
}

func newHostTime() *hostTime {
	return &hostTime{ch: make(chan uint64, 1), done: make(chan struct{})}
}

func (t *hostTime) Ticks() <-chan uint64 { return t.ch }

// Configure starts the tick source. Reprogramming a running timer is not
// supported; later calls are ignored.
func (t *hostTime) Configure(divisor uint16) {
	t.once.Do(func() {
		go t.run(PeriodFor(divisor))
	})
}

func (t *hostTime) run(d time.Duration) {
	tk := time.NewTicker(d)
	defer tk.Stop()
	defer close(t.ch)
	for {
		select {
		case <-t.done:
			return
		case <-tk.C:
			t.seq++
			// A tick that finds the previous one undelivered is lost, as on
			// hardware with interrupts masked.
			select {
			case t.ch <- t.seq:
			default:
			}
		}
	}
}

func (t *hostTime) stop() {
	t.stopOnce.Do(func() { close(t.done) })
}

// PeriodFor returns the tick period produced by a PIT reload divisor.
func PeriodFor(divisor uint16) time.Duration {
	n := uint64(divisor)
	if n == 0 {
		n = 65536
	}
	return time.Duration(n * uint64(time.Second) / PITBaseHz)
}

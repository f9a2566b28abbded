package kernel

import (
	"runtime/debug"
	"sync"
	"sync/atomic"
)

// PanicInfo contains details about a recovered panic.
type PanicInfo struct {
	Value any
	Stack []byte
}

var (
	panicActive atomic.Bool
	panicOnce   sync.Once

	panicHandler atomic.Value // func(PanicInfo)
)

// InPanicMode reports whether the kernel is in panic mode.
func InPanicMode() bool {
	return panicActive.Load()
}

// SetPanicHandler installs a process-wide panic handler.
//
// The handler is invoked at most once (on the first panic). It must not panic.
func SetPanicHandler(fn func(PanicInfo)) {
	panicHandler.Store(fn)
}

// TriggerPanic enters panic mode with a value recovered by the caller.
func TriggerPanic(v any) {
	panicOnce.Do(func() {
		panicActive.Store(true)
		info := PanicInfo{Value: v, Stack: debug.Stack()}
		if h := panicHandler.Load(); h != nil {
			if fn, ok := h.(func(PanicInfo)); ok && fn != nil {
				fn(info)
			}
		}
	})
}

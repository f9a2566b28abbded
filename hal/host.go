//go:build !tinygo

package hal

import (
	"context"
	"fmt"
	"io"
	"os"
	"sync"

	"golang.org/x/term"
)

// HostConfig controls the host runners.
type HostConfig struct {
	// Headless reads keystrokes from stdin without switching the terminal
	// to raw mode and never emits cursor or color sequences.
	Headless bool
	// LogPath receives kernel log lines. Empty means stderr when headless
	// and nowhere otherwise.
	LogPath string
	// Seed seeds the RNG; zero picks a time-based seed.
	Seed uint64
}

type hostHAL struct {
	logger *hostLogger
	con    Console
	kbd    Keyboard
	t      *hostTime
	rng    *hostRNG

	resetOnce sync.Once
	reset     func()
}

func (h *hostHAL) Logger() Logger     { return h.logger }
func (h *hostHAL) Console() Console   { return h.con }
func (h *hostHAL) Keyboard() Keyboard { return h.kbd }
func (h *hostHAL) Timer() Timer       { return h.t }
func (h *hostHAL) RNG() RNG           { return h.rng }

func (h *hostHAL) Reset() {
	h.resetOnce.Do(func() {
		h.t.stop()
		h.logger.WriteLineString("hal: reset")
		if h.reset != nil {
			h.reset()
		}
	})
}

// RunTerminal runs the OS on the controlling terminal and blocks until run
// returns.
func RunTerminal(ctx context.Context, cfg HostConfig, run func(context.Context, HAL) error) error {
	fd := int(os.Stdin.Fd())
	tty := !cfg.Headless && term.IsTerminal(fd) && term.IsTerminal(int(os.Stdout.Fd()))
	if !tty {
		return RunHeadless(ctx, os.Stdin, os.Stdout, cfg, run)
	}

	logger, err := openHostLogger(cfg.LogPath, false)
	if err != nil {
		return err
	}
	defer logger.Close()

	st, err := term.MakeRaw(fd)
	if err != nil {
		return fmt.Errorf("hal: raw mode: %w", err)
	}
	restoreTTY := sync.OnceFunc(func() { _ = term.Restore(fd, st) })
	defer restoreTTY()

	con := newANSIConsole(os.Stdout, true)
	defer con.restore()

	h := &hostHAL{
		logger: logger,
		con:    con,
		kbd:    newTTYKeyboard(os.Stdin),
		t:      newHostTime(),
		rng:    newHostRNG(cfg.Seed),
		reset: func() {
			con.restore()
			restoreTTY()
		},
	}
	defer h.t.stop()

	return run(ctx, h)
}

type hostLogger struct {
	mu sync.Mutex
	w  io.Writer
	c  io.Closer
}

func openHostLogger(path string, headless bool) (*hostLogger, error) {
	if path == "" {
		if headless {
			return &hostLogger{w: os.Stderr}, nil
		}
		return &hostLogger{w: io.Discard}, nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("hal: open log: %w", err)
	}
	return &hostLogger{w: f, c: f}, nil
}

func (l *hostLogger) WriteLineString(s string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintln(l.w, s)
}

func (l *hostLogger) WriteLineBytes(b []byte) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.w.Write(b)
	l.w.Write([]byte{'\n'})
}

func (l *hostLogger) Close() error {
	if l.c == nil {
		return nil
	}
	return l.c.Close()
}

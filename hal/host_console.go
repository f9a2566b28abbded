//go:build !tinygo

package hal

import (
	"image/color"
	"io"
	"strings"
	"sync"
	"sync/atomic"

	"github.com/muesli/termenv"
)

// ansiConsole drives a VT100-compatible terminal.
//
// The timer interrupt and the shell write from different goroutines, so
// output is serialized here the way a real device serializes port writes.
type ansiConsole struct {
	mu  sync.Mutex
	out *termenv.Output
	tty bool

	visible atomic.Bool
}

func newANSIConsole(w io.Writer, tty bool) *ansiConsole {
	opts := []termenv.OutputOption{}
	if !tty {
		opts = append(opts, termenv.WithProfile(termenv.Ascii))
	}
	c := &ansiConsole{out: termenv.NewOutput(w, opts...), tty: tty}
	c.visible.Store(true)
	return c
}

func (c *ansiConsole) WriteString(s string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.tty {
		// Raw mode disables output post-processing.
		s = strings.ReplaceAll(s, "\n", "\r\n")
	}
	_, _ = c.out.WriteString(s)
}

func (c *ansiConsole) PutRune(r rune) {
	c.WriteString(string(r))
}

func (c *ansiConsole) SetColor(col Color) {
	r, g, b := col.RGB()
	tc := c.out.FromColor(color.RGBA{R: r, G: g, B: b, A: 0xff})
	if tc == nil {
		return
	}
	seq := tc.Sequence(false)
	if seq == "" {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	_, _ = c.out.WriteString(termenv.CSI + seq + "m")
}

func (c *ansiConsole) ToggleCursor() {
	c.mu.Lock()
	defer c.mu.Unlock()
	v := !c.visible.Load()
	c.visible.Store(v)
	if !c.tty {
		return
	}
	if v {
		c.out.ShowCursor()
	} else {
		c.out.HideCursor()
	}
}

func (c *ansiConsole) CursorVisible() bool {
	return c.visible.Load()
}

func (c *ansiConsole) Clear() {
	if !c.tty {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.out.ClearScreen()
}

func (c *ansiConsole) restore() {
	if !c.tty {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.out.Reset()
	c.out.ShowCursor()
}

package hal

import (
	"sync"
	"sync/atomic"
)

const (
	// VGA text mode dimensions.
	GridCols = 80
	GridRows = 25

	defaultFG Color = 0xAAAAAA
)

type cell struct {
	r  rune
	fg Color
}

// textGrid is an in-memory character console, the window-mode equivalent of
// VGA text memory.
type textGrid struct {
	mu    sync.Mutex
	cols  int
	rows  int
	cells []cell
	x, y  int
	fg    Color

	visible atomic.Bool
}

func newTextGrid(cols, rows int) *textGrid {
	g := &textGrid{
		cols:  cols,
		rows:  rows,
		cells: make([]cell, cols*rows),
		fg:    defaultFG,
	}
	g.visible.Store(true)
	g.clearLocked()
	return g
}

func (g *textGrid) WriteString(s string) {
	g.mu.Lock()
	defer g.mu.Unlock()
	for _, r := range s {
		g.putLocked(r)
	}
}

func (g *textGrid) PutRune(r rune) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.putLocked(r)
}

func (g *textGrid) SetColor(c Color) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.fg = c
}

func (g *textGrid) ToggleCursor() {
	for {
		v := g.visible.Load()
		if g.visible.CompareAndSwap(v, !v) {
			return
		}
	}
}

func (g *textGrid) CursorVisible() bool { return g.visible.Load() }

func (g *textGrid) Clear() {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.clearLocked()
}

func (g *textGrid) clearLocked() {
	for i := range g.cells {
		g.cells[i] = cell{r: ' ', fg: g.fg}
	}
	g.x, g.y = 0, 0
}

func (g *textGrid) putLocked(r rune) {
	switch r {
	case '\n':
		g.newlineLocked()
		return
	case '\r':
		g.x = 0
		return
	case '\b':
		if g.x > 0 {
			g.x--
		} else if g.y > 0 {
			g.y--
			g.x = g.cols - 1
		}
		return
	}
	g.cells[g.y*g.cols+g.x] = cell{r: r, fg: g.fg}
	g.x++
	if g.x >= g.cols {
		g.newlineLocked()
	}
}

func (g *textGrid) newlineLocked() {
	g.x = 0
	if g.y+1 < g.rows {
		g.y++
		return
	}
	copy(g.cells, g.cells[g.cols:])
	last := g.cells[(g.rows-1)*g.cols:]
	for i := range last {
		last[i] = cell{r: ' ', fg: g.fg}
	}
}

// snapshot copies the grid and cursor position into dst.
func (g *textGrid) snapshot(dst []cell) (x, y int) {
	g.mu.Lock()
	defer g.mu.Unlock()
	copy(dst, g.cells)
	return g.x, g.y
}

// rowString returns row y as text, for tests and diagnostics.
func (g *textGrid) rowString(y int) string {
	g.mu.Lock()
	defer g.mu.Unlock()
	out := make([]rune, g.cols)
	for i := 0; i < g.cols; i++ {
		out[i] = g.cells[y*g.cols+i].r
	}
	return string(out)
}

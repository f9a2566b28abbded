//go:build !tinygo

package hal

import (
	"image/color"

	"tinygo.org/x/drivers"
	"tinygo.org/x/tinyfont"
	"tinygo.org/x/tinyfont/proggy"
)

const (
	gridFontHeight = 10
	gridFontOffset = 6
)

var _ drivers.Displayer = (*hostFramebuffer)(nil)

// gridRenderer paints a textGrid into a framebuffer.
type gridRenderer struct {
	font    tinyfont.Fonter
	cellW   int
	cellH   int
	offset  int
	scratch []cell
}

func newGridRenderer(g *textGrid) *gridRenderer {
	font := &proggy.TinySZ8pt7b
	_, outboxWidth := tinyfont.LineWidth(font, "0")
	w := int(outboxWidth)
	if w <= 0 {
		w = 6
	}
	return &gridRenderer{
		font:    font,
		cellW:   w,
		cellH:   gridFontHeight,
		offset:  gridFontOffset,
		scratch: make([]cell, len(g.cells)),
	}
}

func (gr *gridRenderer) size(g *textGrid) (w, h int) {
	return g.cols * gr.cellW, g.rows * gr.cellH
}

func (gr *gridRenderer) render(g *textGrid, fb *hostFramebuffer) {
	cx, cy := g.snapshot(gr.scratch)

	fb.ClearRGB(0, 0, 0)
	for y := 0; y < g.rows; y++ {
		for x := 0; x < g.cols; x++ {
			c := gr.scratch[y*g.cols+x]
			if c.r == ' ' || c.r == 0 {
				continue
			}
			tinyfont.DrawChar(fb, gr.font, int16(x*gr.cellW), int16(y*gr.cellH+gr.offset), c.r, rgba(c.fg))
		}
	}

	if g.CursorVisible() {
		// Underline cursor, like the VGA default.
		fb.fillRect(cx*gr.cellW, cy*gr.cellH+gr.cellH-2, gr.cellW, 2, rgba(defaultFG))
	}
}

func rgba(c Color) color.RGBA {
	r, g, b := c.RGB()
	return color.RGBA{R: r, G: g, B: b, A: 0xff}
}

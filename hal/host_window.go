//go:build !tinygo && cgo

package hal

import (
	"context"
	"image"

	"astraea/internal/buildinfo"

	"github.com/hajimehoshi/ebiten/v2"
)

// RunWindow opens a desktop window that shows the text console and forwards
// keyboard input. It blocks until run returns or the window closes.
func RunWindow(ctx context.Context, cfg HostConfig, run func(context.Context, HAL) error) error {
	logger, err := openHostLogger(cfg.LogPath, false)
	if err != nil {
		return err
	}
	defer logger.Close()

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	grid := newTextGrid(GridCols, GridRows)
	gr := newGridRenderer(grid)
	w, hgt := gr.size(grid)

	h := &hostHAL{
		logger: logger,
		con:    grid,
		t:      newHostTime(),
		rng:    newHostRNG(cfg.Seed),
	}
	kbd := newWindowKeyboard()
	h.kbd = kbd
	defer h.t.stop()

	g := &hostGame{
		kbd:  kbd,
		grid: grid,
		gr:   gr,
		fb:   newHostFramebuffer(w, hgt),
		done: make(chan error, 1),
	}
	go func() {
		g.done <- run(ctx, h)
	}()

	ebiten.SetWindowTitle(buildinfo.Product + " (" + buildinfo.Short() + ")")
	ebiten.SetWindowSize(w*2, hgt*2)
	ebiten.SetTPS(60)
	ebiten.SetWindowClosingHandled(true)
	if err := ebiten.RunGame(g); err != nil {
		return err
	}
	if g.closed {
		// Window closed by the user: stop the main context and wait for it.
		cancel()
		kbd.close()
		return <-g.done
	}
	return g.result
}

type hostGame struct {
	kbd  *windowKeyboard
	grid *textGrid
	gr   *gridRenderer
	fb   *hostFramebuffer

	img   *image.RGBA
	fbImg *ebiten.Image

	done   chan error
	result error
	closed bool
}

func (g *hostGame) Update() error {
	select {
	case err := <-g.done:
		g.result = err
		return ebiten.Termination
	default:
	}
	if ebiten.IsWindowBeingClosed() {
		g.closed = true
		return ebiten.Termination
	}
	g.kbd.poll()
	return nil
}

func (g *hostGame) Draw(screen *ebiten.Image) {
	fb := g.fb
	g.gr.render(g.grid, fb)

	if g.img == nil {
		g.img = image.NewRGBA(image.Rect(0, 0, fb.width, fb.height))
		g.fbImg = ebiten.NewImage(fb.width, fb.height)
	}
	fb.toRGBA(g.img.Pix)

	g.fbImg.WritePixels(g.img.Pix)
	screen.DrawImage(g.fbImg, nil)
}

func (g *hostGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.fb.width, g.fb.height
}

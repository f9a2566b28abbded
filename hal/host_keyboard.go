//go:build !tinygo && cgo

package hal

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// windowKeyboard turns ebiten key state into key events. poll runs on the
// ebiten update goroutine, the only producer.
type windowKeyboard struct {
	ch     chan KeyEvent
	closed bool
}

func newWindowKeyboard() *windowKeyboard {
	return &windowKeyboard{ch: make(chan KeyEvent, 64)}
}

func (k *windowKeyboard) Events() <-chan KeyEvent { return k.ch }

func (k *windowKeyboard) close() {
	if k.closed {
		return
	}
	k.closed = true
	close(k.ch)
}

func (k *windowKeyboard) poll() {
	if k.closed {
		return
	}
	emit := func(ev KeyEvent) {
		select {
		case k.ch <- ev:
		default:
		}
	}

	for _, r := range ebiten.AppendInputChars(nil) {
		emit(KeyEvent{Rune: r})
	}

	for _, m := range []struct {
		key  ebiten.Key
		code KeyCode
	}{
		{ebiten.KeyArrowUp, KeyUp},
		{ebiten.KeyArrowDown, KeyDown},
		{ebiten.KeyArrowLeft, KeyLeft},
		{ebiten.KeyArrowRight, KeyRight},
		{ebiten.KeyEnter, KeyEnter},
		{ebiten.KeyNumpadEnter, KeyEnter},
		{ebiten.KeyEscape, KeyEscape},
		{ebiten.KeyBackspace, KeyBackspace},
		{ebiten.KeyTab, KeyTab},
		{ebiten.KeyDelete, KeyDelete},
		{ebiten.KeyHome, KeyHome},
		{ebiten.KeyEnd, KeyEnd},
	} {
		if inpututil.IsKeyJustPressed(m.key) {
			emit(KeyEvent{Code: m.code})
		}
	}
}

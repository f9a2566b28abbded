//go:build !tinygo

package hal

import "io"

// ttyKeyboard decodes a byte stream (raw terminal or piped script) into key
// events. The event channel is closed on EOF, read error, Ctrl-C or Ctrl-D.
type ttyKeyboard struct {
	ch chan KeyEvent
}

func newTTYKeyboard(r io.Reader) *ttyKeyboard {
	k := &ttyKeyboard{ch: make(chan KeyEvent, 64)}
	go k.read(r)
	return k
}

func (k *ttyKeyboard) Events() <-chan KeyEvent { return k.ch }

func (k *ttyKeyboard) read(r io.Reader) {
	defer close(k.ch)

	var dec vt100Decoder
	buf := make([]byte, 256)
	for {
		n, err := r.Read(buf)
		if n > 0 {
			evs, eof := dec.Feed(buf[:n])
			for _, ev := range evs {
				k.ch <- ev
			}
			if eof {
				return
			}
		}
		if err != nil {
			return
		}
	}
}

//go:build !tinygo

package hal

import (
	"context"
	"io"
)

// RunHeadless runs the OS against a keystroke script and a plain output
// stream. Input bytes are decoded like terminal input, with '\n' as Enter.
// No cursor or color sequences are written.
func RunHeadless(ctx context.Context, in io.Reader, out io.Writer, cfg HostConfig, run func(context.Context, HAL) error) error {
	logger, err := openHostLogger(cfg.LogPath, true)
	if err != nil {
		return err
	}
	defer logger.Close()

	h := &hostHAL{
		logger: logger,
		con:    newANSIConsole(out, false),
		kbd:    newTTYKeyboard(in),
		t:      newHostTime(),
		rng:    newHostRNG(cfg.Seed),
	}
	defer h.t.stop()

	return run(ctx, h)
}

//go:build !tinygo && !cgo

package hal

import (
	"context"
	"errors"
	"testing"
)

func TestRunWindowWithoutCgo(t *testing.T) {
	ran := false
	err := RunWindow(context.Background(), HostConfig{}, func(context.Context, HAL) error {
		ran = true
		return nil
	})
	if !errors.Is(err, ErrNotImplemented) {
		t.Fatalf("RunWindow() = %v; want %v", err, ErrNotImplemented)
	}
	if ran {
		t.Fatalf("RunWindow() ran the OS without a window backend")
	}
}

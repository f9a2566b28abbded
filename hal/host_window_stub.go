//go:build !tinygo && !cgo

package hal

import (
	"context"
	"fmt"
)

// RunWindow is unavailable without cgo; the ebiten desktop backend needs it.
func RunWindow(_ context.Context, _ HostConfig, _ func(context.Context, HAL) error) error {
	return fmt.Errorf("hal: window mode requires cgo (build/run with CGO_ENABLED=1): %w", ErrNotImplemented)
}

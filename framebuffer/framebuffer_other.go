//go:build !linux

package framebuffer

import (
	"github.com/BeatGlow/gop"
)

// Device is a framebuffer device, unavailable on this platform.
type Device struct {
	gop.GraphicsOutput
}

func Open(_ string) (*Device, error) {
	return nil, ErrNotSupported
}

// Close is a no-op.
func (d *Device) Close() error {
	return nil
}

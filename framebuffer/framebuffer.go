// Package framebuffer provides the operating system's native framebuffer as a graphics
// output device.
//
// This requires framebuffer device support in the operating system. The framebuffer
// can be opened with the [Open] call. It offers a single display mode, the one the
// kernel has configured, so negotiation reduces to a confirmation prompt.
package framebuffer

import (
	"errors"
	"os"
)

var debug bool

func init() {
	debug = os.Getenv("GOP_DEBUG") != ""
}

// Errors
var (
	ErrNotSupported    = errors.New("framebuffer: not supported")
	ErrUnsupportedMode = errors.New("framebuffer: mode is not offered by this device")
	ErrPixelDepth      = errors.New("framebuffer: only 32 bits per pixel is supported")
)

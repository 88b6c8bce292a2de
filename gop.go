// Package gop negotiates a display mode with the platform firmware and exposes the
// active mode's linear framebuffer as a bounds checked drawing surface.
//
// The firmware side is abstracted by small capability interfaces ([ModeSource],
// [ModeActivator], [Output]) and the operator console by [Cursor] and [KeyReader], so
// the same negotiation and drawing code runs against real firmware, a Linux fbdev
// device or the in-memory simulator in the firmware package.
package gop

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
	ErrNoModes  = errors.New("gop: firmware offers no display modes")
	ErrStale    = errors.New("gop: framebuffer is stale, the display mode has changed")
	ErrGeometry = errors.New("gop: mode geometry exceeds the mapped framebuffer")
)

// PixelFormat is the pixel layout reported by the firmware for a mode.
//
// It is informational only, pixels are always written as packed 32-bit words.
type PixelFormat uint8

// Pixel formats, in firmware order.
const (
	PixelRGBReserved PixelFormat = iota // 8-bit red, green, blue, reserved
	PixelBGRReserved                    // 8-bit blue, green, red, reserved
	PixelBitMask
	PixelBltOnly
)

func (f PixelFormat) String() string {
	switch f {
	case PixelRGBReserved:
		return "RGBX8888"
	case PixelBGRReserved:
		return "BGRX8888"
	case PixelBitMask:
		return "bitmask"
	case PixelBltOnly:
		return "blt-only"
	default:
		return "unknown"
	}
}

// ModeInfo describes a display mode.
type ModeInfo struct {
	// Resolution in pixels.
	Resolution Resolution

	// Stride is the number of pixels per scan line, may exceed the width.
	Stride int

	// Format of the pixels.
	Format PixelFormat
}

// Mode is a display mode handle owned by the firmware.
type Mode interface {
	Info() ModeInfo
}

// ModeSource enumerates the display modes the firmware currently offers.
//
// Every call restarts the enumeration.
type ModeSource interface {
	Modes() []Mode
}

// ModeActivator switches the active display mode.
//
// A successful SetMode invalidates every previously obtained [FrameBuffer].
type ModeActivator interface {
	SetMode(Mode) error
}

// Output is the active mode side of a graphics output device.
type Output interface {
	// CurrentMode returns the geometry of the active mode.
	CurrentMode() ModeInfo

	// FrameBufferMemory returns the mapped framebuffer of the active mode. The
	// firmware owns the memory.
	FrameBufferMemory() []byte

	// Generation is bumped on every mode switch.
	Generation() uint64
}

// GraphicsOutput is a graphics output device with mode control.
type GraphicsOutput interface {
	ModeSource
	ModeActivator
	Output
}

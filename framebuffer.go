package gop

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"log"
	"unsafe"

	"periph.io/x/conn/v3/display"

	"github.com/BeatGlow/gop/pixel"
)

// FrameBuffer is a view over the mapped framebuffer of the active display mode.
//
// The firmware owns the memory. A FrameBuffer is only valid until the next mode switch,
// after which it is stale: writes are refused and reads return transparent pixels. Obtain
// a new one with [FromActiveMode] after every SetMode.
//
// FrameBuffer does no locking, there must be a single writer.
type FrameBuffer struct {
	// XRGB32Image maps Pix to the full framebuffer, Pix[x+y*Stride] is pixel (x, y).
	pixel.XRGB32Image

	out        Output
	generation uint64
	format     PixelFormat
}

// FromActiveMode returns a FrameBuffer for the active mode of out.
//
// The pixel format is not inspected, every pixel is assumed to be a 32-bit word.
func FromActiveMode(out Output) (*FrameBuffer, error) {
	var (
		info = out.CurrentMode()
		mem  = out.FrameBufferMemory()
		fb   = &FrameBuffer{
			out:        out,
			generation: out.Generation(),
			format:     info.Format,
		}
	)

	fb.Rect = info.Resolution.Bounds()
	fb.Stride = info.Stride
	if n := len(mem) / 4; n > 0 {
		fb.Pix = unsafe.Slice((*uint32)(unsafe.Pointer(unsafe.SliceData(mem))), n)
	}

	if w, h := fb.Rect.Dx(), fb.Rect.Dy(); w > 0 && h > 0 {
		if fb.Stride < w || (h-1)*fb.Stride+w > len(fb.Pix) {
			return nil, fmt.Errorf("%w: %s stride %d in %d pixels", ErrGeometry, info.Resolution, fb.Stride, len(fb.Pix))
		}
	}

	if debug {
		log.Printf("gop: framebuffer %s stride %d, %d pixels mapped, format %s", info.Resolution, fb.Stride, len(fb.Pix), fb.format)
	}
	return fb, nil
}

// Len is the number of mapped pixels.
func (fb *FrameBuffer) Len() int {
	return len(fb.Pix)
}

// Format is the pixel format reported by the firmware.
func (fb *FrameBuffer) Format() PixelFormat {
	return fb.format
}

// Stale reports if the display mode changed since the FrameBuffer was created.
//
// A FrameBuffer not obtained from [FromActiveMode] is always stale.
func (fb *FrameBuffer) Stale() bool {
	return fb.out == nil || fb.out.Generation() != fb.generation
}

// Err returns [ErrStale] if the FrameBuffer is stale.
func (fb *FrameBuffer) Err() error {
	if fb.Stale() {
		return ErrStale
	}
	return nil
}

// DrawPixels writes pixels to the framebuffer.
//
// Pixels outside of the visible area are silently dropped. The only error is [ErrStale].
func (fb *FrameBuffer) DrawPixels(pixels []pixel.Pixel) error {
	_, err := fb.DrawPixelsClipped(pixels)
	return err
}

// DrawPixelsClipped is like DrawPixels, but also returns the number of dropped pixels.
func (fb *FrameBuffer) DrawPixelsClipped(pixels []pixel.Pixel) (clipped int, err error) {
	if err = fb.Err(); err != nil {
		return 0, err
	}

	w, h := fb.Rect.Dx(), fb.Rect.Dy()
	for _, p := range pixels {
		x, y := p.Point.X, p.Point.Y
		if x < 0 || y < 0 || x >= w || y >= h {
			clipped++
			continue
		}
		fb.Pix[x+y*fb.Stride] = p.Color.Storage()
	}

	if debug && clipped > 0 {
		log.Printf("gop: clipped %d of %d pixels", clipped, len(pixels))
	}
	return clipped, nil
}

func (fb *FrameBuffer) At(x, y int) color.Color {
	if fb.Stale() {
		return color.Transparent
	}
	return fb.XRGB32Image.At(x, y)
}

func (fb *FrameBuffer) Set(x, y int, c color.Color) {
	if fb.Stale() {
		return
	}
	fb.XRGB32Image.Set(x, y, c)
}

// SetColor is Set without the color model conversion.
func (fb *FrameBuffer) SetColor(x, y int, c pixel.Color) {
	if fb.Stale() {
		return
	}
	fb.XRGB32Image.SetColor(x, y, c)
}

// Fill the entire mapping, including stride padding, with a single color.
func (fb *FrameBuffer) Fill(c color.Color) {
	if fb.Stale() {
		return
	}
	fb.XRGB32Image.Fill(c)
}

// Clear the entire mapping to black.
func (fb *FrameBuffer) Clear() {
	if fb.Stale() {
		return
	}
	fb.XRGB32Image.Clear()
}

// Draw copies src into the framebuffer, aligning sp in src with dstRect.Min.
func (fb *FrameBuffer) Draw(dstRect image.Rectangle, src image.Image, sp image.Point) error {
	if err := fb.Err(); err != nil {
		return err
	}
	draw.Draw(&fb.XRGB32Image, dstRect, src, sp, draw.Src)
	return nil
}

// Halt blanks the framebuffer.
func (fb *FrameBuffer) Halt() error {
	if err := fb.Err(); err != nil {
		return err
	}
	fb.XRGB32Image.Clear()
	return nil
}

func (fb *FrameBuffer) String() string {
	return fmt.Sprintf("framebuffer %dx%d (stride %d, %s)", fb.Rect.Dx(), fb.Rect.Dy(), fb.Stride, fb.format)
}

// Interface checks.
var (
	_ pixel.Image    = (*FrameBuffer)(nil)
	_ display.Drawer = (*FrameBuffer)(nil)
	_ DrawTarget     = (*FrameBuffer)(nil)
)

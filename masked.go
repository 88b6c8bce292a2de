package gop

import (
	"image"

	"github.com/BeatGlow/gop/pixel"
)

// DrawTarget accepts pixel streams, such as a [FrameBuffer].
type DrawTarget interface {
	DrawPixels([]pixel.Pixel) error
}

// DrawMasked draws pixels translated by offset, skipping the pixels colored mask.
//
// The remaining pixels are passed to dst in their original order with a single call,
// so later pixels overwrite earlier ones at the same position. Errors are from dst.
func DrawMasked(dst DrawTarget, pixels []pixel.Pixel, mask pixel.Color, offset image.Point) error {
	visible := make([]pixel.Pixel, 0, len(pixels))
	for _, p := range pixels {
		if p.Color == mask {
			continue
		}
		visible = append(visible, p.Add(offset))
	}
	return dst.DrawPixels(visible)
}

// Package draw generates pixel streams for drawing onto a framebuffer.
//
// Shapes are returned as [pixel.Pixel] slices so they can be passed to a framebuffer
// directly, or composited with a mask color. Aliases for the standard [image/draw]
// package are provided for drawing whole images.
package draw

import (
	"image"
	"image/draw"

	"github.com/BeatGlow/gop/pixel"
)

// Image is an alias for [image/draw.Image].
type Image = draw.Image

// Op is an alias for image/draw.Op
type Op = draw.Op

const (
	// Over specifies ``(src in mask) over dst''.
	Over Op = iota

	// Src specifies ``src in mask''.
	Src
)

// Draw calls [image/draw.Draw].
func Draw(dst Image, r image.Rectangle, src image.Image, sp image.Point, op Op) {
	draw.Draw(dst, r, src, sp, op)
}

// Pixels converts the r area of src to a pixel stream, anchored at the origin.
//
// Transparent source pixels are converted to black, use a mask color with [Sprite]
// to keep them from being drawn.
func Pixels(src image.Image, r image.Rectangle) []pixel.Pixel {
	r = r.Intersect(src.Bounds())
	pixels := make([]pixel.Pixel, 0, r.Dx()*r.Dy())
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			pixels = append(pixels, pixel.Pixel{
				Point: image.Point{X: x - r.Min.X, Y: y - r.Min.Y},
				Color: pixel.RGB888Model.Convert(src.At(x, y)).(pixel.Color),
			})
		}
	}
	return pixels
}

// Sprite converts src to a pixel stream, transparent pixels get the mask color.
func Sprite(src image.Image, mask pixel.Color) []pixel.Pixel {
	b := src.Bounds()
	pixels := make([]pixel.Pixel, 0, b.Dx()*b.Dy())
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			c := src.At(x, y)
			p := pixel.Pixel{Point: image.Point{X: x - b.Min.X, Y: y - b.Min.Y}, Color: mask}
			if _, _, _, a := c.RGBA(); a != 0 {
				p.Color = pixel.RGB888Model.Convert(c).(pixel.Color)
			}
			pixels = append(pixels, p)
		}
	}
	return pixels
}

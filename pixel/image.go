package pixel

import (
	"image"
	"image/color"
	"image/draw"
)

type Image interface {
	draw.Image

	// Clear the image.
	Clear()

	// Fill the image with a single color.
	Fill(color.Color)
}

// XRGB32Image is a 32-bits per pixel image with one packed 0x00RRGGBB word per pixel.
//
// Pix may be longer than Stride*Rect.Dy(), framebuffers are often mapped with slack
// after the last scan line.
type XRGB32Image struct {
	// Rect is the image bounding box.
	Rect image.Rectangle

	// Pix are the image pixels.
	Pix []uint32

	// Stride is the Pix stride (in pixels) between vertically adjacent pixels.
	Stride int
}

func NewXRGB32Image(w, h int) *XRGB32Image {
	return &XRGB32Image{
		Rect:   image.Rect(0, 0, w, h),
		Pix:    make([]uint32, w*h),
		Stride: w,
	}
}

func (p *XRGB32Image) Bounds() image.Rectangle {
	return p.Rect
}

func (p *XRGB32Image) ColorModel() color.Model {
	return RGB888Model
}

// PixOffset returns the index of the word holding (x, y).
func (p *XRGB32Image) PixOffset(x, y int) int {
	return (y-p.Rect.Min.Y)*p.Stride + (x - p.Rect.Min.X)
}

func (p *XRGB32Image) At(x, y int) color.Color {
	if !(image.Point{X: x, Y: y}).In(p.Rect) {
		return color.Transparent
	}
	return FromStorage(p.Pix[p.PixOffset(x, y)])
}

func (p *XRGB32Image) Set(x, y int, c color.Color) {
	if !(image.Point{X: x, Y: y}).In(p.Rect) {
		return
	}
	p.Pix[p.PixOffset(x, y)] = rgb888Model(c).(Color).Storage()
}

// SetColor is Set without the color model conversion.
func (p *XRGB32Image) SetColor(x, y int, c Color) {
	if !(image.Point{X: x, Y: y}).In(p.Rect) {
		return
	}
	p.Pix[p.PixOffset(x, y)] = c.Storage()
}

func (p *XRGB32Image) Fill(c color.Color) {
	value := rgb888Model(c).(Color).Storage()
	for i := range p.Pix {
		p.Pix[i] = value
	}
}

func (p *XRGB32Image) Clear() {
	for i := range p.Pix {
		p.Pix[i] = 0
	}
}

// Interface checks.
var (
	_ Image = (*XRGB32Image)(nil)
)

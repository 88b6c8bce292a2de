package pixel

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"strconv"
	"strings"
)

// RGB888Model is the color model for [Color].
var RGB888Model color.Model = color.ModelFunc(rgb888Model)

// ErrColorSyntax is returned when parsing a malformed color.
var ErrColorSyntax = errors.New("pixel: invalid color, expected #rrggbb")

// Basic colors.
var (
	Black   = Color{}
	White   = Color{R: 0xff, G: 0xff, B: 0xff}
	Magenta = Color{R: 0xff, B: 0xff}
)

// Color is a device independent 24-bit RGB color.
type Color struct {
	R, G, B uint8
}

// RGB returns the color with the given channels.
func RGB(r, g, b uint8) Color {
	return Color{R: r, G: g, B: b}
}

// FromStorage unpacks a 0x00RRGGBB framebuffer word.
func FromStorage(v uint32) Color {
	return Color{
		R: uint8(v >> 16),
		G: uint8(v >> 8),
		B: uint8(v),
	}
}

// Storage returns the packed 32-bit form, 0x00RRGGBB.
//
// On little endian machines this is laid out in memory as B, G, R, reserved, which
// is what most firmware reports as its blue-green-red-reserved pixel format.
func (c Color) Storage() uint32 {
	return uint32(c.R)<<16 | uint32(c.G)<<8 | uint32(c.B)
}

func (c Color) RGBA() (r, g, b, a uint32) {
	r = uint32(c.R)
	r |= r << 8
	g = uint32(c.G)
	g |= g << 8
	b = uint32(c.B)
	b |= b << 8
	return r, g, b, 0xffff
}

// String returns the color as #rrggbb.
func (c Color) String() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

func (c Color) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

func (c *Color) UnmarshalText(text []byte) error {
	v, err := ParseColor(string(text))
	if err != nil {
		return err
	}
	*c = v
	return nil
}

// ParseColor parses a #rrggbb (or rrggbb) hex color.
func ParseColor(s string) (Color, error) {
	s = strings.TrimPrefix(s, "#")
	if len(s) != 6 {
		return Color{}, ErrColorSyntax
	}
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return Color{}, ErrColorSyntax
	}
	return FromStorage(uint32(v)), nil
}

func rgb888Model(c color.Color) color.Color {
	if _, ok := c.(Color); ok {
		return c
	}
	r, g, b, a := c.RGBA()
	if a == 0 {
		return Color{}
	}
	// Un-premultiply, the framebuffer has no alpha channel.
	if a != 0xffff {
		r = r * 0xffff / a
		g = g * 0xffff / a
		b = b * 0xffff / a
	}
	return Color{
		R: uint8(r >> 8),
		G: uint8(g >> 8),
		B: uint8(b >> 8),
	}
}

// Pixel is a colored point.
type Pixel struct {
	Point image.Point
	Color Color
}

// Pt is shorthand for Pixel{image.Pt(x, y), c}.
func Pt(x, y int, c Color) Pixel {
	return Pixel{Point: image.Point{X: x, Y: y}, Color: c}
}

// Add translates the pixel by offset.
func (p Pixel) Add(offset image.Point) Pixel {
	return Pixel{Point: p.Point.Add(offset), Color: p.Color}
}

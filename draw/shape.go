package draw

import (
	"image"

	"github.com/BeatGlow/gop/pixel"
)

// Line returns the pixels of a line between two points.
func Line(a, b image.Point, c pixel.Color) []pixel.Pixel {
	var pixels []pixel.Pixel
	bresenham(a.X, a.Y, b.X, b.Y, func(x, y int) {
		pixels = append(pixels, pixel.Pt(x, y, c))
	})
	return pixels
}

// HorizontalLine returns the pixels of a line between (x,y) and (x+w-1,y).
func HorizontalLine(x, y, w int, c pixel.Color) []pixel.Pixel {
	if w <= 0 {
		return nil
	}
	pixels := make([]pixel.Pixel, w)
	for i := range pixels {
		pixels[i] = pixel.Pt(x+i, y, c)
	}
	return pixels
}

// VerticalLine returns the pixels of a line between (x,y) and (x,y+h-1).
func VerticalLine(x, y, h int, c pixel.Color) []pixel.Pixel {
	if h <= 0 {
		return nil
	}
	pixels := make([]pixel.Pixel, h)
	for i := range pixels {
		pixels[i] = pixel.Pt(x, y+i, c)
	}
	return pixels
}

// Rectangle returns the outline of rect, Max is exclusive.
func Rectangle(rect image.Rectangle, c pixel.Color) []pixel.Pixel {
	rect = rect.Canon()
	var (
		w = rect.Dx()
		h = rect.Dy()
	)
	if w == 0 || h == 0 {
		return nil
	}
	pixels := HorizontalLine(rect.Min.X, rect.Min.Y, w, c)
	if h > 1 {
		pixels = append(pixels, HorizontalLine(rect.Min.X, rect.Max.Y-1, w, c)...)
	}
	pixels = append(pixels, VerticalLine(rect.Min.X, rect.Min.Y+1, h-2, c)...)
	if w > 1 {
		pixels = append(pixels, VerticalLine(rect.Max.X-1, rect.Min.Y+1, h-2, c)...)
	}
	return pixels
}

// Box returns the pixels of a filled rectangle, Max is exclusive.
func Box(rect image.Rectangle, c pixel.Color) []pixel.Pixel {
	rect = rect.Canon()
	pixels := make([]pixel.Pixel, 0, rect.Dx()*rect.Dy())
	for y := rect.Min.Y; y < rect.Max.Y; y++ {
		pixels = append(pixels, HorizontalLine(rect.Min.X, y, rect.Dx(), c)...)
	}
	return pixels
}

// Generalized with integer
func bresenham(x1, y1, x2, y2 int, plot func(x, y int)) {
	var dx, dy, e, slope int

	// Because drawing p1 -> p2 is equivalent to draw p2 -> p1,
	// I sort points in x-axis order to handle only half of possible cases.
	if x1 > x2 {
		x1, y1, x2, y2 = x2, y2, x1, y1
	}

	dx, dy = x2-x1, y2-y1
	// Because point is x-axis ordered, dx cannot be negative
	if dy < 0 {
		dy = -dy
	}

	switch {

	// Is line a point ?
	case x1 == x2 && y1 == y2:
		plot(x1, y1)

	// Is line an horizontal ?
	case y1 == y2:
		for ; dx != 0; dx-- {
			plot(x1, y1)
			x1++
		}
		plot(x1, y1)

	// Is line a vertical ?
	case x1 == x2:
		if y1 > y2 {
			y1, y2 = y2, y1
		}
		for ; dy != 0; dy-- {
			plot(x1, y1)
			y1++
		}
		plot(x1, y1)

	// Is line a diagonal ?
	case dx == dy:
		step := 1
		if y1 > y2 {
			step = -1
		}
		for ; dx != 0; dx-- {
			plot(x1, y1)
			x1++
			y1 += step
		}
		plot(x1, y1)

	// wider than high ?
	case dx > dy:
		step := 1
		if y1 > y2 {
			step = -1
		}
		dy, e, slope = 2*dy, dx, 2*dx
		for ; dx != 0; dx-- {
			plot(x1, y1)
			x1++
			e -= dy
			if e < 0 {
				y1 += step
				e += slope
			}
		}
		plot(x2, y2)

	// higher than wide.
	default:
		step := 1
		if y1 > y2 {
			step = -1
		}
		dx, e, slope = 2*dx, dy, 2*dy
		for ; dy != 0; dy-- {
			plot(x1, y1)
			y1 += step
			e -= dx
			if e < 0 {
				x1++
				e += slope
			}
		}
		plot(x2, y2)
	}
}

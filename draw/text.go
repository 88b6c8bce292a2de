package draw

import (
	"image"
	"sync"

	"github.com/golang/freetype"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/math/fixed"

	"github.com/BeatGlow/gop/pixel"
)

const labelDPI = 72

var goRegular = sync.OnceValues(func() (*truetype.Font, error) {
	return freetype.ParseFont(goregular.TTF)
})

// Label renders text in the Go Regular font as a pixel stream anchored at the origin.
//
// Glyph pixels have the fg color, everything else in the returned bounds has the mask
// color, so the label can be composited with a masked draw.
func Label(text string, size float64, fg, mask pixel.Color) ([]pixel.Pixel, image.Rectangle, error) {
	f, err := goRegular()
	if err != nil {
		return nil, image.Rectangle{}, err
	}

	face := truetype.NewFace(f, &truetype.Options{
		Size:    size,
		DPI:     labelDPI,
		Hinting: font.HintingFull,
	})
	defer face.Close()

	var (
		metrics = face.Metrics()
		width   = font.MeasureString(face, text).Ceil()
		height  = (metrics.Ascent + metrics.Descent).Ceil()
		dst     = image.NewAlpha(image.Rect(0, 0, width, height))
		c       = freetype.NewContext()
	)
	c.SetDPI(labelDPI)
	c.SetFont(f)
	c.SetFontSize(size)
	c.SetHinting(font.HintingFull)
	c.SetClip(dst.Bounds())
	c.SetDst(dst)
	c.SetSrc(image.Opaque)
	if _, err = c.DrawString(text, fixed.Point26_6{Y: metrics.Ascent}); err != nil {
		return nil, image.Rectangle{}, err
	}

	pixels := make([]pixel.Pixel, 0, width*height)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			p := pixel.Pt(x, y, mask)
			if dst.AlphaAt(x, y).A >= 0x80 {
				p.Color = fg
			}
			pixels = append(pixels, p)
		}
	}
	return pixels, dst.Bounds(), nil
}

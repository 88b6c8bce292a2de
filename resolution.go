package gop

import (
	"fmt"
	"image"
	"strconv"
	"strings"
)

// Resolution are pixel dimensions.
type Resolution struct {
	Width  uint
	Height uint
}

// Res returns the resolution for a (width, height) pair.
func Res(width, height int) Resolution {
	return Resolution{Width: uint(width), Height: uint(height)}
}

// ParseResolution parses a resolution formatted as WxH.
func ParseResolution(s string) (Resolution, error) {
	w, h, ok := strings.Cut(strings.TrimSpace(s), "x")
	if !ok {
		return Resolution{}, fmt.Errorf("gop: invalid resolution %q, expected WxH", s)
	}
	width, err := strconv.ParseUint(w, 10, 32)
	if err != nil {
		return Resolution{}, fmt.Errorf("gop: invalid resolution width %q: %w", w, err)
	}
	height, err := strconv.ParseUint(h, 10, 32)
	if err != nil {
		return Resolution{}, fmt.Errorf("gop: invalid resolution height %q: %w", h, err)
	}
	return Resolution{Width: uint(width), Height: uint(height)}, nil
}

func (r Resolution) String() string {
	return fmt.Sprintf("%dx%d", r.Width, r.Height)
}

// Bounds is the resolution as a rectangle anchored at the origin.
func (r Resolution) Bounds() image.Rectangle {
	return image.Rect(0, 0, int(r.Width), int(r.Height))
}

func (r Resolution) MarshalText() ([]byte, error) {
	return []byte(r.String()), nil
}

func (r *Resolution) UnmarshalText(text []byte) error {
	v, err := ParseResolution(string(text))
	if err != nil {
		return err
	}
	*r = v
	return nil
}

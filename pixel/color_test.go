package pixel

import (
	"image"
	"image/color"
	"testing"
)

func TestColorStorage(t *testing.T) {
	tests := []struct {
		c    Color
		want uint32
	}{
		{Black, 0x000000},
		{White, 0xffffff},
		{RGB(0xff, 0, 0), 0xff0000},
		{RGB(0, 0xff, 0), 0x00ff00},
		{RGB(0, 0, 0xff), 0x0000ff},
		{RGB(0x12, 0x34, 0x56), 0x123456},
	}
	for _, test := range tests {
		t.Run(test.c.String(), func(it *testing.T) {
			if v := test.c.Storage(); v != test.want {
				it.Errorf("expected storage %#08x, got %#08x", test.want, v)
			}
			if v := FromStorage(test.want); v != test.c {
				it.Errorf("expected %s from storage, got %s", test.c, v)
			}
		})
	}
}

func TestColorRGBA(t *testing.T) {
	for v := 0; v < 256; v += 17 {
		c := RGB(uint8(v), uint8(v), uint8(v))
		r, g, b, a := c.RGBA()
		want := uint32(v | v<<8)
		if r != want {
			t.Errorf("expected red to be %#04x, got %#04x", want, r)
		}
		if g != want {
			t.Errorf("expected green to be %#04x, got %#04x", want, g)
		}
		if b != want {
			t.Errorf("expected blue to be %#04x, got %#04x", want, b)
		}
		if a != 0xffff {
			t.Errorf("expected opaque alpha, got %#04x", a)
		}
	}
}

func TestRGB888Model(t *testing.T) {
	tests := []struct {
		Name string
		In   color.Color
		Want Color
	}{
		{"rgba", color.RGBA{R: 0x10, G: 0x20, B: 0x30, A: 0xff}, RGB(0x10, 0x20, 0x30)},
		{"gray", color.Gray{Y: 0x80}, RGB(0x80, 0x80, 0x80)},
		{"transparent", color.Transparent, Black},
		{"premultiplied", color.RGBA{R: 0x40, A: 0x80}, RGB(0x7f, 0, 0)},
		{"native", RGB(1, 2, 3), RGB(1, 2, 3)},
	}
	for _, test := range tests {
		t.Run(test.Name, func(it *testing.T) {
			if v := RGB888Model.Convert(test.In); v != test.Want {
				it.Errorf("expected %v, got %v", test.Want, v)
			}
		})
	}
}

func TestParseColor(t *testing.T) {
	for _, s := range []string{"#ff00ff", "ff00ff", "#FF00FF"} {
		c, err := ParseColor(s)
		if err != nil {
			t.Fatalf("parse %q: %v", s, err)
		}
		if c != Magenta {
			t.Errorf("parse %q: expected %s, got %s", s, Magenta, c)
		}
	}
	for _, s := range []string{"", "#fff", "#gg0000", "#ff00ff00"} {
		if _, err := ParseColor(s); err != ErrColorSyntax {
			t.Errorf("parse %q: expected ErrColorSyntax, got %v", s, err)
		}
	}

	var c Color
	if err := c.UnmarshalText([]byte("#123456")); err != nil {
		t.Fatal(err)
	}
	if b, _ := c.MarshalText(); string(b) != "#123456" {
		t.Errorf("expected #123456, got %s", b)
	}
}

func TestPixelAdd(t *testing.T) {
	p := Pt(1, 2, White).Add(image.Pt(-3, 4))
	if want := image.Pt(-2, 6); p.Point != want {
		t.Errorf("expected %s, got %s", want, p.Point)
	}
	if p.Color != White {
		t.Errorf("expected color to be kept, got %s", p.Color)
	}
}

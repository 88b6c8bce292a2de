package framebuffer

import (
	"errors"
	"os"
	"testing"

	"github.com/BeatGlow/gop"
)

func TestParsePixelFormat(t *testing.T) {
	tests := []struct {
		Name             string
		Red, Green, Blue uint32
		Want             gop.PixelFormat
	}{
		{"bgrx", 16, 8, 0, gop.PixelBGRReserved},
		{"rgbx", 0, 8, 16, gop.PixelRGBReserved},
		{"other", 24, 16, 8, gop.PixelBitMask},
	}
	for _, test := range tests {
		t.Run(test.Name, func(it *testing.T) {
			info := &linuxVarScreenInfo{BitsPerPixel: 32}
			info.Red = linuxBitField{Offset: test.Red, Length: 8}
			info.Green = linuxBitField{Offset: test.Green, Length: 8}
			info.Blue = linuxBitField{Offset: test.Blue, Length: 8}
			if v := linuxParsePixelFormat(info); v != test.Want {
				it.Errorf("expected %s, got %s", test.Want, v)
			}
		})
	}
}

func TestOpenMissing(t *testing.T) {
	if _, err := Open("/dev/fb-does-not-exist"); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("expected not exist error, got %v", err)
	}
}

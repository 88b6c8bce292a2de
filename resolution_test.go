package gop

import (
	"image"
	"testing"
)

func TestResolutionString(t *testing.T) {
	tests := []struct {
		Resolution Resolution
		Want       string
	}{
		{Resolution{1920, 1080}, "1920x1080"},
		{Resolution{800, 600}, "800x600"},
		{Resolution{}, "0x0"},
	}
	for _, test := range tests {
		if v := test.Resolution.String(); v != test.Want {
			t.Errorf("expected %q, got %q", test.Want, v)
		}
	}
}

func TestParseResolution(t *testing.T) {
	r, err := ParseResolution("1024x768")
	if err != nil {
		t.Fatal(err)
	}
	if want := Res(1024, 768); r != want {
		t.Errorf("expected %s, got %s", want, r)
	}
	if v := r.Bounds(); v != image.Rect(0, 0, 1024, 768) {
		t.Errorf("expected bounds %s, got %s", image.Rect(0, 0, 1024, 768), v)
	}

	for _, s := range []string{"", "1024", "x768", "1024x", "-1x2", "axb"} {
		if _, err := ParseResolution(s); err == nil {
			t.Errorf("parse %q: expected error", s)
		}
	}

	var text Resolution
	if err = text.UnmarshalText([]byte("640x480")); err != nil {
		t.Fatal(err)
	}
	if b, _ := text.MarshalText(); string(b) != "640x480" {
		t.Errorf("expected 640x480, got %s", b)
	}
}

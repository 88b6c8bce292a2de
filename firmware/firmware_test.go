package firmware

import (
	"errors"
	"testing"

	"github.com/BeatGlow/gop"
	"github.com/BeatGlow/gop/pixel"
)

func TestNew(t *testing.T) {
	s, err := New(&Config{
		Modes:   []gop.Resolution{gop.Res(800, 600), gop.Res(1024, 768)},
		Padding: 16,
		Format:  gop.PixelBGRReserved,
	})
	if err != nil {
		t.Fatal(err)
	}
	modes := s.Modes()
	if len(modes) != 2 {
		t.Fatalf("expected 2 modes, got %d", len(modes))
	}
	if v := s.CurrentMode(); v != modes[0].Info() {
		t.Errorf("expected first mode to be active, got %+v", v)
	}
	if v := modes[1].Info().Stride; v != 1024+16 {
		t.Errorf("expected stride %d, got %d", 1024+16, v)
	}
	if v := len(s.FrameBufferMemory()); v != (800+16)*600*4 {
		t.Errorf("expected %d mapped bytes, got %d", (800+16)*600*4, v)
	}

	if _, err = New(&Config{}); !errors.Is(err, gop.ErrNoModes) {
		t.Errorf("expected ErrNoModes, got %v", err)
	}
	if _, err = New(&Config{Modes: []gop.Resolution{gop.Res(1, 1)}, Padding: -1}); err == nil {
		t.Error("expected negative padding to fail")
	}
	if s, err = New(nil); err != nil {
		t.Fatal(err)
	}
	if v := len(s.Modes()); v != len(DefaultConfig.Modes) {
		t.Errorf("expected %d default modes, got %d", len(DefaultConfig.Modes), v)
	}
}

func TestSetMode(t *testing.T) {
	s, err := New(&Config{Modes: []gop.Resolution{gop.Res(4, 4), gop.Res(8, 2)}})
	if err != nil {
		t.Fatal(err)
	}

	var switched []uint32
	s.OnSetMode = func(m *Mode) { switched = append(switched, m.Number) }

	fb, err := gop.FromActiveMode(s)
	if err != nil {
		t.Fatal(err)
	}
	if err = fb.DrawPixels([]pixel.Pixel{pixel.Pt(3, 3, pixel.White)}); err != nil {
		t.Fatal(err)
	}

	modes := s.Modes()
	if err = s.SetMode(modes[1]); err != nil {
		t.Fatal(err)
	}
	if v := s.Current(); v != modes[1] {
		t.Errorf("expected %v to be active, got %v", modes[1], v)
	}
	if err = fb.DrawPixels([]pixel.Pixel{pixel.Pt(0, 0, pixel.White)}); err != gop.ErrStale {
		t.Errorf("expected ErrStale after a mode switch, got %v", err)
	}

	if fb, err = gop.FromActiveMode(s); err != nil {
		t.Fatal(err)
	}
	if v := fb.Bounds().Size(); v.X != 8 || v.Y != 2 {
		t.Errorf("expected 8x2 framebuffer, got %s", v)
	}
	for i, v := range fb.Pix {
		if v != 0 {
			t.Fatalf("expected blank framebuffer after a mode switch, element %d is %#08x", i, v)
		}
	}

	// Re-activating the current mode still invalidates.
	if err = s.SetMode(modes[1]); err != nil {
		t.Fatal(err)
	}
	if !fb.Stale() {
		t.Error("expected stale framebuffer after re-activation")
	}
	if want := []uint32{1, 1}; len(switched) != 2 || switched[0] != want[0] || switched[1] != want[1] {
		t.Errorf("expected switches %v, got %v", want, switched)
	}
}

func TestSetModeErrors(t *testing.T) {
	s, err := New(&Config{Modes: []gop.Resolution{gop.Res(4, 4)}})
	if err != nil {
		t.Fatal(err)
	}
	other, err := New(&Config{Modes: []gop.Resolution{gop.Res(4, 4)}})
	if err != nil {
		t.Fatal(err)
	}
	if err = s.SetMode(other.Modes()[0]); err != ErrUnknownMode {
		t.Errorf("expected ErrUnknownMode for a foreign mode, got %v", err)
	}

	generation := s.Generation()
	errDevice := errors.New("test: device error")
	s.Fail = errDevice
	if err = s.SetMode(s.Modes()[0]); err != errDevice {
		t.Errorf("expected injected error, got %v", err)
	}
	if v := s.Generation(); v != generation {
		t.Errorf("expected failed switch to keep generation %d, got %d", generation, v)
	}
}

// Package firmware simulates the graphics output services of a platform firmware.
//
// The [Simulator] keeps a mode table and maps a fresh framebuffer on every mode switch,
// so code written against the gop interfaces can be run and tested without hardware.
package firmware

import (
	"errors"
	"fmt"
	"log"
	"os"
	"unsafe"

	"github.com/BeatGlow/gop"
)

var debug bool

func init() {
	debug = os.Getenv("GOP_DEBUG") != ""
}

// Errors
var (
	ErrUnknownMode = errors.New("firmware: mode is not offered by this device")
)

// Config is the simulated device configuration.
type Config struct {
	// Modes offered, in firmware order. The first mode is active after [New].
	Modes []gop.Resolution

	// Padding is the number of extra pixels per scan line.
	Padding int

	// Format reported for every mode.
	Format gop.PixelFormat
}

// DefaultConfig offers a few common modes.
var DefaultConfig = Config{
	Modes: []gop.Resolution{
		{Width: 640, Height: 480},
		{Width: 800, Height: 600},
		{Width: 1024, Height: 768},
		{Width: 1280, Height: 1024},
	},
	Format: gop.PixelBGRReserved,
}

// Mode is a mode handle of the simulator.
type Mode struct {
	// Number is the firmware mode number.
	Number uint32
	info   gop.ModeInfo
}

func (m *Mode) Info() gop.ModeInfo {
	return m.info
}

func (m *Mode) String() string {
	return fmt.Sprintf("mode %d: %s", m.Number, m.info.Resolution)
}

// Simulator is an in-memory graphics output device.
type Simulator struct {
	modes      []*Mode
	current    *Mode
	pix        []uint32
	generation uint64

	// OnSetMode is called after every successful mode switch, a console uses it to
	// redraw.
	OnSetMode func(*Mode)

	// Fail makes SetMode return the error instead of switching modes.
	Fail error
}

// New returns a simulator with the first configured mode active.
func New(config *Config) (*Simulator, error) {
	if config == nil {
		config = &DefaultConfig
	}
	if len(config.Modes) == 0 {
		return nil, gop.ErrNoModes
	}
	if config.Padding < 0 {
		return nil, fmt.Errorf("firmware: invalid scan line padding %d", config.Padding)
	}

	s := new(Simulator)
	for i, r := range config.Modes {
		s.modes = append(s.modes, &Mode{
			Number: uint32(i),
			info: gop.ModeInfo{
				Resolution: r,
				Stride:     int(r.Width) + config.Padding,
				Format:     config.Format,
			},
		})
	}
	s.activate(s.modes[0])
	return s, nil
}

// Modes returns the mode table.
func (s *Simulator) Modes() []gop.Mode {
	modes := make([]gop.Mode, len(s.modes))
	for i, m := range s.modes {
		modes[i] = m
	}
	return modes
}

// SetMode switches to mode, which must be one returned by Modes.
//
// The previous framebuffer is released and a blank one is mapped, even when mode is
// already active.
func (s *Simulator) SetMode(mode gop.Mode) error {
	if s.Fail != nil {
		return s.Fail
	}
	m, ok := mode.(*Mode)
	if !ok || int(m.Number) >= len(s.modes) || s.modes[m.Number] != m {
		return ErrUnknownMode
	}
	s.activate(m)
	if s.OnSetMode != nil {
		s.OnSetMode(m)
	}
	return nil
}

func (s *Simulator) activate(m *Mode) {
	s.current = m
	s.pix = make([]uint32, m.info.Stride*int(m.info.Resolution.Height))
	s.generation++
	if debug {
		log.Printf("firmware: set %s, stride %d, generation %d", m, m.info.Stride, s.generation)
	}
}

// Current returns the active mode.
func (s *Simulator) Current() *Mode {
	return s.current
}

func (s *Simulator) CurrentMode() gop.ModeInfo {
	return s.current.info
}

func (s *Simulator) FrameBufferMemory() []byte {
	if len(s.pix) == 0 {
		return nil
	}
	return unsafe.Slice((*byte)(unsafe.Pointer(&s.pix[0])), len(s.pix)*4)
}

func (s *Simulator) Generation() uint64 {
	return s.generation
}

// Interface checks.
var (
	_ gop.GraphicsOutput = (*Simulator)(nil)
)

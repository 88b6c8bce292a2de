package framebuffer

import (
	"fmt"
	"log"
	"os"
	"syscall"
	"unsafe"

	"github.com/BeatGlow/gop"
	"github.com/BeatGlow/gop/internal/ioctl"
)

const (
	// From <linux/fb.h>
	fbioGetVScreenInfo = 0x4600
	fbioPutVScreenInfo = 0x4601
	fbioGetFScreenInfo = 0x4602

	fbActivateNow   = 0
	fbActivateForce = 128
)

// Device is a Linux framebuffer device (fbdev).
type Device struct {
	f          *os.File
	fd         uintptr
	info       linuxFrameBufferInfo
	screenInfo linuxVarScreenInfo
	mode       *mode
	mem        []byte
	generation uint64
}

type mode struct {
	info gop.ModeInfo
}

func (m *mode) Info() gop.ModeInfo {
	return m.info
}

// Open a Linux FrameBuffer device (fbdev) by name, typically /dev/fb[0..x].
func Open(name string) (*Device, error) {
	f, err := os.OpenFile(name, os.O_RDWR, os.ModeDevice)
	if err != nil {
		return nil, err
	}

	d := &Device{
		f:  f,
		fd: f.Fd(),
	}
	if err = ioctl.Pointer(d.fd, fbioGetFScreenInfo, unsafe.Pointer(&d.info)); err != nil {
		_ = f.Close()
		return nil, err
	}

	// Request virtual screen info.
	if err = ioctl.Pointer(d.fd, fbioGetVScreenInfo, unsafe.Pointer(&d.screenInfo)); err != nil {
		_ = f.Close()
		return nil, err
	}
	if d.screenInfo.BitsPerPixel != 32 {
		_ = f.Close()
		return nil, fmt.Errorf("%w, %s has %d", ErrPixelDepth, name, d.screenInfo.BitsPerPixel)
	}

	d.mode = &mode{
		info: gop.ModeInfo{
			Resolution: gop.Res(int(d.screenInfo.Xres), int(d.screenInfo.Yres)),
			Stride:     int(d.info.LineLength) / 4,
			Format:     linuxParsePixelFormat(&d.screenInfo),
		},
	}

	// Map pixel buffer.
	if d.mem, err = syscall.Mmap(int(d.fd), 0, int(d.info.SmemLen), syscall.PROT_READ|syscall.PROT_WRITE, syscall.MAP_SHARED); err != nil {
		_ = f.Close()
		return nil, &os.SyscallError{Syscall: "mmap", Err: err}
	}

	if debug {
		log.Printf("framebuffer: %s %s stride %d, %d bytes mapped, format %s", name, d.mode.info.Resolution, d.mode.info.Stride, len(d.mem), d.mode.info.Format)
	}
	return d, nil
}

// Modes returns the single mode configured by the kernel.
func (d *Device) Modes() []gop.Mode {
	return []gop.Mode{d.mode}
}

// SetMode re-activates the configured mode, which is the only mode offered.
func (d *Device) SetMode(m gop.Mode) error {
	if m != gop.Mode(d.mode) {
		return ErrUnsupportedMode
	}
	screenInfo := d.screenInfo
	screenInfo.Activate = fbActivateNow | fbActivateForce
	if err := ioctl.Pointer(d.fd, fbioPutVScreenInfo, unsafe.Pointer(&screenInfo)); err != nil {
		return err
	}
	d.generation++
	return nil
}

func (d *Device) CurrentMode() gop.ModeInfo {
	return d.mode.info
}

func (d *Device) FrameBufferMemory() []byte {
	return d.mem
}

func (d *Device) Generation() uint64 {
	return d.generation
}

// Close the framebuffer device
func (d *Device) Close() error {
	if d.mem != nil {
		if err := syscall.Munmap(d.mem); err != nil {
			return err
		}
		d.mem = nil
		d.generation++
	}
	return d.f.Close()
}

type linuxFrameBufferInfo struct {
	ID         [16]byte  // Identification string eg "TT Builtin"
	SmemStart  uintptr   // Start of frame buffer mem
	SmemLen    uint32    // Length of frame buffer mem
	Type       uint32    // FB_TYPE_
	TypeAux    uint32    // Interleave for interleaved Planes
	Visual     uint32    // FB_VISUAL_
	Xpanstep   uint16    // Zero if no hardware panning
	Ypanstep   uint16    // Zero if no hardware panning
	Ywrapstep  uint16    // Zero if no hardware ywrap
	LineLength uint32    // Length of a line in bytes
	MmioStart  uintptr   // Start of Memory Mapped I/O (physical address)
	MmioLen    uint32    // Length of Memory Mapped I/O
	Accel      uint32    // Type of acceleration available
	Reserved   [3]uint16 // Reserved for future compatibility
}

// linuxBitField for the color
type linuxBitField struct {
	Offset   uint32 // Beginning of bitfield
	Length   uint32 // Length of bitfield
	MsbRight uint32 // != 0 : Most significant bit is right
}

// linuxVarScreenInfo contains device independent changeable information about a frame buffer device and a specific video mode.
type linuxVarScreenInfo struct {
	Xres                    uint32
	Yres                    uint32
	XresVirtual             uint32
	YresVirtual             uint32
	Xoffset                 uint32
	Yoffset                 uint32
	BitsPerPixel            uint32
	Grayscale               uint32
	Red, Green, Blue, Alpha linuxBitField
	Nonstd                  uint32
	Activate                uint32
	Height                  uint32
	Width                   uint32
	AccelFlags              uint32
	Pixclock                uint32
	LeftMargin              uint32
	RightMargin             uint32
	UpperMargin             uint32
	LowerMargin             uint32
	HsyncLen                uint32
	VsyncLen                uint32
	Sync                    uint32
	Vmode                   uint32
	Rotate                  uint32
	Colorspace              uint32
	Reserved                [4]uint32
}

// linuxParsePixelFormat maps the 32-bit channel layout to a firmware pixel format.
func linuxParsePixelFormat(info *linuxVarScreenInfo) gop.PixelFormat {
	switch {
	case info.Red.Offset == 16 && info.Red.Length == 8 &&
		info.Green.Offset == 8 && info.Green.Length == 8 &&
		info.Blue.Offset == 0 && info.Blue.Length == 8:
		return gop.PixelBGRReserved

	case info.Red.Offset == 0 && info.Red.Length == 8 &&
		info.Green.Offset == 8 && info.Green.Length == 8 &&
		info.Blue.Offset == 16 && info.Blue.Length == 8:
		return gop.PixelRGBReserved

	default:
		return gop.PixelBitMask
	}
}

// Interface checks.
var (
	_ gop.GraphicsOutput = (*Device)(nil)
)

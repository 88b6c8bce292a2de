package main

import (
	"flag"
	"fmt"
	"image"
	"image/color"
	"io"
	"os"
	"strings"

	"github.com/gdamore/tcell/v2"
	"golang.org/x/image/bmp"
	"periph.io/x/conn/v3/display"

	"github.com/BeatGlow/gop"
	"github.com/BeatGlow/gop/console"
	"github.com/BeatGlow/gop/draw"
	"github.com/BeatGlow/gop/firmware"
	"github.com/BeatGlow/gop/framebuffer"
	"github.com/BeatGlow/gop/pixel"
)

// resolutionsFlag is a comma separated list of resolutions.
type resolutionsFlag []gop.Resolution

func (f *resolutionsFlag) String() string {
	var s []string
	for _, r := range *f {
		s = append(s, r.String())
	}
	return strings.Join(s, ",")
}

func (f *resolutionsFlag) Set(value string) error {
	*f = (*f)[:0]
	for _, part := range strings.Split(value, ",") {
		r, err := gop.ParseResolution(part)
		if err != nil {
			return err
		}
		*f = append(*f, r)
	}
	return nil
}

type colorFlag struct {
	*pixel.Color
}

func (f colorFlag) String() string {
	if f.Color == nil {
		return ""
	}
	return f.Color.String()
}

func (f colorFlag) Set(value string) error {
	return f.Color.UnmarshalText([]byte(value))
}

type options struct {
	modes []gop.Resolution
	pad   int
	mask  pixel.Color
	fbdev string
	out   string
	label string
	size  float64
}

func main() {
	var (
		modes = resolutionsFlag(append([]gop.Resolution(nil), firmware.DefaultConfig.Modes...))
		opts  = options{mask: pixel.Magenta}
	)
	flag.Var(&modes, "modes", "Simulated display modes (comma separated WxH)")
	flag.IntVar(&opts.pad, "pad", 0, "Simulated scan line padding in pixels")
	flag.Var(colorFlag{&opts.mask}, "mask", "Mask color used when compositing the label")
	flag.StringVar(&opts.fbdev, "fbdev", "", "Use a Linux framebuffer device (e.g. /dev/fb0) instead of the simulator")
	flag.StringVar(&opts.out, "out", "", "Write the final framebuffer to a BMP file")
	flag.StringVar(&opts.label, "label", "Hello from the framebuffer", "Label text")
	flag.Float64Var(&opts.size, "size", 24, "Label font size in points")
	flag.Parse()
	opts.modes = modes

	screen, err := tcell.NewScreen()
	if err != nil {
		fatal(err)
	}
	if err = screen.Init(); err != nil {
		fatal(err)
	}

	fb, closer, err := run(screen, &opts)
	screen.Fini()
	if err != nil {
		fatal(err)
	}
	defer closer.Close()
	fmt.Printf("using %s\n", fb)

	if opts.out != "" {
		if err = writeBMP(opts.out, fb); err != nil {
			fatal(err)
		}
		fmt.Printf("framebuffer written to %s\n", opts.out)
	}
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// run negotiates a mode and draws the test card. The returned closer releases the
// device, which invalidates the framebuffer.
func run(screen tcell.Screen, opts *options) (*gop.FrameBuffer, io.Closer, error) {
	con := console.New(screen)

	var (
		dev    gop.GraphicsOutput
		closer io.Closer = nopCloser{}
	)
	if opts.fbdev != "" {
		d, err := framebuffer.Open(opts.fbdev)
		if err != nil {
			return nil, nil, err
		}
		dev, closer = d, d
	} else {
		sim, err := firmware.New(&firmware.Config{
			Modes:   opts.modes,
			Padding: opts.pad,
			Format:  gop.PixelBGRReserved,
		})
		if err != nil {
			return nil, nil, err
		}
		// Mode switches blank the screen.
		sim.OnSetMode = func(*firmware.Mode) { con.Clear() }
		dev = sim
	}

	fb, err := negotiate(dev, con)
	if err == nil {
		err = testCard(fb, opts)
	}
	if err != nil {
		_ = closer.Close()
		return nil, nil, err
	}
	return fb, closer, nil
}

func negotiate(dev gop.GraphicsOutput, con *console.Console) (*gop.FrameBuffer, error) {
	if _, err := fmt.Fprintln(con, "Select a display mode"); err != nil {
		return nil, err
	}
	if _, err := gop.Negotiate(dev, dev, con, con, con); err != nil {
		return nil, err
	}
	return gop.FromActiveMode(dev)
}

// testCard draws a gradient, a border with diagonals and a masked label.
func testCard(fb *gop.FrameBuffer, opts *options) error {
	var (
		r                  = fb.Bounds()
		out display.Drawer = fb
	)
	if r.Empty() {
		return nil
	}

	gradient := image.NewRGBA(r)
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			gradient.Set(x, y, color.RGBA{
				R: uint8(x * 0xff / r.Dx()),
				G: uint8(y * 0xff / r.Dy()),
				B: 0x40,
				A: 0xff,
			})
		}
	}
	if err := out.Draw(r, gradient, image.Point{}); err != nil {
		return err
	}

	var (
		last   = r.Max.Sub(image.Pt(1, 1))
		pixels = draw.Rectangle(r, pixel.White)
	)
	pixels = append(pixels, draw.Line(r.Min, last, pixel.White)...)
	pixels = append(pixels, draw.Line(image.Pt(r.Min.X, last.Y), image.Pt(last.X, r.Min.Y), pixel.White)...)
	if err := fb.DrawPixels(pixels); err != nil {
		return err
	}

	label, bounds, err := draw.Label(opts.label, opts.size, pixel.White, opts.mask)
	if err != nil {
		return err
	}
	box := bounds.Inset(-8).Add(image.Pt((r.Dx()-bounds.Dx())/2, (r.Dy()-bounds.Dy())/2))
	if err = fb.DrawPixels(draw.Box(box, pixel.Black)); err != nil {
		return err
	}
	return gop.DrawMasked(fb, label, opts.mask, box.Min.Add(image.Pt(8, 8)))
}

func writeBMP(name string, fb *gop.FrameBuffer) error {
	f, err := os.Create(name)
	if err != nil {
		return err
	}
	if err = bmp.Encode(f, fb); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}

func fatal(err error) {
	fmt.Fprintln(os.Stderr, "fatal: "+err.Error())
	os.Exit(1)
}

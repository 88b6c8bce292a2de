package gop

import (
	"unsafe"
)

// testMode is a mode handle.
type testMode ModeInfo

func (m testMode) Info() ModeInfo { return ModeInfo(m) }

func testModes(resolutions ...Resolution) []Mode {
	modes := make([]Mode, len(resolutions))
	for i, r := range resolutions {
		modes[i] = testMode{Resolution: r, Stride: int(r.Width), Format: PixelBGRReserved}
	}
	return modes
}

// testOutput is an Output over a word slice.
type testOutput struct {
	info       ModeInfo
	words      []uint32
	generation uint64
}

func newTestOutput(width, height, stride int) *testOutput {
	return &testOutput{
		info: ModeInfo{
			Resolution: Res(width, height),
			Stride:     stride,
		},
		words: make([]uint32, stride*height),
	}
}

func (o *testOutput) CurrentMode() ModeInfo { return o.info }

func (o *testOutput) FrameBufferMemory() []byte {
	if len(o.words) == 0 {
		return nil
	}
	return unsafe.Slice((*byte)(unsafe.Pointer(&o.words[0])), len(o.words)*4)
}

func (o *testOutput) Generation() uint64 { return o.generation }

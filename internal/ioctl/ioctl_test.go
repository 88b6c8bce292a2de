//go:build linux

package ioctl

import "testing"

func TestCommandString(t *testing.T) {
	tests := []struct {
		Command Command
		Want    string
	}{
		{0x4600, "ioctl (0 bytes) 0x4600"},
		{encode(Read, 4, 0x6b01), "ioctl read (4 bytes) 0x6b01"},
		{encode(Write|Read, 160, 0x4601), "ioctl write read (160 bytes) 0x4601"},
	}
	for _, test := range tests {
		if v := test.Command.String(); v != test.Want {
			t.Errorf("expected %q, got %q", test.Want, v)
		}
	}
}

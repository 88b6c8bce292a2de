//go:build linux

// Package ioctl wraps the ioctl system call for device drivers.
package ioctl

import (
	"fmt"
	"os"
	"syscall"
	"unsafe"
)

// Mode is the IOCTL mode.
type Mode uint8

// Modes
const (
	None Mode = iota
	Write
	Read
)

// Command to be sent over ioctl.
type Command uintptr

func (c Command) String() string {
	var (
		mode = Mode(c >> 30 & 0x03)
		size = c >> 16 & 0x3fff
		cmd  = c & 0xffff
		str  string
	)
	if mode&Write > 0 {
		str += " write"
	}
	if mode&Read > 0 {
		str += " read"
	}
	return fmt.Sprintf("ioctl%s (%d bytes) 0x%04x", str, size, uintptr(cmd))
}

// Pointer does an ioctl system call with a pointer argument.
func Pointer(fd, command uintptr, arg unsafe.Pointer) error {
	if _, _, errno := syscall.Syscall(syscall.SYS_IOCTL, fd, command, uintptr(arg)); errno != 0 {
		return &os.SyscallError{
			Syscall: Command(command).String(),
			Err:     errno,
		}
	}
	return nil
}

// encode an ioctl command.
func encode(mode Mode, size uint16, cmd uintptr) Command {
	return Command(mode)<<30 | Command(size)<<16 | Command(cmd)
}

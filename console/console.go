// Package console implements the operator console on top of a tcell screen.
//
// The [Console] provides what mode negotiation needs from a firmware text console:
// a positionable cursor, text output and blocking key reads.
package console

import (
	"errors"
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/BeatGlow/gop"
)

// Errors
var (
	ErrClosed = errors.New("console: screen is closed")
	ErrCursor = errors.New("console: cursor position out of screen bounds")
)

// Console is a text console on a tcell screen.
type Console struct {
	screen  tcell.Screen
	style   tcell.Style
	column  int
	row     int
	pending *tcell.EventKey
}

// New returns a console on an initialized screen.
func New(screen tcell.Screen) *Console {
	return &Console{
		screen: screen,
		style:  tcell.StyleDefault,
	}
}

// SetStyle sets the style for subsequent output.
func (c *Console) SetStyle(style tcell.Style) {
	c.style = style
}

// Clear blanks the screen, the cursor stays where it is.
func (c *Console) Clear() {
	c.screen.Clear()
	c.screen.Show()
}

func (c *Console) CursorPosition() (column, row int) {
	return c.column, c.row
}

func (c *Console) SetCursorPosition(column, row int) error {
	w, h := c.screen.Size()
	if column < 0 || row < 0 || column >= w || row >= h {
		return fmt.Errorf("%w: (%d,%d) on %dx%d", ErrCursor, column, row, w, h)
	}
	c.column, c.row = column, row
	c.screen.ShowCursor(column, row)
	c.screen.Show()
	return nil
}

// Write prints p at the cursor. Newlines move the cursor to the start of the next
// row, output past the last column wraps.
func (c *Console) Write(p []byte) (int, error) {
	w, h := c.screen.Size()
	if w == 0 || h == 0 {
		return 0, ErrClosed
	}
	for _, r := range string(p) {
		switch r {
		case '\r':
			c.column = 0
		case '\n':
			c.column = 0
			c.row++
		default:
			if c.column >= w {
				c.column = 0
				c.row++
			}
			if c.row >= h {
				c.row = h - 1
			}
			c.screen.SetContent(c.column, c.row, r, nil, c.style)
			c.column++
		}
	}
	if c.row >= h {
		c.row = h - 1
	}
	c.screen.ShowCursor(c.column, c.row)
	c.screen.Show()
	return len(p), nil
}

// WaitForKey blocks until a key is pressed. Other events are discarded.
func (c *Console) WaitForKey() error {
	for {
		switch ev := c.screen.PollEvent().(type) {
		case nil:
			return ErrClosed
		case *tcell.EventKey:
			c.pending = ev
			return nil
		case *tcell.EventResize:
			c.screen.Sync()
		}
	}
}

// ReadKey consumes the key received by WaitForKey. Keys without a rune, and a read
// without a pending key, report false.
func (c *Console) ReadKey() (rune, bool, error) {
	ev := c.pending
	c.pending = nil
	if ev == nil || ev.Key() != tcell.KeyRune {
		return 0, false, nil
	}
	return ev.Rune(), true, nil
}

// Interface checks.
var (
	_ gop.Cursor    = (*Console)(nil)
	_ gop.KeyReader = (*Console)(nil)
)

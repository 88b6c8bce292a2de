package gop

import (
	"fmt"
	"io"
	"log"
)

// Cursor positions the console text cursor.
type Cursor interface {
	CursorPosition() (column, row int)
	SetCursorPosition(column, row int) error
}

// KeyReader reads keys from the console.
type KeyReader interface {
	// WaitForKey blocks until a key event is pending.
	WaitForKey() error

	// ReadKey consumes the pending key. It returns false for keys without a
	// printable rune.
	ReadKey() (rune, bool, error)
}

// Prompt is printed after the resolution of every offered mode.
const Prompt = ": Is this OK? (y)es/(n)o"

// Negotiate lets the operator pick a display mode.
//
// The modes are offered in order, wrapping around after the last one. Each mode is
// activated before the operator is asked about it, so they judge the actual picture.
// Activation redraws the screen; the prompt is kept in place by restoring the cursor
// position saved on entry. Answering 'y' returns with the offered mode left active,
// 'n' moves on to the next mode and any other key is ignored.
//
// There is no timeout. Errors from the firmware or the console are returned as is,
// and no attempt is made to go back to the previously active mode.
func Negotiate(src ModeSource, act ModeActivator, keys KeyReader, cur Cursor, w io.Writer) (Mode, error) {
	modes := src.Modes()
	if len(modes) == 0 {
		return nil, ErrNoModes
	}

	column, row := cur.CursorPosition()
	for i := 0; ; i = (i + 1) % len(modes) {
		mode := modes[i]
		if err := act.SetMode(mode); err != nil {
			return nil, err
		}
		if err := cur.SetCursorPosition(column, row); err != nil {
			return nil, err
		}

		resolution := mode.Info().Resolution
		if debug {
			log.Printf("gop: offering mode %d/%d: %s", i+1, len(modes), resolution)
		}
		if _, err := fmt.Fprintf(w, "%s%s\n", resolution, Prompt); err != nil {
			return nil, err
		}

		accepted, err := waitForAnswer(keys)
		if err != nil {
			return nil, err
		}
		if accepted {
			if debug {
				log.Printf("gop: accepted mode %s", resolution)
			}
			return mode, nil
		}
	}
}

// waitForAnswer blocks until the operator presses 'y' or 'n'.
func waitForAnswer(keys KeyReader) (bool, error) {
	for {
		if err := keys.WaitForKey(); err != nil {
			return false, err
		}
		key, ok, err := keys.ReadKey()
		if err != nil {
			return false, err
		}
		if !ok {
			continue
		}
		switch key {
		case 'y':
			return true, nil
		case 'n':
			return false, nil
		}
	}
}

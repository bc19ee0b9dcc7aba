package editor

import (
	"errors"
	"fmt"
	"io"
	"syscall"
)

// Key aliases
const (
	BACKSPACE  = 127 // ASCII DEL, the byte the Backspace key sends
	ARROW_LEFT = iota + 1000
	ARROW_RIGHT
	ARROW_UP
	ARROW_DOWN
	DELETE_KEY
	HOME_KEY
	END_KEY
	PAGE_UP
	PAGE_DOWN
)

// readByte reads the next byte from the key source. ok is false when no byte
// arrived before the driver timeout (VTIME expiry surfaces as io.EOF).
func (e *Editor) readByte() (byte, bool, error) {
	var buf [1]byte
	n, err := e.in.Read(buf[:])
	if n == 1 {
		return buf[0], true, nil
	}
	if err == nil || err == io.EOF || errors.Is(err, syscall.EAGAIN) {
		return 0, false, nil
	}
	return 0, false, err
}

// readKey blocks until one logical key is available, folding VT100 escape
// sequences into the symbolic key codes above. A lone escape, or any sequence
// it does not recognize, comes back as '\x1b'.
func (e *Editor) readKey() (int, error) {
	var c byte
	for {
		b, ok, err := e.readByte()
		if err != nil {
			return 0, fmt.Errorf("reading key: %w", err)
		}
		if ok {
			c = b
			break
		}
	}

	if c != '\x1b' {
		return int(c), nil
	}

	var seq [3]byte
	b, ok, err := e.readByte()
	if err != nil || !ok {
		return '\x1b', nil
	}
	seq[0] = b
	b, ok, err = e.readByte()
	if err != nil || !ok {
		return '\x1b', nil
	}
	seq[1] = b

	switch seq[0] {
	case '[':
		if seq[1] >= '0' && seq[1] <= '9' {
			b, ok, err = e.readByte()
			if err != nil || !ok {
				return '\x1b', nil
			}
			seq[2] = b
			if seq[2] == '~' {
				switch seq[1] {
				case '1':
					return HOME_KEY, nil
				case '3':
					return DELETE_KEY, nil
				case '4':
					return END_KEY, nil
				case '5':
					return PAGE_UP, nil
				case '6':
					return PAGE_DOWN, nil
				case '7':
					return HOME_KEY, nil
				case '8':
					return END_KEY, nil
				}
			}
		} else {
			switch seq[1] {
			case 'A':
				return ARROW_UP, nil
			case 'B':
				return ARROW_DOWN, nil
			case 'C':
				return ARROW_RIGHT, nil
			case 'D':
				return ARROW_LEFT, nil
			case 'H':
				return HOME_KEY, nil
			case 'F':
				return END_KEY, nil
			}
		}
	case 'O':
		switch seq[1] {
		case 'H':
			return HOME_KEY, nil
		case 'F':
			return END_KEY, nil
		}
	}
	return '\x1b', nil
}

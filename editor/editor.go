package editor

import (
	"fmt"
	"io"
	"os"
	"time"
)

// Config constants
const (
	WARM_VERSION    = "0.1.0"
	TAB_STOP        = 8
	QUIT_TIMES      = 3
	MESSAGE_TIMEOUT = 5 * time.Second
)

// Check if the byte is a control character
func isControl(c byte) bool {
	return c < 32 || c == 127
}

// Check if the byte is a digit character
func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

// Convert a character to its control key equivalent
func withControlKey(c int) int {
	return c & 0x1f
}

/*** data ***/

// Editor represents the text editor state
type Editor struct {
	cx, cy            int
	rx                int
	rowOffset         int
	colOffset         int
	screenRows        int
	screenCols        int
	row               []editorRow
	dirty             int // counts edits since the last load or save
	filename          string
	statusMessage     string
	statusMessageTime time.Time
	syntax            *editorSyntax
	quitTimes         int
	terminal          *Terminal

	in  io.Reader // key source
	out io.Writer // frame sink
}

// NewEditor creates an Editor wired to the process terminal.
func NewEditor() *Editor {
	return &Editor{
		terminal: NewTerminal(),
		in:       os.Stdin,
		out:      os.Stdout,
	}
}

// Init resets the editor state and sizes the viewport, reserving the two
// bottom rows for the status and message bars.
func (e *Editor) Init() error {
	e.cx, e.cy = 0, 0
	e.rx = 0
	e.rowOffset = 0
	e.colOffset = 0
	e.row = make([]editorRow, 0)
	e.dirty = 0
	e.filename = ""
	e.statusMessage = ""
	e.statusMessageTime = time.Time{}
	e.syntax = nil
	e.quitTimes = QUIT_TIMES

	rows, cols, err := getWindowSize()
	if err != nil {
		return fmt.Errorf("getting window size: %w", err)
	}
	e.screenRows = rows - 2
	e.screenCols = cols
	return nil
}

// SetStatusMessage sets the transient message shown in the bottom bar.
func (e *Editor) SetStatusMessage(format string, args ...any) {
	e.statusMessage = fmt.Sprintf(format, args...)
	e.statusMessageTime = time.Now()
}

/*** editor operations ***/

// InsertChar inserts c at the cursor. On the virtual row below the file an
// empty row is appended first.
func (e *Editor) InsertChar(c byte) {
	if e.cy == len(e.row) {
		e.InsertRow(len(e.row), []byte{})
	}
	e.row[e.cy].insertChar(e, e.cx, c)
	e.cx++
}

// InsertNewline splits the current row at the cursor; at column zero it
// inserts an empty row above instead.
func (e *Editor) InsertNewline() {
	if e.cx == 0 {
		e.InsertRow(e.cy, []byte{})
	} else {
		row := &e.row[e.cy]
		e.InsertRow(e.cy+1, row.chars[e.cx:])

		// Re-take the pointer, the slice may have been reallocated.
		row = &e.row[e.cy]
		row.chars = row.chars[:e.cx]
		row.update(e)
	}
	e.cy++
	e.cx = 0
}

// DeleteChar removes the byte before the cursor; at column zero it joins the
// current row onto the previous one.
func (e *Editor) DeleteChar() {
	if e.cy == len(e.row) {
		return
	}
	if e.cx == 0 && e.cy == 0 {
		return
	}

	row := &e.row[e.cy]
	if e.cx > 0 {
		row.deleteChar(e, e.cx-1)
		e.cx--
	} else {
		e.cx = len(e.row[e.cy-1].chars)
		e.row[e.cy-1].appendBytes(e, row.chars)
		e.DeleteRow(e.cy)
		e.cy--
	}
}

/*** input ***/

// MoveCursor applies one arrow key, wrapping across row boundaries and
// clamping the column to the destination row.
func (e *Editor) MoveCursor(key int) {
	var row *editorRow
	if e.cy < len(e.row) {
		row = &e.row[e.cy]
	}

	switch key {
	case ARROW_LEFT:
		if e.cx != 0 {
			e.cx--
		} else if e.cy > 0 {
			e.cy--
			e.cx = len(e.row[e.cy].chars)
		}
	case ARROW_RIGHT:
		if row != nil && e.cx < len(row.chars) {
			e.cx++
		} else if row != nil && e.cx == len(row.chars) {
			e.cy++
			e.cx = 0
		}
	case ARROW_UP:
		if e.cy != 0 {
			e.cy--
		}
	case ARROW_DOWN:
		if e.cy < len(e.row) {
			e.cy++
		}
	}

	rowlen := 0
	if e.cy < len(e.row) {
		rowlen = len(e.row[e.cy].chars)
	}
	if e.cx > rowlen {
		e.cx = rowlen
	}
}

// ProcessKeypress reads one logical key and dispatches it. It returns false
// when the editor should exit.
func (e *Editor) ProcessKeypress() bool {
	key, err := e.readKey()
	if err != nil {
		e.Die("%v", err)
	}

	switch key {
	case '\r':
		e.InsertNewline()

	case withControlKey('q'):
		if e.dirty > 0 && e.quitTimes > 0 {
			e.SetStatusMessage("WARNING! File has unsaved changes. "+
				"Press Ctrl-Q %d more times to quit.", e.quitTimes)
			e.quitTimes--
			return true
		}
		return false

	case withControlKey('s'):
		e.Save()

	case HOME_KEY:
		e.cx = 0

	case END_KEY:
		if e.cy < len(e.row) {
			e.cx = len(e.row[e.cy].chars)
		}

	case withControlKey('f'):
		e.Find()

	case BACKSPACE, withControlKey('h'), DELETE_KEY:
		if key == DELETE_KEY {
			e.MoveCursor(ARROW_RIGHT)
		}
		e.DeleteChar()

	case PAGE_UP:
		e.cy = e.rowOffset
		for range e.screenRows {
			e.MoveCursor(ARROW_UP)
		}

	case PAGE_DOWN:
		e.cy = min(e.rowOffset+e.screenRows-1, len(e.row))
		for range e.screenRows {
			e.MoveCursor(ARROW_DOWN)
		}

	case ARROW_LEFT, ARROW_RIGHT, ARROW_UP, ARROW_DOWN:
		e.MoveCursor(key)

	case withControlKey('l'), '\x1b':
		// the screen redraws every cycle anyway

	default:
		e.InsertChar(byte(key))
	}

	e.quitTimes = QUIT_TIMES
	return true
}

package editor

import (
	"fmt"
	"time"
)

/*** append buffer ***/

// appendBuffer batches one frame of output so it reaches the terminal in a
// single write.
type appendBuffer struct {
	b []byte
}

func (ab *appendBuffer) append(s []byte) {
	ab.b = append(ab.b, s...)
}

func (ab *appendBuffer) appendString(s string) {
	ab.b = append(ab.b, s...)
}

func (ab *appendBuffer) free() {
	ab.b = nil
}

/*** output ***/

// Scroll recomputes rx and clamps the offsets so the cursor stays on screen.
func (e *Editor) Scroll() {
	e.rx = 0
	if e.cy < len(e.row) {
		e.rx = e.row[e.cy].cxToRx(e.cx)
	}

	if e.cy < e.rowOffset {
		e.rowOffset = e.cy
	}
	if e.cy >= e.rowOffset+e.screenRows {
		e.rowOffset = e.cy - e.screenRows + 1
	}

	if e.rx < e.colOffset {
		e.colOffset = e.rx
	}
	if e.rx >= e.colOffset+e.screenCols {
		e.colOffset = e.rx - e.screenCols + 1
	}
}

// DrawRows emits the visible text rows, tildes past the end of the file and
// the welcome banner on an empty buffer.
func (e *Editor) DrawRows(abuf *appendBuffer) {
	for y := range e.screenRows {
		filerow := y + e.rowOffset
		if filerow >= len(e.row) {
			if len(e.row) == 0 && y == e.screenRows/3 {
				welcome := "Warm Editor -- version " + WARM_VERSION
				welcomelen := min(len(welcome), e.screenCols)
				padding := (e.screenCols - welcomelen) / 2
				if padding > 0 {
					abuf.appendString("~")
					padding--
				}
				for range padding {
					abuf.appendString(" ")
				}
				abuf.appendString(welcome[:welcomelen])
			} else {
				abuf.appendString("~")
			}
		} else {
			row := &e.row[filerow]
			lineLen := min(max(len(row.render)-e.colOffset, 0), e.screenCols)
			start := e.colOffset
			currentColor := -1
			for j := range lineLen {
				c := row.render[start+j]
				h := row.hl[start+j]
				if h == HL_NORMAL {
					if currentColor != -1 {
						abuf.append(fmt.Appendf(nil, COLOR_FORMAT, ANSI_COLOR_DEFAULT))
						currentColor = -1
					}
					abuf.append([]byte{c})
				} else {
					color := syntaxToColor(h)
					if color != currentColor {
						currentColor = color
						abuf.append(fmt.Appendf(nil, COLOR_FORMAT, color))
					}
					abuf.append([]byte{c})
				}
			}
			abuf.append(fmt.Appendf(nil, COLOR_FORMAT, ANSI_COLOR_DEFAULT))
		}

		abuf.appendString(CLEAR_LINE)
		abuf.appendString("\r\n")
	}
}

// DrawStatusBar renders the inverse-video bar: filename, line count and
// dirty marker on the left, filetype and cursor line on the right.
func (e *Editor) DrawStatusBar(abuf *appendBuffer) {
	abuf.appendString(COLORS_INVERT)

	filename := e.filename
	if filename == "" {
		filename = "[No Name]"
	}
	dirtyFlag := ""
	if e.dirty > 0 {
		dirtyFlag = "(modified)"
	}
	status := fmt.Sprintf("%.20s - %d lines %s", filename, len(e.row), dirtyFlag)
	statusLen := min(len(status), e.screenCols)

	filetype := "no file type"
	if e.syntax != nil {
		filetype = e.syntax.filetype
	}
	rstatus := fmt.Sprintf("%s | %d/%d", filetype, e.cy+1, len(e.row))

	abuf.appendString(status[:statusLen])
	for statusLen < e.screenCols {
		if e.screenCols-statusLen == len(rstatus) {
			abuf.appendString(rstatus)
			break
		}
		abuf.appendString(" ")
		statusLen++
	}

	abuf.appendString(COLORS_RESET)
	abuf.appendString("\r\n")
}

// DrawMessageBar renders the transient status message while it is fresh.
func (e *Editor) DrawMessageBar(abuf *appendBuffer) {
	abuf.appendString(CLEAR_LINE)
	messageLen := min(len(e.statusMessage), e.screenCols)
	if messageLen > 0 && time.Since(e.statusMessageTime) < MESSAGE_TIMEOUT {
		abuf.appendString(e.statusMessage[:messageLen])
	}
}

// RefreshScreen composes one frame into the append buffer and flushes it to
// the frame sink in a single write.
func (e *Editor) RefreshScreen() {
	e.Scroll()

	var abuf appendBuffer

	abuf.appendString(CURSOR_HIDE)
	abuf.appendString(CURSOR_HOME)

	e.DrawRows(&abuf)
	e.DrawStatusBar(&abuf)
	e.DrawMessageBar(&abuf)

	abuf.append(fmt.Appendf(nil, CURSOR_POSITION_FORMAT,
		e.cy-e.rowOffset+1, e.rx-e.colOffset+1))
	abuf.appendString(CURSOR_SHOW)

	e.out.Write(abuf.b)
	abuf.free()
}

package editor

import (
	"bytes"
	"slices"
)

// finder carries the incremental-search state across prompt callbacks: the
// row of the previous hit, the search direction, and the highlight span the
// previous hit overwrote.
type finder struct {
	e         *Editor
	lastMatch int
	direction int
	savedLine int
	savedHl   []byte
}

func newFinder(e *Editor) *finder {
	return &finder{e: e, lastMatch: -1, direction: 1}
}

func (f *finder) callback(query []byte, key int) {
	e := f.e

	if f.savedHl != nil {
		copy(e.row[f.savedLine].hl, f.savedHl)
		f.savedHl = nil
	}

	switch key {
	case '\r', '\x1b':
		f.lastMatch = -1
		f.direction = 1
		return
	case ARROW_RIGHT, ARROW_DOWN:
		f.direction = 1
	case ARROW_LEFT, ARROW_UP:
		f.direction = -1
	default:
		f.lastMatch = -1
		f.direction = 1
	}

	if f.lastMatch == -1 {
		f.direction = 1
	}
	current := f.lastMatch

	for range e.row {
		current += f.direction
		if current == -1 {
			current = len(e.row) - 1
		} else if current == len(e.row) {
			current = 0
		}

		row := &e.row[current]
		match := bytes.Index(row.render, query)
		if match == -1 {
			continue
		}

		f.lastMatch = current
		e.cy = current
		e.cx = row.rxToCx(match)
		// Past the last row on purpose; Scroll clamps it so the match lands
		// at the top of the screen.
		e.rowOffset = len(e.row)

		f.savedLine = current
		f.savedHl = slices.Clone(row.hl)
		for k := match; k < match+len(query) && k < len(row.hl); k++ {
			row.hl[k] = HL_MATCH
		}
		break
	}
}

// Find drives an incremental search from the prompt. Arrow keys step between
// hits; ESC restores the cursor and viewport from before the search.
func (e *Editor) Find() {
	savedCx := e.cx
	savedCy := e.cy
	savedColOffset := e.colOffset
	savedRowOffset := e.rowOffset

	f := newFinder(e)
	_, ok := e.Prompt("Search: %s (Use ESC/Arrows/Enter)", f.callback)

	if !ok {
		e.cx = savedCx
		e.cy = savedCy
		e.colOffset = savedColOffset
		e.rowOffset = savedRowOffset
	}
}

package editor

import "slices"

// editorRow is one logical line of the file. chars is the authoritative
// content; render is the display form with tabs expanded; hl carries one
// highlight tag per byte of render.
type editorRow struct {
	chars  []byte
	render []byte
	hl     []byte
}

/*** row operations ***/

// cxToRx converts an index into chars to the on-screen column. A tab at
// column rx widens to the next multiple of TAB_STOP.
func (row *editorRow) cxToRx(cx int) int {
	rx := 0
	for j := range cx {
		if row.chars[j] == '\t' {
			rx += TAB_STOP - (rx % TAB_STOP)
		} else {
			rx++
		}
	}
	return rx
}

// rxToCx returns the first index into chars whose running display column
// strictly exceeds rx, or len(chars) when none does.
func (row *editorRow) rxToCx(rx int) int {
	curRx := 0
	var cx int
	for cx = 0; cx < len(row.chars); cx++ {
		if row.chars[cx] == '\t' {
			curRx += (TAB_STOP - 1) - (curRx % TAB_STOP)
		}
		curRx++

		if curRx > rx {
			return cx
		}
	}
	return cx
}

// update recomputes render from chars and reclassifies the row.
func (row *editorRow) update(e *Editor) {
	tabs := 0
	for _, c := range row.chars {
		if c == '\t' {
			tabs++
		}
	}

	render := make([]byte, 0, len(row.chars)+tabs*(TAB_STOP-1))
	for _, c := range row.chars {
		if c == '\t' {
			render = append(render, ' ')
			for len(render)%TAB_STOP != 0 {
				render = append(render, ' ')
			}
		} else {
			render = append(render, c)
		}
	}
	row.render = render

	row.updateSyntax(e)
}

// InsertRow inserts a copy of s as a new row at index at.
func (e *Editor) InsertRow(at int, s []byte) {
	if at < 0 || at > len(e.row) {
		return
	}

	e.row = slices.Insert(e.row, at, editorRow{chars: slices.Clone(s)})
	e.row[at].update(e)
	e.dirty++
}

// DeleteRow removes the row at index at.
func (e *Editor) DeleteRow(at int) {
	if at < 0 || at >= len(e.row) {
		return
	}

	e.row = slices.Delete(e.row, at, at+1)
	e.dirty++
}

func (row *editorRow) insertChar(e *Editor, at int, c byte) {
	if at < 0 || at > len(row.chars) {
		at = len(row.chars)
	}

	row.chars = slices.Insert(row.chars, at, c)
	row.update(e)
	e.dirty++
}

func (row *editorRow) appendBytes(e *Editor, s []byte) {
	row.chars = append(row.chars, s...)
	row.update(e)
	e.dirty++
}

func (row *editorRow) deleteChar(e *Editor, at int) {
	if at < 0 || at >= len(row.chars) {
		return
	}

	row.chars = slices.Delete(row.chars, at, at+1)
	row.update(e)
	e.dirty++
}

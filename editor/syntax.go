package editor

import (
	"bytes"
	"strings"
)

// Highlight classes, one tag per byte of a row's render
const (
	HL_NORMAL byte = iota
	HL_COMMENT
	HL_KEYWORD1
	HL_KEYWORD2
	HL_STRING
	HL_NUMBER
	HL_MATCH
)

// Syntax highlighting flags
const (
	HL_HIGHLIGHT_NUMBERS = 1 << 0
	HL_HIGHLIGHT_STRINGS = 1 << 1
)

type editorSyntax struct {
	filetype               string
	filematch              []string
	keywords               []string
	singlelineCommentStart string
	flags                  int
}

/*** filetypes ***/

// A filematch pattern starting with '.' matches the filename extension;
// any other pattern matches as a substring of the filename. A keyword with
// a trailing '|' belongs to the secondary class.
var HLDB_ENTRIES = []editorSyntax{
	{
		filetype:  "c",
		filematch: []string{".c", ".h", ".cpp"},
		keywords: []string{
			"switch", "if", "while", "for", "break", "continue", "return", "else",
			"struct", "union", "typedef", "static", "enum", "class", "case",
			"int|", "long|", "double|", "float|", "char|", "unsigned|", "signed|",
			"void|"},
		singlelineCommentStart: "//",
		flags:                  HL_HIGHLIGHT_NUMBERS | HL_HIGHLIGHT_STRINGS,
	},
	{
		filetype:  "go",
		filematch: []string{".go"},
		keywords: []string{
			"break", "case", "chan", "const", "continue", "default", "defer",
			"else", "fallthrough", "for", "func", "go", "goto", "if", "import",
			"interface", "map", "package", "range", "return", "select", "struct",
			"switch", "type", "var",
			"bool|", "byte|", "error|", "float64|", "int|", "rune|", "string|",
			"uint|"},
		singlelineCommentStart: "//",
		flags:                  HL_HIGHLIGHT_NUMBERS | HL_HIGHLIGHT_STRINGS,
	},
}

/*** syntax highlighting ***/

// Check if the byte is a separator (whitespace, null, or punctuation)
func isSeparator(c byte) bool {
	if c == ' ' || c == '\t' || c == '\n' || c == '\r' || c == '\v' || c == '\f' || c == 0 {
		return true
	}
	return strings.IndexByte(",.()+-/*=~%<>[];", c) != -1
}

// updateSyntax reclassifies every byte of row.render for the active filetype.
func (row *editorRow) updateSyntax(e *Editor) {
	row.hl = make([]byte, len(row.render))

	if e.syntax == nil {
		return
	}

	keywords := e.syntax.keywords
	scs := []byte(e.syntax.singlelineCommentStart)

	prevSep := true
	var inString byte = 0

	i := 0
	for i < len(row.render) {
		c := row.render[i]
		prevHl := HL_NORMAL
		if i > 0 {
			prevHl = row.hl[i-1]
		}

		if len(scs) > 0 && inString == 0 {
			if bytes.HasPrefix(row.render[i:], scs) {
				for j := i; j < len(row.render); j++ {
					row.hl[j] = HL_COMMENT
				}
				break
			}
		}

		if e.syntax.flags&HL_HIGHLIGHT_STRINGS != 0 {
			if inString != 0 {
				row.hl[i] = HL_STRING
				if c == '\\' {
					// A backslash on the last byte addresses the byte past
					// the row end; skip it without touching anything.
					if i+1 < len(row.render) {
						row.hl[i+1] = HL_STRING
					}
					i += 2
					continue
				}
				if c == inString {
					inString = 0
				}
				i++
				prevSep = true
				continue
			} else if c == '"' || c == '\'' {
				inString = c
				row.hl[i] = HL_STRING
				i++
				continue
			}
		}

		if e.syntax.flags&HL_HIGHLIGHT_NUMBERS != 0 {
			if (isDigit(c) && (prevSep || prevHl == HL_NUMBER)) ||
				(c == '.' && prevHl == HL_NUMBER) {
				row.hl[i] = HL_NUMBER
				i++
				prevSep = false
				continue
			}
		}

		if prevSep {
			matched := false
			for _, keyword := range keywords {
				klen := len(keyword)
				kw2 := keyword[klen-1] == '|'
				if kw2 {
					klen--
				}

				// The byte after the keyword must be a separator; one past
				// the end of the row counts as one.
				if i+klen <= len(row.render) &&
					bytes.Equal(row.render[i:i+klen], []byte(keyword[:klen])) &&
					(i+klen == len(row.render) || isSeparator(row.render[i+klen])) {
					class := HL_KEYWORD1
					if kw2 {
						class = HL_KEYWORD2
					}
					for k := range klen {
						row.hl[i+k] = class
					}
					i += klen
					matched = true
					break
				}
			}
			if matched {
				prevSep = false
				continue
			}
		}

		prevSep = isSeparator(c)
		i++
	}
}

func syntaxToColor(hl byte) int {
	switch hl {
	case HL_COMMENT:
		return ANSI_COLOR_CYAN
	case HL_KEYWORD1:
		return ANSI_COLOR_YELLOW
	case HL_KEYWORD2:
		return ANSI_COLOR_GREEN
	case HL_STRING:
		return ANSI_COLOR_MAGENTA
	case HL_NUMBER:
		return ANSI_COLOR_RED
	case HL_MATCH:
		return ANSI_COLOR_BLUE
	default:
		return ANSI_COLOR_WHITE
	}
}

// SelectSyntaxHighlight picks the filetype for the current filename and, when
// one matches, reclassifies every row. No filename, or no match, clears the
// active filetype; rows keep their current hl until they are next updated.
func (e *Editor) SelectSyntaxHighlight() {
	e.syntax = nil
	if e.filename == "" {
		return
	}

	// The extension starts at the first '.' in the filename.
	var ext string
	if dot := strings.Index(e.filename, "."); dot != -1 {
		ext = e.filename[dot:]
	}

	for j := range HLDB_ENTRIES {
		s := &HLDB_ENTRIES[j]
		for _, pattern := range s.filematch {
			isExt := pattern[0] == '.'
			if (isExt && ext != "" && ext == pattern) ||
				(!isExt && strings.Contains(e.filename, pattern)) {
				e.syntax = s

				for i := range e.row {
					e.row[i].updateSyntax(e)
				}
				return
			}
		}
	}
}

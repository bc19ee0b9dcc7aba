package editor

import (
	"bytes"
	"strings"
	"testing"
)

func goEditor() *Editor {
	e := newTestEditor(22, 80)
	e.filename = "main.go"
	e.SelectSyntaxHighlight()
	return e
}

func highlightRow(e *Editor, line string) *editorRow {
	row := &editorRow{chars: []byte(line)}
	row.update(e)
	return row
}

func TestHighlightDisabledWithoutSyntax(t *testing.T) {
	e := newTestEditor(22, 80)
	row := highlightRow(e, `x := "1" // c`)

	for i, h := range row.hl {
		if h != HL_NORMAL {
			t.Errorf("byte %d: expected HL_NORMAL, got %d", i, h)
		}
	}
}

func TestHighlightSingleLineComment(t *testing.T) {
	e := goEditor()
	row := highlightRow(e, "x = 1 // trailing 42")

	start := bytes.Index(row.render, []byte("//"))
	for i := start; i < len(row.render); i++ {
		if row.hl[i] != HL_COMMENT {
			t.Errorf("byte %d: expected HL_COMMENT, got %d", i, row.hl[i])
		}
	}
	if row.hl[0] != HL_NORMAL {
		t.Errorf("expected HL_NORMAL before comment, got %d", row.hl[0])
	}
}

func TestHighlightString(t *testing.T) {
	e := goEditor()
	row := highlightRow(e, `x = "ab" y`)

	for i := 4; i <= 7; i++ {
		if row.hl[i] != HL_STRING {
			t.Errorf("byte %d: expected HL_STRING, got %d", i, row.hl[i])
		}
	}
	if row.hl[9] != HL_NORMAL {
		t.Errorf("expected HL_NORMAL after close quote, got %d", row.hl[9])
	}
}

func TestHighlightStringEscapedQuote(t *testing.T) {
	e := goEditor()
	row := highlightRow(e, `"a\"b" x`)

	// The escaped quote does not close the string; byte 5 does.
	for i := 0; i <= 5; i++ {
		if row.hl[i] != HL_STRING {
			t.Errorf("byte %d: expected HL_STRING, got %d", i, row.hl[i])
		}
	}
	if row.hl[7] != HL_NORMAL {
		t.Errorf("expected HL_NORMAL outside string, got %d", row.hl[7])
	}
}

func TestHighlightBackslashAtRowEnd(t *testing.T) {
	e := goEditor()
	row := highlightRow(e, `"ab\`)

	if len(row.hl) != len(row.render) {
		t.Fatalf("|hl| %d != |render| %d", len(row.hl), len(row.render))
	}
	for i, h := range row.hl {
		if h != HL_STRING {
			t.Errorf("byte %d: expected HL_STRING, got %d", i, h)
		}
	}
}

func TestHighlightNumbers(t *testing.T) {
	e := goEditor()

	row := highlightRow(e, "x = 123")
	for i := 4; i <= 6; i++ {
		if row.hl[i] != HL_NUMBER {
			t.Errorf("byte %d: expected HL_NUMBER, got %d", i, row.hl[i])
		}
	}

	row = highlightRow(e, "12.5")
	for i := range row.hl {
		if row.hl[i] != HL_NUMBER {
			t.Errorf("byte %d of 12.5: expected HL_NUMBER, got %d", i, row.hl[i])
		}
	}

	// Digits inside an identifier are not numbers.
	row = highlightRow(e, "a1")
	if row.hl[1] != HL_NORMAL {
		t.Errorf("expected HL_NORMAL for digit in identifier, got %d", row.hl[1])
	}
}

func TestHighlightKeywords(t *testing.T) {
	e := goEditor()

	row := highlightRow(e, "func main")
	for i := 0; i <= 3; i++ {
		if row.hl[i] != HL_KEYWORD1 {
			t.Errorf("byte %d: expected HL_KEYWORD1, got %d", i, row.hl[i])
		}
	}
	if row.hl[5] != HL_NORMAL {
		t.Errorf("expected HL_NORMAL after keyword, got %d", row.hl[5])
	}

	// Secondary keywords carry a trailing '|' in the table.
	row = highlightRow(e, "var x int")
	for i := 6; i <= 8; i++ {
		if row.hl[i] != HL_KEYWORD2 {
			t.Errorf("byte %d: expected HL_KEYWORD2, got %d", i, row.hl[i])
		}
	}

	// A keyword ending the row is terminated by the virtual separator.
	row = highlightRow(e, "return")
	for i := range row.hl {
		if row.hl[i] != HL_KEYWORD1 {
			t.Errorf("byte %d: expected HL_KEYWORD1, got %d", i, row.hl[i])
		}
	}
}

func TestHighlightKeywordNeedsSeparators(t *testing.T) {
	e := goEditor()

	row := highlightRow(e, "returned")
	for i := range row.hl {
		if row.hl[i] != HL_NORMAL {
			t.Errorf("byte %d of %q: expected HL_NORMAL, got %d", i, "returned", row.hl[i])
		}
	}

	row = highlightRow(e, "xreturn")
	for i := range row.hl {
		if row.hl[i] != HL_NORMAL {
			t.Errorf("byte %d of %q: expected HL_NORMAL, got %d", i, "xreturn", row.hl[i])
		}
	}
}

func TestHighlightCommentNotInsideString(t *testing.T) {
	e := goEditor()
	row := highlightRow(e, `"a//b"`)

	for i := range row.hl {
		if row.hl[i] != HL_STRING {
			t.Errorf("byte %d: expected HL_STRING, got %d", i, row.hl[i])
		}
	}
}

func TestSelectSyntaxByExtension(t *testing.T) {
	tests := []struct {
		filename string
		filetype string
	}{
		{"main.go", "go"},
		{"foo.c", "c"},
		{"foo.h", "c"},
		{"foo.cpp", "c"},
		{"README", ""},
		{"", ""},
		// The extension starts at the first dot, so a double-extension
		// filename matches nothing.
		{"a.b.go", ""},
	}

	for _, tt := range tests {
		e := newTestEditor(22, 80)
		e.filename = tt.filename
		e.SelectSyntaxHighlight()

		got := ""
		if e.syntax != nil {
			got = e.syntax.filetype
		}
		if got != tt.filetype {
			t.Errorf("%q: expected filetype %q, got %q", tt.filename, tt.filetype, got)
		}
	}
}

func TestSelectSyntaxBySubstring(t *testing.T) {
	HLDB_ENTRIES = append(HLDB_ENTRIES, editorSyntax{
		filetype:  "make",
		filematch: []string{"Makefile"},
	})
	defer func() {
		HLDB_ENTRIES = HLDB_ENTRIES[:len(HLDB_ENTRIES)-1]
	}()

	e := newTestEditor(22, 80)
	e.filename = "GNUMakefile"
	e.SelectSyntaxHighlight()

	if e.syntax == nil || e.syntax.filetype != "make" {
		t.Errorf("expected substring pattern to match %q", e.filename)
	}
}

func TestSelectSyntaxRehighlightsAllRows(t *testing.T) {
	e := newTestEditor(22, 80)
	e.InsertRow(0, []byte("x = 42"))
	e.InsertRow(1, []byte("// note"))

	if e.row[0].hl[4] != HL_NORMAL {
		t.Fatal("expected no highlighting before a filetype is chosen")
	}

	e.filename = "prog.c"
	e.SelectSyntaxHighlight()

	if e.row[0].hl[4] != HL_NUMBER {
		t.Errorf("expected HL_NUMBER after selection, got %d", e.row[0].hl[4])
	}
	if e.row[1].hl[0] != HL_COMMENT {
		t.Errorf("expected HL_COMMENT after selection, got %d", e.row[1].hl[0])
	}

	e.filename = ""
	e.SelectSyntaxHighlight()
	if e.syntax != nil {
		t.Error("expected highlighting disabled without a filename")
	}
}

func TestSeparators(t *testing.T) {
	for _, c := range []byte(",.()+-/*=~%<>[]; \t") {
		if !isSeparator(c) {
			t.Errorf("expected %q to be a separator", c)
		}
	}
	for _, c := range []byte("abc_019{}") {
		if isSeparator(c) {
			t.Errorf("expected %q not to be a separator", c)
		}
	}
}

func TestSyntaxToColorMapping(t *testing.T) {
	tests := []struct {
		hl    byte
		color int
	}{
		{HL_COMMENT, 36},
		{HL_KEYWORD1, 33},
		{HL_KEYWORD2, 32},
		{HL_STRING, 35},
		{HL_NUMBER, 31},
		{HL_MATCH, 34},
		{HL_NORMAL, 37},
	}
	for _, tt := range tests {
		if got := syntaxToColor(tt.hl); got != tt.color {
			t.Errorf("tag %d: expected color %d, got %d", tt.hl, tt.color, got)
		}
	}
}

func TestHighlightUsesRenderedForm(t *testing.T) {
	e := goEditor()
	// The tab expands to spaces before classification, so the digit after it
	// follows a separator.
	row := highlightRow(e, "\t7")

	if !strings.HasSuffix(string(row.render), "7") {
		t.Fatalf("unexpected render %q", row.render)
	}
	if row.hl[len(row.hl)-1] != HL_NUMBER {
		t.Errorf("expected HL_NUMBER after tab, got %d", row.hl[len(row.hl)-1])
	}
}

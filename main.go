package main

import (
	"fmt"
	"os"

	"github.com/mattn/go-isatty"

	"github.com/warmedit/warm/editor"
)

func main() {
	if !isatty.IsTerminal(os.Stdin.Fd()) {
		fmt.Fprintln(os.Stderr, "warm: stdin is not a terminal")
		os.Exit(1)
	}

	e := editor.NewEditor()
	if err := e.EnableRawMode(); err != nil {
		fmt.Fprintf(os.Stderr, "enabling raw mode: %v\n", err)
		os.Exit(1)
	}
	defer e.RestoreTerminal()

	if err := e.Init(); err != nil {
		e.Die("%v", err)
	}

	if len(os.Args) >= 2 {
		if err := e.Open(os.Args[1]); err != nil {
			e.Die("%v", err)
		}
	}

	e.SetStatusMessage("HELP: Ctrl-S = save | Ctrl-Q = quit | Ctrl-F = find")

	for {
		e.RefreshScreen()
		if !e.ProcessKeypress() {
			break
		}
	}

	e.RestoreTerminal()
	os.Stdout.WriteString(editor.CLEAR_SCREEN)
	os.Stdout.WriteString(editor.CURSOR_HOME)
}

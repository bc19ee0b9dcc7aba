package editor

import (
	"errors"
	"fmt"
	"os"

	"golang.org/x/sys/unix"
	"golang.org/x/term"
)

// Terminal holds the attributes to replay when the editor lets go of the tty.
type Terminal struct {
	originalState *term.State
}

// NewTerminal creates a new Terminal instance
func NewTerminal() *Terminal {
	return &Terminal{}
}

// Die restores the terminal, prints one error line to stderr and exits.
func (e *Editor) Die(format string, args ...any) {
	e.RestoreTerminal()
	os.Stdout.Write([]byte(CLEAR_SCREEN))
	os.Stdout.Write([]byte(CURSOR_HOME))
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}

// EnableRawMode puts the tty into raw mode. The original attributes are
// captured first so RestoreTerminal can replay them on any exit path.
func (e *Editor) EnableRawMode() error {
	fd := int(os.Stdin.Fd())

	state, err := term.GetState(fd)
	if err != nil {
		return fmt.Errorf("tcgetattr: %w", err)
	}
	e.terminal.originalState = state

	raw, err := unix.IoctlGetTermios(fd, unix.TCGETS)
	if err != nil {
		return fmt.Errorf("tcgetattr: %w", err)
	}
	// ICRNL: CR-to-NL translation
	// IXON: software flow control
	// BRKINT: break condition raises SIGINT
	// ISTRIP: strip eighth bit
	// INPCK: parity checking
	raw.Iflag &^= unix.ICRNL | unix.IXON | unix.BRKINT | unix.ISTRIP | unix.INPCK
	// OPOST: output processing (NL to CRNL)
	raw.Oflag &^= unix.OPOST
	// ECHO: input echo
	// ICANON: canonical (line-buffered) mode
	// ISIG: SIGINT/SIGTSTP on Ctrl-C/Ctrl-Z
	// IEXTEN: extended input processing
	raw.Lflag &^= unix.ECHO | unix.ICANON | unix.ISIG | unix.IEXTEN
	raw.Cc[unix.VMIN] = 0
	raw.Cc[unix.VTIME] = 1

	// TCSETSF applies atomically and flushes pending input (TCSAFLUSH).
	if err := unix.IoctlSetTermios(fd, unix.TCSETSF, raw); err != nil {
		return fmt.Errorf("tcsetattr: %w", err)
	}
	return nil
}

// RestoreTerminal replays the attributes captured by EnableRawMode.
// Safe to call more than once; later calls are no-ops.
func (e *Editor) RestoreTerminal() {
	if e.terminal != nil && e.terminal.originalState != nil {
		term.Restore(int(os.Stdin.Fd()), e.terminal.originalState)
		e.terminal.originalState = nil
	}
}

// getWindowSize queries the window size in character cells via the winsize
// ioctl on stderr.
func getWindowSize() (int, int, error) {
	ws, err := unix.IoctlGetWinsize(int(os.Stderr.Fd()), unix.TIOCGWINSZ)
	if err != nil {
		return 0, 0, err
	}
	if ws.Col == 0 {
		return 0, 0, errors.New("zero-size window")
	}
	return int(ws.Row), int(ws.Col), nil
}

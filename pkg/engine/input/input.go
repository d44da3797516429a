// Package input reads single key presses from the terminal and maps them to
// generator front-end actions.
package input

import (
	"fmt"
	"os"
	"strings"

	"golang.org/x/term"
)

// maxKeyBytes is enough for the longest escape sequence we decode
const maxKeyBytes = 8

// ReadKey puts the terminal into raw mode, waits for one key press and
// returns its code (see DecodeKey).
func ReadKey() (string, error) {
	fd := int(os.Stdin.Fd())

	oldState, err := term.MakeRaw(fd)
	if err != nil {
		return "", fmt.Errorf("cannot set terminal to raw mode: %w", err)
	}
	defer term.Restore(fd, oldState)

	// An escape sequence arrives in a single read, a lone Esc as one byte
	buf := make([]byte, maxKeyBytes)
	n, err := os.Stdin.Read(buf)
	if err != nil {
		return "", fmt.Errorf("cannot read stdin: %w", err)
	}

	return DecodeKey(buf[:n]), nil
}

// IsTerminal returns true if stdin is attached to a terminal
func IsTerminal() bool {
	return term.IsTerminal(int(os.Stdin.Fd()))
}

// DecodeKey turns the raw bytes of one key press into a key code:
// "escape", "enter", "space", "ctrl_c", "arrow_up" etc., or the lower-cased
// character for printable keys. Unknown sequences decode to "".
func DecodeKey(b []byte) string {
	if len(b) == 0 {
		return ""
	}

	switch b[0] {
	case 3:
		return "ctrl_c"
	case '\r', '\n':
		return "enter"
	case ' ':
		return "space"
	case 0x1b:
		if len(b) == 1 {
			return "escape"
		}
		return decodeEscapeSequence(b[1:])
	}

	if b[0] >= 33 && b[0] < 127 {
		return strings.ToLower(string(b[0]))
	}
	return ""
}

// decodeEscapeSequence handles CSI (ESC [) and SS3 (ESC O) arrow keys
func decodeEscapeSequence(rest []byte) string {
	if len(rest) < 2 || (rest[0] != '[' && rest[0] != 'O') {
		return ""
	}

	switch rest[1] {
	case 'A':
		return "arrow_up"
	case 'B':
		return "arrow_down"
	case 'C':
		return "arrow_right"
	case 'D':
		return "arrow_left"
	}
	return ""
}

package utils

import (
	"os"

	"golang.org/x/term"
)

// ANSI escape sequences used by the CLI output. They are cleared when
// stderr is not a terminal so piped output stays plain text.
var (
	SuccessColor = "\x1b[92m"
	DefaultColor = "\x1b[39m"
)

func init() {
	if !term.IsTerminal(int(os.Stderr.Fd())) {
		SuccessColor = ""
		DefaultColor = ""
	}
}

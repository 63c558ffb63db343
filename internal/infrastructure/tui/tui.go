package tui

import (
	"fmt"
	"io"
	"os"

	"golang.org/x/term"
)

// IsTerminal reports whether w is an interactive terminal
func IsTerminal(w any) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}

// ReadContent reads all of in. The prompt is written to out only when in is a terminal.
func ReadContent(in io.Reader, out io.Writer, prompt string) (string, error) {
	if IsTerminal(in) {
		fmt.Fprintln(out, prompt)
	}
	data, err := io.ReadAll(in)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

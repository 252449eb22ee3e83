package logger

import "golang.org/x/term"

// isTerminal reports whether fd is attached to a terminal; color is only
// enabled for terminals.
func isTerminal(fd uintptr) bool {
	return term.IsTerminal(int(fd))
}

// Package cliutil holds small helpers shared by the commands under cmd/.
package cliutil

import "golang.org/x/term"

// IsTty reports whether fd refers to a terminal. Commands use it to
// decide if stdin can be treated as piped input.
func IsTty(fd uintptr) bool {
	return term.IsTerminal(int(fd))
}

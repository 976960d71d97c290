// Package termfix adjusts terminal environment variables before lipgloss
// detects the color profile. Import it FIRST in main:
//
//	_ "github.com/wahlandcase/autocommit/internal/termfix"
package termfix

import "os"

func init() {
	Apply(os.Getenv, os.Setenv)
}

// Apply rewrites the environment through the given accessors.
// Warp stalls on termenv's terminal queries, so it is reported as a dumb
// terminal that still supports truecolor.
func Apply(getenv func(string) string, setenv func(string, string) error) {
	if getenv("TERM_PROGRAM") != "WarpTerminal" {
		return
	}
	_ = setenv("TERM", "dumb")
	_ = setenv("COLORTERM", "truecolor")
}

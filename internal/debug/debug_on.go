//go:build debug

// Package debug prints developer traces when built with -tags debug.
// Callers guard every call with `if debug.Enabled` so the default build
// carries no formatting cost.
package debug

import (
	"log"
	"os"

	"github.com/davecgh/go-spew/spew"
)

const Enabled = true

var logger = log.New(os.Stderr, "|textkit| ", 0)

// Printf prints debug messages. Only available if compiled with "debug" tag
func Printf(f string, args ...interface{}) {
	logger.Printf(f, args...)
}

// Dump dumps the objects using go-spew
func Dump(v ...interface{}) {
	spew.Fdump(os.Stderr, v...)
}

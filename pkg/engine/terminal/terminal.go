// Package terminal probes the controlling terminal so callers can decide
// whether grid output will fit on screen.
package terminal

import (
	"os"

	"golang.org/x/term"
)

const (
	DefaultWidth  = 80
	DefaultHeight = 24
)

// GetSize returns the current terminal width and height. Falls back to
// defaults when stdout is not a terminal or the size cannot be determined.
func GetSize() (width, height int) {
	width, height, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil {
		return DefaultWidth, DefaultHeight
	}
	return width, height
}

// GetWidth returns the current terminal width, falling back to DefaultWidth.
func GetWidth() int {
	width, _ := GetSize()
	return width
}

// Package output provides utilities for creating termenv.Output with
// consistent color profile and TTY handling, plus the resolution report
// renderer.
package output

import (
	"io"
	"os"

	"github.com/muesli/termenv"
)

// ColorProfile returns the color profile for colored output.
// It checks if NO_COLOR is set, returning Ascii if so.
// Otherwise, it returns ANSI for broad terminal compatibility.
func ColorProfile() termenv.Profile {
	if os.Getenv("NO_COLOR") != "" {
		return termenv.Ascii
	}
	return termenv.ANSI
}

// New creates a new termenv.Output writing to w with the given profile.
func New(w io.Writer, profile termenv.Profile) *termenv.Output {
	if w == nil {
		w = os.Stderr
	}
	return termenv.NewOutput(w, termenv.WithProfile(profile), termenv.WithTTY(true))
}

// NewColored creates a colored termenv.Output, honoring NO_COLOR.
func NewColored(w io.Writer) *termenv.Output {
	return New(w, ColorProfile())
}

// NewPlain creates an uncolored termenv.Output.
func NewPlain(w io.Writer) *termenv.Output {
	return New(w, termenv.Ascii)
}

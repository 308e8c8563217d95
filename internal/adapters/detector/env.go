// Package detector provides environment detection for output mode selection.
package detector

import (
	"os"

	"golang.org/x/term"
)

// OutputMode represents the rendering mode for the resolution report.
type OutputMode int

const (
	// ModeAuto automatically detects the appropriate mode.
	ModeAuto OutputMode = iota
	// ModeColor forces colored report output.
	ModeColor
	// ModePlain forces uncolored report output.
	ModePlain
)

// DetectEnvironment returns the recommended output mode based on the environment.
// It checks if stdout is a TTY, if CI environment variables are set and if
// NO_COLOR is requested.
func DetectEnvironment() OutputMode {
	isTTY := term.IsTerminal(int(os.Stdout.Fd()))

	ci := os.Getenv("CI")
	isCI := ci == "true" || ci == "1"

	if !isTTY || isCI || os.Getenv("NO_COLOR") != "" {
		return ModePlain
	}
	return ModeColor
}

// ResolveMode applies user override flag to auto-detection.
// userFlag should be one of: "auto", "color", "plain", or empty.
func ResolveMode(autoDetected OutputMode, userFlag string) OutputMode {
	switch userFlag {
	case "color":
		return ModeColor
	case "plain":
		return ModePlain
	case "auto", "":
		return autoDetected
	default:
		return autoDetected
	}
}

// Package build contains build-time version information injected via ldflags.
package build

var (
	// Version is the application version.
	Version = "dev"

	// Commit is the git commit hash the binary was built from.
	Commit = "none"

	// Date is the build date.
	Date = "unknown"
)

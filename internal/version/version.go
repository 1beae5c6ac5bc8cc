package version

import (
	"fmt"
	"runtime"
)

// Build metadata injected by goreleaser or makefile
var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)

// Info returns detailed version information.
func Info() string {
	if Version == "dev" {
		return fmt.Sprintf("daygrid dev (%s, %s)", runtime.GOOS, runtime.GOARCH)
	}
	return fmt.Sprintf("daygrid %s (commit: %s, built: %s, %s/%s)",
		Version, Commit, Date, runtime.GOOS, runtime.GOARCH)
}

// Short returns a short version string for display.
func Short() string {
	if Version == "dev" {
		return "daygrid dev"
	}
	return fmt.Sprintf("daygrid %s", Version)
}

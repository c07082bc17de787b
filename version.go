// Package ai_text_completion carries build metadata shared by the two
// binaries under cmd/.
package ai_text_completion

import (
	"fmt"
	"runtime"
)

// Version information. These variables are set via -ldflags during build.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// VersionInfo returns formatted version information.
func VersionInfo() string {
	return fmt.Sprintf("ai_text_completion version %s\n  commit: %s\n  built: %s\n  go: %s",
		version, commit, date, runtime.Version())
}

// Version returns just the version string.
func Version() string {
	return version
}

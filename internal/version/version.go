// Package version holds build metadata stamped in with -ldflags.
package version

import "fmt"

var (
	// Version is the release version.
	Version = "dev"
	// GitSHA is the git commit SHA
	GitSHA = "unknown"
	// BuildTime is the build timestamp
	BuildTime = "unknown"
)

// String describes the build on one line.
func String() string {
	return fmt.Sprintf("plotcheck %s (commit %s, built %s)", Version, GitSHA, BuildTime)
}

// Package version carries build identification, set at link time via
// -ldflags "-X github.com/htautau-data/phicp.report/internal/version.Version=...".
package version

import "fmt"

var (
	// Version is the current application version
	Version = "dev"
	// GitSHA is the git commit SHA
	GitSHA = "unknown"
	// BuildTime is the build timestamp
	BuildTime = "unknown"
)

// String returns a single-line build description suitable for -version output.
func String() string {
	return fmt.Sprintf("phicp %s (%s, built %s)", Version, GitSHA, BuildTime)
}

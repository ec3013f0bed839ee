// Package version provides build version information for stash-mcp.
// Variables are set at build time via ldflags:
//
//	go build -ldflags="-X github.com/stash-reader/stash-mcp/internal/version.Version=v1.0.0 \
//	  -X github.com/stash-reader/stash-mcp/internal/version.GitCommit=abc123"
package version

import "fmt"

// Build information. Set via ldflags at build time.
var (
	Version   = "dev"     // Version tag (e.g., "v1.0.0")
	GitCommit = "unknown" // Short git commit hash
)

// String returns a human-readable version line.
func String() string {
	if GitCommit == "unknown" {
		return fmt.Sprintf("stash-mcp %s", Version)
	}
	return fmt.Sprintf("stash-mcp %s (%s)", Version, GitCommit)
}

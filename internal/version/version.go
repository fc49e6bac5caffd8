// Package version holds build metadata for moai-statusline.
package version

// Build information, overridden at link time:
//
//	go build -ldflags "-X github.com/moai-adk/moai-statusline/internal/version.Version=v0.1.0"
var (
	Version = "dev"
	Commit  = "unknown"
	Date    = "unknown"
)

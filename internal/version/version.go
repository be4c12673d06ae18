// Package version holds build metadata for the intentd binaries, stamped at
// build time:
//
//	go build -ldflags "-X github.com/kailas-cloud/intentd/internal/version.Version=v1.2.0 \
//	  -X github.com/kailas-cloud/intentd/internal/version.Commit=$(git rev-parse --short HEAD)"
package version

// Set via ldflags; the defaults identify an unstamped dev build.
var (
	Version = "dev"
	Commit  = "unknown"
	Date    = "unknown"
)

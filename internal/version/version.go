package version

import (
	"fmt"
	"runtime"
)

// Build information set by ldflags
var (
	Version = "dev"     // Set by goreleaser: -X github.com/Punkwe1ght/modsync/internal/version.Version={{.Version}}
	Commit  = "unknown" // Set by goreleaser: -X github.com/Punkwe1ght/modsync/internal/version.Commit={{.Commit}}
	Date    = "unknown" // Set by goreleaser: -X github.com/Punkwe1ght/modsync/internal/version.Date={{.Date}}
)

// Info is the multi-line text printed by `modsync version`.
func Info() string {
	return fmt.Sprintf("modsync version %s\n  commit: %s\n  built:  %s\n  go:     %s %s/%s\n",
		Version, Commit, Date, runtime.Version(), runtime.GOOS, runtime.GOARCH)
}

package rules

import (
	"context"
	"os/exec"
	"strings"

	"github.com/Punkwe1ght/modsync/pkg/gamepath"
	"github.com/Punkwe1ght/modsync/pkg/installation"
)

// VersionDetector reports the installed xNVSE version.
type VersionDetector interface {
	InstalledVersion(ctx context.Context, inst *installation.Installation) (string, bool)
}

// SidecarVersionDetector reads the first non-empty line of
// nvse_loader.version next to the loader. Executable version resources
// are not inspected.
type SidecarVersionDetector struct{}

func (SidecarVersionDetector) InstalledVersion(_ context.Context, inst *installation.Installation) (string, bool) {
	if inst == nil {
		return "", false
	}
	lines, err := inst.ReadLines(gamepath.NVSEVersion)
	if err != nil {
		return "", false
	}
	for _, l := range lines {
		if v := strings.TrimSpace(l); v != "" {
			return v, true
		}
	}
	return "", false
}

// StaticVersionDetector returns a fixed answer.
type StaticVersionDetector struct {
	Version string
	Known   bool
}

func (s StaticVersionDetector) InstalledVersion(context.Context, *installation.Installation) (string, bool) {
	return s.Version, s.Known
}

// DependencyDetector answers whether an external tool is installed. It must
// honour ctx.
type DependencyDetector interface {
	Available(ctx context.Context, tool string) (bool, error)
}

// PathDetector finds a tool on PATH and checks that it runs.
type PathDetector struct {
	LookPath func(string) (string, error)
	Run      func(ctx context.Context, path string, args ...string) error
}

func NewPathDetector() *PathDetector {
	return &PathDetector{
		LookPath: exec.LookPath,
		Run: func(ctx context.Context, path string, args ...string) error {
			return exec.CommandContext(ctx, path, args...).Run()
		},
	}
}

func (p *PathDetector) Available(ctx context.Context, tool string) (bool, error) {
	path, err := p.LookPath(tool)
	if err != nil {
		return false, nil
	}
	if err := p.Run(ctx, path, "--version"); err != nil {
		if ctx.Err() != nil {
			return false, ctx.Err()
		}
		return false, nil
	}
	return true, nil
}

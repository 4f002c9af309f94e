// Package installation resolves logical locations of a game installation
// to absolute directories and reads small files from them.
package installation

import (
	"path/filepath"
	"runtime"
	"strings"

	"github.com/spf13/afero"

	"github.com/Punkwe1ght/modsync/pkg/config"
	"github.com/Punkwe1ght/modsync/pkg/errors"
	"github.com/Punkwe1ght/modsync/pkg/filesystem"
	"github.com/Punkwe1ght/modsync/pkg/gamepath"
)

// FileReader reads small text files by absolute path without panicking.
// ReadLines fails with MISSING_CONFIG or UNREADABLE_CONFIG.
type FileReader interface {
	Exists(path string) bool
	ReadLines(path string) ([]string, error)
}

// Installation is one game install: its location roots, the filesystem
// they live on and the host operating system.
type Installation struct {
	Locations map[gamepath.LocationID]string
	FS        afero.Fs
	OS        string
	Reader    FileReader
}

// New creates an Installation on fsys (nil means the OS filesystem) for
// the current host.
func New(fsys afero.Fs, locations map[gamepath.LocationID]string) *Installation {
	if fsys == nil {
		fsys = afero.NewOsFs()
	}
	locs := make(map[gamepath.LocationID]string, len(locations))
	for id, dir := range locations {
		if dir != "" {
			locs[id] = filepath.Clean(dir)
		}
	}
	return &Installation{
		Locations: locs,
		FS:        fsys,
		OS:        runtime.GOOS,
		Reader:    filesystem.NewReader(fsys),
	}
}

// FromConfig builds an Installation from the game section of cfg.
func FromConfig(cfg *config.Config, fsys afero.Fs) *Installation {
	return New(fsys, map[gamepath.LocationID]string{
		gamepath.Game:        cfg.Game.Path,
		gamepath.Preferences: cfg.Game.Preferences,
		gamepath.AppData:     cfg.Game.AppData,
	})
}

// Resolve returns the absolute directory of loc.
func (i *Installation) Resolve(loc gamepath.LocationID) (string, bool) {
	dir, ok := i.Locations[loc]
	return dir, ok
}

// ToAbsolutePath maps a virtual path onto the filesystem.
func (i *Installation) ToAbsolutePath(p gamepath.GamePath) (string, error) {
	dir, ok := i.Resolve(p.Location)
	if !ok {
		return "", errors.Newf(errors.ErrNotFound, "location %s is not configured", p.Location).
			WithDetail("location", string(p.Location))
	}
	if p.Path == "" {
		return dir, nil
	}
	return filepath.Join(dir, filepath.FromSlash(p.Path)), nil
}

// Locate maps p onto the filesystem like ToAbsolutePath, but matches each
// path element case-insensitively against the directory entries on disk.
// From the first element with no match on, the rest of the path is kept
// as written.
func (i *Installation) Locate(p gamepath.GamePath) (string, error) {
	cur, err := i.ToAbsolutePath(gamepath.New(p.Location, ""))
	if err != nil {
		return "", err
	}
	if p.Path == "" {
		return cur, nil
	}
	parts := strings.Split(p.Path, "/")
	for k, part := range parts {
		exact := filepath.Join(cur, part)
		if _, err := i.FS.Stat(exact); err == nil {
			cur = exact
			continue
		}
		name, ok := i.matchFold(cur, part)
		if !ok {
			return filepath.Join(append([]string{cur}, parts[k:]...)...), nil
		}
		cur = filepath.Join(cur, name)
	}
	return cur, nil
}

func (i *Installation) matchFold(dir, name string) (string, bool) {
	entries, err := afero.ReadDir(i.FS, dir)
	if err != nil {
		return "", false
	}
	for _, e := range entries {
		if strings.EqualFold(e.Name(), name) {
			return e.Name(), true
		}
	}
	return "", false
}

// Exists reports whether p exists on disk, ignoring case. Unresolvable
// locations count as absent.
func (i *Installation) Exists(p gamepath.GamePath) bool {
	abs, err := i.Locate(p)
	if err != nil {
		return false
	}
	return i.Reader.Exists(abs)
}

// ReadLines reads p through the installation's FileReader. An unresolvable
// location is reported as MISSING_CONFIG.
func (i *Installation) ReadLines(p gamepath.GamePath) ([]string, error) {
	abs, err := i.Locate(p)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrMissingConfig, "cannot locate %s", p)
	}
	return i.Reader.ReadLines(abs)
}

// IsLinux reports whether the host is Linux, where the game runs under Proton.
func (i *Installation) IsLinux() bool {
	return i.OS == "linux"
}

package loadout

import (
	"io"
	"slices"

	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"

	"github.com/Punkwe1ght/modsync/pkg/errors"
	"github.com/Punkwe1ght/modsync/pkg/gamepath"
)

// Manifest is one loadout.
type Manifest struct {
	ID   string `yaml:"id"`
	Mods []Mod  `yaml:"mods"`
}

// Mod is one installed modification.
type Mod struct {
	ID          uint64  `yaml:"id"`
	Name        string  `yaml:"name"`
	Enabled     *bool   `yaml:"enabled"`
	Priority    *uint64 `yaml:"priority"`
	NvseVersion string  `yaml:"nvse_version"`
	Files       []File  `yaml:"files"`
}

// IsEnabled defaults to true when the manifest omits the flag.
func (m Mod) IsEnabled() bool {
	return m.Enabled == nil || *m.Enabled
}

// File is a path the mod installs. In YAML it is either a plain Game
// relative path or a mapping with path, location and tweak_of.
type File struct {
	Path     string              `yaml:"path"`
	Location gamepath.LocationID `yaml:"location"`
	TweakOf  string              `yaml:"tweak_of"`
}

func (f *File) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind == yaml.ScalarNode {
		f.Path = value.Value
		return nil
	}
	type plain File
	return value.Decode((*plain)(f))
}

// GamePath is the file's virtual path; the location defaults to Game.
func (f File) GamePath() gamepath.GamePath {
	loc := f.Location
	if loc == "" {
		loc = gamepath.Game
	}
	return gamepath.New(loc, f.Path)
}

// Load decodes and validates a manifest.
func Load(r io.Reader) (*Manifest, error) {
	var m Manifest
	if err := yaml.NewDecoder(r).Decode(&m); err != nil {
		if err == io.EOF {
			return nil, errors.New(errors.ErrManifestInvalid, "manifest is empty")
		}
		return nil, errors.Wrap(err, errors.ErrManifestInvalid, "failed to decode manifest")
	}
	if err := m.Validate(); err != nil {
		return nil, err
	}
	return &m, nil
}

// LoadFile reads the manifest at name.
func LoadFile(fsys afero.Fs, name string) (*Manifest, error) {
	f, err := fsys.Open(name)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrNotFound, "cannot open manifest %s", name).WithDetail("path", name)
	}
	defer func() { _ = f.Close() }()

	m, err := Load(f)
	if err != nil {
		if e, ok := err.(*errors.Error); ok {
			e.WithDetail("path", name)
		}
		return nil, err
	}
	return m, nil
}

// Validate checks ids, file paths and locations.
func (m *Manifest) Validate() error {
	if m.ID == "" {
		return errors.New(errors.ErrManifestInvalid, "manifest has no id")
	}
	seen := make(map[uint64]bool, len(m.Mods))
	for i, mod := range m.Mods {
		if mod.ID == 0 {
			return errors.Newf(errors.ErrManifestInvalid, "mod %d has no id", i).WithDetail("mod", mod.Name)
		}
		if seen[mod.ID] {
			return errors.Newf(errors.ErrManifestInvalid, "duplicate mod id %d", mod.ID).WithDetail("mod", mod.Name)
		}
		seen[mod.ID] = true

		for _, f := range mod.Files {
			if f.GamePath().Path == "" {
				return errors.Newf(errors.ErrManifestInvalid, "mod %d lists an empty path", mod.ID)
			}
			if f.Location != "" && !slices.Contains(gamepath.Locations, f.Location) {
				return errors.Newf(errors.ErrManifestInvalid, "mod %d uses unknown location %q", mod.ID, f.Location).
					WithDetail("known", gamepath.Locations)
			}
		}
	}
	return nil
}

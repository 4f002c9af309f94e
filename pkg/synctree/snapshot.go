package synctree

import (
	"io"

	"gopkg.in/yaml.v3"

	"github.com/Punkwe1ght/modsync/pkg/errors"
	"github.com/Punkwe1ght/modsync/pkg/gamepath"
)

type snapshotEntry struct {
	Location string `yaml:"location"`
	Path     string `yaml:"path"`
	Loadout  bool   `yaml:"loadout"`
	Disk     bool   `yaml:"disk"`
}

// LoadSnapshot reads a YAML list of {location, path, loadout, disk}.
// A missing location defaults to Game.
func LoadSnapshot(r io.Reader) (*Tree, error) {
	var entries []snapshotEntry
	if err := yaml.NewDecoder(r).Decode(&entries); err != nil && err != io.EOF {
		return nil, errors.Wrap(err, errors.ErrInvalidInput, "failed to decode sync snapshot")
	}

	b := NewBuilder()
	for i, e := range entries {
		if e.Path == "" {
			return nil, errors.Newf(errors.ErrInvalidInput, "snapshot entry %d has no path", i)
		}
		loc := gamepath.LocationID(e.Location)
		if loc == "" {
			loc = gamepath.Game
		}
		b.Add(gamepath.New(loc, e.Path), Node{HaveLoadout: e.Loadout, HaveDisk: e.Disk})
	}
	return b.Build(), nil
}

// WriteSnapshot writes t in the format LoadSnapshot reads.
func WriteSnapshot(w io.Writer, t *Tree) error {
	entries := make([]snapshotEntry, 0, t.Len())
	t.Range(func(p gamepath.GamePath, n Node) bool {
		entries = append(entries, snapshotEntry{
			Location: string(p.Location),
			Path:     p.Path,
			Loadout:  n.HaveLoadout,
			Disk:     n.HaveDisk,
		})
		return true
	})
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(entries); err != nil {
		return errors.Wrap(err, errors.ErrInternal, "failed to encode sync snapshot")
	}
	return enc.Close()
}

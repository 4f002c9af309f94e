package datastore

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"github.com/rs/zerolog"
	"github.com/spf13/afero"

	"github.com/Punkwe1ght/modsync/pkg/errors"
	"github.com/Punkwe1ght/modsync/pkg/filesystem"
	"github.com/Punkwe1ght/modsync/pkg/loadorder"
	"github.com/Punkwe1ght/modsync/pkg/logging"
)

// OrderStore persists one load order per loadout.
type OrderStore interface {
	loadorder.Store
	// Loadouts lists the loadout ids that have a stored order.
	Loadouts() ([]string, error)
}

type document struct {
	Loadout string            `toml:"loadout"`
	Plugins []loadorder.Entry `toml:"plugins"`
}

type fileStore struct {
	fs     afero.Fs
	dir    string
	logger zerolog.Logger
}

// New returns an OrderStore rooted at dir on fsys.
func New(fsys afero.Fs, dir string) OrderStore {
	return &fileStore{
		fs:     fsys,
		dir:    dir,
		logger: logging.GetLogger("datastore"),
	}
}

func (s *fileStore) path(loadoutID string) (string, error) {
	if loadoutID == "" || strings.ContainsAny(loadoutID, `/\`) || loadoutID == "." || loadoutID == ".." {
		return "", errors.Newf(errors.ErrInvalidInput, "invalid loadout id %q", loadoutID)
	}
	return filepath.Join(s.dir, loadoutID+".toml"), nil
}

// Load returns the stored order sorted by index. A loadout without a
// stored order yields an empty slice.
func (s *fileStore) Load(loadoutID string) ([]loadorder.Entry, error) {
	p, err := s.path(loadoutID)
	if err != nil {
		return nil, err
	}
	data, err := afero.ReadFile(s.fs, p)
	if err != nil {
		if os.IsNotExist(err) {
			s.logger.Debug().Str("path", p).Msg("No stored order")
			return []loadorder.Entry{}, nil
		}
		return nil, errors.Wrapf(err, errors.ErrStoreRead, "cannot read %s", p).WithDetail("path", p)
	}

	var doc document
	if err := toml.Unmarshal(data, &doc); err != nil {
		return nil, errors.Wrapf(err, errors.ErrStoreRead, "cannot parse %s", p).WithDetail("path", p)
	}
	entries := doc.Plugins
	if entries == nil {
		entries = []loadorder.Entry{}
	}
	loadorder.SortEntries(entries)
	return entries, nil
}

// Apply applies d to the stored order and writes it back atomically.
func (s *fileStore) Apply(loadoutID string, d loadorder.Delta) error {
	current, err := s.Load(loadoutID)
	if err != nil {
		return err
	}
	return s.save(loadoutID, loadorder.Apply(current, d))
}

func (s *fileStore) save(loadoutID string, entries []loadorder.Entry) error {
	p, err := s.path(loadoutID)
	if err != nil {
		return err
	}
	data, err := toml.Marshal(document{Loadout: loadoutID, Plugins: entries})
	if err != nil {
		return errors.Wrap(err, errors.ErrStoreWrite, "cannot encode load order")
	}
	if err := filesystem.WriteFileAtomic(s.fs, p, data, 0644); err != nil {
		return errors.Wrapf(err, errors.ErrStoreWrite, "cannot write %s", p).WithDetail("path", p)
	}
	s.logger.Debug().Str("path", p).Int("plugins", len(entries)).Msg("Stored order")
	return nil
}

func (s *fileStore) Loadouts() ([]string, error) {
	infos, err := afero.ReadDir(s.fs, s.dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, errors.Wrapf(err, errors.ErrStoreRead, "cannot list %s", s.dir)
	}
	var ids []string
	for _, info := range infos {
		if name := info.Name(); !info.IsDir() && strings.HasSuffix(name, ".toml") {
			ids = append(ids, strings.TrimSuffix(name, ".toml"))
		}
	}
	return ids, nil
}

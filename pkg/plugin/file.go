package plugin

import (
	"bufio"
	"path"
	"strings"

	"github.com/spf13/afero"

	"github.com/Punkwe1ght/modsync/pkg/errors"
)

// ParseFile opens name on fsys and parses its header. Open failures are
// returned as NOT_FOUND or UNREADABLE_CONFIG; parse failures as the
// sentinel errors.
func ParseFile(fsys afero.Fs, name string) (*Header, error) {
	f, err := fsys.Open(name)
	if err != nil {
		if exists, _ := afero.Exists(fsys, name); !exists {
			return nil, errors.Wrapf(err, errors.ErrNotFound, "plugin %s not found", name)
		}
		return nil, errors.Wrapf(err, errors.ErrUnreadableConfig, "cannot open plugin %s", name)
	}
	defer func() { _ = f.Close() }()

	return Parse(bufio.NewReader(f))
}

// Info is the minimal plugin metadata needed for ordering and master checks.
type Info struct {
	Name     string
	Masters  []string
	IsMaster bool
}

// NewInfo adapts a parsed header for the plugin file fileName.
func NewInfo(fileName string, h *Header) Info {
	masters := make([]string, len(h.Masters))
	copy(masters, h.Masters)
	return Info{
		Name:     path.Base(strings.ReplaceAll(fileName, "\\", "/")),
		Masters:  masters,
		IsMaster: h.IsMaster(),
	}
}

// MissingMasters returns the masters for which present reports false.
func (i Info) MissingMasters(present func(name string) bool) []string {
	var missing []string
	for _, m := range i.Masters {
		if !present(m) {
			missing = append(missing, m)
		}
	}
	return missing
}

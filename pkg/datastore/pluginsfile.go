package datastore

import (
	"strings"

	"github.com/spf13/afero"

	"github.com/Punkwe1ght/modsync/pkg/errors"
	"github.com/Punkwe1ght/modsync/pkg/filesystem"
)

// PluginsFileHeader is the comment line that opens a generated plugins.txt.
const PluginsFileHeader = "# This file was generated by modsync"

// WritePluginsFile writes the engine's plugin list: a header comment and
// one plugin per line, with CRLF line endings.
func WritePluginsFile(fsys afero.Fs, path string, keys []string) error {
	var b strings.Builder
	b.WriteString(PluginsFileHeader)
	b.WriteString("\r\n")
	for _, k := range keys {
		b.WriteString(k)
		b.WriteString("\r\n")
	}
	if err := filesystem.WriteFileAtomic(fsys, path, []byte(b.String()), 0644); err != nil {
		return errors.Wrapf(err, errors.ErrStoreWrite, "cannot write %s", path).WithDetail("path", path)
	}
	return nil
}

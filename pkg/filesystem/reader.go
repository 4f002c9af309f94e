package filesystem

import (
	"bufio"
	stderrors "errors"
	"io/fs"
	"os"
	"strings"

	"github.com/spf13/afero"

	"github.com/Punkwe1ght/modsync/pkg/errors"
)

const utf8BOM = "\ufeff"

// Reader reads small text files through an afero filesystem.
type Reader struct {
	fs afero.Fs
}

// NewReader creates a Reader; a nil fs means the OS filesystem.
func NewReader(fsys afero.Fs) *Reader {
	if fsys == nil {
		fsys = afero.NewOsFs()
	}
	return &Reader{fs: fsys}
}

// Exists reports whether name is an existing regular file. Stat failures
// count as absent.
func (r *Reader) Exists(name string) bool {
	info, err := r.fs.Stat(name)
	return err == nil && !info.IsDir()
}

// ReadLines returns the file's lines without line terminators. A missing
// file yields MISSING_CONFIG; any other failure yields UNREADABLE_CONFIG.
func (r *Reader) ReadLines(name string) ([]string, error) {
	info, err := r.fs.Stat(name)
	if err != nil {
		if isNotExist(err) {
			return nil, errors.Wrapf(err, errors.ErrMissingConfig, "%s does not exist", name).
				WithDetail("path", name)
		}
		return nil, errors.Wrapf(err, errors.ErrUnreadableConfig, "cannot stat %s", name).
			WithDetail("path", name)
	}
	if info.IsDir() {
		return nil, errors.Newf(errors.ErrUnreadableConfig, "%s is a directory", name).
			WithDetail("path", name)
	}

	f, err := r.fs.Open(name)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrUnreadableConfig, "cannot open %s", name).
			WithDetail("path", name)
	}
	defer func() { _ = f.Close() }()

	var lines []string
	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		line := strings.TrimSuffix(scanner.Text(), "\r")
		if len(lines) == 0 {
			line = strings.TrimPrefix(line, utf8BOM)
		}
		lines = append(lines, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrapf(err, errors.ErrUnreadableConfig, "cannot read %s", name).
			WithDetail("path", name)
	}
	return lines, nil
}

func isNotExist(err error) bool {
	return os.IsNotExist(err) || stderrors.Is(err, fs.ErrNotExist)
}

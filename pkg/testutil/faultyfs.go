package testutil

import (
	"os"
	"path/filepath"
	"sync"

	"github.com/spf13/afero"
)

// FaultyFs wraps an afero.Fs and fails Open/OpenFile for injected paths.
// Stat still succeeds so callers see "exists but unreadable".
type FaultyFs struct {
	afero.Fs

	mu         sync.RWMutex
	errorPaths map[string]error
}

func NewFaultyFs(base afero.Fs) *FaultyFs {
	return &FaultyFs{Fs: base, errorPaths: make(map[string]error)}
}

// FailOn makes every open of path return err.
func (f *FaultyFs) FailOn(path string, err error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.errorPaths[filepath.Clean(path)] = err
}

func (f *FaultyFs) injected(name string) error {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return f.errorPaths[filepath.Clean(name)]
}

func (f *FaultyFs) Open(name string) (afero.File, error) {
	if err := f.injected(name); err != nil {
		return nil, &os.PathError{Op: "open", Path: name, Err: err}
	}
	return f.Fs.Open(name)
}

func (f *FaultyFs) OpenFile(name string, flag int, perm os.FileMode) (afero.File, error) {
	if err := f.injected(name); err != nil {
		return nil, &os.PathError{Op: "open", Path: name, Err: err}
	}
	return f.Fs.OpenFile(name, flag, perm)
}

func (f *FaultyFs) Name() string { return "FaultyFs" }

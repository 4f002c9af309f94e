package testutil

import (
	"path/filepath"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/require"

	"github.com/Punkwe1ght/modsync/pkg/gamepath"
	"github.com/Punkwe1ght/modsync/pkg/installation"
)

// Standard location roots of a test installation.
const (
	GameDir  = "/games/FalloutNV"
	PrefsDir = "/home/user/Documents/My Games/FalloutNV"
	AppDir   = "/home/user/AppData/Local/FalloutNV"
)

// Install is an in-memory installation plus the fault injector behind it.
type Install struct {
	*installation.Installation
	Faults *FaultyFs
}

// NewInstall creates an installation on a MemMapFs with the standard
// location roots. The host OS defaults to windows.
func NewInstall(t *testing.T) *Install {
	t.Helper()
	faults := NewFaultyFs(afero.NewMemMapFs())
	inst := installation.New(faults, map[gamepath.LocationID]string{
		gamepath.Game:        GameDir,
		gamepath.Preferences: PrefsDir,
		gamepath.AppData:     AppDir,
	})
	inst.OS = "windows"
	return &Install{Installation: inst, Faults: faults}
}

// WriteFile writes content at the virtual path p.
func (i *Install) WriteFile(t *testing.T, p gamepath.GamePath, content string) string {
	t.Helper()
	abs, err := i.ToAbsolutePath(p)
	require.NoError(t, err)
	require.NoError(t, i.FS.MkdirAll(filepath.Dir(abs), 0755))
	require.NoError(t, afero.WriteFile(i.FS, abs, []byte(content), 0644))
	return abs
}

// WriteBytes writes raw data at the virtual path p.
func (i *Install) WriteBytes(t *testing.T, p gamepath.GamePath, data []byte) string {
	t.Helper()
	return i.WriteFile(t, p, string(data))
}

// Touch creates an empty file at p.
func (i *Install) Touch(t *testing.T, p gamepath.GamePath) string {
	t.Helper()
	return i.WriteFile(t, p, "")
}

// FailRead makes reads of p fail with err while it still exists.
func (i *Install) FailRead(t *testing.T, p gamepath.GamePath, err error) {
	t.Helper()
	abs := i.Touch(t, p)
	i.Faults.FailOn(abs, err)
}

package loadout_test

import (
	"strings"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Punkwe1ght/modsync/pkg/diagnostics"
	"github.com/Punkwe1ght/modsync/pkg/errors"
	"github.com/Punkwe1ght/modsync/pkg/gamepath"
	"github.com/Punkwe1ght/modsync/pkg/loadorder"
	"github.com/Punkwe1ght/modsync/pkg/loadout"
	"github.com/Punkwe1ght/modsync/pkg/testutil"
)

const sample = `
id: main
mods:
  - id: 1
    name: Base
    priority: 20
    files:
      - Data/FalloutNV.esm
      - Data/Shared.esp
  - id: 2
    name: YUP
    priority: 10
    nvse_version: "6.3.0"
    files:
      - Data/YUP - Base.esm
      - Data/Shared.esp
      - Data/NVSE/Plugins/yup.dll
      - Data/Config/FalloutCustom.ini
      - path: tweaks/yup.txt
        location: Preferences
        tweak_of: Fallout.ini
  - id: 3
    name: Off
    enabled: false
    files:
      - Data/Off.esp
      - Data/Config/Off/FalloutCustom.ini
`

func TestLoad(t *testing.T) {
	m, err := loadout.Load(strings.NewReader(sample))
	require.NoError(t, err)
	assert.Equal(t, "main", m.ID)
	require.Len(t, m.Mods, 3)
	assert.True(t, m.Mods[0].IsEnabled())
	assert.False(t, m.Mods[2].IsEnabled())
	assert.Equal(t, loadout.File{Path: "tweaks/yup.txt", Location: gamepath.Preferences, TweakOf: "Fallout.ini"}, m.Mods[1].Files[4])
	assert.Equal(t, gamepath.New(gamepath.Game, "Data/FalloutNV.esm"), m.Mods[0].Files[0].GamePath())
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{"empty", ""},
		{"not yaml", "id: [unclosed"},
		{"missing id", "mods: []"},
		{"mod without id", "id: x\nmods:\n  - name: a"},
		{"duplicate mod id", "id: x\nmods:\n  - id: 1\n  - id: 1"},
		{"empty path", "id: x\nmods:\n  - id: 1\n    files: ['']"},
		{"unknown location", "id: x\nmods:\n  - id: 1\n    files:\n      - path: a.ini\n        location: Moon"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := loadout.Load(strings.NewReader(tt.doc))
			assert.True(t, errors.IsErrorCode(err, errors.ErrManifestInvalid), "got %v", err)
		})
	}
}

func TestLoadFile(t *testing.T) {
	fsys := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fsys, "/m.yaml", []byte(sample), 0644))

	m, err := loadout.LoadFile(fsys, "/m.yaml")
	require.NoError(t, err)
	assert.Equal(t, "main", m.ID)

	_, err = loadout.LoadFile(fsys, "/missing.yaml")
	assert.True(t, errors.IsErrorCode(err, errors.ErrNotFound))
}

func TestBuild(t *testing.T) {
	inst := testutil.NewInstall(t)
	inst.Touch(t, gamepath.Data.Join("FalloutNV.esm"))
	inst.Touch(t, gamepath.Data.Join("DiskOnly.esp"))
	inst.Touch(t, gamepath.NVSELoader)

	m, err := loadout.Load(strings.NewReader(sample))
	require.NoError(t, err)
	res := loadout.Build(m, inst.Installation, loadout.Options{})

	assert.Equal(t, []loadorder.Item{
		{Key: "FalloutNV.esm", Enabled: true, Owner: "Base", Group: 1},
		{Key: "Shared.esp", Enabled: true, Owner: "YUP", Group: 2},
		{Key: "YUP - Base.esm", Enabled: true, Owner: "YUP", Group: 2},
	}, res.Plugins)
	assert.Equal(t, loadorder.Priorities{1: 20, 2: 10}, res.Priorities)

	node, ok := res.Tree.Lookup(gamepath.Data.Join("FalloutNV.esm"))
	require.True(t, ok)
	assert.True(t, node.HaveLoadout)
	assert.True(t, node.HaveDisk)

	node, ok = res.Tree.Lookup(gamepath.Data.Join("DiskOnly.esp"))
	require.True(t, ok)
	assert.False(t, node.HaveLoadout)
	assert.True(t, node.HaveDisk)

	assert.False(t, res.Tree.InLoadout(gamepath.Data.Join("Off.esp")))
	_, ok = res.Tree.Lookup(gamepath.NVSELoader)
	assert.False(t, ok, "top-level game files are not tracked")

	assert.Equal(t, []diagnostics.IniTweak{
		{Path: gamepath.New(gamepath.Game, "Data/Config/FalloutCustom.ini"), Target: "FalloutCustom.ini", Owner: "YUP", Enabled: true},
		{Path: gamepath.New(gamepath.Preferences, "tweaks/yup.txt"), Target: "Fallout.ini", Owner: "YUP", Enabled: true},
		{Path: gamepath.New(gamepath.Game, "Data/Config/Off/FalloutCustom.ini"), Target: "FalloutCustom.ini", Owner: "Off", Enabled: false},
	}, res.Tweaks)
	assert.Equal(t, []diagnostics.NvseItem{{Name: "YUP", Enabled: true, RequiredVersion: "6.3.0"}}, res.NvseItems)

	data := res.LoadoutData()
	assert.Equal(t, []string{"FalloutNV.esm", "Shared.esp", "YUP - Base.esm"}, data.Plugins)

	in := res.Input(inst.Installation)
	assert.Same(t, res.Tree, in.Tree)
}

func TestScanDisk(t *testing.T) {
	inst := testutil.NewInstall(t)
	inst.Touch(t, gamepath.Data.Join("Mod.esp"))
	inst.Touch(t, gamepath.Data.Join("Mod.bsa"))
	inst.Touch(t, gamepath.New(gamepath.Game, "NVSE/nvse_config.ini"))
	inst.Touch(t, gamepath.New(gamepath.Game, "Screenshots/shot.png"))
	inst.Touch(t, gamepath.FourGBBackup)
	inst.Touch(t, gamepath.FalloutINI)

	var got []string
	for _, p := range loadout.ScanDisk(inst.Installation, false) {
		got = append(got, p.String())
	}
	assert.ElementsMatch(t, []string{
		"{Game}/Data/Mod.esp",
		"{Game}/NVSE/nvse_config.ini",
		"{Preferences}/Fallout.ini",
	}, got)

	all := loadout.ScanDisk(inst.Installation, true)
	assert.Len(t, all, 6)
}

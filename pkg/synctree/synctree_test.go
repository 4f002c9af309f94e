package synctree

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Punkwe1ght/modsync/pkg/errors"
	"github.com/Punkwe1ght/modsync/pkg/gamepath"
)

func sample() *Tree {
	return NewBuilder().
		Add(gamepath.New(gamepath.Game, "Data/FalloutNV.esm"), Node{HaveLoadout: true, HaveDisk: true}).
		Add(gamepath.New(gamepath.Game, "Data/YUP.esp"), Node{HaveLoadout: true}).
		Add(gamepath.New(gamepath.Game, "Data/NVSE/Plugins/jip_nvse.dll"), Node{HaveLoadout: true}).
		Add(gamepath.New(gamepath.Game, "FalloutNV.exe"), Node{HaveDisk: true}).
		Add(gamepath.New(gamepath.Preferences, "Fallout.ini"), Node{HaveDisk: true}).
		Build()
}

func TestLookup(t *testing.T) {
	tree := sample()

	n, ok := tree.Lookup(gamepath.New(gamepath.Game, "data/yup.ESP"))
	require.True(t, ok)
	assert.True(t, n.HaveLoadout)
	assert.False(t, n.HaveDisk)

	assert.True(t, tree.InLoadout(gamepath.New(gamepath.Game, "Data/FalloutNV.esm")))
	assert.False(t, tree.InLoadout(gamepath.New(gamepath.Game, "FalloutNV.exe")))
	assert.False(t, tree.InLoadout(gamepath.New(gamepath.Game, "Data/missing.esp")))
	assert.Equal(t, 5, tree.Len())
}

func TestBuilderMergesDuplicates(t *testing.T) {
	tree := NewBuilder().
		Add(gamepath.New(gamepath.Game, "Data/A.esp"), Node{HaveLoadout: true}).
		Add(gamepath.New(gamepath.Game, "data/a.esp"), Node{HaveDisk: true}).
		Build()

	assert.Equal(t, 1, tree.Len())
	n, _ := tree.Lookup(gamepath.New(gamepath.Game, "Data/A.esp"))
	assert.Equal(t, Node{HaveLoadout: true, HaveDisk: true}, n)
}

func TestRangeIsSorted(t *testing.T) {
	var got []string
	sample().Range(func(p gamepath.GamePath, _ Node) bool {
		got = append(got, p.String())
		return true
	})
	assert.Equal(t, []string{
		"{Game}/Data/FalloutNV.esm",
		"{Game}/Data/NVSE/Plugins/jip_nvse.dll",
		"{Game}/Data/YUP.esp",
		"{Game}/FalloutNV.exe",
		"{Preferences}/Fallout.ini",
	}, got)
}

func TestRangeStopsEarly(t *testing.T) {
	visited := 0
	sample().Range(func(gamepath.GamePath, Node) bool {
		visited++
		return visited < 2
	})
	assert.Equal(t, 2, visited)
}

func TestPredicates(t *testing.T) {
	tree := sample()

	tests := []struct {
		name string
		pred Predicate
		want int
	}{
		{"loadout only", LoadoutOnly, 3},
		{"in data", InFolder(gamepath.Data), 3},
		{"direct child of data", DirectChildOf(gamepath.Data), 2},
		{"plugins", HasExtension(".esm", ".esp"), 2},
		{"loadout plugins in data", All(LoadoutOnly, DirectChildOf(gamepath.Data), HasExtension(".esp")), 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tree.Count(tt.pred))
		})
	}
}

func TestGlob(t *testing.T) {
	tree := sample()
	got := tree.Glob(gamepath.Game, "Data/NVSE/Plugins/*.dll")
	require.Len(t, got, 1)
	assert.Equal(t, "jip_nvse.dll", got[0].FileName())

	assert.Empty(t, tree.Glob(gamepath.Preferences, "Data/**"))
	assert.Empty(t, tree.Glob(gamepath.Game, "[unclosed"))
}

func TestNilTree(t *testing.T) {
	var tree *Tree
	assert.Zero(t, tree.Len())
	assert.False(t, tree.InLoadout(gamepath.Data))
	assert.Zero(t, tree.Count(LoadoutOnly))
}

func TestSnapshotRoundTrip(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteSnapshot(&buf, sample()))

	tree, err := LoadSnapshot(&buf)
	require.NoError(t, err)
	assert.Equal(t, 5, tree.Len())
	assert.True(t, tree.InLoadout(gamepath.New(gamepath.Game, "Data/YUP.esp")))
}

func TestLoadSnapshot(t *testing.T) {
	t.Run("default location", func(t *testing.T) {
		tree, err := LoadSnapshot(strings.NewReader("- path: Data/A.esp\n  loadout: true\n"))
		require.NoError(t, err)
		assert.True(t, tree.InLoadout(gamepath.New(gamepath.Game, "Data/A.esp")))
	})

	t.Run("empty document", func(t *testing.T) {
		tree, err := LoadSnapshot(strings.NewReader(""))
		require.NoError(t, err)
		assert.Zero(t, tree.Len())
	})

	t.Run("entry without path", func(t *testing.T) {
		_, err := LoadSnapshot(strings.NewReader("- loadout: true\n"))
		assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidInput))
	})

	t.Run("malformed", func(t *testing.T) {
		_, err := LoadSnapshot(strings.NewReader("{not: [a list"))
		assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidInput))
	})
}

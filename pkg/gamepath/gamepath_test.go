package gamepath

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"plain", "Data/Foo.esp", "Data/Foo.esp"},
		{"backslashes", `Data\NVSE\Plugins\a.dll`, "Data/NVSE/Plugins/a.dll"},
		{"leading slash", "/Data/Foo.esp", "Data/Foo.esp"},
		{"dot prefix", "./Data/Foo.esp", "Data/Foo.esp"},
		{"duplicate separators", "Data//Foo.esp", "Data/Foo.esp"},
		{"empty", "", ""},
		{"dot", ".", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, New(Game, tt.in).Path)
		})
	}
}

func TestKeyIsCaseInsensitive(t *testing.T) {
	a := New(Game, "Data/FalloutNV.esm")
	b := New(Game, "data/falloutnv.ESM")
	assert.Equal(t, a.Key(), b.Key())
	assert.True(t, a.Equal(b))
	assert.False(t, a.Equal(New(Preferences, "Data/FalloutNV.esm")))
}

func TestPathParts(t *testing.T) {
	p := New(Game, "Data/Sounds.Of.Mojave.BSA")
	assert.Equal(t, "Sounds.Of.Mojave.BSA", p.FileName())
	assert.Equal(t, ".bsa", p.Extension())
	assert.Equal(t, "Sounds.Of.Mojave", p.Stem())
	assert.True(t, p.Parent().Equal(Data))
	assert.Equal(t, "", New(Game, "FalloutNV.exe").Parent().Path)
	assert.Equal(t, "{Game}/Data/Sounds.Of.Mojave.BSA", p.String())
}

func TestInFolder(t *testing.T) {
	tests := []struct {
		name string
		path GamePath
		dir  GamePath
		want bool
	}{
		{"direct child", New(Game, "Data/a.esp"), Data, true},
		{"nested", New(Game, "data/nvse/plugins/x.dll"), NVSEPlugins.Parent(), true},
		{"case folded", New(Game, "DATA/a.esp"), Data, true},
		{"self", Data, Data, false},
		{"sibling prefix", New(Game, "DataFiles/a.esp"), Data, false},
		{"other location", New(Preferences, "Data/a.esp"), Data, false},
		{"root", New(Game, "a.exe"), New(Game, ""), true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.path.InFolder(tt.dir))
		})
	}
}

func TestIsDirectChildOf(t *testing.T) {
	assert.True(t, New(Game, "Data/a.esp").IsDirectChildOf(Data))
	assert.False(t, New(Game, "Data/Sub/a.esp").IsDirectChildOf(Data))
	assert.False(t, New(Game, "a.esp").IsDirectChildOf(Data))
}

func TestCompare(t *testing.T) {
	assert.Negative(t, Compare(New(Game, "a"), New(Game, "B")))
	assert.Positive(t, Compare(New(Preferences, "a"), New(Game, "z")))
	assert.Zero(t, Compare(New(Game, "Data"), New(Game, "Data")))
	assert.NotZero(t, Compare(New(Game, "data"), New(Game, "Data")))
}

func TestMatch(t *testing.T) {
	p := New(Game, "Data/NVSE/Plugins/JIP_NVSE.DLL")
	assert.True(t, p.Match("Data/NVSE/Plugins/*.dll"))
	assert.True(t, p.Match("data/**/*.dll"))
	assert.False(t, p.Match("Data/*.dll"))
}

func TestJoin(t *testing.T) {
	assert.Equal(t, "Data/NVSE/Plugins", Data.Join("NVSE", "Plugins").Path)
	assert.True(t, Data.Join("NVSE", "Plugins").Equal(NVSEPlugins))
}

func TestIsPluginExtension(t *testing.T) {
	assert.True(t, IsPluginExtension(".esm"))
	assert.True(t, IsPluginExtension(".esp"))
	assert.False(t, IsPluginExtension(".bsa"))
}

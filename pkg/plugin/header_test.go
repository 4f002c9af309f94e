package plugin_test

import (
	"bytes"
	stderrors "errors"
	"testing"
	"testing/iotest"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Punkwe1ght/modsync/pkg/errors"
	"github.com/Punkwe1ght/modsync/pkg/plugin"
	"github.com/Punkwe1ght/modsync/pkg/testutil"
)

func TestParse_Masters(t *testing.T) {
	data := testutil.PluginBytes(0x01, "FalloutNV.esm", "DeadMoney.esm")

	h, err := plugin.Parse(bytes.NewReader(data))
	require.NoError(t, err)
	assert.True(t, h.IsMaster())
	assert.Equal(t, []string{"FalloutNV.esm", "DeadMoney.esm"}, h.Masters)
}

func TestParse_NoMasters(t *testing.T) {
	h, err := plugin.Parse(bytes.NewReader(testutil.PluginBytes(0x00)))
	require.NoError(t, err)
	assert.False(t, h.IsMaster())
	assert.NotNil(t, h.Masters)
	assert.Empty(t, h.Masters)
}

func TestParse_IsMasterFollowsBitZero(t *testing.T) {
	for _, flags := range []uint32{0, 1, 2, 3, 0x80, 0x81, 0xFFFFFFFE, 0xFFFFFFFF} {
		h, err := plugin.Parse(bytes.NewReader(testutil.PluginBytes(flags, "A.esm")))
		require.NoError(t, err)
		assert.Equal(t, flags&1 == 1, h.IsMaster(), "flags %#x", flags)
		assert.Equal(t, flags, h.Flags)
	}
}

func TestParse_Unrecognized(t *testing.T) {
	tests := []struct {
		name string
		data []byte
	}{
		{"zeros", []byte{0, 0, 0, 0}},
		{"tes3", append([]byte("TES3"), make([]byte, 16)...)},
		{"lowercase", append([]byte("tes4"), make([]byte, 16)...)},
		{"empty", nil},
		{"short garbage", []byte("XY")},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, err := plugin.Parse(bytes.NewReader(tt.data))
			assert.Nil(t, h)
			assert.True(t, stderrors.Is(err, plugin.ErrUnrecognizedFormat))
			assert.True(t, errors.IsErrorCode(err, errors.ErrUnrecognizedFormat))
		})
	}
}

func TestParse_Truncated(t *testing.T) {
	full := testutil.PluginBytes(0, "FalloutNV.esm")

	tests := []struct {
		name string
		data []byte
	}{
		{"partial signature", []byte("TE")},
		{"partial prologue", full[:12]},
		{"partial sub-record header", full[:20+3]},
		{"partial master name", full[:20+18+6+4]},
		{"skip past end", testutil.Record(0, testutil.SubRecord("HEDR", make([]byte, 12)))[:20+6+5]},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, err := plugin.Parse(bytes.NewReader(tt.data))
			assert.Nil(t, h)
			assert.True(t, stderrors.Is(err, plugin.ErrTruncatedInput), "got %v", err)
		})
	}
}

func TestParse_WindowTolerance(t *testing.T) {
	t.Run("fewer than six bytes left in window", func(t *testing.T) {
		sub := append(testutil.SubRecord("MAST", []byte("A.esm\x00")), 1, 2, 3, 4, 5)
		h, err := plugin.Parse(bytes.NewReader(testutil.Record(0, sub)))
		require.NoError(t, err)
		assert.Equal(t, []string{"A.esm"}, h.Masters)
	})

	t.Run("data after window is ignored", func(t *testing.T) {
		data := append(testutil.PluginBytes(0, "A.esm"), []byte("GRUP garbage that follows")...)
		h, err := plugin.Parse(bytes.NewReader(data))
		require.NoError(t, err)
		assert.Equal(t, []string{"A.esm"}, h.Masters)
	})

	t.Run("empty and zero-length records", func(t *testing.T) {
		sub := append(testutil.SubRecord("MAST", []byte{0}), testutil.SubRecord("CNAM", nil)...)
		sub = append(sub, testutil.SubRecord("MAST", nil)...)
		sub = append(sub, testutil.SubRecord("MAST", []byte("B.esp\x00\x00"))...)
		h, err := plugin.Parse(bytes.NewReader(testutil.Record(0, sub)))
		require.NoError(t, err)
		assert.Equal(t, []string{"B.esp"}, h.Masters)
	})

	t.Run("one byte at a time", func(t *testing.T) {
		data := testutil.PluginBytes(1, "FalloutNV.esm", "HonestHearts.esm")
		h, err := plugin.Parse(iotest.OneByteReader(bytes.NewReader(data)))
		require.NoError(t, err)
		assert.Equal(t, []string{"FalloutNV.esm", "HonestHearts.esm"}, h.Masters)
	})
}

func TestParseFile(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "/game/Data/YUP.esp", testutil.PluginBytes(0, "FalloutNV.esm"), 0644))

	h, err := plugin.ParseFile(fs, "/game/Data/YUP.esp")
	require.NoError(t, err)
	assert.Equal(t, []string{"FalloutNV.esm"}, h.Masters)

	_, err = plugin.ParseFile(fs, "/game/Data/missing.esp")
	assert.True(t, errors.IsErrorCode(err, errors.ErrNotFound))
}

func TestInfo(t *testing.T) {
	h := &plugin.Header{Masters: []string{"FalloutNV.esm", "DeadMoney.esm"}, Flags: 0}
	info := plugin.NewInfo(`Data\DLC.esp`, h)

	assert.Equal(t, "DLC.esp", info.Name)
	assert.False(t, info.IsMaster)
	h.Masters[0] = "changed"
	assert.Equal(t, "FalloutNV.esm", info.Masters[0], "info owns its masters")

	missing := info.MissingMasters(func(name string) bool { return name == "FalloutNV.esm" })
	assert.Equal(t, []string{"DeadMoney.esm"}, missing)
}

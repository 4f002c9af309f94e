package modsync

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/adrg/xdg"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Punkwe1ght/modsync/pkg/datastore"
	"github.com/Punkwe1ght/modsync/pkg/errors"
)

type testEnv struct {
	game     string
	prefs    string
	appdata  string
	manifest string
}

func setupEnv(t *testing.T) testEnv {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(dir, "config"))
	t.Setenv("XDG_STATE_HOME", filepath.Join(dir, "state"))
	t.Setenv("XDG_DATA_HOME", filepath.Join(dir, "data"))
	xdg.Reload()
	t.Cleanup(xdg.Reload)

	env := testEnv{
		game:     filepath.Join(dir, "game"),
		prefs:    filepath.Join(dir, "prefs"),
		appdata:  filepath.Join(dir, "appdata"),
		manifest: filepath.Join(dir, "loadout.yaml"),
	}
	for _, d := range []string{filepath.Join(env.game, "Data"), env.prefs, env.appdata} {
		require.NoError(t, os.MkdirAll(d, 0755))
	}
	t.Setenv("MODSYNC_GAME_APPDATA", env.appdata)
	return env
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd := NewRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

const manifest = `id: main
mods:
  - id: 1
    name: Base
    files:
      - Data/Base.esm
  - id: 2
    name: Extra
    files:
      - Data/Extra.esp
  - id: 3
    name: Off
    enabled: false
    files:
      - Data/Off.esp
`

func TestVersionCommand(t *testing.T) {
	setupEnv(t)
	out, err := execute(t, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "modsync version")
}

func TestDiagnoseJSON(t *testing.T) {
	env := setupEnv(t)

	out, err := execute(t, "diagnose", "--format", "json",
		"--game", env.game, "--prefs", env.prefs,
		"--rule", "archive-invalidation")
	require.NoError(t, err)

	var records []map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(out), &records))
	require.Len(t, records, 1)
	assert.Equal(t, "modsync.fnv#1", records[0]["id"])
	assert.Equal(t, "Warning", records[0]["severity"])
}

func TestDiagnoseJSON_CleanScan(t *testing.T) {
	env := setupEnv(t)
	require.NoError(t, os.WriteFile(filepath.Join(env.prefs, "Fallout.ini"),
		[]byte("[Archive]\nbInvalidateOlderFiles=1\n"), 0644))

	out, err := execute(t, "diagnose", "--format", "json",
		"--game", env.game, "--prefs", env.prefs,
		"--rule", "archive-invalidation")
	require.NoError(t, err)
	assert.Equal(t, "[]", strings.TrimSpace(out))
}

func TestDiagnose_FailOn(t *testing.T) {
	env := setupEnv(t)

	tests := []struct {
		name     string
		failOn   string
		code     errors.ErrorCode
		severity string
	}{
		{name: "at threshold", failOn: "warning", code: errors.ErrHealthCheckFailed, severity: "Warning"},
		{name: "below threshold", failOn: "critical"},
		{name: "lowest threshold", failOn: "Suggestion", code: errors.ErrHealthCheckFailed, severity: "Warning"},
		{name: "unknown severity", failOn: "bogus", code: errors.ErrInvalidInput},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := execute(t, "diagnose", "--format", "json",
				"--game", env.game, "--prefs", env.prefs,
				"--rule", "archive-invalidation", "--fail-on", tt.failOn)
			if tt.code == "" {
				require.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Equal(t, tt.code, errors.GetErrorCode(err))
			if tt.severity != "" {
				details := errors.GetErrorDetails(err)
				assert.Equal(t, tt.severity, details["severity"])
				assert.Equal(t, 1, details["count"])
			}
		})
	}
}

func TestDiagnose_FailOnCleanScan(t *testing.T) {
	env := setupEnv(t)
	require.NoError(t, os.WriteFile(filepath.Join(env.prefs, "Fallout.ini"),
		[]byte("[Archive]\nbInvalidateOlderFiles=1\n"), 0644))

	_, err := execute(t, "diagnose", "--format", "json",
		"--game", env.game, "--prefs", env.prefs,
		"--rule", "archive-invalidation", "--fail-on", "suggestion")
	require.NoError(t, err)
}

func TestDiagnose_Errors(t *testing.T) {
	env := setupEnv(t)

	tests := []struct {
		name string
		args []string
		code errors.ErrorCode
	}{
		{"unknown format", []string{"diagnose", "--format", "xml"}, errors.ErrInvalidInput},
		{"unknown rule", []string{"diagnose", "--rule", "no-such-rule"}, errors.ErrUnknownRule},
		{"missing manifest", []string{"diagnose", "--manifest", filepath.Join(env.game, "nope.yaml")}, errors.ErrNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			args := append([]string{}, tt.args...)
			args = append(args, "--game", env.game, "--prefs", env.prefs)
			_, err := execute(t, args...)
			require.Error(t, err)
			assert.Equal(t, tt.code, errors.GetErrorCode(err))
		})
	}
}

func TestOrder(t *testing.T) {
	env := setupEnv(t)
	require.NoError(t, os.WriteFile(env.manifest, []byte(manifest), 0644))
	args := []string{"order", "--game", env.game, "--prefs", env.prefs, "--manifest", env.manifest}

	out, err := execute(t, args...)
	require.NoError(t, err)
	assert.Contains(t, out, "Base.esm")
	assert.Contains(t, out, MsgOrderPreview[1:])
	assert.NoFileExists(t, filepath.Join(env.appdata, "plugins.txt"))

	out, err = execute(t, append(args, "--write")...)
	require.NoError(t, err)
	assert.Contains(t, out, "Saved load order for loadout 'main' (2 plugins)")

	data, err := os.ReadFile(filepath.Join(env.appdata, "plugins.txt"))
	require.NoError(t, err)
	assert.Equal(t, datastore.PluginsFileHeader+"\r\nBase.esm\r\nExtra.esp\r\n", string(data))
	assert.FileExists(t, filepath.Join(xdg.DataHome, "modsync", "orders", "main.toml"))

	out, err = execute(t, args...)
	require.NoError(t, err)
	assert.Contains(t, out, MsgOrderUnchanged)
}

func TestOrder_NeedsManifest(t *testing.T) {
	env := setupEnv(t)
	_, err := execute(t, "order", "--game", env.game, "--prefs", env.prefs)
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidInput))
}

func TestExplain(t *testing.T) {
	env := setupEnv(t)

	out, err := execute(t, "explain", "modsync.fnv#12", "--game", env.game)
	require.NoError(t, err)
	assert.Contains(t, out, "Missing Master")

	_, err = execute(t, "explain", "modsync.fnv#99", "--game", env.game)
	assert.True(t, errors.IsErrorCode(err, errors.ErrNotFound))

	_, err = execute(t, "explain", "garbage", "--game", env.game)
	assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidInput))
}

func TestHeader(t *testing.T) {
	env := setupEnv(t)
	bad := filepath.Join(env.game, "Data", "Bad.esp")
	require.NoError(t, os.WriteFile(bad, []byte("nope"), 0644))

	out, err := execute(t, "header", bad, "--game", env.game)
	require.Error(t, err)
	assert.Contains(t, out, bad)
	assert.Contains(t, err.Error(), "1 of 1 files could not be read")
}

func TestRulesAndLocations(t *testing.T) {
	env := setupEnv(t)
	t.Setenv("MODSYNC_DIAGNOSTICS_DISABLED", "orphaned-archive")

	out, err := execute(t, "rules", "--game", env.game)
	require.NoError(t, err)
	assert.Contains(t, out, "unreadable-plugin")
	assert.Contains(t, out, MsgRuleDisabled)

	out, err = execute(t, "locations", "--game", env.game)
	require.NoError(t, err)
	assert.Contains(t, out, env.game)
	assert.Contains(t, out, MsgNotConfigured)
	for _, line := range strings.Split(out, "\n") {
		if strings.Contains(line, env.game) {
			assert.Contains(t, line, "yes")
		}
	}
}

func TestHelpTopics(t *testing.T) {
	setupEnv(t)
	out, err := execute(t, "help", "topics")
	require.NoError(t, err)
	for _, name := range []string{"configuration", "diagnostics", "load-order", "manifest"} {
		assert.Contains(t, out, "  "+name+"\n")
	}

	out, err = execute(t, "help", "manifest")
	require.NoError(t, err)
	assert.Contains(t, out, "precedence")
}

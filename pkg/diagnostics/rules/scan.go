package rules

import (
	"github.com/rs/zerolog"

	"github.com/Punkwe1ght/modsync/pkg/diagnostics"
	"github.com/Punkwe1ght/modsync/pkg/errors"
	"github.com/Punkwe1ght/modsync/pkg/gamepath"
	"github.com/Punkwe1ght/modsync/pkg/logging"
	"github.com/Punkwe1ght/modsync/pkg/synctree"
)

func ruleLogger(name string) zerolog.Logger {
	return logging.GetLogger("rules").With().Str("rule", name).Logger()
}

var (
	loadoutPlugins = synctree.All(
		synctree.LoadoutOnly,
		synctree.DirectChildOf(gamepath.Data),
		synctree.HasExtension(gamepath.ExtMaster, gamepath.ExtPlugin),
	)
	loadoutNvsePlugins = synctree.All(
		synctree.LoadoutOnly,
		synctree.InFolder(gamepath.NVSEPlugins),
		synctree.HasExtension(gamepath.ExtDLL),
	)
)

// pluginCount counts loadout .esm/.esp files directly inside Data.
func pluginCount(in *diagnostics.Input) int {
	return in.Tree.Count(loadoutPlugins)
}

// nvsePluginCount counts loadout .dll files under Data/NVSE/Plugins.
func nvsePluginCount(in *diagnostics.Input) int {
	return in.Tree.Count(loadoutNvsePlugins)
}

// present reports whether p is in the loadout or, failing that, on disk.
func present(in *diagnostics.Input, p gamepath.GamePath) bool {
	if in.Tree.InLoadout(p) {
		return true
	}
	return onDisk(in, p)
}

func onDisk(in *diagnostics.Input, p gamepath.GamePath) bool {
	return in.Installation != nil && in.Installation.Exists(p)
}

// readLines reads p, logging why it could not. ok is false for missing
// and unreadable files alike.
func readLines(in *diagnostics.Input, p gamepath.GamePath, logger zerolog.Logger) ([]string, bool) {
	if in.Installation == nil {
		return nil, false
	}
	lines, err := in.Installation.ReadLines(p)
	if err != nil {
		if errors.IsErrorCode(err, errors.ErrMissingConfig) {
			logger.Debug().Str("path", p.String()).Msg("Config file not present")
		} else {
			logger.Warn().Err(err).Str("path", p.String()).Msg("Could not read config file")
		}
		return nil, false
	}
	logger.Debug().Str("path", p.String()).Int("lines", len(lines)).Msg("Scanned config file")
	return lines, true
}

package loadout

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"

	"github.com/Punkwe1ght/modsync/pkg/classify"
	"github.com/Punkwe1ght/modsync/pkg/diagnostics"
	"github.com/Punkwe1ght/modsync/pkg/gamepath"
	"github.com/Punkwe1ght/modsync/pkg/installation"
	"github.com/Punkwe1ght/modsync/pkg/loadorder"
	"github.com/Punkwe1ght/modsync/pkg/logging"
	"github.com/Punkwe1ght/modsync/pkg/synctree"
)

// Options tunes Build.
type Options struct {
	// FullBackup tracks every game file on disk instead of only Data and
	// NVSE.
	FullBackup bool
}

// Result is everything derived from one manifest and installation.
type Result struct {
	ID         string
	Tree       *synctree.Tree
	Plugins    []loadorder.Item
	Priorities loadorder.Priorities
	Tweaks     []diagnostics.IniTweak
	NvseItems  []diagnostics.NvseItem
}

type winner struct {
	path gamepath.GamePath
	mod  *Mod
}

// Build resolves file conflicts between enabled mods, marks what exists on
// disk and classifies the winning files.
func Build(m *Manifest, inst *installation.Installation, opts Options) *Result {
	logger := logging.GetLogger("loadout").With().Str("loadout", m.ID).Logger()
	res := &Result{ID: m.ID, Priorities: loadorder.Priorities{}}

	winners := make(map[gamepath.Key]winner)
	var order []gamepath.Key
	for i := range m.Mods {
		mod := &m.Mods[i]
		if mod.Priority != nil {
			res.Priorities[loadorder.GroupID(mod.ID)] = *mod.Priority
		}

		paths := make([]gamepath.GamePath, 0, len(mod.Files))
		for _, f := range mod.Files {
			p := f.GamePath()
			paths = append(paths, p)

			target := f.TweakOf
			if target == "" {
				target, _ = classify.TweakTarget(p)
			}
			if target != "" {
				res.Tweaks = append(res.Tweaks, diagnostics.IniTweak{
					Path: p, Target: target, Owner: mod.Name, Enabled: mod.IsEnabled(),
				})
			}

			if !mod.IsEnabled() {
				continue
			}
			if prev, ok := winners[p.Key()]; ok {
				logger.Debug().Str("path", p.String()).Str("loser", prev.mod.Name).Str("winner", mod.Name).Msg("Conflicting file")
			} else {
				order = append(order, p.Key())
			}
			winners[p.Key()] = winner{path: p, mod: mod}
		}

		classified := classify.Classify(paths)
		if classified.IsNvseMod() {
			res.NvseItems = append(res.NvseItems, diagnostics.NvseItem{
				Name: mod.Name, Enabled: mod.IsEnabled(), RequiredVersion: mod.NvseVersion,
			})
		}
	}

	b := synctree.NewBuilder()
	for _, key := range order {
		w := winners[key]
		b.Add(w.path, synctree.Node{HaveLoadout: true, HaveDisk: inst.Exists(w.path)})
		if w.path.IsDirectChildOf(gamepath.Data) && gamepath.IsPluginExtension(w.path.Extension()) {
			res.Plugins = append(res.Plugins, loadorder.Item{
				Key:     w.path.FileName(),
				Enabled: true,
				Owner:   w.mod.Name,
				Group:   loadorder.GroupID(w.mod.ID),
			})
		}
	}
	for _, p := range ScanDisk(inst, opts.FullBackup) {
		b.Add(p, synctree.Node{HaveDisk: true})
	}
	res.Tree = b.Build()

	logger.Debug().
		Int("files", len(order)).
		Int("plugins", len(res.Plugins)).
		Int("tweaks", len(res.Tweaks)).
		Int("nvse", len(res.NvseItems)).
		Msg("Built loadout")
	return res
}

// LoadoutData is the diagnostics view of r.
func (r *Result) LoadoutData() diagnostics.LoadoutData {
	keys := make([]string, 0, len(r.Plugins))
	for _, it := range r.Plugins {
		keys = append(keys, it.Key)
	}
	return diagnostics.LoadoutData{
		Plugins:   keys,
		Tweaks:    r.Tweaks,
		NvseItems: r.NvseItems,
	}
}

// Input assembles a diagnostics input for inst.
func (r *Result) Input(inst *installation.Installation) *diagnostics.Input {
	return &diagnostics.Input{Installation: inst, Tree: r.Tree, Loadout: r.LoadoutData()}
}

// ScanDisk lists the tracked files on disk in the Game and Preferences
// locations. Paths left out of the vanilla backup are not tracked unless
// fullBackup is set.
func ScanDisk(inst *installation.Installation, fullBackup bool) []gamepath.GamePath {
	logger := logging.GetLogger("loadout")
	var out []gamepath.GamePath
	for _, loc := range []gamepath.LocationID{gamepath.Game, gamepath.Preferences} {
		root, ok := inst.Resolve(loc)
		if !ok {
			continue
		}
		err := afero.Walk(inst.FS, root, func(path string, info os.FileInfo, err error) error {
			if err != nil {
				logger.Debug().Err(err).Str("path", path).Msg("Skipping unreadable path")
				return nil
			}
			rel, relErr := filepath.Rel(root, path)
			if relErr != nil || rel == "." {
				return nil
			}
			p := gamepath.New(loc, filepath.ToSlash(rel))
			if info.IsDir() {
				if !fullBackup && loc == gamepath.Game && !strings.Contains(p.Path, "/") && !tracksFolder(p) {
					return filepath.SkipDir
				}
				return nil
			}
			if !installation.IsIgnoredBackupPath(p, fullBackup) {
				out = append(out, p)
			}
			return nil
		})
		if err != nil {
			logger.Warn().Err(err).Str("root", root).Msg("Disk scan incomplete")
		}
	}
	return out
}

func tracksFolder(dir gamepath.GamePath) bool {
	sample := dir.Join("x")
	return !installation.IsIgnoredBackupPath(sample, false)
}

package rules

import (
	"context"
	"iter"
	"strings"

	"github.com/rs/zerolog"

	"github.com/Punkwe1ght/modsync/pkg/diagnostics"
	"github.com/Punkwe1ght/modsync/pkg/gamepath"
	"github.com/Punkwe1ght/modsync/pkg/ini"
	"github.com/Punkwe1ght/modsync/pkg/synctree"
)

// ArchiveListKey names the explicit archive allow-list.
const ArchiveListKey = "SArchiveList"

// ArchiveListSources are searched in order; the first file that defines
// the key wins.
var ArchiveListSources = []gamepath.GamePath{
	gamepath.FalloutCustomINI,
	gamepath.FalloutINI,
	gamepath.DefaultINI,
}

// alwaysLoadedArchive is loaded by the engine regardless of plugins.
const alwaysLoadedArchive = "update"

// orphanedArchive flags .bsa files in Data that nothing will load. An
// archive loads when its stem equals a plugin stem, when it is listed in
// SArchiveList, when its stem starts with the stem of a .nam marker, or
// when it is Update.bsa.
type orphanedArchive struct{}

func (r *orphanedArchive) Name() string { return "orphaned-archive" }

func (r *orphanedArchive) Templates() []diagnostics.Template {
	return []diagnostics.Template{OrphanedArchive}
}

func (r *orphanedArchive) Diagnose(ctx context.Context, in *diagnostics.Input) iter.Seq[diagnostics.Diagnostic] {
	return func(yield func(diagnostics.Diagnostic) bool) {
		if ctx.Err() != nil {
			return
		}
		logger := ruleLogger(r.Name())

		pluginStems := make(map[string]bool)
		var namStems []string
		var archives []gamepath.GamePath
		in.Tree.Range(func(p gamepath.GamePath, n synctree.Node) bool {
			if !n.HaveLoadout || !p.IsDirectChildOf(gamepath.Data) {
				return true
			}
			stem := strings.ToLower(p.Stem())
			switch ext := p.Extension(); {
			case gamepath.IsPluginExtension(ext):
				pluginStems[stem] = true
			case ext == gamepath.ExtNam:
				namStems = append(namStems, stem)
			case ext == gamepath.ExtArchive:
				archives = append(archives, p)
			}
			return true
		})
		if len(archives) == 0 {
			return
		}

		listed := readArchiveList(in, logger)
		for _, p := range archives {
			if ctx.Err() != nil {
				return
			}
			stem := strings.ToLower(p.Stem())
			switch {
			case pluginStems[stem]:
			case listed[strings.ToLower(p.FileName())]:
			case matchesNam(stem, namStems):
			case stem == alwaysLoadedArchive:
			default:
				if !yield(OrphanedArchive.New(diagnostics.With("BsaName", p.FileName()))) {
					return
				}
			}
		}
	}
}

// matchesNam is a prefix test: "deadmoney - main" matches "deadmoney".
func matchesNam(stem string, namStems []string) bool {
	for _, nam := range namStems {
		if strings.HasPrefix(stem, nam) {
			return true
		}
	}
	return false
}

// readArchiveList returns the lower-cased archive names of the first
// SArchiveList found. Unreadable files are skipped.
func readArchiveList(in *diagnostics.Input, logger zerolog.Logger) map[string]bool {
	listed := make(map[string]bool)
	for _, p := range ArchiveListSources {
		lines, ok := readLines(in, p, logger)
		if !ok {
			continue
		}
		value, found := ini.Lookup(lines, ArchiveListKey)
		if !found {
			continue
		}
		for _, name := range ini.SplitList(value) {
			listed[strings.ToLower(name)] = true
		}
		break
	}
	return listed
}

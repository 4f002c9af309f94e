package rules

import (
	"context"
	"iter"
	"strings"

	"github.com/Punkwe1ght/modsync/pkg/diagnostics"
	"github.com/Punkwe1ght/modsync/pkg/errors"
	"github.com/Punkwe1ght/modsync/pkg/gamepath"
	"github.com/Punkwe1ght/modsync/pkg/plugin"
	"github.com/Punkwe1ght/modsync/pkg/synctree"
)

type parsedPlugin struct {
	path   gamepath.GamePath
	header *plugin.Header
	err    error
}

// parsePlugins yields the header of every loadout plugin that exists on
// disk, in tree order.
func parsePlugins(ctx context.Context, in *diagnostics.Input) iter.Seq[parsedPlugin] {
	return func(yield func(parsedPlugin) bool) {
		if in.Installation == nil {
			return
		}
		for _, p := range in.Tree.Filter(loadoutPlugins) {
			if ctx.Err() != nil {
				return
			}
			abs, err := in.Installation.Locate(p)
			if err != nil || !in.Installation.Exists(p) {
				continue
			}
			h, err := plugin.ParseFile(in.Installation.FS, abs)
			if !yield(parsedPlugin{path: p, header: h, err: err}) {
				return
			}
		}
	}
}

// availablePlugins is the case-folded set of plugin file names in Data,
// in the loadout or on disk.
func availablePlugins(in *diagnostics.Input) map[string]bool {
	names := make(map[string]bool)
	in.Tree.Range(func(p gamepath.GamePath, n synctree.Node) bool {
		if (n.HaveLoadout || n.HaveDisk) && p.IsDirectChildOf(gamepath.Data) && gamepath.IsPluginExtension(p.Extension()) {
			names[strings.ToLower(p.FileName())] = true
		}
		return true
	})
	return names
}

// missingMaster reports each master a loadout plugin declares that is
// neither in the loadout nor on disk.
type missingMaster struct{}

func (r *missingMaster) Name() string { return "missing-master" }

func (r *missingMaster) Templates() []diagnostics.Template {
	return []diagnostics.Template{MissingMaster}
}

func (r *missingMaster) Diagnose(ctx context.Context, in *diagnostics.Input) iter.Seq[diagnostics.Diagnostic] {
	return func(yield func(diagnostics.Diagnostic) bool) {
		if ctx.Err() != nil {
			return
		}
		available := availablePlugins(in)
		isPresent := func(name string) bool {
			return available[strings.ToLower(name)] || onDisk(in, gamepath.Data.Join(name))
		}

		for pp := range parsePlugins(ctx, in) {
			if pp.err != nil {
				continue
			}
			info := plugin.NewInfo(pp.path.FileName(), pp.header)
			for _, master := range info.MissingMasters(isPresent) {
				if !yield(MissingMaster.New(
					diagnostics.With("PluginName", info.Name),
					diagnostics.With("MasterName", master),
				)) {
					return
				}
			}
		}
	}
}

// unreadablePlugin reports loadout plugins whose header cannot be parsed.
type unreadablePlugin struct{}

func (r *unreadablePlugin) Name() string { return "unreadable-plugin" }

func (r *unreadablePlugin) Templates() []diagnostics.Template {
	return []diagnostics.Template{UnreadablePlugin}
}

func (r *unreadablePlugin) Diagnose(ctx context.Context, in *diagnostics.Input) iter.Seq[diagnostics.Diagnostic] {
	return func(yield func(diagnostics.Diagnostic) bool) {
		if ctx.Err() != nil {
			return
		}
		logger := ruleLogger(r.Name())
		for pp := range parsePlugins(ctx, in) {
			if pp.err == nil {
				continue
			}
			logger.Debug().Err(pp.err).Str("path", pp.path.String()).Msg("Plugin header not parsed")
			if !yield(UnreadablePlugin.New(
				diagnostics.With("PluginName", pp.path.FileName()),
				diagnostics.With("Reason", reason(pp.err)),
			)) {
				return
			}
		}
	}
}

func reason(err error) string {
	switch errors.GetErrorCode(err) {
	case errors.ErrUnrecognizedFormat:
		return "not a TES4 plugin"
	case errors.ErrTruncatedInput:
		return "the header is truncated"
	default:
		return "the file could not be opened"
	}
}

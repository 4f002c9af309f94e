package rules

import (
	"context"
	"iter"
	"strings"

	"github.com/Punkwe1ght/modsync/pkg/diagnostics"
	"github.com/Punkwe1ght/modsync/pkg/ini"
)

// iniConflict reports, per target INI touched by at least two enabled
// tweaks, how many keys receive more than one distinct value. Keys and
// values compare case-insensitively.
type iniConflict struct{}

func (r *iniConflict) Name() string { return "ini-conflict" }

func (r *iniConflict) Templates() []diagnostics.Template {
	return []diagnostics.Template{IniConflict}
}

type tweakGroup struct {
	target string
	tweaks []diagnostics.IniTweak
}

func (r *iniConflict) Diagnose(ctx context.Context, in *diagnostics.Input) iter.Seq[diagnostics.Diagnostic] {
	return func(yield func(diagnostics.Diagnostic) bool) {
		if ctx.Err() != nil {
			return
		}
		logger := ruleLogger(r.Name())

		for _, group := range groupTweaks(in.Loadout.Tweaks) {
			if len(group.tweaks) < 2 {
				continue
			}

			values := make(map[string]map[string]bool)
			for _, tweak := range group.tweaks {
				if ctx.Err() != nil {
					return
				}
				lines, ok := readLines(in, tweak.Path, logger)
				if !ok {
					continue
				}
				for _, pair := range ini.Scan(lines) {
					key := strings.ToLower(pair.Key)
					if values[key] == nil {
						values[key] = make(map[string]bool)
					}
					values[key][strings.ToLower(pair.Value)] = true
				}
			}

			conflicts := 0
			for _, set := range values {
				if len(set) > 1 {
					conflicts++
				}
			}
			if conflicts == 0 {
				continue
			}
			if !yield(IniConflict.New(
				diagnostics.With("ConflictCount", conflicts),
				diagnostics.With("TargetIniFile", group.target),
			)) {
				return
			}
		}
	}
}

// groupTweaks groups enabled tweaks by case-folded target in first-seen
// order. The group keeps the first spelling of the target name.
func groupTweaks(tweaks []diagnostics.IniTweak) []*tweakGroup {
	var groups []*tweakGroup
	index := make(map[string]*tweakGroup)
	for _, t := range tweaks {
		if !t.Enabled || t.Target == "" {
			continue
		}
		key := strings.ToLower(t.Target)
		g, ok := index[key]
		if !ok {
			g = &tweakGroup{target: t.Target}
			index[key] = g
			groups = append(groups, g)
		}
		g.tweaks = append(g.tweaks, t)
	}
	return groups
}

package rules

import (
	"context"
	"iter"

	"github.com/Punkwe1ght/modsync/pkg/config"
	"github.com/Punkwe1ght/modsync/pkg/diagnostics"
	"github.com/Punkwe1ght/modsync/pkg/gamepath"
)

type modLimitFix struct {
	limits config.Limits
}

func (r *modLimitFix) Name() string { return "mod-limit-fix" }

func (r *modLimitFix) Templates() []diagnostics.Template {
	return []diagnostics.Template{ModLimitFixMissing}
}

func (r *modLimitFix) Diagnose(ctx context.Context, in *diagnostics.Input) iter.Seq[diagnostics.Diagnostic] {
	return func(yield func(diagnostics.Diagnostic) bool) {
		if ctx.Err() != nil {
			return
		}
		count := pluginCount(in)
		if count <= r.limits.VanillaFunctional || present(in, gamepath.ModLimitFix) {
			return
		}
		yield(ModLimitFixMissing.New(
			diagnostics.With("PluginCount", count),
			diagnostics.With("FunctionalLimit", r.limits.VanillaFunctional),
		))
	}
}

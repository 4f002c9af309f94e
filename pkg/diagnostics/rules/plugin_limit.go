package rules

import (
	"context"
	"iter"

	"github.com/Punkwe1ght/modsync/pkg/config"
	"github.com/Punkwe1ght/modsync/pkg/diagnostics"
)

// pluginLimit is the two-tier count check. Only the more severe tier is
// reported when both are crossed.
type pluginLimit struct {
	limits config.Limits
}

func (r *pluginLimit) Name() string { return "plugin-limit" }

func (r *pluginLimit) Templates() []diagnostics.Template {
	return []diagnostics.Template{PluginLimitWarning, PluginLimitExceeded}
}

func (r *pluginLimit) Diagnose(ctx context.Context, in *diagnostics.Input) iter.Seq[diagnostics.Diagnostic] {
	return func(yield func(diagnostics.Diagnostic) bool) {
		if ctx.Err() != nil {
			return
		}
		count := pluginCount(in)
		params := []diagnostics.Param{
			diagnostics.With("PluginCount", count),
			diagnostics.With("HardLimit", r.limits.PluginHard),
			diagnostics.With("FunctionalLimit", r.limits.VanillaFunctional),
		}
		switch {
		case count >= r.limits.PluginHard:
			yield(PluginLimitExceeded.New(params...))
		case count >= r.limits.PluginSoft:
			yield(PluginLimitWarning.New(params...))
		}
	}
}

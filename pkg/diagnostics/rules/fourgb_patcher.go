package rules

import (
	"context"
	"iter"

	"github.com/Punkwe1ght/modsync/pkg/diagnostics"
	"github.com/Punkwe1ght/modsync/pkg/gamepath"
)

type fourGbPatcher struct{}

func (r *fourGbPatcher) Name() string { return "fourgb-patcher" }

func (r *fourGbPatcher) Templates() []diagnostics.Template {
	return []diagnostics.Template{FourGbPatcherNotDetected}
}

func (r *fourGbPatcher) Diagnose(ctx context.Context, in *diagnostics.Input) iter.Seq[diagnostics.Diagnostic] {
	return func(yield func(diagnostics.Diagnostic) bool) {
		if ctx.Err() != nil || present(in, gamepath.FourGBBackup) {
			return
		}
		yield(FourGbPatcherNotDetected.New())
	}
}

package rules

import (
	"context"
	"iter"

	"github.com/Punkwe1ght/modsync/pkg/diagnostics"
	"github.com/Punkwe1ght/modsync/pkg/gamepath"
)

type xnvseMissing struct{}

func (r *xnvseMissing) Name() string { return "xnvse-missing" }

func (r *xnvseMissing) Templates() []diagnostics.Template {
	return []diagnostics.Template{XnvseMissing}
}

func (r *xnvseMissing) Diagnose(ctx context.Context, in *diagnostics.Input) iter.Seq[diagnostics.Diagnostic] {
	return func(yield func(diagnostics.Diagnostic) bool) {
		if ctx.Err() != nil {
			return
		}
		count := nvsePluginCount(in)
		if count == 0 || present(in, gamepath.NVSELoader) {
			return
		}
		yield(XnvseMissing.New(diagnostics.With("NvseModCount", count)))
	}
}

package rules

import (
	"context"
	"iter"

	"github.com/Punkwe1ght/modsync/pkg/diagnostics"
	"github.com/Punkwe1ght/modsync/pkg/gamepath"
	"github.com/Punkwe1ght/modsync/pkg/ini"
)

// InvalidationKey is the INI key that enables archive invalidation.
const InvalidationKey = "bInvalidateOlderFiles"

// InvalidationCandidates are checked in order; the first file enabling
// the key wins.
var InvalidationCandidates = []gamepath.GamePath{
	gamepath.FalloutCustomINI,
	gamepath.FalloutINI,
}

type archiveInvalidation struct {
	enabled bool
}

func (r *archiveInvalidation) Name() string { return "archive-invalidation" }

func (r *archiveInvalidation) Templates() []diagnostics.Template {
	return []diagnostics.Template{ArchiveInvalidationDisabled}
}

func (r *archiveInvalidation) Diagnose(ctx context.Context, in *diagnostics.Input) iter.Seq[diagnostics.Diagnostic] {
	return func(yield func(diagnostics.Diagnostic) bool) {
		if !r.enabled || ctx.Err() != nil {
			return
		}
		logger := ruleLogger(r.Name())
		for _, p := range InvalidationCandidates {
			if ctx.Err() != nil {
				return
			}
			if lines, ok := readLines(in, p, logger); ok && ini.HasValue(lines, InvalidationKey, "1") {
				return
			}
		}
		yield(ArchiveInvalidationDisabled.New())
	}
}

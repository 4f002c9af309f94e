package rules

import (
	"context"
	"iter"
	"time"

	"github.com/Punkwe1ght/modsync/pkg/diagnostics"
	"github.com/Punkwe1ght/modsync/pkg/gamepath"
)

// ProtontricksTool is the executable looked up by the Proton rule.
const ProtontricksTool = "protontricks"

func onLinux(in *diagnostics.Input) bool {
	return in.Installation != nil && in.Installation.IsLinux()
}

// protonXnvse warns on Linux when NVSE plugins are present and
// protontricks cannot be found. The lookup is bounded by timeout; a
// timed out or failed lookup counts as not found.
type protonXnvse struct {
	detector DependencyDetector
	timeout  time.Duration
}

func (r *protonXnvse) Name() string { return "proton-xnvse" }

func (r *protonXnvse) Templates() []diagnostics.Template {
	return []diagnostics.Template{ProtontricksRequired}
}

func (r *protonXnvse) Diagnose(ctx context.Context, in *diagnostics.Input) iter.Seq[diagnostics.Diagnostic] {
	return func(yield func(diagnostics.Diagnostic) bool) {
		if ctx.Err() != nil || !onLinux(in) || r.detector == nil {
			return
		}
		count := nvsePluginCount(in)
		if count == 0 || r.available(ctx) {
			return
		}
		if ctx.Err() != nil {
			return
		}
		yield(ProtontricksRequired.New(diagnostics.With("NvseModCount", count)))
	}
}

func (r *protonXnvse) available(ctx context.Context) bool {
	logger := ruleLogger(r.Name())
	timeout := r.timeout
	if timeout <= 0 {
		timeout = 2 * time.Second
	}
	qctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	type answer struct {
		ok  bool
		err error
	}
	done := make(chan answer, 1)
	go func() {
		ok, err := r.detector.Available(qctx, ProtontricksTool)
		done <- answer{ok, err}
	}()

	select {
	case a := <-done:
		if a.err != nil {
			logger.Warn().Err(a.err).Msg("Could not determine whether protontricks is installed")
		}
		return a.ok
	case <-qctx.Done():
		logger.Warn().Err(qctx.Err()).Dur("timeout", timeout).Msg("Protontricks lookup did not finish")
		return false
	}
}

// protonFourGb warns on Linux when the 4GB patcher has been applied.
type protonFourGb struct{}

func (r *protonFourGb) Name() string { return "proton-fourgb" }

func (r *protonFourGb) Templates() []diagnostics.Template {
	return []diagnostics.Template{FourGbUnderProton}
}

func (r *protonFourGb) Diagnose(ctx context.Context, in *diagnostics.Input) iter.Seq[diagnostics.Diagnostic] {
	return func(yield func(diagnostics.Diagnostic) bool) {
		if ctx.Err() != nil || !onLinux(in) || !present(in, gamepath.FourGBBackup) {
			return
		}
		yield(FourGbUnderProton.New())
	}
}

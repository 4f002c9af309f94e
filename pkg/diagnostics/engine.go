package diagnostics

import (
	"context"
	"fmt"
	"runtime"
	"slices"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/Punkwe1ght/modsync/pkg/errors"
	"github.com/Punkwe1ght/modsync/pkg/logging"
)

// RuleRun reports how one rule fared during a scan.
type RuleRun struct {
	Rule      string
	Count     int
	Duration  time.Duration
	Cancelled bool
	Panic     string
}

// Result is the aggregated outcome of a scan, ordered by rule
// registration order and then by emission order within each rule.
type Result struct {
	Diagnostics []Diagnostic
	Runs        []RuleRun
}

// Engine runs a set of emitters concurrently.
type Engine struct {
	registry    *Registry
	only        []string
	disabled    map[string]bool
	concurrency int
	logger      zerolog.Logger
}

type Option func(*Engine)

// WithOnly restricts the scan to the named rules.
func WithOnly(names ...string) Option {
	return func(e *Engine) { e.only = append(e.only, names...) }
}

// WithDisabled skips the named rules.
func WithDisabled(names ...string) Option {
	return func(e *Engine) {
		for _, n := range names {
			e.disabled[n] = true
		}
	}
}

// WithConcurrency bounds the number of rules running at once.
func WithConcurrency(n int) Option {
	return func(e *Engine) { e.concurrency = n }
}

// NewEngine validates the selection options against the registry.
func NewEngine(reg *Registry, opts ...Option) (*Engine, error) {
	e := &Engine{
		registry:    reg,
		disabled:    make(map[string]bool),
		concurrency: runtime.GOMAXPROCS(0),
		logger:      logging.GetLogger("diagnostics.engine"),
	}
	for _, opt := range opts {
		opt(e)
	}
	for _, name := range e.only {
		if _, err := reg.Get(name); err != nil {
			return nil, err
		}
	}
	for name := range e.disabled {
		if !reg.Has(name) {
			e.logger.Warn().Str("rule", name).Msg("Disabled rule is not registered")
		}
	}
	if e.concurrency < 1 {
		e.concurrency = 1
	}
	return e, nil
}

// Selected returns the emitters a scan will run, in registration order.
func (e *Engine) Selected() []Emitter {
	var out []Emitter
	for _, em := range e.registry.Emitters() {
		if e.disabled[em.Name()] {
			continue
		}
		if len(e.only) > 0 && !slices.Contains(e.only, em.Name()) {
			continue
		}
		out = append(out, em)
	}
	return out
}

// Scan runs every selected emitter over in. A panicking rule is logged and
// contributes nothing. Cancellation stops rules early; what they produced
// before stopping is kept.
func (e *Engine) Scan(ctx context.Context, in *Input) Result {
	done := logging.LogOperationStart(e.logger, "scan")
	defer done()

	emitters := e.Selected()
	e.logger.Debug().Int("registered", e.registry.Len()).Int("selected", len(emitters)).Msg("Scan starting")
	found := make([][]Diagnostic, len(emitters))
	runs := make([]RuleRun, len(emitters))

	var g errgroup.Group
	g.SetLimit(e.concurrency)
	for i, em := range emitters {
		g.Go(func() error {
			found[i], runs[i] = e.run(ctx, em, in)
			return nil
		})
	}
	_ = g.Wait()

	var res Result
	res.Runs = runs
	for _, diags := range found {
		res.Diagnostics = append(res.Diagnostics, diags...)
	}
	return res
}

func (e *Engine) run(ctx context.Context, em Emitter, in *Input) (diags []Diagnostic, run RuleRun) {
	logger := e.logger.With().Str("rule", em.Name()).Logger()
	run.Rule = em.Name()
	start := time.Now()

	defer func() {
		run.Duration = time.Since(start)
		if r := recover(); r != nil {
			run.Panic = fmt.Sprint(r)
			diags = nil
			logger.Error().
				Err(errors.Newf(errors.ErrInternal, "rule panicked: %v", r)).
				Msg("Rule failed, its diagnostics are dropped")
		}
		run.Count = len(diags)
	}()

	if ctx.Err() != nil {
		run.Cancelled = true
		return nil, run
	}

	for d := range em.Diagnose(ctx, in) {
		diags = append(diags, d)
		if ctx.Err() != nil {
			break
		}
	}
	run.Cancelled = ctx.Err() != nil
	logger.Debug().Int("count", len(diags)).Bool("cancelled", run.Cancelled).Msg("Rule finished")
	return diags, run
}

// Dedupe drops diagnostics whose id and rendered summary repeat an
// earlier one.
func Dedupe(diags []Diagnostic) []Diagnostic {
	type key struct {
		id      ID
		summary string
	}
	seen := make(map[key]bool, len(diags))
	out := make([]Diagnostic, 0, len(diags))
	for _, d := range diags {
		k := key{d.ID, d.FormatSummary()}
		if seen[k] {
			continue
		}
		seen[k] = true
		out = append(out, d)
	}
	return out
}

// Highest returns the worst severity present, and false when diags is empty.
func Highest(diags []Diagnostic) (Severity, bool) {
	if len(diags) == 0 {
		return Suggestion, false
	}
	worst := diags[0].Severity
	for _, d := range diags[1:] {
		if d.Severity > worst {
			worst = d.Severity
		}
	}
	return worst, true
}

// CountBySeverity tallies diagnostics per severity.
func CountBySeverity(diags []Diagnostic) map[Severity]int {
	counts := make(map[Severity]int)
	for _, d := range diags {
		counts[d.Severity]++
	}
	return counts
}

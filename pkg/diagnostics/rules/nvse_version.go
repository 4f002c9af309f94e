package rules

import (
	"context"
	"iter"

	"github.com/hashicorp/go-version"

	"github.com/Punkwe1ght/modsync/pkg/diagnostics"
	"github.com/Punkwe1ght/modsync/pkg/gamepath"
)

const unknownVersion = "unknown"

// nvseVersion warns for each enabled NVSE item whose required xNVSE
// version is not satisfied. It only runs when xNVSE is present; when the
// installed version cannot be determined every item with a requirement is
// reported.
type nvseVersion struct {
	detector VersionDetector
}

func (r *nvseVersion) Name() string { return "nvse-version" }

func (r *nvseVersion) Templates() []diagnostics.Template {
	return []diagnostics.Template{NvseVersionMismatch}
}

func (r *nvseVersion) Diagnose(ctx context.Context, in *diagnostics.Input) iter.Seq[diagnostics.Diagnostic] {
	return func(yield func(diagnostics.Diagnostic) bool) {
		if ctx.Err() != nil {
			return
		}
		// xnvse-missing covers the absent loader.
		if !present(in, gamepath.NVSELoader) {
			return
		}
		logger := ruleLogger(r.Name())

		var installedRaw string
		var installed *version.Version
		if r.detector != nil {
			if raw, ok := r.detector.InstalledVersion(ctx, in.Installation); ok {
				installedRaw = raw
				v, err := version.NewVersion(raw)
				if err != nil {
					logger.Warn().Err(err).Str("version", raw).Msg("Unparsable xNVSE version")
				}
				installed = v
			}
		}
		if installedRaw == "" {
			installedRaw = unknownVersion
		}

		for _, item := range in.Loadout.NvseItems {
			if ctx.Err() != nil {
				return
			}
			if !item.Enabled || item.RequiredVersion == "" {
				continue
			}
			required, err := version.NewVersion(item.RequiredVersion)
			if err == nil && installed != nil && !installed.LessThan(required) {
				continue
			}
			if !yield(NvseVersionMismatch.New(
				diagnostics.With("PluginName", item.Name),
				diagnostics.With("RequiredVersion", item.RequiredVersion),
				diagnostics.With("InstalledVersion", installedRaw),
			)) {
				return
			}
		}
	}
}

package rules

import (
	"time"

	"github.com/Punkwe1ght/modsync/pkg/config"
	"github.com/Punkwe1ght/modsync/pkg/diagnostics"
)

// Options configures the rule set.
type Options struct {
	Limits                   config.Limits
	CheckArchiveInvalidation bool
	// QueryTimeout bounds each external query a rule makes.
	QueryTimeout time.Duration
	Versions     VersionDetector
	Dependencies DependencyDetector
}

// DefaultOptions mirrors the embedded configuration defaults.
func DefaultOptions() Options {
	return Options{
		Limits: config.Limits{
			PluginSoft:        130,
			PluginHard:        255,
			VanillaFunctional: 139,
		},
		CheckArchiveInvalidation: true,
		QueryTimeout:             2 * time.Second,
		Versions:                 SidecarVersionDetector{},
		Dependencies:             NewPathDetector(),
	}
}

// OptionsFromConfig derives rule options from the loaded configuration.
func OptionsFromConfig(cfg *config.Config) Options {
	opts := DefaultOptions()
	opts.Limits = cfg.Limits
	opts.CheckArchiveInvalidation = cfg.Diagnostics.CheckArchiveInvalidation
	opts.QueryTimeout = cfg.Diagnostics.RuleTimeout
	return opts
}

// All returns every rule in diagnostic number order.
func All(opts Options) []diagnostics.Emitter {
	return []diagnostics.Emitter{
		&archiveInvalidation{enabled: opts.CheckArchiveInvalidation},
		&fourGbPatcher{},
		&pluginLimit{limits: opts.Limits},
		&modLimitFix{limits: opts.Limits},
		&xnvseMissing{},
		&orphanedArchive{},
		&iniConflict{},
		&nvseVersion{detector: opts.Versions},
		&protonXnvse{detector: opts.Dependencies, timeout: opts.QueryTimeout},
		&protonFourGb{},
		&missingMaster{},
		&unreadablePlugin{},
	}
}

// Register adds every rule to reg.
func Register(reg *diagnostics.Registry, opts Options) error {
	for _, e := range All(opts) {
		if err := reg.Register(e); err != nil {
			return err
		}
	}
	return nil
}

// NewRegistry returns a registry holding the full rule set.
func NewRegistry(opts Options) (*diagnostics.Registry, error) {
	reg := diagnostics.NewRegistry()
	if err := Register(reg, opts); err != nil {
		return nil, err
	}
	return reg, nil
}

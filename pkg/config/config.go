package config

import (
	"path/filepath"
	"time"

	"github.com/adrg/xdg"

	"github.com/Punkwe1ght/modsync/pkg/errors"
)

// Config is the fully resolved modsync configuration.
type Config struct {
	Game        Game        `koanf:"game"`
	Loadout     Loadout     `koanf:"loadout"`
	Store       Store       `koanf:"store"`
	Diagnostics Diagnostics `koanf:"diagnostics"`
	Limits      Limits      `koanf:"limits"`
	Backup      Backup      `koanf:"backup"`
}

// Game holds the absolute directory of each install location.
type Game struct {
	Path        string `koanf:"path"`
	Preferences string `koanf:"preferences"`
	AppData     string `koanf:"appdata"`
}

type Loadout struct {
	Manifest string `koanf:"manifest"`
}

type Store struct {
	Dir string `koanf:"dir"`
}

type Diagnostics struct {
	CheckArchiveInvalidation bool          `koanf:"check_archive_invalidation"`
	Disabled                 []string      `koanf:"disabled"`
	RuleTimeout              time.Duration `koanf:"rule_timeout"`
}

// Limits are the plugin count thresholds used by the count rules.
type Limits struct {
	PluginSoft        int `koanf:"plugin_soft"`
	PluginHard        int `koanf:"plugin_hard"`
	VanillaFunctional int `koanf:"vanilla_functional"`
}

type Backup struct {
	FullGame bool `koanf:"full_game"`
}

// IsRuleDisabled reports whether name is listed in diagnostics.disabled.
func (c *Config) IsRuleDisabled(name string) bool {
	for _, d := range c.Diagnostics.Disabled {
		if d == name {
			return true
		}
	}
	return false
}

// Validate checks the invariants the rest of modsync relies on.
func (c *Config) Validate() error {
	l := c.Limits
	if l.PluginSoft <= 0 || l.PluginHard <= 0 || l.VanillaFunctional <= 0 {
		return errors.New(errors.ErrConfigValid, "plugin limits must be positive").
			WithDetail("plugin_soft", l.PluginSoft).
			WithDetail("plugin_hard", l.PluginHard).
			WithDetail("vanilla_functional", l.VanillaFunctional)
	}
	if l.PluginSoft >= l.PluginHard {
		return errors.Newf(errors.ErrConfigValid, "limits.plugin_soft (%d) must be below limits.plugin_hard (%d)",
			l.PluginSoft, l.PluginHard)
	}
	if c.Diagnostics.RuleTimeout <= 0 {
		return errors.New(errors.ErrConfigValid, "diagnostics.rule_timeout must be positive")
	}
	return nil
}

func postProcessConfig(cfg *Config) {
	if cfg.Store.Dir == "" {
		cfg.Store.Dir = filepath.Join(xdg.DataHome, "modsync", "orders")
	}
}

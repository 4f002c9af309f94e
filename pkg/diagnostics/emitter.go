package diagnostics

import (
	"context"
	"iter"

	"github.com/Punkwe1ght/modsync/pkg/gamepath"
	"github.com/Punkwe1ght/modsync/pkg/installation"
	"github.com/Punkwe1ght/modsync/pkg/synctree"
)

// Emitter is a diagnostic rule.
type Emitter interface {
	// Name is the stable rule name used in configuration and on the CLI.
	Name() string
	// Templates lists every diagnostic kind the rule can emit.
	Templates() []Template
	// Diagnose yields the rule's findings for one snapshot. The sequence
	// is finite and single-use; it ends early when ctx is done or the
	// consumer stops ranging.
	Diagnose(ctx context.Context, in *Input) iter.Seq[Diagnostic]
}

// Input is the read-only state one scan works on.
type Input struct {
	Installation *installation.Installation
	Tree         *synctree.Tree
	Loadout      LoadoutData
}

// LoadoutData holds the loadout records rules need beyond the tree.
type LoadoutData struct {
	// Plugins are the enabled plugin file names, in load order when known.
	Plugins   []string
	Tweaks    []IniTweak
	NvseItems []NvseItem
}

// IniTweak is an INI file shipped by a mod that edits a game INI.
type IniTweak struct {
	Path    gamepath.GamePath
	Target  string
	Owner   string
	Enabled bool
}

// NvseItem is a mod that ships xNVSE plugins, with the xNVSE version it
// declares it needs.
type NvseItem struct {
	Name            string
	Enabled         bool
	RequiredVersion string
}

// Func adapts a function to Emitter.
type Func struct {
	RuleName string
	Kinds    []Template
	Fn       func(ctx context.Context, in *Input, yield func(Diagnostic) bool)
}

func (f Func) Name() string          { return f.RuleName }
func (f Func) Templates() []Template { return f.Kinds }

func (f Func) Diagnose(ctx context.Context, in *Input) iter.Seq[Diagnostic] {
	return func(yield func(Diagnostic) bool) {
		if ctx.Err() != nil {
			return
		}
		f.Fn(ctx, in, yield)
	}
}

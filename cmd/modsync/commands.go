package modsync

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Punkwe1ght/modsync/internal/version"
	"github.com/Punkwe1ght/modsync/pkg/datastore"
	"github.com/Punkwe1ght/modsync/pkg/diagnostics"
	"github.com/Punkwe1ght/modsync/pkg/diagnostics/rules"
	"github.com/Punkwe1ght/modsync/pkg/errors"
	"github.com/Punkwe1ght/modsync/pkg/gamepath"
	"github.com/Punkwe1ght/modsync/pkg/loadorder"
	"github.com/Punkwe1ght/modsync/pkg/loadout"
	"github.com/Punkwe1ght/modsync/pkg/logging"
	"github.com/Punkwe1ght/modsync/pkg/synctree"
	"github.com/Punkwe1ght/modsync/pkg/ui"
)

// buildLoadout loads and builds the configured manifest. It returns nil
// when no manifest is configured.
func (a *appState) buildLoadout() (*loadout.Result, error) {
	if a.cfg.Loadout.Manifest == "" {
		return nil, nil
	}
	m, err := loadout.LoadFile(a.fs, a.cfg.Loadout.Manifest)
	if err != nil {
		return nil, fmt.Errorf(MsgErrLoadManifest, err)
	}
	return loadout.Build(m, a.inst, loadout.Options{FullBackup: a.cfg.Backup.FullGame}), nil
}

// scanInput assembles the diagnostics input from the manifest, an optional
// snapshot file, or the disk alone.
func (a *appState) scanInput(snapshot string) (*diagnostics.Input, error) {
	logger := logging.GetLogger("cmd.diagnose")
	res, err := a.buildLoadout()
	if err != nil {
		return nil, err
	}

	var in *diagnostics.Input
	if res != nil {
		in = res.Input(a.inst)
	} else {
		logger.Info().Msg(MsgNoManifest)
		b := synctree.NewBuilder()
		for _, p := range loadout.ScanDisk(a.inst, a.cfg.Backup.FullGame) {
			b.Add(p, synctree.Node{HaveDisk: true})
		}
		in = &diagnostics.Input{Installation: a.inst, Tree: b.Build()}
	}

	if snapshot != "" {
		f, err := a.fs.Open(snapshot)
		if err != nil {
			return nil, fmt.Errorf(MsgErrLoadSnapshot, err)
		}
		defer func() { _ = f.Close() }()
		tree, err := synctree.LoadSnapshot(f)
		if err != nil {
			return nil, fmt.Errorf(MsgErrLoadSnapshot, err)
		}
		in.Tree = tree
	}
	return in, nil
}

func (a *appState) registry() (*diagnostics.Registry, error) {
	return rules.NewRegistry(rules.OptionsFromConfig(a.cfg))
}

func newDiagnoseCmd(app *appState) *cobra.Command {
	var (
		format   string
		only     []string
		snapshot string
		failOn   string
	)
	cmd := &cobra.Command{
		Use:     "diagnose",
		Short:   MsgDiagnoseShort,
		Long:    MsgDiagnoseLong,
		Example: MsgDiagnoseExample,
		GroupID: "core",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := logging.GetLogger("cmd.diagnose")
			f, err := ui.ParseFormat(format)
			if err != nil {
				return err
			}
			var threshold diagnostics.Severity
			if failOn != "" {
				if err := threshold.UnmarshalText([]byte(failOn)); err != nil {
					return err
				}
			}
			in, err := app.scanInput(snapshot)
			if err != nil {
				return err
			}
			reg, err := app.registry()
			if err != nil {
				return err
			}
			engine, err := diagnostics.NewEngine(reg,
				diagnostics.WithOnly(only...),
				diagnostics.WithDisabled(app.cfg.Diagnostics.Disabled...),
			)
			if err != nil {
				return err
			}

			res := engine.Scan(cmd.Context(), in)
			for _, run := range res.Runs {
				logger.Debug().
					Str("rule", run.Rule).
					Int("count", run.Count).
					Dur("took", run.Duration).
					Bool("cancelled", run.Cancelled).
					Msg("Rule run")
			}

			renderer, err := ui.NewRenderer(f, cmd.OutOrStdout())
			if err != nil {
				return err
			}
			diags := diagnostics.Dedupe(res.Diagnostics)
			if err := renderer.RenderDiagnostics(diags); err != nil {
				return err
			}

			worst, found := diagnostics.Highest(diags)
			if failOn != "" && found && worst >= threshold {
				return errors.Newf(errors.ErrHealthCheckFailed, MsgErrHealthCheck, worst).
					WithDetail("severity", worst.String()).
					WithDetail("count", len(diags))
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&format, "format", "f", "auto", MsgFlagFormat)
	cmd.Flags().StringArrayVar(&only, "rule", nil, MsgFlagRule)
	cmd.Flags().StringVar(&snapshot, "snapshot", "", MsgFlagSnapshot)
	cmd.Flags().StringVar(&failOn, "fail-on", "", MsgFlagFailOn)
	return cmd
}

func newOrderCmd(app *appState) *cobra.Command {
	var (
		write       bool
		pluginsFile string
	)
	cmd := &cobra.Command{
		Use:     "order",
		Short:   MsgOrderShort,
		Long:    MsgOrderLong,
		Example: MsgOrderExample,
		GroupID: "core",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			lo, err := app.buildLoadout()
			if err != nil {
				return err
			}
			if lo == nil {
				return errors.New(errors.ErrInvalidInput, MsgErrNeedsManifest)
			}

			session := loadorder.NewSession(datastore.New(app.fs, app.cfg.Store.Dir), lo.ID)
			var res loadorder.Result
			if write {
				res, err = session.Run(lo.Plugins, lo.Priorities)
			} else {
				res, err = session.Plan(lo.Plugins, lo.Priorities)
			}
			if err != nil {
				return err
			}

			if err := ui.RenderOrder(out, res.Resolved, res.Delta); err != nil {
				return err
			}
			switch {
			case res.Delta.Empty():
				fmt.Fprintln(out, MsgOrderUnchanged)
			case res.Written:
				fmt.Fprintf(out, MsgOrderWritten, lo.ID, len(res.Resolved))
			default:
				fmt.Fprintln(out, MsgOrderPreview)
			}
			if !write {
				return nil
			}

			target := pluginsFile
			if target == "" {
				target, err = app.inst.ToAbsolutePath(gamepath.PluginsFile)
				if err != nil {
					return err
				}
			}
			if err := datastore.WritePluginsFile(app.fs, target, loadorder.EnabledKeys(res.Resolved)); err != nil {
				return err
			}
			fmt.Fprintf(out, MsgPluginsFileWritten, target)
			return nil
		},
	}
	cmd.Flags().BoolVar(&write, "write", false, MsgFlagWrite)
	cmd.Flags().StringVar(&pluginsFile, "plugins-file", "", MsgFlagPluginsFile)
	return cmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:         "version",
		Short:       MsgVersionShort,
		GroupID:     "misc",
		Args:        cobra.NoArgs,
		Annotations: map[string]string{skipConfigAnnotation: "true"},
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprint(cmd.OutOrStdout(), version.Info())
		},
	}
}

func newCompletionCmd() *cobra.Command {
	return &cobra.Command{
		Use:                   "completion [bash|zsh|fish|powershell]",
		Short:                 MsgCompletionShort,
		Long:                  MsgCompletionLong,
		GroupID:               "misc",
		DisableFlagsInUseLine: true,
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		Annotations:           map[string]string{skipConfigAnnotation: "true"},
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			switch args[0] {
			case "bash":
				return cmd.Root().GenBashCompletion(out)
			case "zsh":
				return cmd.Root().GenZshCompletion(out)
			case "fish":
				return cmd.Root().GenFishCompletion(out, true)
			case "powershell":
				return cmd.Root().GenPowerShellCompletionWithDesc(out)
			}
			return nil
		},
	}
}

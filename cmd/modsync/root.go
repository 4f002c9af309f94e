package modsync

import (
	"embed"
	"fmt"
	"path/filepath"

	"github.com/rs/zerolog/log"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/Punkwe1ght/modsync/internal/version"
	"github.com/Punkwe1ght/modsync/pkg/cobrax/topics"
	"github.com/Punkwe1ght/modsync/pkg/config"
	"github.com/Punkwe1ght/modsync/pkg/installation"
	"github.com/Punkwe1ght/modsync/pkg/logging"
)

//go:embed topics
var topicFiles embed.FS

// skipConfigAnnotation marks commands that run without loading configuration.
const skipConfigAnnotation = "modsync/skip-config"

type globalFlags struct {
	verbosity  int
	configFile string
	game       string
	prefs      string
	manifest   string
}

// appState is filled in by the root command before any subcommand runs.
type appState struct {
	fs   afero.Fs
	cfg  *config.Config
	inst *installation.Installation
}

func (a *appState) load(flags *globalFlags) error {
	overrides := map[string]interface{}{}
	for key, value := range map[string]string{
		"game.path":        flags.game,
		"game.preferences": flags.prefs,
		"loadout.manifest": flags.manifest,
	} {
		if value == "" {
			continue
		}
		abs, err := filepath.Abs(value)
		if err != nil {
			abs = value
		}
		overrides[key] = abs
	}

	cfg, err := config.LoadConfiguration(config.Options{File: flags.configFile, Overrides: overrides})
	if err != nil {
		return fmt.Errorf(MsgErrLoadConfig, err)
	}
	a.cfg = cfg
	a.inst = installation.FromConfig(cfg, a.fs)
	return nil
}

// NewRootCmd creates and returns the root command
func NewRootCmd() *cobra.Command {
	initTemplateFormatting()

	flags := &globalFlags{}
	app := &appState{fs: afero.NewOsFs()}

	rootCmd := &cobra.Command{
		Use:     "modsync",
		Short:   MsgRootShort,
		Long:    MsgRootLong,
		Version: version.Version,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			logging.SetupLogger(flags.verbosity)
			log.Debug().Str("command", cmd.Name()).Msg("Command started")
			if cmd.Annotations[skipConfigAnnotation] != "" {
				return nil
			}
			return app.load(flags)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			_ = cmd.Help()
			return fmt.Errorf("no command specified")
		},
		SilenceUsage:      true,
		SilenceErrors:     true,
		DisableAutoGenTag: true,
	}

	// Global flags
	pf := rootCmd.PersistentFlags()
	pf.CountVarP(&flags.verbosity, "verbose", "v", MsgFlagVerbose)
	pf.StringVar(&flags.configFile, "config", "", MsgFlagConfig)
	pf.StringVar(&flags.game, "game", "", MsgFlagGame)
	pf.StringVar(&flags.prefs, "prefs", "", MsgFlagPrefs)
	pf.StringVar(&flags.manifest, "manifest", "", MsgFlagManifest)

	rootCmd.AddGroup(&cobra.Group{ID: "core", Title: "COMMANDS:"})
	rootCmd.AddGroup(&cobra.Group{ID: "inspect", Title: "INSPECT:"})
	rootCmd.AddGroup(&cobra.Group{ID: "misc", Title: "MISC:"})
	rootCmd.SetUsageTemplate(MsgUsageTemplate)

	rootCmd.AddCommand(newDiagnoseCmd(app))
	rootCmd.AddCommand(newOrderCmd(app))
	rootCmd.AddCommand(newExplainCmd(app))
	rootCmd.AddCommand(newRulesCmd(app))
	rootCmd.AddCommand(newHeaderCmd(app))
	rootCmd.AddCommand(newLocationsCmd(app))
	rootCmd.AddCommand(newDebugIniCmd(app))
	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newCompletionCmd())

	tm, err := topics.Load(afero.FromIOFS{FS: topicFiles}, "topics", topics.Options{
		Renderer:    topics.GlamourRenderer{},
		Annotations: map[string]string{skipConfigAnnotation: "true"},
	})
	if err != nil {
		log.Warn().Err(err).Msg("Help topics unavailable")
	} else {
		tm.Install(rootCmd)
	}

	return rootCmd
}

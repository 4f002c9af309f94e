package modsync

import (
	"fmt"
	"strings"

	"github.com/pterm/pterm"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/Punkwe1ght/modsync/pkg/diagnostics"
	"github.com/Punkwe1ght/modsync/pkg/diagnostics/rules"
	"github.com/Punkwe1ght/modsync/pkg/errors"
	"github.com/Punkwe1ght/modsync/pkg/gamepath"
	"github.com/Punkwe1ght/modsync/pkg/ini"
	"github.com/Punkwe1ght/modsync/pkg/logging"
	"github.com/Punkwe1ght/modsync/pkg/plugin"
	"github.com/Punkwe1ght/modsync/pkg/ui"
)

func newExplainCmd(app *appState) *cobra.Command {
	return &cobra.Command{
		Use:     "explain ID",
		Short:   MsgExplainShort,
		GroupID: "inspect",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := diagnostics.ParseID(args[0])
			if err != nil {
				return err
			}
			reg, err := app.registry()
			if err != nil {
				return err
			}
			tmpl, _, ok := reg.Template(id)
			if !ok {
				return errors.Newf(errors.ErrNotFound, MsgErrUnknownID, id)
			}
			out := cmd.OutOrStdout()
			return ui.RenderDetails(out, tmpl.New(), ui.ColorEnabled(out), 0)
		},
	}
}

func newRulesCmd(app *appState) *cobra.Command {
	return &cobra.Command{
		Use:     "rules",
		Short:   MsgRulesShort,
		GroupID: "inspect",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			reg, err := app.registry()
			if err != nil {
				return err
			}
			data := pterm.TableData{{"Rule", "Diagnostics", "Status"}}
			for _, e := range reg.Emitters() {
				var kinds []string
				for _, t := range e.Templates() {
					kinds = append(kinds, fmt.Sprintf("%s %s", t.ID, t.Title))
				}
				status := MsgRuleEnabled
				if app.cfg.IsRuleDisabled(e.Name()) {
					status = MsgRuleDisabled
				}
				data = append(data, []string{e.Name(), strings.Join(kinds, "\n"), status})
			}
			table, err := pterm.DefaultTable.WithHasHeader().WithData(data).Srender()
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), table)
			return err
		},
	}
}

// newHeaderCmd reads plugin headers straight from the given paths. The
// game location is not consulted.
func newHeaderCmd(app *appState) *cobra.Command {
	return &cobra.Command{
		Use:     "header FILE...",
		Short:   MsgHeaderShort,
		GroupID: "inspect",
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := logging.GetLogger("cmd.header")
			out := cmd.OutOrStdout()
			failed := 0
			for _, name := range args {
				h, err := plugin.ParseFile(app.fs, name)
				if err != nil {
					failed++
					logger.Debug().Err(err).Str("file", name).Msg("Header parse failed")
					fmt.Fprintf(out, MsgHeaderError, name, err)
					continue
				}
				info := plugin.NewInfo(name, h)
				if info.IsMaster {
					fmt.Fprintf(out, MsgHeaderMaster, info.Name)
				} else {
					fmt.Fprintf(out, MsgHeaderPlugin, info.Name)
				}
				if len(info.Masters) == 0 {
					fmt.Fprint(out, MsgHeaderNoMasters)
				}
				for _, m := range info.Masters {
					fmt.Fprintf(out, MsgHeaderMasterRef, m)
				}
			}
			if failed > 0 {
				return errors.Newf(errors.ErrUnrecognizedFormat, MsgErrHeaders, failed, len(args))
			}
			return nil
		},
	}
}

func newLocationsCmd(app *appState) *cobra.Command {
	return &cobra.Command{
		Use:     "locations",
		Short:   MsgLocationsShort,
		GroupID: "inspect",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			data := pterm.TableData{{"Location", "Directory", "Exists"}}
			for _, loc := range gamepath.Locations {
				dir, ok := app.inst.Resolve(loc)
				if !ok {
					data = append(data, []string{string(loc), MsgNotConfigured, "-"})
					continue
				}
				exists := "no"
				if ok, _ := afero.DirExists(app.fs, dir); ok {
					exists = "yes"
				}
				data = append(data, []string{string(loc), dir, exists})
			}
			table, err := pterm.DefaultTable.WithHasHeader().WithData(data).Srender()
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), table)
			return err
		},
	}
}

// newDebugIniCmd prints the values the archive rules read, file by file.
func newDebugIniCmd(app *appState) *cobra.Command {
	return &cobra.Command{
		Use:     "debug-ini",
		Short:   MsgDebugIniShort,
		GroupID: "inspect",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			data := pterm.TableData{{"File", "Key", "Value"}}
			add := func(p gamepath.GamePath, key string) {
				lines, err := app.inst.ReadLines(p)
				if err != nil {
					data = append(data, []string{p.String(), key, "(" + string(errors.GetErrorCode(err)) + ")"})
					return
				}
				value, ok := ini.Lookup(lines, key)
				if !ok {
					value = "-"
				}
				data = append(data, []string{p.String(), key, value})
			}
			for _, p := range rules.InvalidationCandidates {
				add(p, rules.InvalidationKey)
			}
			for _, p := range rules.ArchiveListSources {
				add(p, rules.ArchiveListKey)
			}
			table, err := pterm.DefaultTable.WithHasHeader().WithData(data).Srender()
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), table)
			return err
		},
	}
}

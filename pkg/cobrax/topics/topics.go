// Package topics adds file-backed help topics to a Cobra application, so
// that `app help <topic>` prints a page alongside the command help.
package topics

import (
	"fmt"
	"io"
	"os"
	"path"
	"slices"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/Punkwe1ght/modsync/pkg/errors"
	"github.com/Punkwe1ght/modsync/pkg/logging"
)

// Topic is one help page.
type Topic struct {
	Name    string
	Format  string
	Content string
}

// Options configures the Manager.
type Options struct {
	// Extensions are the file extensions loaded as topics; default .txt and .md.
	Extensions []string
	// Renderer formats topic content; default PlainRenderer.
	Renderer Renderer
	// Annotations are set on the installed help command.
	Annotations map[string]string
}

// Manager holds the topics loaded from one directory.
type Manager struct {
	topics      map[string]*Topic
	extensions  []string
	renderer    Renderer
	annotations map[string]string
	logger      zerolog.Logger
}

// Load reads every topic file below dir in fsys. A missing dir yields an
// empty manager.
func Load(fsys afero.Fs, dir string, opts Options) (*Manager, error) {
	m := &Manager{
		topics:      make(map[string]*Topic),
		extensions:  opts.Extensions,
		renderer:    opts.Renderer,
		annotations: opts.Annotations,
		logger:      logging.GetLogger("topics"),
	}
	if len(m.extensions) == 0 {
		m.extensions = []string{".txt", ".md"}
	}
	if m.renderer == nil {
		m.renderer = PlainRenderer{}
	}

	if ok, _ := afero.DirExists(fsys, dir); !ok {
		return m, nil
	}
	err := afero.Walk(fsys, dir, func(p string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		ext := path.Ext(p)
		if info.IsDir() || !slices.Contains(m.extensions, ext) {
			return nil
		}
		content, err := afero.ReadFile(fsys, p)
		if err != nil {
			return err
		}
		name := strings.TrimSuffix(path.Base(p), ext)
		m.topics[name] = &Topic{Name: name, Format: ext, Content: string(content)}
		return nil
	})
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrInternal, "failed to scan help topics in %s", dir)
	}
	m.logger.Trace().Str("dir", dir).Int("count", len(m.topics)).Msg("Loaded help topics")
	return m, nil
}

// Get returns the named topic.
func (m *Manager) Get(name string) (*Topic, bool) {
	t, ok := m.topics[name]
	return t, ok
}

// Names returns the topic names sorted.
func (m *Manager) Names() []string {
	names := make([]string, 0, len(m.topics))
	for name := range m.topics {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// Write renders the topic to w.
func (m *Manager) Write(w io.Writer, t *Topic) error {
	_, err := io.WriteString(w, m.renderer.Render(t.Content, t.Format))
	return err
}

// Install replaces the help command of root with one that also knows the
// topics. `help topics` lists them.
func (m *Manager) Install(root *cobra.Command) {
	originalHelp := root.HelpFunc()

	helpCmd := &cobra.Command{
		Use:         "help [command or topic]",
		Short:       "Help about any command or topic",
		Annotations: m.annotations,
		Long: `Help provides help for any command or topic in the application.
Simply type ` + root.Name() + ` help [path to command or topic] for full details.

To see all available help topics:
  ` + root.Name() + ` help topics`,
		ValidArgsFunction: func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
			completions := []string{"topics"}
			for _, c := range root.Commands() {
				if !c.Hidden {
					completions = append(completions, c.Name())
				}
			}
			completions = append(completions, m.Names()...)
			return completions, cobra.ShellCompDirectiveNoFileComp
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			if len(args) == 0 {
				originalHelp(root, nil)
				return nil
			}
			if args[0] == "topics" {
				return m.list(out, root.Name())
			}
			if t, ok := m.Get(args[0]); ok {
				return m.Write(out, t)
			}
			target, _, err := root.Find(args)
			if err != nil || target == nil {
				return errors.Newf(errors.ErrNotFound, "unknown help topic %q", args[0])
			}
			originalHelp(target, args)
			return nil
		},
	}

	for _, c := range root.Commands() {
		if c.Name() == "help" {
			root.RemoveCommand(c)
			break
		}
	}
	root.SetHelpCommand(helpCmd)
}

func (m *Manager) list(w io.Writer, app string) error {
	names := m.Names()
	if len(names) == 0 {
		_, err := fmt.Fprintln(w, "No help topics available.")
		return err
	}
	fmt.Fprintln(w, "Available help topics:")
	for _, name := range names {
		fmt.Fprintf(w, "  %s\n", name)
	}
	_, err := fmt.Fprintf(w, "\nUse '%s help <topic>' to read about a specific topic.\n", app)
	return err
}

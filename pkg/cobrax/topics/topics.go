// Package topics adds help topics to a Cobra command tree. Topics are files
// read from an fs.FS, so a binary can ship them embedded; "help <topic>"
// renders one and "help topics" lists them.
package topics

import (
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"

	"github.com/arthur-debert/arbitrator/pkg/logging"
	"github.com/spf13/cobra"
)

// Topic is one help file.
type Topic struct {
	Name    string
	Path    string
	Content string
}

// Options configures a TopicManager.
type Options struct {
	// Extensions lists the file extensions read as topics.
	// Defaults to [".txt", ".md"].
	Extensions []string

	// Renderer formats topic content. Defaults to PlainRenderer.
	Renderer Renderer
}

// TopicManager holds the topics found in one file system.
type TopicManager struct {
	topics     map[string]*Topic
	extensions []string
	renderer   Renderer
}

// New reads every topic file in fsys. Topic names are file names without
// their extension; a later file with the same name replaces an earlier one.
func New(fsys fs.FS, opts Options) (*TopicManager, error) {
	tm := &TopicManager{
		topics:     make(map[string]*Topic),
		extensions: opts.Extensions,
		renderer:   opts.Renderer,
	}
	if len(tm.extensions) == 0 {
		tm.extensions = []string{".txt", ".md"}
	}
	if tm.renderer == nil {
		tm.renderer = &PlainRenderer{}
	}

	err := fs.WalkDir(fsys, ".", func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !tm.supported(path.Ext(p)) {
			return nil
		}

		content, err := fs.ReadFile(fsys, p)
		if err != nil {
			return err
		}

		name := strings.TrimSuffix(path.Base(p), path.Ext(p))
		tm.topics[name] = &Topic{Name: name, Path: p, Content: string(content)}
		return nil
	})
	if err != nil {
		return nil, err
	}

	logger := logging.GetLogger("cobrax.topics")
	logger.Trace().
		Int("topics", len(tm.topics)).
		Msg("Help topics loaded")

	return tm, nil
}

func (tm *TopicManager) supported(ext string) bool {
	for _, valid := range tm.extensions {
		if ext == valid {
			return true
		}
	}
	return false
}

// GetTopic retrieves a topic by name
func (tm *TopicManager) GetTopic(name string) (*Topic, bool) {
	t, ok := tm.topics[name]
	return t, ok
}

// Names returns the topic names in alphabetical order.
func (tm *TopicManager) Names() []string {
	names := make([]string, 0, len(tm.topics))
	for name := range tm.topics {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Render formats the named topic with the configured renderer.
func (tm *TopicManager) Render(name string) (string, bool) {
	t, ok := tm.topics[name]
	if !ok {
		return "", false
	}
	return tm.renderer.Render(t.Content, path.Ext(t.Path)), true
}

// Install replaces the help command of root. "help topics" lists the
// topics, "help <topic>" shows one, and anything else falls back to the
// usual command help.
func (tm *TopicManager) Install(root *cobra.Command) {
	helpCmd := &cobra.Command{
		Use:   "help [command|topic]",
		Short: "Help about any command or topic",
		Long: fmt.Sprintf(`Help provides help for any command or topic.
Use "%s help topics" to list the available topics.`, root.Name()),
		ValidArgsFunction: func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
			if len(args) > 0 {
				return nil, cobra.ShellCompDirectiveNoFileComp
			}
			candidates := append([]string{"topics"}, tm.Names()...)
			for _, sub := range root.Commands() {
				if sub.IsAvailableCommand() {
					candidates = append(candidates, sub.Name())
				}
			}
			return candidates, cobra.ShellCompDirectiveNoFileComp
		},
		Run: func(cmd *cobra.Command, args []string) {
			out := cmd.OutOrStdout()

			if len(args) == 0 {
				_ = root.Help()
				return
			}

			if args[0] == "topics" {
				tm.writeList(cmd, root)
				return
			}

			if rendered, ok := tm.Render(args[0]); ok {
				fmt.Fprint(out, rendered)
				return
			}

			target, _, err := root.Find(args)
			if target == nil || err != nil {
				fmt.Fprintf(out, "Unknown help topic %q\n", args)
				_ = root.Usage()
				return
			}
			target.InitDefaultHelpFlag()
			_ = target.Help()
		},
	}

	root.SetHelpCommand(helpCmd)
}

func (tm *TopicManager) writeList(cmd *cobra.Command, root *cobra.Command) {
	out := cmd.OutOrStdout()

	names := tm.Names()
	if len(names) == 0 {
		fmt.Fprintln(out, "No help topics available.")
		return
	}

	fmt.Fprintln(out, "Available help topics:")
	for _, name := range names {
		fmt.Fprintf(out, "  %s\n", name)
	}
	fmt.Fprintf(out, "\nUse '%s help <topic>' to read about a specific topic.\n", root.Name())
}

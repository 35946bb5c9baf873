package commands

import (
	"context"
	"os"

	"github.com/mattn/go-isatty"
	base "github.com/n3wscott/cli-base/pkg/commands/options"
	"github.com/spf13/cobra"

	"tableflip.dev/tasklist/pkg/commands/options"
)

var (
	output = &base.OutputOptions{}
	so     = &options.StoreOptions{}
)

func New() *cobra.Command {

	cmd := &cobra.Command{
		Use:   "tasklist",
		Short: base.Wrap80("A small to-do list kept in a local key-value store."),
		Long: base.Wrap80("Without a subcommand tasklist opens the task list screen " +
			"when attached to a terminal and prints the list otherwise."),
		RunE: func(cmd *cobra.Command, args []string) error {
			if isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd()) {
				return runUI(context.Background())
			}
			return runList(context.Background(), false)
		},
	}

	options.AddStoreArgs(cmd, so)
	AddCommands(cmd)
	return cmd
}

func AddCommands(topLevel *cobra.Command) {
	addUI(topLevel)
	addWelcome(topLevel)
	addKey(topLevel)
	addAdd(topLevel)
	addList(topLevel)
	addRemove(topLevel)
	addVersion(topLevel)
	addCompletions(topLevel)
}

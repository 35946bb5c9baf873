package commands

import (
	"context"

	base "github.com/n3wscott/cli-base/pkg/commands/options"
	"github.com/spf13/cobra"

	"tableflip.dev/tasklist/pkg/runner/list"
)

func addList(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "Print the task list",
		Example: `
tasklist list
tasklist ls --json
`,
		ValidArgs: []string{},
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			err := runList(context.Background(), output.JSON)
			return output.HandleError(err)
		},
	}

	base.AddOutputArg(cmd, output)
	topLevel.AddCommand(cmd)
}

func runList(ctx context.Context, asJSON bool) error {
	kv, cfg, err := openStore()
	if err != nil {
		return err
	}
	defer kv.Close()

	l := list.List{
		JSON:        asJSON,
		Persistence: kv,
		Key:         cfg.Key(),
		Log:         verbLogger(),
	}
	return l.Do(ctx)
}

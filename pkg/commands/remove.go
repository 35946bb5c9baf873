package commands

import (
	"context"
	"fmt"
	"strconv"

	base "github.com/n3wscott/cli-base/pkg/commands/options"
	"github.com/spf13/cobra"

	"tableflip.dev/tasklist/pkg/runner/remove"
)

func addRemove(topLevel *cobra.Command) {
	var number int

	cmd := &cobra.Command{
		Use:     "rm <number>",
		Aliases: []string{"remove", "delete"},
		Short:   "Remove a task by the number list prints next to it",
		Example: `
tasklist rm 2
`,
		Args: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			if len(args) != 1 {
				return fmt.Errorf("requires exactly one task number, got %d", len(args))
			}
			n, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("task number %q: %w", args[0], err)
			}
			number = n
			return nil
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			kv, cfg, err := openStore()
			if err != nil {
				return output.HandleError(err)
			}
			defer kv.Close()

			r := remove.Remove{
				Number:      number,
				Persistence: kv,
				Key:         cfg.Key(),
				Log:         verbLogger(),
			}
			err = r.Do(context.Background())
			return output.HandleError(err)
		},
	}

	base.AddOutputArg(cmd, output)
	topLevel.AddCommand(cmd)
}

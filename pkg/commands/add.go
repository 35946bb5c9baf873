package commands

import (
	"context"
	"errors"
	"strings"

	base "github.com/n3wscott/cli-base/pkg/commands/options"
	"github.com/spf13/cobra"

	"tableflip.dev/tasklist/pkg/runner/add"
)

func addAdd(topLevel *cobra.Command) {
	var message string

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a task",
		Example: `
tasklist add buy milk
`,
		Args: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			message = strings.TrimSpace(strings.Join(args, " "))
			if message == "" {
				return errors.New("requires a task")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			kv, cfg, err := openStore()
			if err != nil {
				return output.HandleError(err)
			}
			defer kv.Close()

			a := add.Add{
				Message:     message,
				Persistence: kv,
				Key:         cfg.Key(),
				Log:         verbLogger(),
			}
			err = a.Do(context.Background())
			return output.HandleError(err)
		},
	}

	base.AddOutputArg(cmd, output)
	topLevel.AddCommand(cmd)
}

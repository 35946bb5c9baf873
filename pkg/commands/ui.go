package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/tasklist/pkg/diag"
	teaui "tableflip.dev/tasklist/pkg/runner/tea"
)

func addUI(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "ui",
		Short: "open the task list screen",
		Example: `
tasklist ui
tasklist ui --driver sqlite
`,
		ValidArgs: []string{},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runUI(context.Background())
		},
	}

	topLevel.AddCommand(cmd)
}

func runUI(ctx context.Context) error {
	kv, cfg, err := openStore()
	if err != nil {
		return err
	}
	defer kv.Close()

	logger, closer, err := diag.ToFile(cfg.LogPath(), "tasklist:", so.Debug)
	if err != nil {
		return err
	}
	defer closer.Close()

	i := teaui.UI{Persistence: kv, Key: cfg.Key(), Log: logger}
	return i.Do(ctx)
}

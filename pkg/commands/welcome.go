package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/tasklist/pkg/runner/welcome"
)

func addWelcome(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "welcome",
		Short: "open the starter welcome screen",
		Example: `
tasklist welcome
`,
		ValidArgs: []string{},
		RunE: func(cmd *cobra.Command, args []string) error {
			w := welcome.Welcome{}
			return w.Do(context.Background())
		},
	}

	topLevel.AddCommand(cmd)
}

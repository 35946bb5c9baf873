package options

import (
	"github.com/spf13/cobra"

	"tableflip.dev/tasklist/pkg/store"
)

// StoreOptions select where the task list is kept.
type StoreOptions struct {
	Path   string
	Driver string
	Debug  bool
}

// AddStoreArgs wires the store flags on cmd and all of its subcommands.
func AddStoreArgs(cmd *cobra.Command, o *StoreOptions) {
	cmd.PersistentFlags().StringVar(&o.Path, "path", "",
		`Directory the task list is stored in (default "~/.tasklist.db").`)
	cmd.PersistentFlags().StringVar(&o.Driver, "driver", "",
		`Storage driver, one of "diskv" or "sqlite" (default "diskv").`)
	cmd.PersistentFlags().BoolVar(&o.Debug, "debug", false,
		"Include source locations in diagnostic logs.")
}

// Config loads the configuration with these flags layered on top.
func (o *StoreOptions) Config() (store.Config, error) {
	return store.LoadConfig(store.Overrides{Path: o.Path, Driver: o.Driver})
}

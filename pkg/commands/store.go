package commands

import (
	"log"

	"tableflip.dev/tasklist/pkg/diag"
	"tableflip.dev/tasklist/pkg/store"
)

// openStore loads the configuration and takes ownership of the store.
func openStore() (store.KV, store.Config, error) {
	cfg, err := so.Config()
	if err != nil {
		return nil, nil, err
	}
	kv, err := store.Open(cfg)
	if err != nil {
		return nil, nil, err
	}
	return kv, cfg, nil
}

func verbLogger() *log.Logger {
	return diag.Stderr("tasklist:", so.Debug)
}

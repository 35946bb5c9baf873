package teaui

import (
	"context"
	"errors"
	"log"

	tea "github.com/charmbracelet/bubbletea"

	"tableflip.dev/tasklist/pkg/tasks"
	"tableflip.dev/tasklist/pkg/tui/screens/tasklist"
)

// UI runs the task list screen against a store.
type UI struct {
	Persistence tasks.Store
	Key         string
	Log         *log.Logger
	Options     []tea.ProgramOption
}

// Do blocks until the screen quits, then waits for the last write to land.
func (d *UI) Do(ctx context.Context) error {
	if d.Persistence == nil {
		return errors.New("can not run ui, no persistence")
	}
	s := tasks.NewSyncer(d.Persistence, d.Key, d.Log)
	defer s.Close()

	ctrl := tasks.NewController(tasks.Options{
		Key:       d.Key,
		Persister: s,
		Log:       d.Log,
	})
	m := tasklist.New(tasklist.Options{
		Controller: ctrl,
		Store:      d.Persistence,
		Key:        d.Key,
		Log:        d.Log,
	})

	opts := append([]tea.ProgramOption{tea.WithAltScreen(), tea.WithContext(ctx)}, d.Options...)
	_, err := tea.NewProgram(m, opts...).Run()
	return err
}

package welcome

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"tableflip.dev/tasklist/pkg/tui/screens/welcome"
)

// Welcome runs the welcome screen. It touches no persisted state.
type Welcome struct {
	Options []tea.ProgramOption
}

func (w *Welcome) Do(ctx context.Context) error {
	opts := append([]tea.ProgramOption{tea.WithAltScreen(), tea.WithContext(ctx)}, w.Options...)
	_, err := tea.NewProgram(welcome.New(), opts...).Run()
	return err
}

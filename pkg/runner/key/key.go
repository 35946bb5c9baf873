// Package key prints the task list screen's key bindings.
package key

import (
	"context"
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"

	"tableflip.dev/tasklist/pkg/tui/screens/tasklist"
)

// Key prints a legend of the task list screen's bindings.
type Key struct {
	// Out defaults to color.Output.
	Out io.Writer
}

// Do renders one table per group of bindings.
func (k *Key) Do(ctx context.Context) error {
	out := k.Out
	if out == nil {
		out = color.Output
	}
	_, _ = fmt.Fprintln(out, "")
	for _, g := range tasklist.Legend() {
		k.Key(ctx, out, g)
		_, _ = fmt.Fprintln(out, "")
	}
	return nil
}

// Key renders a single group as a two column table.
func (k *Key) Key(_ context.Context, out io.Writer, g tasklist.LegendGroup) {
	bold := color.New(color.Bold)

	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.AddRow(bold.Sprint(g.Name), bold.Sprint("Action"))
	for _, b := range g.Bindings {
		h := b.Help()
		tbl.AddRow(h.Key, h.Desc)
	}
	tbl.RightAlign(0)

	_, _ = fmt.Fprintln(out, tbl)
}

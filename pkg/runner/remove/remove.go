package remove

import (
	"context"
	"errors"
	"fmt"
	"log"

	"tableflip.dev/tasklist/pkg/printers"
	"tableflip.dev/tasklist/pkg/tasks"
)

// Remove deletes one task by its printed, 1-based number.
type Remove struct {
	Number int

	Persistence tasks.Store
	Key         string
	Log         *log.Logger
	Printer     *printers.PrettyPrint
}

var ErrNoTask = errors.New("remove: no such task")

func (n *Remove) Do(ctx context.Context) error {
	if n.Persistence == nil {
		return errors.New("can not remove, no persistence")
	}
	c, s := tasks.Attach(ctx, n.Persistence, n.Key, n.Log)
	removed := c.RemoveAt(n.Number - 1)
	if err := s.Close(); err != nil {
		return err
	}
	if !removed {
		return fmt.Errorf("%w: no task at index %d", ErrNoTask, n.Number)
	}

	pp := n.Printer
	if pp == nil {
		pp = &printers.PrettyPrint{}
	}
	pp.TitleWithCount("Tasks", c.Len())
	pp.Tasks(c.Tasks()...)
	return nil
}

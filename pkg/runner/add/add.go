package add

import (
	"context"
	"errors"
	"log"

	"tableflip.dev/tasklist/pkg/printers"
	"tableflip.dev/tasklist/pkg/tasks"
)

type Add struct {
	Message string

	Persistence tasks.Store
	Key         string
	Log         *log.Logger
	Printer     *printers.PrettyPrint
}

var ErrEmpty = errors.New("add: task text is empty")

func (n *Add) Do(ctx context.Context) error {
	if n.Persistence == nil {
		return errors.New("can not add, no persistence")
	}
	c, s := tasks.Attach(ctx, n.Persistence, n.Key, n.Log)
	added := c.AddTask(n.Message)
	if err := s.Close(); err != nil {
		return err
	}
	if !added {
		return ErrEmpty
	}

	pp := n.Printer
	if pp == nil {
		pp = &printers.PrettyPrint{}
	}
	pp.TitleWithCount("Tasks", c.Len())
	pp.Tasks(c.Tasks()...)
	return nil
}

package list

import (
	"context"
	"errors"
	"log"

	"tableflip.dev/tasklist/pkg/printers"
	"tableflip.dev/tasklist/pkg/tasks"
)

type List struct {
	JSON bool

	Persistence tasks.Reader
	Key         string
	Log         *log.Logger
	Printer     *printers.PrettyPrint
}

func (n *List) Do(ctx context.Context) error {
	if n.Persistence == nil {
		return errors.New("can not list, no persistence")
	}
	c := tasks.NewController(tasks.Options{Store: n.Persistence, Key: n.Key, Log: n.Log})
	c.Hydrate(ctx)

	pp := n.Printer
	if pp == nil {
		pp = &printers.PrettyPrint{}
	}
	if n.JSON {
		return pp.JSON(c.Tasks())
	}
	pp.TitleWithCount("Tasks", c.Len())
	pp.Tasks(c.Tasks()...)
	return nil
}

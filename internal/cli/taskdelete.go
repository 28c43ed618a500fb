package cli

import (
	"fmt"

	"github.com/lsoto/mantcal/internal/auth"
)

type TaskDeleteCmd struct {
	ID  int  `arg:"" help:"Task id."`
	Yes bool `short:"y" help:"Skip confirmation."`
}

func (c *TaskDeleteCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	if _, err := auth.RequireAction(ctx.Store, auth.ActionDelete, auth.EntityTask); err != nil {
		return err
	}

	if !confirm(fmt.Sprintf("Delete task %d?", c.ID), c.Yes) {
		fmt.Println("Cancelled")
		return nil
	}

	if err := ctx.Store.DeleteTask(c.ID); err != nil {
		return err
	}
	fmt.Printf("Deleted task %d\n", c.ID)
	return nil
}

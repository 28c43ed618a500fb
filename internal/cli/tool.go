package cli

import (
	"fmt"

	"github.com/lsoto/mantcal/internal/auth"
	"github.com/lsoto/mantcal/internal/fileblob"
	"github.com/lsoto/mantcal/internal/logger"
	"github.com/lsoto/mantcal/internal/models"
	"github.com/lsoto/mantcal/internal/validation"
)

type ToolAddCmd struct {
	Name        string `arg:"" help:"Tool name."`
	Code        string `short:"c" help:"Tool code."`
	Qty         int    `short:"q" help:"Quantity." default:"1"`
	Condition   string `help:"Condition (buena|media|mala|en reparacion)." default:"buena"`
	Description string `help:"Description."`
	Image       string `help:"Path to an image file to embed." type:"existingfile"`
}

func (c *ToolAddCmd) Validate() error {
	return validation.ToolCondition(c.Condition)
}

func (c *ToolAddCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	if _, err := auth.RequireAction(ctx.Store, auth.ActionCreate, auth.EntityTool); err != nil {
		return err
	}

	var image string
	if c.Image != "" {
		uri, _, err := fileblob.Encode(c.Image)
		if err != nil {
			return err
		}
		image = uri
	}

	t, err := ctx.Store.AddTool(models.Tool{
		Name:        c.Name,
		Code:        c.Code,
		Qty:         c.Qty,
		Description: c.Description,
		Condition:   models.ToolCondition(c.Condition),
		Image:       image,
	})
	if err != nil {
		return err
	}

	fmt.Printf("Added tool: %s (id %d)\n", t.Name, t.ID)
	return nil
}

type ToolListCmd struct {
	Condition string `help:"Filter by condition."`
}

func (c *ToolListCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	tools := ctx.Store.Tools()
	if len(tools) == 0 {
		fmt.Println("No tools found")
		return nil
	}

	fmt.Println("Tools:")
	for _, t := range tools {
		if c.Condition != "" && string(t.Condition) != c.Condition {
			continue
		}
		fmt.Printf("  [%d] %s x%d (%s)\n", t.ID, t.Name, t.Qty, t.Condition)
		if t.Description != "" {
			fmt.Printf("      %s\n", t.Description)
		}
	}
	return nil
}

type ToolEditCmd struct {
	ID          int     `arg:"" help:"Tool id."`
	Name        *string `help:"New name."`
	Code        *string `help:"New code."`
	Qty         *int    `help:"New quantity."`
	Condition   *string `help:"New condition."`
	Description *string `help:"New description."`
	Image       *string `help:"Path to a new image file." type:"existingfile"`
}

func (c *ToolEditCmd) Validate() error {
	if c.Condition != nil {
		return validation.ToolCondition(*c.Condition)
	}
	return nil
}

func (c *ToolEditCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	if _, err := auth.RequireAction(ctx.Store, auth.ActionEdit, auth.EntityTool); err != nil {
		return err
	}

	t, ok := ctx.Store.Tool(c.ID)
	if !ok {
		logger.Debug("edit of missing tool ignored", "id", c.ID)
		return nil
	}

	if c.Name != nil {
		t.Name = *c.Name
	}
	if c.Code != nil {
		t.Code = *c.Code
	}
	if c.Qty != nil {
		t.Qty = *c.Qty
	}
	if c.Condition != nil {
		t.Condition = models.ToolCondition(*c.Condition)
	}
	if c.Description != nil {
		t.Description = *c.Description
	}
	if c.Image != nil {
		uri, _, err := fileblob.Encode(*c.Image)
		if err != nil {
			return err
		}
		t.Image = uri
	}

	if err := ctx.Store.UpdateTool(t); err != nil {
		return err
	}
	fmt.Printf("Updated tool %d\n", t.ID)
	return nil
}

type ToolDeleteCmd struct {
	ID  int  `arg:"" help:"Tool id."`
	Yes bool `short:"y" help:"Skip confirmation."`
}

func (c *ToolDeleteCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	if _, err := auth.RequireAction(ctx.Store, auth.ActionDelete, auth.EntityTool); err != nil {
		return err
	}

	if !confirm(fmt.Sprintf("Delete tool %d?", c.ID), c.Yes) {
		fmt.Println("Cancelled")
		return nil
	}

	if err := ctx.Store.DeleteTool(c.ID); err != nil {
		return err
	}
	fmt.Printf("Deleted tool %d\n", c.ID)
	return nil
}

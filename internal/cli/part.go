package cli

import (
	"fmt"

	"github.com/lsoto/mantcal/internal/auth"
	"github.com/lsoto/mantcal/internal/fileblob"
	"github.com/lsoto/mantcal/internal/logger"
	"github.com/lsoto/mantcal/internal/models"
)

type PartAddCmd struct {
	Name      string `arg:"" help:"Spare part name."`
	Code      string `short:"c" help:"Part code."`
	Qty       int    `short:"q" help:"Quantity in stock." default:"0"`
	Machine   int    `short:"m" help:"Machine id (soft reference)."`
	Replenish bool   `help:"Flag the part for replenishment."`
	Image     string `help:"Path to an image file to embed." type:"existingfile"`
}

func (c *PartAddCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	if _, err := auth.RequireAction(ctx.Store, auth.ActionCreate, auth.EntitySparePart); err != nil {
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

	p, err := ctx.Store.AddSparePart(models.SparePart{
		Name:      c.Name,
		Code:      c.Code,
		Qty:       c.Qty,
		MachineID: c.Machine,
		Replenish: c.Replenish,
		Image:     image,
	})
	if err != nil {
		return err
	}

	fmt.Printf("Added spare part: %s (id %d)\n", p.Name, p.ID)
	return nil
}

type PartListCmd struct {
	Machine   int  `help:"Filter by machine id."`
	Replenish bool `help:"Only parts flagged for replenishment."`
}

func (c *PartListCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	parts := ctx.Store.SpareParts()
	if len(parts) == 0 {
		fmt.Println("No spare parts found")
		return nil
	}

	fmt.Println("Spare parts:")
	for _, p := range parts {
		if c.Machine != 0 && p.MachineID != c.Machine {
			continue
		}
		if c.Replenish && !p.Replenish {
			continue
		}
		mark := ""
		if p.Replenish {
			mark = " [replenish]"
		}
		fmt.Printf("  [%d] %s x%d%s\n", p.ID, p.Name, p.Qty, mark)
		if p.MachineID != 0 {
			fmt.Printf("      Machine: %s\n", orDash(machineName(ctx, p.MachineID)))
		}
	}
	return nil
}

type PartEditCmd struct {
	ID        int     `arg:"" help:"Spare part id."`
	Name      *string `help:"New name."`
	Code      *string `help:"New code."`
	Qty       *int    `help:"New quantity."`
	Machine   *int    `help:"New machine id."`
	Replenish *bool   `help:"Set or clear the replenish flag."`
	Image     *string `help:"Path to a new image file." type:"existingfile"`
}

func (c *PartEditCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	if _, err := auth.RequireAction(ctx.Store, auth.ActionEdit, auth.EntitySparePart); err != nil {
		return err
	}

	p, ok := ctx.Store.SparePart(c.ID)
	if !ok {
		logger.Debug("edit of missing spare part ignored", "id", c.ID)
		return nil
	}

	if c.Name != nil {
		p.Name = *c.Name
	}
	if c.Code != nil {
		p.Code = *c.Code
	}
	if c.Qty != nil {
		p.Qty = *c.Qty
	}
	if c.Machine != nil {
		p.MachineID = *c.Machine
	}
	if c.Replenish != nil {
		p.Replenish = *c.Replenish
	}
	if c.Image != nil {
		uri, _, err := fileblob.Encode(*c.Image)
		if err != nil {
			return err
		}
		p.Image = uri
	}

	if err := ctx.Store.UpdateSparePart(p); err != nil {
		return err
	}
	fmt.Printf("Updated spare part %d\n", p.ID)
	return nil
}

type PartDeleteCmd struct {
	ID  int  `arg:"" help:"Spare part id."`
	Yes bool `short:"y" help:"Skip confirmation."`
}

func (c *PartDeleteCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	if _, err := auth.RequireAction(ctx.Store, auth.ActionDelete, auth.EntitySparePart); err != nil {
		return err
	}

	if !confirm(fmt.Sprintf("Delete spare part %d?", c.ID), c.Yes) {
		fmt.Println("Cancelled")
		return nil
	}

	if err := ctx.Store.DeleteSparePart(c.ID); err != nil {
		return err
	}
	fmt.Printf("Deleted spare part %d\n", c.ID)
	return nil
}

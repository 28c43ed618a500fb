package cli

import (
	"fmt"

	"github.com/lsoto/mantcal/internal/auth"
	"github.com/lsoto/mantcal/internal/fileblob"
	"github.com/lsoto/mantcal/internal/logger"
	"github.com/lsoto/mantcal/internal/models"
	"github.com/lsoto/mantcal/internal/validation"
)

type BudgetAddCmd struct {
	Title       string  `arg:"" help:"Budget title."`
	Date        string  `short:"d" help:"Date (YYYY-MM-DD)." required:""`
	Amount      float64 `short:"a" help:"Amount." required:""`
	Status      string  `help:"Status (en revision|aprobado|rechazado)." default:"en revision"`
	Description string  `help:"Description."`
	File        string  `short:"f" help:"Path to a document to embed." type:"existingfile"`
}

func (c *BudgetAddCmd) Validate() error {
	if err := validation.Date(c.Date); err != nil {
		return err
	}
	return validation.BudgetStatus(c.Status)
}

func (c *BudgetAddCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	if _, err := auth.RequireAction(ctx.Store, auth.ActionCreate, auth.EntityBudget); err != nil {
		return err
	}

	var file, filename string
	if c.File != "" {
		uri, name, err := fileblob.Encode(c.File)
		if err != nil {
			return err
		}
		file, filename = uri, name
	}

	b, err := ctx.Store.AddBudget(models.Budget{
		Title:       c.Title,
		Date:        c.Date,
		Amount:      c.Amount,
		Status:      models.BudgetStatus(c.Status),
		Description: c.Description,
		File:        file,
		Filename:    filename,
	})
	if err != nil {
		return err
	}

	fmt.Printf("Added budget: %s (id %d)\n", b.Title, b.ID)
	return nil
}

type BudgetListCmd struct {
	Status string `help:"Filter by status."`
}

func (c *BudgetListCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	budgets := ctx.Store.Budgets()
	if len(budgets) == 0 {
		fmt.Println("No budgets found")
		return nil
	}

	fmt.Println("Budgets:")
	for _, b := range budgets {
		if c.Status != "" && string(b.Status) != c.Status {
			continue
		}
		fmt.Printf("  [%d] %s - %s $%.2f (%s)\n", b.ID, b.Title, b.Date, b.Amount, b.Status)
		if b.Filename != "" {
			fmt.Printf("      Document: %s\n", b.Filename)
		}
	}
	return nil
}

type BudgetEditCmd struct {
	ID          int      `arg:"" help:"Budget id."`
	Title       *string  `help:"New title."`
	Date        *string  `help:"New date (YYYY-MM-DD)."`
	Amount      *float64 `help:"New amount."`
	Status      *string  `help:"New status."`
	Description *string  `help:"New description."`
	File        *string  `help:"Path to a new document." type:"existingfile"`
}

func (c *BudgetEditCmd) Validate() error {
	if c.Date != nil {
		if err := validation.Date(*c.Date); err != nil {
			return err
		}
	}
	if c.Status != nil {
		return validation.BudgetStatus(*c.Status)
	}
	return nil
}

func (c *BudgetEditCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	if _, err := auth.RequireAction(ctx.Store, auth.ActionEdit, auth.EntityBudget); err != nil {
		return err
	}

	b, ok := ctx.Store.Budget(c.ID)
	if !ok {
		logger.Debug("edit of missing budget ignored", "id", c.ID)
		return nil
	}

	if c.Title != nil {
		b.Title = *c.Title
	}
	if c.Date != nil {
		b.Date = *c.Date
	}
	if c.Amount != nil {
		b.Amount = *c.Amount
	}
	if c.Status != nil {
		b.Status = models.BudgetStatus(*c.Status)
	}
	if c.Description != nil {
		b.Description = *c.Description
	}
	if c.File != nil {
		uri, name, err := fileblob.Encode(*c.File)
		if err != nil {
			return err
		}
		b.File, b.Filename = uri, name
	}

	if err := ctx.Store.UpdateBudget(b); err != nil {
		return err
	}
	fmt.Printf("Updated budget %d\n", b.ID)
	return nil
}

type BudgetExportCmd struct {
	ID  int    `arg:"" help:"Budget id."`
	Out string `short:"o" help:"Output path (defaults to the stored filename)."`
}

func (c *BudgetExportCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	b, ok := ctx.Store.Budget(c.ID)
	if !ok {
		return fmt.Errorf("budget %d not found", c.ID)
	}
	if b.File == "" {
		return fmt.Errorf("budget %d has no document", c.ID)
	}

	out := c.Out
	if out == "" {
		out = b.Filename
	}
	if out == "" {
		out = fmt.Sprintf("budget-%d", b.ID)
	}

	if err := fileblob.Export(b.File, out); err != nil {
		return err
	}
	fmt.Printf("Exported document to %s\n", out)
	return nil
}

type BudgetDeleteCmd struct {
	ID  int  `arg:"" help:"Budget id."`
	Yes bool `short:"y" help:"Skip confirmation."`
}

func (c *BudgetDeleteCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	if _, err := auth.RequireAction(ctx.Store, auth.ActionDelete, auth.EntityBudget); err != nil {
		return err
	}

	if !confirm(fmt.Sprintf("Delete budget %d?", c.ID), c.Yes) {
		fmt.Println("Cancelled")
		return nil
	}

	if err := ctx.Store.DeleteBudget(c.ID); err != nil {
		return err
	}
	fmt.Printf("Deleted budget %d\n", c.ID)
	return nil
}

package cli

import (
	"fmt"

	"github.com/lsoto/mantcal/internal/auth"
	"github.com/lsoto/mantcal/internal/logger"
	"github.com/lsoto/mantcal/internal/models"
	"github.com/lsoto/mantcal/internal/validation"
)

type MaintenanceAddCmd struct {
	Machine      int    `arg:"" help:"Machine id (soft reference)."`
	Date         string `short:"d" help:"Date (YYYY-MM-DD)." required:""`
	Type         string `short:"t" help:"Type (preventivo|correctivo|intervencion)." required:""`
	Status       string `help:"Outcome (realizado|no realizado)." default:"realizado"`
	Observations string `short:"o" help:"Observations."`
	Replacement  string `help:"Parts replaced."`
	Responsible  string `short:"r" help:"Responsible technician."`
}

func (c *MaintenanceAddCmd) Validate() error {
	if err := validation.Date(c.Date); err != nil {
		return err
	}
	if err := validation.MaintenanceType(c.Type); err != nil {
		return err
	}
	return validation.MaintenanceStatus(c.Status)
}

func (c *MaintenanceAddCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	if _, err := auth.RequireAction(ctx.Store, auth.ActionCreate, auth.EntityMaintenance); err != nil {
		return err
	}

	rec, err := ctx.Store.AddMaintenance(models.MaintenanceRecord{
		MachineID:    c.Machine,
		Date:         c.Date,
		Type:         models.MaintenanceType(c.Type),
		Observations: c.Observations,
		Replacement:  c.Replacement,
		Status:       models.MaintenanceStatus(c.Status),
		Responsible:  c.Responsible,
	})
	if err != nil {
		return err
	}

	fmt.Printf("Recorded maintenance %d for machine %d\n", rec.ID, rec.MachineID)
	return nil
}

type MaintenanceListCmd struct {
	Machine int    `help:"Filter by machine id."`
	Type    string `help:"Filter by type."`
}

func (c *MaintenanceListCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	records := ctx.Store.Maintenances()
	if len(records) == 0 {
		fmt.Println("No maintenance records found")
		return nil
	}

	fmt.Println("Maintenance history:")
	for _, r := range records {
		if c.Machine != 0 && r.MachineID != c.Machine {
			continue
		}
		if c.Type != "" && string(r.Type) != c.Type {
			continue
		}
		fmt.Printf("  [%d] %s %s - %s (%s)\n",
			r.ID, r.Date, r.Type, orDash(machineName(ctx, r.MachineID)), r.Status)
		if r.Observations != "" {
			fmt.Printf("      %s\n", r.Observations)
		}
	}
	return nil
}

type MaintenanceEditCmd struct {
	ID           int     `arg:"" help:"Record id."`
	Date         *string `help:"New date (YYYY-MM-DD)."`
	Type         *string `help:"New type."`
	Status       *string `help:"New outcome."`
	Observations *string `help:"New observations."`
	Replacement  *string `help:"New replacement notes."`
	Responsible  *string `help:"New responsible technician."`
}

func (c *MaintenanceEditCmd) Validate() error {
	if c.Date != nil {
		if err := validation.Date(*c.Date); err != nil {
			return err
		}
	}
	if c.Type != nil {
		if err := validation.MaintenanceType(*c.Type); err != nil {
			return err
		}
	}
	if c.Status != nil {
		return validation.MaintenanceStatus(*c.Status)
	}
	return nil
}

func (c *MaintenanceEditCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	if _, err := auth.RequireAction(ctx.Store, auth.ActionEdit, auth.EntityMaintenance); err != nil {
		return err
	}

	rec, ok := ctx.Store.Maintenance(c.ID)
	if !ok {
		logger.Debug("edit of missing maintenance record ignored", "id", c.ID)
		return nil
	}

	if c.Date != nil {
		rec.Date = *c.Date
	}
	if c.Type != nil {
		rec.Type = models.MaintenanceType(*c.Type)
	}
	if c.Status != nil {
		rec.Status = models.MaintenanceStatus(*c.Status)
	}
	if c.Observations != nil {
		rec.Observations = *c.Observations
	}
	if c.Replacement != nil {
		rec.Replacement = *c.Replacement
	}
	if c.Responsible != nil {
		rec.Responsible = *c.Responsible
	}

	if err := ctx.Store.UpdateMaintenance(rec); err != nil {
		return err
	}
	fmt.Printf("Updated maintenance record %d\n", rec.ID)
	return nil
}

type MaintenanceDeleteCmd struct {
	ID  int  `arg:"" help:"Record id."`
	Yes bool `short:"y" help:"Skip confirmation."`
}

func (c *MaintenanceDeleteCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	if _, err := auth.RequireAction(ctx.Store, auth.ActionDelete, auth.EntityMaintenance); err != nil {
		return err
	}

	if !confirm(fmt.Sprintf("Delete maintenance record %d?", c.ID), c.Yes) {
		fmt.Println("Cancelled")
		return nil
	}

	if err := ctx.Store.DeleteMaintenance(c.ID); err != nil {
		return err
	}
	fmt.Printf("Deleted maintenance record %d\n", c.ID)
	return nil
}

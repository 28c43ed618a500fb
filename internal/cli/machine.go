package cli

import (
	"fmt"

	"github.com/lsoto/mantcal/internal/auth"
	"github.com/lsoto/mantcal/internal/fileblob"
	"github.com/lsoto/mantcal/internal/logger"
	"github.com/lsoto/mantcal/internal/models"
	"github.com/lsoto/mantcal/internal/validation"
)

type MachineAddCmd struct {
	Name       string `arg:"" help:"Machine name."`
	Plant      string `short:"p" help:"Plant (San Martin|Versalles)." required:""`
	Model      string `help:"Model."`
	Serial     string `help:"Serial number."`
	Dimensions string `help:"Dimensions."`
	Weight     string `help:"Weight."`
	Voltage    string `help:"Voltage."`
	Image      string `help:"Path to an image file to embed." type:"existingfile"`
}

func (c *MachineAddCmd) Validate() error {
	return validation.Plant(c.Plant)
}

func (c *MachineAddCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	if _, err := auth.RequireAction(ctx.Store, auth.ActionCreate, auth.EntityMachine); err != nil {
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

	m, err := ctx.Store.AddMachine(models.Machine{
		Name:       c.Name,
		Model:      c.Model,
		Serial:     c.Serial,
		Plant:      c.Plant,
		Dimensions: c.Dimensions,
		Weight:     c.Weight,
		Voltage:    c.Voltage,
		Image:      image,
	})
	if err != nil {
		return err
	}

	fmt.Printf("Added machine: %s (id %d)\n", m.Name, m.ID)
	return nil
}

type MachineListCmd struct {
	Plant string `help:"Filter by plant."`
}

func (c *MachineListCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	machines := ctx.Store.Machines()
	if len(machines) == 0 {
		fmt.Println("No machines found")
		return nil
	}

	fmt.Println("Machines:")
	for _, m := range machines {
		if c.Plant != "" && m.Plant != c.Plant {
			continue
		}
		fmt.Printf("  [%d] %s (%s)\n", m.ID, m.Name, m.Plant)
		if m.Model != "" || m.Serial != "" {
			fmt.Printf("      Model: %s  Serial: %s\n", orDash(m.Model), orDash(m.Serial))
		}
	}
	return nil
}

type MachineShowCmd struct {
	ID int `arg:"" help:"Machine id."`
}

func (c *MachineShowCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	m, ok := ctx.Store.Machine(c.ID)
	if !ok {
		return fmt.Errorf("machine %d not found", c.ID)
	}

	fmt.Printf("[%d] %s\n", m.ID, m.Name)
	fmt.Printf("  Plant:      %s\n", m.Plant)
	fmt.Printf("  Model:      %s\n", orDash(m.Model))
	fmt.Printf("  Serial:     %s\n", orDash(m.Serial))
	fmt.Printf("  Dimensions: %s\n", orDash(m.Dimensions))
	fmt.Printf("  Weight:     %s\n", orDash(m.Weight))
	fmt.Printf("  Voltage:    %s\n", orDash(m.Voltage))
	if m.Image != "" {
		fmt.Println("  Image:      embedded")
	}

	records := ctx.Store.Maintenances()
	first := true
	for _, r := range records {
		if r.MachineID != m.ID {
			continue
		}
		if first {
			fmt.Println("  Maintenance history:")
			first = false
		}
		fmt.Printf("    %s %s (%s)\n", r.Date, r.Type, r.Status)
	}
	return nil
}

type MachineEditCmd struct {
	ID         int     `arg:"" help:"Machine id."`
	Name       *string `help:"New name."`
	Plant      *string `help:"New plant."`
	Model      *string `help:"New model."`
	Serial     *string `help:"New serial number."`
	Dimensions *string `help:"New dimensions."`
	Weight     *string `help:"New weight."`
	Voltage    *string `help:"New voltage."`
	Image      *string `help:"Path to a new image file." type:"existingfile"`
}

func (c *MachineEditCmd) Validate() error {
	if c.Plant != nil {
		return validation.Plant(*c.Plant)
	}
	return nil
}

func (c *MachineEditCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	if _, err := auth.RequireAction(ctx.Store, auth.ActionEdit, auth.EntityMachine); err != nil {
		return err
	}

	m, ok := ctx.Store.Machine(c.ID)
	if !ok {
		logger.Debug("edit of missing machine ignored", "id", c.ID)
		return nil
	}

	if c.Name != nil {
		m.Name = *c.Name
	}
	if c.Plant != nil {
		m.Plant = *c.Plant
	}
	if c.Model != nil {
		m.Model = *c.Model
	}
	if c.Serial != nil {
		m.Serial = *c.Serial
	}
	if c.Dimensions != nil {
		m.Dimensions = *c.Dimensions
	}
	if c.Weight != nil {
		m.Weight = *c.Weight
	}
	if c.Voltage != nil {
		m.Voltage = *c.Voltage
	}
	if c.Image != nil {
		uri, _, err := fileblob.Encode(*c.Image)
		if err != nil {
			return err
		}
		m.Image = uri
	}

	if err := ctx.Store.UpdateMachine(m); err != nil {
		return err
	}
	fmt.Printf("Updated machine %d\n", m.ID)
	return nil
}

type MachineDeleteCmd struct {
	ID  int  `arg:"" help:"Machine id."`
	Yes bool `short:"y" help:"Skip confirmation."`
}

func (c *MachineDeleteCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	if _, err := auth.RequireAction(ctx.Store, auth.ActionDelete, auth.EntityMachine); err != nil {
		return err
	}

	// Tasks and history referencing the machine keep their id; lookups
	// on the dangling reference render empty.
	if !confirm(fmt.Sprintf("Delete machine %d?", c.ID), c.Yes) {
		fmt.Println("Cancelled")
		return nil
	}

	if err := ctx.Store.DeleteMachine(c.ID); err != nil {
		return err
	}
	fmt.Printf("Deleted machine %d\n", c.ID)
	return nil
}

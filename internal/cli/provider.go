package cli

import (
	"fmt"

	"github.com/lsoto/mantcal/internal/auth"
	"github.com/lsoto/mantcal/internal/logger"
	"github.com/lsoto/mantcal/internal/models"
)

type ProviderAddCmd struct {
	Name  string `arg:"" help:"Provider name."`
	Area  string `short:"a" help:"Service area."`
	Phone string `short:"p" help:"Phone number."`
	Email string `short:"e" help:"Email address."`
}

func (c *ProviderAddCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	if _, err := auth.RequireAction(ctx.Store, auth.ActionCreate, auth.EntityProvider); err != nil {
		return err
	}

	p, err := ctx.Store.AddProvider(models.Provider{
		Name:  c.Name,
		Area:  c.Area,
		Phone: c.Phone,
		Email: c.Email,
	})
	if err != nil {
		return err
	}

	fmt.Printf("Added provider: %s (id %d)\n", p.Name, p.ID)
	return nil
}

type ProviderListCmd struct {
	Area string `help:"Filter by service area."`
}

func (c *ProviderListCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	providers := ctx.Store.Providers()
	if len(providers) == 0 {
		fmt.Println("No providers found")
		return nil
	}

	fmt.Println("Providers:")
	for _, p := range providers {
		if c.Area != "" && p.Area != c.Area {
			continue
		}
		fmt.Printf("  [%d] %s (%s)\n", p.ID, p.Name, orDash(p.Area))
		if p.Phone != "" || p.Email != "" {
			fmt.Printf("      %s  %s\n", orDash(p.Phone), orDash(p.Email))
		}
	}
	return nil
}

type ProviderEditCmd struct {
	ID    int     `arg:"" help:"Provider id."`
	Name  *string `help:"New name."`
	Area  *string `help:"New service area."`
	Phone *string `help:"New phone number."`
	Email *string `help:"New email address."`
}

func (c *ProviderEditCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	if _, err := auth.RequireAction(ctx.Store, auth.ActionEdit, auth.EntityProvider); err != nil {
		return err
	}

	p, ok := ctx.Store.ProviderRecord(c.ID)
	if !ok {
		logger.Debug("edit of missing provider ignored", "id", c.ID)
		return nil
	}

	if c.Name != nil {
		p.Name = *c.Name
	}
	if c.Area != nil {
		p.Area = *c.Area
	}
	if c.Phone != nil {
		p.Phone = *c.Phone
	}
	if c.Email != nil {
		p.Email = *c.Email
	}

	if err := ctx.Store.UpdateProvider(p); err != nil {
		return err
	}
	fmt.Printf("Updated provider %d\n", p.ID)
	return nil
}

type ProviderDeleteCmd struct {
	ID  int  `arg:"" help:"Provider id."`
	Yes bool `short:"y" help:"Skip confirmation."`
}

func (c *ProviderDeleteCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	if _, err := auth.RequireAction(ctx.Store, auth.ActionDelete, auth.EntityProvider); err != nil {
		return err
	}

	if !confirm(fmt.Sprintf("Delete provider %d?", c.ID), c.Yes) {
		fmt.Println("Cancelled")
		return nil
	}

	if err := ctx.Store.DeleteProvider(c.ID); err != nil {
		return err
	}
	fmt.Printf("Deleted provider %d\n", c.ID)
	return nil
}

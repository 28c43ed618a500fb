package cli

import (
	"fmt"

	"github.com/lsoto/mantcal/internal/auth"
	"github.com/lsoto/mantcal/internal/fileblob"
	"github.com/lsoto/mantcal/internal/logger"
	"github.com/lsoto/mantcal/internal/models"
	"github.com/lsoto/mantcal/internal/requests"
	"github.com/lsoto/mantcal/internal/validation"
)

type RequestAddCmd struct {
	Title        string `arg:"" help:"Request title."`
	Date         string `short:"d" help:"Request date (YYYY-MM-DD)." required:""`
	Plant        string `short:"p" help:"Plant (San Martin|Versalles)."`
	Category     string `short:"c" help:"Category (maquina|infraestructura|administrativa)." default:"maquina"`
	Machine      int    `short:"m" help:"Machine id (soft reference)."`
	Urgency      string `short:"u" help:"Urgency (baja|media|alta)." default:"media"`
	Description  string `help:"Problem description."`
	Requirements string `help:"Required materials or conditions."`
	Image        string `help:"Path to an image file to embed." type:"existingfile"`
}

func (c *RequestAddCmd) Validate() error {
	if err := validation.Date(c.Date); err != nil {
		return err
	}
	if c.Plant != "" {
		if err := validation.Plant(c.Plant); err != nil {
			return err
		}
	}
	if err := validation.Category(c.Category); err != nil {
		return err
	}
	return validation.Urgency(c.Urgency)
}

func (c *RequestAddCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	sess, err := auth.RequireAction(ctx.Store, auth.ActionCreate, auth.EntityRequest)
	if err != nil {
		return err
	}

	// A manager files for its own plant regardless of the flag; an admin
	// must say which plant the request is for.
	plant := c.Plant
	if sess.Role == models.RoleManager {
		plant = sess.Plant
	}
	if plant == "" {
		return fmt.Errorf("--plant is required")
	}

	var image string
	if c.Image != "" {
		uri, _, err := fileblob.Encode(c.Image)
		if err != nil {
			return err
		}
		image = uri
	}

	req, err := ctx.Store.AddRequest(models.Request{
		Title:        c.Title,
		Date:         c.Date,
		Category:     models.Category(c.Category),
		Plant:        plant,
		MachineID:    c.Machine,
		Urgency:      models.Urgency(c.Urgency),
		Image:        image,
		Description:  c.Description,
		Requirements: c.Requirements,
		Status:       models.RequestPending,
		CreatedBy:    sess.Username,
	})
	if err != nil {
		return err
	}

	fmt.Printf("Added request: %s (id %d)\n", req.Title, req.ID)
	return nil
}

type RequestListCmd struct {
	Plant  string `help:"Filter by plant."`
	Status string `help:"Filter by status."`
}

func (c *RequestListCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	reqs := ctx.Store.Requests()
	if len(reqs) == 0 {
		fmt.Println("No requests found")
		return nil
	}

	fmt.Println("Requests:")
	for _, r := range reqs {
		if c.Plant != "" && r.Plant != c.Plant {
			continue
		}
		if c.Status != "" && string(r.Status) != c.Status {
			continue
		}
		fmt.Printf("  [%d] %s - %s (%s, %s, %s)\n",
			r.ID, r.Title, r.Date, r.Plant, r.Status, r.Urgency)
		if r.ResolutionDate != "" {
			fmt.Printf("      Scheduled: %s\n", r.ResolutionDate)
		}
	}
	return nil
}

type RequestShowCmd struct {
	ID int `arg:"" help:"Request id."`
}

func (c *RequestShowCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	r, ok := ctx.Store.Request(c.ID)
	if !ok {
		return fmt.Errorf("request %d not found", c.ID)
	}

	fmt.Printf("[%d] %s\n", r.ID, r.Title)
	fmt.Printf("  Date:         %s\n", r.Date)
	fmt.Printf("  Plant:        %s\n", r.Plant)
	fmt.Printf("  Category:     %s\n", orDash(string(r.Category)))
	fmt.Printf("  Machine:      %s\n", orDash(machineName(ctx, r.MachineID)))
	fmt.Printf("  Urgency:      %s\n", orDash(string(r.Urgency)))
	fmt.Printf("  Status:       %s\n", r.Status)
	fmt.Printf("  Created by:   %s\n", orDash(r.CreatedBy))
	if r.Description != "" {
		fmt.Printf("  Description:  %s\n", r.Description)
	}
	if r.Requirements != "" {
		fmt.Printf("  Requirements: %s\n", r.Requirements)
	}
	if r.ResolutionDate != "" {
		fmt.Printf("  Scheduled:    %s\n", r.ResolutionDate)
	}
	if t, ok := requests.LinkedTask(ctx.Store, r.ID); ok {
		fmt.Printf("  Linked task:  %d (%s)\n", t.ID, t.Status)
	}
	return nil
}

type RequestEditCmd struct {
	ID           int     `arg:"" help:"Request id."`
	Title        *string `help:"New title."`
	Date         *string `help:"New date (YYYY-MM-DD)."`
	Plant        *string `help:"New plant."`
	Category     *string `help:"New category."`
	Machine      *int    `help:"New machine id."`
	Urgency      *string `help:"New urgency."`
	Description  *string `help:"New description."`
	Requirements *string `help:"New requirements."`
	Status       *string `help:"New status (pendiente|en revision|aprobada|rechazada)."`
}

func (c *RequestEditCmd) Validate() error {
	if c.Date != nil {
		if err := validation.Date(*c.Date); err != nil {
			return err
		}
	}
	if c.Plant != nil {
		if err := validation.Plant(*c.Plant); err != nil {
			return err
		}
	}
	if c.Category != nil {
		if err := validation.Category(*c.Category); err != nil {
			return err
		}
	}
	if c.Urgency != nil {
		if err := validation.Urgency(*c.Urgency); err != nil {
			return err
		}
	}
	if c.Status != nil {
		return validation.RequestStatus(*c.Status)
	}
	return nil
}

func (c *RequestEditCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	sess, err := auth.RequireAction(ctx.Store, auth.ActionEdit, auth.EntityRequest)
	if err != nil {
		return err
	}

	stored, ok := ctx.Store.Request(c.ID)
	if !ok {
		logger.Debug("edit of missing request ignored", "id", c.ID)
		return nil
	}

	submitted := stored
	if c.Title != nil {
		submitted.Title = *c.Title
	}
	if c.Date != nil {
		submitted.Date = *c.Date
	}
	if c.Plant != nil {
		submitted.Plant = *c.Plant
	}
	if c.Category != nil {
		submitted.Category = models.Category(*c.Category)
	}
	if c.Machine != nil {
		submitted.MachineID = *c.Machine
	}
	if c.Urgency != nil {
		submitted.Urgency = models.Urgency(*c.Urgency)
	}
	if c.Description != nil {
		submitted.Description = *c.Description
	}
	if c.Requirements != nil {
		submitted.Requirements = *c.Requirements
	}
	if c.Status != nil {
		submitted.Status = models.RequestStatus(*c.Status)
	}

	merged := auth.ApplyRequestEdit(sess.Role, stored, submitted)
	if err := ctx.Store.UpdateRequest(merged); err != nil {
		return err
	}
	if err := requests.SyncLinkedTask(ctx.Store, merged); err != nil {
		return err
	}

	fmt.Printf("Updated request %d\n", merged.ID)
	return nil
}

// RequestResolveCmd sets or clears the resolution date, which drives the
// calendar projection: setting it schedules the single linked task, clearing
// it removes that task.
type RequestResolveCmd struct {
	ID    int    `arg:"" help:"Request id."`
	Date  string `short:"d" help:"Resolution date/time (YYYY-MM-DDTHH:MM)." xor:"res"`
	Clear bool   `help:"Clear the resolution date and remove the linked task." xor:"res"`
}

func (c *RequestResolveCmd) Validate() error {
	if !c.Clear {
		if c.Date == "" {
			return fmt.Errorf("either --date or --clear is required")
		}
		return validation.DateTime(c.Date)
	}
	return nil
}

func (c *RequestResolveCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	sess, err := auth.Require(ctx.Store)
	if err != nil {
		return err
	}
	if sess.Role != models.RoleAdmin {
		return fmt.Errorf("only admins schedule resolutions")
	}

	req, ok := ctx.Store.Request(c.ID)
	if !ok {
		logger.Debug("resolve of missing request ignored", "id", c.ID)
		return nil
	}

	if c.Clear {
		req.ResolutionDate = ""
	} else {
		req.ResolutionDate = c.Date
	}

	if err := ctx.Store.UpdateRequest(req); err != nil {
		return err
	}
	if err := requests.SyncLinkedTask(ctx.Store, req); err != nil {
		return err
	}

	if c.Clear {
		fmt.Printf("Cleared resolution for request %d\n", req.ID)
	} else {
		fmt.Printf("Scheduled request %d for %s\n", req.ID, req.ResolutionDate)
	}
	return nil
}

type RequestDeleteCmd struct {
	ID  int  `arg:"" help:"Request id."`
	Yes bool `short:"y" help:"Skip confirmation."`
}

func (c *RequestDeleteCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	if _, err := auth.RequireAction(ctx.Store, auth.ActionDelete, auth.EntityRequest); err != nil {
		return err
	}

	if !confirm(fmt.Sprintf("Delete request %d?", c.ID), c.Yes) {
		fmt.Println("Cancelled")
		return nil
	}

	// The linked task, if any, stays on the calendar with a dangling
	// LinkedRequestID. Deleting the request does not unschedule work.
	if err := ctx.Store.DeleteRequest(c.ID); err != nil {
		return err
	}
	fmt.Printf("Deleted request %d\n", c.ID)
	return nil
}

package cli

import (
	"fmt"

	"github.com/lsoto/mantcal/internal/auth"
	"github.com/lsoto/mantcal/internal/models"
	"github.com/lsoto/mantcal/internal/validation"
)

type TaskAddCmd struct {
	Title      string `arg:"" help:"Task title."`
	Plant      string `short:"p" help:"Plant (San Martin|Versalles)." required:""`
	Start      string `short:"s" help:"Start date/time (YYYY-MM-DDTHH:MM)." required:""`
	Category   string `short:"c" help:"Category (maquina|infraestructura|administrativa)." default:"maquina"`
	Machine    int    `short:"m" help:"Machine id (soft reference)."`
	Status     string `help:"Initial status." default:"pendiente"`
	Urgency    string `short:"u" help:"Urgency (baja|media|alta)." default:"media"`
	Technician string `short:"t" help:"Assigned technician."`
}

func (c *TaskAddCmd) Validate() error {
	if err := validation.Plant(c.Plant); err != nil {
		return err
	}
	if err := validation.DateTime(c.Start); err != nil {
		return err
	}
	if err := validation.Category(c.Category); err != nil {
		return err
	}
	if err := validation.TaskStatus(c.Status); err != nil {
		return err
	}
	return validation.Urgency(c.Urgency)
}

func (c *TaskAddCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	sess, err := auth.RequireAction(ctx.Store, auth.ActionCreate, auth.EntityTask)
	if err != nil {
		return err
	}

	task, err := ctx.Store.AddTask(models.Task{
		Title:      c.Title,
		Category:   models.Category(c.Category),
		Plant:      c.Plant,
		MachineID:  c.Machine,
		Start:      c.Start,
		End:        c.Start, // tasks are instants
		Status:     models.TaskStatus(c.Status),
		Urgency:    models.Urgency(c.Urgency),
		Technician: c.Technician,
		CreatedBy:  sess.Username,
	})
	if err != nil {
		return err
	}

	fmt.Printf("Added task: %s (id %d)\n", task.Title, task.ID)
	return nil
}

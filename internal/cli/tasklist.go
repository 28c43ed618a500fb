package cli

import "fmt"

type TaskListCmd struct {
	Plant  string `help:"Filter by plant."`
	Status string `help:"Filter by status."`
	Date   string `help:"Filter by start date (YYYY-MM-DD)."`
}

func (c *TaskListCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	tasks := ctx.Store.Tasks()
	if len(tasks) == 0 {
		fmt.Println("No tasks found")
		return nil
	}

	fmt.Println("Tasks:")
	for _, t := range tasks {
		if c.Plant != "" && t.Plant != c.Plant {
			continue
		}
		if c.Status != "" && string(t.Status) != c.Status {
			continue
		}
		if c.Date != "" && t.StartDateKey() != c.Date {
			continue
		}

		fmt.Printf("  [%d] %s - %s (%s, %s, %s)\n",
			t.ID, t.Title, t.Start, t.Plant, t.Status, t.Urgency)
		if t.MachineID != 0 {
			fmt.Printf("      Machine: %s\n", orDash(machineName(ctx, t.MachineID)))
		}
		if t.LinkedRequestID != 0 {
			fmt.Printf("      Linked request: %d\n", t.LinkedRequestID)
		}
	}

	return nil
}

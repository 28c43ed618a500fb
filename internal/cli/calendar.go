package cli

import (
	"fmt"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/lsoto/mantcal/internal/calendar"
)

type CalendarCmd struct {
	Year  int `help:"Year to show." default:"0"`
	Month int `help:"Month to show (1-12)." default:"0"`
}

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Width(14).Align(lipgloss.Center)
	cellStyle   = lipgloss.NewStyle().Width(14).Height(4).
			Border(lipgloss.NormalBorder()).Padding(0, 1)
	inactiveStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
)

func (c *CalendarCmd) Validate() error {
	if c.Month < 0 || c.Month > 12 {
		return fmt.Errorf("month must be between 1 and 12")
	}
	return nil
}

func (c *CalendarCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	now := time.Now()
	year, month := c.Year, time.Month(c.Month)
	if year == 0 {
		year = now.Year()
	}
	if month == 0 {
		month = now.Month()
	}

	grid := calendar.MonthGrid(year, month, ctx.Store.Tasks(), time.Local)

	fmt.Println(lipgloss.NewStyle().Bold(true).Render(calendar.Title(year, month)))

	headers := make([]string, len(calendar.DayHeaders))
	for i, h := range calendar.DayHeaders {
		headers[i] = headerStyle.Render(h)
	}
	fmt.Println(lipgloss.JoinHorizontal(lipgloss.Top, headers...))

	for row := 0; row < 6; row++ {
		cells := make([]string, 7)
		for col := 0; col < 7; col++ {
			cell := grid.Cells[row*7+col]
			content := fmt.Sprintf("%d", cell.Day)
			for i, t := range cell.Tasks {
				if i == 2 && len(cell.Tasks) > 3 {
					content += fmt.Sprintf("\n+%d más", len(cell.Tasks)-2)
					break
				}
				title := t.Title
				if r := []rune(title); len(r) > 12 {
					title = string(r[:11]) + "…"
				}
				content += "\n" + title
			}
			if cell.Inactive {
				content = inactiveStyle.Render(content)
			}
			cells[col] = cellStyle.Render(content)
		}
		fmt.Println(lipgloss.JoinHorizontal(lipgloss.Top, cells...))
	}

	return nil
}

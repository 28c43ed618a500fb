// Package monthview renders the monthly calendar grid with its tasks.
package monthview

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/lsoto/mantcal/internal/calendar"
	"github.com/lsoto/mantcal/internal/models"
)

type KeyMap struct {
	Prev  key.Binding
	Next  key.Binding
	Today key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Prev: key.NewBinding(
			key.WithKeys("h", "left"),
			key.WithHelp("h", "prev month"),
		),
		Next: key.NewBinding(
			key.WithKeys("l", "right"),
			key.WithHelp("l", "next month"),
		),
		Today: key.NewBinding(
			key.WithKeys("t"),
			key.WithHelp("t", "today"),
		),
	}
}

var (
	titleStyle  = lipgloss.NewStyle().Bold(true)
	headerStyle = lipgloss.NewStyle().Bold(true).Width(14).Align(lipgloss.Center)
	cellStyle   = lipgloss.NewStyle().Width(14).Height(4).
			Border(lipgloss.NormalBorder()).Padding(0, 1)
	inactiveStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	todayStyle    = lipgloss.NewStyle().Width(14).Height(4).
			Border(lipgloss.NormalBorder()).Padding(0, 1).
			BorderForeground(lipgloss.Color("205"))
)

// Model holds the explicitly tracked viewed month; navigation never depends
// on re-reading the clock.
type Model struct {
	year  int
	month time.Month
	grid  calendar.Grid
	tasks []models.Task
	keys  KeyMap
}

func New(tasks []models.Task) Model {
	now := time.Now()
	m := Model{year: now.Year(), month: now.Month(), tasks: tasks, keys: DefaultKeyMap()}
	m.regrid()
	return m
}

func (m *Model) regrid() {
	m.grid = calendar.MonthGrid(m.year, m.month, m.tasks, time.Local)
}

// SetTasks refreshes the grid after a mutation elsewhere in the program.
func (m *Model) SetTasks(tasks []models.Task) {
	m.tasks = tasks
	m.regrid()
}

func (m Model) Year() int         { return m.year }
func (m Model) Month() time.Month { return m.month }

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Prev):
			m.year, m.month = calendar.PrevMonth(m.year, m.month)
			m.regrid()
		case key.Matches(msg, m.keys.Next):
			m.year, m.month = calendar.NextMonth(m.year, m.month)
			m.regrid()
		case key.Matches(msg, m.keys.Today):
			now := time.Now()
			m.year, m.month = now.Year(), now.Month()
			m.regrid()
		}
	}
	return m, nil
}

func (m Model) View() string {
	todayKey := calendar.DateKey(time.Now().Year(), time.Now().Month(), time.Now().Day(), time.Local)

	rows := []string{
		titleStyle.Render(calendar.Title(m.year, m.month)),
	}

	headers := make([]string, len(calendar.DayHeaders))
	for i, h := range calendar.DayHeaders {
		headers[i] = headerStyle.Render(h)
	}
	rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, headers...))

	for row := 0; row < 6; row++ {
		cells := make([]string, 7)
		for col := 0; col < 7; col++ {
			cell := m.grid.Cells[row*7+col]
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
			style := cellStyle
			if !cell.Inactive && cell.Key == todayKey {
				style = todayStyle
			}
			cells[col] = style.Render(content)
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cells...))
	}

	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

package requestlist

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/lsoto/mantcal/internal/models"
)

type AddRequestMsg struct{}

type ResolveRequestMsg struct {
	Request models.Request
}

type DeleteRequestMsg struct {
	ID int
}

type Item struct {
	Request models.Request
}

func (i Item) Title() string { return i.Request.Title }
func (i Item) Description() string {
	desc := fmt.Sprintf("%s | %s | %s", i.Request.Date, i.Request.Plant, i.Request.Status)
	if i.Request.ResolutionDate != "" {
		desc += " | programada " + i.Request.ResolutionDate
	}
	return desc
}
func (i Item) FilterValue() string { return i.Request.Title }

type KeyMap struct {
	Add     key.Binding
	Resolve key.Binding
	Delete  key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Add: key.NewBinding(
			key.WithKeys("a"),
			key.WithHelp("a", "add"),
		),
		Resolve: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "resolve"),
		),
		Delete: key.NewBinding(
			key.WithKeys("d"),
			key.WithHelp("d", "delete"),
		),
	}
}

type Model struct {
	list list.Model
	keys KeyMap
}

func New(requests []models.Request, width, height int) Model {
	items := make([]list.Item, len(requests))
	for i, r := range requests {
		items[i] = Item{Request: r}
	}

	l := list.New(items, list.NewDefaultDelegate(), width, height)
	l.Title = "Solicitudes"
	l.SetShowTitle(false)
	l.SetShowHelp(false)

	keys := DefaultKeyMap()
	l.AdditionalShortHelpKeys = func() []key.Binding {
		return []key.Binding{keys.Add, keys.Resolve, keys.Delete}
	}
	l.AdditionalFullHelpKeys = func() []key.Binding {
		return []key.Binding{keys.Add, keys.Resolve, keys.Delete}
	}

	return Model{list: l, keys: keys}
}

func (m *Model) SetRequests(requests []models.Request) {
	items := make([]list.Item, len(requests))
	for i, r := range requests {
		items[i] = Item{Request: r}
	}
	m.list.SetItems(items)
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.list.FilterState() == list.Filtering {
			break
		}
		switch {
		case key.Matches(msg, m.keys.Add):
			return m, func() tea.Msg { return AddRequestMsg{} }
		case key.Matches(msg, m.keys.Resolve):
			if i, ok := m.list.SelectedItem().(Item); ok {
				return m, func() tea.Msg { return ResolveRequestMsg{Request: i.Request} }
			}
		case key.Matches(msg, m.keys.Delete):
			if i, ok := m.list.SelectedItem().(Item); ok {
				return m, func() tea.Msg { return DeleteRequestMsg{ID: i.Request.ID} }
			}
		}
	}

	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m Model) View() string {
	if len(m.list.Items()) == 0 && m.list.FilterState() != list.Filtering {
		return "\n  No requests yet.\n  Press 'a' to add one."
	}
	return m.list.View()
}

func (m *Model) SetSize(width, height int) {
	m.list.SetSize(width, height)
}

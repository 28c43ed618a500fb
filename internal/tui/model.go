package tui

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/lsoto/mantcal/internal/models"
	"github.com/lsoto/mantcal/internal/storage"
	"github.com/lsoto/mantcal/internal/tui/components/monthview"
	"github.com/lsoto/mantcal/internal/tui/components/requestlist"
	"github.com/lsoto/mantcal/internal/tui/components/tasklist"
)

type SessionState int

const (
	StateCalendar SessionState = iota
	StateTasks
	StateRequests
	StateEditingTask
	StateEditingRequest
	StateResolving
	StateConfirmDeleteTask
	StateConfirmDeleteRequest
)

// tabCount covers the states reachable with tab; the editing and confirm
// states are only entered through actions.
const tabCount = 3

type TaskFormModel struct {
	Title      string
	Plant      string
	Start      string
	Category   models.Category
	MachineID  string
	Status     models.TaskStatus
	Urgency    models.Urgency
	Technician string
}

type RequestFormModel struct {
	Title        string
	Date         string
	Plant        string
	Category     models.Category
	MachineID    string
	Urgency      models.Urgency
	Description  string
	Requirements string
}

type ResolveFormModel struct {
	Date  string
	Clear bool
}

type Model struct {
	store             storage.Provider
	session           *models.Session
	state             SessionState
	keys              KeyMap
	help              help.Model
	monthView         monthview.Model
	taskList          tasklist.Model
	requestList       requestlist.Model
	form              *huh.Form
	taskForm          *TaskFormModel
	requestForm       *RequestFormModel
	resolveForm       *ResolveFormModel
	editingTask       *models.Task
	resolvingRequest  *models.Request
	taskToDeleteID    int
	requestToDeleteID int
	statusMsg         string
	quitting          bool
	width             int
	height            int
}

func NewModel(store storage.Provider) Model {
	var session *models.Session
	if s, ok := store.Session(); ok {
		session = &s
	}

	return Model{
		store:       store,
		session:     session,
		state:       StateCalendar,
		keys:        DefaultKeyMap(),
		help:        help.New(),
		monthView:   monthview.New(store.Tasks()),
		taskList:    tasklist.New(store.Tasks(), 0, 0),
		requestList: requestlist.New(store.Requests(), 0, 0),
	}
}

func (m Model) ShortHelp() []key.Binding {
	keys := []key.Binding{m.keys.Tab, m.keys.Quit, m.keys.Help}
	switch m.state {
	case StateCalendar:
		keys = append(keys, m.keys.PrevMonth, m.keys.NextMonth, m.keys.Today)
	case StateTasks:
		keys = append(keys, m.keys.Add, m.keys.Edit, m.keys.Delete)
	case StateRequests:
		keys = append(keys, m.keys.Add, m.keys.Resolve, m.keys.Delete)
	}
	return keys
}

func (m Model) FullHelp() [][]key.Binding {
	global := []key.Binding{m.keys.Tab, m.keys.ShiftTab, m.keys.Quit, m.keys.Help}
	navigation := []key.Binding{m.keys.Up, m.keys.Down, m.keys.Enter}

	var actions []key.Binding
	switch m.state {
	case StateCalendar:
		actions = []key.Binding{m.keys.PrevMonth, m.keys.NextMonth, m.keys.Today}
	case StateTasks:
		actions = []key.Binding{m.keys.Add, m.keys.Edit, m.keys.Delete}
	case StateRequests:
		actions = []key.Binding{m.keys.Add, m.keys.Resolve, m.keys.Delete}
	}

	return [][]key.Binding{global, navigation, actions}
}

func (m Model) Init() tea.Cmd {
	return nil
}

// refresh re-reads the store after a mutation so every component renders the
// same data.
func (m *Model) refresh() {
	tasks := m.store.Tasks()
	m.monthView.SetTasks(tasks)
	m.taskList.SetTasks(tasks)
	m.requestList.SetRequests(m.store.Requests())
}

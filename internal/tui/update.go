package tui

import (
	"strconv"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/lsoto/mantcal/internal/auth"
	"github.com/lsoto/mantcal/internal/models"
	"github.com/lsoto/mantcal/internal/requests"
	"github.com/lsoto/mantcal/internal/tui/components/requestlist"
	"github.com/lsoto/mantcal/internal/tui/components/tasklist"
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.taskList.SetSize(msg.Width-4, msg.Height-6)
		m.requestList.SetSize(msg.Width-4, msg.Height-6)
		return m, nil
	}

	switch m.state {
	case StateEditingTask:
		return m.updateEditingTask(msg)
	case StateEditingRequest:
		return m.updateEditingRequest(msg)
	case StateResolving:
		return m.updateResolving(msg)
	case StateConfirmDeleteTask, StateConfirmDeleteRequest:
		return m.updateConfirmDelete(msg)
	}

	if msg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Tab):
			m.state = (m.state + 1) % tabCount
			m.statusMsg = ""
			return m, nil
		case key.Matches(msg, m.keys.ShiftTab):
			m.state = (m.state - 1 + tabCount) % tabCount
			m.statusMsg = ""
			return m, nil
		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
			return m, nil
		}
	}

	var cmd tea.Cmd
	switch m.state {
	case StateCalendar:
		m.monthView, cmd = m.monthView.Update(msg)
		return m, cmd
	case StateTasks:
		if handled, c := m.handleTaskMessages(msg); handled {
			return m, c
		}
		m.taskList, cmd = m.taskList.Update(msg)
		return m, cmd
	case StateRequests:
		if handled, c := m.handleRequestMessages(msg); handled {
			return m, c
		}
		m.requestList, cmd = m.requestList.Update(msg)
		return m, cmd
	}

	return m, nil
}

// can gates an action on the current session. Anonymous use is read-only; a
// denied action leaves a status line instead of failing silently.
func (m *Model) can(action auth.Action, entity auth.Entity) bool {
	if m.session == nil {
		m.statusMsg = "Inicie sesión para modificar datos"
		return false
	}
	if !auth.Can(m.session.Role, action, entity) {
		m.statusMsg = "Acción no permitida para el rol " + string(m.session.Role)
		return false
	}
	m.statusMsg = ""
	return true
}

func (m *Model) handleTaskMessages(msg tea.Msg) (bool, tea.Cmd) {
	switch msg := msg.(type) {
	case tasklist.AddTaskMsg:
		if !m.can(auth.ActionCreate, auth.EntityTask) {
			return true, nil
		}
		task := models.Task{
			Plant:    models.PlantSanMartin,
			Category: models.CategoryMachine,
			Status:   models.TaskPending,
			Urgency:  models.UrgencyMedium,
		}
		m.editingTask = &task
		m.taskForm = taskFormFrom(task)
		m.form = NewTaskForm(m.session.Role, m.taskForm)
		m.state = StateEditingTask
		return true, m.form.Init()

	case tasklist.EditTaskMsg:
		if !m.can(auth.ActionEdit, auth.EntityTask) {
			return true, nil
		}
		task := msg.Task
		m.editingTask = &task
		m.taskForm = taskFormFrom(task)
		m.form = NewTaskForm(m.session.Role, m.taskForm)
		m.state = StateEditingTask
		return true, m.form.Init()

	case tasklist.DeleteTaskMsg:
		if !m.can(auth.ActionDelete, auth.EntityTask) {
			return true, nil
		}
		m.taskToDeleteID = msg.ID
		m.state = StateConfirmDeleteTask
		return true, nil
	}
	return false, nil
}

func (m *Model) handleRequestMessages(msg tea.Msg) (bool, tea.Cmd) {
	switch msg := msg.(type) {
	case requestlist.AddRequestMsg:
		if !m.can(auth.ActionCreate, auth.EntityRequest) {
			return true, nil
		}
		fm := &RequestFormModel{
			Plant:    m.session.Plant,
			Category: models.CategoryMachine,
			Urgency:  models.UrgencyMedium,
		}
		if fm.Plant == "" {
			fm.Plant = models.PlantSanMartin
		}
		m.requestForm = fm
		m.form = NewRequestForm(m.session.Role, fm)
		m.state = StateEditingRequest
		return true, m.form.Init()

	case requestlist.ResolveRequestMsg:
		if m.session == nil || m.session.Role != models.RoleAdmin {
			m.statusMsg = "Solo un administrador programa resoluciones"
			return true, nil
		}
		req := msg.Request
		m.resolvingRequest = &req
		m.resolveForm = &ResolveFormModel{Date: req.ResolutionDate}
		m.form = NewResolveForm(m.resolveForm)
		m.state = StateResolving
		return true, m.form.Init()

	case requestlist.DeleteRequestMsg:
		if !m.can(auth.ActionDelete, auth.EntityRequest) {
			return true, nil
		}
		m.requestToDeleteID = msg.ID
		m.state = StateConfirmDeleteRequest
		return true, nil
	}
	return false, nil
}

func taskFormFrom(task models.Task) *TaskFormModel {
	machineID := ""
	if task.MachineID != 0 {
		machineID = strconv.Itoa(task.MachineID)
	}
	return &TaskFormModel{
		Title:      task.Title,
		Plant:      task.Plant,
		Start:      task.Start,
		Category:   task.Category,
		MachineID:  machineID,
		Status:     task.Status,
		Urgency:    task.Urgency,
		Technician: task.Technician,
	}
}

func (m Model) updateEditingTask(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok && msg.Type == tea.KeyEsc {
		m.state = StateTasks
		return m, nil
	}

	var cmds []tea.Cmd
	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}
	cmds = append(cmds, cmd)

	switch m.form.State {
	case huh.StateCompleted:
		machineID, _ := strconv.Atoi(m.taskForm.MachineID)
		submitted := *m.editingTask
		submitted.Title = m.taskForm.Title
		submitted.Plant = m.taskForm.Plant
		submitted.Start = m.taskForm.Start
		submitted.End = m.taskForm.Start
		submitted.Category = m.taskForm.Category
		submitted.MachineID = machineID
		submitted.Status = m.taskForm.Status
		submitted.Urgency = m.taskForm.Urgency
		submitted.Technician = m.taskForm.Technician

		var saveErr error
		if m.editingTask.ID == 0 {
			submitted.CreatedBy = m.session.Username
			_, saveErr = m.store.AddTask(submitted)
		} else {
			merged := auth.ApplyTaskEdit(m.session.Role, *m.editingTask, submitted)
			saveErr = m.store.UpdateTask(merged)
		}
		if saveErr != nil {
			m.statusMsg = "Error: " + saveErr.Error()
		} else {
			m.refresh()
		}
		m.state = StateTasks
	case huh.StateAborted:
		m.state = StateTasks
	}
	return m, tea.Batch(cmds...)
}

func (m Model) updateEditingRequest(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok && msg.Type == tea.KeyEsc {
		m.state = StateRequests
		return m, nil
	}

	var cmds []tea.Cmd
	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}
	cmds = append(cmds, cmd)

	switch m.form.State {
	case huh.StateCompleted:
		machineID, _ := strconv.Atoi(m.requestForm.MachineID)
		plant := m.requestForm.Plant
		if m.session.Role == models.RoleManager {
			plant = m.session.Plant
		}
		_, saveErr := m.store.AddRequest(models.Request{
			Title:        m.requestForm.Title,
			Date:         m.requestForm.Date,
			Category:     m.requestForm.Category,
			Plant:        plant,
			MachineID:    machineID,
			Urgency:      m.requestForm.Urgency,
			Description:  m.requestForm.Description,
			Requirements: m.requestForm.Requirements,
			Status:       models.RequestPending,
			CreatedBy:    m.session.Username,
		})
		if saveErr != nil {
			m.statusMsg = "Error: " + saveErr.Error()
		} else {
			m.refresh()
		}
		m.state = StateRequests
	case huh.StateAborted:
		m.state = StateRequests
	}
	return m, tea.Batch(cmds...)
}

func (m Model) updateResolving(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok && msg.Type == tea.KeyEsc {
		m.state = StateRequests
		return m, nil
	}

	var cmds []tea.Cmd
	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}
	cmds = append(cmds, cmd)

	switch m.form.State {
	case huh.StateCompleted:
		req := *m.resolvingRequest
		if m.resolveForm.Clear {
			req.ResolutionDate = ""
		} else if m.resolveForm.Date != "" {
			req.ResolutionDate = m.resolveForm.Date
		}

		saveErr := m.store.UpdateRequest(req)
		if saveErr == nil {
			saveErr = requests.SyncLinkedTask(m.store, req)
		}
		if saveErr != nil {
			m.statusMsg = "Error: " + saveErr.Error()
		} else {
			m.refresh()
		}
		m.state = StateRequests
	case huh.StateAborted:
		m.state = StateRequests
	}
	return m, tea.Batch(cmds...)
}

func (m Model) updateConfirmDelete(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch keyMsg.String() {
	case "y", "Y":
		var err error
		if m.state == StateConfirmDeleteTask {
			err = m.store.DeleteTask(m.taskToDeleteID)
			m.state = StateTasks
		} else {
			err = m.store.DeleteRequest(m.requestToDeleteID)
			m.state = StateRequests
		}
		if err != nil {
			m.statusMsg = "Error: " + err.Error()
		} else {
			m.refresh()
		}
	case "n", "N", "esc", "q":
		if m.state == StateConfirmDeleteTask {
			m.state = StateTasks
		} else {
			m.state = StateRequests
		}
	}
	return m, nil
}

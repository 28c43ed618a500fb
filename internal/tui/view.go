package tui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var content string
	switch m.state {
	case StateCalendar:
		content = docStyle.Render(m.monthView.View())
	case StateTasks:
		content = docStyle.Render(m.taskList.View())
	case StateRequests:
		content = docStyle.Render(m.requestList.View())
	case StateEditingTask, StateEditingRequest, StateResolving:
		content = docStyle.Render(m.form.View())
	case StateConfirmDeleteTask:
		content = m.viewConfirmDelete(fmt.Sprintf("¿Eliminar la tarea %d?", m.taskToDeleteID))
	case StateConfirmDeleteRequest:
		content = m.viewConfirmDelete(fmt.Sprintf("¿Eliminar la solicitud %d?", m.requestToDeleteID))
	}

	parts := []string{m.viewTabs(), content}
	if m.statusMsg != "" {
		parts = append(parts, statusStyle.Render(m.statusMsg))
	}
	parts = append(parts, m.help.View(m))

	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func (m Model) viewTabs() string {
	var tabs []string
	for i, title := range []string{"Calendario", "Tareas", "Solicitudes"} {
		if m.state == SessionState(i) {
			tabs = append(tabs, activeTabStyle.Render(title))
		} else {
			tabs = append(tabs, inactiveTabStyle.Render(title))
		}
	}

	who := "anónimo (solo lectura)"
	if m.session != nil {
		who = fmt.Sprintf("%s (%s)", m.session.Name, m.session.Role)
	}
	tabs = append(tabs, statusStyle.Render(who))

	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

func (m Model) viewConfirmDelete(prompt string) string {
	return lipgloss.Place(m.width, m.height-4,
		lipgloss.Center, lipgloss.Center,
		lipgloss.JoinVertical(lipgloss.Center,
			dangerStyle.Render(prompt),
			"",
			"[y] Sí",
			"[n] No",
		),
	)
}

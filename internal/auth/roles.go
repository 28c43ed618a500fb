package auth

import "github.com/lsoto/mantcal/internal/models"

// Entity enumerates everything the role gate guards.
type Entity int

const (
	EntityTask Entity = iota
	EntityMachine
	EntityMaintenance
	EntityRequest
	EntityBudget
	EntitySparePart
	EntityTool
	EntityProvider
	EntityTemplate
	EntityUser
)

// Action enumerates what can be done to an entity.
type Action int

const (
	ActionView Action = iota
	ActionCreate
	ActionEdit
	ActionDelete
)

// Can is the single permission check. Capabilities are enumerated per role,
// not layered: manager is not a subset relation over admin, it is its own
// explicit set.
//
//   - admin: full CRUD on every entity, including the user directory.
//   - manager: reads everything, creates requests for its own plant, and
//     edits tasks/requests only through the restricted status transitions
//     (see CanTransitionTask); never deletes.
//   - viewer: read-only everywhere.
func Can(role models.Role, action Action, entity Entity) bool {
	switch role {
	case models.RoleAdmin:
		return true
	case models.RoleManager:
		switch action {
		case ActionView:
			return entity != EntityUser
		case ActionCreate:
			return entity == EntityRequest
		case ActionEdit:
			return entity == EntityTask || entity == EntityRequest
		case ActionDelete:
			return false
		}
		return false
	case models.RoleViewer:
		return action == ActionView && entity != EntityUser
	}
	return false
}

// CanTransitionTask reports whether a manager may move a task from one
// status to another: anything not yet closed can be cancelled, and accepted
// or in-progress work can be completed. Resubmitting the current status is
// always allowed (the form echoes back disabled values).
func CanTransitionTask(from, to models.TaskStatus) bool {
	if from == to {
		return true
	}
	switch to {
	case models.TaskCancelled:
		return from == models.TaskPending || from == models.TaskAccepted || from == models.TaskInProgress
	case models.TaskCompleted:
		return from == models.TaskAccepted || from == models.TaskInProgress
	}
	return false
}

// AllowedTaskTransitions lists the statuses a manager can move a task to,
// current status first, the way the original builds the restricted select.
func AllowedTaskTransitions(from models.TaskStatus) []models.TaskStatus {
	out := []models.TaskStatus{from}
	for _, to := range []models.TaskStatus{models.TaskCancelled, models.TaskCompleted} {
		if to != from && CanTransitionTask(from, to) {
			out = append(out, to)
		}
	}
	return out
}

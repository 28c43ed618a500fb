// Package requests holds the one cross-entity write rule in the system:
// the projection of a resolved request onto the task calendar.
package requests

import (
	"github.com/lsoto/mantcal/internal/models"
	"github.com/lsoto/mantcal/internal/storage"
)

// LinkedTask returns the task derived from the given request, if any. The
// join key is Task.LinkedRequestID; at most one such task exists.
func LinkedTask(store storage.Provider, requestID int) (models.Task, bool) {
	if requestID == 0 {
		return models.Task{}, false
	}
	for _, t := range store.Tasks() {
		if t.LinkedRequestID == requestID {
			return t, true
		}
	}
	return models.Task{}, false
}

// SyncLinkedTask applies the request → task projection after a request
// mutation. A set resolution date creates or reschedules the single linked
// task; a cleared one deletes it and no other. The projection is one-way:
// nothing ever flows from the task back onto the request.
func SyncLinkedTask(store storage.Provider, req models.Request) error {
	existing, ok := LinkedTask(store, req.ID)

	if req.ResolutionDate == "" {
		if ok {
			return store.DeleteTask(existing.ID)
		}
		return nil
	}

	if ok {
		// Reschedule and refresh descriptive fields; progress the admin
		// may have recorded on the task itself is kept.
		existing.Title = req.Title
		existing.Category = req.Category
		existing.Plant = req.Plant
		existing.MachineID = req.MachineID
		existing.Urgency = req.Urgency
		existing.Start = req.ResolutionDate
		existing.End = req.ResolutionDate
		return store.UpdateTask(existing)
	}

	_, err := store.AddTask(models.Task{
		Title:           req.Title,
		Category:        req.Category,
		Plant:           req.Plant,
		MachineID:       req.MachineID,
		Start:           req.ResolutionDate,
		End:             req.ResolutionDate,
		Status:          models.TaskPending,
		Urgency:         req.Urgency,
		CreatedBy:       req.CreatedBy,
		LinkedRequestID: req.ID,
	})
	return err
}

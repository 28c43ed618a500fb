package auth

import "github.com/lsoto/mantcal/internal/models"

// ApplyTaskEdit merges an edit submission into the stored task according to
// the caller's role. Fields outside the role's allowed set behave like
// disabled form inputs: the stored value is kept no matter what the
// submission carries.
//
//   - admin: every field is writable; End is pinned to Start because tasks
//     are instants.
//   - manager: only the status moves, and only along the restricted
//     transition path; an illegal target status is dropped.
//   - viewer: nothing changes.
func ApplyTaskEdit(role models.Role, stored, submitted models.Task) models.Task {
	switch role {
	case models.RoleAdmin:
		submitted.ID = stored.ID
		submitted.End = submitted.Start
		return submitted
	case models.RoleManager:
		if CanTransitionTask(stored.Status, submitted.Status) {
			stored.Status = submitted.Status
		}
		return stored
	}
	return stored
}

// ApplyRequestEdit merges an edit submission into the stored request. Only
// admins edit request fields; the review statuses and the resolution date
// are admin decisions. Managers and viewers get the stored record back
// unchanged.
func ApplyRequestEdit(role models.Role, stored, submitted models.Request) models.Request {
	if role == models.RoleAdmin {
		submitted.ID = stored.ID
		return submitted
	}
	return stored
}

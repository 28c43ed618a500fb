package auth

import (
	"testing"

	"github.com/lsoto/mantcal/internal/models"
)

func TestCan(t *testing.T) {
	entities := []Entity{
		EntityTask, EntityMachine, EntityMaintenance, EntityRequest,
		EntityBudget, EntitySparePart, EntityTool, EntityProvider,
		EntityTemplate, EntityUser,
	}

	t.Run("admin does everything", func(t *testing.T) {
		for _, e := range entities {
			for _, a := range []Action{ActionView, ActionCreate, ActionEdit, ActionDelete} {
				if !Can(models.RoleAdmin, a, e) {
					t.Errorf("admin denied action %d on entity %d", a, e)
				}
			}
		}
	})

	t.Run("manager capabilities", func(t *testing.T) {
		for _, e := range entities {
			wantView := e != EntityUser
			if got := Can(models.RoleManager, ActionView, e); got != wantView {
				t.Errorf("manager view entity %d = %v, want %v", e, got, wantView)
			}

			wantCreate := e == EntityRequest
			if got := Can(models.RoleManager, ActionCreate, e); got != wantCreate {
				t.Errorf("manager create entity %d = %v, want %v", e, got, wantCreate)
			}

			wantEdit := e == EntityTask || e == EntityRequest
			if got := Can(models.RoleManager, ActionEdit, e); got != wantEdit {
				t.Errorf("manager edit entity %d = %v, want %v", e, got, wantEdit)
			}

			if Can(models.RoleManager, ActionDelete, e) {
				t.Errorf("manager must never delete, entity %d allowed", e)
			}
		}
	})

	t.Run("viewer is read-only", func(t *testing.T) {
		for _, e := range entities {
			wantView := e != EntityUser
			if got := Can(models.RoleViewer, ActionView, e); got != wantView {
				t.Errorf("viewer view entity %d = %v, want %v", e, got, wantView)
			}
			for _, a := range []Action{ActionCreate, ActionEdit, ActionDelete} {
				if Can(models.RoleViewer, a, e) {
					t.Errorf("viewer allowed action %d on entity %d", a, e)
				}
			}
		}
	})

	t.Run("unknown role denied", func(t *testing.T) {
		if Can(models.Role("superuser"), ActionView, EntityTask) {
			t.Error("unknown role should be denied")
		}
	})
}

func TestCanTransitionTask(t *testing.T) {
	all := []models.TaskStatus{
		models.TaskPending, models.TaskAccepted, models.TaskInProgress,
		models.TaskCompleted, models.TaskCancelled,
	}

	// Resubmitting the current status always passes.
	for _, s := range all {
		if !CanTransitionTask(s, s) {
			t.Errorf("identity transition %s rejected", s)
		}
	}

	allowed := map[[2]models.TaskStatus]bool{
		{models.TaskPending, models.TaskCancelled}:    true,
		{models.TaskAccepted, models.TaskCancelled}:   true,
		{models.TaskInProgress, models.TaskCancelled}: true,
		{models.TaskAccepted, models.TaskCompleted}:   true,
		{models.TaskInProgress, models.TaskCompleted}: true,
	}
	for _, from := range all {
		for _, to := range all {
			if from == to {
				continue
			}
			want := allowed[[2]models.TaskStatus{from, to}]
			if got := CanTransitionTask(from, to); got != want {
				t.Errorf("transition %s -> %s = %v, want %v", from, to, got, want)
			}
		}
	}
}

func TestAllowedTaskTransitionsCurrentFirst(t *testing.T) {
	got := AllowedTaskTransitions(models.TaskInProgress)
	want := []models.TaskStatus{models.TaskInProgress, models.TaskCancelled, models.TaskCompleted}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("got %v, want %v", got, want)
		}
	}

	// Completed is terminal for managers: only the echo remains.
	got = AllowedTaskTransitions(models.TaskCompleted)
	if len(got) != 1 || got[0] != models.TaskCompleted {
		t.Errorf("completed transitions = %v, want just the current status", got)
	}
}

func TestApplyTaskEdit(t *testing.T) {
	stored := models.Task{
		ID:     4,
		Title:  "Revisión",
		Plant:  models.PlantSanMartin,
		Start:  "2024-03-05T10:00",
		End:    "2024-03-05T10:00",
		Status: models.TaskAccepted,
	}

	t.Run("admin rewrites everything, end pinned to start", func(t *testing.T) {
		submitted := stored
		submitted.ID = 99 // must not take
		submitted.Title = "Revisión general"
		submitted.Start = "2024-03-06T11:00"
		submitted.End = "2024-03-09T17:00" // must be overwritten

		got := ApplyTaskEdit(models.RoleAdmin, stored, submitted)
		if got.ID != stored.ID {
			t.Errorf("id = %d, want %d", got.ID, stored.ID)
		}
		if got.Title != "Revisión general" {
			t.Errorf("title = %q", got.Title)
		}
		if got.End != got.Start || got.Start != "2024-03-06T11:00" {
			t.Errorf("start/end = %q/%q, want both 2024-03-06T11:00", got.Start, got.End)
		}
	})

	t.Run("manager moves only the status", func(t *testing.T) {
		submitted := stored
		submitted.Title = "intento de cambio"
		submitted.Status = models.TaskCompleted

		got := ApplyTaskEdit(models.RoleManager, stored, submitted)
		if got.Title != stored.Title {
			t.Errorf("manager edit changed title to %q", got.Title)
		}
		if got.Status != models.TaskCompleted {
			t.Errorf("status = %s, want completada", got.Status)
		}
	})

	t.Run("manager illegal status dropped", func(t *testing.T) {
		illegal := stored
		illegal.Status = models.TaskPending // accepted -> pending is not a legal move

		got := ApplyTaskEdit(models.RoleManager, stored, illegal)
		if got.Status != stored.Status {
			t.Errorf("status = %s, want unchanged %s", got.Status, stored.Status)
		}
	})

	t.Run("viewer changes nothing", func(t *testing.T) {
		submitted := stored
		submitted.Title = "otro"
		got := ApplyTaskEdit(models.RoleViewer, stored, submitted)
		if got != stored {
			t.Errorf("viewer edit produced %+v", got)
		}
	})
}

func TestApplyRequestEdit(t *testing.T) {
	stored := models.Request{ID: 2, Title: "Pérdida de aceite", Status: models.RequestPending}
	submitted := stored
	submitted.ID = 77
	submitted.Status = models.RequestApproved

	got := ApplyRequestEdit(models.RoleAdmin, stored, submitted)
	if got.ID != stored.ID || got.Status != models.RequestApproved {
		t.Errorf("admin edit = %+v", got)
	}

	got = ApplyRequestEdit(models.RoleManager, stored, submitted)
	if got != stored {
		t.Errorf("manager request edit should be ignored, got %+v", got)
	}
}

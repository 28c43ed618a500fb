package requests

import (
	"path/filepath"
	"testing"

	"github.com/lsoto/mantcal/internal/models"
	"github.com/lsoto/mantcal/internal/storage"
)

func newTestStore(t *testing.T) storage.Provider {
	t.Helper()
	store := storage.NewJSONStore(filepath.Join(t.TempDir(), "mantcal.json"))
	if err := store.Load(); err != nil {
		t.Fatalf("Load: %v", err)
	}
	return store
}

func addRequest(t *testing.T, store storage.Provider) models.Request {
	t.Helper()
	req, err := store.AddRequest(models.Request{
		Title:     "Pérdida de aceite",
		Date:      "2024-03-01",
		Category:  models.CategoryMachine,
		Plant:     models.PlantVersalles,
		MachineID: 3,
		Urgency:   models.UrgencyHigh,
		Status:    models.RequestPending,
		CreatedBy: "encargado1_versalles",
	})
	if err != nil {
		t.Fatalf("AddRequest: %v", err)
	}
	return req
}

func TestSyncLinkedTaskCreates(t *testing.T) {
	store := newTestStore(t)
	req := addRequest(t, store)

	req.ResolutionDate = "2024-03-10T09:00"
	if err := store.UpdateRequest(req); err != nil {
		t.Fatal(err)
	}
	if err := SyncLinkedTask(store, req); err != nil {
		t.Fatalf("SyncLinkedTask: %v", err)
	}

	task, ok := LinkedTask(store, req.ID)
	if !ok {
		t.Fatal("no linked task created")
	}
	if task.Start != "2024-03-10T09:00" || task.End != task.Start {
		t.Errorf("task start/end = %q/%q", task.Start, task.End)
	}
	if task.Status != models.TaskPending {
		t.Errorf("projected task status = %s, want pendiente", task.Status)
	}
	if task.Title != req.Title || task.Plant != req.Plant || task.MachineID != req.MachineID {
		t.Errorf("descriptive fields not copied: %+v", task)
	}
	if task.CreatedBy != req.CreatedBy {
		t.Errorf("createdBy = %q, want %q", task.CreatedBy, req.CreatedBy)
	}
}

func TestSyncLinkedTaskReschedulesInPlace(t *testing.T) {
	store := newTestStore(t)
	req := addRequest(t, store)

	req.ResolutionDate = "2024-03-10T09:00"
	if err := SyncLinkedTask(store, req); err != nil {
		t.Fatal(err)
	}
	first, _ := LinkedTask(store, req.ID)

	// The admin marks progress on the projected task; a later reschedule
	// must keep that progress.
	first.Status = models.TaskInProgress
	if err := store.UpdateTask(first); err != nil {
		t.Fatal(err)
	}

	req.ResolutionDate = "2024-03-15T14:00"
	req.Title = "Pérdida de aceite (urgente)"
	if err := store.UpdateRequest(req); err != nil {
		t.Fatal(err)
	}
	if err := SyncLinkedTask(store, req); err != nil {
		t.Fatal(err)
	}

	second, ok := LinkedTask(store, req.ID)
	if !ok {
		t.Fatal("linked task vanished on reschedule")
	}
	if second.ID != first.ID {
		t.Errorf("reschedule created a new task %d, want update of %d", second.ID, first.ID)
	}
	if second.Start != "2024-03-15T14:00" {
		t.Errorf("start = %q", second.Start)
	}
	if second.Title != "Pérdida de aceite (urgente)" {
		t.Errorf("title not refreshed: %q", second.Title)
	}
	if second.Status != models.TaskInProgress {
		t.Errorf("status = %s, progress lost on reschedule", second.Status)
	}
	if len(store.Tasks()) != 1 {
		t.Errorf("%d tasks after reschedule, want 1", len(store.Tasks()))
	}
}

func TestSyncLinkedTaskClearDeletesOnlyItsTask(t *testing.T) {
	store := newTestStore(t)
	req := addRequest(t, store)

	unrelated, err := store.AddTask(models.Task{
		Title: "independiente", Plant: models.PlantSanMartin,
		Start: "2024-03-12T08:00", End: "2024-03-12T08:00",
		Status: models.TaskPending,
	})
	if err != nil {
		t.Fatal(err)
	}

	req.ResolutionDate = "2024-03-10T09:00"
	if err := SyncLinkedTask(store, req); err != nil {
		t.Fatal(err)
	}

	req.ResolutionDate = ""
	if err := store.UpdateRequest(req); err != nil {
		t.Fatal(err)
	}
	if err := SyncLinkedTask(store, req); err != nil {
		t.Fatal(err)
	}

	if _, ok := LinkedTask(store, req.ID); ok {
		t.Error("linked task should be gone after clearing the date")
	}
	if _, ok := store.Task(unrelated.ID); !ok {
		t.Error("unrelated task was deleted")
	}
}

func TestSyncLinkedTaskClearWithoutTaskNoOps(t *testing.T) {
	store := newTestStore(t)
	req := addRequest(t, store)

	if err := SyncLinkedTask(store, req); err != nil {
		t.Fatalf("clear with no linked task should no-op, got %v", err)
	}
	if n := len(store.Tasks()); n != 0 {
		t.Errorf("%d tasks, want 0", n)
	}
}

func TestLinkedTaskZeroRequestID(t *testing.T) {
	store := newTestStore(t)
	// Tasks without a link carry zero; a zero query must never match them.
	if _, err := store.AddTask(models.Task{Title: "suelta", Start: "2024-01-01T08:00"}); err != nil {
		t.Fatal(err)
	}
	if _, ok := LinkedTask(store, 0); ok {
		t.Error("LinkedTask(0) matched an unlinked task")
	}
}

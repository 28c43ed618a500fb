package storage

import (
	"encoding/json"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/lsoto/mantcal/internal/models"
)

func newTestJSONStore(t *testing.T) *Store {
	t.Helper()
	store := NewJSONStore(filepath.Join(t.TempDir(), "mantcal.json"))
	if err := store.Init(); err != nil {
		t.Fatalf("Init: %v", err)
	}
	if err := store.Load(); err != nil {
		t.Fatalf("Load: %v", err)
	}
	return store
}

func TestInitRefusesExistingStore(t *testing.T) {
	path := filepath.Join(t.TempDir(), "mantcal.json")
	store := NewJSONStore(path)
	if err := store.Init(); err != nil {
		t.Fatalf("first Init: %v", err)
	}
	if err := store.Init(); err == nil {
		t.Error("second Init should fail on an existing store")
	}
}

func TestLoadMissingFileSeedsDefaults(t *testing.T) {
	store := NewJSONStore(filepath.Join(t.TempDir(), "missing.json"))
	if err := store.Load(); err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(store.Tasks()) != 0 {
		t.Errorf("expected no tasks, got %d", len(store.Tasks()))
	}
	if got, want := len(store.Users()), len(SeedUsers()); got != want {
		t.Errorf("seeded users = %d, want %d", got, want)
	}
}

func TestLoadCorruptFileDegradesToDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "mantcal.json")
	if err := os.WriteFile(path, []byte("{not json"), 0600); err != nil {
		t.Fatal(err)
	}

	store := NewJSONStore(path)
	if err := store.Load(); err != nil {
		t.Fatalf("Load should absorb corrupt content, got %v", err)
	}
	if got, want := len(store.Users()), len(SeedUsers()); got != want {
		t.Errorf("users after corrupt load = %d, want %d", got, want)
	}
}

func TestLoadCorruptCollectionKeepsOthers(t *testing.T) {
	path := filepath.Join(t.TempDir(), "mantcal.json")
	raw := `{
		"tasks": "definitely not an array",
		"machines": [{"id": 3, "name": "Torno", "plant": "Versalles"}]
	}`
	if err := os.WriteFile(path, []byte(raw), 0600); err != nil {
		t.Fatal(err)
	}

	store := NewJSONStore(path)
	if err := store.Load(); err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(store.Tasks()) != 0 {
		t.Errorf("corrupt tasks key should decode empty, got %d", len(store.Tasks()))
	}
	if m, ok := store.Machine(3); !ok || m.Name != "Torno" {
		t.Errorf("machines key should survive, got %+v ok=%v", m, ok)
	}
}

func TestRoundTripPreservesOrderAndContent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "mantcal.json")
	store := NewJSONStore(path)
	if err := store.Init(); err != nil {
		t.Fatal(err)
	}
	if err := store.Load(); err != nil {
		t.Fatal(err)
	}

	want := []models.Task{}
	for _, title := range []string{"primera", "segunda", "tercera"} {
		task, err := store.AddTask(models.Task{
			Title:  title,
			Plant:  models.PlantSanMartin,
			Start:  "2024-03-05T10:00",
			End:    "2024-03-05T10:00",
			Status: models.TaskPending,
		})
		if err != nil {
			t.Fatalf("AddTask: %v", err)
		}
		want = append(want, task)
	}

	reopened := NewJSONStore(path)
	if err := reopened.Load(); err != nil {
		t.Fatalf("reopen Load: %v", err)
	}
	if !reflect.DeepEqual(reopened.Tasks(), want) {
		t.Errorf("round trip changed tasks:\ngot  %+v\nwant %+v", reopened.Tasks(), want)
	}
}

func TestAddAssignsMaxPlusOne(t *testing.T) {
	store := newTestJSONStore(t)

	first, _ := store.AddTask(models.Task{Title: "a", Start: "2024-01-01T08:00"})
	if first.ID != 1 {
		t.Errorf("first id = %d, want 1", first.ID)
	}

	// An explicit high id shifts the counter; deleting below the max does
	// not free ids for reuse of the gap.
	if _, err := store.AddTask(models.Task{ID: 10, Title: "b", Start: "2024-01-02T08:00"}); err != nil {
		t.Fatal(err)
	}
	third, _ := store.AddTask(models.Task{Title: "c", Start: "2024-01-03T08:00"})
	if third.ID != 11 {
		t.Errorf("id after explicit 10 = %d, want 11", third.ID)
	}

	if err := store.DeleteTask(11); err != nil {
		t.Fatal(err)
	}
	fourth, _ := store.AddTask(models.Task{Title: "d", Start: "2024-01-04T08:00"})
	if fourth.ID != 11 {
		t.Errorf("id after deleting the max = %d, want 11 again", fourth.ID)
	}
}

func TestUpdateAndDeleteStaleIDNoOp(t *testing.T) {
	store := newTestJSONStore(t)
	task, _ := store.AddTask(models.Task{Title: "real", Start: "2024-01-01T08:00"})

	if err := store.UpdateTask(models.Task{ID: 999, Title: "ghost"}); err != nil {
		t.Errorf("stale update should no-op, got %v", err)
	}
	if err := store.DeleteTask(999); err != nil {
		t.Errorf("stale delete should no-op, got %v", err)
	}

	got, ok := store.Task(task.ID)
	if !ok || got.Title != "real" {
		t.Errorf("existing task disturbed: %+v ok=%v", got, ok)
	}
}

func TestDanglingMachineReference(t *testing.T) {
	store := newTestJSONStore(t)

	machine, _ := store.AddMachine(models.Machine{Name: "Prensa", Plant: models.PlantVersalles})
	task, _ := store.AddTask(models.Task{Title: "engrase", MachineID: machine.ID, Start: "2024-01-01T08:00"})

	if err := store.DeleteMachine(machine.ID); err != nil {
		t.Fatal(err)
	}

	got, ok := store.Task(task.ID)
	if !ok {
		t.Fatal("task should survive machine deletion")
	}
	if got.MachineID != machine.ID {
		t.Errorf("task machineId = %d, want the dangling %d", got.MachineID, machine.ID)
	}
	if _, ok := store.Machine(machine.ID); ok {
		t.Error("machine lookup should report absent")
	}
}

func TestDiskLayoutUsesOriginalKeys(t *testing.T) {
	path := filepath.Join(t.TempDir(), "mantcal.json")
	store := NewJSONStore(path)
	if err := store.Init(); err != nil {
		t.Fatal(err)
	}
	if err := store.Load(); err != nil {
		t.Fatal(err)
	}
	if _, err := store.AddTask(models.Task{Title: "x", MachineID: 2, LinkedRequestID: 7, Start: "2024-01-01T08:00", CreatedBy: "soledad"}); err != nil {
		t.Fatal(err)
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	var doc map[string]json.RawMessage
	if err := json.Unmarshal(raw, &doc); err != nil {
		t.Fatalf("store file is not a JSON object: %v", err)
	}

	for _, key := range []string{
		"tasks", "machines", "maintenances", "requests", "budgets",
		"spareParts", "tools", "providers", "templates",
		"customUsers", "deletedUsers",
	} {
		v, ok := doc[key]
		if !ok {
			t.Errorf("missing collection key %q", key)
			continue
		}
		if string(v) == "null" {
			t.Errorf("key %q serialized as null, want an array", key)
		}
	}

	var tasks []map[string]interface{}
	if err := json.Unmarshal(doc["tasks"], &tasks); err != nil {
		t.Fatal(err)
	}
	for _, field := range []string{"id", "title", "machineId", "linkedRequestId", "createdBy", "start", "end"} {
		if _, ok := tasks[0][field]; !ok {
			t.Errorf("task record missing field %q", field)
		}
	}
}

func TestUserDirectory(t *testing.T) {
	t.Run("duplicate username rejected", func(t *testing.T) {
		store := newTestJSONStore(t)
		err := store.AddUser(models.User{Username: "soledad", Password: "x", Role: models.RoleViewer, Name: "Impostora"})
		if err != ErrDuplicateUser {
			t.Errorf("got %v, want ErrDuplicateUser", err)
		}
	})

	t.Run("delete hides seed user across reloads", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "mantcal.json")
		store := NewJSONStore(path)
		if err := store.Init(); err != nil {
			t.Fatal(err)
		}
		if err := store.Load(); err != nil {
			t.Fatal(err)
		}
		if err := store.DeleteUser("usuario1"); err != nil {
			t.Fatal(err)
		}

		reopened := NewJSONStore(path)
		if err := reopened.Load(); err != nil {
			t.Fatal(err)
		}
		if _, ok := reopened.User("usuario1"); ok {
			t.Error("deleted seed user resurfaced after reload")
		}
	})

	t.Run("re-adding a deleted username revives it", func(t *testing.T) {
		store := newTestJSONStore(t)
		if err := store.DeleteUser("usuario1"); err != nil {
			t.Fatal(err)
		}
		err := store.AddUser(models.User{Username: "usuario1", Password: "nueva", Role: models.RoleViewer, Name: "Usuario 1"})
		if err != nil {
			t.Fatalf("AddUser after delete: %v", err)
		}
		u, ok := store.User("usuario1")
		if !ok || u.Password != "nueva" {
			t.Errorf("revived user = %+v ok=%v", u, ok)
		}
	})

	t.Run("legacy deletedUsers list hides seeds on load", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "mantcal.json")
		raw := `{"deletedUsers": ["luis"], "customUsers": []}`
		if err := os.WriteFile(path, []byte(raw), 0600); err != nil {
			t.Fatal(err)
		}

		store := NewJSONStore(path)
		if err := store.Load(); err != nil {
			t.Fatal(err)
		}
		if _, ok := store.User("luis"); ok {
			t.Error("seed user on the legacy deleted list should stay hidden")
		}
		if _, ok := store.User("soledad"); !ok {
			t.Error("other seed users should be merged in")
		}
	})
}

func TestSessionPersistence(t *testing.T) {
	path := filepath.Join(t.TempDir(), "mantcal.json")
	store := NewJSONStore(path)
	if err := store.Init(); err != nil {
		t.Fatal(err)
	}
	if err := store.Load(); err != nil {
		t.Fatal(err)
	}

	if _, ok := store.Session(); ok {
		t.Fatal("fresh store should have no session")
	}

	sess := models.Session{Username: "soledad", Role: models.RoleAdmin, Name: "Soledad"}
	if err := store.SetSession(&sess); err != nil {
		t.Fatal(err)
	}

	reopened := NewJSONStore(path)
	if err := reopened.Load(); err != nil {
		t.Fatal(err)
	}
	got, ok := reopened.Session()
	if !ok || !reflect.DeepEqual(got, sess) {
		t.Errorf("session after reload = %+v ok=%v, want %+v", got, ok, sess)
	}

	if err := reopened.SetSession(nil); err != nil {
		t.Fatal(err)
	}
	again := NewJSONStore(path)
	if err := again.Load(); err != nil {
		t.Fatal(err)
	}
	if _, ok := again.Session(); ok {
		t.Error("cleared session survived reload")
	}
}

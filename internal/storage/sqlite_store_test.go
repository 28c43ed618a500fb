package storage

import (
	"database/sql"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/lsoto/mantcal/internal/models"
)

func newTestSQLiteStore(t *testing.T) (*Store, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "mantcal.db")
	store := NewSQLiteStore(path)
	if err := store.Init(); err != nil {
		t.Fatalf("Init: %v", err)
	}
	if err := store.Load(); err != nil {
		t.Fatalf("Load: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store, path
}

func TestSQLiteRoundTrip(t *testing.T) {
	store, path := newTestSQLiteStore(t)

	task, err := store.AddTask(models.Task{
		Title:  "Cambio de correa",
		Plant:  models.PlantVersalles,
		Start:  "2024-03-05T10:00",
		End:    "2024-03-05T10:00",
		Status: models.TaskPending,
	})
	if err != nil {
		t.Fatalf("AddTask: %v", err)
	}
	machine, err := store.AddMachine(models.Machine{Name: "Prensa", Plant: models.PlantVersalles})
	if err != nil {
		t.Fatalf("AddMachine: %v", err)
	}
	if err := store.Close(); err != nil {
		t.Fatal(err)
	}

	reopened := NewSQLiteStore(path)
	defer reopened.Close()
	if err := reopened.Load(); err != nil {
		t.Fatalf("reopen Load: %v", err)
	}

	got, ok := reopened.Task(task.ID)
	if !ok || !reflect.DeepEqual(got, task) {
		t.Errorf("task after reload = %+v ok=%v, want %+v", got, ok, task)
	}
	if m, ok := reopened.Machine(machine.ID); !ok || m.Name != "Prensa" {
		t.Errorf("machine after reload = %+v ok=%v", m, ok)
	}
	if gotUsers, want := len(reopened.Users()), len(SeedUsers()); gotUsers != want {
		t.Errorf("users after reload = %d, want %d", gotUsers, want)
	}
}

func TestSQLiteSessionRow(t *testing.T) {
	store, path := newTestSQLiteStore(t)

	sess := models.Session{Username: "luis", Role: models.RoleAdmin, Name: "Luis"}
	if err := store.SetSession(&sess); err != nil {
		t.Fatal(err)
	}

	assertRow := func(wantPresent bool) {
		t.Helper()
		db, err := sql.Open("sqlite", path)
		if err != nil {
			t.Fatal(err)
		}
		defer db.Close()
		var n int
		if err := db.QueryRow(`SELECT COUNT(*) FROM collections WHERE key = 'currentUser'`).Scan(&n); err != nil {
			t.Fatal(err)
		}
		if present := n > 0; present != wantPresent {
			t.Errorf("currentUser row present = %v, want %v", present, wantPresent)
		}
	}
	assertRow(true)

	if err := store.SetSession(nil); err != nil {
		t.Fatal(err)
	}
	assertRow(false)
}

func TestSQLiteCollectionsNeverNull(t *testing.T) {
	_, path := newTestSQLiteStore(t)

	db, err := sql.Open("sqlite", path)
	if err != nil {
		t.Fatal(err)
	}
	defer db.Close()

	rows, err := db.Query(`SELECT key, value FROM collections`)
	if err != nil {
		t.Fatal(err)
	}
	defer rows.Close()

	seen := 0
	for rows.Next() {
		var key, value string
		if err := rows.Scan(&key, &value); err != nil {
			t.Fatal(err)
		}
		seen++
		if value == "null" {
			t.Errorf("key %q stored as null, want an array blob", key)
		}
	}
	if err := rows.Err(); err != nil {
		t.Fatal(err)
	}
	// 11 collection keys; currentUser only exists while logged in.
	if seen != 11 {
		t.Errorf("stored %d collection rows, want 11", seen)
	}
}

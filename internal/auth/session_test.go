package auth

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

func TestLogin(t *testing.T) {
	store := newTestStore(t)

	sess, err := Login(store, "soledad", "admin1")
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if sess.Role != models.RoleAdmin || sess.Username != "soledad" {
		t.Errorf("session = %+v", sess)
	}

	stored, ok := store.Session()
	if !ok || stored.Username != "soledad" {
		t.Errorf("stored session = %+v ok=%v", stored, ok)
	}
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	store := newTestStore(t)

	if _, err := Login(store, "soledad", "wrong"); err != ErrInvalidCredentials {
		t.Errorf("wrong password: got %v, want ErrInvalidCredentials", err)
	}
	if _, err := Login(store, "nadie", "admin1"); err != ErrInvalidCredentials {
		t.Errorf("unknown user: got %v, want ErrInvalidCredentials", err)
	}
	if _, ok := store.Session(); ok {
		t.Error("failed login should not record a session")
	}
}

func TestLogout(t *testing.T) {
	store := newTestStore(t)
	if _, err := Login(store, "usuario1", "user1"); err != nil {
		t.Fatal(err)
	}
	if err := Logout(store); err != nil {
		t.Fatal(err)
	}
	if _, ok := store.Session(); ok {
		t.Error("session survived logout")
	}
}

func TestRequireAction(t *testing.T) {
	store := newTestStore(t)

	if _, err := RequireAction(store, ActionCreate, EntityTask); err != ErrNotLoggedIn {
		t.Errorf("anonymous create: got %v, want ErrNotLoggedIn", err)
	}

	if _, err := Login(store, "encargado1_versalles", "versalles1"); err != nil {
		t.Fatal(err)
	}

	if _, err := RequireAction(store, ActionCreate, EntityRequest); err != nil {
		t.Errorf("manager creating a request: %v", err)
	}
	if _, err := RequireAction(store, ActionCreate, EntityTask); err == nil {
		t.Error("manager creating a task should be denied")
	}
	if _, err := RequireAction(store, ActionDelete, EntityRequest); err == nil {
		t.Error("manager deleting should be denied")
	}
}

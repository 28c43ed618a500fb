package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/lsoto/mantcal/internal/logger"
	"github.com/lsoto/mantcal/internal/models"
)

// payload is the on-disk shape of the JSON backend. The key names replicate
// the original key-value namespace exactly; existing data keeps working.
type payload struct {
	Tasks        []models.Task              `json:"tasks"`
	Machines     []models.Machine           `json:"machines"`
	Maintenances []models.MaintenanceRecord `json:"maintenances"`
	Requests     []models.Request           `json:"requests"`
	Budgets      []models.Budget            `json:"budgets"`
	SpareParts   []models.SparePart         `json:"spareParts"`
	Tools        []models.Tool              `json:"tools"`
	Providers    []models.Provider          `json:"providers"`
	Templates    []models.Template          `json:"templates"`
	CustomUsers  []models.User              `json:"customUsers"`
	DeletedUsers []string                   `json:"deletedUsers"`
	CurrentUser  *models.Session            `json:"currentUser,omitempty"`
}

type jsonBackend struct {
	filePath string
}

// NewJSONStore returns a store persisting to a single JSON file.
func NewJSONStore(path string) *Store {
	return &Store{b: &jsonBackend{filePath: path}}
}

func (b *jsonBackend) path() string { return b.filePath }

func (b *jsonBackend) exists() bool {
	_, err := os.Stat(b.filePath)
	return err == nil
}

func (b *jsonBackend) close() error { return nil }

// load reads the store file. Read errors and corrupt content degrade to
// defaults: a key that fails to decode comes back empty and the failure is
// only logged. This mirrors how the original treats localStorage.
func (b *jsonBackend) load() (*data, error) {
	raw, err := os.ReadFile(b.filePath)
	if err != nil {
		if !os.IsNotExist(err) {
			logger.Warn("unreadable store file, starting empty", "path", b.filePath, "error", err)
		}
		return nil, nil
	}

	var keys map[string]json.RawMessage
	if err := json.Unmarshal(raw, &keys); err != nil {
		logger.Warn("corrupt store file, starting empty", "path", b.filePath, "error", err)
		return nil, nil
	}

	d := &data{}
	decodeKey(keys, "tasks", &d.Tasks)
	decodeKey(keys, "machines", &d.Machines)
	decodeKey(keys, "maintenances", &d.Maintenances)
	decodeKey(keys, "requests", &d.Requests)
	decodeKey(keys, "budgets", &d.Budgets)
	decodeKey(keys, "spareParts", &d.SpareParts)
	decodeKey(keys, "tools", &d.Tools)
	decodeKey(keys, "providers", &d.Providers)
	decodeKey(keys, "templates", &d.Templates)
	decodeKey(keys, "customUsers", &d.CustomUsers)
	decodeKey(keys, "deletedUsers", &d.DeletedUsers)
	decodeKey(keys, "currentUser", &d.CurrentUser)
	return d, nil
}

func decodeKey(keys map[string]json.RawMessage, key string, dst interface{}) {
	raw, ok := keys[key]
	if !ok || string(raw) == "null" {
		return
	}
	if err := json.Unmarshal(raw, dst); err != nil {
		logger.Warn("corrupt collection, using empty default", "key", key, "error", err)
	}
}

func (b *jsonBackend) save(d *data) error {
	p := payload{
		Tasks:        d.Tasks,
		Machines:     d.Machines,
		Maintenances: d.Maintenances,
		Requests:     d.Requests,
		Budgets:      d.Budgets,
		SpareParts:   d.SpareParts,
		Tools:        d.Tools,
		Providers:    d.Providers,
		Templates:    d.Templates,
		CustomUsers:  d.CustomUsers,
		DeletedUsers: d.DeletedUsers,
		CurrentUser:  d.CurrentUser,
	}

	// Keep every collection key present as an array, never null.
	if p.Tasks == nil {
		p.Tasks = []models.Task{}
	}
	if p.Machines == nil {
		p.Machines = []models.Machine{}
	}
	if p.Maintenances == nil {
		p.Maintenances = []models.MaintenanceRecord{}
	}
	if p.Requests == nil {
		p.Requests = []models.Request{}
	}
	if p.Budgets == nil {
		p.Budgets = []models.Budget{}
	}
	if p.SpareParts == nil {
		p.SpareParts = []models.SparePart{}
	}
	if p.Tools == nil {
		p.Tools = []models.Tool{}
	}
	if p.Providers == nil {
		p.Providers = []models.Provider{}
	}
	if p.Templates == nil {
		p.Templates = []models.Template{}
	}
	if p.CustomUsers == nil {
		p.CustomUsers = []models.User{}
	}
	if p.DeletedUsers == nil {
		p.DeletedUsers = []string{}
	}

	out, err := json.MarshalIndent(p, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to serialize storage: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(b.filePath), 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	if err := os.WriteFile(b.filePath, out, 0600); err != nil {
		return fmt.Errorf("failed to write storage: %w", err)
	}
	return nil
}

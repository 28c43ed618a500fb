package storage

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"

	"github.com/lsoto/mantcal/internal/logger"
)

// sqliteBackend persists the same collection-name → JSON-blob layout as the
// JSON backend, one row per key. The durable engine changes, the external
// interface does not.
type sqliteBackend struct {
	filePath string
	db       *sql.DB
}

// NewSQLiteStore returns a store persisting to a SQLite database file.
func NewSQLiteStore(path string) *Store {
	return &Store{b: &sqliteBackend{filePath: path}}
}

func (b *sqliteBackend) path() string { return b.filePath }

func (b *sqliteBackend) exists() bool {
	_, err := os.Stat(b.filePath)
	return err == nil
}

func (b *sqliteBackend) open() error {
	if b.db != nil {
		return nil
	}
	if err := os.MkdirAll(filepath.Dir(b.filePath), 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	db, err := sql.Open("sqlite", b.filePath)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	if _, err := db.Exec(`CREATE TABLE IF NOT EXISTS collections (
		key TEXT PRIMARY KEY,
		value TEXT NOT NULL
	)`); err != nil {
		db.Close()
		return fmt.Errorf("failed to create schema: %w", err)
	}
	b.db = db
	return nil
}

func (b *sqliteBackend) close() error {
	if b.db == nil {
		return nil
	}
	err := b.db.Close()
	b.db = nil
	return err
}

func (b *sqliteBackend) load() (*data, error) {
	if !b.exists() {
		return nil, nil
	}
	if err := b.open(); err != nil {
		logger.Warn("unreadable database, starting empty", "path", b.filePath, "error", err)
		return nil, nil
	}

	rows, err := b.db.Query(`SELECT key, value FROM collections`)
	if err != nil {
		logger.Warn("failed to read collections, starting empty", "error", err)
		return nil, nil
	}
	defer rows.Close()

	keys := make(map[string]json.RawMessage)
	for rows.Next() {
		var key, value string
		if err := rows.Scan(&key, &value); err != nil {
			logger.Warn("failed to scan collection row", "error", err)
			continue
		}
		keys[key] = json.RawMessage(value)
	}
	if err := rows.Err(); err != nil {
		logger.Warn("failed to iterate collections", "error", err)
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

func (b *sqliteBackend) save(d *data) error {
	if err := b.open(); err != nil {
		return err
	}

	entries := []struct {
		key string
		val interface{}
	}{
		{"tasks", d.Tasks},
		{"machines", d.Machines},
		{"maintenances", d.Maintenances},
		{"requests", d.Requests},
		{"budgets", d.Budgets},
		{"spareParts", d.SpareParts},
		{"tools", d.Tools},
		{"providers", d.Providers},
		{"templates", d.Templates},
		{"customUsers", d.CustomUsers},
		{"deletedUsers", d.DeletedUsers},
	}

	tx, err := b.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	for _, e := range entries {
		blob, err := json.Marshal(e.val)
		if err != nil {
			return fmt.Errorf("failed to serialize %s: %w", e.key, err)
		}
		if string(blob) == "null" {
			blob = []byte("[]")
		}
		if _, err := tx.Exec(
			`INSERT INTO collections (key, value) VALUES (?, ?)
			 ON CONFLICT(key) DO UPDATE SET value = excluded.value`,
			e.key, string(blob),
		); err != nil {
			return fmt.Errorf("failed to write %s: %w", e.key, err)
		}
	}

	if d.CurrentUser != nil {
		blob, err := json.Marshal(d.CurrentUser)
		if err != nil {
			return fmt.Errorf("failed to serialize currentUser: %w", err)
		}
		if _, err := tx.Exec(
			`INSERT INTO collections (key, value) VALUES (?, ?)
			 ON CONFLICT(key) DO UPDATE SET value = excluded.value`,
			"currentUser", string(blob),
		); err != nil {
			return fmt.Errorf("failed to write currentUser: %w", err)
		}
	} else {
		if _, err := tx.Exec(`DELETE FROM collections WHERE key = ?`, "currentUser"); err != nil {
			return fmt.Errorf("failed to clear currentUser: %w", err)
		}
	}

	return tx.Commit()
}

package storage

import "github.com/lsoto/mantcal/internal/models"

// Provider is the storage accessor every renderer and controller goes
// through. Lookups by id return an absent flag instead of an error: dangling
// soft references are tolerated, relied-upon behavior. Updates and deletes of
// records that no longer exist silently no-op. Every mutation persists the
// whole collection set immediately; across processes the store is shared
// mutable state with no locking and the last writer wins.
type Provider interface {
	// Lifecycle
	Init() error
	Load() error
	Close() error
	Path() string

	// Tasks
	Tasks() []models.Task
	Task(id int) (models.Task, bool)
	AddTask(models.Task) (models.Task, error)
	UpdateTask(models.Task) error
	DeleteTask(id int) error

	// Machines
	Machines() []models.Machine
	Machine(id int) (models.Machine, bool)
	AddMachine(models.Machine) (models.Machine, error)
	UpdateMachine(models.Machine) error
	DeleteMachine(id int) error

	// Maintenance history
	Maintenances() []models.MaintenanceRecord
	Maintenance(id int) (models.MaintenanceRecord, bool)
	AddMaintenance(models.MaintenanceRecord) (models.MaintenanceRecord, error)
	UpdateMaintenance(models.MaintenanceRecord) error
	DeleteMaintenance(id int) error

	// Requests
	Requests() []models.Request
	Request(id int) (models.Request, bool)
	AddRequest(models.Request) (models.Request, error)
	UpdateRequest(models.Request) error
	DeleteRequest(id int) error

	// Budgets
	Budgets() []models.Budget
	Budget(id int) (models.Budget, bool)
	AddBudget(models.Budget) (models.Budget, error)
	UpdateBudget(models.Budget) error
	DeleteBudget(id int) error

	// Spare parts
	SpareParts() []models.SparePart
	SparePart(id int) (models.SparePart, bool)
	AddSparePart(models.SparePart) (models.SparePart, error)
	UpdateSparePart(models.SparePart) error
	DeleteSparePart(id int) error

	// Tools
	Tools() []models.Tool
	Tool(id int) (models.Tool, bool)
	AddTool(models.Tool) (models.Tool, error)
	UpdateTool(models.Tool) error
	DeleteTool(id int) error

	// Providers (external service companies, not storage backends)
	Providers() []models.Provider
	ProviderRecord(id int) (models.Provider, bool)
	AddProvider(models.Provider) (models.Provider, error)
	UpdateProvider(models.Provider) error
	DeleteProvider(id int) error

	// Templates
	Templates() []models.Template
	Template(id int) (models.Template, bool)
	AddTemplate(models.Template) (models.Template, error)
	UpdateTemplate(models.Template) error
	DeleteTemplate(id int) error

	// Users, keyed by username
	Users() []models.User
	User(username string) (models.User, bool)
	AddUser(models.User) error
	UpdateUser(models.User) error
	DeleteUser(username string) error

	// Session
	Session() (models.Session, bool)
	SetSession(*models.Session) error
}

package storage

import (
	"errors"
	"fmt"

	"github.com/lsoto/mantcal/internal/models"
)

// ErrDuplicateUser is returned when creating a user whose username is
// already visible in the directory.
var ErrDuplicateUser = errors.New("username already exists")

// data holds every named collection. Collections are slices so that stored
// id order survives a save/load round trip.
type data struct {
	Tasks        []models.Task
	Machines     []models.Machine
	Maintenances []models.MaintenanceRecord
	Requests     []models.Request
	Budgets      []models.Budget
	SpareParts   []models.SparePart
	Tools        []models.Tool
	Providers    []models.Provider
	Templates    []models.Template
	CustomUsers  []models.User
	DeletedUsers []string
	CurrentUser  *models.Session
}

// backend persists a data snapshot. load must absorb read failures: a
// missing or unreadable store comes back as (nil, nil) and the caller
// substitutes defaults.
type backend interface {
	load() (*data, error)
	save(*data) error
	close() error
	path() string
	exists() bool
}

// Store implements Provider over a pluggable backend.
type Store struct {
	b backend
	d *data
}

func (s *Store) Init() error {
	if s.b.exists() {
		return fmt.Errorf("storage already initialized at %s", s.b.path())
	}
	s.d = &data{CustomUsers: SeedUsers()}
	return s.b.save(s.d)
}

func (s *Store) Load() error {
	d, err := s.b.load()
	if err != nil {
		return err
	}
	if d == nil {
		d = &data{CustomUsers: SeedUsers()}
	}
	mergeSeedUsers(d)
	s.d = d
	return nil
}

func (s *Store) Close() error { return s.b.close() }

func (s *Store) Path() string { return s.b.path() }

func (s *Store) save() error {
	if s.d == nil {
		return fmt.Errorf("storage not loaded")
	}
	return s.b.save(s.d)
}

// mergeSeedUsers folds the legacy built-in/custom overlay into the single
// user collection: seed users absent from both customUsers and deletedUsers
// are appended, so data written by the old two-tier scheme keeps its meaning.
func mergeSeedUsers(d *data) {
	for _, seed := range SeedUsers() {
		if userIndex(d.CustomUsers, seed.Username) >= 0 {
			continue
		}
		if containsString(d.DeletedUsers, seed.Username) {
			continue
		}
		d.CustomUsers = append(d.CustomUsers, seed)
	}
}

func userIndex(users []models.User, username string) int {
	for i, u := range users {
		if u.Username == username {
			return i
		}
	}
	return -1
}

func containsString(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}

// Tasks

func (s *Store) Tasks() []models.Task {
	if s.d == nil {
		return nil
	}
	return s.d.Tasks
}

func (s *Store) Task(id int) (models.Task, bool) {
	for _, t := range s.Tasks() {
		if t.ID == id {
			return t, true
		}
	}
	return models.Task{}, false
}

func (s *Store) AddTask(t models.Task) (models.Task, error) {
	if t.ID == 0 {
		ids := make([]int, len(s.d.Tasks))
		for i, rec := range s.d.Tasks {
			ids[i] = rec.ID
		}
		t.ID = models.NextID(ids)
	}
	s.d.Tasks = append(s.d.Tasks, t)
	return t, s.save()
}

func (s *Store) UpdateTask(t models.Task) error {
	for i, rec := range s.d.Tasks {
		if rec.ID == t.ID {
			s.d.Tasks[i] = t
			return s.save()
		}
	}
	return nil // stale id: silent no-op
}

func (s *Store) DeleteTask(id int) error {
	for i, rec := range s.d.Tasks {
		if rec.ID == id {
			s.d.Tasks = append(s.d.Tasks[:i], s.d.Tasks[i+1:]...)
			return s.save()
		}
	}
	return nil
}

// Machines

func (s *Store) Machines() []models.Machine {
	if s.d == nil {
		return nil
	}
	return s.d.Machines
}

func (s *Store) Machine(id int) (models.Machine, bool) {
	for _, m := range s.Machines() {
		if m.ID == id {
			return m, true
		}
	}
	return models.Machine{}, false
}

func (s *Store) AddMachine(m models.Machine) (models.Machine, error) {
	if m.ID == 0 {
		ids := make([]int, len(s.d.Machines))
		for i, rec := range s.d.Machines {
			ids[i] = rec.ID
		}
		m.ID = models.NextID(ids)
	}
	s.d.Machines = append(s.d.Machines, m)
	return m, s.save()
}

func (s *Store) UpdateMachine(m models.Machine) error {
	for i, rec := range s.d.Machines {
		if rec.ID == m.ID {
			s.d.Machines[i] = m
			return s.save()
		}
	}
	return nil
}

func (s *Store) DeleteMachine(id int) error {
	for i, rec := range s.d.Machines {
		if rec.ID == id {
			// No cascade: tasks, requests and parts keep their machineId
			// and render the reference as empty.
			s.d.Machines = append(s.d.Machines[:i], s.d.Machines[i+1:]...)
			return s.save()
		}
	}
	return nil
}

// Maintenance history

func (s *Store) Maintenances() []models.MaintenanceRecord {
	if s.d == nil {
		return nil
	}
	return s.d.Maintenances
}

func (s *Store) Maintenance(id int) (models.MaintenanceRecord, bool) {
	for _, m := range s.Maintenances() {
		if m.ID == id {
			return m, true
		}
	}
	return models.MaintenanceRecord{}, false
}

func (s *Store) AddMaintenance(m models.MaintenanceRecord) (models.MaintenanceRecord, error) {
	if m.ID == 0 {
		ids := make([]int, len(s.d.Maintenances))
		for i, rec := range s.d.Maintenances {
			ids[i] = rec.ID
		}
		m.ID = models.NextID(ids)
	}
	s.d.Maintenances = append(s.d.Maintenances, m)
	return m, s.save()
}

func (s *Store) UpdateMaintenance(m models.MaintenanceRecord) error {
	for i, rec := range s.d.Maintenances {
		if rec.ID == m.ID {
			s.d.Maintenances[i] = m
			return s.save()
		}
	}
	return nil
}

func (s *Store) DeleteMaintenance(id int) error {
	for i, rec := range s.d.Maintenances {
		if rec.ID == id {
			s.d.Maintenances = append(s.d.Maintenances[:i], s.d.Maintenances[i+1:]...)
			return s.save()
		}
	}
	return nil
}

// Requests

func (s *Store) Requests() []models.Request {
	if s.d == nil {
		return nil
	}
	return s.d.Requests
}

func (s *Store) Request(id int) (models.Request, bool) {
	for _, r := range s.Requests() {
		if r.ID == id {
			return r, true
		}
	}
	return models.Request{}, false
}

func (s *Store) AddRequest(r models.Request) (models.Request, error) {
	if r.ID == 0 {
		ids := make([]int, len(s.d.Requests))
		for i, rec := range s.d.Requests {
			ids[i] = rec.ID
		}
		r.ID = models.NextID(ids)
	}
	s.d.Requests = append(s.d.Requests, r)
	return r, s.save()
}

func (s *Store) UpdateRequest(r models.Request) error {
	for i, rec := range s.d.Requests {
		if rec.ID == r.ID {
			s.d.Requests[i] = r
			return s.save()
		}
	}
	return nil
}

func (s *Store) DeleteRequest(id int) error {
	for i, rec := range s.d.Requests {
		if rec.ID == id {
			s.d.Requests = append(s.d.Requests[:i], s.d.Requests[i+1:]...)
			return s.save()
		}
	}
	return nil
}

// Budgets

func (s *Store) Budgets() []models.Budget {
	if s.d == nil {
		return nil
	}
	return s.d.Budgets
}

func (s *Store) Budget(id int) (models.Budget, bool) {
	for _, b := range s.Budgets() {
		if b.ID == id {
			return b, true
		}
	}
	return models.Budget{}, false
}

func (s *Store) AddBudget(b models.Budget) (models.Budget, error) {
	if b.ID == 0 {
		ids := make([]int, len(s.d.Budgets))
		for i, rec := range s.d.Budgets {
			ids[i] = rec.ID
		}
		b.ID = models.NextID(ids)
	}
	s.d.Budgets = append(s.d.Budgets, b)
	return b, s.save()
}

func (s *Store) UpdateBudget(b models.Budget) error {
	for i, rec := range s.d.Budgets {
		if rec.ID == b.ID {
			s.d.Budgets[i] = b
			return s.save()
		}
	}
	return nil
}

func (s *Store) DeleteBudget(id int) error {
	for i, rec := range s.d.Budgets {
		if rec.ID == id {
			s.d.Budgets = append(s.d.Budgets[:i], s.d.Budgets[i+1:]...)
			return s.save()
		}
	}
	return nil
}

// Spare parts

func (s *Store) SpareParts() []models.SparePart {
	if s.d == nil {
		return nil
	}
	return s.d.SpareParts
}

func (s *Store) SparePart(id int) (models.SparePart, bool) {
	for _, p := range s.SpareParts() {
		if p.ID == id {
			return p, true
		}
	}
	return models.SparePart{}, false
}

func (s *Store) AddSparePart(p models.SparePart) (models.SparePart, error) {
	if p.ID == 0 {
		ids := make([]int, len(s.d.SpareParts))
		for i, rec := range s.d.SpareParts {
			ids[i] = rec.ID
		}
		p.ID = models.NextID(ids)
	}
	s.d.SpareParts = append(s.d.SpareParts, p)
	return p, s.save()
}

func (s *Store) UpdateSparePart(p models.SparePart) error {
	for i, rec := range s.d.SpareParts {
		if rec.ID == p.ID {
			s.d.SpareParts[i] = p
			return s.save()
		}
	}
	return nil
}

func (s *Store) DeleteSparePart(id int) error {
	for i, rec := range s.d.SpareParts {
		if rec.ID == id {
			s.d.SpareParts = append(s.d.SpareParts[:i], s.d.SpareParts[i+1:]...)
			return s.save()
		}
	}
	return nil
}

// Tools

func (s *Store) Tools() []models.Tool {
	if s.d == nil {
		return nil
	}
	return s.d.Tools
}

func (s *Store) Tool(id int) (models.Tool, bool) {
	for _, t := range s.Tools() {
		if t.ID == id {
			return t, true
		}
	}
	return models.Tool{}, false
}

func (s *Store) AddTool(t models.Tool) (models.Tool, error) {
	if t.ID == 0 {
		ids := make([]int, len(s.d.Tools))
		for i, rec := range s.d.Tools {
			ids[i] = rec.ID
		}
		t.ID = models.NextID(ids)
	}
	s.d.Tools = append(s.d.Tools, t)
	return t, s.save()
}

func (s *Store) UpdateTool(t models.Tool) error {
	for i, rec := range s.d.Tools {
		if rec.ID == t.ID {
			s.d.Tools[i] = t
			return s.save()
		}
	}
	return nil
}

func (s *Store) DeleteTool(id int) error {
	for i, rec := range s.d.Tools {
		if rec.ID == id {
			s.d.Tools = append(s.d.Tools[:i], s.d.Tools[i+1:]...)
			return s.save()
		}
	}
	return nil
}

// Providers

func (s *Store) Providers() []models.Provider {
	if s.d == nil {
		return nil
	}
	return s.d.Providers
}

func (s *Store) ProviderRecord(id int) (models.Provider, bool) {
	for _, p := range s.Providers() {
		if p.ID == id {
			return p, true
		}
	}
	return models.Provider{}, false
}

func (s *Store) AddProvider(p models.Provider) (models.Provider, error) {
	if p.ID == 0 {
		ids := make([]int, len(s.d.Providers))
		for i, rec := range s.d.Providers {
			ids[i] = rec.ID
		}
		p.ID = models.NextID(ids)
	}
	s.d.Providers = append(s.d.Providers, p)
	return p, s.save()
}

func (s *Store) UpdateProvider(p models.Provider) error {
	for i, rec := range s.d.Providers {
		if rec.ID == p.ID {
			s.d.Providers[i] = p
			return s.save()
		}
	}
	return nil
}

func (s *Store) DeleteProvider(id int) error {
	for i, rec := range s.d.Providers {
		if rec.ID == id {
			s.d.Providers = append(s.d.Providers[:i], s.d.Providers[i+1:]...)
			return s.save()
		}
	}
	return nil
}

// Templates

func (s *Store) Templates() []models.Template {
	if s.d == nil {
		return nil
	}
	return s.d.Templates
}

func (s *Store) Template(id int) (models.Template, bool) {
	for _, t := range s.Templates() {
		if t.ID == id {
			return t, true
		}
	}
	return models.Template{}, false
}

func (s *Store) AddTemplate(t models.Template) (models.Template, error) {
	if t.ID == 0 {
		ids := make([]int, len(s.d.Templates))
		for i, rec := range s.d.Templates {
			ids[i] = rec.ID
		}
		t.ID = models.NextID(ids)
	}
	s.d.Templates = append(s.d.Templates, t)
	return t, s.save()
}

func (s *Store) UpdateTemplate(t models.Template) error {
	for i, rec := range s.d.Templates {
		if rec.ID == t.ID {
			s.d.Templates[i] = t
			return s.save()
		}
	}
	return nil
}

func (s *Store) DeleteTemplate(id int) error {
	for i, rec := range s.d.Templates {
		if rec.ID == id {
			s.d.Templates = append(s.d.Templates[:i], s.d.Templates[i+1:]...)
			return s.save()
		}
	}
	return nil
}

// Users

func (s *Store) Users() []models.User {
	if s.d == nil {
		return nil
	}
	visible := make([]models.User, 0, len(s.d.CustomUsers))
	for _, u := range s.d.CustomUsers {
		if !containsString(s.d.DeletedUsers, u.Username) {
			visible = append(visible, u)
		}
	}
	return visible
}

func (s *Store) User(username string) (models.User, bool) {
	for _, u := range s.Users() {
		if u.Username == username {
			return u, true
		}
	}
	return models.User{}, false
}

func (s *Store) AddUser(u models.User) error {
	if _, ok := s.User(u.Username); ok {
		return ErrDuplicateUser
	}
	// Re-creating a previously deleted username revives it.
	for i, name := range s.d.DeletedUsers {
		if name == u.Username {
			s.d.DeletedUsers = append(s.d.DeletedUsers[:i], s.d.DeletedUsers[i+1:]...)
			break
		}
	}
	if i := userIndex(s.d.CustomUsers, u.Username); i >= 0 {
		s.d.CustomUsers[i] = u
	} else {
		s.d.CustomUsers = append(s.d.CustomUsers, u)
	}
	return s.save()
}

func (s *Store) UpdateUser(u models.User) error {
	if i := userIndex(s.d.CustomUsers, u.Username); i >= 0 {
		s.d.CustomUsers[i] = u
		return s.save()
	}
	return nil
}

func (s *Store) DeleteUser(username string) error {
	i := userIndex(s.d.CustomUsers, username)
	if i < 0 {
		return nil
	}
	s.d.CustomUsers = append(s.d.CustomUsers[:i], s.d.CustomUsers[i+1:]...)
	// Recorded so legacy readers of the overlay scheme also see the removal.
	if !containsString(s.d.DeletedUsers, username) {
		s.d.DeletedUsers = append(s.d.DeletedUsers, username)
	}
	return s.save()
}

// Session

func (s *Store) Session() (models.Session, bool) {
	if s.d == nil || s.d.CurrentUser == nil {
		return models.Session{}, false
	}
	return *s.d.CurrentUser, true
}

func (s *Store) SetSession(sess *models.Session) error {
	s.d.CurrentUser = sess
	return s.save()
}

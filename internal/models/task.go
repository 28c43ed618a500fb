package models

type TaskStatus string

const (
	TaskPending    TaskStatus = "pendiente"
	TaskAccepted   TaskStatus = "aceptada"
	TaskInProgress TaskStatus = "en progreso"
	TaskCompleted  TaskStatus = "completada"
	TaskCancelled  TaskStatus = "cancelada"
)

type Category string

const (
	CategoryMachine        Category = "maquina"
	CategoryInfrastructure Category = "infraestructura"
	CategoryAdmin          Category = "administrativa"
)

type Urgency string

const (
	UrgencyLow    Urgency = "baja"
	UrgencyMedium Urgency = "media"
	UrgencyHigh   Urgency = "alta"
)

// Task is a maintenance task pinned to an instant: Start and End always
// carry the same "2006-01-02T15:04" value. MachineID and LinkedRequestID
// are soft references and may dangle after the referenced record is gone.
type Task struct {
	ID              int        `json:"id"`
	Title           string     `json:"title"`
	Category        Category   `json:"category,omitempty"`
	Plant           string     `json:"plant"`
	MachineID       int        `json:"machineId,omitempty"`
	Start           string     `json:"start"`
	End             string     `json:"end"`
	Status          TaskStatus `json:"status"`
	Urgency         Urgency    `json:"urgency,omitempty"`
	Technician      string     `json:"technician,omitempty"`
	CreatedBy       string     `json:"createdBy,omitempty"`
	LinkedRequestID int        `json:"linkedRequestId,omitempty"`
}

// StartDateKey returns the YYYY-MM-DD portion of the start timestamp,
// exactly as the calendar correlates tasks to cells.
func (t Task) StartDateKey() string {
	if len(t.Start) < 10 {
		return ""
	}
	return t.Start[:10]
}

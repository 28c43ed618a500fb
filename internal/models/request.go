package models

type RequestStatus string

const (
	RequestPending  RequestStatus = "pendiente"
	RequestInReview RequestStatus = "en revision"
	RequestApproved RequestStatus = "aprobada"
	RequestRejected RequestStatus = "rechazada"
)

// Request is a maintenance request raised by a plant manager. When an admin
// assigns ResolutionDate, exactly one Task linked through LinkedRequestID is
// projected onto the calendar; clearing the date removes that task.
type Request struct {
	ID             int           `json:"id"`
	Title          string        `json:"title"`
	Date           string        `json:"date"` // YYYY-MM-DD
	Category       Category      `json:"category,omitempty"`
	Plant          string        `json:"plant"`
	MachineID      int           `json:"machineId,omitempty"`
	Urgency        Urgency       `json:"urgency,omitempty"`
	Image          string        `json:"image,omitempty"` // data URI
	Description    string        `json:"description,omitempty"`
	Requirements   string        `json:"requirements,omitempty"`
	Status         RequestStatus `json:"status"`
	CreatedBy      string        `json:"createdBy,omitempty"`
	ResolutionDate string        `json:"resolutionDate,omitempty"` // 2006-01-02T15:04
}

type BudgetStatus string

const (
	BudgetInReview BudgetStatus = "en revision"
	BudgetApproved BudgetStatus = "aprobado"
	BudgetRejected BudgetStatus = "rechazado"
)

type Budget struct {
	ID          int          `json:"id"`
	Title       string       `json:"title"`
	Date        string       `json:"date"` // YYYY-MM-DD
	Amount      float64      `json:"amount"`
	Status      BudgetStatus `json:"status"`
	Description string       `json:"description,omitempty"`
	File        string       `json:"file,omitempty"` // data URI
	Filename    string       `json:"filename,omitempty"`
}

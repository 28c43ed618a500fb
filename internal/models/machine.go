package models

// Plants recognized by the registry. Plant names double as the manager
// scoping dimension, so the strings must match what sessions carry.
const (
	PlantSanMartin = "San Martin"
	PlantVersalles = "Versalles"
)

type Machine struct {
	ID         int    `json:"id"`
	Name       string `json:"name"`
	Model      string `json:"model,omitempty"`
	Serial     string `json:"serial,omitempty"`
	Plant      string `json:"plant"`
	Dimensions string `json:"dimensions,omitempty"`
	Weight     string `json:"weight,omitempty"`
	Voltage    string `json:"voltage,omitempty"`
	Image      string `json:"image,omitempty"` // data URI
}

type MaintenanceType string

const (
	MaintenancePreventive   MaintenanceType = "preventivo"
	MaintenanceCorrective   MaintenanceType = "correctivo"
	MaintenanceIntervention MaintenanceType = "intervencion"
)

type MaintenanceStatus string

const (
	MaintenanceDone    MaintenanceStatus = "realizado"
	MaintenanceNotDone MaintenanceStatus = "no realizado"
)

// MaintenanceRecord is an independent history log entry; it is not derived
// from tasks.
type MaintenanceRecord struct {
	ID           int               `json:"id"`
	MachineID    int               `json:"machineId"`
	Date         string            `json:"date"` // YYYY-MM-DD
	Type         MaintenanceType   `json:"type"`
	Observations string            `json:"observations,omitempty"`
	Replacement  string            `json:"replacement,omitempty"`
	Status       MaintenanceStatus `json:"status"`
	Responsible  string            `json:"responsible,omitempty"`
}

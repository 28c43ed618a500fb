package validation

import (
	"fmt"
	"strings"
	"time"

	"github.com/lsoto/mantcal/internal/models"
)

// The forms rely on these checks the way the original relies on native form
// validation: required fields and closed enum sets, nothing more.

const (
	DateTimeFormat = "2006-01-02T15:04"
	DateFormat     = "2006-01-02"
)

func Required(field, value string) error {
	if strings.TrimSpace(value) == "" {
		return fmt.Errorf("%s is required", field)
	}
	return nil
}

func DateTime(value string) error {
	if _, err := time.Parse(DateTimeFormat, value); err != nil {
		return fmt.Errorf("invalid date/time %q, use YYYY-MM-DDTHH:MM", value)
	}
	return nil
}

func Date(value string) error {
	if _, err := time.Parse(DateFormat, value); err != nil {
		return fmt.Errorf("invalid date %q, use YYYY-MM-DD", value)
	}
	return nil
}

func Plant(value string) error {
	switch value {
	case models.PlantSanMartin, models.PlantVersalles:
		return nil
	}
	return fmt.Errorf("unknown plant %q", value)
}

func TaskStatus(value string) error {
	switch models.TaskStatus(value) {
	case models.TaskPending, models.TaskAccepted, models.TaskInProgress,
		models.TaskCompleted, models.TaskCancelled:
		return nil
	}
	return fmt.Errorf("unknown task status %q", value)
}

func RequestStatus(value string) error {
	switch models.RequestStatus(value) {
	case models.RequestPending, models.RequestInReview,
		models.RequestApproved, models.RequestRejected:
		return nil
	}
	return fmt.Errorf("unknown request status %q", value)
}

func BudgetStatus(value string) error {
	switch models.BudgetStatus(value) {
	case models.BudgetInReview, models.BudgetApproved, models.BudgetRejected:
		return nil
	}
	return fmt.Errorf("unknown budget status %q", value)
}

func Urgency(value string) error {
	switch models.Urgency(value) {
	case models.UrgencyLow, models.UrgencyMedium, models.UrgencyHigh:
		return nil
	}
	return fmt.Errorf("unknown urgency %q", value)
}

func Category(value string) error {
	switch models.Category(value) {
	case models.CategoryMachine, models.CategoryInfrastructure, models.CategoryAdmin:
		return nil
	}
	return fmt.Errorf("unknown category %q", value)
}

func ToolCondition(value string) error {
	switch models.ToolCondition(value) {
	case models.ToolGood, models.ToolMedium, models.ToolPoor, models.ToolUnderRepair:
		return nil
	}
	return fmt.Errorf("unknown tool condition %q", value)
}

func MaintenanceType(value string) error {
	switch models.MaintenanceType(value) {
	case models.MaintenancePreventive, models.MaintenanceCorrective,
		models.MaintenanceIntervention:
		return nil
	}
	return fmt.Errorf("unknown maintenance type %q", value)
}

func MaintenanceStatus(value string) error {
	switch models.MaintenanceStatus(value) {
	case models.MaintenanceDone, models.MaintenanceNotDone:
		return nil
	}
	return fmt.Errorf("unknown maintenance status %q", value)
}

func Role(value string) error {
	switch models.Role(value) {
	case models.RoleAdmin, models.RoleManager, models.RoleViewer:
		return nil
	}
	return fmt.Errorf("unknown role %q", value)
}

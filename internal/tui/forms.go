package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/huh"

	"github.com/lsoto/mantcal/internal/auth"
	"github.com/lsoto/mantcal/internal/models"
	"github.com/lsoto/mantcal/internal/validation"
)

func plantOptions() []huh.Option[string] {
	return []huh.Option[string]{
		huh.NewOption(models.PlantSanMartin, models.PlantSanMartin),
		huh.NewOption(models.PlantVersalles, models.PlantVersalles),
	}
}

func categoryOptions() []huh.Option[models.Category] {
	return []huh.Option[models.Category]{
		huh.NewOption("Máquina", models.CategoryMachine),
		huh.NewOption("Infraestructura", models.CategoryInfrastructure),
		huh.NewOption("Administrativa", models.CategoryAdmin),
	}
}

func urgencyOptions() []huh.Option[models.Urgency] {
	return []huh.Option[models.Urgency]{
		huh.NewOption("Baja", models.UrgencyLow),
		huh.NewOption("Media", models.UrgencyMedium),
		huh.NewOption("Alta", models.UrgencyHigh),
	}
}

func machineIDValidate(s string) error {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	if _, err := strconv.Atoi(s); err != nil {
		return fmt.Errorf("machine id must be a number")
	}
	return nil
}

// NewTaskForm builds the task form for the caller's role. A manager gets the
// restricted status select and nothing else; every other field behaves like
// a disabled input and resubmits its stored value.
func NewTaskForm(role models.Role, fm *TaskFormModel) *huh.Form {
	if role == models.RoleManager {
		allowed := auth.AllowedTaskTransitions(fm.Status)
		opts := make([]huh.Option[models.TaskStatus], len(allowed))
		for i, s := range allowed {
			opts[i] = huh.NewOption(string(s), s)
		}
		return huh.NewForm(
			huh.NewGroup(
				huh.NewSelect[models.TaskStatus]().
					Title("Estado").
					Options(opts...).
					Value(&fm.Status),
			),
		)
	}

	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Título").
				Value(&fm.Title).
				Validate(func(s string) error { return validation.Required("título", s) }),
			huh.NewSelect[string]().
				Title("Planta").
				Options(plantOptions()...).
				Value(&fm.Plant),
			huh.NewInput().
				Title("Inicio (YYYY-MM-DDTHH:MM)").
				Value(&fm.Start).
				Validate(validation.DateTime),
			huh.NewSelect[models.Category]().
				Title("Categoría").
				Options(categoryOptions()...).
				Value(&fm.Category),
			huh.NewInput().
				Title("Máquina (id)").
				Value(&fm.MachineID).
				Validate(machineIDValidate),
			huh.NewSelect[models.TaskStatus]().
				Title("Estado").
				Options(
					huh.NewOption("Pendiente", models.TaskPending),
					huh.NewOption("Aceptada", models.TaskAccepted),
					huh.NewOption("En progreso", models.TaskInProgress),
					huh.NewOption("Completada", models.TaskCompleted),
					huh.NewOption("Cancelada", models.TaskCancelled),
				).
				Value(&fm.Status),
			huh.NewSelect[models.Urgency]().
				Title("Urgencia").
				Options(urgencyOptions()...).
				Value(&fm.Urgency),
			huh.NewInput().
				Title("Técnico").
				Value(&fm.Technician),
		),
	)
}

// NewRequestForm builds the request creation form. The plant select is
// omitted for managers; their requests always land on their own plant.
func NewRequestForm(role models.Role, fm *RequestFormModel) *huh.Form {
	fields := []huh.Field{
		huh.NewInput().
			Title("Título").
			Value(&fm.Title).
			Validate(func(s string) error { return validation.Required("título", s) }),
		huh.NewInput().
			Title("Fecha (YYYY-MM-DD)").
			Value(&fm.Date).
			Validate(validation.Date),
	}
	if role != models.RoleManager {
		fields = append(fields,
			huh.NewSelect[string]().
				Title("Planta").
				Options(plantOptions()...).
				Value(&fm.Plant),
		)
	}
	fields = append(fields,
		huh.NewSelect[models.Category]().
			Title("Categoría").
			Options(categoryOptions()...).
			Value(&fm.Category),
		huh.NewInput().
			Title("Máquina (id)").
			Value(&fm.MachineID).
			Validate(machineIDValidate),
		huh.NewSelect[models.Urgency]().
			Title("Urgencia").
			Options(urgencyOptions()...).
			Value(&fm.Urgency),
		huh.NewText().
			Title("Descripción").
			Value(&fm.Description),
		huh.NewText().
			Title("Requerimientos").
			Value(&fm.Requirements),
	)

	return huh.NewForm(huh.NewGroup(fields...))
}

// NewResolveForm builds the resolution form: a date schedules the linked
// task, the clear confirm removes it.
func NewResolveForm(fm *ResolveFormModel) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Fecha de resolución (YYYY-MM-DDTHH:MM)").
				Description("Vacío junto con 'Quitar' elimina la tarea vinculada").
				Value(&fm.Date).
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return nil
					}
					return validation.DateTime(s)
				}),
			huh.NewConfirm().
				Title("Quitar fecha de resolución").
				Value(&fm.Clear),
		),
	)
}

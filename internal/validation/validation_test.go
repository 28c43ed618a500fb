package validation

import "testing"

func TestDateTime(t *testing.T) {
	if err := DateTime("2024-03-05T10:30"); err != nil {
		t.Errorf("valid datetime rejected: %v", err)
	}
	for _, bad := range []string{"", "2024-03-05", "2024-03-05 10:30", "05/03/2024T10:30", "2024-13-05T10:30"} {
		if err := DateTime(bad); err == nil {
			t.Errorf("DateTime(%q) should fail", bad)
		}
	}
}

func TestDate(t *testing.T) {
	if err := Date("2024-02-29"); err != nil {
		t.Errorf("leap day rejected: %v", err)
	}
	for _, bad := range []string{"", "2023-02-29", "2024-3-5", "2024-03-05T10:00"} {
		if err := Date(bad); err == nil {
			t.Errorf("Date(%q) should fail", bad)
		}
	}
}

func TestEnumSets(t *testing.T) {
	cases := []struct {
		name  string
		check func(string) error
		good  []string
		bad   []string
	}{
		{"plant", Plant, []string{"San Martin", "Versalles"}, []string{"", "san martin", "Central"}},
		{"task status", TaskStatus, []string{"pendiente", "aceptada", "en progreso", "completada", "cancelada"}, []string{"", "abierta", "Pendiente"}},
		{"request status", RequestStatus, []string{"pendiente", "en revision", "aprobada", "rechazada"}, []string{"", "aprobado"}},
		{"budget status", BudgetStatus, []string{"en revision", "aprobado", "rechazado"}, []string{"", "aprobada"}},
		{"urgency", Urgency, []string{"baja", "media", "alta"}, []string{"", "urgente"}},
		{"category", Category, []string{"maquina", "infraestructura", "administrativa"}, []string{"", "máquina"}},
		{"tool condition", ToolCondition, []string{"buena", "media", "mala", "en reparacion"}, []string{"", "rota"}},
		{"maintenance type", MaintenanceType, []string{"preventivo", "correctivo", "intervencion"}, []string{"", "predictivo"}},
		{"maintenance status", MaintenanceStatus, []string{"realizado", "no realizado"}, []string{"", "pendiente"}},
		{"role", Role, []string{"admin", "manager", "viewer"}, []string{"", "root"}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			for _, v := range tc.good {
				if err := tc.check(v); err != nil {
					t.Errorf("%q rejected: %v", v, err)
				}
			}
			for _, v := range tc.bad {
				if err := tc.check(v); err == nil {
					t.Errorf("%q should fail", v)
				}
			}
		})
	}
}

func TestRequired(t *testing.T) {
	if err := Required("title", "algo"); err != nil {
		t.Errorf("non-empty rejected: %v", err)
	}
	if err := Required("title", "   "); err == nil {
		t.Error("whitespace-only should fail")
	}
}

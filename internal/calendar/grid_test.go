package calendar

import (
	"testing"
	"time"

	"github.com/lsoto/mantcal/internal/models"
)

func countCells(g Grid) (active, leading, trailing int) {
	seenActive := false
	for _, c := range g.Cells {
		if c.Inactive {
			if seenActive {
				trailing++
			} else {
				leading++
			}
		} else {
			seenActive = true
			active++
		}
	}
	return
}

func TestMonthGridShape(t *testing.T) {
	cases := []struct {
		name  string
		year  int
		month time.Month
		days  int
	}{
		{"march 2024", 2024, time.March, 31},
		{"february leap year", 2024, time.February, 29},
		{"february non-leap", 2023, time.February, 28},
		{"december year end", 2024, time.December, 31},
		{"january year start", 2025, time.January, 31},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			g := MonthGrid(tc.year, tc.month, nil, time.UTC)

			if len(g.Cells) != CellCount {
				t.Fatalf("got %d cells, want %d", len(g.Cells), CellCount)
			}

			active, leading, trailing := countCells(g)
			if active != tc.days {
				t.Errorf("active cells = %d, want %d", active, tc.days)
			}
			if leading+trailing != CellCount-tc.days {
				t.Errorf("inactive cells = %d, want %d", leading+trailing, CellCount-tc.days)
			}

			// Active days must run 1..days in order.
			day := 1
			for _, c := range g.Cells {
				if c.Inactive {
					continue
				}
				if c.Day != day {
					t.Fatalf("active day sequence broken: got %d, want %d", c.Day, day)
				}
				day++
			}
		})
	}
}

func TestMonthGridMondayFirst(t *testing.T) {
	// September 2025 starts on a Monday: no leading cells at all.
	g := MonthGrid(2025, time.September, nil, time.UTC)
	if g.Cells[0].Inactive || g.Cells[0].Day != 1 {
		t.Errorf("cell 0 = day %d inactive=%v, want day 1 active", g.Cells[0].Day, g.Cells[0].Inactive)
	}

	// June 2025 starts on a Sunday, the last column: six leading cells.
	g = MonthGrid(2025, time.June, nil, time.UTC)
	_, leading, _ := countCells(g)
	if leading != 6 {
		t.Errorf("june 2025 leading cells = %d, want 6", leading)
	}
}

func TestMonthGridPlacesTasks(t *testing.T) {
	tasks := []models.Task{
		{ID: 1, Title: "Cambio de filtro", Plant: models.PlantVersalles, Start: "2024-03-05T10:00", End: "2024-03-05T10:00", Status: models.TaskPending},
		{ID: 2, Title: "Otra planta", Plant: models.PlantSanMartin, Start: "2024-04-05T10:00", End: "2024-04-05T10:00", Status: models.TaskPending},
	}

	g := MonthGrid(2024, time.March, tasks, time.UTC)

	hits := 0
	for _, c := range g.Cells {
		for _, task := range c.Tasks {
			if task.ID == 1 {
				hits++
				if c.Day != 5 || c.Inactive {
					t.Errorf("task landed on day %d inactive=%v, want active day 5", c.Day, c.Inactive)
				}
			}
			if task.ID == 2 {
				t.Errorf("april task leaked into the march grid on day %d", c.Day)
			}
		}
	}
	if hits != 1 {
		t.Errorf("task appeared in %d cells, want exactly 1", hits)
	}
}

func TestDateKeyShiftsAheadOfUTC(t *testing.T) {
	// Local midnight in a zone ahead of UTC is still the previous day in
	// UTC, so the derived key lags the civil date by one. The mismatch with
	// Task.StartDateKey is long-standing behavior and must stay.
	ahead := time.FixedZone("UTC+10", 10*60*60)
	if got := DateKey(2024, time.March, 5, ahead); got != "2024-03-04" {
		t.Errorf("DateKey in UTC+10 = %q, want %q", got, "2024-03-04")
	}

	// At or behind UTC the key matches the civil date.
	if got := DateKey(2024, time.March, 5, time.UTC); got != "2024-03-05" {
		t.Errorf("DateKey in UTC = %q, want %q", got, "2024-03-05")
	}
	behind := time.FixedZone("UTC-5", -5*60*60)
	if got := DateKey(2024, time.March, 5, behind); got != "2024-03-05" {
		t.Errorf("DateKey in UTC-5 = %q, want %q", got, "2024-03-05")
	}
}

func TestMonthNavigationRollsYears(t *testing.T) {
	y, m := PrevMonth(2024, time.January)
	if y != 2023 || m != time.December {
		t.Errorf("PrevMonth(2024, January) = %d %v, want 2023 December", y, m)
	}

	y, m = NextMonth(2024, time.December)
	if y != 2025 || m != time.January {
		t.Errorf("NextMonth(2024, December) = %d %v, want 2025 January", y, m)
	}

	// A full year of hops in either direction returns to the start.
	y, m = 2024, time.June
	for i := 0; i < 12; i++ {
		y, m = NextMonth(y, m)
	}
	if y != 2025 || m != time.June {
		t.Errorf("12 x NextMonth = %d %v, want 2025 June", y, m)
	}
}

func TestTitle(t *testing.T) {
	if got := Title(2024, time.March); got != "marzo 2024" {
		t.Errorf("Title = %q, want %q", got, "marzo 2024")
	}
	if got := Title(2025, time.December); got != "diciembre 2025" {
		t.Errorf("Title = %q, want %q", got, "diciembre 2025")
	}
}

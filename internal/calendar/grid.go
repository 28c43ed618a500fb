package calendar

import (
	"fmt"
	"time"

	"github.com/lsoto/mantcal/internal/models"
)

// CellCount is the fixed grid size: 6 rows of 7 days, Monday first.
const CellCount = 42

// DayHeaders are the column labels, Monday first.
var DayHeaders = [7]string{"Lun", "Mar", "Mié", "Jue", "Vie", "Sáb", "Dom"}

var monthNames = [12]string{
	"enero", "febrero", "marzo", "abril", "mayo", "junio",
	"julio", "agosto", "septiembre", "octubre", "noviembre", "diciembre",
}

// Cell is one day slot in the month grid. Inactive marks leading days of
// the previous month and trailing days of the next.
type Cell struct {
	Date     time.Time
	Key      string // YYYY-MM-DD, see DateKey
	Day      int
	Inactive bool
	Tasks    []models.Task
}

// Grid is the projection of one month plus the task collection. It is a
// pure value: callers thread the viewed year/month through explicitly.
type Grid struct {
	Year  int
	Month time.Month
	Cells [CellCount]Cell
}

// DateKey derives the string key a calendar day is matched under. The day
// is constructed at local midnight and then formatted through UTC, exactly
// as the original derives it. In locations ahead of UTC local midnight
// falls on the previous UTC day, so the key shifts back by one day there.
// This reproduces the source behavior on purpose; see the regression test.
func DateKey(year int, month time.Month, day int, loc *time.Location) string {
	return time.Date(year, month, day, 0, 0, 0, 0, loc).UTC().Format("2006-01-02")
}

// MonthGrid produces exactly 42 cells for the given month and correlates
// each cell with the tasks whose start date portion equals the cell key.
func MonthGrid(year int, month time.Month, tasks []models.Task, loc *time.Location) Grid {
	firstDay := time.Date(year, month, 1, 0, 0, 0, 0, loc)
	startOffset := (int(firstDay.Weekday()) + 6) % 7 // Monday = 0
	daysInMonth := time.Date(year, month+1, 0, 0, 0, 0, 0, loc).Day()
	daysInPrevMonth := time.Date(year, month, 0, 0, 0, 0, 0, loc).Day()

	g := Grid{Year: year, Month: month}
	for i := 0; i < CellCount; i++ {
		var day int
		var cellMonth time.Month
		var cellYear int
		inactive := false

		switch {
		case i < startOffset:
			day = daysInPrevMonth - startOffset + 1 + i
			cellYear, cellMonth = normalize(year, month-1)
			inactive = true
		case i >= startOffset+daysInMonth:
			day = i - (startOffset + daysInMonth) + 1
			cellYear, cellMonth = normalize(year, month+1)
			inactive = true
		default:
			day = i - startOffset + 1
			cellYear, cellMonth = year, month
		}

		key := DateKey(cellYear, cellMonth, day, loc)
		g.Cells[i] = Cell{
			Date:     time.Date(cellYear, cellMonth, day, 0, 0, 0, 0, loc),
			Key:      key,
			Day:      day,
			Inactive: inactive,
			Tasks:    tasksFor(tasks, key),
		}
	}
	return g
}

// tasksFor filters by exact string equality on the start date portion; no
// timezone normalization beyond what DateKey already did.
func tasksFor(tasks []models.Task, key string) []models.Task {
	var out []models.Task
	for _, t := range tasks {
		if t.StartDateKey() == key {
			out = append(out, t)
		}
	}
	return out
}

func normalize(year int, month time.Month) (int, time.Month) {
	d := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	return d.Year(), d.Month()
}

// PrevMonth rolls the viewed month back, crossing year boundaries freely.
func PrevMonth(year int, month time.Month) (int, time.Month) {
	return normalize(year, month-1)
}

// NextMonth rolls the viewed month forward, crossing year boundaries freely.
func NextMonth(year int, month time.Month) (int, time.Month) {
	return normalize(year, month+1)
}

// Title renders the month label the way the original header does.
func Title(year int, month time.Month) string {
	return fmt.Sprintf("%s %d", monthNames[month-1], year)
}

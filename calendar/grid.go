package calendar

import (
	"fmt"
	"time"

	"github.com/Dosada05/sports-calendar/models"
)

// DayCell is one cell of a month grid. Leading placeholders have Date == 0.
type DayCell struct {
	Date      int            `json:"date"`
	HasEvents bool           `json:"has_events"`
	Events    []models.Event `json:"events"`
	IsToday   bool           `json:"is_today"`
}

// Month is a rendered month grid.
type Month struct {
	Year  int        `json:"year"`
	Month time.Month `json:"month"`
	Title string     `json:"title"`
	Days  []DayCell  `json:"days"`
}

// DateKey builds the YYYY-MM-DD key used to match events to days.
func DateKey(year int, month time.Month, day int) string {
	return fmt.Sprintf("%04d-%02d-%02d", year, int(month), day)
}

// DaysIn returns the number of days in the given month.
func DaysIn(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 12, 0, 0, 0, time.UTC).Day()
}

// LeadingBlanks is the weekday offset of day 1, Sunday first.
func LeadingBlanks(year int, month time.Month) int {
	return int(time.Date(year, month, 1, 12, 0, 0, 0, time.UTC).Weekday())
}

// BuildMonth lays out a month as a flat slice of cells:
// LeadingBlanks placeholders followed by one cell per day.
// Events are matched by string equality of their Date against the day key
// and keep their source order within a cell.
func BuildMonth(year int, month time.Month, events []models.Event, today time.Time) []DayCell {
	blanks := LeadingBlanks(year, month)
	days := DaysIn(year, month)

	byDate := make(map[string][]models.Event)
	for _, e := range events {
		byDate[e.Date] = append(byDate[e.Date], e)
	}

	cells := make([]DayCell, 0, blanks+days)
	for i := 0; i < blanks; i++ {
		cells = append(cells, DayCell{Events: []models.Event{}})
	}

	ty, tm, td := today.Date()
	for day := 1; day <= days; day++ {
		dayEvents := byDate[DateKey(year, month, day)]
		if dayEvents == nil {
			dayEvents = []models.Event{}
		}
		cells = append(cells, DayCell{
			Date:      day,
			HasEvents: len(dayEvents) > 0,
			Events:    dayEvents,
			IsToday:   ty == year && tm == month && td == day,
		})
	}

	return cells
}

var monthNamesRU = [...]string{
	"январь", "февраль", "март", "апрель", "май", "июнь",
	"июль", "август", "сентябрь", "октябрь", "ноябрь", "декабрь",
}

// MonthTitle formats the month the way the ru-RU locale does ("ноябрь 2025 г.").
func MonthTitle(year int, month time.Month) string {
	if month < time.January || month > time.December {
		return fmt.Sprintf("%d", year)
	}
	return fmt.Sprintf("%s %d г.", monthNamesRU[month-1], year)
}

// Shift moves a reference month by offset months, normalizing the year.
func Shift(year int, month time.Month, offset int) (int, time.Month) {
	t := time.Date(year, month+time.Month(offset), 1, 12, 0, 0, 0, time.UTC)
	return t.Year(), t.Month()
}

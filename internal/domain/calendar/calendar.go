package calendar

import (
	"time"

	"github.com/sention-aktivitus/klientportal-api/internal/domain/appointment"
	"github.com/sention-aktivitus/klientportal-api/internal/models"
)

// DaysGrid returns the month laid out for a Monday-first week: leading
// zeros for the blank cells before the 1st, then the day numbers
// 1..daysInMonth. Trailing blanks for the final partial week are the
// renderer's responsibility.
func DaysGrid(year int, month time.Month) []int {
	first := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)

	blanks := int(first.Weekday()) - 1
	if first.Weekday() == time.Sunday {
		blanks = 6
	}

	daysInMonth := first.AddDate(0, 1, -1).Day()

	grid := make([]int, 0, blanks+daysInMonth)
	for i := 0; i < blanks; i++ {
		grid = append(grid, 0)
	}
	for day := 1; day <= daysInMonth; day++ {
		grid = append(grid, day)
	}
	return grid
}

// MonthIndex maps day-of-month to the contacts booked on that day for the
// given month. A client appears once per booked kind; entries are not
// de-duplicated by client.
func MonthIndex(clients []models.Client, year int, month time.Month) map[int][]appointment.Entry {
	index := make(map[int][]appointment.Entry)

	for i := range clients {
		for _, k := range appointment.Kinds() {
			date, person, details := appointment.Fields(&clients[i], k)
			if date == "" {
				continue
			}
			t, err := time.Parse(appointment.DateLayout, date)
			if err != nil {
				continue
			}
			if t.Year() != year || t.Month() != month {
				continue
			}
			index[t.Day()] = append(index[t.Day()], appointment.Entry{
				ClientID:       clients[i].ID,
				ClientName:     clients[i].Name,
				PersonalNumber: clients[i].PersonalNumber,
				Kind:           k,
				KindLabel:      k.Label(),
				Date:           date,
				Person:         person,
				Details:        details,
			})
		}
	}

	return index
}

// IsToday reports whether a day cell should carry the today highlight:
// the day must equal the real current date and the displayed month and
// year must equal the real current month and year.
func IsToday(year int, month time.Month, day int, now time.Time) bool {
	return day == now.Day() && month == now.Month() && year == now.Year()
}

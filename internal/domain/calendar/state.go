package calendar

import (
	"fmt"
	"net/url"
	"strconv"
	"time"

	"github.com/sention-aktivitus/klientportal-api/internal/domain/appointment"
)

// State is the calendar view: the displayed month, an optionally selected
// day, and an optionally drilled-into appointment within that day. The
// zero values of the selection fields mean "nothing selected".
type State struct {
	Year  int
	Month time.Month

	SelectedDay      int
	SelectedClientID string
	SelectedKind     appointment.Kind
}

func NewState(now time.Time) State {
	return State{Year: now.Year(), Month: now.Month()}
}

func (s *State) clearSelection() {
	s.SelectedDay = 0
	s.SelectedClientID = ""
	s.SelectedKind = ""
}

// PrevMonth shifts the view back exactly one calendar month and drops any
// selection, which would otherwise point into the wrong month.
func (s *State) PrevMonth() {
	t := time.Date(s.Year, s.Month, 1, 0, 0, 0, 0, time.UTC).AddDate(0, -1, 0)
	s.Year, s.Month = t.Year(), t.Month()
	s.clearSelection()
}

// NextMonth shifts the view forward exactly one calendar month and drops
// any selection.
func (s *State) NextMonth() {
	t := time.Date(s.Year, s.Month, 1, 0, 0, 0, 0, time.UTC).AddDate(0, 1, 0)
	s.Year, s.Month = t.Year(), t.Month()
	s.clearSelection()
}

// ToggleDay selects a day, or deselects it when it is already selected.
// Either way any drilled-into appointment is cleared.
func (s *State) ToggleDay(day int) {
	if s.SelectedDay == day {
		s.clearSelection()
		return
	}
	s.SelectedDay = day
	s.SelectedClientID = ""
	s.SelectedKind = ""
}

// SelectAppointment drills into one client+kind entry of the selected day.
func (s *State) SelectAppointment(clientID string, kind appointment.Kind) {
	s.SelectedClientID = clientID
	s.SelectedKind = kind
}

// Back leaves the appointment detail but keeps the day selected.
func (s *State) Back() {
	s.SelectedClientID = ""
	s.SelectedKind = ""
}

// FromQuery restores a State from URL query parameters so the view is
// deep-linkable. Missing or malformed parameters fall back to the current
// month with nothing selected.
func FromQuery(values url.Values, now time.Time) State {
	s := NewState(now)

	if raw := values.Get("date"); raw != "" {
		if t, err := time.Parse("2006-01", raw); err == nil {
			s.Year, s.Month = t.Year(), t.Month()
		}
	}

	if raw := values.Get("day"); raw != "" {
		day, err := strconv.Atoi(raw)
		if err == nil && day >= 1 && day <= daysIn(s.Year, s.Month) {
			s.SelectedDay = day
		}
	}

	// The drill-down only means anything relative to a selected day.
	if s.SelectedDay != 0 {
		clientID := values.Get("clientId")
		kind, ok := appointment.ParseKind(values.Get("appointmentType"))
		if clientID != "" && ok {
			s.SelectedClientID = clientID
			s.SelectedKind = kind
		}
	}

	return s
}

// Query renders the state back into its canonical URL parameters.
func (s State) Query() url.Values {
	values := url.Values{}
	values.Set("date", fmt.Sprintf("%04d-%02d", s.Year, int(s.Month)))

	if s.SelectedDay != 0 {
		values.Set("day", strconv.Itoa(s.SelectedDay))
	}
	if s.SelectedClientID != "" && s.SelectedKind != "" {
		values.Set("clientId", s.SelectedClientID)
		values.Set("appointmentType", string(s.SelectedKind))
	}

	return values
}

func daysIn(year int, month time.Month) int {
	return time.Date(year, month, 1, 0, 0, 0, 0, time.UTC).AddDate(0, 1, -1).Day()
}

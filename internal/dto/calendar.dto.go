package dto

import "github.com/sention-aktivitus/klientportal-api/internal/domain/appointment"

// CalendarViewDTO is one snapshot of the calendar view. Query/PrevQuery/
// NextQuery are canonical query strings so the client can deep-link and
// navigate with plain anchors.
type CalendarViewDTO struct {
	Year  int `json:"year"`
	Month int `json:"month"`

	Grid  []int `json:"grid"`
	Today int   `json:"today,omitempty"`

	AppointmentsByDay map[int][]appointment.Entry `json:"appointments_by_day"`

	SelectedDay             int                 `json:"selected_day,omitempty"`
	SelectedDayAppointments []appointment.Entry `json:"selected_day_appointments,omitempty"`
	SelectedAppointment     *appointment.Entry  `json:"selected_appointment,omitempty"`

	Query     string `json:"query"`
	PrevQuery string `json:"prev_query"`
	NextQuery string `json:"next_query"`
}

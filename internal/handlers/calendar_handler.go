package handlers

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/sention-aktivitus/klientportal-api/internal/domain/appointment"
	"github.com/sention-aktivitus/klientportal-api/internal/domain/calendar"
	"github.com/sention-aktivitus/klientportal-api/internal/dto"
	"github.com/sention-aktivitus/klientportal-api/internal/httperr"
	"github.com/sention-aktivitus/klientportal-api/internal/httpresp"
	"github.com/sention-aktivitus/klientportal-api/internal/models"
	"github.com/sention-aktivitus/klientportal-api/internal/timezone"
)

type CalendarHandler struct {
	db *gorm.DB
	tz string
}

func NewCalendarHandler(db *gorm.DB, tz string) *CalendarHandler {
	return &CalendarHandler{db: db, tz: tz}
}

// Get renders a month of appointments. The view state (month, selected
// day, drilled-into appointment) lives entirely in the query string, so
// every response is reachable by URL alone.
func (h *CalendarHandler) Get(c *gin.Context) {
	now := timezone.NowIn(h.tz)
	state := calendar.FromQuery(c.Request.URL.Query(), now)

	var clients []models.Client
	if err := h.db.WithContext(c.Request.Context()).
		Find(&clients).Error; err != nil {

		httperr.Internal(c, "failed_to_list_clients", "Could not fetch clients.")
		return
	}

	byDay := calendar.MonthIndex(clients, state.Year, state.Month)

	resp := dto.CalendarViewDTO{
		Year:              state.Year,
		Month:             int(state.Month),
		Grid:              calendar.DaysGrid(state.Year, state.Month),
		AppointmentsByDay: byDay,
		Query:             state.Query().Encode(),
	}

	if calendar.IsToday(state.Year, state.Month, now.Day(), now) {
		resp.Today = now.Day()
	}

	if state.SelectedDay != 0 {
		resp.SelectedDay = state.SelectedDay
		resp.SelectedDayAppointments = byDay[state.SelectedDay]
		resp.SelectedAppointment = findSelected(byDay[state.SelectedDay], state)
	}

	prev, next := state, state
	prev.PrevMonth()
	next.NextMonth()
	resp.PrevQuery = prev.Query().Encode()
	resp.NextQuery = next.Query().Encode()

	httpresp.OK(c, resp)
}

func findSelected(entries []appointment.Entry, state calendar.State) *appointment.Entry {
	if state.SelectedClientID == "" {
		return nil
	}
	for i := range entries {
		if entries[i].ClientID == state.SelectedClientID && entries[i].Kind == state.SelectedKind {
			return &entries[i]
		}
	}
	return nil
}

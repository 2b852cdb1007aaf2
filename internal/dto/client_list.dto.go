package dto

import (
	"github.com/sention-aktivitus/klientportal-api/internal/domain/appointment"
	"github.com/sention-aktivitus/klientportal-api/internal/models"
)

type ClientListItemDTO struct {
	Client          models.Client      `json:"client"`
	NextAppointment *appointment.Entry `json:"next_appointment"`
}

type DashboardDTO struct {
	Upcoming        []appointment.Entry `json:"upcoming"`
	EventsThisWeek  int                 `json:"events_this_week"`
	InactiveClients []models.Client     `json:"inactive_clients"`
	ClientCount     int                 `json:"client_count"`
}

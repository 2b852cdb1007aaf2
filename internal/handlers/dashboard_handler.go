package handlers

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/sention-aktivitus/klientportal-api/internal/domain/appointment"
	"github.com/sention-aktivitus/klientportal-api/internal/dto"
	"github.com/sention-aktivitus/klientportal-api/internal/httperr"
	"github.com/sention-aktivitus/klientportal-api/internal/httpresp"
	"github.com/sention-aktivitus/klientportal-api/internal/models"
	"github.com/sention-aktivitus/klientportal-api/internal/timezone"
)

type DashboardHandler struct {
	db *gorm.DB
	tz string
}

func NewDashboardHandler(db *gorm.DB, tz string) *DashboardHandler {
	return &DashboardHandler{db: db, tz: tz}
}

// Get summarizes the caseload: the next eight upcoming appointments
// across all clients, this week's event count and the planned clients
// that have nothing scheduled.
func (h *DashboardHandler) Get(c *gin.Context) {
	var clients []models.Client
	if err := h.db.WithContext(c.Request.Context()).
		Order("created_at DESC").
		Find(&clients).Error; err != nil {

		httperr.Internal(c, "failed_to_list_clients", "Could not fetch clients.")
		return
	}

	today := timezone.NowIn(h.tz)
	upcoming := appointment.Upcoming(clients, today)

	resp := dto.DashboardDTO{
		Upcoming:        upcoming,
		EventsThisWeek:  appointment.CountWithinWeek(upcoming, today),
		InactiveClients: appointment.Inactive(clients),
		ClientCount:     len(clients),
	}

	httpresp.OK(c, resp)
}

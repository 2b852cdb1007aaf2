package handlers

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/sention-aktivitus/klientportal-api/internal/audit"
	"github.com/sention-aktivitus/klientportal-api/internal/httperr"
	"github.com/sention-aktivitus/klientportal-api/internal/httpresp"
	"github.com/sention-aktivitus/klientportal-api/internal/middleware"
	"github.com/sention-aktivitus/klientportal-api/internal/models"
	"github.com/sention-aktivitus/klientportal-api/internal/validators"
)

type LinkHandler struct {
	db    *gorm.DB
	audit *audit.Dispatcher
}

func NewLinkHandler(db *gorm.DB, audit *audit.Dispatcher) *LinkHandler {
	return &LinkHandler{db: db, audit: audit}
}

type CreateLinkRequest struct {
	Name string `json:"name" binding:"required"`
	URL  string `json:"url" binding:"required"`
	Date string `json:"date"`
}

// newLink builds the row from user input. The date is optional and stays
// empty when the caller sends none; only the URL gets normalized.
func newLink(clientID string, req CreateLinkRequest) (models.Link, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return models.Link{}, httperr.ErrBusiness("invalid_name")
	}

	normalized, err := validators.NormalizeLinkURL(req.URL)
	if err != nil {
		return models.Link{}, httperr.ErrBusiness("invalid_url")
	}

	if err := validDateField(req.Date); err != nil {
		return models.Link{}, httperr.ErrBusiness("invalid_date")
	}

	return models.Link{
		ID:       uuid.NewString(),
		ClientID: clientID,
		Name:     name,
		URL:      normalized,
		Date:     req.Date,
		AddedAt:  time.Now(),
	}, nil
}

func (h *LinkHandler) List(c *gin.Context) {
	clientID := c.Param("id")

	if !clientExists(c, h.db, clientID) {
		return
	}

	var links []models.Link
	if err := h.db.WithContext(c.Request.Context()).
		Where("client_id = ?", clientID).
		Order("added_at DESC").
		Find(&links).Error; err != nil {

		httperr.Internal(c, "failed_to_list_links", "Could not fetch links.")
		return
	}

	httpresp.List(c, links)
}

func (h *LinkHandler) Create(c *gin.Context) {
	clientID := c.Param("id")

	if !clientExists(c, h.db, clientID) {
		return
	}

	var req CreateLinkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid request body.")
		return
	}

	link, err := newLink(clientID, req)
	if err != nil {
		switch {
		case httperr.IsBusiness(err, "invalid_name"):
			httperr.BadRequest(c, "invalid_name", "A link needs a name.")
		case httperr.IsBusiness(err, "invalid_url"):
			httperr.BadRequest(c, "invalid_url", "That does not look like a valid address.")
		default:
			httperr.BadRequest(c, "invalid_date", "Date must be YYYY-MM-DD.")
		}
		return
	}

	if err := h.db.WithContext(c.Request.Context()).Create(&link).Error; err != nil {
		httperr.Internal(c, "failed_to_create_link", "Could not save the link.")
		return
	}

	userID := c.MustGet(middleware.ContextUserID).(string)
	h.audit.Dispatch(audit.Event{
		UserID:   &userID,
		Action:   "link_added",
		Entity:   "link",
		EntityID: &link.ID,
		Metadata: map[string]any{"client_id": clientID},
	})

	c.JSON(http.StatusCreated, link)
}

// Delete removes a link without password confirmation. Links are
// pointers, not records; recreating one costs nothing.
func (h *LinkHandler) Delete(c *gin.Context) {
	clientID := c.Param("id")
	linkID := c.Param("linkId")

	var link models.Link
	if err := h.db.WithContext(c.Request.Context()).
		First(&link, "id = ? AND client_id = ?", linkID, clientID).Error; err != nil {

		if err == gorm.ErrRecordNotFound {
			httperr.NotFound(c, "link_not_found", "Link not found.")
			return
		}
		httperr.Internal(c, "failed_to_get_link", "Could not fetch the link.")
		return
	}

	if err := h.db.WithContext(c.Request.Context()).Delete(&link).Error; err != nil {
		httperr.Internal(c, "failed_to_delete_link", "Could not delete the link.")
		return
	}

	userID := c.MustGet(middleware.ContextUserID).(string)
	h.audit.Dispatch(audit.Event{
		UserID:   &userID,
		Action:   "link_deleted",
		Entity:   "link",
		EntityID: &link.ID,
		Metadata: map[string]any{"client_id": clientID},
	})

	c.JSON(http.StatusOK, gin.H{"deleted": true})
}

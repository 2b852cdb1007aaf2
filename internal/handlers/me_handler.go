package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/sention-aktivitus/klientportal-api/internal/audit"
	"github.com/sention-aktivitus/klientportal-api/internal/httperr"
	"github.com/sention-aktivitus/klientportal-api/internal/middleware"
	"github.com/sention-aktivitus/klientportal-api/internal/models"
)

type MeHandler struct {
	db    *gorm.DB
	audit *audit.Dispatcher
}

func NewMeHandler(db *gorm.DB, audit *audit.Dispatcher) *MeHandler {
	return &MeHandler{db: db, audit: audit}
}

// currentUser loads the authenticated user row. Handlers that re-verify
// the password on destructive operations go through this too.
func currentUser(c *gin.Context, db *gorm.DB) (*models.User, bool) {
	userIDVal, exists := c.Get(middleware.ContextUserID)
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user_not_in_context"})
		return nil, false
	}

	userID, ok := userIDVal.(string)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid_user_id_type"})
		return nil, false
	}

	var user models.User
	if err := db.First(&user, "id = ?", userID).Error; err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user_not_found"})
		return nil, false
	}

	return &user, true
}

func (h *MeHandler) GetMe(c *gin.Context) {
	user, ok := currentUser(c, h.db)
	if !ok {
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"user": gin.H{
			"id":           user.ID,
			"email":        user.Email,
			"display_name": user.DisplayName,
		},
	})
}

type UpdateMeRequest struct {
	DisplayName *string `json:"display_name"`
}

func (h *MeHandler) UpdateMe(c *gin.Context) {
	user, ok := currentUser(c, h.db)
	if !ok {
		return
	}

	var req UpdateMeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid request body.")
		return
	}

	if req.DisplayName != nil {
		user.DisplayName = strings.TrimSpace(*req.DisplayName)
	}

	if err := h.db.Save(user).Error; err != nil {
		httperr.Internal(c, "failed_to_update_profile", "Could not save the profile.")
		return
	}

	h.audit.Dispatch(audit.Event{
		UserID: &user.ID,
		Action: "profile_updated",
		Entity: "user",
	})

	c.JSON(http.StatusOK, gin.H{
		"user": gin.H{
			"id":           user.ID,
			"email":        user.Email,
			"display_name": user.DisplayName,
		},
	})
}

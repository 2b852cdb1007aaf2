package handlers

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/sention-aktivitus/klientportal-api/internal/httperr"
	"github.com/sention-aktivitus/klientportal-api/internal/models"
	"github.com/sention-aktivitus/klientportal-api/internal/storage"
)

// Appointment and start dates are stored as plain YYYY-MM-DD strings.
// Validating here keeps malformed dates out of the aggregation layer,
// which relies on lexicographic comparison being chronological.
func validDateField(s string) error {
	if s == "" {
		return nil
	}
	if _, err := time.Parse("2006-01-02", s); err != nil {
		return fmt.Errorf("invalid date %q: expected YYYY-MM-DD", s)
	}
	return nil
}

// parkDocumentBlobs queues every document's blob key for the storage
// reaper. Park failures are logged and skipped; the metadata rows are
// already gone, so there is nothing left to roll back.
func parkDocumentBlobs(ctx context.Context, queue storage.DeletionQueue, docs []models.Document) {
	for _, doc := range docs {
		if err := queue.Park(ctx, doc.StorageKey); err != nil {
			log.Printf("failed to park blob %s for deletion: %v", doc.StorageKey, err)
		}
	}
}

// clientExists writes the error response itself; callers just return on
// false.
func clientExists(c *gin.Context, db *gorm.DB, clientID string) bool {
	var n int64
	err := db.WithContext(c.Request.Context()).
		Model(&models.Client{}).
		Where("id = ?", clientID).
		Count(&n).Error
	if err != nil {
		httperr.Internal(c, "failed_to_get_client", "Could not fetch the client.")
		return false
	}
	if n == 0 {
		httperr.NotFound(c, "client_not_found", "Client not found.")
		return false
	}
	return true
}

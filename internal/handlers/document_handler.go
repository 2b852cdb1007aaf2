package handlers

import (
	"fmt"
	"log"
	"net/http"
	"path/filepath"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/sention-aktivitus/klientportal-api/internal/audit"
	"github.com/sention-aktivitus/klientportal-api/internal/httperr"
	"github.com/sention-aktivitus/klientportal-api/internal/httpresp"
	"github.com/sention-aktivitus/klientportal-api/internal/middleware"
	"github.com/sention-aktivitus/klientportal-api/internal/models"
	"github.com/sention-aktivitus/klientportal-api/internal/storage"
	"github.com/sention-aktivitus/klientportal-api/internal/validators"
)

// Presigned download links stay valid long enough to open the PDF but
// not long enough to be worth sharing.
const downloadURLExpiry = 15 * time.Minute

type DocumentHandler struct {
	db    *gorm.DB
	blobs storage.BlobStore
	queue storage.DeletionQueue
	audit *audit.Dispatcher
}

func NewDocumentHandler(
	db *gorm.DB,
	blobs storage.BlobStore,
	queue storage.DeletionQueue,
	audit *audit.Dispatcher,
) *DocumentHandler {
	return &DocumentHandler{
		db:    db,
		blobs: blobs,
		queue: queue,
		audit: audit,
	}
}

func (h *DocumentHandler) List(c *gin.Context) {
	clientID := c.Param("id")

	if !clientExists(c, h.db, clientID) {
		return
	}

	var docs []models.Document
	if err := h.db.WithContext(c.Request.Context()).
		Where("client_id = ?", clientID).
		Order("uploaded_at DESC").
		Find(&docs).Error; err != nil {

		httperr.Internal(c, "failed_to_list_documents", "Could not fetch documents.")
		return
	}

	httpresp.List(c, docs)
}

func (h *DocumentHandler) Upload(c *gin.Context) {
	clientID := c.Param("id")

	if !clientExists(c, h.db, clientID) {
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		httperr.BadRequest(c, "missing_file", "Attach a PDF in the 'file' field.")
		return
	}

	if err := validators.ValidatePDFUpload(fileHeader); err != nil {
		httperr.BadRequest(c, "invalid_document", err.Error())
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		httperr.Internal(c, "failed_to_read_upload", "Could not read the uploaded file.")
		return
	}
	defer file.Close()

	docID := uuid.NewString()
	key := fmt.Sprintf("clients/%s/documents/%s-%s",
		clientID, docID, filepath.Base(fileHeader.Filename))

	ctx := c.Request.Context()

	if err := h.blobs.Upload(ctx, key, file, fileHeader.Size, validators.PDFMimeType); err != nil {
		httperr.Internal(c, "failed_to_store_document", "Could not store the document.")
		return
	}

	doc := models.Document{
		ID:         docID,
		ClientID:   clientID,
		Name:       fileHeader.Filename,
		StorageKey: key,
		MimeType:   validators.PDFMimeType,
		SizeBytes:  fileHeader.Size,
		UploadedAt: time.Now(),
	}

	if err := h.db.WithContext(ctx).Create(&doc).Error; err != nil {
		// Metadata failed after the blob went up; park the key so the
		// reaper reclaims the orphan instead of leaking it.
		if parkErr := h.queue.Park(ctx, key); parkErr != nil {
			log.Printf("failed to park orphaned blob %s: %v", key, parkErr)
		}
		httperr.Internal(c, "failed_to_store_document", "Could not store the document.")
		return
	}

	userID := c.MustGet(middleware.ContextUserID).(string)
	h.audit.Dispatch(audit.Event{
		UserID:   &userID,
		Action:   "document_uploaded",
		Entity:   "document",
		EntityID: &doc.ID,
		Metadata: map[string]any{"client_id": clientID, "name": doc.Name},
	})

	c.JSON(http.StatusCreated, doc)
}

// DownloadURL hands out a short-lived presigned link; blobs are never
// proxied through the API.
func (h *DocumentHandler) DownloadURL(c *gin.Context) {
	clientID := c.Param("id")
	docID := c.Param("docId")

	var doc models.Document
	if err := h.db.WithContext(c.Request.Context()).
		First(&doc, "id = ? AND client_id = ?", docID, clientID).Error; err != nil {

		if err == gorm.ErrRecordNotFound {
			httperr.NotFound(c, "document_not_found", "Document not found.")
			return
		}
		httperr.Internal(c, "failed_to_get_document", "Could not fetch the document.")
		return
	}

	url, err := h.blobs.PresignGet(c.Request.Context(), doc.StorageKey, downloadURLExpiry)
	if err != nil {
		httperr.Internal(c, "failed_to_sign_url", "Could not create a download link.")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"url":        url,
		"expires_in": int(downloadURLExpiry.Seconds()),
	})
}

// Delete removes the metadata row first and only then queues the blob.
// A blob with no row is invisible garbage the reaper cleans up; a row
// with no blob would be a dead download link, which is worse.
func (h *DocumentHandler) Delete(c *gin.Context) {
	clientID := c.Param("id")
	docID := c.Param("docId")

	var doc models.Document
	if err := h.db.WithContext(c.Request.Context()).
		First(&doc, "id = ? AND client_id = ?", docID, clientID).Error; err != nil {

		if err == gorm.ErrRecordNotFound {
			httperr.NotFound(c, "document_not_found", "Document not found.")
			return
		}
		httperr.Internal(c, "failed_to_get_document", "Could not fetch the document.")
		return
	}

	ctx := c.Request.Context()

	if err := h.db.WithContext(ctx).Delete(&doc).Error; err != nil {
		httperr.Internal(c, "failed_to_delete_document", "Could not delete the document.")
		return
	}

	if err := h.queue.Park(ctx, doc.StorageKey); err != nil {
		log.Printf("failed to park blob %s for deletion: %v", doc.StorageKey, err)
	}

	userID := c.MustGet(middleware.ContextUserID).(string)
	h.audit.Dispatch(audit.Event{
		UserID:   &userID,
		Action:   "document_deleted",
		Entity:   "document",
		EntityID: &doc.ID,
		Metadata: map[string]any{"client_id": clientID, "name": doc.Name},
	})

	c.JSON(http.StatusOK, gin.H{"deleted": true})
}

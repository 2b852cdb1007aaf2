package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	domain "github.com/sention-aktivitus/klientportal-api/internal/domain/note"
	"github.com/sention-aktivitus/klientportal-api/internal/httperr"
	"github.com/sention-aktivitus/klientportal-api/internal/httpresp"
	"github.com/sention-aktivitus/klientportal-api/internal/timezone"
	usecase "github.com/sention-aktivitus/klientportal-api/internal/usecase/note"
)

type NoteHandler struct {
	db         *gorm.DB
	repo       domain.Repository
	createNote *usecase.CreateNote
	deleteNote *usecase.DeleteNote
	tz         string
}

func NewNoteHandler(
	db *gorm.DB,
	repo domain.Repository,
	createNote *usecase.CreateNote,
	deleteNote *usecase.DeleteNote,
	tz string,
) *NoteHandler {
	return &NoteHandler{
		db:         db,
		repo:       repo,
		createNote: createNote,
		deleteNote: deleteNote,
		tz:         tz,
	}
}

type CreateNoteRequest struct {
	Text          string `json:"text" binding:"required"`
	PerformedDate string `json:"performed_date"`
}

type DeleteNoteRequest struct {
	Password string `json:"password" binding:"required"`
}

func (h *NoteHandler) List(c *gin.Context) {
	clientID := c.Param("id")

	if _, err := h.repo.GetClient(c.Request.Context(), clientID); err != nil {
		httperr.NotFound(c, "client_not_found", "Client not found.")
		return
	}

	notes, err := h.repo.ListNotes(c.Request.Context(), clientID)
	if err != nil {
		httperr.Internal(c, "failed_to_list_notes", "Could not fetch notes.")
		return
	}

	httpresp.List(c, notes)
}

func (h *NoteHandler) Create(c *gin.Context) {
	clientID := c.Param("id")

	user, ok := currentUser(c, h.db)
	if !ok {
		return
	}

	var req CreateNoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid request body.")
		return
	}

	in := usecase.CreateNoteInput{
		ClientID:      clientID,
		Text:          req.Text,
		PerformedDate: req.PerformedDate,
	}

	note, err := h.createNote.Execute(c.Request.Context(), in, user, timezone.NowIn(h.tz))
	if err != nil {
		switch {
		case httperr.IsBusiness(err, "empty_note"):
			httperr.BadRequest(c, "empty_note", "A note needs some text.")
		case httperr.IsBusiness(err, "invalid_performed_date"):
			httperr.BadRequest(c, "invalid_performed_date", "Performed date must be YYYY-MM-DD.")
		case httperr.IsBusiness(err, "client_not_found"):
			httperr.NotFound(c, "client_not_found", "Client not found.")
		default:
			httperr.Internal(c, "failed_to_create_note", "Could not save the note.")
		}
		return
	}

	c.JSON(http.StatusCreated, note)
}

func (h *NoteHandler) Delete(c *gin.Context) {
	clientID := c.Param("id")
	noteID := c.Param("noteId")

	user, ok := currentUser(c, h.db)
	if !ok {
		return
	}

	var req DeleteNoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "password_required", "Deleting a note requires your account password.")
		return
	}

	err := h.deleteNote.Execute(c.Request.Context(), clientID, noteID, user, req.Password)
	if err != nil {
		switch {
		case httperr.IsBusiness(err, "password_required"):
			httperr.BadRequest(c, "password_required", "Deleting a note requires your account password.")
		case httperr.IsBusiness(err, "reauthentication_failed"):
			httperr.Forbidden(c, "reauthentication_failed", "Wrong password; the note was not deleted.")
		case httperr.IsBusiness(err, "note_not_found"):
			httperr.NotFound(c, "note_not_found", "Note not found.")
		case httperr.IsBusiness(err, "not_note_author"):
			httperr.Forbidden(c, "not_note_author", "Only the author of a note can delete it.")
		default:
			httperr.Internal(c, "failed_to_delete_note", "Could not delete the note.")
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"deleted": true})
}

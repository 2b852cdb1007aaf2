package note

import (
	"context"

	"golang.org/x/crypto/bcrypt"

	"github.com/sention-aktivitus/klientportal-api/internal/audit"
	domain "github.com/sention-aktivitus/klientportal-api/internal/domain/note"
	"github.com/sention-aktivitus/klientportal-api/internal/httperr"
	"github.com/sention-aktivitus/klientportal-api/internal/models"
)

type DeleteNote struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewDeleteNote(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *DeleteNote {
	return &DeleteNote{
		repo:  repo,
		audit: audit,
	}
}

// Execute hard-deletes a note. The caller must be the original author and
// must confirm with their account password. The check is
// read-then-compare-then-delete; single-admin usage makes the race
// between two sessions inconsequential.
func (uc *DeleteNote) Execute(
	ctx context.Context,
	clientID string,
	noteID string,
	actor *models.User,
	password string,
) error {

	if password == "" {
		return httperr.ErrBusiness("password_required")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(actor.PasswordHash), []byte(password)); err != nil {
		return httperr.ErrBusiness("reauthentication_failed")
	}

	n, err := uc.repo.GetNote(ctx, clientID, noteID)
	if err != nil {
		return httperr.ErrBusiness("note_not_found")
	}

	if n.AuthorID != actor.ID {
		return httperr.ErrBusiness("not_note_author")
	}

	if err := uc.repo.DeleteNote(ctx, clientID, noteID); err != nil {
		return err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &actor.ID,
		Action:   "note_deleted",
		Entity:   "note",
		EntityID: &noteID,
	})

	return nil
}

package note

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/sention-aktivitus/klientportal-api/internal/audit"
	domain "github.com/sention-aktivitus/klientportal-api/internal/domain/note"
	"github.com/sention-aktivitus/klientportal-api/internal/httperr"
	"github.com/sention-aktivitus/klientportal-api/internal/models"
)

type CreateNoteInput struct {
	ClientID string
	Text     string

	// PerformedDate is an optional YYYY-MM-DD; empty means today. The
	// stored performed-at timestamp always lands at 12:00.
	PerformedDate string
}

type CreateNote struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewCreateNote(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *CreateNote {
	return &CreateNote{
		repo:  repo,
		audit: audit,
	}
}

func (uc *CreateNote) Execute(
	ctx context.Context,
	in CreateNoteInput,
	author *models.User,
	now time.Time,
) (*models.Note, error) {

	text := strings.TrimSpace(in.Text)
	if text == "" {
		return nil, httperr.ErrBusiness("empty_note")
	}

	if _, err := uc.repo.GetClient(ctx, in.ClientID); err != nil {
		return nil, httperr.ErrBusiness("client_not_found")
	}

	performedAt, err := performedAtNoon(in.PerformedDate, now)
	if err != nil {
		return nil, httperr.ErrBusiness("invalid_performed_date")
	}

	// Author fields are snapshotted; later profile changes must not
	// rewrite history.
	authorName := author.DisplayName
	if authorName == "" {
		authorName = strings.SplitN(author.Email, "@", 2)[0]
	}

	n := &models.Note{
		ID:          uuid.NewString(),
		ClientID:    in.ClientID,
		Text:        text,
		PerformedAt: performedAt,
		CreatedAt:   now,
		AuthorID:    author.ID,
		AuthorName:  authorName,
		AuthorEmail: author.Email,
	}

	if err := uc.repo.CreateNote(ctx, n); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &author.ID,
		Action:   "note_added",
		Entity:   "note",
		EntityID: &n.ID,
	})

	return n, nil
}

func performedAtNoon(dateStr string, now time.Time) (time.Time, error) {
	if dateStr == "" {
		return time.Date(now.Year(), now.Month(), now.Day(), 12, 0, 0, 0, now.Location()), nil
	}

	d, err := time.ParseInLocation("2006-01-02", dateStr, now.Location())
	if err != nil {
		return time.Time{}, err
	}
	return d.Add(12 * time.Hour), nil
}
